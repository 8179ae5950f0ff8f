package deal

import (
	"math"
	"testing"
)

func sampleDeal() *Terms {
	return SampleTerms(75.0, 200_000_000, 0.60)
}

func TestConsiderationSplit(t *testing.T) {
	d := sampleDeal()

	// Diluted shares = 200M * 1.02 = 204M
	if got := d.DilutedTargetShares(); got != 204_000_000 {
		t.Errorf("Expected 204M diluted shares, got %f", got)
	}

	// Equity purchase price = 75 * 204M = 15.3B
	if got := d.EquityPurchasePrice(); got != 15_300_000_000 {
		t.Errorf("Expected equity purchase price 15.3B, got %f", got)
	}

	// Premium = 75/58 - 1 = 29.31%
	if math.Abs(d.ControlPremium()-(75.0/58.0-1)) > 0.0001 {
		t.Errorf("Expected premium %.4f, got %f", 75.0/58.0-1, d.ControlPremium())
	}

	// 60/40 split of 15.3B
	if got := d.CashConsideration(); got != 9_180_000_000 {
		t.Errorf("Expected cash consideration 9.18B, got %f", got)
	}
	if got := d.StockConsiderationValue(); got != 6_120_000_000 {
		t.Errorf("Expected stock consideration 6.12B, got %f", got)
	}
	if math.Abs(d.StockPercentage()-0.40) > 1e-12 {
		t.Errorf("Expected stock percentage 0.40, got %f", d.StockPercentage())
	}
}

func TestFinancingCosts(t *testing.T) {
	d := sampleDeal()

	// Interest: 8B * 5.5% + 5B * 4.5% = 440M + 225M = 665M
	if got := d.AnnualInterestExpense(); math.Abs(got-665_000_000) > 1 {
		t.Errorf("Expected annual interest 665M, got %f", got)
	}

	// Term Loan B amortizes over 7 years; Senior Notes are a bullet.
	if got := d.AnnualAmortization(); math.Abs(got-8_000_000_000/7.0) > 1 {
		t.Errorf("Expected annual amortization %.0f, got %f", 8_000_000_000/7.0, got)
	}

	// Origination fees: 8B * 2% + 5B * 1.5% = 160M + 75M = 235M
	if got := d.TotalDebtCosts(); math.Abs(got-235_000_000) > 1 {
		t.Errorf("Expected debt costs 235M, got %f", got)
	}

	// Advisory 150 + legal 50 + accounting 25 + filing 10 + other 15 = 250M
	if got := d.TransactionCosts.Total(); got != 250_000_000 {
		t.Errorf("Expected transaction costs 250M, got %f", got)
	}

	// All-in: 235M + 250M = 485M (no primary equity issuance in the sample)
	if got := d.TotalTransactionCosts(); math.Abs(got-485_000_000) > 1 {
		t.Errorf("Expected total costs 485M, got %f", got)
	}
}

func TestSourcesUsesTolerance(t *testing.T) {
	// A deal engineered to balance exactly: cash funds the entire
	// purchase and every fee.
	d := &Terms{
		OfferPricePerShare:      10,
		TargetSharesOutstanding: 100,
		TargetCurrentPrice:      8,
		CashPercentage:          1.0,
		AcquirerCashUsed:        1000,
	}
	balanced, diff := d.ValidateSourcesUses()
	if !balanced {
		t.Errorf("Expected balanced sources/uses, diff %f", diff)
	}

	// Push one side out by more than the $1 tolerance.
	d.AcquirerCashUsed += 2
	balanced, diff = d.ValidateSourcesUses()
	if balanced {
		t.Errorf("Expected imbalance to be reported, diff %f", diff)
	}
	if math.Abs(diff-2) > 1e-9 {
		t.Errorf("Expected diff 2, got %f", diff)
	}
}

func TestSampleSourcesUsesReportedDelta(t *testing.T) {
	d := sampleDeal()

	_, sources := d.SourcesOfFunds()
	_, uses := d.UsesOfFunds()

	// Sources: 3B cash + 13B debt = 16B. No primary equity issuance.
	if sources != 16_000_000_000 {
		t.Errorf("Expected total sources 16B, got %f", sources)
	}
	// Uses: 15.3B purchase + 2.3B refinance + 235M debt costs + 250M fees
	if math.Abs(uses-17_850_000_000-235_000_000) > 1 {
		t.Errorf("Expected total uses 18.085B, got %f", uses)
	}

	balanced, diff := d.ValidateSourcesUses()
	if balanced {
		t.Error("Sample deal is stock-funded at the margin and should report a gap")
	}
	if math.Abs(diff-(sources-uses)) > 1e-6 {
		t.Errorf("Reported diff %f does not match %f", diff, sources-uses)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	d := sampleDeal()
	c := d.Clone()

	c.OfferPricePerShare = 90
	c.DebtTranches[0].InterestRate = 0.10
	*c.DebtTranches[0].AmortizationYears = 3
	c.TransactionCosts.AdvisoryFees = 0

	if d.OfferPricePerShare != 75 {
		t.Errorf("Clone mutation leaked into base offer price: %f", d.OfferPricePerShare)
	}
	if d.DebtTranches[0].InterestRate != 0.055 {
		t.Errorf("Clone mutation leaked into base tranche rate: %f", d.DebtTranches[0].InterestRate)
	}
	if *d.DebtTranches[0].AmortizationYears != 7 {
		t.Errorf("Clone mutation leaked into base amortization: %d", *d.DebtTranches[0].AmortizationYears)
	}
	if d.TransactionCosts.AdvisoryFees != 150_000_000 {
		t.Errorf("Clone mutation leaked into base fees: %f", d.TransactionCosts.AdvisoryFees)
	}
}

func TestImpliedEV(t *testing.T) {
	d := sampleDeal()

	// Implied EV = equity purchase price + refinanced target debt
	want := d.EquityPurchasePrice() + d.TargetDebtToRefinance
	if math.Abs(d.ImpliedEV()-want) > 1 {
		t.Errorf("Expected implied EV %f, got %f", want, d.ImpliedEV())
	}
}
