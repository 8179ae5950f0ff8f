package proforma

import (
	"math"
	"testing"

	"merger_model/pkg/core/deal"
	"merger_model/pkg/core/synergy"
	"merger_model/pkg/models"
)

func sampleProjector(t *testing.T, withSynergies bool) *Projector {
	t.Helper()
	target := models.SampleTarget()
	p := &Projector{
		Acquirer:    models.SampleAcquirer(),
		Target:      target,
		Deal:        deal.SampleTerms(75.0, target.MarketData.SharesOutstanding, 0.60),
		Assumptions: DefaultAssumptions(),
	}
	if withSynergies {
		s, err := synergy.SampleSchedule()
		if err != nil {
			t.Fatal(err)
		}
		p.Synergies = s
	}
	return p
}

func TestYearZeroIsActuals(t *testing.T) {
	p := sampleProjector(t, true)
	is := p.CombinedIncomeStatement(0)

	// Close = sum of reported figures, no growth, no synergies.
	if is.CombinedRevenue != 60_000_000_000 {
		t.Errorf("Expected 60B combined revenue at close, got %f", is.CombinedRevenue)
	}
	if is.CombinedEBITDA != 12_000_000_000 {
		t.Errorf("Expected 12B combined EBITDA at close, got %f", is.CombinedEBITDA)
	}
	if is.SynergyRevenue != 0 || is.SynergyEBITDA != 0 {
		t.Errorf("Synergies must not appear at close: %f / %f", is.SynergyRevenue, is.SynergyEBITDA)
	}
}

func TestRevenueCompounding(t *testing.T) {
	p := sampleProjector(t, false)
	y3 := p.CombinedIncomeStatement(3)

	wantAcquirer := 50_000_000_000 * math.Pow(1.05, 3)
	wantTarget := 10_000_000_000 * math.Pow(1.08, 3)
	if math.Abs(y3.AcquirerRevenue-wantAcquirer) > 1 {
		t.Errorf("Expected acquirer revenue %f, got %f", wantAcquirer, y3.AcquirerRevenue)
	}
	if math.Abs(y3.TargetRevenue-wantTarget) > 1 {
		t.Errorf("Expected target revenue %f, got %f", wantTarget, y3.TargetRevenue)
	}

	// Projected EBITDA comes from the margin assumption, not the trailing
	// margin.
	if math.Abs(y3.AcquirerEBITDA-wantAcquirer*0.20) > 1 {
		t.Errorf("Expected margin-driven EBITDA %f, got %f", wantAcquirer*0.20, y3.AcquirerEBITDA)
	}
}

func TestInterestBuild(t *testing.T) {
	p := sampleProjector(t, false)
	is := p.CombinedIncomeStatement(1)

	// Target debt is refinanced: 500M acquirer + 665M new = 1.165B
	want := 500_000_000 + 665_000_000.0
	if math.Abs(is.InterestExpense-want) > 1 {
		t.Errorf("Expected interest %f, got %f", want, is.InterestExpense)
	}

	// Interest income: 120M combined less 60M foregone on deal cash.
	if math.Abs(is.InterestIncome-60_000_000) > 1 {
		t.Errorf("Expected 60M interest income, got %f", is.InterestIncome)
	}
}

func TestBalanceSheetAtClose(t *testing.T) {
	p := sampleProjector(t, true)
	bs := p.CombinedBalanceSheet()

	// The sample deal raises more financing than the purchase consumes,
	// so the naive combination runs $1.58B short on the asset side. The
	// delta is reported rather than hidden.
	// Assets: 13B current + 18.5B PPE + 19.3B goodwill + 8.94B
	// intangibles + 2.5B other = 62.24B.
	// Liabilities and equity: 7.7B current + 23B long-term debt + 3.5B
	// other + 29.62B equity = 63.82B.
	if bs.Balanced {
		t.Errorf("Expected the sample pro forma sheet to be out of balance")
	}
	if math.Abs(bs.BalanceDelta-(-1_580_000_000)) > 1 {
		t.Errorf("Expected -1.58B balance delta, got %f", bs.BalanceDelta)
	}
	if math.Abs(bs.Assets.TotalAssets-62_240_000_000) > 1 {
		t.Errorf("Expected 62.24B total assets, got %f", bs.Assets.TotalAssets)
	}

	// Purchase premium = 15.3B - 5.5B = 9.8B of new goodwill.
	if math.Abs(bs.Assets.NewGoodwillCreated-9_800_000_000) > 1 {
		t.Errorf("Expected 9.8B new goodwill, got %f", bs.Assets.NewGoodwillCreated)
	}
	if math.Abs(bs.Assets.NewIntangiblesCreated-9_800_000_000*0.30) > 1 {
		t.Errorf("Expected 2.94B new intangibles, got %f", bs.Assets.NewIntangiblesCreated)
	}

	// Cash: 5B + 1.2B - 3B deal cash = 3.2B
	if math.Abs(bs.Assets.CashAndEquivalents-3_200_000_000) > 1 {
		t.Errorf("Expected 3.2B cash, got %f", bs.Assets.CashAndEquivalents)
	}

	// Refinanced target debt drops out; 13B of new debt comes on.
	// Short-term: acquirer only = 1B. Long-term: 10B + 13B = 23B.
	if math.Abs(bs.Liabilities.ShortTermDebt-1_000_000_000) > 1 {
		t.Errorf("Expected 1B short-term debt, got %f", bs.Liabilities.ShortTermDebt)
	}
	if math.Abs(bs.Liabilities.LongTermDebt-23_000_000_000) > 1 {
		t.Errorf("Expected 23B long-term debt, got %f", bs.Liabilities.LongTermDebt)
	}

	// Equity: 23.5B + 6.12B stock consideration.
	if math.Abs(bs.Equity.TotalEquity-29_620_000_000) > 1 {
		t.Errorf("Expected 29.62B equity, got %f", bs.Equity.TotalEquity)
	}
}

func TestCashFlowPaydown(t *testing.T) {
	p := sampleProjector(t, true)

	for year := 1; year <= 5; year++ {
		cf := p.CashFlowProjection(year)

		if cf.FreeCashFlow > 0 {
			// Half of positive FCF sweeps debt.
			if math.Abs(-cf.DebtPaydown-cf.FreeCashFlow*0.5) > 1 {
				t.Errorf("Year %d: paydown %f is not half of FCF %f", year, -cf.DebtPaydown, cf.FreeCashFlow)
			}
		} else if cf.DebtPaydown != 0 {
			t.Errorf("Year %d: negative FCF must not pay down debt, got %f", year, cf.DebtPaydown)
		}

		if math.Abs(cf.NetChangeInCash-(cf.FreeCashFlow+cf.DebtPaydown)) > 1 {
			t.Errorf("Year %d: net cash change does not tie", year)
		}
	}
}

func TestCreditMetricsDeleverage(t *testing.T) {
	p := sampleProjector(t, true)

	atClose := p.CreditMetricsFor(0)
	// 24B total debt on 12B EBITDA = 2.0x
	if math.Abs(atClose.LeverageRatio-2.0) > 0.0001 {
		t.Errorf("Expected 2.0x leverage at close, got %f", atClose.LeverageRatio)
	}

	// Debt only goes down as the sweep accumulates.
	prevDebt := atClose.TotalDebt
	for year := 1; year <= 5; year++ {
		m := p.CreditMetricsFor(year)
		if m.TotalDebt > prevDebt {
			t.Errorf("Year %d: debt increased %f -> %f", year, prevDebt, m.TotalDebt)
		}
		prevDebt = m.TotalDebt
	}

	final := p.CreditMetricsFor(5)
	if final.LeverageRatio >= atClose.LeverageRatio {
		t.Errorf("Expected deleveraging, close %f vs year 5 %f", atClose.LeverageRatio, final.LeverageRatio)
	}
}

func TestCreditMetricsInfSentinels(t *testing.T) {
	p := sampleProjector(t, false)
	p.Deal.DebtTranches = nil
	p.Acquirer.IncomeStatement.InterestExpense = 0
	p.Target.IncomeStatement.InterestExpense = 0

	m := p.CreditMetricsFor(0)
	if !math.IsInf(m.InterestCoverage, 1) {
		t.Errorf("Expected +Inf coverage with no interest, got %f", m.InterestCoverage)
	}
}

func TestFullProjectionShape(t *testing.T) {
	p := sampleProjector(t, true)
	proj := p.FullProjection()

	if len(proj.IncomeStatements) != 6 {
		t.Errorf("Expected years 0..5, got %d statements", len(proj.IncomeStatements))
	}
	if len(proj.CashFlows) != 5 {
		t.Errorf("Expected 5 cash flow years, got %d", len(proj.CashFlows))
	}
	if len(proj.CreditMetrics) != 6 {
		t.Errorf("Expected 6 credit metric rows, got %d", len(proj.CreditMetrics))
	}

	metrics := p.KeyMetricsSummary()
	if metrics.Revenue.Year5 <= metrics.Revenue.AtClose {
		t.Errorf("Expected revenue growth over the horizon")
	}
	if metrics.Deleveraging <= 0 {
		t.Errorf("Expected positive deleveraging, got %f", metrics.Deleveraging)
	}

	// CAGR ties to the endpoint revenues.
	wantCAGR := math.Pow(metrics.Revenue.Year5/metrics.Revenue.AtClose, 1.0/5) - 1
	if math.Abs(metrics.RevenueCAGR-wantCAGR) > 1e-9 {
		t.Errorf("CAGR %f does not tie to endpoints %f", metrics.RevenueCAGR, wantCAGR)
	}
}
