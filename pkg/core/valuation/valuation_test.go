package valuation

import (
	"math"
	"testing"

	"merger_model/pkg/models"
)

func TestCalculateWACC(t *testing.T) {
	target := models.SampleTarget()
	result := CalculateWACC(DefaultWACCInput(target))

	// Ke = 0.04 + 1.3 * 0.055 = 0.1115
	if math.Abs(result.CostOfEquity-0.1115) > 0.0001 {
		t.Errorf("Expected cost of equity 11.15%%, got %f", result.CostOfEquity)
	}
	// Kd = 0.05 * (1 - 0.21) = 0.0395
	if math.Abs(result.AfterTaxCostOfDebt-0.0395) > 0.0001 {
		t.Errorf("Expected after-tax cost of debt 3.95%%, got %f", result.AfterTaxCostOfDebt)
	}
	// WACC = 0.1115*0.70 + 0.0395*0.30 = 0.0899
	if math.Abs(result.WACC-0.0899) > 0.0001 {
		t.Errorf("Expected WACC 8.99%%, got %f", result.WACC)
	}
	if result.WeightDebt+result.WeightEquity != 1.0 {
		t.Errorf("Weights do not sum to 1: %f + %f", result.WeightDebt, result.WeightEquity)
	}
}

func TestStatsOfEvenMedian(t *testing.T) {
	stats := statsOf([]float64{4, 1, 3, 2})

	if stats.Min != 1 || stats.Max != 4 {
		t.Errorf("Expected min 1 max 4, got %f / %f", stats.Min, stats.Max)
	}
	// Even count averages the middle pair: (2+3)/2.
	if stats.Median != 2.5 {
		t.Errorf("Expected median 2.5, got %f", stats.Median)
	}
	if stats.Mean != 2.5 {
		t.Errorf("Expected mean 2.5, got %f", stats.Mean)
	}

	odd := statsOf([]float64{3, 1, 2})
	if odd.Median != 2 {
		t.Errorf("Expected odd median 2, got %f", odd.Median)
	}
}

func TestRunDCFArithmetic(t *testing.T) {
	target := models.SampleTarget()
	result := RunDCF(target, DefaultDCFAssumptions())

	if len(result.Projections) != 5 {
		t.Fatalf("Expected 5 projected years, got %d", len(result.Projections))
	}

	// Year 1: revenue 10B * 1.10 = 11B, EBITDA 2.2B, D&A 330M,
	// EBIT 1.87B, NOPAT 1.4773B, capex 440M, dNWC = 1B * 0.10 = 100M.
	// FCF = 1.4773B + 330M - 440M - 100M = 1.2673B.
	y1 := result.Projections[0]
	if math.Abs(y1.Revenue-11_000_000_000) > 1 {
		t.Errorf("Expected 11B year-1 revenue, got %f", y1.Revenue)
	}
	if math.Abs(y1.FreeCashFlow-1_267_300_000) > 1 {
		t.Errorf("Expected 1.2673B year-1 FCF, got %f", y1.FreeCashFlow)
	}

	// Gordon terminal off the final year.
	finalFCF := result.Projections[4].FreeCashFlow
	wantTV := finalFCF * 1.025 / (0.09 - 0.025)
	if math.Abs(result.TerminalValue-wantTV) > 1 {
		t.Errorf("Expected terminal value %f, got %f", wantTV, result.TerminalValue)
	}

	// EV splits into the two PV pieces and bridges to equity through
	// the 1.1B of net debt.
	if math.Abs(result.EnterpriseValue-(result.PVofFCF+result.PVofTerminal)) > 1 {
		t.Errorf("EV does not tie to its PV components")
	}
	if math.Abs(result.EquityValue-(result.EnterpriseValue-1_100_000_000)) > 1 {
		t.Errorf("Equity bridge is off: EV %f, equity %f", result.EnterpriseValue, result.EquityValue)
	}
	if math.Abs(result.ImpliedSharePrice*200_000_000-result.EquityValue) > 1 {
		t.Errorf("Implied price does not tie to equity value")
	}
}

func TestScheduleCarriesForward(t *testing.T) {
	a := DefaultDCFAssumptions()
	a.ProjectionYears = 8
	result := RunDCF(models.SampleTarget(), a)

	if len(result.Projections) != 8 {
		t.Fatalf("Expected 8 years, got %d", len(result.Projections))
	}
	// Years 6-8 reuse the final 4% growth rate.
	y7, y8 := result.Projections[6], result.Projections[7]
	if math.Abs(y8.Revenue/y7.Revenue-1.04) > 0.0001 {
		t.Errorf("Expected carried-forward 4%% growth, got %f", y8.Revenue/y7.Revenue-1)
	}
}

func TestRunTradingComps(t *testing.T) {
	target := models.SampleTarget()
	result, err := RunTradingComps(target, SampleTradingComps())
	if err != nil {
		t.Fatal(err)
	}

	// EV/EBITDA multiples: 7.0833, 6.3333, 6.0, 6.1429.
	// Sorted median = (6.1429 + 6.3333) / 2 = 6.2381.
	if math.Abs(result.EVEBITDAStats.Min-6.0) > 0.0001 {
		t.Errorf("Expected min EV/EBITDA 6.0x, got %f", result.EVEBITDAStats.Min)
	}
	if math.Abs(result.EVEBITDAStats.Median-6.2381) > 0.0001 {
		t.Errorf("Expected median EV/EBITDA 6.2381x, got %f", result.EVEBITDAStats.Median)
	}

	// Median implied price: 2B * 6.2381 = 12.4762B EV, less 1.1B net
	// debt, over 200M shares = $56.88.
	if math.Abs(result.ImpliedByEVEBITDA.Median-56.88) > 0.01 {
		t.Errorf("Expected $56.88 median implied price, got %f", result.ImpliedByEVEBITDA.Median)
	}
	if result.ImpliedByEVEBITDA.Low >= result.ImpliedByEVEBITDA.High {
		t.Errorf("Implied range is inverted")
	}
}

func TestTradingCompsExcludeLossMakersFromPE(t *testing.T) {
	target := models.SampleTarget()
	comps := SampleTradingComps()
	comps = append(comps, TradingComp{
		Name:              "LossCo",
		MarketCap:         1_000_000_000,
		EnterpriseValue:   1_500_000_000,
		Revenue:           2_000_000_000,
		EBITDA:            100_000_000,
		NetIncome:         -50_000_000,
		SharesOutstanding: 100_000_000,
	})

	result, err := RunTradingComps(target, comps)
	if err != nil {
		t.Fatal(err)
	}
	// The loss maker still contributes EV multiples.
	if len(result.Comparables) != 5 {
		t.Errorf("Expected the full peer set to be kept")
	}
	base, _ := RunTradingComps(target, SampleTradingComps())
	if result.PEStats != base.PEStats {
		t.Errorf("P/E stats moved when a loss maker was added")
	}
	if result.EVEBITDAStats == base.EVEBITDAStats {
		t.Errorf("EV/EBITDA stats should include the new comp")
	}
}

func TestRunTransactionComps(t *testing.T) {
	target := models.SampleTarget()
	result, err := RunTransactionComps(target, SampleTransactionComps())
	if err != nil {
		t.Fatal(err)
	}

	// Premiums 0.32, 0.28, 0.35: median 0.32 over the $58 price = $76.56.
	if math.Abs(result.PremiumStats.Median-0.32) > 0.0001 {
		t.Errorf("Expected median premium 32%%, got %f", result.PremiumStats.Median)
	}
	if math.Abs(result.ImpliedByPremium.Median-76.56) > 0.01 {
		t.Errorf("Expected $76.56 implied price, got %f", result.ImpliedByPremium.Median)
	}
	if result.ImpliedEVByEBITDA.Low >= result.ImpliedEVByEBITDA.High {
		t.Errorf("Implied EV range is inverted")
	}
}

func TestCompsRequirePeers(t *testing.T) {
	target := models.SampleTarget()
	if _, err := RunTradingComps(target, nil); err != ErrNoComparables {
		t.Errorf("Expected ErrNoComparables, got %v", err)
	}
	if _, err := RunTransactionComps(target, nil); err != ErrNoComparables {
		t.Errorf("Expected ErrNoComparables, got %v", err)
	}
}

func TestAbilityToPay(t *testing.T) {
	target := models.SampleTarget()
	input := DefaultAbilityToPayInput()
	result := CalculateAbilityToPay(target, input)

	// Entry debt: 2B EBITDA * 5.0x = 10B.
	if math.Abs(result.DebtRaised-10_000_000_000) > 1 {
		t.Errorf("Expected 10B entry debt, got %f", result.DebtRaised)
	}
	// FCF sweeps during the hold, so exit debt is below entry.
	if result.ExitDebt >= result.DebtRaised {
		t.Errorf("Debt did not pay down: %f vs %f", result.ExitDebt, result.DebtRaised)
	}
	// Entry EV ties to the discounted exit equity plus the debt.
	wantEntry := result.ExitEquityValue/math.Pow(1.20, 5) + result.DebtRaised
	if math.Abs(result.MaxEntryEV-wantEntry) > 1 {
		t.Errorf("Entry EV does not tie: %f vs %f", result.MaxEntryEV, wantEntry)
	}
	if math.Abs(result.ImpliedEntryMultiple-result.MaxEntryEV/2_000_000_000) > 0.0001 {
		t.Errorf("Entry multiple does not tie to base EBITDA")
	}
	if result.MaxPricePerShare <= 0 {
		t.Errorf("Expected a positive maximum price, got %f", result.MaxPricePerShare)
	}
}

func TestWeek52Analysis(t *testing.T) {
	s := NewSuite(models.SampleTarget())
	result := s.Week52Analysis(72.0, 45.0)

	if math.Abs(result.PremiumToHigh-(58.0/72.0-1)) > 0.0001 {
		t.Errorf("Premium to high is off: %f", result.PremiumToHigh)
	}
	if math.Abs(result.PositionInRange-(58.0-45.0)/(72.0-45.0)) > 0.0001 {
		t.Errorf("Position in range is off: %f", result.PositionInRange)
	}
}

func TestFootballFieldBars(t *testing.T) {
	s := NewSuite(models.SampleTarget())
	s.TradingComps = SampleTradingComps()
	s.TransactionComps = SampleTransactionComps()

	field := s.GenerateFootballField(75.0)
	if len(field.Bars) != 4 {
		t.Fatalf("Expected 4 bars with full comp sets, got %d", len(field.Bars))
	}
	if math.Abs(field.ImpliedPremium-(75.0/58.0-1)) > 0.0001 {
		t.Errorf("Implied premium is off: %f", field.ImpliedPremium)
	}
	for _, bar := range field.Bars {
		if bar.Low > bar.Mid || bar.Mid > bar.High {
			t.Errorf("%s: range out of order %f / %f / %f", bar.Methodology, bar.Low, bar.Mid, bar.High)
		}
	}

	// Without comps the field keeps the DCF and ability-to-pay bars.
	bare := NewSuite(models.SampleTarget()).GenerateFootballField(0)
	if len(bare.Bars) != 2 {
		t.Errorf("Expected 2 bars with no comps, got %d", len(bare.Bars))
	}
	if bare.ImpliedPremium != 0 {
		t.Errorf("No offer should mean no premium, got %f", bare.ImpliedPremium)
	}
}

func TestSummarizeOmitsEmptyCompSections(t *testing.T) {
	s := NewSuite(models.SampleTarget())
	summary := s.Summarize(0)

	if summary.Trading != nil || summary.Transactions != nil {
		t.Errorf("Empty comp sets must be omitted from the summary")
	}

	s.TradingComps = SampleTradingComps()
	s.TransactionComps = SampleTransactionComps()
	full := s.Summarize(75.0)
	if full.Trading == nil || full.Transactions == nil {
		t.Errorf("Populated comp sets must appear in the summary")
	}
	if full.TargetCompany != "InnovateTech Solutions" {
		t.Errorf("Unexpected target name %q", full.TargetCompany)
	}
}
