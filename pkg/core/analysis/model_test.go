package analysis

import (
	"math"
	"testing"

	"merger_model/pkg/core/accretion"
)

func TestSampleModelWiring(t *testing.T) {
	m, err := SampleModel()
	if err != nil {
		t.Fatal(err)
	}

	if m.RunID == "" {
		t.Errorf("Expected a run ID")
	}
	if m.Valuation == nil || m.Accretion == nil || m.ProForma == nil || m.Sensitivity == nil {
		t.Fatalf("Engines not wired")
	}
	if m.Synergies == nil {
		t.Errorf("Sample model should carry a synergy schedule")
	}
	if len(m.Valuation.TradingComps) == 0 || len(m.Valuation.TransactionComps) == 0 {
		t.Errorf("Sample model should carry both comp sets")
	}

	// Every engine shares the same deal terms value.
	if m.Accretion.Deal != m.Deal || m.ProForma.Deal != m.Deal || m.Sensitivity.Deal != m.Deal {
		t.Errorf("Engines do not share the model's deal terms")
	}
}

func TestDealSummaryMultiples(t *testing.T) {
	m, err := SampleModel()
	if err != nil {
		t.Fatal(err)
	}
	s := m.Summary()

	if s.Acquirer.Name != "TechCorp Industries" || s.Target.Name != "InnovateTech Solutions" {
		t.Errorf("Unexpected company names %q / %q", s.Acquirer.Name, s.Target.Name)
	}
	if s.Acquirer.MarketCap != 75_000_000_000 {
		t.Errorf("Expected 75B acquirer market cap, got %f", s.Acquirer.MarketCap)
	}

	// Offer: $75 on 204M diluted shares = 15.3B equity, plus 2.3B of
	// refinanced debt = 17.6B implied EV.
	if math.Abs(s.Transaction.EquityValue-15_300_000_000) > 1 {
		t.Errorf("Expected 15.3B equity value, got %f", s.Transaction.EquityValue)
	}
	if math.Abs(s.Transaction.ImpliedEV-17_600_000_000) > 1 {
		t.Errorf("Expected 17.6B implied EV, got %f", s.Transaction.ImpliedEV)
	}
	if math.Abs(s.Transaction.ControlPremium-(75.0/58.0-1)) > 0.0001 {
		t.Errorf("Expected 29.3%% premium, got %f", s.Transaction.ControlPremium)
	}

	// EV/Revenue 1.76x, EV/EBITDA 8.8x, P/E 75 / 5.8065 = 12.92x.
	if math.Abs(s.Multiples.EVRevenue-1.76) > 0.0001 {
		t.Errorf("Expected 1.76x EV/Revenue, got %f", s.Multiples.EVRevenue)
	}
	if math.Abs(s.Multiples.EVEBITDA-8.8) > 0.0001 {
		t.Errorf("Expected 8.8x EV/EBITDA, got %f", s.Multiples.EVEBITDA)
	}
	if math.Abs(s.Multiples.PEOffer-75.0/5.80650) > 0.001 {
		t.Errorf("Expected 12.92x offer P/E, got %f", s.Multiples.PEOffer)
	}
}

func TestSourcesUsesSummary(t *testing.T) {
	m, err := SampleModel()
	if err != nil {
		t.Fatal(err)
	}
	su := m.SourcesUses()

	if len(su.Sources) == 0 || len(su.Uses) == 0 {
		t.Fatalf("Expected populated funds tables")
	}
	if math.Abs(su.TotalSources-16_000_000_000) > 1 {
		t.Errorf("Expected 16B of sources, got %f", su.TotalSources)
	}
	// The sample financing package over-raises relative to uses, and the
	// summary reports that rather than hiding it.
	if su.Balanced {
		t.Errorf("Sample deal should not balance, delta %f", su.Delta)
	}
	if math.Abs(su.Delta-(su.TotalSources-su.TotalUses)) > 1 {
		t.Errorf("Delta does not tie to the totals")
	}
}

func TestRunFullAnalysis(t *testing.T) {
	m, err := SampleModel()
	if err != nil {
		t.Fatal(err)
	}
	fa := m.RunFullAnalysis()

	if fa.Summary.ModelName == "" {
		t.Errorf("Missing model name")
	}
	if fa.Synergies == nil {
		t.Errorf("Expected a synergy section")
	}
	if len(fa.EPSMultiYear) != 5 {
		t.Errorf("Expected 5 multi-year EPS rows, got %d", len(fa.EPSMultiYear))
	}
	if len(fa.ProForma.IncomeStatements) != 6 {
		t.Errorf("Expected 6 pro forma years, got %d", len(fa.ProForma.IncomeStatements))
	}
	if len(fa.OfferPrices) != 9 || len(fa.FinancingMix) != 5 || len(fa.SynergySweep) != 5 {
		t.Errorf("Sweep row counts off: %d / %d / %d", len(fa.OfferPrices), len(fa.FinancingMix), len(fa.SynergySweep))
	}
	if len(fa.WACCSweep) != 6 || len(fa.TerminalGrowth) != 5 {
		t.Errorf("DCF sweep row counts off: %d / %d", len(fa.WACCSweep), len(fa.TerminalGrowth))
	}
	if fa.Valuation.DCF.EnterpriseValue <= 0 {
		t.Errorf("DCF did not run")
	}

	// The ownership split ties to the share counts.
	own := fa.Contribution.Ownership
	if math.Abs(own.ExistingShareholdersPct+own.NewShareholdersPct-1) > 0.0001 {
		t.Errorf("Ownership does not sum to 1: %f", own.ExistingShareholdersPct+own.NewShareholdersPct)
	}

	// Year 1 with full sample synergies phased in at 25% is accretive.
	if fa.EPSAnalysis.AccretionDilution.Result != accretion.Accretive {
		t.Errorf("Expected accretive year 1, got %s", fa.EPSAnalysis.AccretionDilution.Result)
	}
}

func TestNoSynergyModel(t *testing.T) {
	m, err := SampleModel()
	if err != nil {
		t.Fatal(err)
	}
	m.Synergies = nil

	if m.SynergySummary() != nil {
		t.Errorf("Expected nil synergy summary without a schedule")
	}
}
