package synergy

// SampleSchedule builds the demo synergy case: five cost programs, three
// revenue programs, and the first-wave integration costs.
func SampleSchedule() (*Schedule, error) {
	s := NewSchedule(5, 0.21)

	costItems := []struct {
		name     string
		category Category
		runRate  float64
		schedule []float64
		risk     float64
		oneTime  float64
	}{
		{"Corporate Overhead Elimination", CorporateOverhead, 200_000_000, []float64{0.50, 0.80, 1.00}, 0.10, 50_000_000},
		{"Headcount Optimization", HeadcountReduction, 150_000_000, []float64{0.60, 1.00}, 0.15, 75_000_000},
		{"IT Systems Consolidation", ITSystemsIntegration, 80_000_000, []float64{0.20, 0.60, 1.00}, 0.20, 100_000_000},
		{"Procurement Leverage", ProcurementSavings, 100_000_000, []float64{0.40, 1.00}, 0.10, 10_000_000},
		{"Facilities Rationalization", FacilitiesConsolidation, 70_000_000, []float64{0.30, 0.70, 1.00}, 0.15, 40_000_000},
	}
	for _, c := range costItems {
		item, err := NewItem(c.name, TypeCost, c.category, c.runRate, c.schedule, c.risk, c.oneTime)
		if err != nil {
			return nil, err
		}
		if err := s.AddCostSynergy(item); err != nil {
			return nil, err
		}
	}

	revenueItems := []struct {
		name     string
		category Category
		runRate  float64
		schedule []float64
		risk     float64
		oneTime  float64
	}{
		{"Cross-Selling Opportunities", CrossSelling, 300_000_000, []float64{0.15, 0.40, 0.70, 1.00}, 0.30, 25_000_000},
		{"Geographic Market Expansion", GeographicExpansion, 200_000_000, []float64{0.10, 0.30, 0.60, 1.00}, 0.35, 50_000_000},
		{"Product Bundling", ProductBundling, 100_000_000, []float64{0.25, 0.60, 1.00}, 0.25, 15_000_000},
	}
	for _, r := range revenueItems {
		item, err := NewItem(r.name, TypeRevenue, r.category, r.runRate, r.schedule, r.risk, r.oneTime)
		if err != nil {
			return nil, err
		}
		if err := s.AddRevenueSynergy(item); err != nil {
			return nil, err
		}
	}

	s.AddIntegrationCost(IntegrationCost{Description: "Severance and Restructuring", Amount: 125_000_000, YearIncurred: 1, TaxDeductible: true})
	s.AddIntegrationCost(IntegrationCost{Description: "IT Integration", Amount: 100_000_000, YearIncurred: 1, TaxDeductible: true})
	s.AddIntegrationCost(IntegrationCost{Description: "IT Integration Phase 2", Amount: 50_000_000, YearIncurred: 2, TaxDeductible: true})
	s.AddIntegrationCost(IntegrationCost{Description: "Facilities Transition", Amount: 40_000_000, YearIncurred: 1, TaxDeductible: true})
	s.AddIntegrationCost(IntegrationCost{Description: "Rebranding and Marketing", Amount: 35_000_000, YearIncurred: 1, TaxDeductible: true})

	return s, nil
}
