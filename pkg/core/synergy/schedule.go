// Package synergy models deal synergies: per-item phase-in schedules,
// realization-risk haircuts, one-time integration costs, and the NPV of
// the combined stream.
package synergy

import (
	"fmt"
)

// ItemType separates cost takeouts from revenue uplifts.
type ItemType string

const (
	TypeCost    ItemType = "cost"
	TypeRevenue ItemType = "revenue"
)

// Category tags an item for breakdown reporting.
type Category string

const (
	// Cost categories
	HeadcountReduction      Category = "headcount_reduction"
	FacilitiesConsolidation Category = "facilities_consolidation"
	ITSystemsIntegration    Category = "it_systems_integration"
	ProcurementSavings      Category = "procurement_savings"
	CorporateOverhead       Category = "corporate_overhead"
	MarketingOptimization   Category = "marketing_optimization"

	// Revenue categories
	CrossSelling        Category = "cross_selling"
	GeographicExpansion Category = "geographic_expansion"
	ProductBundling     Category = "product_bundling"
	PricingOptimization Category = "pricing_optimization"
	CustomerRetention   Category = "customer_retention"
	NewMarketAccess     Category = "new_market_access"
)

// Item is a single synergy with its ramp. Immutable after construction;
// build through NewItem so the schedule invariants hold.
type Item struct {
	Name            string
	Type            ItemType
	Category        Category
	RunRate         float64 // steady-state annual value at full phase-in
	PhaseInYears    int
	PhaseInSchedule []float64
	RealizationRisk float64 // probability of not achieving, in [0,1]
	OneTimeCost     float64
}

// NewItem validates the phase-in contract: schedule length equals the
// horizon, fractions are in (0,1], non-decreasing, and the final year is
// fully phased in.
func NewItem(name string, typ ItemType, category Category, runRate float64, schedule []float64, risk, oneTimeCost float64) (Item, error) {
	if len(schedule) == 0 {
		return Item{}, fmt.Errorf("synergy %q: phase-in schedule must not be empty", name)
	}
	prev := 0.0
	for i, v := range schedule {
		if v <= 0 || v > 1 {
			return Item{}, fmt.Errorf("synergy %q: schedule[%d]=%v outside (0,1]", name, i, v)
		}
		if v < prev {
			return Item{}, fmt.Errorf("synergy %q: schedule must be non-decreasing, got %v after %v", name, v, prev)
		}
		prev = v
	}
	if schedule[len(schedule)-1] != 1.0 {
		return Item{}, fmt.Errorf("synergy %q: final schedule value must be 1.0, got %v", name, schedule[len(schedule)-1])
	}
	if risk < 0 || risk > 1 {
		return Item{}, fmt.Errorf("synergy %q: realization risk %v outside [0,1]", name, risk)
	}
	sched := make([]float64, len(schedule))
	copy(sched, schedule)
	return Item{
		Name:            name,
		Type:            typ,
		Category:        category,
		RunRate:         runRate,
		PhaseInYears:    len(schedule),
		PhaseInSchedule: sched,
		RealizationRisk: risk,
		OneTimeCost:     oneTimeCost,
	}, nil
}

// Value is the nominal phased-in value for a year: 0 before year 1,
// schedule-weighted through the horizon, full run-rate after.
func (it Item) Value(year int) float64 {
	if year < 1 {
		return 0
	}
	if year > it.PhaseInYears {
		return it.RunRate
	}
	return it.RunRate * it.PhaseInSchedule[year-1]
}

// RiskAdjustedValue haircuts the phased value by the realization risk.
func (it Item) RiskAdjustedValue(year int) float64 {
	return it.Value(year) * (1 - it.RealizationRisk)
}

// IntegrationCost is a one-time cost incurred in a single year.
type IntegrationCost struct {
	Description   string
	Amount        float64
	YearIncurred  int
	TaxDeductible bool
}

// RunRateTotals holds nominal (not risk-adjusted) sums at full phase-in.
type RunRateTotals struct {
	CostSynergies    float64 `json:"cost_synergies"`
	RevenueSynergies float64 `json:"revenue_synergies"`
	EBITDAImpact     float64 `json:"ebitda_impact"`
	NetIncomeImpact  float64 `json:"net_income_impact"`
}

// DefaultSynergyMargin is the pass-through of revenue synergies to
// EBITDA; revenue synergies are not assumed to flow 1:1.
const DefaultSynergyMargin = 0.25

// Schedule aggregates synergy items and integration costs over the
// projection horizon.
type Schedule struct {
	ProjectionYears int
	TaxRate         float64
	SynergyMargin   float64

	costItems        []Item
	revenueItems     []Item
	integrationCosts []IntegrationCost
}

// NewSchedule builds an empty schedule with the default revenue-synergy
// margin.
func NewSchedule(projectionYears int, taxRate float64) *Schedule {
	return &Schedule{
		ProjectionYears: projectionYears,
		TaxRate:         taxRate,
		SynergyMargin:   DefaultSynergyMargin,
	}
}

// AddCostSynergy registers a cost item. Registering a revenue item here
// is a caller bug and fails immediately.
func (s *Schedule) AddCostSynergy(item Item) error {
	if item.Type != TypeCost {
		return fmt.Errorf("synergy %q: type %s registered through cost entry point", item.Name, item.Type)
	}
	s.costItems = append(s.costItems, item)
	return nil
}

// AddRevenueSynergy registers a revenue item; type mismatches fail
// immediately.
func (s *Schedule) AddRevenueSynergy(item Item) error {
	if item.Type != TypeRevenue {
		return fmt.Errorf("synergy %q: type %s registered through revenue entry point", item.Name, item.Type)
	}
	s.revenueItems = append(s.revenueItems, item)
	return nil
}

// AddIntegrationCost registers a one-time cost.
func (s *Schedule) AddIntegrationCost(cost IntegrationCost) {
	s.integrationCosts = append(s.integrationCosts, cost)
}

// CostSynergies sums risk-adjusted cost items for a year.
func (s *Schedule) CostSynergies(year int) float64 {
	var total float64
	for _, it := range s.costItems {
		total += it.RiskAdjustedValue(year)
	}
	return total
}

// RevenueSynergies sums risk-adjusted revenue items for a year.
func (s *Schedule) RevenueSynergies(year int) float64 {
	var total float64
	for _, it := range s.revenueItems {
		total += it.RiskAdjustedValue(year)
	}
	return total
}

// EBITDAImpact for a year: cost synergies flow through fully, revenue
// synergies at the margin.
func (s *Schedule) EBITDAImpact(year int) float64 {
	return s.CostSynergies(year) + s.RevenueSynergies(year)*s.SynergyMargin
}

// NetIncomeImpact is the after-tax EBITDA impact.
func (s *Schedule) NetIncomeImpact(year int) float64 {
	return s.EBITDAImpact(year) * (1 - s.TaxRate)
}

// IntegrationCosts sums the one-time costs incurred in a year.
func (s *Schedule) IntegrationCosts(year int) float64 {
	var total float64
	for _, c := range s.integrationCosts {
		if c.YearIncurred == year {
			total += c.Amount
		}
	}
	return total
}

// TotalIntegrationCosts across all years.
func (s *Schedule) TotalIntegrationCosts() float64 {
	var total float64
	for _, c := range s.integrationCosts {
		total += c.Amount
	}
	return total
}

// RunRates returns nominal totals at full phase-in. Used for summary
// reporting and as the perpetuity base of the NPV terminal value.
func (s *Schedule) RunRates() RunRateTotals {
	var cost, revenue float64
	for _, it := range s.costItems {
		cost += it.RunRate
	}
	for _, it := range s.revenueItems {
		revenue += it.RunRate
	}
	ebitda := cost + revenue*s.SynergyMargin
	return RunRateTotals{
		CostSynergies:    cost,
		RevenueSynergies: revenue,
		EBITDAImpact:     ebitda,
		NetIncomeImpact:  ebitda * (1 - s.TaxRate),
	}
}

// NPV discounts the after-tax synergy stream net of integration costs
// over the explicit horizon, then adds a run-rate perpetuity terminal
// value discounted back by the horizon-year factor.
func (s *Schedule) NPV(discountRate float64) float64 {
	var npv float64
	discount := 1.0
	for year := 1; year <= s.ProjectionYears; year++ {
		discount /= 1 + discountRate
		npv += (s.NetIncomeImpact(year) - s.IntegrationCosts(year)) * discount
	}
	terminal := s.RunRates().NetIncomeImpact / discountRate
	return npv + terminal*discount
}

// YearsToFullRealization is the longest item horizon, 0 when no items.
func (s *Schedule) YearsToFullRealization() int {
	max := 0
	for _, it := range append(append([]Item{}, s.costItems...), s.revenueItems...) {
		if it.PhaseInYears > max {
			max = it.PhaseInYears
		}
	}
	return max
}

// Breakdown maps nominal run-rates by category per type.
type Breakdown struct {
	CostByCategory    map[Category]float64 `json:"cost_synergies_by_category"`
	RevenueByCategory map[Category]float64 `json:"revenue_synergies_by_category"`
}

// CategoryBreakdown aggregates nominal run-rates per category.
func (s *Schedule) CategoryBreakdown() Breakdown {
	out := Breakdown{
		CostByCategory:    map[Category]float64{},
		RevenueByCategory: map[Category]float64{},
	}
	for _, it := range s.costItems {
		out.CostByCategory[it.Category] += it.RunRate
	}
	for _, it := range s.revenueItems {
		out.RevenueByCategory[it.Category] += it.RunRate
	}
	return out
}

// Summary is the full reporting view of a schedule.
type Summary struct {
	RunRates               RunRateTotals   `json:"run_rates"`
	TotalIntegrationCosts  float64         `json:"total_integration_costs"`
	CostSynergiesByYear    map[int]float64 `json:"cost_synergies_by_year"`
	RevenueSynergiesByYear map[int]float64 `json:"revenue_synergies_by_year"`
	EBITDAImpactByYear     map[int]float64 `json:"ebitda_impact_by_year"`
	NetIncomeImpactByYear  map[int]float64 `json:"net_income_impact_by_year"`
	IntegrationCostsByYear map[int]float64 `json:"integration_costs_by_year"`
	Breakdown              Breakdown       `json:"breakdown"`
	NPV                    float64         `json:"npv"`
	YearsToFullRealization int             `json:"years_to_full_realization"`
}

// DefaultDiscountRate for the summary NPV.
const DefaultDiscountRate = 0.09

// Summarize builds the per-year series and headline totals.
func (s *Schedule) Summarize() Summary {
	out := Summary{
		RunRates:               s.RunRates(),
		TotalIntegrationCosts:  s.TotalIntegrationCosts(),
		CostSynergiesByYear:    map[int]float64{},
		RevenueSynergiesByYear: map[int]float64{},
		EBITDAImpactByYear:     map[int]float64{},
		NetIncomeImpactByYear:  map[int]float64{},
		IntegrationCostsByYear: map[int]float64{},
		Breakdown:              s.CategoryBreakdown(),
		NPV:                    s.NPV(DefaultDiscountRate),
		YearsToFullRealization: s.YearsToFullRealization(),
	}
	for year := 1; year <= s.ProjectionYears; year++ {
		out.CostSynergiesByYear[year] = s.CostSynergies(year)
		out.RevenueSynergiesByYear[year] = s.RevenueSynergies(year)
		out.EBITDAImpactByYear[year] = s.EBITDAImpact(year)
		out.NetIncomeImpactByYear[year] = s.NetIncomeImpact(year)
		out.IntegrationCostsByYear[year] = s.IntegrationCosts(year)
	}
	return out
}
