// Package scenario loads a full deal case from a config file. YAML is
// the primary format; JSON and Hjson are accepted too, with a repair
// pass for files that are almost valid JSON.
package scenario

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	hjson "github.com/hjson/hjson-go/v4"
	"gopkg.in/yaml.v2"

	"merger_model/pkg/core/analysis"
	"merger_model/pkg/core/deal"
	"merger_model/pkg/core/proforma"
	"merger_model/pkg/core/synergy"
	"merger_model/pkg/core/valuation"
	"merger_model/pkg/models"
)

// ItemConfig describes one synergy item in a scenario file.
type ItemConfig struct {
	Name            string    `json:"name" yaml:"name"`
	Category        string    `json:"category" yaml:"category"`
	RunRate         float64   `json:"run_rate" yaml:"run_rate"`
	PhaseInSchedule []float64 `json:"phase_in_schedule" yaml:"phase_in_schedule"`
	RealizationRisk float64   `json:"realization_risk" yaml:"realization_risk"`
	OneTimeCost     float64   `json:"one_time_cost" yaml:"one_time_cost"`
}

// IntegrationCostConfig describes one one-time integration cost.
type IntegrationCostConfig struct {
	Description   string  `json:"description" yaml:"description"`
	Amount        float64 `json:"amount" yaml:"amount"`
	YearIncurred  int     `json:"year_incurred" yaml:"year_incurred"`
	TaxDeductible bool    `json:"tax_deductible" yaml:"tax_deductible"`
}

// SynergyConfig is the synergy plan section of a scenario.
type SynergyConfig struct {
	ProjectionYears  int                     `json:"projection_years" yaml:"projection_years"`
	TaxRate          float64                 `json:"tax_rate" yaml:"tax_rate"`
	SynergyMargin    float64                 `json:"synergy_margin" yaml:"synergy_margin"`
	CostItems        []ItemConfig            `json:"cost_items" yaml:"cost_items"`
	RevenueItems     []ItemConfig            `json:"revenue_items" yaml:"revenue_items"`
	IntegrationCosts []IntegrationCostConfig `json:"integration_costs" yaml:"integration_costs"`
}

// Scenario is the full deal case as read from a file. ProForma and DCF
// sections are optional; Build falls back to the standard assumptions.
type Scenario struct {
	Name      string                    `json:"name" yaml:"name"`
	Acquirer  models.Company            `json:"acquirer" yaml:"acquirer"`
	Target    models.Company            `json:"target" yaml:"target"`
	Deal      deal.Terms                `json:"deal" yaml:"deal"`
	Synergies *SynergyConfig            `json:"synergies,omitempty" yaml:"synergies"`
	ProForma  *proforma.Assumptions     `json:"pro_forma,omitempty" yaml:"pro_forma"`
	DCF       *valuation.DCFAssumptions `json:"dcf,omitempty" yaml:"dcf"`
}

// Load reads a scenario file, dispatching on extension: .yaml/.yml parse
// as YAML, everything else goes through the lenient JSON path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return ParseJSON(data)
	}
}

// ParseYAML parses a YAML scenario.
func ParseYAML(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing scenario yaml: %w", err)
	}
	return &s, nil
}

// ParseJSON parses a JSON scenario, trying progressively more lenient
// strategies: strict JSON first, then a repair pass for near-valid input
// (trailing commas, single quotes), then Hjson for hand-written files
// with comments and unquoted keys.
func ParseJSON(data []byte) (*Scenario, error) {
	var s Scenario
	if err := json.Unmarshal(data, &s); err == nil {
		return &s, nil
	}

	if repaired, err := jsonrepair.RepairJSON(string(data)); err == nil {
		s = Scenario{}
		if err := json.Unmarshal([]byte(repaired), &s); err == nil {
			return &s, nil
		}
	}

	var loose interface{}
	if err := hjson.Unmarshal(data, &loose); err != nil {
		return nil, fmt.Errorf("parsing scenario: not valid JSON or Hjson: %w", err)
	}
	normalized, err := json.Marshal(loose)
	if err != nil {
		return nil, fmt.Errorf("normalizing hjson scenario: %w", err)
	}
	s = Scenario{}
	if err := json.Unmarshal(normalized, &s); err != nil {
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}
	return &s, nil
}

// Build validates the scenario and assembles the analysis model.
func (s *Scenario) Build() (*analysis.Model, error) {
	if s.Deal.OfferPricePerShare <= 0 {
		return nil, fmt.Errorf("scenario %q: offer price must be positive", s.Name)
	}
	if s.Deal.TargetSharesOutstanding == 0 {
		s.Deal.TargetSharesOutstanding = s.Target.MarketData.SharesOutstanding
	}
	if s.Deal.TargetCurrentPrice == 0 {
		s.Deal.TargetCurrentPrice = s.Target.MarketData.SharePrice
	}

	var schedule *synergy.Schedule
	if s.Synergies != nil {
		var err error
		schedule, err = s.Synergies.build()
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", s.Name, err)
		}
	}

	model := analysis.NewModel(s.Acquirer, s.Target, &s.Deal, schedule, s.Name)
	if s.ProForma != nil {
		model.ProForma.Assumptions = *s.ProForma
	}
	if s.DCF != nil {
		model.Valuation.DCF = *s.DCF
	}
	return model, nil
}

func (c *SynergyConfig) build() (*synergy.Schedule, error) {
	years := c.ProjectionYears
	if years == 0 {
		years = 5
	}
	taxRate := c.TaxRate
	if taxRate == 0 {
		taxRate = 0.21
	}

	schedule := synergy.NewSchedule(years, taxRate)
	if c.SynergyMargin > 0 {
		schedule.SynergyMargin = c.SynergyMargin
	}

	for _, cfg := range c.CostItems {
		item, err := synergy.NewItem(cfg.Name, synergy.TypeCost, synergy.Category(cfg.Category),
			cfg.RunRate, cfg.PhaseInSchedule, cfg.RealizationRisk, cfg.OneTimeCost)
		if err != nil {
			return nil, fmt.Errorf("cost synergy %q: %w", cfg.Name, err)
		}
		if err := schedule.AddCostSynergy(item); err != nil {
			return nil, err
		}
	}
	for _, cfg := range c.RevenueItems {
		item, err := synergy.NewItem(cfg.Name, synergy.TypeRevenue, synergy.Category(cfg.Category),
			cfg.RunRate, cfg.PhaseInSchedule, cfg.RealizationRisk, cfg.OneTimeCost)
		if err != nil {
			return nil, fmt.Errorf("revenue synergy %q: %w", cfg.Name, err)
		}
		if err := schedule.AddRevenueSynergy(item); err != nil {
			return nil, err
		}
	}
	for _, cfg := range c.IntegrationCosts {
		schedule.AddIntegrationCost(synergy.IntegrationCost{
			Description:   cfg.Description,
			Amount:        cfg.Amount,
			YearIncurred:  cfg.YearIncurred,
			TaxDeductible: cfg.TaxDeductible,
		})
	}
	return schedule, nil
}
