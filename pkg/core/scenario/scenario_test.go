package scenario

import (
	"os"
	"path/filepath"
	"testing"
)

const yamlScenario = `
name: Test Deal
acquirer:
  name: BigCo
  ticker: BIG
  income_statement:
    revenue: 50000000000
    ebitda: 10000000000
    net_income: 6000000000
  market_data:
    share_price: 150.0
    shares_outstanding: 500000000
target:
  name: SmallCo
  ticker: SML
  income_statement:
    revenue: 10000000000
    ebitda: 2000000000
    net_income: 1200000000
  market_data:
    share_price: 58.0
    shares_outstanding: 200000000
deal:
  offer_price_per_share: 75.0
  cash_percentage: 0.6
  acquirer_cash_used: 3000000000
  tax_rate: 0.21
synergies:
  projection_years: 5
  tax_rate: 0.21
  cost_items:
    - name: Headcount
      category: headcount_reduction
      run_rate: 300000000
      phase_in_schedule: [0.25, 0.5, 0.75, 1.0]
      realization_risk: 0.1
`

func TestParseYAMLScenario(t *testing.T) {
	s, err := ParseYAML([]byte(yamlScenario))
	if err != nil {
		t.Fatal(err)
	}
	if s.Name != "Test Deal" {
		t.Errorf("Expected name %q, got %q", "Test Deal", s.Name)
	}
	if s.Deal.OfferPricePerShare != 75.0 {
		t.Errorf("Expected offer 75.0, got %f", s.Deal.OfferPricePerShare)
	}
	if s.Synergies == nil || len(s.Synergies.CostItems) != 1 {
		t.Fatalf("Synergy section not parsed")
	}
	if s.Synergies.CostItems[0].RunRate != 300_000_000 {
		t.Errorf("Expected 300M run rate, got %f", s.Synergies.CostItems[0].RunRate)
	}
}

func TestParseJSONStrict(t *testing.T) {
	s, err := ParseJSON([]byte(`{"name": "Strict", "deal": {"offer_price_per_share": 80.0}}`))
	if err != nil {
		t.Fatal(err)
	}
	if s.Name != "Strict" || s.Deal.OfferPricePerShare != 80.0 {
		t.Errorf("Strict JSON misparsed: %+v", s)
	}
}

func TestParseJSONRepairsTrailingComma(t *testing.T) {
	s, err := ParseJSON([]byte(`{"name": "Sloppy", "deal": {"offer_price_per_share": 80.0,},}`))
	if err != nil {
		t.Fatal(err)
	}
	if s.Name != "Sloppy" || s.Deal.OfferPricePerShare != 80.0 {
		t.Errorf("Repaired JSON misparsed: %+v", s)
	}
}

func TestParseJSONAcceptsHjson(t *testing.T) {
	input := `{
  # hand-written case
  name: Commented
  deal: {
    offer_price_per_share: 82.5
  }
}`
	s, err := ParseJSON([]byte(input))
	if err != nil {
		t.Fatal(err)
	}
	if s.Name != "Commented" || s.Deal.OfferPricePerShare != 82.5 {
		t.Errorf("Hjson misparsed: %+v", s)
	}
}

func TestParseJSONRejectsGarbage(t *testing.T) {
	if _, err := ParseJSON([]byte("::::")); err == nil {
		t.Fatal("Expected an error for unparseable input")
	}
}

func TestLoadDispatchesOnExtension(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "case.yaml")
	if err := os.WriteFile(yamlPath, []byte(yamlScenario), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := Load(yamlPath)
	if err != nil {
		t.Fatal(err)
	}
	if s.Name != "Test Deal" {
		t.Errorf("YAML load failed: %q", s.Name)
	}

	jsonPath := filepath.Join(dir, "case.json")
	if err := os.WriteFile(jsonPath, []byte(`{"name": "FromJSON", "deal": {"offer_price_per_share": 70}}`), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err = Load(jsonPath)
	if err != nil {
		t.Fatal(err)
	}
	if s.Name != "FromJSON" {
		t.Errorf("JSON load failed: %q", s.Name)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatal("Expected an error for a missing file")
	}
}

func TestBuildDefaultsAndValidation(t *testing.T) {
	s, err := ParseYAML([]byte(yamlScenario))
	if err != nil {
		t.Fatal(err)
	}
	model, err := s.Build()
	if err != nil {
		t.Fatal(err)
	}

	// Share count and current price fall back to the target's market data.
	if model.Deal.TargetSharesOutstanding != 200_000_000 {
		t.Errorf("Expected defaulted share count, got %f", model.Deal.TargetSharesOutstanding)
	}
	if model.Deal.TargetCurrentPrice != 58.0 {
		t.Errorf("Expected defaulted current price, got %f", model.Deal.TargetCurrentPrice)
	}
	if model.Synergies == nil {
		t.Errorf("Expected a built synergy schedule")
	}
}

func TestBuildRejectsNonPositiveOffer(t *testing.T) {
	s := &Scenario{Name: "Bad"}
	if _, err := s.Build(); err == nil {
		t.Fatal("Expected an error for a zero offer price")
	}
}

func TestBuildRejectsBadSynergyItem(t *testing.T) {
	s, err := ParseYAML([]byte(yamlScenario))
	if err != nil {
		t.Fatal(err)
	}
	s.Synergies.CostItems[0].PhaseInSchedule = []float64{0.5, 0.25}
	if _, err := s.Build(); err == nil {
		t.Fatal("Expected an error for a decreasing phase-in schedule")
	}
}
