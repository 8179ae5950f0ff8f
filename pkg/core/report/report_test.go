package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"merger_model/pkg/core/analysis"
)

func sampleModel(t *testing.T) *analysis.Model {
	t.Helper()
	m, err := analysis.SampleModel()
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestExecutiveSummary(t *testing.T) {
	out := ExecutiveSummary(sampleModel(t))

	for _, want := range []string{
		"ACQUISITION ANALYSIS: TechCorp Industries / InnovateTech Solutions",
		"TRANSACTION OVERVIEW",
		"DEAL STRUCTURE",
		"VALUATION MULTIPLES",
		"EPS IMPACT (Year 1)",
		"SYNERGIES (Run-Rate)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Summary missing %q", want)
		}
	}

	// The sample case is accretive in year 1.
	if !strings.Contains(out, "ACCRETIVE") {
		t.Errorf("Summary missing the accretion verdict")
	}
	if !strings.Contains(out, strings.Repeat("=", 80)) {
		t.Errorf("Summary missing the banner rule")
	}
}

func TestMarkdownSections(t *testing.T) {
	out := Markdown(sampleModel(t))

	for _, want := range []string{
		"| Offer price",
		"## Sources & Uses",
		"## EPS Impact",
		"## Valuation Football Field",
		"## Pro Forma Trajectory",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Markdown missing %q", want)
		}
	}
}

func TestRenderHTML(t *testing.T) {
	html, err := RenderHTML(sampleModel(t))
	if err != nil {
		t.Fatal(err)
	}
	// The markdown tables must come through as real HTML tables.
	if !strings.Contains(string(html), "<table>") {
		t.Errorf("Rendered HTML has no tables")
	}
}

func TestExportJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "analysis.json")
	if err := ExportJSON(sampleModel(t), path); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var decoded map[string]json.RawMessage
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Exported file is not valid JSON: %v", err)
	}
	for _, key := range []string{"summary", "sources_uses", "valuation", "eps_analysis", "pro_forma"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("Export missing %q section", key)
		}
	}
}

func TestExportHTML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "analysis.html")
	if err := ExportHTML(sampleModel(t), path); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "<h1") {
		t.Errorf("Exported HTML has no heading")
	}
}
