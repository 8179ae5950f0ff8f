// Package report renders an analysis model as plain text, JSON, and
// HTML.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"merger_model/pkg/core/accretion"
	"merger_model/pkg/core/analysis"
)

// ExecutiveSummary renders the banner-style text summary of the deal.
func ExecutiveSummary(model *analysis.Model) string {
	summary := model.Summary()
	eps := model.Accretion.Run(accretion.DefaultRunOptions())
	synergies := model.SynergySummary()

	lines := []string{
		strings.Repeat("=", 80),
		fmt.Sprintf("ACQUISITION ANALYSIS: %s / %s", summary.Acquirer.Name, summary.Target.Name),
		strings.Repeat("=", 80),
		"",
		"TRANSACTION OVERVIEW",
		strings.Repeat("-", 40),
		fmt.Sprintf("Acquirer: %s (%s)", summary.Acquirer.Name, summary.Acquirer.Ticker),
		fmt.Sprintf("Target: %s (%s)", summary.Target.Name, summary.Target.Ticker),
		"",
		fmt.Sprintf("Offer Price: $%.2f per share", summary.Transaction.OfferPrice),
		fmt.Sprintf("Control Premium: %.1f%%", summary.Transaction.ControlPremium*100),
		fmt.Sprintf("Equity Value: $%.2fB", summary.Transaction.EquityValue/1e9),
		fmt.Sprintf("Implied EV: $%.2fB", summary.Transaction.ImpliedEV/1e9),
		"",
		"DEAL STRUCTURE",
		strings.Repeat("-", 40),
		fmt.Sprintf("Cash Consideration: %.0f%%", summary.Transaction.CashPercentage*100),
		fmt.Sprintf("Stock Consideration: %.0f%%", summary.Transaction.StockPercentage*100),
		"",
		"VALUATION MULTIPLES",
		strings.Repeat("-", 40),
		fmt.Sprintf("EV/Revenue: %.2fx", summary.Multiples.EVRevenue),
		fmt.Sprintf("EV/EBITDA: %.2fx", summary.Multiples.EVEBITDA),
		fmt.Sprintf("P/E (on offer): %.1fx", summary.Multiples.PEOffer),
		"",
		"EPS IMPACT (Year 1)",
		strings.Repeat("-", 40),
		fmt.Sprintf("Acquirer Standalone EPS: $%.2f", eps.Standalone.AcquirerEPS),
		fmt.Sprintf("Pro Forma EPS: $%.2f", eps.ProForma.EPS),
		fmt.Sprintf("Accretion/(Dilution): %.1f%%", eps.AccretionDilution.EPSChangePercent*100),
		fmt.Sprintf("Result: %s", strings.ToUpper(string(eps.AccretionDilution.Result))),
	}

	if synergies != nil {
		lines = append(lines,
			"",
			"SYNERGIES (Run-Rate)",
			strings.Repeat("-", 40),
			fmt.Sprintf("Cost Synergies: $%.0fM", synergies.RunRates.CostSynergies/1e6),
			fmt.Sprintf("Revenue Synergies: $%.0fM", synergies.RunRates.RevenueSynergies/1e6),
			fmt.Sprintf("EBITDA Impact: $%.0fM", synergies.RunRates.EBITDAImpact/1e6),
			fmt.Sprintf("Integration Costs: $%.0fM", synergies.TotalIntegrationCosts/1e6),
			fmt.Sprintf("Years to Full Realization: %d", synergies.YearsToFullRealization),
		)
	}

	lines = append(lines, "", strings.Repeat("=", 80))
	return strings.Join(lines, "\n")
}

// Markdown renders the deal as a markdown document: headline terms, the
// sources & uses table, EPS impact by year, and the football field.
func Markdown(model *analysis.Model) string {
	summary := model.Summary()
	sourcesUses := model.SourcesUses()
	multiYear := model.Accretion.MultiYear(model.ProForma.Assumptions.ProjectionYears, true)
	field := model.Valuation.GenerateFootballField(model.Deal.OfferPricePerShare)
	metrics := model.ProForma.KeyMetricsSummary()

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", model.Name)
	fmt.Fprintf(&b, "Run `%s`, generated %s.\n\n", model.RunID, model.CreatedAt.Format("2006-01-02 15:04"))

	b.WriteString("## Transaction\n\n")
	fmt.Fprintf(&b, "| | |\n|---|---|\n")
	fmt.Fprintf(&b, "| Offer price | $%.2f |\n", summary.Transaction.OfferPrice)
	fmt.Fprintf(&b, "| Control premium | %.1f%% |\n", summary.Transaction.ControlPremium*100)
	fmt.Fprintf(&b, "| Equity value | $%.2fB |\n", summary.Transaction.EquityValue/1e9)
	fmt.Fprintf(&b, "| Implied EV | $%.2fB |\n", summary.Transaction.ImpliedEV/1e9)
	fmt.Fprintf(&b, "| Cash / stock | %.0f%% / %.0f%% |\n", summary.Transaction.CashPercentage*100, summary.Transaction.StockPercentage*100)
	fmt.Fprintf(&b, "| EV/EBITDA | %.2fx |\n\n", summary.Multiples.EVEBITDA)

	b.WriteString("## Sources & Uses\n\n")
	b.WriteString("| Source | Amount |\n|---|---|\n")
	for _, line := range sourcesUses.Sources {
		fmt.Fprintf(&b, "| %s | $%.0fM |\n", line.Label, line.Amount/1e6)
	}
	fmt.Fprintf(&b, "| **Total** | **$%.0fM** |\n\n", sourcesUses.TotalSources/1e6)
	b.WriteString("| Use | Amount |\n|---|---|\n")
	for _, line := range sourcesUses.Uses {
		fmt.Fprintf(&b, "| %s | $%.0fM |\n", line.Label, line.Amount/1e6)
	}
	fmt.Fprintf(&b, "| **Total** | **$%.0fM** |\n\n", sourcesUses.TotalUses/1e6)

	b.WriteString("## EPS Impact\n\n")
	b.WriteString("| Year | Standalone EPS | Pro Forma EPS | Change | Result |\n|---|---|---|---|---|\n")
	for _, r := range multiYear {
		fmt.Fprintf(&b, "| %d | $%.2f | $%.2f | %+.1f%% | %s |\n",
			r.Year, r.Standalone.AcquirerEPS, r.ProForma.EPS,
			r.AccretionDilution.EPSChangePercent*100, r.AccretionDilution.Result)
	}
	b.WriteString("\n")

	b.WriteString("## Valuation Football Field\n\n")
	b.WriteString("| Methodology | Low | Mid | High |\n|---|---|---|---|\n")
	for _, bar := range field.Bars {
		fmt.Fprintf(&b, "| %s | $%.2f | $%.2f | $%.2f |\n", bar.Methodology, bar.Low, bar.Mid, bar.High)
	}
	fmt.Fprintf(&b, "\nCurrent price $%.2f, offer $%.2f (%.1f%% premium).\n\n",
		field.CurrentSharePrice, field.OfferPrice, field.ImpliedPremium*100)

	b.WriteString("## Pro Forma Trajectory\n\n")
	fmt.Fprintf(&b, "- Revenue: $%.1fB at close to $%.1fB in year 5 (%.1f%% CAGR)\n",
		metrics.Revenue.AtClose/1e9, metrics.Revenue.Year5/1e9, metrics.RevenueCAGR*100)
	fmt.Fprintf(&b, "- Leverage: %.2fx at close to %.2fx in year 5 (%.2fx deleveraging)\n",
		metrics.LeverageAtClose, metrics.LeverageFinal, metrics.Deleveraging)
	fmt.Fprintf(&b, "- Interest coverage: %.1fx at close to %.1fx in year 5\n",
		metrics.CoverageAtClose, metrics.CoverageFinal)

	return b.String()
}

// RenderHTML converts the markdown report to HTML.
func RenderHTML(model *analysis.Model) ([]byte, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	var buf bytes.Buffer
	if err := md.Convert([]byte(Markdown(model)), &buf); err != nil {
		return nil, fmt.Errorf("rendering report html: %w", err)
	}
	return buf.Bytes(), nil
}

// ExportJSON writes the full analysis to a file as indented JSON.
func ExportJSON(model *analysis.Model, path string) error {
	results := model.RunFullAnalysis()
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling analysis: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// ExportHTML writes the rendered HTML report to a file.
func ExportHTML(model *analysis.Model, path string) error {
	html, err := RenderHTML(model)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, html, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
