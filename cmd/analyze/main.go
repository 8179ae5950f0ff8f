package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"merger_model/pkg/core/analysis"
	"merger_model/pkg/core/report"
	"merger_model/pkg/core/scenario"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment.")
	}

	scenarioPath := flag.String("scenario", "", "scenario file (yaml, json, or hjson); omit to run the sample deal")
	jsonOut := flag.String("json", "", "write full analysis JSON to this path")
	htmlOut := flag.String("html", "", "write HTML report to this path")
	flag.Parse()

	model, err := buildModel(*scenarioPath)
	if err != nil {
		log.Fatalf("Failed to build model: %v", err)
	}

	fmt.Println(report.ExecutiveSummary(model))
	fmt.Println()

	metrics := model.ProForma.KeyMetricsSummary()
	fmt.Println("KEY PRO FORMA METRICS")
	fmt.Println("----------------------------------------")
	fmt.Printf("Combined Revenue (Close): $%.1fB\n", metrics.Revenue.AtClose/1e9)
	fmt.Printf("Combined Revenue (Year 5): $%.1fB\n", metrics.Revenue.Year5/1e9)
	fmt.Printf("5-Year Revenue CAGR: %.1f%%\n", metrics.RevenueCAGR*100)
	fmt.Println()
	fmt.Printf("Leverage at Close: %.2fx\n", metrics.LeverageAtClose)
	fmt.Printf("Leverage Year 5: %.2fx\n", metrics.LeverageFinal)
	fmt.Printf("Deleveraging: %.2fx\n", metrics.Deleveraging)

	if *jsonOut != "" {
		if err := report.ExportJSON(model, *jsonOut); err != nil {
			log.Fatalf("Failed to export JSON: %v", err)
		}
		log.Printf("Wrote %s", *jsonOut)
	}
	if *htmlOut != "" {
		if err := report.ExportHTML(model, *htmlOut); err != nil {
			log.Fatalf("Failed to export HTML: %v", err)
		}
		log.Printf("Wrote %s", *htmlOut)
	}
}

func buildModel(path string) (*analysis.Model, error) {
	if path == "" {
		return analysis.SampleModel()
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("scenario file %s: %w", path, err)
	}
	s, err := scenario.Load(path)
	if err != nil {
		return nil, err
	}
	return s.Build()
}
