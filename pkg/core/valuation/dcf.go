// Package valuation values the target on a standalone basis: DCF,
// trading and transaction comparables, ability-to-pay, and the football
// field that ties the ranges together.
package valuation

import (
	"merger_model/pkg/models"
)

// DCFAssumptions drive the standalone cash flow projection. Growth and
// margin schedules are per projected year; the last entry carries forward
// when the horizon is longer than the schedule.
type DCFAssumptions struct {
	ProjectionYears     int       `json:"projection_years" yaml:"projection_years"`
	RevenueGrowthRates  []float64 `json:"revenue_growth_rates" yaml:"revenue_growth_rates"`
	EBITDAMargins       []float64 `json:"ebitda_margins" yaml:"ebitda_margins"`
	CapexPercentRevenue float64   `json:"capex_percent_revenue" yaml:"capex_percent_revenue"`
	DAPercentRevenue    float64   `json:"da_percent_revenue" yaml:"da_percent_revenue"`
	NWCPercentRevenue   float64   `json:"nwc_percent_revenue" yaml:"nwc_percent_revenue"`
	TaxRate             float64   `json:"tax_rate" yaml:"tax_rate"`
	TerminalGrowthRate  float64   `json:"terminal_growth_rate" yaml:"terminal_growth_rate"`
	WACC                float64   `json:"wacc" yaml:"wacc"`
}

// DefaultDCFAssumptions is the standard five-year fading-growth case.
func DefaultDCFAssumptions() DCFAssumptions {
	return DCFAssumptions{
		ProjectionYears:     5,
		RevenueGrowthRates:  []float64{0.10, 0.08, 0.06, 0.05, 0.04},
		EBITDAMargins:       []float64{0.20, 0.21, 0.22, 0.22, 0.22},
		CapexPercentRevenue: 0.04,
		DAPercentRevenue:    0.03,
		NWCPercentRevenue:   0.10,
		TaxRate:             0.21,
		TerminalGrowthRate:  0.025,
		WACC:                0.09,
	}
}

// YearProjection is one year of the unlevered cash flow build.
type YearProjection struct {
	Year         int     `json:"year"`
	Revenue      float64 `json:"revenue"`
	EBITDA       float64 `json:"ebitda"`
	EBIT         float64 `json:"ebit"`
	NOPAT        float64 `json:"nopat"`
	FreeCashFlow float64 `json:"fcf"`
}

// DCFResult holds the valuation outputs.
type DCFResult struct {
	Projections        []YearProjection `json:"projections"`
	TerminalValue      float64          `json:"terminal_value"`
	PVofFCF            float64          `json:"pv_fcf"`
	PVofTerminal       float64          `json:"pv_terminal"`
	EnterpriseValue    float64          `json:"enterprise_value"`
	EquityValue        float64          `json:"equity_value"`
	ImpliedSharePrice  float64          `json:"implied_share_price"`
	WACC               float64          `json:"wacc"`
	TerminalGrowthRate float64          `json:"terminal_growth"`
}

// RunDCF performs a two-stage DCF of the target: an explicit unlevered
// FCF projection followed by a Gordon growth terminal value. The NWC
// drag is marginal, charged only on the year's revenue increase.
func RunDCF(target models.Company, a DCFAssumptions) DCFResult {
	// 1. Project unlevered free cash flow.
	projections := make([]YearProjection, 0, a.ProjectionYears)
	priorRevenue := target.IncomeStatement.Revenue
	for year := 0; year < a.ProjectionYears; year++ {
		growth := scheduleAt(a.RevenueGrowthRates, year)
		margin := scheduleAt(a.EBITDAMargins, year)

		revenue := priorRevenue * (1 + growth)
		ebitda := revenue * margin
		da := revenue * a.DAPercentRevenue
		ebit := ebitda - da
		nopat := ebit * (1 - a.TaxRate)
		capex := revenue * a.CapexPercentRevenue
		deltaNWC := (revenue - priorRevenue) * a.NWCPercentRevenue
		fcf := nopat + da - capex - deltaNWC

		projections = append(projections, YearProjection{
			Year:         year + 1,
			Revenue:      revenue,
			EBITDA:       ebitda,
			EBIT:         ebit,
			NOPAT:        nopat,
			FreeCashFlow: fcf,
		})
		priorRevenue = revenue
	}

	// 2. Terminal value off the final-year FCF.
	finalFCF := projections[len(projections)-1].FreeCashFlow
	terminalValue := finalFCF * (1 + a.TerminalGrowthRate) / (a.WACC - a.TerminalGrowthRate)

	// 3. Discount.
	var pvFCF float64
	discount := 1.0
	for _, p := range projections {
		discount /= 1 + a.WACC
		pvFCF += p.FreeCashFlow * discount
	}
	pvTerminal := terminalValue * discount

	// 4. Bridge to equity.
	ev := pvFCF + pvTerminal
	equityValue := ev - target.BalanceSheet.NetDebt()

	return DCFResult{
		Projections:        projections,
		TerminalValue:      terminalValue,
		PVofFCF:            pvFCF,
		PVofTerminal:       pvTerminal,
		EnterpriseValue:    ev,
		EquityValue:        equityValue,
		ImpliedSharePrice:  equityValue / target.MarketData.SharesOutstanding,
		WACC:               a.WACC,
		TerminalGrowthRate: a.TerminalGrowthRate,
	}
}

func scheduleAt(schedule []float64, year int) float64 {
	if year >= len(schedule) {
		return schedule[len(schedule)-1]
	}
	return schedule[year]
}
