package valuation

import "merger_model/pkg/models"

// WACCInput parameters for the cost of capital build.
type WACCInput struct {
	Beta              float64
	RiskFreeRate      float64
	MarketRiskPremium float64
	PreTaxCostOfDebt  float64
	DebtWeight        float64 // D/(D+E)
	TaxRate           float64
}

// DefaultWACCInput pairs the target's observed beta with standard market
// rate assumptions.
func DefaultWACCInput(target models.Company) WACCInput {
	return WACCInput{
		Beta:              target.MarketData.Beta,
		RiskFreeRate:      0.04,
		MarketRiskPremium: 0.055,
		PreTaxCostOfDebt:  0.05,
		DebtWeight:        0.30,
		TaxRate:           0.21,
	}
}

// WACCResult holds the calculated rates.
type WACCResult struct {
	CostOfEquity       float64 `json:"cost_of_equity"`
	AfterTaxCostOfDebt float64 `json:"after_tax_cost_of_debt"`
	WACC               float64 `json:"wacc"`
	WeightDebt         float64 `json:"weight_debt"`
	WeightEquity       float64 `json:"weight_equity"`
}

// CalculateWACC computes the weighted average cost of capital using CAPM
func CalculateWACC(input WACCInput) WACCResult {
	// 1. Cost of Equity (CAPM)
	// Ke = Rf + Beta * ERP
	ke := input.RiskFreeRate + input.Beta*input.MarketRiskPremium

	// 2. Cost of Debt (After-tax)
	// Kd = PreTaxKd * (1 - t)
	kd := input.PreTaxCostOfDebt * (1 - input.TaxRate)

	// 3. Weights
	wd := input.DebtWeight
	we := 1 - wd

	wacc := (ke * we) + (kd * wd)

	return WACCResult{
		CostOfEquity:       ke,
		AfterTaxCostOfDebt: kd,
		WACC:               wacc,
		WeightDebt:         wd,
		WeightEquity:       we,
	}
}
