package valuation

import (
	"math"

	"merger_model/pkg/models"
)

// AbilityToPayInput parameterizes the sponsor ability-to-pay check: the
// maximum price a leveraged buyer could justify, which anchors what a
// strategic acquirer is bidding against.
type AbilityToPayInput struct {
	LeverageRatio    float64 // debt / EBITDA at entry
	InterestRate     float64
	TaxRate          float64
	ExitMultiple     float64 // EV / EBITDA at exit
	HoldingPeriod    int
	EBITDAGrowthRate float64
	CapexPercent     float64 // of EBITDA
	TargetIRR        float64
}

// DefaultAbilityToPayInput is the standard sponsor case: 5.0x leverage,
// five-year hold, exit at 10x, 20% required IRR.
func DefaultAbilityToPayInput() AbilityToPayInput {
	return AbilityToPayInput{
		LeverageRatio:    5.0,
		InterestRate:     0.07,
		TaxRate:          0.21,
		ExitMultiple:     10.0,
		HoldingPeriod:    5,
		EBITDAGrowthRate: 0.05,
		CapexPercent:     0.20,
		TargetIRR:        0.20,
	}
}

// AbilityToPayResult holds the backed-out maximum entry valuation.
type AbilityToPayResult struct {
	MaxEntryEV           float64 `json:"max_entry_ev"`
	MaxEquityValue       float64 `json:"max_equity_value"`
	MaxPricePerShare     float64 `json:"max_price_per_share"`
	ImpliedEntryMultiple float64 `json:"implied_entry_multiple"`
	EquityCheck          float64 `json:"equity_check"`
	DebtRaised           float64 `json:"debt_raised"`
	ExitEquityValue      float64 `json:"exit_equity_value"`
	ExitDebt             float64 `json:"exit_debt"`
}

// CalculateAbilityToPay backs the maximum entry price out of a target
// IRR. Free cash flow sweeps debt during the hold; deficits draw the
// revolver.
func CalculateAbilityToPay(target models.Company, input AbilityToPayInput) AbilityToPayResult {
	baseEBITDA := target.IncomeStatement.EBITDA

	// 1. Debt at entry.
	initialDebt := baseEBITDA * input.LeverageRatio
	currentDebt := initialDebt

	// 2. Hold-period waterfall: FCF pays down debt.
	ebitda := baseEBITDA
	for year := 0; year < input.HoldingPeriod; year++ {
		ebitda *= 1 + input.EBITDAGrowthRate

		interest := currentDebt * input.InterestRate
		taxable := ebitda - interest
		taxes := taxable * input.TaxRate
		if taxes < 0 {
			taxes = 0
		}
		capex := ebitda * input.CapexPercent
		fcf := ebitda - interest - taxes - capex

		currentDebt -= fcf
		if currentDebt < 0 {
			currentDebt = 0
		}
	}

	// 3. Exit.
	exitEV := ebitda * input.ExitMultiple
	exitEquity := exitEV - currentDebt

	// 4. Back out the entry equity the required IRR supports.
	// Entry = Exit / (1+IRR)^T
	requiredEquity := exitEquity / math.Pow(1+input.TargetIRR, float64(input.HoldingPeriod))

	maxEntryEV := requiredEquity + initialDebt
	maxEquity := maxEntryEV - target.BalanceSheet.NetDebt()

	return AbilityToPayResult{
		MaxEntryEV:           maxEntryEV,
		MaxEquityValue:       maxEquity,
		MaxPricePerShare:     maxEquity / target.MarketData.SharesOutstanding,
		ImpliedEntryMultiple: maxEntryEV / baseEBITDA,
		EquityCheck:          requiredEquity,
		DebtRaised:           initialDebt,
		ExitEquityValue:      exitEquity,
		ExitDebt:             currentDebt,
	}
}
