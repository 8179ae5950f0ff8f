// Package models holds the read-only financial snapshots the analysis
// engines consume: income statement, balance sheet, and market data for
// one company. Engines never mutate these records.
package models

import (
	"math"
)

// CompanyRole identifies which side of the transaction a company is on.
type CompanyRole string

const (
	RoleAcquirer CompanyRole = "acquirer"
	RoleTarget   CompanyRole = "target"
)

// IncomeStatement is one annual reporting period.
type IncomeStatement struct {
	Revenue                  float64 `json:"revenue" yaml:"revenue"`
	CostOfGoodsSold          float64 `json:"cost_of_goods_sold" yaml:"cost_of_goods_sold"`
	GrossProfit              float64 `json:"gross_profit" yaml:"gross_profit"`
	OperatingExpenses        float64 `json:"operating_expenses" yaml:"operating_expenses"`
	EBITDA                   float64 `json:"ebitda" yaml:"ebitda"`
	DepreciationAmortization float64 `json:"depreciation_amortization" yaml:"depreciation_amortization"`
	EBIT                     float64 `json:"ebit" yaml:"ebit"`
	InterestExpense          float64 `json:"interest_expense" yaml:"interest_expense"`
	InterestIncome           float64 `json:"interest_income" yaml:"interest_income"`
	PretaxIncome             float64 `json:"pretax_income" yaml:"pretax_income"`
	TaxExpense               float64 `json:"tax_expense" yaml:"tax_expense"`
	NetIncome                float64 `json:"net_income" yaml:"net_income"`
}

// IncomeStatementFromBasics derives a full statement from ratio-level inputs.
func IncomeStatementFromBasics(revenue, grossMargin, opexPercent, daPercent, interestExpense, interestIncome, taxRate float64) IncomeStatement {
	grossProfit := revenue * grossMargin
	opex := revenue * opexPercent
	ebitda := grossProfit - opex
	da := revenue * daPercent
	ebit := ebitda - da
	pretax := ebit - interestExpense + interestIncome
	tax := math.Max(0, pretax*taxRate)

	return IncomeStatement{
		Revenue:                  revenue,
		CostOfGoodsSold:          revenue - grossProfit,
		GrossProfit:              grossProfit,
		OperatingExpenses:        opex,
		EBITDA:                   ebitda,
		DepreciationAmortization: da,
		EBIT:                     ebit,
		InterestExpense:          interestExpense,
		InterestIncome:           interestIncome,
		PretaxIncome:             pretax,
		TaxExpense:               tax,
		NetIncome:                pretax - tax,
	}
}

// BalanceSheet is the reported position at the most recent period end.
type BalanceSheet struct {
	// Assets
	CashAndEquivalents     float64 `json:"cash_and_equivalents" yaml:"cash_and_equivalents"`
	AccountsReceivable     float64 `json:"accounts_receivable" yaml:"accounts_receivable"`
	Inventory              float64 `json:"inventory" yaml:"inventory"`
	OtherCurrentAssets     float64 `json:"other_current_assets" yaml:"other_current_assets"`
	TotalCurrentAssets     float64 `json:"total_current_assets" yaml:"total_current_assets"`
	PropertyPlantEquipment float64 `json:"property_plant_equipment" yaml:"property_plant_equipment"`
	Goodwill               float64 `json:"goodwill" yaml:"goodwill"`
	IntangibleAssets       float64 `json:"intangible_assets" yaml:"intangible_assets"`
	OtherNonCurrentAssets  float64 `json:"other_non_current_assets" yaml:"other_non_current_assets"`
	TotalAssets            float64 `json:"total_assets" yaml:"total_assets"`

	// Liabilities
	AccountsPayable            float64 `json:"accounts_payable" yaml:"accounts_payable"`
	ShortTermDebt              float64 `json:"short_term_debt" yaml:"short_term_debt"`
	OtherCurrentLiabilities    float64 `json:"other_current_liabilities" yaml:"other_current_liabilities"`
	TotalCurrentLiabilities    float64 `json:"total_current_liabilities" yaml:"total_current_liabilities"`
	LongTermDebt               float64 `json:"long_term_debt" yaml:"long_term_debt"`
	OtherNonCurrentLiabilities float64 `json:"other_non_current_liabilities" yaml:"other_non_current_liabilities"`
	TotalLiabilities           float64 `json:"total_liabilities" yaml:"total_liabilities"`

	// Equity
	CommonStock      float64 `json:"common_stock" yaml:"common_stock"`
	RetainedEarnings float64 `json:"retained_earnings" yaml:"retained_earnings"`
	TotalEquity      float64 `json:"total_equity" yaml:"total_equity"`
}

// TotalDebt is short plus long term borrowings.
func (b BalanceSheet) TotalDebt() float64 {
	return b.ShortTermDebt + b.LongTermDebt
}

// NetDebt nets cash against total borrowings.
func (b BalanceSheet) NetDebt() float64 {
	return b.TotalDebt() - b.CashAndEquivalents
}

// NetWorkingCapital is current assets less current liabilities.
func (b BalanceSheet) NetWorkingCapital() float64 {
	return b.TotalCurrentAssets - b.TotalCurrentLiabilities
}

// MarketData holds trading inputs.
type MarketData struct {
	SharePrice        float64 `json:"share_price" yaml:"share_price"`
	SharesOutstanding float64 `json:"shares_outstanding" yaml:"shares_outstanding"`
	Beta              float64 `json:"beta" yaml:"beta"`
	DividendYield     float64 `json:"dividend_yield" yaml:"dividend_yield"`
}

// MarketCap is price times shares outstanding.
func (m MarketData) MarketCap() float64 {
	return m.SharePrice * m.SharesOutstanding
}

// Company is the complete profile either engine side consumes.
type Company struct {
	Name            string          `json:"name" yaml:"name"`
	Ticker          string          `json:"ticker" yaml:"ticker"`
	Role            CompanyRole     `json:"role" yaml:"role"`
	IncomeStatement IncomeStatement `json:"income_statement" yaml:"income_statement"`
	BalanceSheet    BalanceSheet    `json:"balance_sheet" yaml:"balance_sheet"`
	MarketData      MarketData      `json:"market_data" yaml:"market_data"`

	RevenueGrowthRate float64 `json:"revenue_growth_rate" yaml:"revenue_growth_rate"`
}

// EnterpriseValue = market cap + net debt + other non-current liabilities
// (minority interest, preferred, etc. live in the latter bucket here).
func (c Company) EnterpriseValue() float64 {
	return c.MarketData.MarketCap() + c.BalanceSheet.NetDebt() + c.BalanceSheet.OtherNonCurrentLiabilities
}

// EPS is trailing earnings per share.
func (c Company) EPS() float64 {
	return c.IncomeStatement.NetIncome / c.MarketData.SharesOutstanding
}

// PERatio returns +Inf when earnings are non-positive so aggregate
// reporting over a peer set can proceed.
func (c Company) PERatio() float64 {
	eps := c.EPS()
	if eps <= 0 {
		return math.Inf(1)
	}
	return c.MarketData.SharePrice / eps
}

// EVEBITDA returns +Inf when EBITDA is non-positive.
func (c Company) EVEBITDA() float64 {
	if c.IncomeStatement.EBITDA <= 0 {
		return math.Inf(1)
	}
	return c.EnterpriseValue() / c.IncomeStatement.EBITDA
}

// EVRevenue is the enterprise-value-to-revenue multiple.
func (c Company) EVRevenue() float64 {
	return c.EnterpriseValue() / c.IncomeStatement.Revenue
}

// ValuationMetrics bundles the standalone multiples for reporting.
type ValuationMetrics struct {
	MarketCap         float64 `json:"market_cap"`
	EnterpriseValue   float64 `json:"enterprise_value"`
	SharePrice        float64 `json:"share_price"`
	SharesOutstanding float64 `json:"shares_outstanding"`
	EPS               float64 `json:"eps"`
	PERatio           float64 `json:"pe_ratio"`
	EVEBITDA          float64 `json:"ev_ebitda"`
	EVRevenue         float64 `json:"ev_revenue"`
	NetDebt           float64 `json:"net_debt"`
}

// Metrics collects the standalone valuation metrics.
func (c Company) Metrics() ValuationMetrics {
	return ValuationMetrics{
		MarketCap:         c.MarketData.MarketCap(),
		EnterpriseValue:   c.EnterpriseValue(),
		SharePrice:        c.MarketData.SharePrice,
		SharesOutstanding: c.MarketData.SharesOutstanding,
		EPS:               c.EPS(),
		PERatio:           c.PERatio(),
		EVEBITDA:          c.EVEBITDA(),
		EVRevenue:         c.EVRevenue(),
		NetDebt:           c.BalanceSheet.NetDebt(),
	}
}
