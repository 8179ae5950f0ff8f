// Package proforma builds the combined entity's projected income
// statement, close-date balance sheet, cash flows, and credit metrics
// over the deal horizon.
package proforma

import (
	"math"

	"merger_model/pkg/core/deal"
	"merger_model/pkg/core/synergy"
	"merger_model/pkg/models"
)

// ForegoneCashRate mirrors the accretion engine's assumed return on the
// acquirer cash consumed by the deal.
const ForegoneCashRate = 0.02

// IntangibleAllocationRatio is the share of the purchase premium booked
// as identifiable intangibles at close.
const IntangibleAllocationRatio = 0.30

// Assumptions drive the projection. Margin assumptions replace, not
// extrapolate, the trailing margins in projected years.
type Assumptions struct {
	ProjectionYears       int     `json:"projection_years" yaml:"projection_years"`
	AcquirerRevenueGrowth float64 `json:"acquirer_revenue_growth" yaml:"acquirer_revenue_growth"`
	TargetRevenueGrowth   float64 `json:"target_revenue_growth" yaml:"target_revenue_growth"`
	AcquirerEBITDAMargin  float64 `json:"acquirer_ebitda_margin" yaml:"acquirer_ebitda_margin"`
	TargetEBITDAMargin    float64 `json:"target_ebitda_margin" yaml:"target_ebitda_margin"`
	DAPercentRevenue      float64 `json:"da_percent_revenue" yaml:"da_percent_revenue"`
	CapexPercentRevenue   float64 `json:"capex_percent_revenue" yaml:"capex_percent_revenue"`
	NWCPercentRevenue     float64 `json:"nwc_percent_revenue" yaml:"nwc_percent_revenue"`
	TaxRate               float64 `json:"tax_rate" yaml:"tax_rate"`
	DebtPaydownPercentFCF float64 `json:"debt_paydown_percent_fcf" yaml:"debt_paydown_percent_fcf"`
}

// DefaultAssumptions is the standard five-year case.
func DefaultAssumptions() Assumptions {
	return Assumptions{
		ProjectionYears:       5,
		AcquirerRevenueGrowth: 0.05,
		TargetRevenueGrowth:   0.08,
		AcquirerEBITDAMargin:  0.20,
		TargetEBITDAMargin:    0.20,
		DAPercentRevenue:      0.03,
		CapexPercentRevenue:   0.04,
		NWCPercentRevenue:     0.10,
		TaxRate:               0.21,
		DebtPaydownPercentFCF: 0.50,
	}
}

// Projector produces the combined statements. Yearly results are pure
// functions of the year index plus the current deal and synergy state;
// nothing is cached across calls so cumulative quantities (debt paydown)
// are always reconstructed from scratch.
type Projector struct {
	Acquirer    models.Company
	Target      models.Company
	Deal        *deal.Terms
	Synergies   *synergy.Schedule // optional
	Assumptions Assumptions
}

// IncomeStatement is the combined statement for one projected year.
type IncomeStatement struct {
	Year                     int     `json:"year"`
	AcquirerRevenue          float64 `json:"acquirer_revenue"`
	TargetRevenue            float64 `json:"target_revenue"`
	SynergyRevenue           float64 `json:"synergy_revenue"`
	CombinedRevenue          float64 `json:"combined_revenue"`
	AcquirerEBITDA           float64 `json:"acquirer_ebitda"`
	TargetEBITDA             float64 `json:"target_ebitda"`
	SynergyEBITDA            float64 `json:"synergy_ebitda"`
	CombinedEBITDA           float64 `json:"combined_ebitda"`
	EBITDAMargin             float64 `json:"ebitda_margin"`
	DepreciationAmortization float64 `json:"depreciation_amortization"`
	EBIT                     float64 `json:"ebit"`
	InterestExpense          float64 `json:"interest_expense"`
	InterestIncome           float64 `json:"interest_income"`
	PretaxIncome             float64 `json:"pretax_income"`
	IntegrationCosts         float64 `json:"integration_costs"`
	AdjustedPretaxIncome     float64 `json:"adjusted_pretax_income"`
	TaxExpense               float64 `json:"tax_expense"`
	NetIncome                float64 `json:"net_income"`
	NetIncomeMargin          float64 `json:"net_income_margin"`
}

// CombinedIncomeStatement builds the statement for a year. Year 0 is the
// close: actual reported figures, no synergies. Later years compound each
// company's revenue growth and recompute EBITDA from the margin
// assumption.
func (p *Projector) CombinedIncomeStatement(year int) IncomeStatement {
	a := p.Assumptions

	acqRevenue := p.Acquirer.IncomeStatement.Revenue
	tgtRevenue := p.Target.IncomeStatement.Revenue
	acqEBITDA := p.Acquirer.IncomeStatement.EBITDA
	tgtEBITDA := p.Target.IncomeStatement.EBITDA

	if year > 0 {
		acqRevenue *= math.Pow(1+a.AcquirerRevenueGrowth, float64(year))
		tgtRevenue *= math.Pow(1+a.TargetRevenueGrowth, float64(year))
		acqEBITDA = acqRevenue * a.AcquirerEBITDAMargin
		tgtEBITDA = tgtRevenue * a.TargetEBITDAMargin
	}

	var synergyRevenue, synergyEBITDA, integrationCosts float64
	if p.Synergies != nil && year > 0 {
		synergyRevenue = p.Synergies.RevenueSynergies(year)
		synergyEBITDA = p.Synergies.EBITDAImpact(year)
		integrationCosts = p.Synergies.IntegrationCosts(year)
	}

	revenue := acqRevenue + tgtRevenue + synergyRevenue
	ebitda := acqEBITDA + tgtEBITDA + synergyEBITDA

	da := revenue * a.DAPercentRevenue
	ebit := ebitda - da

	// Original interest survives unless the target's debt is taken out.
	originalInterest := p.Acquirer.IncomeStatement.InterestExpense + p.Target.IncomeStatement.InterestExpense
	if p.Deal.RefinanceTargetDebt {
		originalInterest -= p.Target.IncomeStatement.InterestExpense
	}
	totalInterest := originalInterest + p.Deal.AnnualInterestExpense()

	originalInterestIncome := p.Acquirer.IncomeStatement.InterestIncome + p.Target.IncomeStatement.InterestIncome
	interestIncome := math.Max(0, originalInterestIncome-p.Deal.AcquirerCashUsed*ForegoneCashRate)

	pretax := ebit - totalInterest + interestIncome
	adjustedPretax := pretax - integrationCosts
	tax := math.Max(0, adjustedPretax*a.TaxRate)
	netIncome := adjustedPretax - tax

	return IncomeStatement{
		Year:                     year,
		AcquirerRevenue:          acqRevenue,
		TargetRevenue:            tgtRevenue,
		SynergyRevenue:           synergyRevenue,
		CombinedRevenue:          revenue,
		AcquirerEBITDA:           acqEBITDA,
		TargetEBITDA:             tgtEBITDA,
		SynergyEBITDA:            synergyEBITDA,
		CombinedEBITDA:           ebitda,
		EBITDAMargin:             ebitda / revenue,
		DepreciationAmortization: da,
		EBIT:                     ebit,
		InterestExpense:          totalInterest,
		InterestIncome:           interestIncome,
		PretaxIncome:             pretax,
		IntegrationCosts:         integrationCosts,
		AdjustedPretaxIncome:     adjustedPretax,
		TaxExpense:               tax,
		NetIncome:                netIncome,
		NetIncomeMargin:          netIncome / revenue,
	}
}

// BalanceSheetAssets is the asset side at close.
type BalanceSheetAssets struct {
	CashAndEquivalents     float64 `json:"cash_and_equivalents"`
	AccountsReceivable     float64 `json:"accounts_receivable"`
	Inventory              float64 `json:"inventory"`
	OtherCurrentAssets     float64 `json:"other_current_assets"`
	TotalCurrentAssets     float64 `json:"total_current_assets"`
	PropertyPlantEquipment float64 `json:"property_plant_equipment"`
	Goodwill               float64 `json:"goodwill"`
	NewGoodwillCreated     float64 `json:"new_goodwill_created"`
	IntangibleAssets       float64 `json:"intangible_assets"`
	NewIntangiblesCreated  float64 `json:"new_intangibles_created"`
	OtherNonCurrentAssets  float64 `json:"other_non_current_assets"`
	TotalAssets            float64 `json:"total_assets"`
}

// BalanceSheetLiabilities is the liability side at close.
type BalanceSheetLiabilities struct {
	AccountsPayable            float64 `json:"accounts_payable"`
	ShortTermDebt              float64 `json:"short_term_debt"`
	OtherCurrentLiabilities    float64 `json:"other_current_liabilities"`
	TotalCurrentLiabilities    float64 `json:"total_current_liabilities"`
	LongTermDebt               float64 `json:"long_term_debt"`
	NewDebtRaised              float64 `json:"new_debt_raised"`
	OtherNonCurrentLiabilities float64 `json:"other_non_current_liabilities"`
	TotalLiabilities           float64 `json:"total_liabilities"`
}

// BalanceSheetEquity is the equity side at close.
type BalanceSheetEquity struct {
	TotalEquity             float64 `json:"total_equity"`
	StockConsiderationAdded float64 `json:"stock_consideration_added"`
}

// BalanceSheet is the pro-forma position at close, with the $1 balance
// check reported rather than enforced.
type BalanceSheet struct {
	Assets      BalanceSheetAssets      `json:"assets"`
	Liabilities BalanceSheetLiabilities `json:"liabilities"`
	Equity      BalanceSheetEquity      `json:"equity"`

	TotalLiabilitiesAndEquity float64 `json:"total_liabilities_and_equity"`
	Balanced                  bool    `json:"balanced"`
	BalanceDelta              float64 `json:"balance_delta"`
}

// CombinedBalanceSheet builds the position at close only; the balance
// sheet is not projected forward.
func (p *Projector) CombinedBalanceSheet() BalanceSheet {
	acq := p.Acquirer.BalanceSheet
	tgt := p.Target.BalanceSheet

	cash := acq.CashAndEquivalents + tgt.CashAndEquivalents - p.Deal.AcquirerCashUsed
	receivables := acq.AccountsReceivable + tgt.AccountsReceivable
	inventory := acq.Inventory + tgt.Inventory
	otherCurrent := acq.OtherCurrentAssets + tgt.OtherCurrentAssets
	totalCurrent := cash + receivables + inventory + otherCurrent

	ppe := acq.PropertyPlantEquipment + tgt.PropertyPlantEquipment

	premium := p.Deal.EquityPurchasePrice() - tgt.TotalEquity
	newGoodwill := math.Max(0, premium)
	goodwill := acq.Goodwill + tgt.Goodwill + newGoodwill

	newIntangibles := premium * IntangibleAllocationRatio
	intangibles := acq.IntangibleAssets + tgt.IntangibleAssets + newIntangibles

	otherNonCurrent := acq.OtherNonCurrentAssets + tgt.OtherNonCurrentAssets
	totalAssets := totalCurrent + ppe + goodwill + intangibles + otherNonCurrent

	payables := acq.AccountsPayable + tgt.AccountsPayable
	shortTermDebt := acq.ShortTermDebt
	longTermDebt := acq.LongTermDebt
	if !p.Deal.RefinanceTargetDebt {
		shortTermDebt += tgt.ShortTermDebt
		longTermDebt += tgt.LongTermDebt
	}
	otherCurrentLiab := acq.OtherCurrentLiabilities + tgt.OtherCurrentLiabilities
	totalCurrentLiab := payables + shortTermDebt + otherCurrentLiab

	newDebt := p.Deal.TotalDebtFinancing()
	totalLongTermDebt := longTermDebt + newDebt
	otherNonCurrentLiab := acq.OtherNonCurrentLiabilities + tgt.OtherNonCurrentLiabilities
	totalLiabilities := totalCurrentLiab + totalLongTermDebt + otherNonCurrentLiab

	stockIssued := p.Deal.StockConsiderationValue()
	totalEquity := acq.TotalEquity + stockIssued

	liabAndEquity := totalLiabilities + totalEquity
	delta := totalAssets - liabAndEquity

	return BalanceSheet{
		Assets: BalanceSheetAssets{
			CashAndEquivalents:     cash,
			AccountsReceivable:     receivables,
			Inventory:              inventory,
			OtherCurrentAssets:     otherCurrent,
			TotalCurrentAssets:     totalCurrent,
			PropertyPlantEquipment: ppe,
			Goodwill:               goodwill,
			NewGoodwillCreated:     newGoodwill,
			IntangibleAssets:       intangibles,
			NewIntangiblesCreated:  newIntangibles,
			OtherNonCurrentAssets:  otherNonCurrent,
			TotalAssets:            totalAssets,
		},
		Liabilities: BalanceSheetLiabilities{
			AccountsPayable:            payables,
			ShortTermDebt:              shortTermDebt,
			OtherCurrentLiabilities:    otherCurrentLiab,
			TotalCurrentLiabilities:    totalCurrentLiab,
			LongTermDebt:               totalLongTermDebt,
			NewDebtRaised:              newDebt,
			OtherNonCurrentLiabilities: otherNonCurrentLiab,
			TotalLiabilities:           totalLiabilities,
		},
		Equity: BalanceSheetEquity{
			TotalEquity:             totalEquity,
			StockConsiderationAdded: stockIssued,
		},
		TotalLiabilitiesAndEquity: liabAndEquity,
		Balanced:                  math.Abs(delta) < 1,
		BalanceDelta:              delta,
	}
}

// CashFlow is the projected flow for one year.
type CashFlow struct {
	Year                     int     `json:"year"`
	NetIncome                float64 `json:"net_income"`
	DepreciationAmortization float64 `json:"depreciation_amortization"`
	WorkingCapitalChange     float64 `json:"working_capital_change"` // negative = use of cash
	OperatingCashFlow        float64 `json:"operating_cash_flow"`
	Capex                    float64 `json:"capex"` // negative
	FreeCashFlow             float64 `json:"free_cash_flow"`
	DebtPaydown              float64 `json:"debt_paydown"` // negative
	NetChangeInCash          float64 `json:"net_change_in_cash"`
}

// CashFlowProjection builds the cash flow for year >= 1. The working
// capital model is marginal: only the year-over-year revenue delta is
// taxed by the NWC ratio.
func (p *Projector) CashFlowProjection(year int) CashFlow {
	a := p.Assumptions
	current := p.CombinedIncomeStatement(year)

	priorYear := year - 1
	if year <= 1 {
		priorYear = 0
	}
	prior := p.CombinedIncomeStatement(priorYear)

	revenueChange := current.CombinedRevenue - prior.CombinedRevenue
	nwcChange := revenueChange * a.NWCPercentRevenue

	operatingCF := current.NetIncome + current.DepreciationAmortization - nwcChange
	capex := current.CombinedRevenue * a.CapexPercentRevenue
	fcf := operatingCF - capex

	var paydown float64
	if fcf > 0 {
		paydown = fcf * a.DebtPaydownPercentFCF
	}

	return CashFlow{
		Year:                     year,
		NetIncome:                current.NetIncome,
		DepreciationAmortization: current.DepreciationAmortization,
		WorkingCapitalChange:     -nwcChange,
		OperatingCashFlow:        operatingCF,
		Capex:                    -capex,
		FreeCashFlow:             fcf,
		DebtPaydown:              -paydown,
		NetChangeInCash:          fcf - paydown,
	}
}

// CreditMetrics for one year.
type CreditMetrics struct {
	Year             int     `json:"year"`
	TotalDebt        float64 `json:"total_debt"`
	EBITDA           float64 `json:"ebitda"`
	InterestExpense  float64 `json:"interest_expense"`
	LeverageRatio    float64 `json:"leverage_ratio"`    // +Inf when EBITDA <= 0
	InterestCoverage float64 `json:"interest_coverage"` // +Inf when interest <= 0
	DebtToEquity     float64 `json:"debt_to_equity"`
}

// CreditMetricsFor computes leverage and coverage for a year. Debt starts
// at the close-date level and is reduced by the cumulative paydown,
// recomputed from scratch by replaying CashFlowProjection for every year
// 1..year. That replay is quadratic in the horizon; any memoization must
// preserve identical cumulative totals, since paydown is strictly
// cumulative.
func (p *Projector) CreditMetricsFor(year int) CreditMetrics {
	income := p.CombinedIncomeStatement(year)
	balance := p.CombinedBalanceSheet()

	totalDebt := balance.Liabilities.ShortTermDebt + balance.Liabilities.LongTermDebt
	if year > 0 {
		var cumulativePaydown float64
		for y := 1; y <= year; y++ {
			cumulativePaydown += math.Abs(p.CashFlowProjection(y).DebtPaydown)
		}
		totalDebt = math.Max(0, totalDebt-cumulativePaydown)
	}

	leverage := math.Inf(1)
	if income.CombinedEBITDA > 0 {
		leverage = totalDebt / income.CombinedEBITDA
	}
	coverage := math.Inf(1)
	if income.InterestExpense > 0 {
		coverage = income.CombinedEBITDA / income.InterestExpense
	}

	return CreditMetrics{
		Year:             year,
		TotalDebt:        totalDebt,
		EBITDA:           income.CombinedEBITDA,
		InterestExpense:  income.InterestExpense,
		LeverageRatio:    leverage,
		InterestCoverage: coverage,
		DebtToEquity:     totalDebt / balance.Equity.TotalEquity,
	}
}

// Projection is the full multi-year output.
type Projection struct {
	BalanceSheetAtClose BalanceSheet      `json:"balance_sheet_at_close"`
	IncomeStatements    []IncomeStatement `json:"income_statements"` // years 0..N
	CashFlows           []CashFlow        `json:"cash_flows"`        // years 1..N
	CreditMetrics       []CreditMetrics   `json:"credit_metrics"`    // years 0..N
	Assumptions         Assumptions       `json:"assumptions"`
}

// FullProjection runs the close-date balance sheet plus every yearly
// statement for the configured horizon.
func (p *Projector) FullProjection() Projection {
	years := p.Assumptions.ProjectionYears

	out := Projection{
		BalanceSheetAtClose: p.CombinedBalanceSheet(),
		Assumptions:         p.Assumptions,
	}
	for year := 0; year <= years; year++ {
		out.IncomeStatements = append(out.IncomeStatements, p.CombinedIncomeStatement(year))
		if year > 0 {
			out.CashFlows = append(out.CashFlows, p.CashFlowProjection(year))
		}
		out.CreditMetrics = append(out.CreditMetrics, p.CreditMetricsFor(year))
	}
	return out
}

// RangeMetric reports a line item at close, year 1, and the final year.
type RangeMetric struct {
	AtClose float64 `json:"at_close"`
	Year1   float64 `json:"year_1"`
	Year5   float64 `json:"year_5"`
}

// KeyMetrics is the condensed projection summary.
type KeyMetrics struct {
	Revenue           RangeMetric `json:"revenue"`
	RevenueCAGR       float64     `json:"revenue_cagr_5yr"`
	EBITDA            RangeMetric `json:"ebitda"`
	NetIncome         RangeMetric `json:"net_income"`
	EBITDAMarginClose float64     `json:"ebitda_margin_close"`
	EBITDAMarginFinal float64     `json:"ebitda_margin_year5"`
	NetMarginClose    float64     `json:"net_margin_close"`
	NetMarginFinal    float64     `json:"net_margin_year5"`
	LeverageAtClose   float64     `json:"leverage_at_close"`
	LeverageFinal     float64     `json:"leverage_year5"`
	Deleveraging      float64     `json:"deleveraging"`
	CoverageAtClose   float64     `json:"coverage_at_close"`
	CoverageFinal     float64     `json:"coverage_year5"`
}

// KeyMetricsSummary condenses the projection into headline figures.
func (p *Projector) KeyMetricsSummary() KeyMetrics {
	final := p.Assumptions.ProjectionYears
	atClose := p.CombinedIncomeStatement(0)
	year1 := p.CombinedIncomeStatement(1)
	lastYear := p.CombinedIncomeStatement(final)

	creditClose := p.CreditMetricsFor(0)
	creditFinal := p.CreditMetricsFor(final)

	return KeyMetrics{
		Revenue:           RangeMetric{AtClose: atClose.CombinedRevenue, Year1: year1.CombinedRevenue, Year5: lastYear.CombinedRevenue},
		RevenueCAGR:       math.Pow(lastYear.CombinedRevenue/atClose.CombinedRevenue, 1/float64(final)) - 1,
		EBITDA:            RangeMetric{AtClose: atClose.CombinedEBITDA, Year1: year1.CombinedEBITDA, Year5: lastYear.CombinedEBITDA},
		NetIncome:         RangeMetric{AtClose: atClose.NetIncome, Year1: year1.NetIncome, Year5: lastYear.NetIncome},
		EBITDAMarginClose: atClose.EBITDAMargin,
		EBITDAMarginFinal: lastYear.EBITDAMargin,
		NetMarginClose:    atClose.NetIncomeMargin,
		NetMarginFinal:    lastYear.NetIncomeMargin,
		LeverageAtClose:   creditClose.LeverageRatio,
		LeverageFinal:     creditFinal.LeverageRatio,
		Deleveraging:      creditClose.LeverageRatio - creditFinal.LeverageRatio,
		CoverageAtClose:   creditClose.InterestCoverage,
		CoverageFinal:     creditFinal.InterestCoverage,
	}
}
