// Package deal models the transaction terms: offer, consideration mix,
// financing tranches, fees, and the sources & uses reconciliation.
package deal

// TrancheKind classifies a debt financing tranche.
type TrancheKind string

const (
	TermLoanA       TrancheKind = "term_loan_a"
	TermLoanB       TrancheKind = "term_loan_b"
	SeniorNotes     TrancheKind = "senior_notes"
	HighYieldBonds  TrancheKind = "high_yield_bonds"
	RevolvingCredit TrancheKind = "revolving_credit"
	BridgeLoan      TrancheKind = "bridge_loan"
)

// DebtTranche is one piece of new acquisition financing.
type DebtTranche struct {
	Name              string      `json:"name" yaml:"name"`
	Kind              TrancheKind `json:"kind" yaml:"kind"`
	Principal         float64     `json:"principal" yaml:"principal"`
	InterestRate      float64     `json:"interest_rate" yaml:"interest_rate"`
	MaturityYears     int         `json:"maturity_years" yaml:"maturity_years"`
	AmortizationYears *int        `json:"amortization_years,omitempty" yaml:"amortization_years"` // nil = bullet
	OriginationFee    float64     `json:"origination_fee" yaml:"origination_fee"`
	CommitmentFee     float64     `json:"commitment_fee" yaml:"commitment_fee"` // revolvers
}

// AnnualInterest is the cash interest on the tranche.
func (t DebtTranche) AnnualInterest() float64 {
	return t.Principal * t.InterestRate
}

// AnnualAmortization is the scheduled principal repayment; bullets return 0.
func (t DebtTranche) AnnualAmortization() float64 {
	if t.AmortizationYears == nil || *t.AmortizationYears == 0 {
		return 0
	}
	return t.Principal / float64(*t.AmortizationYears)
}

// EquityFinancing describes a primary share issuance funding the deal.
type EquityFinancing struct {
	NewSharesIssued      float64 `json:"new_shares_issued" yaml:"new_shares_issued"`
	IssuePrice           float64 `json:"issue_price" yaml:"issue_price"`
	IssuanceCostsPercent float64 `json:"issuance_costs_percent" yaml:"issuance_costs_percent"`
}

// GrossProceeds before issuance costs.
func (e EquityFinancing) GrossProceeds() float64 {
	return e.NewSharesIssued * e.IssuePrice
}

// IssuanceCosts charged by the underwriters.
func (e EquityFinancing) IssuanceCosts() float64 {
	return e.GrossProceeds() * e.IssuanceCostsPercent
}

// NetProceeds after issuance costs.
func (e EquityFinancing) NetProceeds() float64 {
	return e.GrossProceeds() - e.IssuanceCosts()
}

// TransactionCosts are the advisor-side fees of the deal.
type TransactionCosts struct {
	AdvisoryFees         float64 `json:"advisory_fees" yaml:"advisory_fees"`
	LegalFees            float64 `json:"legal_fees" yaml:"legal_fees"`
	AccountingFees       float64 `json:"accounting_fees" yaml:"accounting_fees"`
	RegulatoryFilingFees float64 `json:"regulatory_filing_fees" yaml:"regulatory_filing_fees"`
	OtherFees            float64 `json:"other_fees" yaml:"other_fees"`
}

// Total across all fee lines.
func (c TransactionCosts) Total() float64 {
	return c.AdvisoryFees + c.LegalFees + c.AccountingFees + c.RegulatoryFilingFees + c.OtherFees
}

// Terms is the full deal record. CashPercentage must be in [0,1]; the
// stock percentage is always its complement. Sensitivity sweeps never
// mutate a shared Terms: each trial operates on a Clone with one field
// overridden.
type Terms struct {
	// Valuation
	OfferPricePerShare      float64 `json:"offer_price_per_share" yaml:"offer_price_per_share"`
	TargetSharesOutstanding float64 `json:"target_shares_outstanding" yaml:"target_shares_outstanding"`
	TargetOptionsDilution   float64 `json:"target_options_dilution" yaml:"target_options_dilution"`
	TargetCurrentPrice      float64 `json:"target_current_price" yaml:"target_current_price"`

	// Consideration mix
	CashPercentage     float64 `json:"cash_percentage" yaml:"cash_percentage"`
	StockExchangeRatio float64 `json:"stock_exchange_ratio" yaml:"stock_exchange_ratio"`

	// Financing sources
	AcquirerCashUsed float64           `json:"acquirer_cash_used" yaml:"acquirer_cash_used"`
	DebtTranches     []DebtTranche     `json:"debt_tranches" yaml:"debt_tranches"`
	EquityFinancing  *EquityFinancing  `json:"equity_financing,omitempty" yaml:"equity_financing"`
	TransactionCosts *TransactionCosts `json:"transaction_costs,omitempty" yaml:"transaction_costs"`

	// Target debt treatment
	RefinanceTargetDebt   bool    `json:"refinance_target_debt" yaml:"refinance_target_debt"`
	TargetDebtToRefinance float64 `json:"target_debt_to_refinance" yaml:"target_debt_to_refinance"`

	// Tax
	TaxRate float64 `json:"tax_rate" yaml:"tax_rate"`
}

// StockPercentage is the complement of the cash percentage.
func (t *Terms) StockPercentage() float64 {
	return 1 - t.CashPercentage
}

// DilutedTargetShares includes option/RSU dilution.
func (t *Terms) DilutedTargetShares() float64 {
	return t.TargetSharesOutstanding * (1 + t.TargetOptionsDilution)
}

// EquityPurchasePrice is the total consideration to target shareholders.
func (t *Terms) EquityPurchasePrice() float64 {
	return t.OfferPricePerShare * t.DilutedTargetShares()
}

// ControlPremium over the target's undisturbed price. 0 when no current
// price is known.
func (t *Terms) ControlPremium() float64 {
	if t.TargetCurrentPrice <= 0 {
		return 0
	}
	return t.OfferPricePerShare/t.TargetCurrentPrice - 1
}

// ImpliedEV is equity value plus refinanced target debt.
func (t *Terms) ImpliedEV() float64 {
	return t.EquityPurchasePrice() + t.TargetDebtToRefinance
}

// CashConsideration paid to target shareholders.
func (t *Terms) CashConsideration() float64 {
	return t.EquityPurchasePrice() * t.CashPercentage
}

// StockConsiderationValue issued to target shareholders.
func (t *Terms) StockConsiderationValue() float64 {
	return t.EquityPurchasePrice() * t.StockPercentage()
}

// TotalDebtFinancing is the sum of new tranche principals.
func (t *Terms) TotalDebtFinancing() float64 {
	var sum float64
	for _, tr := range t.DebtTranches {
		sum += tr.Principal
	}
	return sum
}

// TotalDebtCosts is the origination fees across tranches.
func (t *Terms) TotalDebtCosts() float64 {
	var sum float64
	for _, tr := range t.DebtTranches {
		sum += tr.Principal * tr.OriginationFee
	}
	return sum
}

// TotalEquityFinancing is net primary-issuance proceeds.
func (t *Terms) TotalEquityFinancing() float64 {
	if t.EquityFinancing == nil {
		return 0
	}
	return t.EquityFinancing.NetProceeds()
}

// TotalTransactionCosts aggregates debt, advisor, and issuance fees.
func (t *Terms) TotalTransactionCosts() float64 {
	costs := t.TotalDebtCosts()
	if t.TransactionCosts != nil {
		costs += t.TransactionCosts.Total()
	}
	if t.EquityFinancing != nil {
		costs += t.EquityFinancing.IssuanceCosts()
	}
	return costs
}

// AnnualInterestExpense on the new financing.
func (t *Terms) AnnualInterestExpense() float64 {
	var sum float64
	for _, tr := range t.DebtTranches {
		sum += tr.AnnualInterest()
	}
	return sum
}

// AnnualAmortization on the new financing.
func (t *Terms) AnnualAmortization() float64 {
	var sum float64
	for _, tr := range t.DebtTranches {
		sum += tr.AnnualAmortization()
	}
	return sum
}

// FundsLine is one row of a sources or uses table.
type FundsLine struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// SourcesOfFunds lists where transaction funding comes from.
func (t *Terms) SourcesOfFunds() ([]FundsLine, float64) {
	lines := []FundsLine{{Label: "acquirer_cash", Amount: t.AcquirerCashUsed}}
	for _, tr := range t.DebtTranches {
		lines = append(lines, FundsLine{Label: "debt_" + tr.Name, Amount: tr.Principal})
	}
	if t.EquityFinancing != nil {
		lines = append(lines, FundsLine{Label: "equity_issuance", Amount: t.EquityFinancing.GrossProceeds()})
	}
	var total float64
	for _, l := range lines {
		total += l.Amount
	}
	return lines, total
}

// UsesOfFunds lists where that funding is spent.
func (t *Terms) UsesOfFunds() ([]FundsLine, float64) {
	lines := []FundsLine{
		{Label: "equity_purchase_price", Amount: t.EquityPurchasePrice()},
		{Label: "refinance_target_debt", Amount: t.TargetDebtToRefinance},
		{Label: "debt_financing_costs", Amount: t.TotalDebtCosts()},
	}
	if t.TransactionCosts != nil {
		lines = append(lines,
			FundsLine{Label: "advisory_fees", Amount: t.TransactionCosts.AdvisoryFees},
			FundsLine{Label: "legal_fees", Amount: t.TransactionCosts.LegalFees},
			FundsLine{Label: "other_transaction_costs", Amount: t.TransactionCosts.AccountingFees + t.TransactionCosts.RegulatoryFilingFees + t.TransactionCosts.OtherFees},
		)
	}
	if t.EquityFinancing != nil {
		lines = append(lines, FundsLine{Label: "equity_issuance_costs", Amount: t.EquityFinancing.IssuanceCosts()})
	}
	var total float64
	for _, l := range lines {
		total += l.Amount
	}
	return lines, total
}

// ValidateSourcesUses reports whether sources match uses within the $1
// rounding tolerance. The imbalance is returned for the caller to judge
// materiality; it is never treated as fatal here.
func (t *Terms) ValidateSourcesUses() (bool, float64) {
	_, sources := t.SourcesOfFunds()
	_, uses := t.UsesOfFunds()
	diff := sources - uses
	return diff < 1 && diff > -1, diff
}

// Clone deep-copies the terms, including tranches and optional blocks.
// Sweep trials and price searches operate on clones so the base deal is
// never observed mid-mutation.
func (t *Terms) Clone() *Terms {
	out := *t
	out.DebtTranches = make([]DebtTranche, len(t.DebtTranches))
	for i, tr := range t.DebtTranches {
		out.DebtTranches[i] = tr
		if tr.AmortizationYears != nil {
			y := *tr.AmortizationYears
			out.DebtTranches[i].AmortizationYears = &y
		}
	}
	if t.EquityFinancing != nil {
		ef := *t.EquityFinancing
		out.EquityFinancing = &ef
	}
	if t.TransactionCosts != nil {
		tc := *t.TransactionCosts
		out.TransactionCosts = &tc
	}
	return &out
}

// FinancingSummary is the flattened reporting view of the structure.
type FinancingSummary struct {
	OfferPricePerShare    float64     `json:"offer_price_per_share"`
	EquityPurchasePrice   float64     `json:"equity_purchase_price"`
	ControlPremium        float64     `json:"control_premium"`
	ImpliedEV             float64     `json:"implied_ev"`
	CashPercentage        float64     `json:"cash_percentage"`
	StockPercentage       float64     `json:"stock_percentage"`
	Sources               []FundsLine `json:"sources"`
	TotalSources          float64     `json:"total_sources"`
	Uses                  []FundsLine `json:"uses"`
	TotalUses             float64     `json:"total_uses"`
	IsBalanced            bool        `json:"is_balanced"`
	Difference            float64     `json:"difference"`
	AnnualInterestExpense float64     `json:"annual_interest_expense"`
	TotalTransactionCosts float64     `json:"total_transaction_costs"`
}

// Summary builds the reporting view.
func (t *Terms) Summary() FinancingSummary {
	sources, totalSources := t.SourcesOfFunds()
	uses, totalUses := t.UsesOfFunds()
	balanced, diff := t.ValidateSourcesUses()
	return FinancingSummary{
		OfferPricePerShare:    t.OfferPricePerShare,
		EquityPurchasePrice:   t.EquityPurchasePrice(),
		ControlPremium:        t.ControlPremium(),
		ImpliedEV:             t.ImpliedEV(),
		CashPercentage:        t.CashPercentage,
		StockPercentage:       t.StockPercentage(),
		Sources:               sources,
		TotalSources:          totalSources,
		Uses:                  uses,
		TotalUses:             totalUses,
		IsBalanced:            balanced,
		Difference:            diff,
		AnnualInterestExpense: t.AnnualInterestExpense(),
		TotalTransactionCosts: t.TotalTransactionCosts(),
	}
}
