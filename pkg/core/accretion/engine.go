// Package accretion computes single-year pro-forma EPS impact of a deal
// and the breakeven searches built on top of it.
package accretion

import (
	"errors"
	"math"

	"merger_model/pkg/core/deal"
	"merger_model/pkg/core/synergy"
	"merger_model/pkg/models"
)

// Classification of the EPS change.
type Classification string

const (
	Accretive Classification = "accretive"
	Dilutive  Classification = "dilutive"
	Neutral   Classification = "neutral"
)

// NeutralThreshold is the default EPS-change band (in dollars) treated as
// neutral. It is a documented tie-break, not a law of the domain, and can
// be overridden per Engine.
const NeutralThreshold = 0.001

// CashReinvestmentRate is the assumed pre-tax return on the acquirer cash
// consumed by the deal.
const CashReinvestmentRate = 0.02

// IntangibleAllocationRatio is the share of the purchase premium booked
// as identifiable intangibles.
const IntangibleAllocationRatio = 0.30

// Engine runs the pro-forma EPS math for one acquirer/target/deal triple.
type Engine struct {
	Acquirer  models.Company
	Target    models.Company
	Deal      *deal.Terms
	Synergies *synergy.Schedule // optional

	// Threshold overrides NeutralThreshold when > 0.
	Threshold float64
}

// RunOptions selects the analysis year and optional adjustments.
type RunOptions struct {
	Year                 int
	IncludeSynergies     bool
	IncludeAmortization  bool
	IntangibleUsefulLife int
}

// DefaultRunOptions is a year-1 run with synergies and a 10-year
// intangible life.
func DefaultRunOptions() RunOptions {
	return RunOptions{Year: 1, IncludeSynergies: true, IncludeAmortization: true, IntangibleUsefulLife: 10}
}

// Standalone holds the pre-deal reference figures.
type Standalone struct {
	AcquirerEPS       float64 `json:"acquirer_eps"`
	AcquirerNetIncome float64 `json:"acquirer_net_income"`
	AcquirerShares    float64 `json:"acquirer_shares"`
	TargetEPS         float64 `json:"target_eps"`
	TargetNetIncome   float64 `json:"target_net_income"`
}

// Adjustments holds every deal-driven income adjustment, pre and after tax.
type Adjustments struct {
	NewInterestExpense       float64 `json:"new_interest_expense"`
	AfterTaxInterestCost     float64 `json:"after_tax_interest_cost"`
	ForegoneInterestIncome   float64 `json:"foregone_interest_income"`
	AfterTaxForegoneInterest float64 `json:"after_tax_foregone_interest"`
	IntangibleAmortization   float64 `json:"intangible_amortization"`
	AfterTaxAmortization     float64 `json:"after_tax_amortization"`
	SynergyBenefit           float64 `json:"synergy_benefit"`
}

// ProForma holds the combined entity figures.
type ProForma struct {
	NetIncome         float64 `json:"net_income"`
	SharesOutstanding float64 `json:"shares_outstanding"`
	NewSharesIssued   float64 `json:"new_shares_issued"`
	EPS               float64 `json:"eps"`
}

// Verdict holds the classification block.
type Verdict struct {
	EPSChangeDollars float64        `json:"eps_change_dollars"`
	EPSChangePercent float64        `json:"eps_change_percent"`
	Result           Classification `json:"result"`
}

// Result exposes every intermediate of a run; sensitivity and reporting
// consumers pick the pieces they need.
type Result struct {
	Standalone        Standalone  `json:"standalone"`
	Adjustments       Adjustments `json:"adjustments"`
	ProForma          ProForma    `json:"pro_forma"`
	AccretionDilution Verdict     `json:"accretion_dilution"`
	Year              int         `json:"year"`
}

// NewSharesIssued from the stock portion: zero for all-cash deals.
func (e *Engine) NewSharesIssued() float64 {
	if e.Deal.CashPercentage >= 1.0 {
		return 0
	}
	stockConsideration := e.Deal.EquityPurchasePrice() * e.Deal.StockPercentage()
	return stockConsideration / e.Acquirer.MarketData.SharePrice
}

// IntangibleAmortization is the straight-line annual charge on the
// intangibles carved out of the purchase premium.
func (e *Engine) IntangibleAmortization(usefulLifeYears int) float64 {
	premium := e.Deal.EquityPurchasePrice() - e.Target.BalanceSheet.TotalEquity
	newIntangibles := math.Max(0, premium*IntangibleAllocationRatio)
	return newIntangibles / float64(usefulLifeYears)
}

func (e *Engine) threshold() float64 {
	if e.Threshold > 0 {
		return e.Threshold
	}
	return NeutralThreshold
}

// Run executes the single-year accretion/dilution analysis.
func (e *Engine) Run(opts RunOptions) Result {
	taxRate := e.Deal.TaxRate

	// 1. Standalone reference
	acquirerEPS := e.Acquirer.EPS()
	standalone := Standalone{
		AcquirerEPS:       acquirerEPS,
		AcquirerNetIncome: e.Acquirer.IncomeStatement.NetIncome,
		AcquirerShares:    e.Acquirer.MarketData.SharesOutstanding,
		TargetEPS:         e.Target.EPS(),
		TargetNetIncome:   e.Target.IncomeStatement.NetIncome,
	}

	// 2. Financing cost of the deal
	newInterest := e.Deal.AnnualInterestExpense()
	foregoneInterest := e.Deal.AcquirerCashUsed * CashReinvestmentRate
	adj := Adjustments{
		NewInterestExpense:       newInterest,
		AfterTaxInterestCost:     newInterest * (1 - taxRate),
		ForegoneInterestIncome:   foregoneInterest,
		AfterTaxForegoneInterest: foregoneInterest * (1 - taxRate),
	}

	// 3. Purchase accounting
	if opts.IncludeAmortization {
		life := opts.IntangibleUsefulLife
		if life <= 0 {
			life = 10
		}
		adj.IntangibleAmortization = e.IntangibleAmortization(life)
		adj.AfterTaxAmortization = adj.IntangibleAmortization * (1 - taxRate)
	}

	// 4. Synergies
	if opts.IncludeSynergies && e.Synergies != nil {
		adj.SynergyBenefit = e.Synergies.NetIncomeImpact(opts.Year)
	}

	// 5. Combine
	proFormaNI := standalone.AcquirerNetIncome +
		standalone.TargetNetIncome -
		adj.AfterTaxInterestCost -
		adj.AfterTaxForegoneInterest -
		adj.AfterTaxAmortization +
		adj.SynergyBenefit

	newShares := e.NewSharesIssued()
	proFormaShares := standalone.AcquirerShares + newShares
	proFormaEPS := proFormaNI / proFormaShares

	// 6. Classify
	change := proFormaEPS - acquirerEPS
	verdict := Verdict{
		EPSChangeDollars: change,
		EPSChangePercent: change / acquirerEPS,
	}
	switch {
	case change > e.threshold():
		verdict.Result = Accretive
	case change < -e.threshold():
		verdict.Result = Dilutive
	default:
		verdict.Result = Neutral
	}

	return Result{
		Standalone:  standalone,
		Adjustments: adj,
		ProForma: ProForma{
			NetIncome:         proFormaNI,
			SharesOutstanding: proFormaShares,
			NewSharesIssued:   newShares,
			EPS:               proFormaEPS,
		},
		AccretionDilution: verdict,
		Year:              opts.Year,
	}
}

// MultiYear runs the analysis for years 1..years, showing synergy
// phase-in across the horizon.
func (e *Engine) MultiYear(years int, includeSynergies bool) []Result {
	out := make([]Result, 0, years)
	for year := 1; year <= years; year++ {
		opts := DefaultRunOptions()
		opts.Year = year
		opts.IncludeSynergies = includeSynergies
		out = append(out, e.Run(opts))
	}
	return out
}

// BreakevenSynergies returns the after-tax synergy dollars needed to
// lift year-1 EPS back to the standalone level. Zero when the deal is
// already accretive without synergies.
func (e *Engine) BreakevenSynergies() float64 {
	opts := DefaultRunOptions()
	opts.IncludeSynergies = false
	base := e.Run(opts)

	if base.AccretionDilution.Result == Accretive {
		return 0
	}
	dilution := -base.AccretionDilution.EPSChangeDollars
	return dilution * base.ProForma.SharesOutstanding
}

// ErrNotBracketed reports that the breakeven price search bounds do not
// straddle a sign change of the EPS-change objective, so no breakeven
// exists between the target's current price and twice the current offer.
var ErrNotBracketed = errors.New("breakeven price search: bounds do not bracket a sign change")

// BreakevenPriceOptions bound the bisection.
type BreakevenPriceOptions struct {
	Tolerance     float64
	MaxIterations int
}

// DefaultBreakevenPriceOptions converge to within a cent of a dollar.
func DefaultBreakevenPriceOptions() BreakevenPriceOptions {
	return BreakevenPriceOptions{Tolerance: 0.01, MaxIterations: 50}
}

// BreakevenPrice bisects for the offer price at which year-1 EPS change
// crosses zero, synergies included. The search runs on cloned deal terms,
// so the engine's deal is never touched. Bounds are the target's current
// trading price and twice the current offer; if the objective does not
// change sign between them the search reports ErrNotBracketed instead of
// converging to a meaningless boundary value.
func (e *Engine) BreakevenPrice(opts BreakevenPriceOptions) (float64, error) {
	if opts.MaxIterations <= 0 {
		opts = DefaultBreakevenPriceOptions()
	}

	epsChangeAt := func(price float64) float64 {
		trial := *e
		trial.Deal = e.Deal.Clone()
		trial.Deal.OfferPricePerShare = price
		return trial.Run(DefaultRunOptions()).AccretionDilution.EPSChangeDollars
	}

	low := e.Target.MarketData.SharePrice
	high := e.Deal.OfferPricePerShare * 2

	if epsChangeAt(low)*epsChangeAt(high) > 0 {
		return 0, ErrNotBracketed
	}

	mid := (low + high) / 2
	for i := 0; i < opts.MaxIterations; i++ {
		mid = (low + high) / 2
		if epsChangeAt(mid) > 0 {
			low = mid
		} else {
			high = mid
		}
		if math.Abs(high-low) < opts.Tolerance {
			break
		}
	}
	return mid, nil
}

// ContributionSplit is one acquirer/target percentage pair.
type ContributionSplit struct {
	AcquirerPct float64 `json:"acquirer_pct"`
	TargetPct   float64 `json:"target_pct"`
}

// OwnershipSplit divides the pro-forma share count between existing and
// newly issued shares.
type OwnershipSplit struct {
	ExistingShareholdersPct float64 `json:"existing_shareholders_pct"`
	NewShareholdersPct      float64 `json:"new_shareholders_pct"`
}

// Contribution holds the relative-contribution analysis.
type Contribution struct {
	Revenue   ContributionSplit `json:"revenue_contribution"`
	EBITDA    ContributionSplit `json:"ebitda_contribution"`
	NetIncome ContributionSplit `json:"net_income_contribution"`
	Ownership OwnershipSplit    `json:"ownership"`
}

// ContributionAnalysis computes each side's share of the combined
// revenue, EBITDA, and net income, plus the post-deal ownership split.
func (e *Engine) ContributionAnalysis() Contribution {
	split := func(a, t float64) ContributionSplit {
		combined := a + t
		return ContributionSplit{AcquirerPct: a / combined, TargetPct: t / combined}
	}

	acquirerShares := e.Acquirer.MarketData.SharesOutstanding
	newShares := e.NewSharesIssued()
	combinedShares := acquirerShares + newShares

	return Contribution{
		Revenue:   split(e.Acquirer.IncomeStatement.Revenue, e.Target.IncomeStatement.Revenue),
		EBITDA:    split(e.Acquirer.IncomeStatement.EBITDA, e.Target.IncomeStatement.EBITDA),
		NetIncome: split(e.Acquirer.IncomeStatement.NetIncome, e.Target.IncomeStatement.NetIncome),
		Ownership: OwnershipSplit{
			ExistingShareholdersPct: acquirerShares / combinedShares,
			NewShareholdersPct:      newShares / combinedShares,
		},
	}
}
