// Package sensitivity sweeps deal parameters and reports how EPS
// accretion responds. Every trial runs against a deep copy of the deal
// terms, so sweeps never disturb the base case and rows are independent
// of evaluation order.
package sensitivity

import (
	"fmt"

	"merger_model/pkg/core/accretion"
	"merger_model/pkg/core/deal"
	"merger_model/pkg/core/proforma"
	"merger_model/pkg/core/synergy"
	"merger_model/pkg/core/valuation"
	"merger_model/pkg/models"
)

// SweepVariable names a deal parameter a two-way table can vary. The set
// is closed: applyTo switches exhaustively over it, and adding a variable
// means adding a case there.
type SweepVariable string

const (
	OfferPrice     SweepVariable = "offer_price"
	CashPercentage SweepVariable = "cash_percentage"
)

func (v SweepVariable) applyTo(d *deal.Terms, value float64) error {
	switch v {
	case OfferPrice:
		d.OfferPricePerShare = value
	case CashPercentage:
		d.CashPercentage = value
	default:
		return fmt.Errorf("unknown sweep variable %q", v)
	}
	return nil
}

// Engine drives the sweeps off a base case.
type Engine struct {
	Acquirer  models.Company
	Target    models.Company
	Deal      *deal.Terms
	Synergies *synergy.Schedule // optional
}

// trial runs the accretion analysis for year 1 against a clone of the
// base deal with mutate applied.
func (e *Engine) trial(mutate func(*deal.Terms)) accretion.Result {
	d := e.Deal.Clone()
	mutate(d)
	engine := accretion.Engine{
		Acquirer:  e.Acquirer,
		Target:    e.Target,
		Deal:      d,
		Synergies: e.Synergies,
	}
	return engine.Run(accretion.DefaultRunOptions())
}

// OfferPriceRow is one row of the offer price sweep.
type OfferPriceRow struct {
	OfferPrice       float64                  `json:"offer_price"`
	PremiumPercent   float64                  `json:"premium_percent"`
	EquityValue      float64                  `json:"equity_value"`
	ProFormaEPS      float64                  `json:"pro_forma_eps"`
	EPSChangePercent float64                  `json:"eps_change_percent"`
	Result           accretion.Classification `json:"result"`
}

// OfferPriceSensitivity sweeps the offer price from minMult to maxMult
// times the base price. Steps below 2 collapse to a single base-multiple
// row.
func (e *Engine) OfferPriceSensitivity(minMult, maxMult float64, steps int) []OfferPriceRow {
	if steps < 2 {
		steps = 2
	}
	rows := make([]OfferPriceRow, 0, steps)
	for i := 0; i < steps; i++ {
		mult := minMult + (maxMult-minMult)*float64(i)/float64(steps-1)
		price := e.Deal.OfferPricePerShare * mult

		d := e.Deal.Clone()
		d.OfferPricePerShare = price
		engine := accretion.Engine{
			Acquirer:  e.Acquirer,
			Target:    e.Target,
			Deal:      d,
			Synergies: e.Synergies,
		}
		result := engine.Run(accretion.DefaultRunOptions())

		rows = append(rows, OfferPriceRow{
			OfferPrice:       price,
			PremiumPercent:   d.ControlPremium() * 100,
			EquityValue:      d.EquityPurchasePrice(),
			ProFormaEPS:      result.ProForma.EPS,
			EPSChangePercent: result.AccretionDilution.EPSChangePercent,
			Result:           result.AccretionDilution.Result,
		})
	}
	return rows
}

// DefaultOfferPriceSensitivity sweeps 80% to 120% of the base offer in
// nine steps.
func (e *Engine) DefaultOfferPriceSensitivity() []OfferPriceRow {
	return e.OfferPriceSensitivity(0.8, 1.2, 9)
}

// FinancingMixRow is one row of the cash/stock mix sweep.
type FinancingMixRow struct {
	CashPercent      float64                  `json:"cash_percent"`
	StockPercent     float64                  `json:"stock_percent"`
	NewSharesIssued  float64                  `json:"new_shares_issued"`
	ProFormaEPS      float64                  `json:"pro_forma_eps"`
	EPSChangePercent float64                  `json:"eps_change_percent"`
	Result           accretion.Classification `json:"result"`
}

// FinancingMixSensitivity sweeps the cash fraction of consideration from
// all-stock to all-cash.
func (e *Engine) FinancingMixSensitivity(steps int) []FinancingMixRow {
	if steps < 2 {
		steps = 2
	}
	rows := make([]FinancingMixRow, 0, steps)
	for i := 0; i < steps; i++ {
		cashPct := float64(i) / float64(steps-1)
		result := e.trial(func(t *deal.Terms) { t.CashPercentage = cashPct })

		rows = append(rows, FinancingMixRow{
			CashPercent:      cashPct * 100,
			StockPercent:     (1 - cashPct) * 100,
			NewSharesIssued:  result.ProForma.NewSharesIssued,
			ProFormaEPS:      result.ProForma.EPS,
			EPSChangePercent: result.AccretionDilution.EPSChangePercent,
			Result:           result.AccretionDilution.Result,
		})
	}
	return rows
}

// InterestRateRow is one row of the rate shock sweep.
type InterestRateRow struct {
	RateShiftBps     int                      `json:"rate_shift_bps"`
	AnnualInterest   float64                  `json:"annual_interest"`
	InterestCoverage float64                  `json:"interest_coverage"`
	ProFormaEPS      float64                  `json:"pro_forma_eps"`
	EPSChangePercent float64                  `json:"eps_change_percent"`
	Result           accretion.Classification `json:"result"`
}

// DefaultRateShifts spans -100bps to +200bps.
var DefaultRateShifts = []int{-100, -50, 0, 50, 100, 150, 200}

// InterestRateSensitivity shifts every tranche's rate by each bps amount
// in parallel. Coverage is the year-1 combined EBITDA over total interest
// at the shifted rates.
func (e *Engine) InterestRateSensitivity(bpsShifts []int) []InterestRateRow {
	if len(bpsShifts) == 0 {
		bpsShifts = DefaultRateShifts
	}
	rows := make([]InterestRateRow, 0, len(bpsShifts))
	for _, bps := range bpsShifts {
		shift := float64(bps) / 10000

		shifted := e.Deal.Clone()
		for i := range shifted.DebtTranches {
			shifted.DebtTranches[i].InterestRate += shift
		}

		engine := accretion.Engine{
			Acquirer:  e.Acquirer,
			Target:    e.Target,
			Deal:      shifted,
			Synergies: e.Synergies,
		}
		result := engine.Run(accretion.DefaultRunOptions())

		projector := proforma.Projector{
			Acquirer:    e.Acquirer,
			Target:      e.Target,
			Deal:        shifted,
			Synergies:   e.Synergies,
			Assumptions: proforma.DefaultAssumptions(),
		}
		coverage := projector.CreditMetricsFor(1).InterestCoverage

		rows = append(rows, InterestRateRow{
			RateShiftBps:     bps,
			AnnualInterest:   shifted.AnnualInterestExpense(),
			InterestCoverage: coverage,
			ProFormaEPS:      result.ProForma.EPS,
			EPSChangePercent: result.AccretionDilution.EPSChangePercent,
			Result:           result.AccretionDilution.Result,
		})
	}
	return rows
}

// SynergyRow is one row of the realization sweep.
type SynergyRow struct {
	RealizationFactor float64                  `json:"realization_factor"`
	AfterTaxSynergies float64                  `json:"after_tax_synergies"`
	ProFormaEPS       float64                  `json:"pro_forma_eps"`
	EPSChangePercent  float64                  `json:"eps_change_percent"`
	Result            accretion.Classification `json:"result"`
}

// SynergySensitivity scales the run-rate synergy benefit from minFactor
// to maxFactor of plan. Synergies enter net income additively once fully
// phased in, so the sweep scales the after-tax run rate over a single
// no-synergy run at the full-realization year instead of rebuilding the
// schedule per trial.
func (e *Engine) SynergySensitivity(minFactor, maxFactor float64, steps int) []SynergyRow {
	if steps < 2 {
		steps = 2
	}

	year := 5
	var runRateNI float64
	if e.Synergies != nil {
		if y := e.Synergies.YearsToFullRealization(); y > year {
			year = y
		}
		runRateNI = e.Synergies.RunRates().NetIncomeImpact
	}

	base := accretion.Engine{
		Acquirer: e.Acquirer,
		Target:   e.Target,
		Deal:     e.Deal.Clone(),
	}
	opts := accretion.DefaultRunOptions()
	opts.Year = year
	opts.IncludeSynergies = false
	noSynergy := base.Run(opts)

	acquirerEPS := noSynergy.Standalone.AcquirerEPS
	shares := noSynergy.ProForma.SharesOutstanding

	rows := make([]SynergyRow, 0, steps)
	for i := 0; i < steps; i++ {
		factor := minFactor + (maxFactor-minFactor)*float64(i)/float64(steps-1)
		afterTax := runRateNI * factor
		eps := (noSynergy.ProForma.NetIncome + afterTax) / shares
		change := eps - acquirerEPS

		result := accretion.Neutral
		switch {
		case change > accretion.NeutralThreshold:
			result = accretion.Accretive
		case change < -accretion.NeutralThreshold:
			result = accretion.Dilutive
		}

		rows = append(rows, SynergyRow{
			RealizationFactor: factor,
			AfterTaxSynergies: afterTax,
			ProFormaEPS:       eps,
			EPSChangePercent:  change / acquirerEPS,
			Result:            result,
		})
	}
	return rows
}

// DefaultSynergySensitivity sweeps 50% to 150% realization in five steps.
func (e *Engine) DefaultSynergySensitivity() []SynergyRow {
	return e.SynergySensitivity(0.5, 1.5, 5)
}

// TwoWayCell is one cell of a two-way table.
type TwoWayCell struct {
	RowValue         float64                  `json:"row_value"`
	ColValue         float64                  `json:"col_value"`
	ProFormaEPS      float64                  `json:"pro_forma_eps"`
	EPSChangePercent float64                  `json:"eps_change_percent"`
	Result           accretion.Classification `json:"result"`
}

// TwoWayTable is a grid of accretion outcomes over two deal parameters.
type TwoWayTable struct {
	RowVariable SweepVariable  `json:"row_variable"`
	ColVariable SweepVariable  `json:"col_variable"`
	RowValues   []float64      `json:"row_values"`
	ColValues   []float64      `json:"col_values"`
	Cells       [][]TwoWayCell `json:"cells"` // [row][col]
}

// TwoWay builds a grid varying rowVar down and colVar across. Both
// variables must belong to the closed sweep set.
func (e *Engine) TwoWay(rowVar SweepVariable, rowValues []float64, colVar SweepVariable, colValues []float64) (TwoWayTable, error) {
	table := TwoWayTable{
		RowVariable: rowVar,
		ColVariable: colVar,
		RowValues:   rowValues,
		ColValues:   colValues,
	}
	for _, rv := range rowValues {
		row := make([]TwoWayCell, 0, len(colValues))
		for _, cv := range colValues {
			d := e.Deal.Clone()
			if err := rowVar.applyTo(d, rv); err != nil {
				return TwoWayTable{}, err
			}
			if err := colVar.applyTo(d, cv); err != nil {
				return TwoWayTable{}, err
			}
			engine := accretion.Engine{
				Acquirer:  e.Acquirer,
				Target:    e.Target,
				Deal:      d,
				Synergies: e.Synergies,
			}
			result := engine.Run(accretion.DefaultRunOptions())
			row = append(row, TwoWayCell{
				RowValue:         rv,
				ColValue:         cv,
				ProFormaEPS:      result.ProForma.EPS,
				EPSChangePercent: result.AccretionDilution.EPSChangePercent,
				Result:           result.AccretionDilution.Result,
			})
		}
		table.Cells = append(table.Cells, row)
	}
	return table, nil
}

// PriceVsCashMatrix is the standard two-way table: offer prices at 90%,
// 95%, ... of base down the rows, cash fractions spread evenly 0..1
// across the columns.
func (e *Engine) PriceVsCashMatrix(priceSteps, cashSteps int) (TwoWayTable, error) {
	if priceSteps < 1 {
		priceSteps = 1
	}
	if cashSteps < 2 {
		cashSteps = 2
	}
	prices := make([]float64, priceSteps)
	for i := range prices {
		prices[i] = e.Deal.OfferPricePerShare * (0.9 + 0.05*float64(i))
	}
	cashFractions := make([]float64, cashSteps)
	for i := range cashFractions {
		cashFractions[i] = float64(i) / float64(cashSteps-1)
	}
	return e.TwoWay(OfferPrice, prices, CashPercentage, cashFractions)
}

// WACCRow is one row of the DCF discount rate sweep.
type WACCRow struct {
	WACC              float64 `json:"wacc"`
	EnterpriseValue   float64 `json:"enterprise_value"`
	EquityValue       float64 `json:"equity_value"`
	ImpliedSharePrice float64 `json:"implied_share_price"`
	PremiumToOffer    float64 `json:"premium_to_offer"` // offer over implied, minus 1
}

// WACCSensitivity reruns the target DCF across a discount rate range,
// holding every other assumption at its default, and relates each implied
// price to the offer on the table.
func (e *Engine) WACCSensitivity(minRate, maxRate float64, steps int) []WACCRow {
	if steps < 2 {
		steps = 2
	}
	rows := make([]WACCRow, 0, steps)
	for i := 0; i < steps; i++ {
		a := valuation.DefaultDCFAssumptions()
		a.WACC = minRate + (maxRate-minRate)*float64(i)/float64(steps-1)

		dcf := valuation.RunDCF(e.Target, a)
		rows = append(rows, WACCRow{
			WACC:              a.WACC,
			EnterpriseValue:   dcf.EnterpriseValue,
			EquityValue:       dcf.EquityValue,
			ImpliedSharePrice: dcf.ImpliedSharePrice,
			PremiumToOffer:    e.Deal.OfferPricePerShare/dcf.ImpliedSharePrice - 1,
		})
	}
	return rows
}

// DefaultWACCSensitivity sweeps 7% to 12% in six steps.
func (e *Engine) DefaultWACCSensitivity() []WACCRow {
	return e.WACCSensitivity(0.07, 0.12, 6)
}

// TerminalGrowthRow is one row of the terminal growth rate sweep.
type TerminalGrowthRow struct {
	TerminalGrowthRate float64 `json:"terminal_growth_rate"`
	TerminalValue      float64 `json:"terminal_value"`
	EnterpriseValue    float64 `json:"enterprise_value"`
	ImpliedSharePrice  float64 `json:"implied_share_price"`
}

// TerminalGrowthSensitivity reruns the target DCF across a terminal
// growth range with every other assumption at its default.
func (e *Engine) TerminalGrowthSensitivity(minRate, maxRate float64, steps int) []TerminalGrowthRow {
	if steps < 2 {
		steps = 2
	}
	rows := make([]TerminalGrowthRow, 0, steps)
	for i := 0; i < steps; i++ {
		a := valuation.DefaultDCFAssumptions()
		a.TerminalGrowthRate = minRate + (maxRate-minRate)*float64(i)/float64(steps-1)

		dcf := valuation.RunDCF(e.Target, a)
		rows = append(rows, TerminalGrowthRow{
			TerminalGrowthRate: a.TerminalGrowthRate,
			TerminalValue:      dcf.TerminalValue,
			EnterpriseValue:    dcf.EnterpriseValue,
			ImpliedSharePrice:  dcf.ImpliedSharePrice,
		})
	}
	return rows
}

// DefaultTerminalGrowthSensitivity sweeps 1.5% to 3.5% in five steps.
func (e *Engine) DefaultTerminalGrowthSensitivity() []TerminalGrowthRow {
	return e.TerminalGrowthSensitivity(0.015, 0.035, 5)
}

// BreakevenPrice finds the offer price where year-1 EPS impact crosses
// zero. See accretion.Engine.BreakevenPrice.
func (e *Engine) BreakevenPrice() (float64, error) {
	engine := accretion.Engine{
		Acquirer:  e.Acquirer,
		Target:    e.Target,
		Deal:      e.Deal.Clone(),
		Synergies: e.Synergies,
	}
	return engine.BreakevenPrice(accretion.DefaultBreakevenPriceOptions())
}

// BreakevenSynergies returns the after-tax synergy dollars needed for
// EPS neutrality at the base terms.
func (e *Engine) BreakevenSynergies() float64 {
	engine := accretion.Engine{
		Acquirer: e.Acquirer,
		Target:   e.Target,
		Deal:     e.Deal.Clone(),
	}
	return engine.BreakevenSynergies()
}

// SweepSummary condenses the standard sweeps into headline findings.
type SweepSummary struct {
	BaseOfferPrice     float64                  `json:"base_offer_price"`
	BaseResult         accretion.Classification `json:"base_result"`
	BaseEPSChangePct   float64                  `json:"base_eps_change_percent"`
	MaxAccretivePrice  float64                  `json:"max_accretive_price"` // 0 when no swept price is accretive
	BreakevenPrice     float64                  `json:"breakeven_price"`     // 0 when the search does not bracket
	BreakevenSynergies float64                  `json:"breakeven_synergies"`
}

// Summary runs the default sweeps and reports the headline numbers.
func (e *Engine) Summary() SweepSummary {
	base := e.trial(func(*deal.Terms) {})

	var maxAccretive float64
	for _, row := range e.DefaultOfferPriceSensitivity() {
		if row.Result == accretion.Accretive && row.OfferPrice > maxAccretive {
			maxAccretive = row.OfferPrice
		}
	}

	breakevenPrice, err := e.BreakevenPrice()
	if err != nil {
		breakevenPrice = 0
	}

	return SweepSummary{
		BaseOfferPrice:     e.Deal.OfferPricePerShare,
		BaseResult:         base.AccretionDilution.Result,
		BaseEPSChangePct:   base.AccretionDilution.EPSChangePercent,
		MaxAccretivePrice:  maxAccretive,
		BreakevenPrice:     breakevenPrice,
		BreakevenSynergies: e.BreakevenSynergies(),
	}
}
