package valuation

import "merger_model/pkg/models"

// Suite bundles the target with every methodology's inputs so the full
// analysis runs off one value.
type Suite struct {
	Target           models.Company
	DCF              DCFAssumptions
	TradingComps     []TradingComp
	TransactionComps []TransactionComp
	AbilityToPay     AbilityToPayInput
}

// NewSuite builds a suite with default assumptions and empty comp sets.
func NewSuite(target models.Company) *Suite {
	return &Suite{
		Target:       target,
		DCF:          DefaultDCFAssumptions(),
		AbilityToPay: DefaultAbilityToPayInput(),
	}
}

// Week52Result positions the current price in the trailing range.
type Week52Result struct {
	CurrentPrice    float64 `json:"current_price"`
	High            float64 `json:"52_week_high"`
	Low             float64 `json:"52_week_low"`
	PremiumToHigh   float64 `json:"premium_to_high"` // negative when below the high
	PremiumToLow    float64 `json:"premium_to_low"`
	PositionInRange float64 `json:"position_in_range"` // 0 at the low, 1 at the high
}

// Week52Analysis relates the current price to the 52-week trading range.
func (s *Suite) Week52Analysis(high, low float64) Week52Result {
	current := s.Target.MarketData.SharePrice
	return Week52Result{
		CurrentPrice:    current,
		High:            high,
		Low:             low,
		PremiumToHigh:   current/high - 1,
		PremiumToLow:    current/low - 1,
		PositionInRange: (current - low) / (high - low),
	}
}

// FieldBar is one methodology's bar on the football field.
type FieldBar struct {
	Methodology string  `json:"methodology"`
	Low         float64 `json:"low"`
	Mid         float64 `json:"mid"`
	High        float64 `json:"high"`
}

// FootballField lays the valuation ranges side by side against the
// current and offer prices.
type FootballField struct {
	CurrentSharePrice float64    `json:"current_share_price"`
	OfferPrice        float64    `json:"offer_price"` // 0 when no offer is on the table
	ImpliedPremium    float64    `json:"implied_premium"`
	Bars              []FieldBar `json:"valuation_ranges"`
}

// GenerateFootballField runs each methodology and assembles the field.
// The DCF bar is the point estimate banded at +/-15%; comp bars use the
// peer set's min/median/max. Pass offerPrice 0 when there is no offer.
func (s *Suite) GenerateFootballField(offerPrice float64) FootballField {
	dcf := RunDCF(s.Target, s.DCF)

	field := FootballField{
		CurrentSharePrice: s.Target.MarketData.SharePrice,
		OfferPrice:        offerPrice,
		Bars: []FieldBar{{
			Methodology: "Discounted Cash Flow",
			Low:         dcf.ImpliedSharePrice * 0.85,
			Mid:         dcf.ImpliedSharePrice,
			High:        dcf.ImpliedSharePrice * 1.15,
		}},
	}
	if offerPrice > 0 {
		field.ImpliedPremium = offerPrice/s.Target.MarketData.SharePrice - 1
	}

	if trading, err := RunTradingComps(s.Target, s.TradingComps); err == nil {
		field.Bars = append(field.Bars, FieldBar{
			Methodology: "Trading Comps (EV/EBITDA)",
			Low:         trading.ImpliedByEVEBITDA.Low,
			Mid:         trading.ImpliedByEVEBITDA.Median,
			High:        trading.ImpliedByEVEBITDA.High,
		})
	}
	if transactions, err := RunTransactionComps(s.Target, s.TransactionComps); err == nil {
		field.Bars = append(field.Bars, FieldBar{
			Methodology: "Transaction Comps (Premium)",
			Low:         transactions.ImpliedByPremium.Low,
			Mid:         transactions.ImpliedByPremium.Median,
			High:        transactions.ImpliedByPremium.High,
		})
	}

	atp := CalculateAbilityToPay(s.Target, s.AbilityToPay)
	field.Bars = append(field.Bars, FieldBar{
		Methodology: "Sponsor Ability to Pay",
		Low:         atp.MaxPricePerShare * 0.90,
		Mid:         atp.MaxPricePerShare,
		High:        atp.MaxPricePerShare * 1.10,
	})

	return field
}

// SuiteSummary is the combined output of every methodology.
type SuiteSummary struct {
	TargetCompany  string                  `json:"target_company"`
	TargetTicker   string                  `json:"target_ticker"`
	CurrentMetrics models.ValuationMetrics `json:"current_metrics"`
	DCF            DCFResult               `json:"dcf_valuation"`
	Trading        *TradingCompsResult     `json:"trading_comps,omitempty"`
	Transactions   *TransactionCompsResult `json:"transaction_comps,omitempty"`
	AbilityToPay   AbilityToPayResult      `json:"ability_to_pay"`
	FootballField  FootballField           `json:"football_field"`
}

// Summarize runs the full suite. Comp sections are omitted rather than
// failing when their peer sets are empty.
func (s *Suite) Summarize(offerPrice float64) SuiteSummary {
	summary := SuiteSummary{
		TargetCompany:  s.Target.Name,
		TargetTicker:   s.Target.Ticker,
		CurrentMetrics: s.Target.Metrics(),
		DCF:            RunDCF(s.Target, s.DCF),
		AbilityToPay:   CalculateAbilityToPay(s.Target, s.AbilityToPay),
		FootballField:  s.GenerateFootballField(offerPrice),
	}
	if trading, err := RunTradingComps(s.Target, s.TradingComps); err == nil {
		summary.Trading = &trading
	}
	if transactions, err := RunTransactionComps(s.Target, s.TransactionComps); err == nil {
		summary.Transactions = &transactions
	}
	return summary
}
