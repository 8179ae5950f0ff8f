package valuation

import (
	"errors"
	"sort"

	"merger_model/pkg/models"
)

// TradingComp is one publicly traded comparable company.
type TradingComp struct {
	Name              string  `json:"name"`
	Ticker            string  `json:"ticker"`
	MarketCap         float64 `json:"market_cap"`
	EnterpriseValue   float64 `json:"enterprise_value"`
	Revenue           float64 `json:"revenue"`
	EBITDA            float64 `json:"ebitda"`
	NetIncome         float64 `json:"net_income"`
	SharesOutstanding float64 `json:"shares_outstanding"`
}

// EVRevenue returns 0 when revenue is not positive.
func (c TradingComp) EVRevenue() float64 {
	if c.Revenue <= 0 {
		return 0
	}
	return c.EnterpriseValue / c.Revenue
}

func (c TradingComp) EVEBITDA() float64 {
	if c.EBITDA <= 0 {
		return 0
	}
	return c.EnterpriseValue / c.EBITDA
}

func (c TradingComp) PERatio() float64 {
	if c.SharesOutstanding <= 0 || c.NetIncome <= 0 {
		return 0
	}
	eps := c.NetIncome / c.SharesOutstanding
	return (c.MarketCap / c.SharesOutstanding) / eps
}

// TransactionComp is one precedent M&A transaction.
type TransactionComp struct {
	TargetName       string  `json:"target"`
	AcquirerName     string  `json:"acquirer"`
	AnnouncementDate string  `json:"date"`
	EnterpriseValue  float64 `json:"enterprise_value"`
	EquityValue      float64 `json:"equity_value"`
	Revenue          float64 `json:"revenue"`
	EBITDA           float64 `json:"ebitda"`
	ControlPremium   float64 `json:"control_premium"`
}

func (c TransactionComp) EVRevenue() float64 {
	if c.Revenue <= 0 {
		return 0
	}
	return c.EnterpriseValue / c.Revenue
}

func (c TransactionComp) EVEBITDA() float64 {
	if c.EBITDA <= 0 {
		return 0
	}
	return c.EnterpriseValue / c.EBITDA
}

// MultipleStats summarizes a multiple across the comp set.
type MultipleStats struct {
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Median float64 `json:"median"`
	Mean   float64 `json:"mean"`
}

// statsOf sorts a copy; even-length medians average the middle pair.
func statsOf(values []float64) MultipleStats {
	if len(values) == 0 {
		return MultipleStats{}
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	n := len(sorted)

	median := sorted[n/2]
	if n%2 == 0 {
		median = (sorted[n/2-1] + sorted[n/2]) / 2
	}
	var sum float64
	for _, v := range sorted {
		sum += v
	}
	return MultipleStats{
		Min:    sorted[0],
		Max:    sorted[n-1],
		Median: median,
		Mean:   sum / float64(n),
	}
}

// PriceRange is an implied low/median/high band.
type PriceRange struct {
	Low    float64 `json:"low"`
	Median float64 `json:"median"`
	High   float64 `json:"high"`
}

// ErrNoComparables is returned when a comps run has an empty peer set.
var ErrNoComparables = errors.New("no comparables provided")

// TradingCompsResult holds the trading comparables output.
type TradingCompsResult struct {
	Comparables    []TradingComp `json:"comparables"`
	EVRevenueStats MultipleStats `json:"ev_revenue_stats"`
	EVEBITDAStats  MultipleStats `json:"ev_ebitda_stats"`
	PEStats        MultipleStats `json:"pe_stats"`

	// Implied target share price per methodology, min/median/max of the
	// peer multiple applied to the target metric.
	ImpliedByEVRevenue PriceRange `json:"implied_by_ev_revenue"`
	ImpliedByEVEBITDA  PriceRange `json:"implied_by_ev_ebitda"`
	ImpliedByPE        PriceRange `json:"implied_by_pe"`
}

// RunTradingComps applies the peer set's multiples to the target. EV
// multiples are bridged to a share price through the target's net debt;
// P/E applies directly to EPS. Comps with a non-positive P/E (loss
// makers) are excluded from the P/E statistics only.
func RunTradingComps(target models.Company, comps []TradingComp) (TradingCompsResult, error) {
	if len(comps) == 0 {
		return TradingCompsResult{}, ErrNoComparables
	}

	var evRevenues, evEBITDAs, peRatios []float64
	for _, c := range comps {
		evRevenues = append(evRevenues, c.EVRevenue())
		evEBITDAs = append(evEBITDAs, c.EVEBITDA())
		if pe := c.PERatio(); pe > 0 {
			peRatios = append(peRatios, pe)
		}
	}

	revStats := statsOf(evRevenues)
	ebitdaStats := statsOf(evEBITDAs)
	peStats := statsOf(peRatios)

	revenue := target.IncomeStatement.Revenue
	ebitda := target.IncomeStatement.EBITDA
	eps := target.EPS()

	evToShare := func(ev float64) float64 {
		return (ev - target.BalanceSheet.NetDebt()) / target.MarketData.SharesOutstanding
	}

	return TradingCompsResult{
		Comparables:    comps,
		EVRevenueStats: revStats,
		EVEBITDAStats:  ebitdaStats,
		PEStats:        peStats,
		ImpliedByEVRevenue: PriceRange{
			Low:    evToShare(revenue * revStats.Min),
			Median: evToShare(revenue * revStats.Median),
			High:   evToShare(revenue * revStats.Max),
		},
		ImpliedByEVEBITDA: PriceRange{
			Low:    evToShare(ebitda * ebitdaStats.Min),
			Median: evToShare(ebitda * ebitdaStats.Median),
			High:   evToShare(ebitda * ebitdaStats.Max),
		},
		ImpliedByPE: PriceRange{
			Low:    eps * peStats.Min,
			Median: eps * peStats.Median,
			High:   eps * peStats.Max,
		},
	}, nil
}

// TransactionCompsResult holds the precedent transaction output.
type TransactionCompsResult struct {
	Transactions   []TransactionComp `json:"transactions"`
	EVRevenueStats MultipleStats     `json:"ev_revenue_stats"`
	EVEBITDAStats  MultipleStats     `json:"ev_ebitda_stats"`
	PremiumStats   MultipleStats     `json:"control_premium_stats"`

	ImpliedEVByRevenue PriceRange `json:"implied_ev_by_revenue"`
	ImpliedEVByEBITDA  PriceRange `json:"implied_ev_by_ebitda"`
	ImpliedByPremium   PriceRange `json:"implied_price_from_premium"`
}

// RunTransactionComps applies precedent deal multiples and paid control
// premiums to the target.
func RunTransactionComps(target models.Company, comps []TransactionComp) (TransactionCompsResult, error) {
	if len(comps) == 0 {
		return TransactionCompsResult{}, ErrNoComparables
	}

	var evRevenues, evEBITDAs, premiums []float64
	for _, c := range comps {
		evRevenues = append(evRevenues, c.EVRevenue())
		evEBITDAs = append(evEBITDAs, c.EVEBITDA())
		premiums = append(premiums, c.ControlPremium)
	}

	revStats := statsOf(evRevenues)
	ebitdaStats := statsOf(evEBITDAs)
	premiumStats := statsOf(premiums)

	revenue := target.IncomeStatement.Revenue
	ebitda := target.IncomeStatement.EBITDA
	currentPrice := target.MarketData.SharePrice

	return TransactionCompsResult{
		Transactions:   comps,
		EVRevenueStats: revStats,
		EVEBITDAStats:  ebitdaStats,
		PremiumStats:   premiumStats,
		ImpliedEVByRevenue: PriceRange{
			Low:    revenue * revStats.Min,
			Median: revenue * revStats.Median,
			High:   revenue * revStats.Max,
		},
		ImpliedEVByEBITDA: PriceRange{
			Low:    ebitda * ebitdaStats.Min,
			Median: ebitda * ebitdaStats.Median,
			High:   ebitda * ebitdaStats.Max,
		},
		ImpliedByPremium: PriceRange{
			Low:    currentPrice * (1 + premiumStats.Min),
			Median: currentPrice * (1 + premiumStats.Median),
			High:   currentPrice * (1 + premiumStats.Max),
		},
	}, nil
}
