// Package analysis orchestrates the full acquisition model: it ties the
// company data, deal terms, synergy schedule, and every analysis engine
// together behind one type.
package analysis

import (
	"time"

	"github.com/google/uuid"

	"merger_model/pkg/core/accretion"
	"merger_model/pkg/core/deal"
	"merger_model/pkg/core/proforma"
	"merger_model/pkg/core/sensitivity"
	"merger_model/pkg/core/synergy"
	"merger_model/pkg/core/valuation"
	"merger_model/pkg/models"
)

// Model is the top-level acquisition analysis.
type Model struct {
	RunID     string
	Name      string
	CreatedAt time.Time

	Acquirer  models.Company
	Target    models.Company
	Deal      *deal.Terms
	Synergies *synergy.Schedule // optional

	Valuation   *valuation.Suite
	Accretion   *accretion.Engine
	ProForma    *proforma.Projector
	Sensitivity *sensitivity.Engine
}

// NewModel wires up every analysis engine against the shared inputs.
// Synergies may be nil for a no-synergy case.
func NewModel(acquirer, target models.Company, terms *deal.Terms, synergies *synergy.Schedule, name string) *Model {
	return &Model{
		RunID:     uuid.NewString(),
		Name:      name,
		CreatedAt: time.Now(),
		Acquirer:  acquirer,
		Target:    target,
		Deal:      terms,
		Synergies: synergies,
		Valuation: valuation.NewSuite(target),
		Accretion: &accretion.Engine{
			Acquirer:  acquirer,
			Target:    target,
			Deal:      terms,
			Synergies: synergies,
		},
		ProForma: &proforma.Projector{
			Acquirer:    acquirer,
			Target:      target,
			Deal:        terms,
			Synergies:   synergies,
			Assumptions: proforma.DefaultAssumptions(),
		},
		Sensitivity: &sensitivity.Engine{
			Acquirer:  acquirer,
			Target:    target,
			Deal:      terms,
			Synergies: synergies,
		},
	}
}

// CompanyLine is one side of the deal in the summary.
type CompanyLine struct {
	Name            string  `json:"name"`
	Ticker          string  `json:"ticker"`
	CurrentPrice    float64 `json:"current_price,omitempty"`
	MarketCap       float64 `json:"market_cap"`
	EnterpriseValue float64 `json:"enterprise_value"`
	LTMRevenue      float64 `json:"ltm_revenue"`
	LTMEBITDA       float64 `json:"ltm_ebitda"`
	LTMNetIncome    float64 `json:"ltm_net_income"`
}

// TransactionLine holds the headline deal economics.
type TransactionLine struct {
	OfferPrice      float64 `json:"offer_price"`
	ControlPremium  float64 `json:"control_premium"`
	EquityValue     float64 `json:"equity_value"`
	ImpliedEV       float64 `json:"implied_ev"`
	CashPercentage  float64 `json:"cash_percentage"`
	StockPercentage float64 `json:"stock_percentage"`
}

// OfferMultiples are the multiples implied by the offer against the
// target's trailing results.
type OfferMultiples struct {
	EVRevenue float64 `json:"ev_revenue"`
	EVEBITDA  float64 `json:"ev_ebitda"`
	PEOffer   float64 `json:"pe_offer"`
}

// DealSummary is the high-level view of the transaction.
type DealSummary struct {
	ModelName   string          `json:"model_name"`
	RunID       string          `json:"run_id"`
	CreatedAt   time.Time       `json:"created_at"`
	Acquirer    CompanyLine     `json:"acquirer"`
	Target      CompanyLine     `json:"target"`
	Transaction TransactionLine `json:"transaction"`
	Multiples   OfferMultiples  `json:"multiples"`
}

// Summary builds the high-level deal summary.
func (m *Model) Summary() DealSummary {
	return DealSummary{
		ModelName: m.Name,
		RunID:     m.RunID,
		CreatedAt: m.CreatedAt,
		Acquirer: CompanyLine{
			Name:            m.Acquirer.Name,
			Ticker:          m.Acquirer.Ticker,
			MarketCap:       m.Acquirer.MarketData.MarketCap(),
			EnterpriseValue: m.Acquirer.EnterpriseValue(),
			LTMRevenue:      m.Acquirer.IncomeStatement.Revenue,
			LTMEBITDA:       m.Acquirer.IncomeStatement.EBITDA,
			LTMNetIncome:    m.Acquirer.IncomeStatement.NetIncome,
		},
		Target: CompanyLine{
			Name:            m.Target.Name,
			Ticker:          m.Target.Ticker,
			CurrentPrice:    m.Target.MarketData.SharePrice,
			MarketCap:       m.Target.MarketData.MarketCap(),
			EnterpriseValue: m.Target.EnterpriseValue(),
			LTMRevenue:      m.Target.IncomeStatement.Revenue,
			LTMEBITDA:       m.Target.IncomeStatement.EBITDA,
			LTMNetIncome:    m.Target.IncomeStatement.NetIncome,
		},
		Transaction: TransactionLine{
			OfferPrice:      m.Deal.OfferPricePerShare,
			ControlPremium:  m.Deal.ControlPremium(),
			EquityValue:     m.Deal.EquityPurchasePrice(),
			ImpliedEV:       m.Deal.ImpliedEV(),
			CashPercentage:  m.Deal.CashPercentage,
			StockPercentage: m.Deal.StockPercentage(),
		},
		Multiples: OfferMultiples{
			EVRevenue: m.Deal.ImpliedEV() / m.Target.IncomeStatement.Revenue,
			EVEBITDA:  m.Deal.ImpliedEV() / m.Target.IncomeStatement.EBITDA,
			PEOffer:   m.Deal.OfferPricePerShare / m.Target.EPS(),
		},
	}
}

// SourcesUsesSummary reports both sides of the funds table with the
// balance check.
type SourcesUsesSummary struct {
	Sources      []deal.FundsLine `json:"sources"`
	TotalSources float64          `json:"total_sources"`
	Uses         []deal.FundsLine `json:"uses"`
	TotalUses    float64          `json:"total_uses"`
	Balanced     bool             `json:"balanced"`
	Delta        float64          `json:"delta"`
}

// SourcesUses builds the sources and uses of funds summary.
func (m *Model) SourcesUses() SourcesUsesSummary {
	sources, totalSources := m.Deal.SourcesOfFunds()
	uses, totalUses := m.Deal.UsesOfFunds()
	balanced, delta := m.Deal.ValidateSourcesUses()
	return SourcesUsesSummary{
		Sources:      sources,
		TotalSources: totalSources,
		Uses:         uses,
		TotalUses:    totalUses,
		Balanced:     balanced,
		Delta:        delta,
	}
}

// SynergySummary returns nil when the model has no synergy schedule.
func (m *Model) SynergySummary() *synergy.Summary {
	if m.Synergies == nil {
		return nil
	}
	s := m.Synergies.Summarize()
	return &s
}

// FullAnalysis is the complete model output.
type FullAnalysis struct {
	Summary        DealSummary                     `json:"summary"`
	SourcesUses    SourcesUsesSummary              `json:"sources_uses"`
	Valuation      valuation.SuiteSummary          `json:"valuation"`
	Synergies      *synergy.Summary                `json:"synergies,omitempty"`
	EPSAnalysis    accretion.Result                `json:"eps_analysis"`
	EPSMultiYear   []accretion.Result              `json:"eps_multi_year"`
	Contribution   accretion.Contribution          `json:"contribution_analysis"`
	ProForma       proforma.Projection             `json:"pro_forma"`
	KeyMetrics     proforma.KeyMetrics             `json:"key_metrics"`
	Sensitivity    sensitivity.SweepSummary        `json:"sensitivity"`
	OfferPrices    []sensitivity.OfferPriceRow     `json:"offer_price_sensitivity"`
	FinancingMix   []sensitivity.FinancingMixRow   `json:"financing_mix_sensitivity"`
	SynergySweep   []sensitivity.SynergyRow        `json:"synergy_sensitivity"`
	InterestRates  []sensitivity.InterestRateRow   `json:"interest_rate_sensitivity"`
	WACCSweep      []sensitivity.WACCRow           `json:"wacc_sensitivity"`
	TerminalGrowth []sensitivity.TerminalGrowthRow `json:"terminal_growth_sensitivity"`
}

// RunFullAnalysis executes every engine against the current inputs.
func (m *Model) RunFullAnalysis() FullAnalysis {
	return FullAnalysis{
		Summary:        m.Summary(),
		SourcesUses:    m.SourcesUses(),
		Valuation:      m.Valuation.Summarize(m.Deal.OfferPricePerShare),
		Synergies:      m.SynergySummary(),
		EPSAnalysis:    m.Accretion.Run(accretion.DefaultRunOptions()),
		EPSMultiYear:   m.Accretion.MultiYear(m.ProForma.Assumptions.ProjectionYears, true),
		Contribution:   m.Accretion.ContributionAnalysis(),
		ProForma:       m.ProForma.FullProjection(),
		KeyMetrics:     m.ProForma.KeyMetricsSummary(),
		Sensitivity:    m.Sensitivity.Summary(),
		OfferPrices:    m.Sensitivity.DefaultOfferPriceSensitivity(),
		FinancingMix:   m.Sensitivity.FinancingMixSensitivity(5),
		SynergySweep:   m.Sensitivity.DefaultSynergySensitivity(),
		InterestRates:  m.Sensitivity.InterestRateSensitivity(nil),
		WACCSweep:      m.Sensitivity.DefaultWACCSensitivity(),
		TerminalGrowth: m.Sensitivity.DefaultTerminalGrowthSensitivity(),
	}
}
