package analysis

import (
	"merger_model/pkg/core/deal"
	"merger_model/pkg/core/synergy"
	"merger_model/pkg/core/valuation"
	"merger_model/pkg/models"
)

// SampleModel builds the fully populated reference deal: a 60% cash
// offer at $75.00 per share with the standard synergy plan and both
// comp sets loaded.
func SampleModel() (*Model, error) {
	acquirer := models.SampleAcquirer()
	target := models.SampleTarget()

	terms := deal.SampleTerms(75.0, target.MarketData.SharesOutstanding, 0.60)

	synergies, err := synergy.SampleSchedule()
	if err != nil {
		return nil, err
	}

	model := NewModel(acquirer, target, terms, synergies,
		"TechCorp Industries / InnovateTech Solutions Acquisition")
	model.Valuation.TradingComps = valuation.SampleTradingComps()
	model.Valuation.TransactionComps = valuation.SampleTransactionComps()
	return model, nil
}
