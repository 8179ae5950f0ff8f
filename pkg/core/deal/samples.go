package deal

func intPtr(v int) *int { return &v }

// SampleTerms builds the demo deal: $8B Term Loan B at 5.5%, $5B Senior
// Notes at 4.5%, $3B of acquirer cash, 2% option dilution, target debt
// refinanced.
func SampleTerms(offerPrice, targetShares, cashPct float64) *Terms {
	termLoan := DebtTranche{
		Name:              "Term Loan B",
		Kind:              TermLoanB,
		Principal:         8_000_000_000,
		InterestRate:      0.055,
		MaturityYears:     7,
		AmortizationYears: intPtr(7),
		OriginationFee:    0.02,
	}
	seniorNotes := DebtTranche{
		Name:           "Senior Notes",
		Kind:           SeniorNotes,
		Principal:      5_000_000_000,
		InterestRate:   0.045,
		MaturityYears:  10,
		OriginationFee: 0.015, // bullet
	}

	return &Terms{
		OfferPricePerShare:      offerPrice,
		TargetSharesOutstanding: targetShares,
		TargetOptionsDilution:   0.02,
		TargetCurrentPrice:      58.0,
		CashPercentage:          cashPct,
		AcquirerCashUsed:        3_000_000_000,
		DebtTranches:            []DebtTranche{termLoan, seniorNotes},
		TransactionCosts: &TransactionCosts{
			AdvisoryFees:         150_000_000,
			LegalFees:            50_000_000,
			AccountingFees:       25_000_000,
			RegulatoryFilingFees: 10_000_000,
			OtherFees:            15_000_000,
		},
		RefinanceTargetDebt:   true,
		TargetDebtToRefinance: 2_300_000_000,
		TaxRate:               0.21,
	}
}
