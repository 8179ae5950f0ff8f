package models

// SampleAcquirer builds the demo acquirer: a $50B-revenue industrial
// with $6.004B net income on 500M shares at $150.
func SampleAcquirer() Company {
	return Company{
		Name:   "TechCorp Industries",
		Ticker: "TCI",
		Role:   RoleAcquirer,
		IncomeStatement: IncomeStatement{
			Revenue:                  50_000_000_000,
			CostOfGoodsSold:          30_000_000_000,
			GrossProfit:              20_000_000_000,
			OperatingExpenses:        10_000_000_000,
			EBITDA:                   10_000_000_000,
			DepreciationAmortization: 2_000_000_000,
			EBIT:                     8_000_000_000,
			InterestExpense:          500_000_000,
			InterestIncome:           100_000_000,
			PretaxIncome:             7_600_000_000,
			TaxExpense:               1_596_000_000,
			NetIncome:                6_004_000_000,
		},
		BalanceSheet: BalanceSheet{
			CashAndEquivalents:         5_000_000_000,
			AccountsReceivable:         4_000_000_000,
			Inventory:                  3_000_000_000,
			OtherCurrentAssets:         1_000_000_000,
			TotalCurrentAssets:         13_000_000_000,
			PropertyPlantEquipment:     15_000_000_000,
			Goodwill:                   8_000_000_000,
			IntangibleAssets:           5_000_000_000,
			OtherNonCurrentAssets:      2_000_000_000,
			TotalAssets:                43_000_000_000,
			AccountsPayable:            3_500_000_000,
			ShortTermDebt:              1_000_000_000,
			OtherCurrentLiabilities:    2_000_000_000,
			TotalCurrentLiabilities:    6_500_000_000,
			LongTermDebt:               10_000_000_000,
			OtherNonCurrentLiabilities: 3_000_000_000,
			TotalLiabilities:           19_500_000_000,
			CommonStock:                10_000_000_000,
			RetainedEarnings:           13_500_000_000,
			TotalEquity:                23_500_000_000,
		},
		MarketData: MarketData{
			SharePrice:        150.00,
			SharesOutstanding: 500_000_000,
			Beta:              1.1,
			DividendYield:     0.02,
		},
		RevenueGrowthRate: 0.08,
	}
}

// SampleTarget builds the demo target: $10B revenue, $1.1613B net income
// on 200M shares trading at $58.
func SampleTarget() Company {
	return Company{
		Name:   "InnovateTech Solutions",
		Ticker: "ITS",
		Role:   RoleTarget,
		IncomeStatement: IncomeStatement{
			Revenue:                  10_000_000_000,
			CostOfGoodsSold:          5_500_000_000,
			GrossProfit:              4_500_000_000,
			OperatingExpenses:        2_500_000_000,
			EBITDA:                   2_000_000_000,
			DepreciationAmortization: 400_000_000,
			EBIT:                     1_600_000_000,
			InterestExpense:          150_000_000,
			InterestIncome:           20_000_000,
			PretaxIncome:             1_470_000_000,
			TaxExpense:               308_700_000,
			NetIncome:                1_161_300_000,
		},
		BalanceSheet: BalanceSheet{
			CashAndEquivalents:         1_200_000_000,
			AccountsReceivable:         900_000_000,
			Inventory:                  700_000_000,
			OtherCurrentAssets:         200_000_000,
			TotalCurrentAssets:         3_000_000_000,
			PropertyPlantEquipment:     3_500_000_000,
			Goodwill:                   1_500_000_000,
			IntangibleAssets:           1_000_000_000,
			OtherNonCurrentAssets:      500_000_000,
			TotalAssets:                9_500_000_000,
			AccountsPayable:            800_000_000,
			ShortTermDebt:              300_000_000,
			OtherCurrentLiabilities:    400_000_000,
			TotalCurrentLiabilities:    1_500_000_000,
			LongTermDebt:               2_000_000_000,
			OtherNonCurrentLiabilities: 500_000_000,
			TotalLiabilities:           4_000_000_000,
			CommonStock:                2_500_000_000,
			RetainedEarnings:           3_000_000_000,
			TotalEquity:                5_500_000_000,
		},
		MarketData: MarketData{
			SharePrice:        58.00,
			SharesOutstanding: 200_000_000,
			Beta:              1.3,
			DividendYield:     0.01,
		},
		RevenueGrowthRate: 0.12,
	}
}
