package valuation

// SampleTradingComps returns the reference trading peer set.
func SampleTradingComps() []TradingComp {
	return []TradingComp{
		{
			Name:              "TechPeer Alpha",
			Ticker:            "TPA",
			MarketCap:         15_000_000_000,
			EnterpriseValue:   17_000_000_000,
			Revenue:           12_000_000_000,
			EBITDA:            2_400_000_000,
			NetIncome:         1_440_000_000,
			SharesOutstanding: 300_000_000,
		},
		{
			Name:              "InnoSoft Corp",
			Ticker:            "ISC",
			MarketCap:         8_000_000_000,
			EnterpriseValue:   9_500_000_000,
			Revenue:           7_500_000_000,
			EBITDA:            1_500_000_000,
			NetIncome:         900_000_000,
			SharesOutstanding: 200_000_000,
		},
		{
			Name:              "Digital Solutions Inc",
			Ticker:            "DSI",
			MarketCap:         12_000_000_000,
			EnterpriseValue:   13_200_000_000,
			Revenue:           10_000_000_000,
			EBITDA:            2_200_000_000,
			NetIncome:         1_320_000_000,
			SharesOutstanding: 240_000_000,
		},
		{
			Name:              "CloudTech Systems",
			Ticker:            "CTS",
			MarketCap:         20_000_000_000,
			EnterpriseValue:   21_500_000_000,
			Revenue:           14_000_000_000,
			EBITDA:            3_500_000_000,
			NetIncome:         2_100_000_000,
			SharesOutstanding: 400_000_000,
		},
	}
}

// SampleTransactionComps returns the reference precedent deal set.
func SampleTransactionComps() []TransactionComp {
	return []TransactionComp{
		{
			TargetName:       "DataTech Inc",
			AcquirerName:     "MegaCorp",
			AnnouncementDate: "2024-06-15",
			EnterpriseValue:  8_500_000_000,
			EquityValue:      7_000_000_000,
			Revenue:          5_500_000_000,
			EBITDA:           1_100_000_000,
			ControlPremium:   0.32,
		},
		{
			TargetName:       "SoftwarePro",
			AcquirerName:     "TechGiant",
			AnnouncementDate: "2024-03-20",
			EnterpriseValue:  6_200_000_000,
			EquityValue:      5_500_000_000,
			Revenue:          4_000_000_000,
			EBITDA:           880_000_000,
			ControlPremium:   0.28,
		},
		{
			TargetName:       "CloudBase Systems",
			AcquirerName:     "Enterprise Inc",
			AnnouncementDate: "2023-11-10",
			EnterpriseValue:  11_000_000_000,
			EquityValue:      9_800_000_000,
			Revenue:          7_200_000_000,
			EBITDA:           1_800_000_000,
			ControlPremium:   0.35,
		},
	}
}
