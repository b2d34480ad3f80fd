package stockcalc

// DefaultModel returns the stock two-tier model: 25% of total assets in
// stable holdings (gold, value, bonds, dividend), 75% in growth positions.
// Both tiers read weights as fractions of their own budget; the stable
// tier's declared weights sum to 0.20 and are normalized by that sum.
func DefaultModel() PortfolioModel {
	return PortfolioModel{
		Tiers: []BudgetTier{
			{
				Name:     "Stable",
				Fraction: 0.25,
				Mode:     FractionOfTier,
				Assets: []AssetSpec{
					{Name: "GLDM (Gold)", Ticker: "GLDM", Weight: 0.05, Market: Foreign},
					{Name: "VTV (Value)", Ticker: "VTV", Weight: 0.05, Market: Foreign},
					{Name: "TLT (Long Bonds)", Ticker: "TLT", Weight: 0.03, Market: Foreign},
					{Name: "IEI (Mid Bonds)", Ticker: "IEI", Weight: 0.02, Market: Foreign},
					{Name: "SCHD (Dividend)", Ticker: "SCHD", Weight: 0.05, Market: Foreign},
				},
			},
			{
				Name:     "Growth",
				Fraction: 0.75,
				Mode:     FractionOfTier,
				Assets: []AssetSpec{
					{Name: "TSM", Ticker: "TSM", Weight: 0.22, Market: Foreign},
					{Name: "NVDA", Ticker: "NVDA", Weight: 0.08, Market: Foreign},
					{Name: "TSLA", Ticker: "TSLA", Weight: 0.06, Market: Foreign},
					{Name: "MSFT", Ticker: "MSFT", Weight: 0.08, Market: Foreign},
					{Name: "AAPL", Ticker: "AAPL", Weight: 0.06, Market: Foreign},
					{Name: "GOOGL", Ticker: "GOOGL", Weight: 0.14, Market: Foreign},
					{Name: "AMD", Ticker: "AMD", Weight: 0.07, Market: Foreign},
					{Name: "AMZN", Ticker: "AMZN", Weight: 0.07, Market: Foreign},
					{Name: "PLTR", Ticker: "PLTR", Weight: 0.02, Market: Foreign},
					{Name: "SK Hynix", Ticker: "000660.KS", Weight: 0.15, Market: Domestic},
					{Name: "Hyundai Motor", Ticker: "005380.KS", Weight: 0.05, Market: Domestic},
				},
			},
		},
	}
}
