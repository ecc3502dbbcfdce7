package entity

// StockDetails backs one market comparison card.
type StockDetails struct {
	Ticker         string  `json:"ticker"`
	Name           string  `json:"name"`
	MarketCap      float64 `json:"market_cap"`
	TotalEmployees int     `json:"total_employees"`
	CurrencyName   string  `json:"currency_name"`
}
