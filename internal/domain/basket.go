package domain

// MarketBasketComparison representa o custo da cesta básica em um mercado
type MarketBasketComparison struct {
	MarketID               string   `json:"market_id"`
	MarketName             string   `json:"market_name"`
	Total                  float64  `json:"total"`
	CoveragePercent        float64  `json:"coverage_percent"`
	FoundCount             int      `json:"found_count"`
	MissingProducts        []string `json:"missing_products,omitempty"`
	Position               int      `json:"position"`
	DifferenceFromCheapest float64  `json:"difference_from_cheapest"`
	DifferencePercent      float64  `json:"difference_percent"`
}

// ProductPriceAnalysis compara o preço de um item da cesta entre mercados
type ProductPriceAnalysis struct {
	Product             string  `json:"product"`
	CheapestMarket      string  `json:"cheapest_market"`
	CheapestPrice       float64 `json:"cheapest_price"`
	MostExpensiveMarket string  `json:"most_expensive_market"`
	MostExpensivePrice  float64 `json:"most_expensive_price"`
	PriceSpread         float64 `json:"price_spread"`
	MarketsFound        int     `json:"markets_found"`
}

// BasketSummary resume a comparação da cesta básica
type BasketSummary struct {
	CheapestMarket     string  `json:"cheapest_market"`
	MaxPotentialSaving float64 `json:"max_potential_saving"`
	TotalStaples       int     `json:"total_staples"`
}

// BasketResponse é a resposta completa da comparação de cesta básica
type BasketResponse struct {
	Success          bool                      `json:"success"`
	Message          string                    `json:"message,omitempty"`
	AnalysisID       string                    `json:"analysis_id,omitempty"`
	MarketComparison []*MarketBasketComparison `json:"market_comparison,omitempty"`
	ProductAnalysis  []*ProductPriceAnalysis   `json:"product_analysis,omitempty"`
	Summary          *BasketSummary            `json:"summary,omitempty"`
}
