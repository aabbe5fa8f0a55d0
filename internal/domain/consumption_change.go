package domain

// Tipos de mudança de consumo entre as duas metades do período analisado
const (
	ChangeTypeNew          = "new"
	ChangeTypeDiscontinued = "discontinued"
	ChangeTypeIncrease     = "increase"
	ChangeTypeDecrease     = "decrease"
)

// ConsumptionChange representa a variação de consumo de um produto entre a
// primeira e a segunda metade do período
type ConsumptionChange struct {
	ProductName           string  `json:"product_name"`
	Category              string  `json:"category,omitempty"`
	ChangeType            string  `json:"change_type"`
	FirstHalfQuantity     float64 `json:"first_half_quantity"`
	SecondHalfQuantity    float64 `json:"second_half_quantity"`
	FirstHalfSpending     float64 `json:"first_half_spending"`
	SecondHalfSpending    float64 `json:"second_half_spending"`
	QuantityChangePercent float64 `json:"quantity_change_percent"`
	SpendingChangePercent float64 `json:"spending_change_percent"`
	Significance          string  `json:"significance"`
}

// CategoryChange resume a variação média absoluta de uma categoria
type CategoryChange struct {
	Category            string  `json:"category"`
	AvgAbsChangePercent float64 `json:"avg_abs_change_percent"`
	ProductCount        int     `json:"product_count"`
}

// ChangesSummary resume a análise de mudanças de consumo. O percentual de
// variação de gasto considera todos os produtos comparados, não só o top.
type ChangesSummary struct {
	BiggestIncrease       string  `json:"biggest_increase,omitempty"`
	BiggestDecrease       string  `json:"biggest_decrease,omitempty"`
	NewProducts           int     `json:"new_products"`
	DiscontinuedProducts  int     `json:"discontinued_products"`
	SpendingChangePercent float64 `json:"spending_change_percent"`
}

// ChangesResponse é a resposta completa da análise de mudanças de consumo
type ChangesResponse struct {
	Success         bool                 `json:"success"`
	Message         string               `json:"message,omitempty"`
	AnalysisID      string               `json:"analysis_id,omitempty"`
	Changes         []*ConsumptionChange `json:"changes,omitempty"`
	CategoryChanges []*CategoryChange    `json:"category_changes,omitempty"`
	Summary         *ChangesSummary      `json:"summary,omitempty"`
}
