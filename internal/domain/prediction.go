package domain

import "time"

// PredictionResult representa a previsão de recompra de um produto
type PredictionResult struct {
	ProductName       string    `json:"product_name"`
	Category          string    `json:"category,omitempty"`
	PredictedDate     time.Time `json:"predicted_date"`
	DaysUntilPurchase int       `json:"days_until_purchase"` // Negativo = compra atrasada
	PredictedQuantity float64   `json:"predicted_quantity"`
	Confidence        float64   `json:"confidence"` // 0-100, derivado da regularidade dos intervalos
	AvgIntervalDays   float64   `json:"avg_interval_days"`
	LastPurchaseDate  time.Time `json:"last_purchase_date"`
	EstimatedPrice    float64   `json:"estimated_price"`
	LastMarket        string    `json:"last_market"`
	PurchaseCount     int       `json:"purchase_count"`
}

// PredictionSummary resume o conjunto de previsões retornadas
type PredictionSummary struct {
	NextPurchase       string  `json:"next_purchase"`
	AvgConfidence      float64 `json:"avg_confidence"`
	TotalEstimatedCost float64 `json:"total_estimated_cost"`
}

// PredictionResponse é a resposta completa da análise de previsão de compras.
// Success false indica dados insuficientes, nunca um erro inesperado.
type PredictionResponse struct {
	Success     bool                `json:"success"`
	Message     string              `json:"message,omitempty"`
	AnalysisID  string              `json:"analysis_id,omitempty"`
	Predictions []*PredictionResult `json:"predictions,omitempty"`
	Summary     *PredictionSummary  `json:"summary,omitempty"`
}
