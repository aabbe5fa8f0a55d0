package domain

import "time"

// Níveis de prioridade e significância usados nas análises
const (
	PriorityAlta  = "alta"
	PriorityMedia = "média"
	PriorityBaixa = "baixa"
)

// ForgottenItemResult representa um produto historicamente frequente que
// desapareceu das compras recentes
type ForgottenItemResult struct {
	ProductName           string    `json:"product_name"`
	Category              string    `json:"category,omitempty"`
	MonthlyFrequency      float64   `json:"monthly_frequency"`
	DaysSinceLastPurchase int       `json:"days_since_last_purchase"`
	AvgQuantity           float64   `json:"avg_quantity"`
	PurchaseCount         int       `json:"purchase_count"`
	LastPurchaseDate      time.Time `json:"last_purchase_date"`
	EstimatedPrice        float64   `json:"estimated_price"`
	LastMarket            string    `json:"last_market"`
	Priority              string    `json:"priority"`
	Reason                string    `json:"reason"`
}

// ForgottenSummary resume a análise de itens esquecidos. O custo estimado de
// reposição considera todos os itens qualificados, não apenas os retornados.
type ForgottenSummary struct {
	TotalCount    int     `json:"total_count"`
	EstimatedCost float64 `json:"estimated_cost"`
}

// ForgottenResponse é a resposta completa da análise de itens esquecidos
type ForgottenResponse struct {
	Success        bool                              `json:"success"`
	Message        string                            `json:"message,omitempty"`
	AnalysisID     string                            `json:"analysis_id,omitempty"`
	ForgottenItems []*ForgottenItemResult            `json:"forgotten_items,omitempty"`
	CategoryGroups map[string][]*ForgottenItemResult `json:"category_groups,omitempty"`
	Summary        *ForgottenSummary                 `json:"summary,omitempty"`
}
