// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "time"

// Purchase representa uma compra registrada com seus itens
type Purchase struct {
	ID         string      `json:"id"`
	MarketID   *string     `json:"market_id"`
	MarketName string      `json:"market_name"`
	Date       time.Time   `json:"date"`
	Items      []*LineItem `json:"items"`
}

// LineItem representa um item de uma compra. ProductID pode ser nulo quando o
// produto foi removido do catálogo; nesse caso ProductName preserva o nome
// capturado no momento da compra.
type LineItem struct {
	ID          string   `json:"id"`
	PurchaseID  string   `json:"purchase_id"`
	ProductID   *string  `json:"product_id"`
	ProductName string   `json:"product_name"`
	Category    string   `json:"category,omitempty"`
	Quantity    float64  `json:"quantity"`
	UnitPrice   float64  `json:"unit_price"`
	Total       float64  `json:"total"`
}

// PurchaseFilters define os filtros opcionais para consulta de compras
type PurchaseFilters struct {
	StartDate   *time.Time
	EndDate     *time.Time
	ProductName string
	MarketName  string
}
