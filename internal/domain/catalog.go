package domain

import "time"

// Product representa um produto do catálogo da despensa
type Product struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Brand      *string   `json:"brand,omitempty"`
	CategoryID *string   `json:"category_id,omitempty"`
	Category   string    `json:"category,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Market representa um mercado onde compras foram realizadas
type Market struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	City      *string   `json:"city,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Category representa uma categoria de produtos
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
