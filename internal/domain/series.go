package domain

import "time"

// PurchaseEvent é uma ocorrência de compra de um produto dentro de uma série
type PurchaseEvent struct {
	Date       time.Time
	Quantity   float64
	UnitPrice  float64
	MarketID   string
	MarketName string
}

// ProductSeries é a série cronológica de compras de um produto, montada por
// requisição a partir do histórico. Events é ordenado por data ascendente.
type ProductSeries struct {
	ProductKey  string
	ProductName string
	Category    string
	Events      []PurchaseEvent
}

// ValidEvents retorna apenas os eventos com quantidade positiva, que entram
// no cálculo de intervalos. Eventos com quantidade zero permanecem em Events
// para fins de contagem de exibição.
func (s *ProductSeries) ValidEvents() []PurchaseEvent {
	valid := make([]PurchaseEvent, 0, len(s.Events))
	for _, ev := range s.Events {
		if ev.Quantity > 0 {
			valid = append(valid, ev)
		}
	}
	return valid
}

// LastEvent retorna o evento mais recente da série ou nil se vazia
func (s *ProductSeries) LastEvent() *PurchaseEvent {
	if len(s.Events) == 0 {
		return nil
	}
	return &s.Events[len(s.Events)-1]
}
