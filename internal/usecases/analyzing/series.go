package analyzing

import (
	"sort"
	"strings"
	"time"

	"github.com/mlourenci/despensa-api/internal/domain"
)

// BuildProductSeries agrupa os itens das compras em séries cronológicas por
// produto, opcionalmente restritas à janela [start, end). A chave do produto
// é o ID do catálogo ou, quando o produto foi removido, o nome normalizado
// capturado na compra. Função pura: não altera as compras recebidas.
func BuildProductSeries(purchases []*domain.Purchase, start, end *time.Time) map[string]*domain.ProductSeries {
	series := make(map[string]*domain.ProductSeries)

	for _, purchase := range purchases {
		if purchase == nil {
			continue
		}
		if start != nil && purchase.Date.Before(*start) {
			continue
		}
		if end != nil && !purchase.Date.Before(*end) {
			continue
		}

		for _, item := range purchase.Items {
			if item == nil {
				continue
			}

			key := productKey(item)
			if key == "" {
				continue
			}

			entry, ok := series[key]
			if !ok {
				entry = &domain.ProductSeries{
					ProductKey:  key,
					ProductName: item.ProductName,
					Category:    item.Category,
				}
				series[key] = entry
			}

			marketID := ""
			if purchase.MarketID != nil {
				marketID = *purchase.MarketID
			}

			entry.Events = append(entry.Events, domain.PurchaseEvent{
				Date:       purchase.Date,
				Quantity:   coerceNonNegative(item.Quantity),
				UnitPrice:  coerceNonNegative(item.UnitPrice),
				MarketID:   marketID,
				MarketName: purchase.MarketName,
			})
		}
	}

	// Séries sempre ordenadas por data ascendente
	for _, entry := range series {
		events := entry.Events
		sort.Slice(events, func(i, j int) bool {
			return events[i].Date.Before(events[j].Date)
		})
	}

	return series
}

// productKey deriva a chave estável da série: ID do produto quando existe,
// senão o nome normalizado
func productKey(item *domain.LineItem) string {
	if item.ProductID != nil && *item.ProductID != "" {
		return *item.ProductID
	}
	return NormalizeName(item.ProductName)
}

// NormalizeName normaliza nomes de produtos para comparação parcial
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func coerceNonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

// latestEventByProduct retorna o evento de compra mais recente de cada
// produto considerando o histórico completo, sem janela. É a consulta de
// recência usada para preço estimado e último mercado: uma única passada em
// memória no lugar de uma consulta por produto.
func latestEventByProduct(purchases []*domain.Purchase) map[string]domain.PurchaseEvent {
	latest := make(map[string]domain.PurchaseEvent)

	for _, purchase := range purchases {
		if purchase == nil {
			continue
		}
		for _, item := range purchase.Items {
			if item == nil {
				continue
			}
			key := productKey(item)
			if key == "" {
				continue
			}

			current, ok := latest[key]
			if ok && !purchase.Date.After(current.Date) {
				continue
			}

			marketID := ""
			if purchase.MarketID != nil {
				marketID = *purchase.MarketID
			}

			latest[key] = domain.PurchaseEvent{
				Date:       purchase.Date,
				Quantity:   coerceNonNegative(item.Quantity),
				UnitPrice:  coerceNonNegative(item.UnitPrice),
				MarketID:   marketID,
				MarketName: purchase.MarketName,
			}
		}
	}

	return latest
}

// countPurchasesInWindow conta registros de compra (transações, não itens)
// dentro da janela [start, end)
func countPurchasesInWindow(purchases []*domain.Purchase, start, end *time.Time) int {
	count := 0
	for _, purchase := range purchases {
		if purchase == nil {
			continue
		}
		if start != nil && purchase.Date.Before(*start) {
			continue
		}
		if end != nil && !purchase.Date.Before(*end) {
			continue
		}
		count++
	}
	return count
}

// daysBetween retorna a diferença em dias (fracionários) entre duas datas
func daysBetween(from, to time.Time) float64 {
	return to.Sub(from).Hours() / 24
}
