package analyzing

import (
	"sort"

	"github.com/mlourenci/despensa-api/internal/domain"
	"github.com/mlourenci/despensa-api/pkg/utils"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	// minHistoricalPurchases filtra compras pontuais: um produto só pode ser
	// considerado esquecido com pelo menos 3 ocorrências históricas
	minHistoricalPurchases = 3

	// historicalWindowMonths é a extensão da janela histórica em meses,
	// usada para converter contagem em frequência mensal
	historicalWindowMonths = 6
)

// SuggestForgottenItems compara a janela recente com a janela histórica de 6
// meses que a antecede e aponta produtos frequentes no passado que sumiram
// das compras recentes, ordenados por frequência histórica.
func (s *Service) SuggestForgottenItems(params ForgottenParams) (*domain.ForgottenResponse, error) {
	recentDays := s.recentDaysOrDefault(params.BasedOnHistory)
	now := s.now()

	if recentDays <= 0 {
		return &domain.ForgottenResponse{
			Success: false,
			Message: "O parâmetro basedOnHistory deve ser um número de dias positivo",
		}, nil
	}

	// A janela histórica é [now-180d, now-recentDays); com recentDays >= 180
	// ela seria vazia ou invertida, então o valor é rejeitado explicitamente
	if recentDays >= s.cfg.Analysis.HistoricalWindowDays {
		return &domain.ForgottenResponse{
			Success: false,
			Message: "O parâmetro basedOnHistory deve ser menor que a janela histórica de 180 dias",
		}, nil
	}

	purchases, err := s.purchaseRepo.ListPurchases(nil)
	if err != nil {
		return nil, errors.Wrap(err, "falha ao consultar histórico de compras")
	}

	recentStart := now.AddDate(0, 0, -recentDays)
	historicalStart := now.AddDate(0, 0, -s.cfg.Analysis.HistoricalWindowDays)

	historicalSeries := BuildProductSeries(purchases, &historicalStart, &recentStart)
	if len(historicalSeries) == 0 {
		return &domain.ForgottenResponse{
			Success: false,
			Message: "Sem dados na janela histórica para sugerir itens esquecidos",
		}, nil
	}

	// Conjunto de presença da janela recente: basta o produto aparecer uma
	// vez para deixar de ser candidato
	recentSeries := BuildProductSeries(purchases, &recentStart, nil)

	latestByProduct := latestEventByProduct(purchases)

	items := make([]*domain.ForgottenItemResult, 0)
	totalEstimatedCost := 0.0

	for key, entry := range historicalSeries {
		if len(entry.Events) < minHistoricalPurchases {
			continue
		}
		if _, bought := recentSeries[key]; bought {
			continue
		}

		frequency := float64(len(entry.Events)) / historicalWindowMonths

		priority := domain.PriorityBaixa
		switch {
		case frequency > 1:
			priority = domain.PriorityAlta
		case frequency > 0.5:
			priority = domain.PriorityMedia
		}

		quantities := make([]float64, 0, len(entry.Events))
		for _, ev := range entry.ValidEvents() {
			quantities = append(quantities, ev.Quantity)
		}
		avgQuantity := mean(quantities)

		// Consulta de recência: se o produto não tem evento conhecido fora
		// da série histórica, usa preço 0 e mercado "não encontrado" em vez
		// de excluir o item
		estimatedPrice := 0.0
		lastMarket := "não encontrado"
		lastEvent := entry.LastEvent()
		lastPurchaseDate := lastEvent.Date
		if latest, ok := latestByProduct[key]; ok {
			estimatedPrice = latest.UnitPrice
			lastPurchaseDate = latest.Date
			if latest.MarketName != "" {
				lastMarket = latest.MarketName
			}
		}

		daysSince := int(daysBetween(lastPurchaseDate, now))

		reason := "Produto frequente ausente das compras recentes"
		if daysSince > 60 {
			reason = "Não comprado há muito tempo"
		}

		items = append(items, &domain.ForgottenItemResult{
			ProductName:           entry.ProductName,
			Category:              entry.Category,
			MonthlyFrequency:      utils.RoundWithTwoDecimalPlace(frequency),
			DaysSinceLastPurchase: daysSince,
			AvgQuantity:           utils.RoundWithTwoDecimalPlace(avgQuantity),
			PurchaseCount:         len(entry.Events),
			LastPurchaseDate:      lastPurchaseDate,
			EstimatedPrice:        utils.RoundWithTwoDecimalPlace(estimatedPrice),
			LastMarket:            lastMarket,
			Priority:              priority,
			Reason:                reason,
		})

		// O custo de reposição considera todos os itens qualificados,
		// inclusive os que ficarem fora do corte de exibição
		totalEstimatedCost += estimatedPrice * avgQuantity
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].MonthlyFrequency != items[j].MonthlyFrequency {
			return items[i].MonthlyFrequency > items[j].MonthlyFrequency
		}
		return items[i].ProductName < items[j].ProductName
	})

	totalCount := len(items)
	if limit := s.cfg.Analysis.ForgottenItemsCap; limit > 0 && len(items) > limit {
		items = items[:limit]
	}

	categoryGroups := make(map[string][]*domain.ForgottenItemResult)
	for _, item := range items {
		category := item.Category
		if category == "" {
			category = "outros"
		}
		categoryGroups[category] = append(categoryGroups[category], item)
	}

	analysisID, _ := utils.GenerateID()

	logrus.WithFields(logrus.Fields{
		"analysis_id": analysisID,
		"recent_days": recentDays,
		"total_count": totalCount,
		"returned":    len(items),
	}).Debug("esquecidos: análise de itens esquecidos concluída")

	return &domain.ForgottenResponse{
		Success:        true,
		AnalysisID:     analysisID,
		ForgottenItems: items,
		CategoryGroups: categoryGroups,
		Summary: &domain.ForgottenSummary{
			TotalCount:    totalCount,
			EstimatedCost: utils.RoundWithTwoDecimalPlace(totalEstimatedCost),
		},
	}, nil
}
