package analyzing

import (
	"math"
	"sort"

	"github.com/mlourenci/despensa-api/internal/domain"
	"github.com/mlourenci/despensa-api/pkg/utils"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// changeThresholdPercent define a variação mínima de quantidade para que um
// produto seja reportado como aumento ou queda
const changeThresholdPercent = 20

// halfAggregate acumula quantidade e gasto de um produto em uma metade do
// período
type halfAggregate struct {
	productName string
	category    string
	quantity    float64
	spending    float64
}

// DetectConsumptionChanges divide o período em duas metades contíguas de
// mesmo tamanho, agrega quantidade e gasto por produto em cada metade e
// classifica a trajetória de consumo de cada produto.
func (s *Service) DetectConsumptionChanges(params ChangesParams) (*domain.ChangesResponse, error) {
	period := s.periodOrDefault(params.Period)
	now := s.now()

	if period <= 1 {
		return &domain.ChangesResponse{
			Success: false,
			Message: "O período de análise deve ter pelo menos 2 dias",
		}, nil
	}

	half := period / 2
	firstStart := now.AddDate(0, 0, -2*half)
	secondStart := now.AddDate(0, 0, -half)

	purchases, err := s.purchaseRepo.ListPurchases(&domain.PurchaseFilters{
		StartDate: &firstStart,
	})
	if err != nil {
		return nil, errors.Wrap(err, "falha ao consultar histórico de compras")
	}

	// A análise exige pelo menos uma compra em cada metade
	if countPurchasesInWindow(purchases, &firstStart, &secondStart) == 0 ||
		countPurchasesInWindow(purchases, &secondStart, &now) == 0 {
		return &domain.ChangesResponse{
			Success: false,
			Message: "Dados insuficientes: é preciso haver compras nas duas metades do período",
		}, nil
	}

	firstHalf := aggregateHalf(BuildProductSeries(purchases, &firstStart, &secondStart))
	secondHalf := aggregateHalf(BuildProductSeries(purchases, &secondStart, &now))

	// União dos produtos das duas metades
	keys := make(map[string]struct{}, len(firstHalf)+len(secondHalf))
	for key := range firstHalf {
		keys[key] = struct{}{}
	}
	for key := range secondHalf {
		keys[key] = struct{}{}
	}

	changes := make([]*domain.ConsumptionChange, 0)
	totalFirstSpending := 0.0
	totalSecondSpending := 0.0

	for key := range keys {
		first, second := firstHalf[key], secondHalf[key]

		var firstQty, secondQty, firstSpending, secondSpending float64
		productName, category := "", ""

		if first != nil {
			firstQty, firstSpending = first.quantity, first.spending
			productName, category = first.productName, first.category
		}
		if second != nil {
			secondQty, secondSpending = second.quantity, second.spending
			productName, category = second.productName, second.category
		}

		totalFirstSpending += firstSpending
		totalSecondSpending += secondSpending

		// Caso zero/zero não é reportado
		if firstQty == 0 && secondQty == 0 {
			continue
		}

		changeType := ""
		quantityChange := 0.0

		switch {
		case firstQty == 0 && secondQty > 0:
			changeType = domain.ChangeTypeNew
			quantityChange = 100
		case firstQty > 0 && secondQty == 0:
			changeType = domain.ChangeTypeDiscontinued
			quantityChange = -100
		default:
			quantityChange = (secondQty - firstQty) / firstQty * 100
			if quantityChange > changeThresholdPercent {
				changeType = domain.ChangeTypeIncrease
			} else if quantityChange < -changeThresholdPercent {
				changeType = domain.ChangeTypeDecrease
			}
		}

		// Variações dentro da faixa de estabilidade não são reportadas
		if changeType == "" {
			continue
		}

		spendingChange := percentChange(firstSpending, secondSpending)

		significance := domain.PriorityBaixa
		absChange := math.Abs(quantityChange)
		switch {
		case absChange > 50:
			significance = domain.PriorityAlta
		case absChange > 30:
			significance = domain.PriorityMedia
		}

		changes = append(changes, &domain.ConsumptionChange{
			ProductName:           productName,
			Category:              category,
			ChangeType:            changeType,
			FirstHalfQuantity:     utils.RoundWithTwoDecimalPlace(firstQty),
			SecondHalfQuantity:    utils.RoundWithTwoDecimalPlace(secondQty),
			FirstHalfSpending:     utils.RoundWithTwoDecimalPlace(firstSpending),
			SecondHalfSpending:    utils.RoundWithTwoDecimalPlace(secondSpending),
			QuantityChangePercent: utils.RoundWithTwoDecimalPlace(quantityChange),
			SpendingChangePercent: utils.RoundWithTwoDecimalPlace(spendingChange),
			Significance:          significance,
		})
	}

	sort.Slice(changes, func(i, j int) bool {
		absI := math.Abs(changes[i].QuantityChangePercent)
		absJ := math.Abs(changes[j].QuantityChangePercent)
		if absI != absJ {
			return absI > absJ
		}
		return changes[i].ProductName < changes[j].ProductName
	})

	summary := buildChangesSummary(changes)
	// O percentual global de gasto considera todos os produtos comparados,
	// não apenas os reportados
	summary.SpendingChangePercent = utils.RoundWithTwoDecimalPlace(
		percentChange(totalFirstSpending, totalSecondSpending),
	)

	categoryChanges := aggregateCategoryChanges(changes)

	if limit := s.cfg.Analysis.ChangesCap; limit > 0 && len(changes) > limit {
		changes = changes[:limit]
	}

	analysisID, _ := utils.GenerateID()

	logrus.WithFields(logrus.Fields{
		"analysis_id": analysisID,
		"period":      period,
		"changes":     len(changes),
	}).Debug("mudancas: análise de mudanças de consumo concluída")

	return &domain.ChangesResponse{
		Success:         true,
		AnalysisID:      analysisID,
		Changes:         changes,
		CategoryChanges: categoryChanges,
		Summary:         summary,
	}, nil
}

// aggregateHalf soma quantidade e gasto por produto dentro de uma metade
func aggregateHalf(series map[string]*domain.ProductSeries) map[string]*halfAggregate {
	aggregates := make(map[string]*halfAggregate, len(series))

	for key, entry := range series {
		agg := &halfAggregate{
			productName: entry.ProductName,
			category:    entry.Category,
		}
		for _, ev := range entry.ValidEvents() {
			agg.quantity += ev.Quantity
			agg.spending += ev.Quantity * ev.UnitPrice
		}
		aggregates[key] = agg
	}

	return aggregates
}

// percentChange calcula a variação percentual com guarda de divisão por zero:
// de 0 para algo positivo vale 100%, de 0 para 0 vale 0
func percentChange(first, second float64) float64 {
	if first == 0 {
		if second > 0 {
			return 100
		}
		return 0
	}
	return (second - first) / first * 100
}

func buildChangesSummary(changes []*domain.ConsumptionChange) *domain.ChangesSummary {
	summary := &domain.ChangesSummary{}

	biggestIncrease := 0.0
	biggestDecrease := 0.0

	for _, change := range changes {
		switch change.ChangeType {
		case domain.ChangeTypeNew:
			summary.NewProducts++
		case domain.ChangeTypeDiscontinued:
			summary.DiscontinuedProducts++
		}

		if change.QuantityChangePercent > biggestIncrease {
			biggestIncrease = change.QuantityChangePercent
			summary.BiggestIncrease = change.ProductName
		}
		if change.QuantityChangePercent < biggestDecrease {
			biggestDecrease = change.QuantityChangePercent
			summary.BiggestDecrease = change.ProductName
		}
	}

	return summary
}

// aggregateCategoryChanges calcula a variação média absoluta por categoria
// sobre todos os produtos qualificados, antes do corte de exibição
func aggregateCategoryChanges(changes []*domain.ConsumptionChange) []*domain.CategoryChange {
	type categoryAccumulator struct {
		sum   float64
		count int
	}

	byCategory := make(map[string]*categoryAccumulator)
	for _, change := range changes {
		category := change.Category
		if category == "" {
			category = "outros"
		}
		acc, ok := byCategory[category]
		if !ok {
			acc = &categoryAccumulator{}
			byCategory[category] = acc
		}
		acc.sum += math.Abs(change.QuantityChangePercent)
		acc.count++
	}

	result := make([]*domain.CategoryChange, 0, len(byCategory))
	for category, acc := range byCategory {
		result = append(result, &domain.CategoryChange{
			Category:            category,
			AvgAbsChangePercent: utils.RoundWithTwoDecimalPlace(acc.sum / float64(acc.count)),
			ProductCount:        acc.count,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].AvgAbsChangePercent != result[j].AvgAbsChangePercent {
			return result[i].AvgAbsChangePercent > result[j].AvgAbsChangePercent
		}
		return result[i].Category < result[j].Category
	})

	return result
}
