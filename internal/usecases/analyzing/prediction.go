package analyzing

import (
	"math"
	"sort"
	"time"

	"github.com/mlourenci/despensa-api/internal/domain"
	"github.com/mlourenci/despensa-api/pkg/utils"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// minPurchasesForPrediction é o mínimo de compras na janela de análise,
// somando todos os produtos, para que a previsão seja tentada
const minPurchasesForPrediction = 3

// PredictNextPurchases aplica o modelo de regularidade de intervalos: para
// cada produto com pelo menos duas compras na janela de análise, calcula a
// média e o desvio dos intervalos entre compras e projeta a próxima data.
// Entram no resultado apenas produtos com previsão dentro do horizonte E
// regularidade acima do limiar de confiança.
func (s *Service) PredictNextPurchases(params PredictionParams) (*domain.PredictionResponse, error) {
	daysAhead := s.daysAheadOrDefault(params.DaysAhead)
	confidence := s.confidenceOrDefault(params.Confidence)
	now := s.now()

	// Busca única do histórico completo: a janela de análise é aplicada em
	// memória e o histórico integral alimenta a consulta de recência de preços
	purchases, err := s.purchaseRepo.ListPurchases(nil)
	if err != nil {
		return nil, errors.Wrap(err, "falha ao consultar histórico de compras")
	}

	lookbackStart := now.AddDate(0, 0, -s.cfg.Analysis.PredictionLookbackDays)

	if countPurchasesInWindow(purchases, &lookbackStart, nil) < minPurchasesForPrediction {
		return &domain.PredictionResponse{
			Success: false,
			Message: "Histórico insuficiente para previsão: são necessárias pelo menos 3 compras nos últimos 90 dias",
		}, nil
	}

	series := BuildProductSeries(purchases, &lookbackStart, nil)
	latestByProduct := latestEventByProduct(purchases)

	predictions := make([]*domain.PredictionResult, 0)

	for key, entry := range series {
		events := entry.ValidEvents()
		if len(events) < 2 {
			continue
		}

		gaps := make([]float64, 0, len(events)-1)
		for i := 1; i < len(events); i++ {
			gaps = append(gaps, daysBetween(events[i-1].Date, events[i].Date))
		}

		avgInterval := mean(gaps)
		regularity := regularityScore(gaps, avgInterval)

		lastEvent := events[len(events)-1]
		daysSinceLast := daysBetween(lastEvent.Date, now)
		daysUntil := int(math.Round(avgInterval - daysSinceLast))

		// Ambas as condições precisam valer: previsão dentro do horizonte e
		// regularidade acima do limiar
		if daysUntil > daysAhead || regularity < confidence {
			continue
		}

		quantities := make([]float64, 0, len(events))
		for _, ev := range events {
			quantities = append(quantities, ev.Quantity)
		}
		avgQuantity := mean(quantities)

		estimatedPrice := 0.0
		lastMarket := ""
		lastPurchaseDate := lastEvent.Date
		if latest, ok := latestByProduct[key]; ok {
			estimatedPrice = latest.UnitPrice
			lastMarket = latest.MarketName
			lastPurchaseDate = latest.Date
		}

		predictions = append(predictions, &domain.PredictionResult{
			ProductName:       entry.ProductName,
			Category:          entry.Category,
			PredictedDate:     lastEvent.Date.Add(time.Duration(avgInterval * 24 * float64(time.Hour))),
			DaysUntilPurchase: daysUntil,
			PredictedQuantity: math.Round(avgQuantity),
			Confidence:        utils.RoundWithTwoDecimalPlace(regularity),
			AvgIntervalDays:   utils.RoundWithTwoDecimalPlace(avgInterval),
			LastPurchaseDate:  lastPurchaseDate,
			EstimatedPrice:    utils.RoundWithTwoDecimalPlace(estimatedPrice),
			LastMarket:        lastMarket,
			PurchaseCount:     len(entry.Events),
		})
	}

	// Mais urgente primeiro; desempate por nome para ordenação estável
	sort.Slice(predictions, func(i, j int) bool {
		if predictions[i].DaysUntilPurchase != predictions[j].DaysUntilPurchase {
			return predictions[i].DaysUntilPurchase < predictions[j].DaysUntilPurchase
		}
		return predictions[i].ProductName < predictions[j].ProductName
	})

	summary := &domain.PredictionSummary{}
	if len(predictions) > 0 {
		summary.NextPurchase = predictions[0].ProductName

		totalConfidence := 0.0
		totalCost := 0.0
		for _, p := range predictions {
			totalConfidence += p.Confidence
			totalCost += p.EstimatedPrice * p.PredictedQuantity
		}
		summary.AvgConfidence = utils.RoundWithTwoDecimalPlace(totalConfidence / float64(len(predictions)))
		summary.TotalEstimatedCost = utils.RoundWithTwoDecimalPlace(totalCost)
	}

	analysisID, _ := utils.GenerateID()

	logrus.WithFields(logrus.Fields{
		"analysis_id": analysisID,
		"days_ahead":  daysAhead,
		"confidence":  confidence,
		"predictions": len(predictions),
	}).Debug("previsoes: análise de próximas compras concluída")

	return &domain.PredictionResponse{
		Success:     true,
		AnalysisID:  analysisID,
		Predictions: predictions,
		Summary:     summary,
	}, nil
}

// mean retorna a média aritmética; 0 para conjuntos vazios
func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// stdDevPopulation retorna o desvio padrão populacional dos valores
func stdDevPopulation(values []float64, avg float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sumSquares := 0.0
	for _, v := range values {
		diff := v - avg
		sumSquares += diff * diff
	}
	return math.Sqrt(sumSquares / float64(len(values)))
}

// regularityScore converte a variação dos intervalos em uma nota 0-100.
// Intervalos perfeitamente regulares valem 100; alta variância aproxima de 0.
// Quando a média é 0 (compras no mesmo dia), a nota só é 100 se todos os
// intervalos forem exatamente 0 — guarda contra divisão por zero.
func regularityScore(gaps []float64, avgInterval float64) float64 {
	if avgInterval == 0 {
		for _, gap := range gaps {
			if gap != 0 {
				return 0
			}
		}
		return 100
	}

	stdDev := stdDevPopulation(gaps, avgInterval)
	return math.Max(0, 100-(stdDev/avgInterval)*100)
}
