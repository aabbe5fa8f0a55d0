package handler

import (
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/mlourenci/despensa-api/internal/usecases/analyzing"
	"github.com/mlourenci/despensa-api/pkg/apiErrors"
	"github.com/mlourenci/despensa-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// GetPredictions retorna a previsão de próximas compras
func GetPredictions(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		params := analyzing.PredictionParams{}

		if raw := r.URL.Query().Get("daysAhead"); raw != "" {
			daysAhead, err := strconv.Atoi(raw)
			if err != nil || daysAhead < 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidParameter, "daysAhead deve ser um inteiro não negativo", nil)
				return
			}
			params.DaysAhead = &daysAhead
		}

		if raw := r.URL.Query().Get("confidence"); raw != "" {
			confidence, err := strconv.ParseFloat(raw, 64)
			if err != nil || confidence < 0 || confidence > 100 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidParameter, "confidence deve estar entre 0 e 100", nil)
				return
			}
			params.Confidence = &confidence
		}

		response, err := service.PredictNextPurchases(params)
		if err != nil {
			logger.WithError(err).Error("previsoes: erro ao executar análise de previsão")
			apiErrors.WriteError(w, apiErrors.ErrAnalysisFailure, "Erro ao executar a análise de previsão", nil)
			return
		}

		logger.WithFields(log.Fields{
			"analysis_success": response.Success,
			"analysis_count":   len(response.Predictions),
		}).Info("previsoes: análise concluída")

		writeJSON(w, response)
	})
}

// GetForgottenItems retorna os itens historicamente frequentes ausentes das
// compras recentes
func GetForgottenItems(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		params := analyzing.ForgottenParams{}

		if raw := r.URL.Query().Get("basedOnHistory"); raw != "" {
			basedOnHistory, err := strconv.Atoi(raw)
			if err != nil || basedOnHistory <= 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidParameter, "basedOnHistory deve ser um inteiro positivo", nil)
				return
			}
			params.BasedOnHistory = &basedOnHistory
		}

		response, err := service.SuggestForgottenItems(params)
		if err != nil {
			logger.WithError(err).Error("esquecidos: erro ao executar análise de itens esquecidos")
			apiErrors.WriteError(w, apiErrors.ErrAnalysisFailure, "Erro ao executar a análise de itens esquecidos", nil)
			return
		}

		logger.WithFields(log.Fields{
			"analysis_success": response.Success,
			"analysis_count":   len(response.ForgottenItems),
		}).Info("esquecidos: análise concluída")

		writeJSON(w, response)
	})
}

// GetConsumptionChanges retorna as mudanças de consumo entre as metades do
// período
func GetConsumptionChanges(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		params := analyzing.ChangesParams{}

		if raw := r.URL.Query().Get("period"); raw != "" {
			period, err := strconv.Atoi(raw)
			if err != nil || period <= 1 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidParameter, "period deve ser um inteiro maior que 1", nil)
				return
			}
			params.Period = &period
		}

		response, err := service.DetectConsumptionChanges(params)
		if err != nil {
			logger.WithError(err).Error("mudancas: erro ao executar análise de mudanças de consumo")
			apiErrors.WriteError(w, apiErrors.ErrAnalysisFailure, "Erro ao executar a análise de mudanças de consumo", nil)
			return
		}

		logger.WithFields(log.Fields{
			"analysis_success": response.Success,
			"analysis_count":   len(response.Changes),
		}).Info("mudancas: análise concluída")

		writeJSON(w, response)
	})
}

// compareBasketRequest é o corpo da comparação de cesta básica
type compareBasketRequest struct {
	MarketNames []string `json:"marketNames"`
}

// CompareBasket compara o custo da cesta básica entre os mercados informados
func CompareBasket(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var request compareBasketRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		if len(request.MarketNames) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Informe os mercados em marketNames", nil)
			return
		}

		response, err := service.CompareBasicBasket(analyzing.BasketParams{
			MarketNames: request.MarketNames,
		})
		if err != nil {
			logger.WithError(err).Error("cesta: erro ao executar comparação de cesta básica")
			apiErrors.WriteError(w, apiErrors.ErrAnalysisFailure, "Erro ao executar a comparação de cesta básica", nil)
			return
		}

		logger.WithFields(log.Fields{
			"analysis_success": response.Success,
			"analysis_count":   len(response.MarketComparison),
		}).Info("cesta: comparação concluída")

		writeJSON(w, response)
	})
}

// writeJSON envia a resposta em JSON com o content type adequado
func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.L.WithError(err).Error("erro ao codificar resposta")
	}
}
