package scheduler

import (
	"context"
	"testing"

	"github.com/mlourenci/despensa-api/internal/config"
	"github.com/mlourenci/despensa-api/internal/domain"
	"github.com/mlourenci/despensa-api/internal/usecases/analyzing"
	"github.com/mlourenci/despensa-api/internal/usecases/analyzing/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func digestConfig(enabled bool) *config.Config {
	return &config.Config{
		AnalysisDigest: config.AnalysisDigest{
			CronSchedule: "0 7 * * *",
			Enabled:      enabled,
		},
	}
}

func TestAnalysisDigestService_RunDigest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAnalyzer := mocks.NewMockAnalyzer(ctrl)
	service := NewAnalysisDigestService(mockAnalyzer, digestConfig(false))

	tests := []struct {
		name     string
		setup    func()
		hasError bool
		errorMsg string
	}{
		{
			name: "Digest com análises bem-sucedidas - deve executar as duas análises",
			setup: func() {
				mockAnalyzer.EXPECT().
					PredictNextPurchases(analyzing.PredictionParams{}).
					Return(&domain.PredictionResponse{
						Success: true,
						Predictions: []*domain.PredictionResult{
							{ProductName: "Café Torrado 500g", DaysUntilPurchase: 2},
						},
						Summary: &domain.PredictionSummary{
							NextPurchase:       "Café Torrado 500g",
							AvgConfidence:      95,
							TotalEstimatedCost: 18.90,
						},
					}, nil)

				mockAnalyzer.EXPECT().
					SuggestForgottenItems(analyzing.ForgottenParams{}).
					Return(&domain.ForgottenResponse{
						Success: true,
						Summary: &domain.ForgottenSummary{
							TotalCount:    3,
							EstimatedCost: 42.50,
						},
					}, nil)
			},
		},
		{
			name: "Digest sem dados suficientes - não deve retornar erro",
			setup: func() {
				mockAnalyzer.EXPECT().
					PredictNextPurchases(analyzing.PredictionParams{}).
					Return(&domain.PredictionResponse{
						Success: false,
						Message: "Histórico insuficiente",
					}, nil)

				mockAnalyzer.EXPECT().
					SuggestForgottenItems(analyzing.ForgottenParams{}).
					Return(&domain.ForgottenResponse{
						Success: false,
						Message: "Sem dados na janela histórica",
					}, nil)
			},
		},
		{
			name: "Erro na previsão - deve interromper o digest",
			setup: func() {
				mockAnalyzer.EXPECT().
					PredictNextPurchases(analyzing.PredictionParams{}).
					Return(nil, assert.AnError)
			},
			hasError: true,
			errorMsg: "previsão",
		},
		{
			name: "Erro nos itens esquecidos - deve interromper o digest",
			setup: func() {
				mockAnalyzer.EXPECT().
					PredictNextPurchases(analyzing.PredictionParams{}).
					Return(&domain.PredictionResponse{
						Success: false,
						Message: "Histórico insuficiente",
					}, nil)

				mockAnalyzer.EXPECT().
					SuggestForgottenItems(analyzing.ForgottenParams{}).
					Return(nil, assert.AnError)
			},
			hasError: true,
			errorMsg: "esquecidos",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			err := service.RunDigest()

			if tt.hasError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAnalysisDigestService_Status(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAnalyzer := mocks.NewMockAnalyzer(ctrl)
	service := NewAnalysisDigestService(mockAnalyzer, digestConfig(false))

	status := service.Status()

	assert.Equal(t, false, status["enabled"])
	assert.Equal(t, "0 7 * * *", status["cron_schedule"])
	assert.Equal(t, false, status["running"])
	assert.NotContains(t, status, "last_started_at")
	assert.NotContains(t, status, "last_ended_at")

	mockAnalyzer.EXPECT().
		PredictNextPurchases(analyzing.PredictionParams{}).
		Return(&domain.PredictionResponse{Success: false, Message: "Histórico insuficiente"}, nil)
	mockAnalyzer.EXPECT().
		SuggestForgottenItems(analyzing.ForgottenParams{}).
		Return(&domain.ForgottenResponse{Success: false, Message: "Sem dados"}, nil)

	assert.NoError(t, service.RunDigest())

	status = service.Status()
	assert.Equal(t, false, status["running"])
	assert.Contains(t, status, "last_started_at")
	assert.Contains(t, status, "last_ended_at")
}

func TestAnalysisDigestService_StartDesabilitado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Desabilitado por configuração: nenhuma análise deve ser agendada nem
	// executada
	mockAnalyzer := mocks.NewMockAnalyzer(ctrl)
	service := NewAnalysisDigestService(mockAnalyzer, digestConfig(false))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	assert.NoError(t, service.Start(ctx))
}
