package analyzing

import (
	"github.com/mlourenci/despensa-api/internal/domain"
)

// PredictionParams são os parâmetros da previsão de próximas compras.
// Campos nulos assumem os valores padrão da configuração.
type PredictionParams struct {
	DaysAhead  *int     // Horizonte de previsão em dias
	Confidence *float64 // Regularidade mínima exigida (0-100)
}

// ForgottenParams são os parâmetros da análise de itens esquecidos
type ForgottenParams struct {
	BasedOnHistory *int // Tamanho da janela recente em dias
}

// ChangesParams são os parâmetros da análise de mudanças de consumo
type ChangesParams struct {
	Period *int // Período total em dias, dividido em duas metades
}

// BasketParams são os parâmetros da comparação de cesta básica
type BasketParams struct {
	MarketNames []string
}

// Analyzer define as quatro análises do motor de inteligência de consumo.
// Condições esperadas de dados insuficientes são sinalizadas via Success=false
// na resposta; erros retornados indicam falhas inesperadas (banco, dados
// malformados).
type Analyzer interface {
	// PredictNextPurchases prevê as próximas compras a partir da regularidade
	// dos intervalos entre compras de cada produto
	PredictNextPurchases(params PredictionParams) (*domain.PredictionResponse, error)

	// SuggestForgottenItems aponta produtos historicamente frequentes ausentes
	// da janela recente de compras
	SuggestForgottenItems(params ForgottenParams) (*domain.ForgottenResponse, error)

	// DetectConsumptionChanges compara as duas metades do período e classifica
	// a trajetória de consumo de cada produto
	DetectConsumptionChanges(params ChangesParams) (*domain.ChangesResponse, error)

	// CompareBasicBasket compara o custo da cesta básica entre mercados
	CompareBasicBasket(params BasketParams) (*domain.BasketResponse, error)
}
