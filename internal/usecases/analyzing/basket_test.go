package analyzing

import (
	"testing"
	"time"

	"github.com/mlourenci/despensa-api/infrastructure/repository/mocks"
	"github.com/mlourenci/despensa-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestService_CompareBasicBasket(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPurchaseRepo := mocks.NewMockPurchaseRepository(ctrl)
	mockCatalogRepo := mocks.NewMockCatalogRepository(ctrl)

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	service := NewService(testConfig(), mockPurchaseRepo, mockCatalogRepo).WithClock(fixedClock(now))

	saoJose := &domain.Market{ID: "MKT001", Name: "Mercado São José"}
	atacadao := &domain.Market{ID: "MKT002", Name: "Atacadão Econômico"}

	tests := []struct {
		name     string
		params   BasketParams
		setup    func()
		hasError bool
		validate func(t *testing.T, response *domain.BasketResponse)
	}{
		{
			name: "Dois mercados completos - deve ranquear pelo total e apontar economia",
			params: BasketParams{
				MarketNames: []string{"São José", "Atacadão"},
			},
			setup: func() {
				mockCatalogRepo.EXPECT().FindMarketByName("São José").Return(saoJose, nil)
				mockCatalogRepo.EXPECT().FindMarketByName("Atacadão").Return(atacadao, nil)

				purchases := []*domain.Purchase{
					// Preço antigo do arroz no São José não deve prevalecer
					buyAt("P1", now.AddDate(0, 0, -40), "MKT001", "Mercado São José",
						buyItem("Arroz Branco 5kg", "grãos", 1, 30)),
					buyAt("P2", now.AddDate(0, 0, -10), "MKT001", "Mercado São José",
						buyItem("Arroz Branco 5kg", "grãos", 1, 25),
						buyItem("Feijão Preto 1kg", "grãos", 1, 8),
						buyItem("Café Torrado 500g", "mercearia", 1, 18)),
					buyAt("P3", now.AddDate(0, 0, -5), "MKT002", "Atacadão Econômico",
						buyItem("Arroz Branco 5kg", "grãos", 1, 20),
						buyItem("Feijão Preto 1kg", "grãos", 1, 10),
						buyItem("Café Torrado 500g", "mercearia", 1, 15)),
				}
				mockPurchaseRepo.EXPECT().ListPurchases(gomock.Nil()).Return(purchases, nil)
			},
			validate: func(t *testing.T, response *domain.BasketResponse) {
				assert.True(t, response.Success)
				assert.Len(t, response.MarketComparison, 2)

				cheapest := response.MarketComparison[0]
				assert.Equal(t, "Atacadão Econômico", cheapest.MarketName)
				assert.Equal(t, 45.0, cheapest.Total)
				assert.Equal(t, 1, cheapest.Position)
				assert.Equal(t, 0.0, cheapest.DifferenceFromCheapest)
				assert.Equal(t, 100.0, cheapest.CoveragePercent)

				second := response.MarketComparison[1]
				assert.Equal(t, "Mercado São José", second.MarketName)
				assert.Equal(t, 51.0, second.Total) // arroz 25 + feijão 8 + café 18
				assert.Equal(t, 2, second.Position)
				assert.Equal(t, 6.0, second.DifferenceFromCheapest)
				assert.Equal(t, 13.33, second.DifferencePercent)

				// Maior diferença de preço primeiro: arroz (5), café (3), feijão (2)
				assert.Len(t, response.ProductAnalysis, 3)
				assert.Equal(t, "arroz", response.ProductAnalysis[0].Product)
				assert.Equal(t, 5.0, response.ProductAnalysis[0].PriceSpread)
				assert.Equal(t, "Atacadão Econômico", response.ProductAnalysis[0].CheapestMarket)
				assert.Equal(t, "Mercado São José", response.ProductAnalysis[0].MostExpensiveMarket)
				assert.Equal(t, "café", response.ProductAnalysis[1].Product)
				assert.Equal(t, "feijão", response.ProductAnalysis[2].Product)

				assert.Equal(t, "Atacadão Econômico", response.Summary.CheapestMarket)
				assert.Equal(t, 10.0, response.Summary.MaxPotentialSaving)
				assert.Equal(t, 3, response.Summary.TotalStaples)
			},
		},
		{
			name: "Mercado sem nenhum item encontrado - vai para o fim do ranking",
			params: BasketParams{
				MarketNames: []string{"São José", "Mercadinho Vazio"},
			},
			setup: func() {
				vazio := &domain.Market{ID: "MKT003", Name: "Mercadinho Vazio"}
				mockCatalogRepo.EXPECT().FindMarketByName("São José").Return(saoJose, nil)
				mockCatalogRepo.EXPECT().FindMarketByName("Mercadinho Vazio").Return(vazio, nil)

				purchases := []*domain.Purchase{
					buyAt("P1", now.AddDate(0, 0, -10), "MKT001", "Mercado São José",
						buyItem("Arroz Branco 5kg", "grãos", 1, 25),
						buyItem("Feijão Preto 1kg", "grãos", 1, 8),
						buyItem("Café Torrado 500g", "mercearia", 1, 18)),
					buyAt("P2", now.AddDate(0, 0, -5), "MKT003", "Mercadinho Vazio",
						buyItem("Sabão em Pó 1kg", "limpeza", 1, 12)),
				}
				mockPurchaseRepo.EXPECT().ListPurchases(gomock.Nil()).Return(purchases, nil)
			},
			validate: func(t *testing.T, response *domain.BasketResponse) {
				assert.True(t, response.Success)
				assert.Len(t, response.MarketComparison, 2)

				// Mesmo com total 0, o mercado sem cobertura não pode ser o
				// mais barato
				assert.Equal(t, "Mercado São José", response.MarketComparison[0].MarketName)
				assert.Equal(t, 1, response.MarketComparison[0].Position)
				assert.Equal(t, 0.0, response.MarketComparison[0].DifferenceFromCheapest)

				empty := response.MarketComparison[1]
				assert.Equal(t, "Mercadinho Vazio", empty.MarketName)
				assert.Equal(t, 2, empty.Position)
				assert.Equal(t, 0, empty.FoundCount)
				assert.Equal(t, 0.0, empty.CoveragePercent)
				assert.Len(t, empty.MissingProducts, 3)

				assert.Equal(t, "Mercado São José", response.Summary.CheapestMarket)
			},
		},
		{
			name: "Menos de dois nomes informados - deve falhar sem consultar o catálogo",
			params: BasketParams{
				MarketNames: []string{"São José"},
			},
			setup: func() {},
			validate: func(t *testing.T, response *domain.BasketResponse) {
				assert.False(t, response.Success)
				assert.Contains(t, response.Message, "pelo menos dois mercados")
			},
		},
		{
			name: "Apenas um mercado reconhecido - deve falhar com mensagem",
			params: BasketParams{
				MarketNames: []string{"São José", "Desconhecido"},
			},
			setup: func() {
				mockCatalogRepo.EXPECT().FindMarketByName("São José").Return(saoJose, nil)
				mockCatalogRepo.EXPECT().FindMarketByName("Desconhecido").Return(nil, nil)
			},
			validate: func(t *testing.T, response *domain.BasketResponse) {
				assert.False(t, response.Success)
				assert.Contains(t, response.Message, "Menos de dois mercados reconhecidos")
			},
		},
		{
			name: "Nomes que resolvem no mesmo mercado - deve deduplicar e falhar",
			params: BasketParams{
				MarketNames: []string{"São José", "Mercado São"},
			},
			setup: func() {
				mockCatalogRepo.EXPECT().FindMarketByName("São José").Return(saoJose, nil)
				mockCatalogRepo.EXPECT().FindMarketByName("Mercado São").Return(saoJose, nil)
			},
			validate: func(t *testing.T, response *domain.BasketResponse) {
				assert.False(t, response.Success)
				assert.Contains(t, response.Message, "Menos de dois mercados reconhecidos")
			},
		},
		{
			name: "Erro ao resolver mercado - deve propagar o erro",
			params: BasketParams{
				MarketNames: []string{"São José", "Atacadão"},
			},
			setup: func() {
				mockCatalogRepo.EXPECT().FindMarketByName("São José").Return(nil, assert.AnError)
			},
			hasError: true,
		},
		{
			name: "Erro do repositório de compras - deve propagar o erro",
			params: BasketParams{
				MarketNames: []string{"São José", "Atacadão"},
			},
			setup: func() {
				mockCatalogRepo.EXPECT().FindMarketByName("São José").Return(saoJose, nil)
				mockCatalogRepo.EXPECT().FindMarketByName("Atacadão").Return(atacadao, nil)
				mockPurchaseRepo.EXPECT().ListPurchases(gomock.Nil()).Return(nil, assert.AnError)
			},
			hasError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			response, err := service.CompareBasicBasket(tt.params)

			if tt.hasError {
				assert.Error(t, err)
				assert.Nil(t, response)
				return
			}

			assert.NoError(t, err)
			if tt.validate != nil {
				tt.validate(t, response)
			}
		})
	}
}
