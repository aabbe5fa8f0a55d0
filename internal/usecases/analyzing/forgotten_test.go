package analyzing

import (
	"testing"
	"time"

	"github.com/mlourenci/despensa-api/infrastructure/repository/mocks"
	"github.com/mlourenci/despensa-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

// weeklyPurchases gera uma compra do item a cada intervalo de dias, começando
// em now+firstOffset dias
func purchasesEvery(now time.Time, firstOffset, interval, count int, item func() *domain.LineItem) []*domain.Purchase {
	purchases := make([]*domain.Purchase, 0, count)
	for i := 0; i < count; i++ {
		date := now.AddDate(0, 0, firstOffset+i*interval)
		purchases = append(purchases, buyAt("", date, "MKT001", "Mercado São José", item()))
	}
	return purchases
}

func TestService_SuggestForgottenItems(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPurchaseRepo := mocks.NewMockPurchaseRepository(ctrl)

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	service := NewService(testConfig(), mockPurchaseRepo, nil).WithClock(fixedClock(now))

	tests := []struct {
		name     string
		params   ForgottenParams
		setup    func()
		hasError bool
		validate func(t *testing.T, response *domain.ForgottenResponse)
	}{
		{
			name:   "Produto frequente ausente há muito tempo - prioridade alta",
			params: ForgottenParams{},
			setup: func() {
				// Sete compras de arroz entre -160 e -100 dias, nada na janela
				// recente de 30 dias
				purchases := purchasesEvery(now, -160, 10, 7, func() *domain.LineItem {
					return buyItem("Arroz Branco 5kg", "grãos", 1, 27.90)
				})
				mockPurchaseRepo.EXPECT().ListPurchases(gomock.Nil()).Return(purchases, nil)
			},
			validate: func(t *testing.T, response *domain.ForgottenResponse) {
				assert.True(t, response.Success)
				assert.Len(t, response.ForgottenItems, 1)

				item := response.ForgottenItems[0]
				assert.Equal(t, "Arroz Branco 5kg", item.ProductName)
				assert.Equal(t, 1.17, item.MonthlyFrequency) // 7 compras / 6 meses
				assert.Equal(t, domain.PriorityAlta, item.Priority)
				assert.Equal(t, 100, item.DaysSinceLastPurchase)
				assert.Equal(t, "Não comprado há muito tempo", item.Reason)
				assert.Equal(t, 27.90, item.EstimatedPrice)
				assert.Equal(t, "Mercado São José", item.LastMarket)
				assert.Equal(t, 7, item.PurchaseCount)

				assert.Equal(t, 1, response.Summary.TotalCount)
				assert.Equal(t, 27.90, response.Summary.EstimatedCost)
				assert.Len(t, response.CategoryGroups["grãos"], 1)
			},
		},
		{
			name:   "Produto de frequência moderada ausente há pouco - prioridade média",
			params: ForgottenParams{},
			setup: func() {
				// Quatro compras entre -130 e -40 dias: 0.67 por mês, última há
				// 40 dias
				purchases := purchasesEvery(now, -130, 30, 4, func() *domain.LineItem {
					return buyItem("Farinha de Trigo 1kg", "mercearia", 2, 5.60)
				})
				mockPurchaseRepo.EXPECT().ListPurchases(gomock.Nil()).Return(purchases, nil)
			},
			validate: func(t *testing.T, response *domain.ForgottenResponse) {
				assert.True(t, response.Success)
				assert.Len(t, response.ForgottenItems, 1)

				item := response.ForgottenItems[0]
				assert.Equal(t, 0.67, item.MonthlyFrequency)
				assert.Equal(t, domain.PriorityMedia, item.Priority)
				assert.Equal(t, 40, item.DaysSinceLastPurchase)
				assert.Equal(t, "Produto frequente ausente das compras recentes", item.Reason)
			},
		},
		{
			name:   "Produto comprado na janela recente - não deve ser sugerido",
			params: ForgottenParams{},
			setup: func() {
				purchases := purchasesEvery(now, -160, 10, 7, func() *domain.LineItem {
					return buyItem("Arroz Branco 5kg", "grãos", 1, 27.90)
				})
				purchases = append(purchases,
					buyAt("", now.AddDate(0, 0, -5), "MKT001", "Mercado São José",
						buyItem("Arroz Branco 5kg", "grãos", 1, 26.50)),
				)
				mockPurchaseRepo.EXPECT().ListPurchases(gomock.Nil()).Return(purchases, nil)
			},
			validate: func(t *testing.T, response *domain.ForgottenResponse) {
				assert.True(t, response.Success)
				assert.Empty(t, response.ForgottenItems)
				assert.Equal(t, 0, response.Summary.TotalCount)
			},
		},
		{
			name:   "Produto com menos de três ocorrências históricas - não qualifica",
			params: ForgottenParams{},
			setup: func() {
				purchases := purchasesEvery(now, -100, 20, 2, func() *domain.LineItem {
					return buyItem("Manteiga 200g", "laticínios", 1, 12.80)
				})
				mockPurchaseRepo.EXPECT().ListPurchases(gomock.Nil()).Return(purchases, nil)
			},
			validate: func(t *testing.T, response *domain.ForgottenResponse) {
				assert.True(t, response.Success)
				assert.Empty(t, response.ForgottenItems)
			},
		},
		{
			name:   "Sem compras na janela histórica - deve falhar com mensagem",
			params: ForgottenParams{},
			setup: func() {
				purchases := []*domain.Purchase{
					buyAt("", now.AddDate(0, 0, -10), "MKT001", "Mercado São José",
						buyItem("Leite Integral 1L", "laticínios", 1, 5.40)),
				}
				mockPurchaseRepo.EXPECT().ListPurchases(gomock.Nil()).Return(purchases, nil)
			},
			validate: func(t *testing.T, response *domain.ForgottenResponse) {
				assert.False(t, response.Success)
				assert.Contains(t, response.Message, "janela histórica")
			},
		},
		{
			name: "basedOnHistory igual ou maior que a janela histórica - deve ser rejeitado",
			params: ForgottenParams{
				BasedOnHistory: intPtr(200),
			},
			setup: func() {},
			validate: func(t *testing.T, response *domain.ForgottenResponse) {
				assert.False(t, response.Success)
				assert.Contains(t, response.Message, "menor que a janela histórica")
			},
		},
		{
			name: "basedOnHistory não positivo - deve ser rejeitado",
			params: ForgottenParams{
				BasedOnHistory: intPtr(0),
			},
			setup: func() {},
			validate: func(t *testing.T, response *domain.ForgottenResponse) {
				assert.False(t, response.Success)
				assert.Contains(t, response.Message, "positivo")
			},
		},
		{
			name:   "Erro do repositório - deve propagar o erro",
			params: ForgottenParams{},
			setup: func() {
				mockPurchaseRepo.EXPECT().ListPurchases(gomock.Nil()).Return(nil, assert.AnError)
			},
			hasError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			response, err := service.SuggestForgottenItems(tt.params)

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

func TestService_SuggestForgottenItems_CorteECusto(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPurchaseRepo := mocks.NewMockPurchaseRepository(ctrl)

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	// Corte de exibição de um item para verificar que o custo estimado soma
	// todos os qualificados
	cfg := testConfig()
	cfg.Analysis.ForgottenItemsCap = 1

	service := NewService(cfg, mockPurchaseRepo, nil).WithClock(fixedClock(now))

	// Café: 7 ocorrências (1.17 por mês); Arroz: 4 ocorrências (0.67 por mês)
	purchases := purchasesEvery(now, -160, 10, 7, func() *domain.LineItem {
		return buyItem("Café Torrado 500g", "mercearia", 1, 18.90)
	})
	purchases = append(purchases, purchasesEvery(now, -130, 30, 4, func() *domain.LineItem {
		return buyItem("Arroz Branco 5kg", "grãos", 1, 27.90)
	})...)
	mockPurchaseRepo.EXPECT().ListPurchases(gomock.Nil()).Return(purchases, nil)

	response, err := service.SuggestForgottenItems(ForgottenParams{})

	assert.NoError(t, err)
	assert.True(t, response.Success)

	// Apenas o mais frequente é exibido, mas o resumo considera os dois
	assert.Len(t, response.ForgottenItems, 1)
	assert.Equal(t, "Café Torrado 500g", response.ForgottenItems[0].ProductName)
	assert.Equal(t, 2, response.Summary.TotalCount)
	assert.Equal(t, 46.80, response.Summary.EstimatedCost) // 18.90 + 27.90
}
