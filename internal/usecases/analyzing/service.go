// Package analyzing implementa o motor de inteligência de consumo: previsão
// de recompras, itens esquecidos, mudanças de consumo e cesta básica. Todas
// as análises são computações síncronas e sem estado sobre o histórico de
// compras lido a cada chamada.
package analyzing

import (
	"time"

	"github.com/mlourenci/despensa-api/infrastructure/repository"
	"github.com/mlourenci/despensa-api/internal/config"
)

// Service implementa a interface Analyzer sobre os repositórios de compras
// e catálogo
type Service struct {
	cfg          *config.Config
	purchaseRepo repository.PurchaseRepository
	catalogRepo  repository.CatalogRepository
	now          func() time.Time
}

// NewService cria uma nova instância do serviço de análises
func NewService(
	cfg *config.Config,
	purchaseRepo repository.PurchaseRepository,
	catalogRepo repository.CatalogRepository,
) *Service {
	return &Service{
		cfg:          cfg,
		purchaseRepo: purchaseRepo,
		catalogRepo:  catalogRepo,
		now:          time.Now,
	}
}

// WithClock substitui a fonte de tempo das análises. Todos os cálculos
// relativos a datas usam essa referência, o que torna os testes determinísticos.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) daysAheadOrDefault(v *int) int {
	if v != nil {
		return *v
	}
	return s.cfg.Analysis.DefaultDaysAhead
}

func (s *Service) confidenceOrDefault(v *float64) float64 {
	if v != nil {
		return *v
	}
	return s.cfg.Analysis.DefaultConfidence
}

func (s *Service) recentDaysOrDefault(v *int) int {
	if v != nil {
		return *v
	}
	return s.cfg.Analysis.DefaultRecentDays
}

func (s *Service) periodOrDefault(v *int) int {
	if v != nil {
		return *v
	}
	return s.cfg.Analysis.DefaultChangePeriod
}
