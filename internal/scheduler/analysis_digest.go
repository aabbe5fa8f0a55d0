// Package scheduler contém o agendamento do digest diário de análises
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/mlourenci/despensa-api/internal/config"
	"github.com/mlourenci/despensa-api/internal/usecases/analyzing"
	"github.com/sirupsen/logrus"
)

type AnalysisDigestConfig struct {
	CronSchedule string
	Enabled      bool
}

// AnalysisDigestService roda diariamente as análises de previsão e de itens
// esquecidos e registra um resumo em log. É um consumidor comum do motor de
// análise: não guarda resultados nem estado entre execuções.
type AnalysisDigestService struct {
	scheduler           *gocron.Scheduler
	analyzer            analyzing.Analyzer
	config              AnalysisDigestConfig
	digestRunning       bool
	digestMutex         sync.Mutex
	lastDigestStartedAt time.Time
	lastDigestEndedAt   time.Time
}

func NewAnalysisDigestService(
	analyzer analyzing.Analyzer,
	cfg *config.Config,
) *AnalysisDigestService {
	digestConfig := AnalysisDigestConfig{
		CronSchedule: cfg.AnalysisDigest.CronSchedule, // Default: 7h da manhã todos os dias
		Enabled:      cfg.AnalysisDigest.Enabled,      // Default: desabilitado
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": digestConfig.CronSchedule,
	}).Info("Configuração do agendador do digest de análises carregada")

	return &AnalysisDigestService{
		scheduler: scheduler,
		analyzer:  analyzer,
		config:    digestConfig,
	}
}

func (s *AnalysisDigestService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron do digest de análises desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron do digest de análises")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RunDigest(); err != nil {
			logrus.WithError(err).Error("Erro na execução do digest de análises")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar o digest de análises: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron do digest de análises")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualDigest dispara o digest fora do horário agendado
func (s *AnalysisDigestService) TriggerManualDigest() {
	go func() {
		if err := s.RunDigest(); err != nil {
			logrus.WithError(err).Error("Erro na execução manual do digest de análises")
		}
	}()
}

// RunDigest executa as análises do digest. Execuções concorrentes são
// descartadas.
func (s *AnalysisDigestService) RunDigest() error {
	s.digestMutex.Lock()
	if s.digestRunning {
		s.digestMutex.Unlock()
		logrus.Warn("Digest de análises já está em execução")
		return nil
	}
	s.digestRunning = true
	s.lastDigestStartedAt = time.Now()
	s.digestMutex.Unlock()

	defer func() {
		s.digestMutex.Lock()
		s.digestRunning = false
		s.lastDigestEndedAt = time.Now()
		s.digestMutex.Unlock()
	}()

	logrus.Info("Iniciando digest diário de análises")

	predictions, err := s.analyzer.PredictNextPurchases(analyzing.PredictionParams{})
	if err != nil {
		return fmt.Errorf("erro na análise de previsão de compras: %w", err)
	}

	if predictions.Success {
		logrus.WithFields(logrus.Fields{
			"predictions":    len(predictions.Predictions),
			"next_purchase":  predictions.Summary.NextPurchase,
			"avg_confidence": predictions.Summary.AvgConfidence,
			"estimated_cost": predictions.Summary.TotalEstimatedCost,
		}).Info("Digest: previsão de próximas compras")
	} else {
		logrus.WithField("message", predictions.Message).Info("Digest: previsão sem dados suficientes")
	}

	forgotten, err := s.analyzer.SuggestForgottenItems(analyzing.ForgottenParams{})
	if err != nil {
		return fmt.Errorf("erro na análise de itens esquecidos: %w", err)
	}

	if forgotten.Success {
		logrus.WithFields(logrus.Fields{
			"forgotten_items": forgotten.Summary.TotalCount,
			"estimated_cost":  forgotten.Summary.EstimatedCost,
		}).Info("Digest: itens esquecidos")
	} else {
		logrus.WithField("message", forgotten.Message).Info("Digest: itens esquecidos sem dados suficientes")
	}

	logrus.Info("Digest diário de análises concluído")

	return nil
}

// Status retorna o estado atual do agendador para o endpoint de status
func (s *AnalysisDigestService) Status() map[string]any {
	s.digestMutex.Lock()
	defer s.digestMutex.Unlock()

	status := map[string]any{
		"enabled":       s.config.Enabled,
		"cron_schedule": s.config.CronSchedule,
		"running":       s.digestRunning,
	}

	if !s.lastDigestStartedAt.IsZero() {
		status["last_started_at"] = s.lastDigestStartedAt.Format(time.RFC3339)
	}
	if !s.lastDigestEndedAt.IsZero() {
		status["last_ended_at"] = s.lastDigestEndedAt.Format(time.RFC3339)
	}

	return status
}
