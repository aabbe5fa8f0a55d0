package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/mlourenci/despensa-api/infrastructure/database/postgres"
	"github.com/mlourenci/despensa-api/infrastructure/repository"
	"github.com/mlourenci/despensa-api/internal/api"
	"github.com/mlourenci/despensa-api/internal/config"
	"github.com/mlourenci/despensa-api/internal/scheduler"
	"github.com/mlourenci/despensa-api/internal/usecases/analyzing"
	"github.com/sirupsen/logrus"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	purchaseRepo := repository.NewPurchaseRepository(pgConn)
	catalogRepo := repository.NewCatalogRepository(pgConn)

	// Motor de análise de consumo
	analysisService := analyzing.NewService(cfg, purchaseRepo, catalogRepo)

	// Agendador do digest diário de análises
	digestService := scheduler.NewAnalysisDigestService(analysisService, cfg)

	if err := digestService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do digest de análises")
	} else {
		logrus.Info("Agendador do digest de análises iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		analysisService,
		digestService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
