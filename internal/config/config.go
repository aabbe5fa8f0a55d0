package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	Analysis       Analysis       `mapstructure:",squash"`
	AnalysisDigest AnalysisDigest `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Analysis concentra os parâmetros padrão do motor de análise de consumo
type Analysis struct {
	PredictionLookbackDays int      `mapstructure:"analysis_prediction_lookback_days"`
	DefaultDaysAhead       int      `mapstructure:"analysis_default_days_ahead"`
	DefaultConfidence      float64  `mapstructure:"analysis_default_confidence"`
	DefaultRecentDays      int      `mapstructure:"analysis_default_recent_days"`
	HistoricalWindowDays   int      `mapstructure:"analysis_historical_window_days"`
	DefaultChangePeriod    int      `mapstructure:"analysis_default_change_period"`
	ForgottenItemsCap      int      `mapstructure:"analysis_forgotten_items_cap"`
	ChangesCap             int      `mapstructure:"analysis_changes_cap"`
	BasketStaples          []string `mapstructure:"analysis_basket_staples"`
}

type AnalysisDigest struct {
	CronSchedule string `mapstructure:"analysis_digest_cron"`
	Enabled      bool   `mapstructure:"analysis_digest_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/despensa")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	// Defaults do motor de análise de consumo
	viper.SetDefault("ANALYSIS_PREDICTION_LOOKBACK_DAYS", 90) // Janela histórica da previsão
	viper.SetDefault("ANALYSIS_DEFAULT_DAYS_AHEAD", 7)        // Horizonte de previsão
	viper.SetDefault("ANALYSIS_DEFAULT_CONFIDENCE", 70)       // Confiança mínima (0-100)
	viper.SetDefault("ANALYSIS_DEFAULT_RECENT_DAYS", 30)      // Janela recente de itens esquecidos
	viper.SetDefault("ANALYSIS_HISTORICAL_WINDOW_DAYS", 180)  // Janela histórica de itens esquecidos
	viper.SetDefault("ANALYSIS_DEFAULT_CHANGE_PERIOD", 60)    // Período da análise de mudanças
	viper.SetDefault("ANALYSIS_FORGOTTEN_ITEMS_CAP", 20)
	viper.SetDefault("ANALYSIS_CHANGES_CAP", 15)
	viper.SetDefault("ANALYSIS_BASKET_STAPLES",
		"arroz,feijão,açúcar,café,leite,óleo,farinha de trigo,macarrão,pão,manteiga,sal,ovos")

	// Defaults do digest diário de análises
	viper.SetDefault("ANALYSIS_DIGEST_CRON", "0 7 * * *") // Todos os dias às 7h da manhã
	viper.SetDefault("ANALYSIS_DIGEST_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
