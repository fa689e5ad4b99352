package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/vfg2006/sgf-sync-api/pkg/utils"
)

type Config struct {
	App       App       `mapstructure:",squash"`
	Server    Server    `mapstructure:",squash"`
	Database  Database  `mapstructure:",squash"`
	Trier     Trier     `mapstructure:",squash"`
	Sync      Sync      `mapstructure:",squash"`
	Reporting Reporting `mapstructure:",squash"`
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

// Trier configura o cliente da API do gateway Trier SGF, incluindo a
// política de retentativas do FetchClient.
type Trier struct {
	BaseURL           string        `mapstructure:"trier_base_url"`
	AccessToken       string        `mapstructure:"trier_access_token"`
	PageSize          int           `mapstructure:"trier_page_size"`
	RequestTimeout    time.Duration `mapstructure:"trier_request_timeout"`
	RetryCycles       int           `mapstructure:"trier_retry_cycles"`
	AttemptsPerCycle  int           `mapstructure:"trier_retry_attempts_per_cycle"`
	RetryAttemptDelay time.Duration `mapstructure:"trier_retry_attempt_delay"`
	RetryCycleDelay   time.Duration `mapstructure:"trier_retry_cycle_delay"`
}

// Sync configura a carga histórica e os intervalos das tarefas de
// sincronização contínua.
type Sync struct {
	HistoricalStartDate string        `mapstructure:"sync_historical_start_date"`
	WindowDays          int           `mapstructure:"sync_window_days"`
	PollInterval        time.Duration `mapstructure:"sync_poll_interval"`
	SalesInterval       time.Duration `mapstructure:"sync_sales_interval"`
	PurchasesInterval   time.Duration `mapstructure:"sync_purchases_interval"`
	ProductsInterval    time.Duration `mapstructure:"sync_products_interval"`
	StockInterval       time.Duration `mapstructure:"sync_stock_interval"`
	SellersInterval     time.Duration `mapstructure:"sync_sellers_interval"`
	SuppliersInterval   time.Duration `mapstructure:"sync_suppliers_interval"`
}

type Reporting struct {
	CacheTTL time.Duration `mapstructure:"reporting_cache_ttl"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/sgf?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("TRIER_BASE_URL", "https://api-sgf-gateway.triersistemas.com.br/sgfpod1")
	viper.SetDefault("TRIER_ACCESS_TOKEN", "your_access_token") // ONLY LOCAL
	viper.SetDefault("TRIER_PAGE_SIZE", 999)
	viper.SetDefault("TRIER_REQUEST_TIMEOUT", "30s")
	viper.SetDefault("TRIER_RETRY_CYCLES", 2)
	viper.SetDefault("TRIER_RETRY_ATTEMPTS_PER_CYCLE", 5)
	viper.SetDefault("TRIER_RETRY_ATTEMPT_DELAY", "10s")
	viper.SetDefault("TRIER_RETRY_CYCLE_DELAY", "5m")

	// Defaults para a carga histórica e a orquestração contínua
	viper.SetDefault("SYNC_HISTORICAL_START_DATE", "2025-10-01")
	viper.SetDefault("SYNC_WINDOW_DAYS", 10)   // janelas de 10 dias na carga histórica
	viper.SetDefault("SYNC_POLL_INTERVAL", "60s")
	viper.SetDefault("SYNC_SALES_INTERVAL", "10m")
	viper.SetDefault("SYNC_PURCHASES_INTERVAL", "15m")
	viper.SetDefault("SYNC_PRODUCTS_INTERVAL", "15m")
	viper.SetDefault("SYNC_STOCK_INTERVAL", "10m")
	viper.SetDefault("SYNC_SELLERS_INTERVAL", "3h")
	viper.SetDefault("SYNC_SUPPLIERS_INTERVAL", "20m")

	viper.SetDefault("REPORTING_CACHE_TTL", "5m")

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

	if config.Sync.HistoricalStartDate == "" {
		return nil, fmt.Errorf("SYNC_HISTORICAL_START_DATE é obrigatória")
	}
	if _, err := utils.ParseDate(config.Sync.HistoricalStartDate); err != nil {
		return nil, fmt.Errorf("SYNC_HISTORICAL_START_DATE inválida: %w", err)
	}
	if config.Sync.WindowDays < 1 {
		return nil, fmt.Errorf("SYNC_WINDOW_DAYS deve ser ao menos 1, recebido %d", config.Sync.WindowDays)
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
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
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
