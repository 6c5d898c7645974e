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
)

type Config struct {
	App                 App                 `mapstructure:",squash"`
	Server              Server              `mapstructure:",squash"`
	Database            Database            `mapstructure:",squash"`
	Meta                Meta                `mapstructure:",squash"`
	Auth                Auth                `mapstructure:",squash"`
	Redis               Redis               `mapstructure:",squash"`
	Gemini              Gemini              `mapstructure:",squash"`
	SendGrid            SendGrid            `mapstructure:",squash"`
	WhatsApp            WhatsApp            `mapstructure:",squash"`
	MonthlyInsightsSync MonthlyInsightsSync `mapstructure:",squash"`
	Comparison          Comparison          `mapstructure:",squash"`
}

type Server struct {
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"server_shutdown_timeout"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`

	MaxOpenConns    int           `mapstructure:"database_max_open_conns"`
	MaxIdleConns    int           `mapstructure:"database_max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"database_conn_max_lifetime"`
}

type Meta struct {
	BaseURL           string        `mapstructure:"meta_base_url"`
	URL               string        `mapstructure:"meta_url"`
	Version           string        `mapstructure:"meta_version"`
	AccessToken       string        `mapstructure:"meta_access_token"`
	AppID             string        `mapstructure:"meta_app_id"`
	AppSecret         string        `mapstructure:"meta_app_secret"`
	BusinessIDs       []string      `mapstructure:"meta_business_ids"`
	LongLivedToken    string        `mapstructure:"meta_long_lived_token"`
	TokenExpiresAt    time.Time     `mapstructure:"-"`
	PageLimit         int           `mapstructure:"meta_page_limit"`
	PageDelay         time.Duration `mapstructure:"meta_page_delay"`
	RequestInterval   time.Duration `mapstructure:"meta_request_interval"`
	MaxRetries        int           `mapstructure:"meta_max_retries"`
	RequestTimeout    time.Duration `mapstructure:"meta_request_timeout"`
	AutoRefreshTokens bool          `mapstructure:"meta_auto_refresh_tokens"`
}

type App struct {
	LogLevel       string   `mapstructure:"log_level"`
	LogFormat      string   `mapstructure:"log_format"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Auth struct {
	Secret        string        `mapstructure:"auth_secret"`
	TokenDuration time.Duration `mapstructure:"auth_token_duration"`
}

type Redis struct {
	URL         string        `mapstructure:"redis_url"`
	SnapshotTTL time.Duration `mapstructure:"redis_snapshot_ttl"`
	KeyPrefix   string        `mapstructure:"redis_key_prefix"`
	Enabled     bool          `mapstructure:"redis_enabled"`
}

type Gemini struct {
	BaseURL        string        `mapstructure:"gemini_base_url"`
	APIKey         string        `mapstructure:"gemini_api_key"`
	Model          string        `mapstructure:"gemini_model"`
	RequestTimeout time.Duration `mapstructure:"gemini_request_timeout"`
}

type SendGrid struct {
	APIKey    string `mapstructure:"sendgrid_api_key"`
	FromEmail string `mapstructure:"sendgrid_from_email"`
	FromName  string `mapstructure:"sendgrid_from_name"`
}

type WhatsApp struct {
	BaseURL       string        `mapstructure:"whatsapp_base_url"`
	AccessToken   string        `mapstructure:"whatsapp_access_token"`
	PhoneNumberID string        `mapstructure:"whatsapp_phone_number_id"`
	Timeout       time.Duration `mapstructure:"whatsapp_timeout"`
}

type MonthlyInsightsSync struct {
	CronSchedule        string `mapstructure:"monthly_insights_sync_cron"`
	RequestDelaySeconds int    `mapstructure:"monthly_insights_sync_request_delay_seconds"`
	MaxConcurrentJobs   int    `mapstructure:"monthly_insights_sync_max_concurrent_jobs"`
	Enabled             bool   `mapstructure:"monthly_insights_sync_enabled"`
	MonthLookBack       int    `mapstructure:"monthly_insights_sync_month_lookback"`
	CurrentMonthCron    string `mapstructure:"monthly_insights_sync_current_month_cron"`
}

type Comparison struct {
	LoadTimeout time.Duration `mapstructure:"comparison_load_timeout"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("SERVER_SHUTDOWN_TIMEOUT", "15s")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/marketing")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 20)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DATABASE_CONN_MAX_LIFETIME", "30m")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v21.0")
	viper.SetDefault("META_APP_ID", "your_app_id")
	viper.SetDefault("META_APP_SECRET", "your_app_secret")
	viper.SetDefault("META_ACCESS_TOKEN", "your_access_token") // ONLY LOCAL
	viper.SetDefault("META_BUSINESS_IDS", "")
	viper.SetDefault("META_PAGE_LIMIT", 25)
	viper.SetDefault("META_PAGE_DELAY", "200ms")
	viper.SetDefault("META_REQUEST_INTERVAL", "100ms")
	viper.SetDefault("META_MAX_RETRIES", 3)
	viper.SetDefault("META_REQUEST_TIMEOUT", "60s")
	viper.SetDefault("META_AUTO_REFRESH_TOKENS", false)

	viper.SetDefault("AUTH_SECRET", "your_secret_key")
	viper.SetDefault("AUTH_TOKEN_DURATION", "24h")

	viper.SetDefault("REDIS_URL", "redis://localhost:6379/0")
	viper.SetDefault("REDIS_SNAPSHOT_TTL", "1h")
	viper.SetDefault("REDIS_KEY_PREFIX", "marketing:comparison:")
	viper.SetDefault("REDIS_ENABLED", false)

	viper.SetDefault("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta/models")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_MODEL", "gemini-2.0-flash")
	viper.SetDefault("GEMINI_REQUEST_TIMEOUT", "90s")

	viper.SetDefault("SENDGRID_API_KEY", "")
	viper.SetDefault("SENDGRID_FROM_EMAIL", "no-reply@example.com")
	viper.SetDefault("SENDGRID_FROM_NAME", "Marketing Dashboard")

	viper.SetDefault("WHATSAPP_BASE_URL", "https://graph.facebook.com/v21.0")
	viper.SetDefault("WHATSAPP_ACCESS_TOKEN", "")
	viper.SetDefault("WHATSAPP_PHONE_NUMBER_ID", "")
	viper.SetDefault("WHATSAPP_TIMEOUT", "30s")

	// Defaults para sincronização mensal de insights
	viper.SetDefault("MONTHLY_INSIGHTS_SYNC_CRON", "0 5 1 * *")        // No primeiro dia de cada mês às 5h da manhã
	viper.SetDefault("MONTHLY_INSIGHTS_SYNC_REQUEST_DELAY_SECONDS", 2) // 2 segundos entre contas
	viper.SetDefault("MONTHLY_INSIGHTS_SYNC_MAX_CONCURRENT_JOBS", 3)   // 3 jobs concorrentes
	viper.SetDefault("MONTHLY_INSIGHTS_SYNC_ENABLED", false)           // Habilitar sincronização mensal
	viper.SetDefault("MONTHLY_INSIGHTS_SYNC_MONTH_LOOKBACK", 1)        // 1 mês para buscar dados

	// Mês corrente atualizado todo dia às 6h
	viper.SetDefault("MONTHLY_INSIGHTS_SYNC_CURRENT_MONTH_CRON", "0 6 * * *")

	viper.SetDefault("COMPARISON_LOAD_TIMEOUT", "30s")

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("LOG_FORMAT", "text")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173,https://marketing-dashboard-web.vercel.app")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

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

	config.Meta.URL = fmt.Sprintf("%s/%s", config.Meta.BaseURL, config.Meta.Version)

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

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
