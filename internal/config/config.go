package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App              App              `mapstructure:",squash"`
	Server           Server           `mapstructure:",squash"`
	Database         Database         `mapstructure:",squash"`
	Redis            Redis            `mapstructure:",squash"`
	DocumentStore    DocumentStore    `mapstructure:",squash"`
	GoogleAds        GoogleAds        `mapstructure:",squash"`
	LinkedIn         LinkedIn         `mapstructure:",squash"`
	Meta             Meta             `mapstructure:",squash"`
	Taboola          Taboola          `mapstructure:",squash"`
	Outbrain         Outbrain         `mapstructure:",squash"`
	Adapter          Adapter          `mapstructure:",squash"`
	Cache            Cache            `mapstructure:",squash"`
	AnalyticsCleanup AnalyticsCleanup `mapstructure:",squash"`
	CampaignBuild    CampaignBuild    `mapstructure:",squash"`
	SecretKey        string           `mapstructure:"secret_key"`
	AdminAPIKey      string           `mapstructure:"admin_api_key"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN             string        `mapstructure:"-"`
	Driver          string        `mapstructure:"database_driver"`
	Password        string        `mapstructure:"database_password"`
	URL             string        `mapstructure:"database_url"`
	User            string        `mapstructure:"database_user"`
	MigrateOnStart  bool          `mapstructure:"database_migrate_on_start"`
	MaxOpenConns    int           `mapstructure:"database_max_open_conns"`
	MaxIdleConns    int           `mapstructure:"database_max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"database_conn_max_lifetime"`
}

type Redis struct {
	Addr     string `mapstructure:"redis_addr"`
	Password string `mapstructure:"redis_password"`
	DB       int    `mapstructure:"redis_db"`
}

// DocumentStore escolhe o backend do armazenamento de documentos: postgres, redis ou memory
type DocumentStore struct {
	Driver string `mapstructure:"document_store_driver"`
}

type GoogleAds struct {
	ClientID            string `mapstructure:"google_ads_client_id"`
	ClientSecret        string `mapstructure:"google_ads_client_secret"`
	DeveloperToken      string `mapstructure:"google_ads_developer_token"`
	ManagerCustomerID   string `mapstructure:"google_ads_manager_customer_id"`
	ManagerRefreshToken string `mapstructure:"google_ads_manager_refresh_token"`
	RedirectURI         string `mapstructure:"google_ads_redirect_uri"`
	APIBaseURL          string `mapstructure:"google_ads_api_base_url"`
	APIVersion          string `mapstructure:"google_ads_api_version"`
	APIURL              string `mapstructure:"-"`
	AuthURL             string `mapstructure:"google_ads_auth_url"`
	TokenURL            string `mapstructure:"google_ads_token_url"`
}

type LinkedIn struct {
	URL     string `mapstructure:"linkedin_url"`
	Version string `mapstructure:"linkedin_version"`
}

type Meta struct {
	BaseURL   string `mapstructure:"meta_base_url"`
	URL       string `mapstructure:"meta_url"`
	Version   string `mapstructure:"meta_version"`
	AppID     string `mapstructure:"meta_app_id"`
	AppSecret string `mapstructure:"meta_app_secret"`
}

type Taboola struct {
	URL string `mapstructure:"taboola_url"`
}

type Outbrain struct {
	URL string `mapstructure:"outbrain_url"`
}

type Adapter struct {
	RequestsPerSecond float64       `mapstructure:"adapter_requests_per_second"`
	Burst             int           `mapstructure:"adapter_burst"`
	Timeout           time.Duration `mapstructure:"adapter_timeout"`
}

type Cache struct {
	CampaignTTL time.Duration `mapstructure:"cache_campaign_ttl"`
}

type AnalyticsCleanup struct {
	CronSchedule  string `mapstructure:"analytics_cleanup_cron"`
	RetentionDays int    `mapstructure:"analytics_retention_days"`
	Enabled       bool   `mapstructure:"analytics_cleanup_enabled"`
}

type CampaignBuild struct {
	MaxConcurrentAdGroups int `mapstructure:"campaign_build_max_concurrent_ad_groups"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/advertising?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MIGRATE_ON_START", false)
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 25)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DATABASE_CONN_MAX_LIFETIME", "30m")

	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)

	viper.SetDefault("DOCUMENT_STORE_DRIVER", "postgres")

	viper.SetDefault("GOOGLE_ADS_CLIENT_ID", "")
	viper.SetDefault("GOOGLE_ADS_CLIENT_SECRET", "")
	viper.SetDefault("GOOGLE_ADS_DEVELOPER_TOKEN", "")
	viper.SetDefault("GOOGLE_ADS_MANAGER_CUSTOMER_ID", "")
	viper.SetDefault("GOOGLE_ADS_MANAGER_REFRESH_TOKEN", "")
	viper.SetDefault("GOOGLE_ADS_REDIRECT_URI", "http://localhost:8000/v1/oauth/google-ads/callback")
	viper.SetDefault("GOOGLE_ADS_API_BASE_URL", "https://googleads.googleapis.com")
	viper.SetDefault("GOOGLE_ADS_API_VERSION", "v17")
	viper.SetDefault("GOOGLE_ADS_AUTH_URL", "https://accounts.google.com/o/oauth2/v2/auth")
	viper.SetDefault("GOOGLE_ADS_TOKEN_URL", "https://oauth2.googleapis.com/token")

	viper.SetDefault("LINKEDIN_URL", "https://api.linkedin.com/rest")
	viper.SetDefault("LINKEDIN_VERSION", "202405")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v22.0")
	viper.SetDefault("META_APP_ID", "")
	viper.SetDefault("META_APP_SECRET", "")

	viper.SetDefault("TABOOLA_URL", "https://backstage.taboola.com/backstage")
	viper.SetDefault("OUTBRAIN_URL", "https://api.outbrain.com/amplify/v0.1")

	viper.SetDefault("ADAPTER_REQUESTS_PER_SECOND", 5)
	viper.SetDefault("ADAPTER_BURST", 5)
	viper.SetDefault("ADAPTER_TIMEOUT", "30s")

	viper.SetDefault("CACHE_CAMPAIGN_TTL", "15m") // Campanhas em cache valem 15 minutos

	viper.SetDefault("ANALYTICS_CLEANUP_CRON", "0 2 * * *") // Todos os dias às 2h da manhã
	viper.SetDefault("ANALYTICS_RETENTION_DAYS", 90)
	viper.SetDefault("ANALYTICS_CLEANUP_ENABLED", true)

	viper.SetDefault("CAMPAIGN_BUILD_MAX_CONCURRENT_AD_GROUPS", 1)

	viper.SetDefault("SECRET_KEY", "your_secret_key")
	viper.SetDefault("ADMIN_API_KEY", "")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	return load(viper.GetViper())
}

// load decodifica a configuração e preenche os campos derivados
func load(v *viper.Viper) (*Config, error) {
	config := &Config{}

	err := v.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if config.Meta.URL == "" {
		config.Meta.URL = fmt.Sprintf("%s/%s", config.Meta.BaseURL, config.Meta.Version)
	}

	config.GoogleAds.APIURL = fmt.Sprintf("%s/%s",
		strings.TrimRight(config.GoogleAds.APIBaseURL, "/"),
		config.GoogleAds.APIVersion,
	)
	config.GoogleAds.ManagerCustomerID = NormalizeCustomerID(config.GoogleAds.ManagerCustomerID)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// NormalizeCustomerID remove os traços do formato 123-456-7890
func NormalizeCustomerID(id string) string {
	return strings.ReplaceAll(strings.TrimSpace(id), "-", "")
}

// Validate lista os erros de configuração por plataforma. Não é fatal:
// o resultado alimenta o relatório de status do serviço.
func (c *Config) Validate() map[string][]string {
	problems := make(map[string][]string)

	if c.GoogleAds.ClientID == "" {
		problems["google-ads"] = append(problems["google-ads"], "GOOGLE_ADS_CLIENT_ID não configurado")
	}
	if c.GoogleAds.ClientSecret == "" {
		problems["google-ads"] = append(problems["google-ads"], "GOOGLE_ADS_CLIENT_SECRET não configurado")
	}
	if c.GoogleAds.DeveloperToken == "" {
		problems["google-ads"] = append(problems["google-ads"], "GOOGLE_ADS_DEVELOPER_TOKEN não configurado")
	}
	if c.GoogleAds.ManagerCustomerID == "" {
		problems["google-ads"] = append(problems["google-ads"], "GOOGLE_ADS_MANAGER_CUSTOMER_ID não configurado")
	}

	if c.Meta.AppID == "" || c.Meta.AppSecret == "" {
		problems["meta"] = append(problems["meta"], "META_APP_ID/META_APP_SECRET não configurados")
	}

	if c.LinkedIn.URL == "" {
		problems["linkedin"] = append(problems["linkedin"], "LINKEDIN_URL não configurado")
	}
	if c.Taboola.URL == "" {
		problems["taboola"] = append(problems["taboola"], "TABOOLA_URL não configurado")
	}
	if c.Outbrain.URL == "" {
		problems["outbrain"] = append(problems["outbrain"], "OUTBRAIN_URL não configurado")
	}

	if c.SecretKey == "" || c.SecretKey == "your_secret_key" {
		problems["core"] = append(problems["core"], "SECRET_KEY usando valor padrão")
	}

	return problems
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
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
