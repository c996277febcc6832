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
	App             App             `mapstructure:",squash"`
	Server          Server          `mapstructure:",squash"`
	Database        Database        `mapstructure:",squash"`
	Meta            Meta            `mapstructure:",squash"`
	OpenAI          OpenAI          `mapstructure:",squash"`
	Audit           Audit           `mapstructure:",squash"`
	ReportRetention ReportRetention `mapstructure:",squash"`
	SecretKey       string          `mapstructure:"secret_key"`
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

type Meta struct {
	BaseURL string `mapstructure:"meta_base_url"`
	URL     string `mapstructure:"meta_url"`
	Version string `mapstructure:"meta_version"`
}

type OpenAI struct {
	URL         string  `mapstructure:"openai_url"`
	APIKey      string  `mapstructure:"openai_api_key"`
	Model       string  `mapstructure:"openai_model"`
	MaxTokens   int     `mapstructure:"openai_max_tokens"`
	Temperature float64 `mapstructure:"openai_temperature"`
}

// Audit parametriza as janelas de análise e os cortes de relevância
// do diagnóstico.
type Audit struct {
	AccountWindowDays   int     `mapstructure:"audit_account_window_days"`
	EntityWindowDays    int     `mapstructure:"audit_entity_window_days"`
	TargetCTR           float64 `mapstructure:"audit_target_ctr"`
	HeroImpressionTiers []int   `mapstructure:"audit_hero_impression_tiers"`
	TopEntityCount      int     `mapstructure:"audit_top_entity_count"`
}

type ReportRetention struct {
	CronSchedule string `mapstructure:"report_retention_cron"`
	Enabled      bool   `mapstructure:"report_retention_enabled"`
	Days         int    `mapstructure:"report_retention_days"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/fbaudit")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_URL", "https://graph.facebook.com/v22.0")
	viper.SetDefault("META_VERSION", "v22.0")

	viper.SetDefault("OPENAI_URL", "https://api.openai.com/v1")
	viper.SetDefault("OPENAI_API_KEY", "your_api_key") // ONLY LOCAL
	viper.SetDefault("OPENAI_MODEL", "gpt-4o-mini")
	viper.SetDefault("OPENAI_MAX_TOKENS", 1000)
	viper.SetDefault("OPENAI_TEMPERATURE", 0.7)

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	// Defaults do diagnóstico. A janela da conta dilui os totais em 28 dias;
	// as buscas por conjuntos e anúncios usam a janela curta de 7 dias.
	viper.SetDefault("AUDIT_ACCOUNT_WINDOW_DAYS", 28)
	viper.SetDefault("AUDIT_ENTITY_WINDOW_DAYS", 7)
	viper.SetDefault("AUDIT_TARGET_CTR", 1.5)
	viper.SetDefault("AUDIT_HERO_IMPRESSION_TIERS", "500,100,10")
	viper.SetDefault("AUDIT_TOP_ENTITY_COUNT", 3)

	// Defaults da retenção de relatórios
	viper.SetDefault("REPORT_RETENTION_CRON", "0 3 * * *") // Todos os dias às 3h da manhã
	viper.SetDefault("REPORT_RETENTION_ENABLED", false)
	viper.SetDefault("REPORT_RETENTION_DAYS", 180)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

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
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Info("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
