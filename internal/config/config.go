package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// DefaultDatasetURL é o CSV de vendas da Nike U.S. usado quando DATASET_URL não é informado
const DefaultDatasetURL = "https://raw.githubusercontent.com/ham407/Analisis-Penjualan-Produk-Nike-U.S.-Tahun-2020---2021/main/Nike%20Dataset.csv"

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Dataset     Dataset     `mapstructure:",squash"`
	Cache       Cache       `mapstructure:",squash"`
	CacheWarmup CacheWarmup `mapstructure:",squash"`
	Cors        Cors        `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Dataset struct {
	URL     string        `mapstructure:"dataset_url"`
	Timeout time.Duration `mapstructure:"dataset_timeout"`
}

type Cache struct {
	TTL time.Duration `mapstructure:"cache_ttl"`
}

type CacheWarmup struct {
	CronSchedule string `mapstructure:"cache_warmup_cron"`
	Enabled      bool   `mapstructure:"cache_warmup_enabled"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "0.0.0.0")
	viper.SetDefault("PORT", 8001)

	viper.SetDefault("DATASET_URL", DefaultDatasetURL)
	viper.SetDefault("DATASET_TIMEOUT", "30s")

	viper.SetDefault("CACHE_TTL", "300s") // janela de validade do cache

	viper.SetDefault("CACHE_WARMUP_CRON", "*/5 * * * *") // A cada 5 minutos
	viper.SetDefault("CACHE_WARMUP_ENABLED", false)

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	viper.SetDefault("LOG_LEVEL", "info")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis de ambiente (viper não conseguiu ler .env): ", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if config.Dataset.Timeout <= 0 {
		config.Dataset.Timeout = 30 * time.Second
	}
	if config.Cache.TTL <= 0 {
		config.Cache.TTL = 300 * time.Second
	}

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
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de: ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
