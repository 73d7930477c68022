package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	StoreBackendMemory = "memory"
	StoreBackendRedis  = "redis"

	AuthStrategyLocal         = "local"
	AuthStrategyIntrospection = "introspection"
)

type Config struct {
	Server struct {
		Addr         string        `mapstructure:"addr"`
		Mode         string        `mapstructure:"mode"`
		ReadTimeout  time.Duration `mapstructure:"read_timeout"`
		WriteTimeout time.Duration `mapstructure:"write_timeout"`
	} `mapstructure:"server"`

	Store struct {
		Backend string `mapstructure:"backend"`
		Redis   struct {
			URL            string `mapstructure:"url"`
			PoolSize       int    `mapstructure:"pool_size"`
			SeedSampleData bool   `mapstructure:"seed_sample_data"`
		} `mapstructure:"redis"`
	} `mapstructure:"store"`

	Auth struct {
		Strategy      string `mapstructure:"strategy"`
		Introspection struct {
			Endpoint     string        `mapstructure:"endpoint"`
			ClientID     string        `mapstructure:"client_id"`
			ClientSecret string        `mapstructure:"client_secret"`
			Timeout      time.Duration `mapstructure:"timeout"`
		} `mapstructure:"introspection"`
	} `mapstructure:"auth"`

	Observability struct {
		TraceEnabled       bool   `mapstructure:"trace_enabled"`
		TracingEndpointURL string `mapstructure:"tracing_endpoint_url"`
		LogLevel           string `mapstructure:"log_level"`
		Format             string `mapstructure:"log_format"`
		LogSource          bool   `mapstructure:"log_source"`
	} `mapstructure:"observability"`
}

func MustLoad() *Config {
	v := viper.New()

	logger := slog.Default()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	v.AutomaticEnv()
	v.SetEnvPrefix("LEDGER_AUTHZ")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		logger.Error("Failed to read config", slog.Any("error", err))
		os.Exit(1)
	}

	if env := os.Getenv("APP_ENV"); env != "" {
		v.SetConfigName(fmt.Sprintf("config.%s", env))
		if err := v.MergeInConfig(); err != nil {
			logger.Info("No environment-specific config (optional)", slog.String("env", env))
		}
		logger.Info("Environment-specific config loaded", slog.String("env", env))
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		logger.Error("Failed to unmarshal config", slog.Any("error", err))
		os.Exit(1)
	}

	return &cfg
}
