// internal/common/config/loader.go
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load reads configuration from file and environment variables.
// Precedence: environment variables > config file > defaults.
func Load(configPath string) (*Config, error) {
	// .env is optional; real deployments inject env directly
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
	}

	v := viper.New()

	applyDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		// missing config file is fine, env + defaults still apply
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("GLOBALMIND")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func applyDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "globalmind-gateway")
	v.SetDefault("app.version", "1.0.0")
	v.SetDefault("app.environment", "development")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.request_timeout", 15000)
	v.SetDefault("server.allowed_origins", []string{"*"})

	v.SetDefault("knowledge.path", "")

	v.SetDefault("nodes.timeout", 5000)

	v.SetDefault("search.provider", "google")
	v.SetDefault("search.base_url", "https://www.googleapis.com/customsearch/v1")
	v.SetDefault("search.index", "globalmind-documents")
	v.SetDefault("search.timeout", 8000)
	v.SetDefault("search.max_results", 3)
	v.SetDefault("search.max_concurrent", 8)
	v.SetDefault("search.cache_ttl", 3600)

	v.SetDefault("database.postgres.host", "localhost")
	v.SetDefault("database.postgres.port", 5432)
	v.SetDefault("database.postgres.database", "globalmind")
	v.SetDefault("database.postgres.user", "postgres")
	v.SetDefault("database.postgres.max_connections", 10)
	v.SetDefault("database.postgres.max_idle", 5)
	v.SetDefault("database.postgres.sslmode", "disable")

	v.SetDefault("database.elasticsearch.addresses", []string{"http://localhost:9200"})

	v.SetDefault("database.redis.address", "localhost:6379")
	v.SetDefault("database.redis.db", 0)

	v.SetDefault("history.enabled", false)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.output", "stdout")
}

func validate(cfg *Config) error {
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", cfg.Server.Port)
	}
	if cfg.Server.RequestTimeout <= 0 {
		return fmt.Errorf("server.request_timeout must be positive")
	}

	switch cfg.Search.Provider {
	case "google", "elasticsearch", "":
	default:
		return fmt.Errorf("search.provider must be \"google\" or \"elasticsearch\", got %q", cfg.Search.Provider)
	}
	if cfg.Search.Timeout >= cfg.Server.RequestTimeout {
		return fmt.Errorf("search.timeout (%dms) must be shorter than server.request_timeout (%dms)",
			cfg.Search.Timeout, cfg.Server.RequestTimeout)
	}
	if cfg.Search.MaxResults <= 0 {
		return fmt.Errorf("search.max_results must be positive")
	}
	if cfg.Search.MaxConcurrent <= 0 {
		return fmt.Errorf("search.max_concurrent must be positive")
	}

	if cfg.Nodes.Timeout <= 0 {
		return fmt.Errorf("nodes.timeout must be positive")
	}
	if cfg.Nodes.Timeout >= cfg.Server.RequestTimeout {
		return fmt.Errorf("nodes.timeout (%dms) must be shorter than server.request_timeout (%dms)",
			cfg.Nodes.Timeout, cfg.Server.RequestTimeout)
	}

	switch cfg.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error")
	}

	return nil
}
