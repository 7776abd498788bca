// internal/common/config/config.go
package config

import "fmt"

// Config is the main application configuration struct. Built once at
// startup, immutable for the process's life, injected into every component.
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Server    ServerConfig    `mapstructure:"server"`
	Knowledge KnowledgeConfig `mapstructure:"knowledge"`
	Nodes     NodesConfig     `mapstructure:"nodes"`
	Search    SearchConfig    `mapstructure:"search"`
	Database  DatabaseConfig  `mapstructure:"database"`
	History   HistoryConfig   `mapstructure:"history"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// --- Core App/Infrastructure Config ---

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	RequestTimeout int      `mapstructure:"request_timeout"` // milliseconds
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// KnowledgeConfig locates the cultural knowledge base. An empty path uses
// the embedded default dataset.
type KnowledgeConfig struct {
	Path string `mapstructure:"path"`
}

// NodesConfig configures language node dispatch. Remote maps a language to
// an HTTP node endpoint; languages without an entry use the builtin
// in-process node.
type NodesConfig struct {
	Timeout int               `mapstructure:"timeout"` // milliseconds, per node
	Remote  map[string]string `mapstructure:"remote"`
}

// SearchConfig configures the real-world data integrator.
type SearchConfig struct {
	Provider      string `mapstructure:"provider"` // "google" or "elasticsearch"
	BaseURL       string `mapstructure:"base_url"`
	APIKey        string `mapstructure:"api_key"`
	EngineID      string `mapstructure:"engine_id"`
	Index         string `mapstructure:"index"`   // elasticsearch document index
	Timeout       int    `mapstructure:"timeout"` // milliseconds, shorter than request_timeout
	MaxResults    int    `mapstructure:"max_results"`
	MaxConcurrent int    `mapstructure:"max_concurrent"`
	CacheTTL      int    `mapstructure:"cache_ttl"` // seconds
	SummarizerURL string `mapstructure:"summarizer_url"`
}

type DatabaseConfig struct {
	Postgres      PostgresConfig      `mapstructure:"postgres"`
	Elasticsearch ElasticsearchConfig `mapstructure:"elasticsearch"`
	Redis         RedisConfig         `mapstructure:"redis"`
}

type PostgresConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	Database       string `mapstructure:"database"`
	User           string `mapstructure:"user"`
	Password       string `mapstructure:"password"`
	MaxConnections int    `mapstructure:"max_connections"`
	MaxIdle        int    `mapstructure:"max_idle"`
	SSLMode        string `mapstructure:"sslmode"`
}

// GetDSN returns the PostgreSQL connection string
func (p PostgresConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type ElasticsearchConfig struct {
	Addresses  []string `mapstructure:"addresses"`
	Username   string   `mapstructure:"username"`
	Password   string   `mapstructure:"password"`
	SSLEnabled bool     `mapstructure:"ssl_enabled"`
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// HistoryConfig enables per-query stats persistence; when disabled the
// federation status aggregates live in memory only.
type HistoryConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}
