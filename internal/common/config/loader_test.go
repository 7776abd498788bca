package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeTempConfig(t, "app:\n  name: test-gateway\n"))
	require.NoError(t, err)

	assert.Equal(t, "test-gateway", cfg.App.Name)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "google", cfg.Search.Provider)
	assert.Equal(t, 3, cfg.Search.MaxResults)
	assert.Equal(t, 3600, cfg.Search.CacheTTL)
	assert.Equal(t, 5000, cfg.Nodes.Timeout)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.History.Enabled)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("GLOBALMIND_SERVER_PORT", "9090")
	t.Setenv("GLOBALMIND_SEARCH_API_KEY", "test-key")

	cfg, err := Load(writeTempConfig(t, "app:\n  name: test-gateway\n"))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "test-key", cfg.Search.APIKey)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "bad search provider",
			yaml:    "search:\n  provider: bing\n",
			wantErr: "search.provider",
		},
		{
			name:    "search timeout exceeds request timeout",
			yaml:    "server:\n  request_timeout: 1000\nsearch:\n  timeout: 2000\n",
			wantErr: "search.timeout",
		},
		{
			name:    "node timeout exceeds request timeout",
			yaml:    "server:\n  request_timeout: 1000\nnodes:\n  timeout: 2000\nsearch:\n  timeout: 500\n",
			wantErr: "nodes.timeout",
		},
		{
			name:    "bad log level",
			yaml:    "logging:\n  level: verbose\n",
			wantErr: "logging.level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeTempConfig(t, tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestPostgresDSN(t *testing.T) {
	p := PostgresConfig{
		Host: "db.local", Port: 5433, User: "gm", Password: "secret",
		Database: "globalmind", SSLMode: "disable",
	}
	assert.Equal(t,
		"host=db.local port=5433 user=gm password=secret dbname=globalmind sslmode=disable",
		p.GetDSN())
}

func writeTempConfig(t *testing.T, yaml string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))
	return path
}
