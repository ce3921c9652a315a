package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, DriverMongo, cfg.Database.Driver)
	assert.Equal(t, "INR", cfg.Currency.BaseCurrency)
	assert.Equal(t, 2, cfg.Currency.MaxAttempts)
	assert.True(t, cfg.Currency.Required)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowOrigins)
}

func TestLoadConfig_FileAndEnvOverrides(t *testing.T) {
	path := writeConfig(t, `
server:
  port: "9000"
database:
  driver: postgres
  host: db.internal
currency:
  currencies: [USD, EUR]
`)
	t.Setenv("PORT", "7000")
	t.Setenv("CURRENCY_API_KEY", "secret")
	t.Setenv("CURRENCY_LIST", "GBP, JPY ,")
	t.Setenv("CURRENCY_REQUIRED", "false")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "7000", cfg.Server.Port)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "secret", cfg.Currency.APIKey)
	assert.Equal(t, []string{"GBP", "JPY"}, cfg.Currency.Currencies)
	assert.False(t, cfg.Currency.Required)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown driver", "database:\n  driver: cassandra\n"},
		{"bad duration", "currency:\n  timeout: soon\n"},
		{"bad base currency", "currency:\n  base_currency: RUPEE\n"},
		{"redis without addr", "redis:\n  enabled: true\n  addr: \"\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestGetPostgresConnectionString(t *testing.T) {
	cfg := &Config{}
	cfg.Database.User = "u"
	cfg.Database.Password = "p"
	cfg.Database.Host = "h"
	cfg.Database.Port = "5432"
	cfg.Database.DBName = "colleges"

	assert.Equal(t, "postgres://u:p@h:5432/colleges?sslmode=disable", cfg.GetPostgresConnectionString())
}
