package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func load(t *testing.T, env map[string]string) (*Config, error) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	for k, v := range env {
		t.Setenv(k, v)
	}
	return LoadConfig()
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := load(t, nil)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, int32(10), cfg.DBMaxConns)
	assert.False(t, cfg.IsProduction)
	assert.True(t, cfg.RunMigrations)
	assert.Equal(t, "file://migrations", cfg.MigrationsPath)
	assert.Equal(t, 5*time.Second, cfg.StoreTimeout)
	assert.Equal(t, 30*time.Minute, cfg.NoShowGracePeriod)
	assert.Equal(t, 200, cfg.NoShowSweepBatch)
	assert.Equal(t, time.UTC, cfg.ReportLocation)
	assert.Equal(t, "100-M", cfg.RateLimit)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSAllowedOrigins)
	assert.False(t, cfg.UsesPostgres())
}

func TestLoadConfig_FromEnv(t *testing.T) {
	cfg, err := load(t, map[string]string{
		"PGSQL_URL":            "postgres://u:p@db:5432/easyreserv",
		"PORT":                 "9090",
		"STORE_TIMEOUT":        "750ms",
		"NO_SHOW_GRACE_PERIOD": "0s",
		"NO_SHOW_SWEEP_BATCH":  "-4",
		"REPORT_TIMEZONE":      "Europe/Chisinau",
		"CORS_ALLOWED_ORIGINS": " https://a.example , ,https://b.example",
	})
	require.NoError(t, err)

	assert.True(t, cfg.UsesPostgres())
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 750*time.Millisecond, cfg.StoreTimeout)
	assert.Zero(t, cfg.NoShowGracePeriod)
	assert.Equal(t, 200, cfg.NoShowSweepBatch, "non-positive batch falls back to the default")
	assert.Equal(t, "Europe/Chisinau", cfg.ReportLocation.String())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
}

func TestLoadConfig_Rejects(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"zero store timeout", map[string]string{"STORE_TIMEOUT": "0s"}},
		{"unparsable store timeout", map[string]string{"STORE_TIMEOUT": "soon"}},
		{"negative grace period", map[string]string{"NO_SHOW_GRACE_PERIOD": "-1m"}},
		{"unknown timezone", map[string]string{"REPORT_TIMEZONE": "Mars/Olympus"}},
		{"default secret in production", map[string]string{"IS_PRODUCTION": "true"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := load(t, tt.env)
			assert.Error(t, err)
		})
	}
}
