package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.App.Env)
	assert.Equal(t, 8, cfg.Pricing.BatchConcurrency)
	assert.Equal(t, 200, cfg.Pricing.MaxBatchLines)
	assert.True(t, cfg.Pricing.ReadSnapshot)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, "precios-api", cfg.JWT.Issuer)
}

func TestLoad_ArchivosEnvYConfigEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("APP_NAME=desde-dotenv\nPRICING_MAX_BATCH_LINES=10\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.env"), []byte("PRICING_MAX_BATCH_LINES=42\nJWT_ISSUER=identidad\n"), 0o600))
	t.Chdir(dir)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "desde-dotenv", cfg.App.Name, ".env se lee")
	assert.Equal(t, 42, cfg.Pricing.MaxBatchLines, "config.env pisa a .env")
	assert.Equal(t, "identidad", cfg.JWT.Issuer)
}

func TestLoad_EnvPisaArchivo(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.env"), []byte("PRICING_BATCH_CONCURRENCY=2\n"), 0o600))
	t.Chdir(dir)
	t.Setenv("PRICING_BATCH_CONCURRENCY", "5")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Pricing.BatchConcurrency)
}

func TestLoad_PricingOverrides(t *testing.T) {
	t.Setenv("PRICING_BATCH_CONCURRENCY", "3")
	t.Setenv("PRICING_MAX_BATCH_LINES", "50")
	t.Setenv("PRICING_READ_SNAPSHOT", "false")
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Pricing.BatchConcurrency)
	assert.Equal(t, 50, cfg.Pricing.MaxBatchLines)
	assert.False(t, cfg.Pricing.ReadSnapshot)
}

func TestLoad_RejectsZeroConcurrency(t *testing.T) {
	t.Setenv("PRICING_BATCH_CONCURRENCY", "0")
	_, err := Load()
	assert.Error(t, err)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:w", DBName: "precios", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%3Aw@db:5432/precios?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://x@y/z"
	assert.Equal(t, "postgres://x@y/z", c.ConnectionString())
}
