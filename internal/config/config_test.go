package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.App.Port)
	assert.Equal(t, "development", cfg.App.Env)
	assert.True(t, cfg.App.IsDevelopment())
	assert.Equal(t, int32(10), cfg.Postgres.MaxConns)
	assert.True(t, cfg.Postgres.RunMigrations)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("DB_MAX_CONNS", "5")
	t.Setenv("DB_RUN_MIGRATIONS", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.False(t, cfg.App.IsDevelopment())
	assert.Equal(t, int32(5), cfg.Postgres.MaxConns)
	assert.False(t, cfg.Postgres.RunMigrations)
}

func TestLoad_MalformedIntFallsBack(t *testing.T) {
	t.Setenv("DB_MAX_CONNS", "lots")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, int32(10), cfg.Postgres.MaxConns)
}

func TestLoad_NonPositivePoolSizeRejected(t *testing.T) {
	t.Setenv("DB_MAX_CONNS", "0")

	_, err := Load()
	assert.Error(t, err)
}

func TestDSN(t *testing.T) {
	p := PostgresConfig{
		Host: "db.internal", Port: "5433", User: "svc", Password: "s3cret",
		Database: "users", SSLMode: "require", ConnectTimeoutSec: 7,
	}
	assert.Equal(t,
		"host=db.internal port=5433 user=svc password=s3cret dbname=users sslmode=require connect_timeout=7",
		p.DSN())
}

func TestAllowedOrigins_ExactMatchList(t *testing.T) {
	c := CORSConfig{Origins: "https://app.example.com, https://admin.example.com ,"}
	assert.Equal(t,
		[]string{"https://app.example.com", "https://admin.example.com"},
		c.AllowedOrigins())
}

func TestAllowedOrigins_EmptyFallsBackToWildcard(t *testing.T) {
	c := CORSConfig{Origins: " , "}
	assert.Equal(t, []string{"*"}, c.AllowedOrigins())
}
