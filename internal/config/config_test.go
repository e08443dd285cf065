package config_test

import (
	"testing"
	"time"

	"github.com/rogerio-castellano/webstack-demo/internal/config"
)

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("APP_ENV", "production")
	t.Setenv("DB_HOST", "store.internal")
	t.Setenv("DB_POOL_MAX_CONNS", "25")
	t.Setenv("DB_CONNECT_ATTEMPTS", "8")
	t.Setenv("DB_CONNECT_DELAY", "750ms")

	cfg := config.Load()

	if cfg.Port != "9090" {
		t.Errorf("expected port 9090, got %q", cfg.Port)
	}
	if cfg.Environment != "production" {
		t.Errorf("expected environment production, got %q", cfg.Environment)
	}
	if cfg.DBHost != "store.internal" {
		t.Errorf("expected db host store.internal, got %q", cfg.DBHost)
	}
	if cfg.PoolMaxConns != 25 {
		t.Errorf("expected pool max conns 25, got %d", cfg.PoolMaxConns)
	}
	if cfg.ConnectAttempts != 8 {
		t.Errorf("expected 8 connect attempts, got %d", cfg.ConnectAttempts)
	}
	if cfg.ConnectDelay != 750*time.Millisecond {
		t.Errorf("expected 750ms connect delay, got %v", cfg.ConnectDelay)
	}
}

func TestLoad_RetryDefaults(t *testing.T) {
	cfg := config.Load()

	if cfg.ConnectAttempts != 5 {
		t.Errorf("expected default of 5 connect attempts, got %d", cfg.ConnectAttempts)
	}
	if cfg.ConnectDelay != 2*time.Second {
		t.Errorf("expected default 2s connect delay, got %v", cfg.ConnectDelay)
	}
	if cfg.PoolIdleTimeout != 30*time.Second {
		t.Errorf("expected default 30s idle timeout, got %v", cfg.PoolIdleTimeout)
	}
}

func TestDSN(t *testing.T) {
	cfg := &config.Config{
		DBUser:     "postgres",
		DBPassword: "secret",
		DBHost:     "db",
		DBPort:     "5432",
		DBName:     "demo",
		DBSSLMode:  "disable",
	}

	want := "postgres://postgres:secret@db:5432/demo?sslmode=disable"
	if got := cfg.DSN(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestIsProduction(t *testing.T) {
	if (&config.Config{Environment: "production"}).IsProduction() != true {
		t.Error("expected production mode")
	}
	if (&config.Config{Environment: "development"}).IsProduction() != false {
		t.Error("expected non-production mode")
	}
}
