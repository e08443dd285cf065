package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds every process-wide setting, loaded once at startup.
// Values come from environment variables (the orchestration descriptor
// wires them in); defaults match the local docker-compose setup.
type Config struct {
	Port        string
	Environment string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	PoolMaxConns    int
	PoolMaxIdle     int
	PoolIdleTimeout time.Duration

	ConnectAttempts int
	ConnectDelay    time.Duration
}

func Load() *Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("APP_ENV", "development")

	v.SetDefault("DB_HOST", "db")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "demo")
	v.SetDefault("DB_SSLMODE", "disable")

	v.SetDefault("DB_POOL_MAX_CONNS", 10)
	v.SetDefault("DB_POOL_MAX_IDLE", 5)
	v.SetDefault("DB_POOL_IDLE_TIMEOUT", "30s")

	v.SetDefault("DB_CONNECT_ATTEMPTS", 5)
	v.SetDefault("DB_CONNECT_DELAY", "2s")

	return &Config{
		Port:        v.GetString("PORT"),
		Environment: v.GetString("APP_ENV"),

		DBHost:     v.GetString("DB_HOST"),
		DBPort:     v.GetString("DB_PORT"),
		DBUser:     v.GetString("DB_USER"),
		DBPassword: v.GetString("DB_PASSWORD"),
		DBName:     v.GetString("DB_NAME"),
		DBSSLMode:  v.GetString("DB_SSLMODE"),

		PoolMaxConns:    v.GetInt("DB_POOL_MAX_CONNS"),
		PoolMaxIdle:     v.GetInt("DB_POOL_MAX_IDLE"),
		PoolIdleTimeout: v.GetDuration("DB_POOL_IDLE_TIMEOUT"),

		ConnectAttempts: v.GetInt("DB_CONNECT_ATTEMPTS"),
		ConnectDelay:    v.GetDuration("DB_CONNECT_DELAY"),
	}
}

// DSN assembles the connection string the store container advertises.
func (c *Config) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
}

// IsProduction reports whether diagnostic detail must be withheld from
// error responses.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
