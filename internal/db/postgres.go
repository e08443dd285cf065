package db

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/rogerio-castellano/webstack-demo/internal/config"
)

const pingTimeout = 5 * time.Second

// Open builds the bounded connection pool for the store. The pool dials
// lazily, so Open succeeds even while the store container is still
// starting; use WaitReady to block on actual connectivity.
func Open(cfg *config.Config) (*sql.DB, error) {
	pool, err := sql.Open("pgx", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	pool.SetMaxOpenConns(cfg.PoolMaxConns)
	pool.SetMaxIdleConns(cfg.PoolMaxIdle)
	pool.SetConnMaxIdleTime(cfg.PoolIdleTimeout)

	return pool, nil
}

// WaitReady pings the store until it answers, up to attempts tries with a
// fixed delay between them. Attempts below one count as one. It returns
// the last ping error when every attempt fails; the pool stays usable and
// recovers once the store is up.
func WaitReady(pool *sql.DB, attempts int, delay time.Duration) error {
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for i := 1; i <= attempts; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
		err = pool.PingContext(ctx)
		cancel()
		if err == nil {
			return nil
		}
		log.Printf("database not ready (attempt %d/%d): %v", i, attempts, err)
		if i < attempts {
			time.Sleep(delay)
		}
	}
	return fmt.Errorf("failed to connect to database after %d attempts: %w", attempts, err)
}
