package repo

import (
	"context"
	"database/sql"
	"time"
)

type PostgresSystemRepository struct {
	db *sql.DB
}

func NewPostgresSystemRepository(db *sql.DB) *PostgresSystemRepository {
	return &PostgresSystemRepository{db: db}
}

// Ping checks store reachability and reports the round-trip latency.
func (r *PostgresSystemRepository) Ping() (time.Duration, error) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	start := time.Now()
	err := r.db.PingContext(ctx)
	return time.Since(start), err
}

func (r *PostgresSystemRepository) Info() (DBInfo, error) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	var info DBInfo
	err := r.db.QueryRowContext(ctx, `SELECT NOW(), version()`).Scan(&info.Now, &info.Version)
	return info, err
}

// Counts fetches both table counts in one statement so the handler stays a
// single logical store operation.
func (r *PostgresSystemRepository) Counts() (Counts, error) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	var c Counts
	err := r.db.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM products)
	`).Scan(&c.Users, &c.Products)
	return c, err
}
