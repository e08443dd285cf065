package db_test

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rogerio-castellano/webstack-demo/internal/config"
	"github.com/rogerio-castellano/webstack-demo/internal/db"
)

// flakyDriver fails every dial until the configured number of failures
// has happened, then accepts. Each WaitReady ping costs exactly one
// dial, so the counter observes the retry loop directly.
type flakyDriver struct {
	mu       sync.Mutex
	failures int
	attempts int
}

func (d *flakyDriver) Open(name string) (driver.Conn, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.attempts++
	if d.attempts <= d.failures {
		return nil, errors.New("connection refused")
	}
	return stubConn{}, nil
}

func (d *flakyDriver) dials() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.attempts
}

type stubConn struct{}

func (stubConn) Prepare(query string) (driver.Stmt, error) { return nil, errors.New("not supported") }
func (stubConn) Close() error                              { return nil }
func (stubConn) Begin() (driver.Tx, error)                 { return nil, errors.New("not supported") }

var (
	upDriver       = &flakyDriver{}
	recoversDriver = &flakyDriver{failures: 2}
	downDriver     = &flakyDriver{failures: 1 << 30}
	clampDriver    = &flakyDriver{}
)

func init() {
	sql.Register("stub-up", upDriver)
	sql.Register("stub-recovers", recoversDriver)
	sql.Register("stub-down", downDriver)
	sql.Register("stub-clamp", clampDriver)
}

func TestWaitReady_ImmediateSuccess(t *testing.T) {
	pool, err := sql.Open("stub-up", "")
	if err != nil {
		t.Fatalf("error opening pool: %v", err)
	}
	defer pool.Close()

	if err := db.WaitReady(pool, 5, time.Millisecond); err != nil {
		t.Fatalf("expected ready store, got %v", err)
	}
	if got := upDriver.dials(); got != 1 {
		t.Errorf("expected 1 dial, got %d", got)
	}
}

func TestWaitReady_RecoversWithinBound(t *testing.T) {
	pool, err := sql.Open("stub-recovers", "")
	if err != nil {
		t.Fatalf("error opening pool: %v", err)
	}
	defer pool.Close()

	if err := db.WaitReady(pool, 5, time.Millisecond); err != nil {
		t.Fatalf("expected recovery within 5 attempts, got %v", err)
	}
	if got := recoversDriver.dials(); got != 3 {
		t.Errorf("expected 3 dials (2 refused + 1 accepted), got %d", got)
	}
}

func TestWaitReady_ExhaustsAttempts(t *testing.T) {
	pool, err := sql.Open("stub-down", "")
	if err != nil {
		t.Fatalf("error opening pool: %v", err)
	}
	defer pool.Close()

	err = db.WaitReady(pool, 3, time.Millisecond)
	if err == nil {
		t.Fatal("expected an error after exhausting attempts")
	}
	if got := downDriver.dials(); got != 3 {
		t.Errorf("expected exactly 3 dials, got %d", got)
	}
	if !strings.Contains(err.Error(), "after 3 attempts") {
		t.Errorf("expected the attempt count in the error, got %q", err)
	}
	if !strings.Contains(err.Error(), "connection refused") {
		t.Errorf("expected the last ping error to stay wrapped, got %q", err)
	}
}

func TestWaitReady_ClampsAttemptsToOne(t *testing.T) {
	pool, err := sql.Open("stub-clamp", "")
	if err != nil {
		t.Fatalf("error opening pool: %v", err)
	}
	defer pool.Close()

	// Zero attempts still pings once.
	if err := db.WaitReady(pool, 0, time.Millisecond); err != nil {
		t.Fatalf("expected the clamped single attempt to succeed, got %v", err)
	}
	if got := clampDriver.dials(); got != 1 {
		t.Errorf("expected 1 dial, got %d", got)
	}
}

func TestOpen_AppliesPoolBounds(t *testing.T) {
	cfg := &config.Config{
		DBHost:     "localhost",
		DBPort:     "5432",
		DBUser:     "postgres",
		DBPassword: "postgres",
		DBName:     "demo",
		DBSSLMode:  "disable",

		PoolMaxConns:    7,
		PoolMaxIdle:     3,
		PoolIdleTimeout: 30 * time.Second,
	}

	// The pool dials lazily, so Open succeeds without a running store.
	pool, err := db.Open(cfg)
	if err != nil {
		t.Fatalf("error opening pool: %v", err)
	}
	defer pool.Close()

	if got := pool.Stats().MaxOpenConnections; got != 7 {
		t.Errorf("expected max open connections 7, got %d", got)
	}
}
