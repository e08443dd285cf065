package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	_ "github.com/rogerio-castellano/webstack-demo/docs"
	"github.com/rogerio-castellano/webstack-demo/internal/config"
	"github.com/rogerio-castellano/webstack-demo/internal/db"
	api "github.com/rogerio-castellano/webstack-demo/internal/http"
	"github.com/rogerio-castellano/webstack-demo/internal/http/handlers"
	"github.com/rogerio-castellano/webstack-demo/internal/repo"
)

// @title Webstack Demo API
// @version 1.0
// @description REST API of the three-container demo stack: users CRUD, seeded product catalog, and store diagnostics.
// @host localhost:8080
// @BasePath /
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	database, err := db.Open(cfg)
	if err != nil {
		log.Fatal("❌ Could not open database pool:", err)
	}
	defer database.Close()

	// A store that is still starting must not kill the API: log it, serve
	// degraded, and let the lazy pool reconnect when the store comes up.
	if err := db.WaitReady(database, cfg.ConnectAttempts, cfg.ConnectDelay); err != nil {
		log.Printf("⚠️ Starting degraded, store unreachable: %v", err)
	} else {
		log.Println("✅ Connected to database")
	}

	h := handlers.New(
		repo.NewPostgresUserRepository(database),
		repo.NewPostgresProductRepository(database),
		repo.NewPostgresSystemRepository(database),
		cfg,
	)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      api.NewRouter(h),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		log.Printf("✅ Server running on :%s (%s mode)", cfg.Port, cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("forced shutdown: %v", err)
	}
}
