package handlers

import (
	"time"

	"github.com/google/uuid"

	"github.com/rogerio-castellano/webstack-demo/internal/config"
	"github.com/rogerio-castellano/webstack-demo/internal/repo"
)

// Handler owns every process-wide dependency the routes share: the
// repositories, the loaded config, and the server identity assembled at
// startup. One instance is built in main and passed to the router; there
// is no package-level state.
type Handler struct {
	users    repo.UserRepository
	products repo.ProductRepository
	system   repo.SystemRepository

	cfg        *config.Config
	startedAt  time.Time
	instanceID string
}

func New(users repo.UserRepository, products repo.ProductRepository, system repo.SystemRepository, cfg *config.Config) *Handler {
	return &Handler{
		users:      users,
		products:   products,
		system:     system,
		cfg:        cfg,
		startedAt:  time.Now(),
		instanceID: uuid.NewString(),
	}
}

// Production reports whether error responses must omit diagnostic detail.
func (h *Handler) Production() bool {
	return h.cfg.IsProduction()
}

func (h *Handler) uptime() time.Duration {
	return time.Since(h.startedAt)
}
