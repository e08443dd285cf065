package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/rogerio-castellano/webstack-demo/internal/http/handlers"
)

// NewRouter wires every route to its handler and stacks the cross-cutting
// middleware: real-ip resolution, request logging, the JSON panic
// recoverer, and permissive CORS. Dispatch is purely method + path;
// anything else falls through to the route-listing 404.
func NewRouter(h *handlers.Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(requestLogger)
	r.Use(recoverPanic(h.Production()))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "Authorization"},
		MaxAge:         300,
	}))

	r.Get("/health", h.Health)
	r.Get("/db-test", h.DBTest)

	r.Get("/users", h.ListUsers)
	r.Post("/users", h.CreateUser)
	r.Get("/users/{id}", h.GetUser)
	r.Put("/users/{id}", h.UpdateUser)
	r.Delete("/users/{id}", h.DeleteUser)

	r.Get("/products", h.ListProducts)

	r.Get("/stats", h.Stats)
	r.Get("/system-info", h.SystemInfo)
	r.Get("/info", h.SystemInfo)
	r.Get("/data", h.SampleData)
	r.Post("/echo", h.Echo)

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.NotFound)

	return r
}
