package http

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/rogerio-castellano/webstack-demo/internal/http/handlers"
)

// requestLogger records method, path and caller before dispatch; the log
// package stamps the timestamp.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("%s %s from %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
	})
}

// recoverPanic is the terminal error handler: a panic anywhere below it
// becomes a structured 500 envelope instead of a dead connection. The
// panic value reaches the response only outside production.
func recoverPanic(production bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.Printf("panic on %s %s: %v", r.Method, r.URL.Path, rec)

					body := handlers.ErrorResponse{Success: false, Error: "internal server error"}
					if !production {
						body.Detail = fmt.Sprint(rec)
					}
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					if err := json.NewEncoder(w).Encode(body); err != nil {
						log.Printf("failed to encode panic response: %v", err)
					}
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
