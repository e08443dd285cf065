package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"runtime"
	"time"
)

// knownRoutes is the API surface advertised by /system-info and by the
// 404 fallback. The router also mounts the swagger UI, which is left out
// of the catalogue on purpose.
var knownRoutes = []string{
	"GET /health",
	"GET /db-test",
	"GET /users",
	"GET /users/{id}",
	"POST /users",
	"PUT /users/{id}",
	"DELETE /users/{id}",
	"GET /products",
	"GET /stats",
	"GET /system-info",
	"GET /info",
	"GET /data",
	"POST /echo",
}

// Health godoc
// @Summary Service and store health
// @Description Pings the store and reports connectivity plus round-trip latency. The service answers even when the store is down; degraded mode is reported with a 500.
// @Tags system
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 500 {object} HealthResponse
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	uptime := int64(h.uptime().Seconds())

	latency, err := h.system.Ping()
	if err != nil {
		resp := HealthResponse{
			Status:        "unhealthy",
			Database:      "disconnected",
			UptimeSeconds: uptime,
			Error:         "database unreachable",
		}
		if !h.cfg.IsProduction() {
			resp.Detail = err.Error()
		}
		writeJSON(w, http.StatusInternalServerError, resp)
		return
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Success:       true,
		Status:        "healthy",
		Database:      "connected",
		LatencyMs:     latency.Milliseconds(),
		UptimeSeconds: uptime,
	})
}

// DBTest godoc
// @Summary Round-trip query against the store
// @Description Asks the store for its clock and version, proving a full query path rather than a bare ping.
// @Tags system
// @Produce json
// @Success 200 {object} DBTestEnvelope
// @Failure 500 {object} ErrorResponse
// @Router /db-test [get]
func (h *Handler) DBTest(w http.ResponseWriter, r *http.Request) {
	info, err := h.system.Info()
	if err != nil {
		h.respondServerError(w, "database test failed", err)
		return
	}
	writeJSON(w, http.StatusOK, DBTestEnvelope{Success: true, Data: info})
}

// Stats godoc
// @Summary Row counts and server metadata
// @Tags system
// @Produce json
// @Success 200 {object} StatsEnvelope
// @Failure 500 {object} ErrorResponse
// @Router /stats [get]
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	counts, err := h.system.Counts()
	if err != nil {
		h.respondServerError(w, "could not fetch stats", err)
		return
	}

	hostname, _ := os.Hostname()
	writeJSON(w, http.StatusOK, StatsEnvelope{
		Success: true,
		Data: StatsData{
			Users:    counts.Users,
			Products: counts.Products,
			Server: ServerMeta{
				Hostname:      hostname,
				GoVersion:     runtime.Version(),
				Environment:   h.cfg.Environment,
				InstanceID:    h.instanceID,
				UptimeSeconds: int64(h.uptime().Seconds()),
			},
		},
	})
}

// SystemInfo godoc
// @Summary Static capability description
// @Description Served on both /system-info and /info; never touches the store.
// @Tags system
// @Produce json
// @Success 200 {object} SystemInfoEnvelope
// @Router /system-info [get]
func (h *Handler) SystemInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, SystemInfoEnvelope{
		Success: true,
		Data: SystemInfo{
			Service:     "webstack-demo-api",
			Version:     "1.0.0",
			Description: "REST API of the three-container demo stack: users CRUD, seeded product catalog, and store diagnostics",
			Runtime:     runtime.Version(),
			Endpoints:   knownRoutes,
		},
	})
}

var sampleData = SampleData{
	Message: "Static sample dataset, served without touching the store",
	Source:  "static",
	Items: []SampleItem{
		{ID: 1, Label: "alpha", Value: 42},
		{ID: 2, Label: "beta", Value: 7},
		{ID: 3, Label: "gamma", Value: 1024},
	},
}

// SampleData godoc
// @Summary Fixed sample payload
// @Tags system
// @Produce json
// @Success 200 {object} SampleDataEnvelope
// @Router /data [get]
func (h *Handler) SampleData(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, SampleDataEnvelope{Success: true, Data: sampleData})
}

// Echo godoc
// @Summary Echo the request body back
// @Description Accepts a single JSON value up to one megabyte and returns it untouched in the received field. An empty body echoes null.
// @Tags system
// @Accept json
// @Produce json
// @Success 200 {object} EchoResponse
// @Failure 400 {object} ErrorResponse "Malformed JSON"
// @Router /echo [post]
func (h *Handler) Echo(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var payload any
	dec := json.NewDecoder(r.Body)
	err := dec.Decode(&payload)
	switch {
	case err == io.EOF:
		// empty body echoes null
	case err != nil:
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	default:
		if err := dec.Decode(&struct{}{}); err != io.EOF {
			respondError(w, http.StatusBadRequest, "body must have only a single json value")
			return
		}
	}

	writeJSON(w, http.StatusOK, EchoResponse{
		Success:   true,
		Received:  payload,
		Method:    r.Method,
		Timestamp: time.Now().UTC(),
	})
}

// NotFound answers every unmatched method+path pair with the route table.
// It is registered for both chi's NotFound and MethodNotAllowed slots so
// dispatch misses behave uniformly.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, RouteListResponse{
		Success: false,
		Error:   fmt.Sprintf("no route for %s %s", r.Method, r.URL.Path),
		Routes:  knownRoutes,
	})
}
