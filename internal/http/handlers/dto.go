package handlers

import (
	"time"

	"github.com/rogerio-castellano/webstack-demo/internal/models"
	"github.com/rogerio-castellano/webstack-demo/internal/repo"
)

// Request bodies. Every route that reads a body has its own explicit
// schema; nothing loosely typed crosses the boundary.

type UserCreateRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserUpdateRequest is a partial update: nil means "field not supplied".
type UserUpdateRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

// Response envelopes. Every payload carries a success indicator; failures
// use ErrorResponse.

type UserEnvelope struct {
	Success bool        `json:"success"`
	Data    models.User `json:"data"`
}

type UserListEnvelope struct {
	Success bool          `json:"success"`
	Count   int           `json:"count"`
	Data    []models.User `json:"data"`
}

type ProductListEnvelope struct {
	Success bool             `json:"success"`
	Count   int              `json:"count"`
	Data    []models.Product `json:"data"`
}

type ErrorResponse struct {
	Success bool              `json:"success"`
	Error   string            `json:"error"`
	Detail  string            `json:"detail,omitempty"`
	Fields  []ValidationError `json:"fields,omitempty"`
}

type HealthResponse struct {
	Success       bool   `json:"success"`
	Status        string `json:"status"`
	Database      string `json:"database"`
	LatencyMs     int64  `json:"latency_ms"`
	UptimeSeconds int64  `json:"uptime_seconds"`
	Error         string `json:"error,omitempty"`
	Detail        string `json:"detail,omitempty"`
}

type DBTestEnvelope struct {
	Success bool        `json:"success"`
	Data    repo.DBInfo `json:"data"`
}

type StatsEnvelope struct {
	Success bool      `json:"success"`
	Data    StatsData `json:"data"`
}

type StatsData struct {
	Users    int        `json:"users"`
	Products int        `json:"products"`
	Server   ServerMeta `json:"server"`
}

type ServerMeta struct {
	Hostname      string `json:"hostname"`
	GoVersion     string `json:"go_version"`
	Environment   string `json:"environment"`
	InstanceID    string `json:"instance_id"`
	UptimeSeconds int64  `json:"uptime_seconds"`
}

type SystemInfoEnvelope struct {
	Success bool       `json:"success"`
	Data    SystemInfo `json:"data"`
}

type SystemInfo struct {
	Service     string   `json:"service"`
	Version     string   `json:"version"`
	Description string   `json:"description"`
	Runtime     string   `json:"runtime"`
	Endpoints   []string `json:"endpoints"`
}

type SampleDataEnvelope struct {
	Success bool       `json:"success"`
	Data    SampleData `json:"data"`
}

type SampleData struct {
	Message string       `json:"message"`
	Source  string       `json:"source"`
	Items   []SampleItem `json:"items"`
}

type SampleItem struct {
	ID    int    `json:"id"`
	Label string `json:"label"`
	Value int    `json:"value"`
}

type EchoResponse struct {
	Success   bool      `json:"success"`
	Received  any       `json:"received"`
	Method    string    `json:"method"`
	Timestamp time.Time `json:"timestamp"`
}

// RouteListResponse is the 404 fallback payload: unmatched requests get
// the full route table back.
type RouteListResponse struct {
	Success bool     `json:"success"`
	Error   string   `json:"error"`
	Routes  []string `json:"routes"`
}
