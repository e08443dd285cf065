package repo

import "time"

// DBInfo is the store's report of its own clock and build, fetched by the
// /db-test endpoint.
type DBInfo struct {
	Now     time.Time `json:"time"`
	Version string    `json:"version"`
}

// Counts holds per-table row counts for the /stats endpoint.
type Counts struct {
	Users    int `json:"users"`
	Products int `json:"products"`
}

// SystemRepository reports store connectivity and aggregate state for the
// diagnostic endpoints.
type SystemRepository interface {
	Ping() (time.Duration, error)
	Info() (DBInfo, error)
	Counts() (Counts, error)
}
