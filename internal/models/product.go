package models

import "time"

// Product represents a seeded catalog entry. The API never mutates
// products; they exist to demonstrate a second, independent table.
type Product struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Stock     int       `json:"stock"`
	CreatedAt time.Time `json:"created_at"`
}
