package repo

import "github.com/rogerio-castellano/webstack-demo/internal/models"

// ProductRepository defines the interface for product data operations.
// Products are seeded by the store's init script and read-only through
// the API, so listing is the only operation.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
}
