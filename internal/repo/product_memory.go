package repo

import (
	"time"

	"github.com/rogerio-castellano/webstack-demo/internal/models"
)

// InMemoryProductRepository is an in-memory implementation of
// ProductRepository. Tests seed it the way the init script seeds the store.
type InMemoryProductRepository struct {
	products []models.Product
	nextID   int
}

func NewInMemoryProductRepository() *InMemoryProductRepository {
	return &InMemoryProductRepository{
		products: []models.Product{},
		nextID:   1,
	}
}

func (r *InMemoryProductRepository) GetAll() ([]models.Product, error) {
	return r.products, nil
}

// Seed adds a product the way the store's init script would.
func (r *InMemoryProductRepository) Seed(p models.Product) models.Product {
	p.ID = r.nextID
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	r.nextID++
	r.products = append(r.products, p)
	return p
}

func (r *InMemoryProductRepository) Clear() {
	r.products = []models.Product{}
}
