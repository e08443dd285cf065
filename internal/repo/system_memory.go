package repo

import (
	"errors"
	"time"
)

// InMemorySystemRepository fakes store diagnostics for handler tests. It
// reports healthy until told otherwise.
type InMemorySystemRepository struct {
	users    UserRepository
	products ProductRepository
	down     bool
	latency  time.Duration
}

func NewInMemorySystemRepository() *InMemorySystemRepository {
	return &InMemorySystemRepository{latency: 2 * time.Millisecond}
}

var errStoreUnreachable = errors.New("dial tcp: connection refused")

func (r *InMemorySystemRepository) SetRepositories(users UserRepository, products ProductRepository) {
	r.users = users
	r.products = products
}

// SetDown switches the fake between healthy and unreachable.
func (r *InMemorySystemRepository) SetDown(down bool) {
	r.down = down
}

func (r *InMemorySystemRepository) Ping() (time.Duration, error) {
	if r.down {
		return 0, errStoreUnreachable
	}
	return r.latency, nil
}

func (r *InMemorySystemRepository) Info() (DBInfo, error) {
	if r.down {
		return DBInfo{}, errStoreUnreachable
	}
	return DBInfo{
		Now:     time.Now().UTC(),
		Version: "PostgreSQL 16.3 (in-memory stub)",
	}, nil
}

func (r *InMemorySystemRepository) Counts() (Counts, error) {
	if r.down {
		return Counts{}, errStoreUnreachable
	}

	var c Counts
	if r.users != nil {
		users, err := r.users.GetAll()
		if err != nil {
			return c, err
		}
		c.Users = len(users)
	}
	if r.products != nil {
		products, err := r.products.GetAll()
		if err != nil {
			return c, err
		}
		c.Products = len(products)
	}
	return c, nil
}
