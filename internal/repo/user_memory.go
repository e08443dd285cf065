package repo

import (
	"time"

	"github.com/rogerio-castellano/webstack-demo/internal/models"
)

// InMemoryUserRepository is an in-memory implementation of UserRepository
// used by the handler tests.
type InMemoryUserRepository struct {
	users  []models.User
	nextID int
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{
		users:  []models.User{},
		nextID: 1,
	}
}

func (r *InMemoryUserRepository) Create(u models.User) (models.User, error) {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return models.User{}, ErrDuplicateEmail
		}
	}

	now := time.Now().UTC()
	u.ID = r.nextID
	u.CreatedAt = now
	u.UpdatedAt = now
	r.nextID++
	r.users = append(r.users, u)
	return u, nil
}

func (r *InMemoryUserRepository) GetAll() ([]models.User, error) {
	return r.users, nil
}

func (r *InMemoryUserRepository) GetByID(id int) (models.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, ErrUserNotFound
}

func (r *InMemoryUserRepository) Update(id int, patch UserPatch) (models.User, error) {
	for i, u := range r.users {
		if u.ID != id {
			continue
		}
		if patch.Email != nil {
			for _, other := range r.users {
				if other.ID != id && other.Email == *patch.Email {
					return models.User{}, ErrDuplicateEmail
				}
			}
			u.Email = *patch.Email
		}
		if patch.Name != nil {
			u.Name = *patch.Name
		}
		u.UpdatedAt = time.Now().UTC()
		r.users[i] = u
		return u, nil
	}
	return models.User{}, ErrUserNotFound
}

func (r *InMemoryUserRepository) Delete(id int) (models.User, error) {
	for i, u := range r.users {
		if u.ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return u, nil
		}
	}
	return models.User{}, ErrUserNotFound
}

func (r *InMemoryUserRepository) Clear() {
	r.users = []models.User{}
}
