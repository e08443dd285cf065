package repo

import (
	"errors"

	"github.com/rogerio-castellano/webstack-demo/internal/models"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	Create(u models.User) (models.User, error)
	GetAll() ([]models.User, error)
	GetByID(id int) (models.User, error)
	Update(id int, patch UserPatch) (models.User, error)
	Delete(id int) (models.User, error)
}

// UserPatch carries the optional field updates of a partial user update.
// A nil field means "leave unchanged"; the repository applies the whole
// patch in a single statement.
type UserPatch struct {
	Name  *string
	Email *string
}

// ErrUserNotFound is returned when no user exists for the given id.
var ErrUserNotFound = errors.New("user not found")

// ErrDuplicateEmail is returned when an insert or update collides with the
// store's unique email constraint.
var ErrDuplicateEmail = errors.New("email already registered")
