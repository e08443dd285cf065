package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/rogerio-castellano/webstack-demo/internal/models"
	"github.com/rogerio-castellano/webstack-demo/internal/repo"
)

// ListUsers godoc
// @Summary List all users
// @Tags users
// @Produce json
// @Success 200 {object} UserListEnvelope
// @Failure 500 {object} ErrorResponse
// @Router /users [get]
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.GetAll()
	if err != nil {
		h.respondServerError(w, "could not fetch users", err)
		return
	}
	if users == nil {
		users = []models.User{}
	}
	writeJSON(w, http.StatusOK, UserListEnvelope{Success: true, Count: len(users), Data: users})
}

// GetUser godoc
// @Summary Get user by ID
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} UserEnvelope
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 404 {object} ErrorResponse "Not found"
// @Failure 500 {object} ErrorResponse
// @Router /users/{id} [get]
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid user ID")
		return
	}

	user, err := h.users.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrUserNotFound) {
			respondError(w, http.StatusNotFound, "user not found")
			return
		}
		h.respondServerError(w, "could not fetch user", err)
		return
	}
	writeJSON(w, http.StatusOK, UserEnvelope{Success: true, Data: user})
}

// CreateUser godoc
// @Summary Create a new user
// @Description Inserts a user with a server-assigned id and timestamps.
// @Tags users
// @Accept json
// @Produce json
// @Param user body UserCreateRequest true "User to create"
// @Success 201 {object} UserEnvelope
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Failure 500 {object} ErrorResponse
// @Router /users [post]
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req UserCreateRequest
	if err := readJSON(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if errs := validateUserCreate(req); len(errs) > 0 {
		respondValidation(w, errs)
		return
	}

	user, err := h.users.Create(models.User{
		Name:  strings.TrimSpace(req.Name),
		Email: req.Email,
	})
	if err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			respondError(w, http.StatusConflict, "email already registered")
			return
		}
		h.respondServerError(w, "could not create user", err)
		return
	}
	writeJSON(w, http.StatusCreated, UserEnvelope{Success: true, Data: user})
}

// UpdateUser godoc
// @Summary Update a user
// @Description Partial update: only the supplied fields change and the update timestamp is refreshed.
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param user body UserUpdateRequest true "Fields to change"
// @Success 200 {object} UserEnvelope
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 404 {object} ErrorResponse "Not found"
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Failure 500 {object} ErrorResponse
// @Router /users/{id} [put]
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid user ID")
		return
	}

	var req UserUpdateRequest
	if err := readJSON(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if errs := validateUserUpdate(req); len(errs) > 0 {
		respondValidation(w, errs)
		return
	}

	patch := repo.UserPatch{Email: req.Email}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		patch.Name = &name
	}

	user, err := h.users.Update(id, patch)
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrUserNotFound):
			respondError(w, http.StatusNotFound, "user not found")
		case errors.Is(err, repo.ErrDuplicateEmail):
			respondError(w, http.StatusConflict, "email already registered")
		default:
			h.respondServerError(w, "could not update user", err)
		}
		return
	}
	writeJSON(w, http.StatusOK, UserEnvelope{Success: true, Data: user})
}

// DeleteUser godoc
// @Summary Delete a user
// @Description Deletion is permanent; the removed record is returned.
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} UserEnvelope
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 404 {object} ErrorResponse "Not found"
// @Failure 500 {object} ErrorResponse
// @Router /users/{id} [delete]
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid user ID")
		return
	}

	user, err := h.users.Delete(id)
	if err != nil {
		if errors.Is(err, repo.ErrUserNotFound) {
			respondError(w, http.StatusNotFound, "user not found")
			return
		}
		h.respondServerError(w, "could not delete user", err)
		return
	}
	writeJSON(w, http.StatusOK, UserEnvelope{Success: true, Data: user})
}
