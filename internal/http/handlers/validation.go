package handlers

import (
	"regexp"
	"strings"
)

// emailPattern is deliberately simple: local-part@domain.tld with no
// whitespace. Uniqueness is the store's job, not the pattern's.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type ValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func validateUserCreate(req UserCreateRequest) []ValidationError {
	errs := []ValidationError{}
	if strings.TrimSpace(req.Name) == "" {
		errs = append(errs, ValidationError{Field: "name", Description: "name is required"})
	}
	if strings.TrimSpace(req.Email) == "" {
		errs = append(errs, ValidationError{Field: "email", Description: "email is required"})
	} else if !emailPattern.MatchString(req.Email) {
		errs = append(errs, ValidationError{Field: "email", Description: "email format is invalid"})
	}
	return errs
}

// validateUserUpdate allows partial bodies but rejects an empty patch.
func validateUserUpdate(req UserUpdateRequest) []ValidationError {
	errs := []ValidationError{}
	if req.Name == nil && req.Email == nil {
		errs = append(errs, ValidationError{Field: "body", Description: "at least one of name or email must be provided"})
		return errs
	}
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		errs = append(errs, ValidationError{Field: "name", Description: "name cannot be empty"})
	}
	if req.Email != nil && !emailPattern.MatchString(*req.Email) {
		errs = append(errs, ValidationError{Field: "email", Description: "email format is invalid"})
	}
	return errs
}
