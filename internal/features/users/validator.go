package users

import (
	"errors"
	"strings"

	"github.com/xyz-asif/storefront/internal/pkg/validator"
)

var (
	ErrInvalidUsername = errors.New("username must be 3-20 characters of letters, numbers, underscores or hyphens")
	ErrInvalidEmail    = errors.New("email is not valid")
	ErrWeakPassword    = errors.New("password must be between 6 and 128 characters")
	ErrEmptyUpdate     = errors.New("no fields to update")
)

// ValidateUpdate normalizes and checks the fields present in req.
func ValidateUpdate(req *UpdateUserRequest) error {
	if req.Username == nil && req.Email == nil && req.Password == nil && req.IsAdmin == nil {
		return ErrEmptyUpdate
	}
	if req.Username != nil {
		u := strings.TrimSpace(*req.Username)
		if !validator.IsValidUsername(u) {
			return ErrInvalidUsername
		}
		req.Username = &u
	}
	if req.Email != nil {
		e := validator.NormalizeEmail(*req.Email)
		if !validator.IsValidEmail(e) {
			return ErrInvalidEmail
		}
		req.Email = &e
	}
	if req.Password != nil && !validator.IsAcceptablePassword(*req.Password) {
		return ErrWeakPassword
	}
	return nil
}
