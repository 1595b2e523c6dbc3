package auth

import (
	"strings"

	"github.com/xyz-asif/storefront/internal/features/users"
	"github.com/xyz-asif/storefront/internal/pkg/validator"
)

// ValidateRegister trims and normalizes req, then checks each field.
func ValidateRegister(req *RegisterRequest) error {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = validator.NormalizeEmail(req.Email)

	if !validator.IsValidUsername(req.Username) {
		return users.ErrInvalidUsername
	}
	if !validator.IsValidEmail(req.Email) {
		return users.ErrInvalidEmail
	}
	if !validator.IsAcceptablePassword(req.Password) {
		return users.ErrWeakPassword
	}
	return nil
}
