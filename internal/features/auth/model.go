package auth

import (
	"github.com/xyz-asif/storefront/internal/features/users"
)

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Username string `json:"username" binding:"required" example:"alice"`
	Email    string `json:"email" binding:"required" example:"alice@example.com"`
	Password string `json:"password" binding:"required" example:"s3cret!"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"alice"`
	Password string `json:"password" binding:"required" example:"s3cret!"`
}

// LoginResponse is the account (without its password) plus a fresh access token.
type LoginResponse struct {
	*users.User
	AccessToken string `json:"accessToken"`
}
