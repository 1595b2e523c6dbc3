// ================== internal/features/auth/handler.go ==================
package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/storefront/internal/features/users"
	"github.com/xyz-asif/storefront/internal/pkg/logger"
	"github.com/xyz-asif/storefront/internal/pkg/response"
	apperrors "github.com/xyz-asif/storefront/pkg/errors"
)

// UserStore is the part of the user store registration and login need.
type UserStore interface {
	Create(ctx context.Context, user *users.User) error
	FindByUsername(ctx context.Context, username string) (*users.User, error)
	FindByEmail(ctx context.Context, email string) (*users.User, error)
}

// CredentialCodec protects new passwords and checks presented ones.
type CredentialCodec interface {
	Protect(secret string) (string, error)
	Check(secret, stored string) bool
	DummyCheck(secret string)
}

// TokenIssuer signs access tokens.
type TokenIssuer interface {
	Issue(subjectID string, isAdmin bool) (string, error)
}

type Handler struct {
	store  UserStore
	codec  CredentialCodec
	tokens TokenIssuer
	log    *logger.Logger
}

func NewHandler(store UserStore, codec CredentialCodec, tokens TokenIssuer) *Handler {
	return &Handler{
		store:  store,
		codec:  codec,
		tokens: tokens,
		log:    logger.Default().Named("auth"),
	}
}

// Register godoc
// @Summary Register a new user
// @Description Creates an account. The password is stored in protected form and never returned.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "User registration data"
// @Success 201 {object} response.SuccessResponse{data=users.User}
// @Failure 400 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Failure 429 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /auth/register [post]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}
	if err := ValidateRegister(&req); err != nil {
		response.ValidationFailed(c, err.Error())
		return
	}

	ctx := c.Request.Context()

	taken, err := h.exists(ctx, h.store.FindByEmail, req.Email)
	if err != nil {
		h.log.Error("lookup email: %v", err)
		response.DatabaseError(c, "Failed to register user")
		return
	}
	if taken {
		response.Conflict(c, "Email already registered", "EMAIL_TAKEN")
		return
	}

	taken, err = h.exists(ctx, h.store.FindByUsername, req.Username)
	if err != nil {
		h.log.Error("lookup username: %v", err)
		response.DatabaseError(c, "Failed to register user")
		return
	}
	if taken {
		response.Conflict(c, "Username already taken", "USERNAME_TAKEN")
		return
	}

	protected, err := h.codec.Protect(req.Password)
	if err != nil {
		h.log.Error("protect password: %v", err)
		response.InternalServerError(c, "Failed to process password")
		return
	}

	user := &users.User{
		Username: req.Username,
		Email:    req.Email,
		Password: protected,
	}
	if err := h.store.Create(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			response.Conflict(c, "Username or email already in use", "DUPLICATE_USER")
			return
		}
		h.log.Error("create user: %v", err)
		response.DatabaseError(c, "Failed to register user")
		return
	}

	h.log.Info("registered user %s", user.ID.Hex())
	response.Created(c, user)
}

// Login godoc
// @Summary Login
// @Description Exchanges a username and password for an access token.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "User login credentials"
// @Success 200 {object} response.SuccessResponse{data=LoginResponse}
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 429 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	user, err := h.store.FindByUsername(c.Request.Context(), strings.TrimSpace(req.Username))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			h.codec.DummyCheck(req.Password)
			response.InvalidCredentials(c)
			return
		}
		h.log.Error("lookup user for login: %v", err)
		response.DatabaseError(c, "Failed to login")
		return
	}

	if !h.codec.Check(req.Password, user.Password) {
		response.InvalidCredentials(c)
		return
	}

	accessToken, err := h.tokens.Issue(user.ID.Hex(), user.IsAdmin)
	if err != nil {
		h.log.Error("issue token: %v", err)
		response.InternalServerError(c, "Failed to generate token")
		return
	}

	response.Success(c, LoginResponse{User: user, AccessToken: accessToken})
}

func (h *Handler) exists(ctx context.Context, find func(context.Context, string) (*users.User, error), value string) (bool, error) {
	_, err := find(ctx, value)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, apperrors.ErrNotFound):
		return false, nil
	default:
		return false, err
	}
}
