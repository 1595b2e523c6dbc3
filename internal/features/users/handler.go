// ================== internal/features/users/handler.go ==================
package users

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/storefront/internal/middleware"
	"github.com/xyz-asif/storefront/internal/pkg/logger"
	"github.com/xyz-asif/storefront/internal/pkg/pagination"
	"github.com/xyz-asif/storefront/internal/pkg/response"
	apperrors "github.com/xyz-asif/storefront/pkg/errors"
)

// Protector derives the stored form of a password.
type Protector interface {
	Protect(secret string) (string, error)
}

type Handler struct {
	store Store
	codec Protector
	log   *logger.Logger
	now   func() time.Time
}

func NewHandler(store Store, codec Protector) *Handler {
	return &Handler{
		store: store,
		codec: codec,
		log:   logger.Default().Named("users"),
		now:   time.Now,
	}
}

// Update godoc
// @Summary Update a user
// @Description Partial update. The password is re-protected; only admins may change isAdmin.
// @Tags users
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param id path string true "User ID"
// @Param request body UpdateUserRequest true "Fields to change"
// @Success 200 {object} response.SuccessResponse{data=User}
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /users/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}
	if err := ValidateUpdate(&req); err != nil {
		response.ValidationFailed(c, err.Error())
		return
	}

	identity, _ := middleware.CurrentIdentity(c)
	if req.IsAdmin != nil && !identity.IsAdmin {
		response.Forbidden(c, apperrors.ErrForbidden.Message, apperrors.ErrForbidden.Code())
		return
	}

	updates := map[string]interface{}{}
	if req.Username != nil {
		updates["username"] = *req.Username
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Password != nil {
		protected, err := h.codec.Protect(*req.Password)
		if err != nil {
			h.log.Error("protect password: %v", err)
			response.InternalServerError(c, "Failed to process password")
			return
		}
		updates["password"] = protected
	}
	if req.IsAdmin != nil {
		updates["isAdmin"] = *req.IsAdmin
	}

	user, err := h.store.Update(c.Request.Context(), c.Param("id"), updates)
	if err != nil {
		h.fail(c, err, "update user")
		return
	}
	response.Success(c, user)
}

// Delete godoc
// @Summary Delete a user
// @Tags users
// @Produce json
// @Security TokenAuth
// @Param id path string true "User ID"
// @Success 200 {object} response.SuccessResponse{data=response.MessageResponse}
// @Failure 401 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /users/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	if err := h.store.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err, "delete user")
		return
	}
	response.Message(c, "User has been deleted")
}

// Find godoc
// @Summary Get a user by id
// @Tags users
// @Produce json
// @Security TokenAuth
// @Param id path string true "User ID"
// @Success 200 {object} response.SuccessResponse{data=User}
// @Failure 400 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /users/find/{id} [get]
func (h *Handler) Find(c *gin.Context) {
	user, err := h.store.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err, "find user")
		return
	}
	response.Success(c, user)
}

// List godoc
// @Summary List users
// @Description ?new=true returns the five newest users; otherwise results are paginated.
// @Tags users
// @Produce json
// @Security TokenAuth
// @Param new query bool false "Only the newest users"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} response.PaginatedResponse{data=[]User}
// @Failure 403 {object} response.ErrorResponse
// @Router /users [get]
func (h *Handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	if newest, _ := strconv.ParseBool(c.Query("new")); newest {
		users, err := h.store.Newest(ctx, NewestLimit)
		if err != nil {
			h.fail(c, err, "list users")
			return
		}
		response.Success(c, users)
		return
	}

	req := pagination.FromRequest(c.Query("page"), c.Query("limit"))
	users, total, err := h.store.List(ctx, req)
	if err != nil {
		h.fail(c, err, "list users")
		return
	}
	response.Paginated(c, users, pagination.New(req.Page, req.Limit, total))
}

// Stats godoc
// @Summary Monthly registrations over the last year
// @Tags users
// @Produce json
// @Security TokenAuth
// @Success 200 {object} response.SuccessResponse{data=[]StatsBucket}
// @Failure 403 {object} response.ErrorResponse
// @Router /users/stats [get]
func (h *Handler) Stats(c *gin.Context) {
	since := h.now().AddDate(-1, 0, 0)
	buckets, err := h.store.MonthlyRegistrations(c.Request.Context(), since)
	if err != nil {
		h.fail(c, err, "load user stats")
		return
	}
	response.Success(c, buckets)
}

func (h *Handler) fail(c *gin.Context, err error, action string) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidID):
		response.BadRequest(c, "Invalid user id", "INVALID_ID")
	case errors.Is(err, apperrors.ErrNotFound):
		response.NotFound(c, "User not found", "USER_NOT_FOUND")
	case errors.Is(err, apperrors.ErrDuplicate):
		response.Conflict(c, "Username or email already in use", "DUPLICATE_USER")
	default:
		h.log.Error("%s: %v", action, err)
		response.DatabaseError(c, "Failed to "+action)
	}
}
