package carts

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/storefront/internal/middleware"
	"github.com/xyz-asif/storefront/internal/pkg/logger"
	"github.com/xyz-asif/storefront/internal/pkg/pagination"
	"github.com/xyz-asif/storefront/internal/pkg/response"
	apperrors "github.com/xyz-asif/storefront/pkg/errors"
)

type Handler struct {
	store Store
	log   *logger.Logger
}

func NewHandler(store Store) *Handler {
	return &Handler{store: store, log: logger.Default().Named("carts")}
}

// Owner resolves the owner of the cart named by the :id path parameter.
func (h *Handler) Owner() middleware.OwnerResolver {
	return func(c *gin.Context) (string, error) {
		cart, err := h.store.FindByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			return "", err
		}
		return cart.UserID, nil
	}
}

// Create godoc
// @Summary Create a cart
// @Description The cart is owned by the caller. Admins may pass userId to create one for another user.
// @Tags carts
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param request body CreateCartRequest true "Cart contents"
// @Success 201 {object} response.SuccessResponse{data=Cart}
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Router /carts [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}
	if req.Products == nil {
		req.Products = []LineItem{}
	}
	if err := ValidateItems(req.Products); err != nil {
		response.ValidationFailed(c, err.Error())
		return
	}

	identity, _ := middleware.CurrentIdentity(c)
	owner := identity.SubjectID
	if req.UserID != "" && req.UserID != owner {
		if !identity.IsAdmin {
			response.Forbidden(c, apperrors.ErrForbidden.Message, apperrors.ErrForbidden.Code())
			return
		}
		owner = req.UserID
	}

	cart := &Cart{UserID: owner, Products: req.Products}
	if err := h.store.Create(c.Request.Context(), cart); err != nil {
		h.fail(c, err, "create cart")
		return
	}
	response.Created(c, cart)
}

// Update godoc
// @Summary Replace a cart's products
// @Tags carts
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param id path string true "Cart ID"
// @Param request body UpdateCartRequest true "New contents"
// @Success 200 {object} response.SuccessResponse{data=Cart}
// @Failure 400 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /carts/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	var req UpdateCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}
	if err := ValidateItems(req.Products); err != nil {
		response.ValidationFailed(c, err.Error())
		return
	}

	cart, err := h.store.UpdateProducts(c.Request.Context(), c.Param("id"), req.Products)
	if err != nil {
		h.fail(c, err, "update cart")
		return
	}
	response.Success(c, cart)
}

// Delete godoc
// @Summary Delete a cart
// @Tags carts
// @Produce json
// @Security TokenAuth
// @Param id path string true "Cart ID"
// @Success 200 {object} response.SuccessResponse{data=response.MessageResponse}
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /carts/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	if err := h.store.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err, "delete cart")
		return
	}
	response.Message(c, "Cart has been deleted")
}

// FindByUser godoc
// @Summary Get a user's cart
// @Tags carts
// @Produce json
// @Security TokenAuth
// @Param userId path string true "User ID"
// @Success 200 {object} response.SuccessResponse{data=Cart}
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /carts/find/{userId} [get]
func (h *Handler) FindByUser(c *gin.Context) {
	cart, err := h.store.FindByUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		h.fail(c, err, "find cart")
		return
	}
	response.Success(c, cart)
}

// List godoc
// @Summary List all carts
// @Tags carts
// @Produce json
// @Security TokenAuth
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} response.PaginatedResponse{data=[]Cart}
// @Failure 403 {object} response.ErrorResponse
// @Router /carts [get]
func (h *Handler) List(c *gin.Context) {
	req := pagination.FromRequest(c.Query("page"), c.Query("limit"))
	carts, total, err := h.store.List(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err, "list carts")
		return
	}
	response.Paginated(c, carts, pagination.New(req.Page, req.Limit, total))
}

func (h *Handler) fail(c *gin.Context, err error, action string) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidID):
		response.BadRequest(c, "Invalid cart id", "INVALID_ID")
	case errors.Is(err, apperrors.ErrNotFound):
		response.NotFound(c, "Cart not found", "CART_NOT_FOUND")
	default:
		h.log.Error("%s: %v", action, err)
		response.DatabaseError(c, "Failed to "+action)
	}
}
