// ================== internal/features/orders/handler.go ==================
package orders

import (
	"errors"
	"time"

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
	now   func() time.Time
}

func NewHandler(store Store) *Handler {
	return &Handler{store: store, log: logger.Default().Named("orders"), now: time.Now}
}

// Create godoc
// @Summary Place an order
// @Description The order is owned by the caller (admins may pass userId). Status starts as pending.
// @Tags orders
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param request body CreateOrderRequest true "Order"
// @Success 201 {object} response.SuccessResponse{data=Order}
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Router /orders [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}
	if err := ValidateCreate(&req); err != nil {
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

	order := &Order{
		UserID:   owner,
		Products: req.Products,
		Amount:   req.Amount,
		Address:  req.Address,
		Status:   StatusPending,
	}
	if err := h.store.Create(c.Request.Context(), order); err != nil {
		h.fail(c, err, "create order")
		return
	}
	h.log.Info("order %s placed for %s", order.Reference, order.UserID)
	response.Created(c, order)
}

// Update godoc
// @Summary Update an order
// @Tags orders
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param id path string true "Order ID"
// @Param request body UpdateOrderRequest true "Fields to change"
// @Success 200 {object} response.SuccessResponse{data=Order}
// @Failure 400 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /orders/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	var req UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}
	set, err := ValidateUpdate(&req)
	if err != nil {
		response.ValidationFailed(c, err.Error())
		return
	}

	order, err := h.store.Update(c.Request.Context(), c.Param("id"), set)
	if err != nil {
		h.fail(c, err, "update order")
		return
	}
	response.Success(c, order)
}

// Delete godoc
// @Summary Delete an order
// @Tags orders
// @Produce json
// @Security TokenAuth
// @Param id path string true "Order ID"
// @Success 200 {object} response.SuccessResponse{data=response.MessageResponse}
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /orders/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	if err := h.store.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err, "delete order")
		return
	}
	response.Message(c, "Order has been deleted")
}

// FindByUser godoc
// @Summary List a user's orders
// @Tags orders
// @Produce json
// @Security TokenAuth
// @Param userId path string true "User ID"
// @Success 200 {object} response.SuccessResponse{data=[]Order}
// @Failure 403 {object} response.ErrorResponse
// @Router /orders/find/{userId} [get]
func (h *Handler) FindByUser(c *gin.Context) {
	orders, err := h.store.ListByUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		h.fail(c, err, "list orders")
		return
	}
	response.Success(c, orders)
}

// List godoc
// @Summary List all orders
// @Tags orders
// @Produce json
// @Security TokenAuth
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} response.PaginatedResponse{data=[]Order}
// @Failure 403 {object} response.ErrorResponse
// @Router /orders [get]
func (h *Handler) List(c *gin.Context) {
	req := pagination.FromRequest(c.Query("page"), c.Query("limit"))
	orders, total, err := h.store.List(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err, "list orders")
		return
	}
	response.Paginated(c, orders, pagination.New(req.Page, req.Limit, total))
}

// Income godoc
// @Summary Monthly income since the previous month
// @Tags orders
// @Produce json
// @Security TokenAuth
// @Success 200 {object} response.SuccessResponse{data=[]IncomeBucket}
// @Failure 403 {object} response.ErrorResponse
// @Router /orders/income [get]
func (h *Handler) Income(c *gin.Context) {
	since := h.now().AddDate(0, -1, 0)
	buckets, err := h.store.MonthlyIncome(c.Request.Context(), since)
	if err != nil {
		h.fail(c, err, "load income")
		return
	}
	response.Success(c, buckets)
}

func (h *Handler) fail(c *gin.Context, err error, action string) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidID):
		response.BadRequest(c, "Invalid order id", "INVALID_ID")
	case errors.Is(err, apperrors.ErrNotFound):
		response.NotFound(c, "Order not found", "ORDER_NOT_FOUND")
	default:
		h.log.Error("%s: %v", action, err)
		response.DatabaseError(c, "Failed to "+action)
	}
}
