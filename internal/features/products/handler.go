// ================== internal/features/products/handler.go ==================
package products

import (
	"context"
	"errors"
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/storefront/internal/pkg/cloudinary"
	"github.com/xyz-asif/storefront/internal/pkg/logger"
	"github.com/xyz-asif/storefront/internal/pkg/pagination"
	"github.com/xyz-asif/storefront/internal/pkg/response"
	apperrors "github.com/xyz-asif/storefront/pkg/errors"
)

// ImageStore hosts product images.
type ImageStore interface {
	UploadProductImage(ctx context.Context, file multipart.File, productID string) (*cloudinary.UploadResult, error)
	Delete(ctx context.Context, publicID string) error
}

type Handler struct {
	store  Store
	images ImageStore
	log    *logger.Logger
}

// NewHandler builds the handler. images may be nil, in which case uploads answer 503.
func NewHandler(store Store, images ImageStore) *Handler {
	return &Handler{store: store, images: images, log: logger.Default().Named("products")}
}

// Create godoc
// @Summary Create a product
// @Tags products
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param request body CreateProductRequest true "Product"
// @Success 201 {object} response.SuccessResponse{data=Product}
// @Failure 400 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /products [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}
	if err := ValidateCreate(&req); err != nil {
		response.ValidationFailed(c, err.Error())
		return
	}

	inStock := true
	if req.InStock != nil {
		inStock = *req.InStock
	}
	product := &Product{
		Title:      req.Title,
		Desc:       req.Desc,
		Img:        strings.TrimSpace(req.Img),
		Categories: nonNil(req.Categories),
		Size:       nonNil(req.Size),
		Color:      nonNil(req.Color),
		Price:      req.Price,
		InStock:    inStock,
	}
	if err := h.store.Create(c.Request.Context(), product); err != nil {
		h.fail(c, err, "create product")
		return
	}
	response.Created(c, product)
}

// Update godoc
// @Summary Update a product
// @Tags products
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param id path string true "Product ID"
// @Param request body UpdateProductRequest true "Fields to change"
// @Success 200 {object} response.SuccessResponse{data=Product}
// @Failure 400 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /products/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}
	set, err := ValidateUpdate(&req)
	if err != nil {
		response.ValidationFailed(c, err.Error())
		return
	}

	product, err := h.store.Update(c.Request.Context(), c.Param("id"), set)
	if err != nil {
		h.fail(c, err, "update product")
		return
	}
	response.Success(c, product)
}

// Delete godoc
// @Summary Delete a product
// @Description Also removes the hosted image, if any.
// @Tags products
// @Produce json
// @Security TokenAuth
// @Param id path string true "Product ID"
// @Success 200 {object} response.SuccessResponse{data=response.MessageResponse}
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /products/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	product, err := h.store.FindByID(ctx, id)
	if err != nil {
		h.fail(c, err, "delete product")
		return
	}
	if err := h.store.Delete(ctx, id); err != nil {
		h.fail(c, err, "delete product")
		return
	}

	if product.ImagePublicID != "" && h.images != nil {
		if err := h.images.Delete(ctx, product.ImagePublicID); err != nil {
			h.log.Warn("orphaned image %s: %v", product.ImagePublicID, err)
		}
	}
	response.Message(c, "Product has been deleted")
}

// Find godoc
// @Summary Get a product
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} response.SuccessResponse{data=Product}
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /products/find/{id} [get]
func (h *Handler) Find(c *gin.Context) {
	product, err := h.store.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err, "find product")
		return
	}
	response.Success(c, product)
}

// List godoc
// @Summary List products
// @Description ?new=true returns the five newest products; ?category filters by category.
// @Tags products
// @Produce json
// @Param new query bool false "Only the newest products"
// @Param category query string false "Category"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} response.PaginatedResponse{data=[]Product}
// @Router /products [get]
func (h *Handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	if newest, _ := strconv.ParseBool(c.Query("new")); newest {
		products, err := h.store.Newest(ctx, NewestLimit)
		if err != nil {
			h.fail(c, err, "list products")
			return
		}
		response.Success(c, products)
		return
	}

	req := pagination.FromRequest(c.Query("page"), c.Query("limit"))
	products, total, err := h.store.List(ctx, strings.TrimSpace(c.Query("category")), req)
	if err != nil {
		h.fail(c, err, "list products")
		return
	}
	response.Paginated(c, products, pagination.New(req.Page, req.Limit, total))
}

// UploadImage godoc
// @Summary Upload a product image
// @Description Stores the image with the hosting provider and sets img to its URL.
// @Tags products
// @Accept multipart/form-data
// @Produce json
// @Security TokenAuth
// @Param id path string true "Product ID"
// @Param file formData file true "Image file"
// @Success 200 {object} response.SuccessResponse{data=Product}
// @Failure 400 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 503 {object} response.ErrorResponse
// @Router /products/{id}/image [post]
func (h *Handler) UploadImage(c *gin.Context) {
	if h.images == nil {
		response.ServiceUnavailable(c, "Image uploads are not configured", "UPLOADS_DISABLED")
		return
	}

	ctx := c.Request.Context()
	product, err := h.store.FindByID(ctx, c.Param("id"))
	if err != nil {
		h.fail(c, err, "upload image")
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		response.BadRequest(c, "File is required", "MISSING_FILE")
		return
	}
	defer file.Close()

	if err := cloudinary.ValidateImageFile(header); err != nil {
		response.BadRequest(c, err.Error(), "INVALID_FILE")
		return
	}

	result, err := h.images.UploadProductImage(ctx, file, product.ID.Hex())
	if err != nil {
		h.log.Error("upload image for %s: %v", product.ID.Hex(), err)
		response.InternalServerError(c, "Failed to upload image", "UPLOAD_FAILED")
		return
	}

	updated, err := h.store.Update(ctx, product.ID.Hex(), map[string]interface{}{
		"img":           result.URL,
		"imagePublicId": result.PublicID,
	})
	if err != nil {
		h.fail(c, err, "upload image")
		return
	}
	response.Success(c, updated)
}

func (h *Handler) fail(c *gin.Context, err error, action string) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidID):
		response.BadRequest(c, "Invalid product id", "INVALID_ID")
	case errors.Is(err, apperrors.ErrNotFound):
		response.NotFound(c, "Product not found", "PRODUCT_NOT_FOUND")
	case errors.Is(err, apperrors.ErrDuplicate):
		response.Conflict(c, "A product with this title already exists", "DUPLICATE_PRODUCT")
	default:
		h.log.Error("%s: %v", action, err)
		response.DatabaseError(c, "Failed to "+action)
	}
}
