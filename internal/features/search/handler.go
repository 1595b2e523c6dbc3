package search

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/storefront/internal/features/users"
	"github.com/xyz-asif/storefront/internal/pkg/logger"
	"github.com/xyz-asif/storefront/internal/pkg/pagination"
	"github.com/xyz-asif/storefront/internal/pkg/response"
)

type Searcher interface {
	SearchProducts(ctx context.Context, q ProductQuery) ([]ProductResult, int64, error)
	SearchUsers(ctx context.Context, q UserQuery) ([]users.User, int64, error)
}

type Handler struct {
	searcher Searcher
	log      *logger.Logger
}

func NewHandler(searcher Searcher) *Handler {
	return &Handler{searcher: searcher, log: logger.Default().Named("search")}
}

// Products godoc
// @Summary Search products
// @Description Full-text search over product titles and descriptions
// @Tags search
// @Produce json
// @Param q query string true "Search query (min 2 chars)"
// @Param category query string false "Exact category, case-insensitive"
// @Param inStock query bool false "Only products with this stock flag"
// @Param sort query string false "relevant, recent, price_asc, price_desc (default relevant)"
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Items per page (default 10, max 100)"
// @Success 200 {object} response.PaginatedResponse{data=[]ProductResult}
// @Failure 400 {object} response.ErrorResponse
// @Router /search/products [get]
func (h *Handler) Products(c *gin.Context) {
	var query ProductQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Invalid query parameters", "INVALID_QUERY")
		return
	}
	if err := ValidateProductQuery(&query); err != nil {
		response.BadRequest(c, err.Error(), "INVALID_QUERY")
		return
	}

	results, total, err := h.searcher.SearchProducts(c.Request.Context(), query)
	if err != nil {
		h.log.Error("search products %q: %v", query.Q, err)
		response.DatabaseError(c, "Failed to search products")
		return
	}
	response.Paginated(c, results, pagination.New(query.Page, query.Limit, total))
}

// Users godoc
// @Summary Search users
// @Description Finds users whose username or email starts with q
// @Tags search
// @Produce json
// @Security TokenAuth
// @Param q query string true "Username or email prefix (min 2 chars)"
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Items per page (default 10, max 100)"
// @Success 200 {object} response.PaginatedResponse{data=[]users.User}
// @Failure 400 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Router /search/users [get]
func (h *Handler) Users(c *gin.Context) {
	var query UserQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Invalid query parameters", "INVALID_QUERY")
		return
	}
	if err := ValidateUserQuery(&query); err != nil {
		response.BadRequest(c, err.Error(), "INVALID_QUERY")
		return
	}

	found, total, err := h.searcher.SearchUsers(c.Request.Context(), query)
	if err != nil {
		h.log.Error("search users %q: %v", query.Q, err)
		response.DatabaseError(c, "Failed to search users")
		return
	}
	response.Paginated(c, found, pagination.New(query.Page, query.Limit, total))
}
