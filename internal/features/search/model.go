package search

import (
	"github.com/xyz-asif/storefront/internal/features/products"
)

// Sort orders for product search.
const (
	SortRelevant  = "relevant"
	SortRecent    = "recent"
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
)

const (
	minQueryLength = 2
	maxQueryLength = 100
)

// ProductQuery for GET /search/products
type ProductQuery struct {
	Q        string `form:"q" binding:"required"`
	Category string `form:"category"`
	InStock  *bool  `form:"inStock"`
	Sort     string `form:"sort"`
	Page     int    `form:"page"`
	Limit    int    `form:"limit"`
}

// UserQuery for GET /search/users. Q matches the start of a username or email.
type UserQuery struct {
	Q     string `form:"q" binding:"required"`
	Page  int    `form:"page"`
	Limit int    `form:"limit"`
}

// ProductResult is a product plus its text score when sorted by relevance.
type ProductResult struct {
	products.Product `bson:",inline"`
	Score            float64 `bson:"score,omitempty" json:"score,omitempty"`
}
