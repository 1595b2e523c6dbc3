package search

import (
	"errors"
	"strings"

	"github.com/xyz-asif/storefront/internal/pkg/pagination"
)

var (
	ErrQueryTooShort = errors.New("query must be at least 2 characters")
	ErrQueryTooLong  = errors.New("query must be 100 characters or less")
	ErrInvalidSort   = errors.New("sort must be: relevant, recent, price_asc or price_desc")
)

func ValidateProductQuery(q *ProductQuery) error {
	q.Q = strings.TrimSpace(q.Q)
	q.Category = strings.TrimSpace(q.Category)
	if err := checkQuery(q.Q); err != nil {
		return err
	}

	if q.Sort == "" {
		q.Sort = SortRelevant
	}
	switch q.Sort {
	case SortRelevant, SortRecent, SortPriceAsc, SortPriceDesc:
	default:
		return ErrInvalidSort
	}

	q.Page, q.Limit = pageBounds(q.Page, q.Limit)
	return nil
}

func ValidateUserQuery(q *UserQuery) error {
	q.Q = strings.TrimSpace(q.Q)
	if err := checkQuery(q.Q); err != nil {
		return err
	}
	q.Page, q.Limit = pageBounds(q.Page, q.Limit)
	return nil
}

func checkQuery(q string) error {
	if len(q) < minQueryLength {
		return ErrQueryTooShort
	}
	if len(q) > maxQueryLength {
		return ErrQueryTooLong
	}
	return nil
}

func pageBounds(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = pagination.DefaultLimit
	}
	if limit > pagination.MaxLimit {
		limit = pagination.MaxLimit
	}
	return page, limit
}
