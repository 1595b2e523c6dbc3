package search

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xyz-asif/storefront/internal/pkg/pagination"
)

func TestValidateProductQuery(t *testing.T) {
	q := ProductQuery{Q: "  linen ", Category: " Shirts "}
	require.NoError(t, ValidateProductQuery(&q))
	require.Equal(t, "linen", q.Q)
	require.Equal(t, "Shirts", q.Category)
	require.Equal(t, SortRelevant, q.Sort)
	require.Equal(t, 1, q.Page)
	require.Equal(t, pagination.DefaultLimit, q.Limit)

	q = ProductQuery{Q: "linen", Limit: 1000}
	require.NoError(t, ValidateProductQuery(&q))
	require.Equal(t, pagination.MaxLimit, q.Limit)

	require.ErrorIs(t, ValidateProductQuery(&ProductQuery{Q: " a "}), ErrQueryTooShort)
	require.ErrorIs(t, ValidateProductQuery(&ProductQuery{Q: strings.Repeat("x", 101)}), ErrQueryTooLong)
	require.ErrorIs(t, ValidateProductQuery(&ProductQuery{Q: "linen", Sort: "popular"}), ErrInvalidSort)
}

func TestValidateUserQuery(t *testing.T) {
	q := UserQuery{Q: " al ", Page: -3}
	require.NoError(t, ValidateUserQuery(&q))
	require.Equal(t, "al", q.Q)
	require.Equal(t, 1, q.Page)

	require.ErrorIs(t, ValidateUserQuery(&UserQuery{Q: "a"}), ErrQueryTooShort)
}
