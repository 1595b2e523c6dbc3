package search

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/xyz-asif/storefront/internal/features/products"
	"github.com/xyz-asif/storefront/internal/features/users"
	"github.com/xyz-asif/storefront/internal/middleware"
	"github.com/xyz-asif/storefront/internal/pkg/token"
)

type fakeSearcher struct {
	productQuery ProductQuery
	userQuery    UserQuery
	err          error
}

func (f *fakeSearcher) SearchProducts(_ context.Context, q ProductQuery) ([]ProductResult, int64, error) {
	f.productQuery = q
	if f.err != nil {
		return nil, 0, f.err
	}
	return []ProductResult{
		{Product: products.Product{ID: primitive.NewObjectID(), Title: "Linen shirt"}, Score: 1.5},
	}, 1, nil
}

func (f *fakeSearcher) SearchUsers(_ context.Context, q UserQuery) ([]users.User, int64, error) {
	f.userQuery = q
	if f.err != nil {
		return nil, 0, f.err
	}
	return []users.User{{ID: primitive.NewObjectID(), Username: "alice", Password: "stored"}}, 1, nil
}

func setup(t *testing.T) (*fakeSearcher, *token.Manager, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	tokens, err := token.NewManager("test-secret", token.DefaultTTL)
	require.NoError(t, err)

	searcher := &fakeSearcher{}
	r := gin.New()
	RegisterRoutes(r.Group("/api"), NewHandler(searcher), middleware.NewGuard(tokens))
	return searcher, tokens, r
}

func get(t *testing.T, r *gin.Engine, tokens *token.Manager, path string, admin bool) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if tokens != nil {
		tok, err := tokens.Issue("U1", admin)
		require.NoError(t, err)
		req.Header.Set(middleware.TokenHeader, "Bearer "+tok)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestSearchProducts(t *testing.T) {
	searcher, _, r := setup(t)

	w, body := get(t, r, nil, "/api/search/products?q=linen&category=shirts&inStock=true&sort=price_asc&limit=5", false)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "linen", searcher.productQuery.Q)
	require.Equal(t, "shirts", searcher.productQuery.Category)
	require.NotNil(t, searcher.productQuery.InStock)
	require.True(t, *searcher.productQuery.InStock)
	require.Equal(t, SortPriceAsc, searcher.productQuery.Sort)

	items := body["data"].([]any)
	require.Len(t, items, 1)
	item := items[0].(map[string]any)
	require.Equal(t, "Linen shirt", item["title"])
	require.Equal(t, 1.5, item["score"])
	require.Equal(t, float64(5), body["pagination"].(map[string]any)["limit"])
}

func TestSearchProductsBadQuery(t *testing.T) {
	_, _, r := setup(t)

	w, body := get(t, r, nil, "/api/search/products", false)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "INVALID_QUERY", body["code"])

	w, _ = get(t, r, nil, "/api/search/products?q=x", false)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = get(t, r, nil, "/api/search/products?q=linen&sort=popular", false)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSearchProductsStoreError(t *testing.T) {
	searcher, _, r := setup(t)
	searcher.err = errors.New("no text index")

	w, body := get(t, r, nil, "/api/search/products?q=linen", false)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Equal(t, "DATABASE_ERROR", body["code"])
}

func TestSearchUsersIsAdminOnly(t *testing.T) {
	searcher, tokens, r := setup(t)

	w, _ := get(t, r, nil, "/api/search/users?q=al", false)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = get(t, r, tokens, "/api/search/users?q=al", false)
	require.Equal(t, http.StatusForbidden, w.Code)

	w, body := get(t, r, tokens, "/api/search/users?q=al", true)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "al", searcher.userQuery.Q)
	user := body["data"].([]any)[0].(map[string]any)
	require.Equal(t, "alice", user["username"])
	require.NotContains(t, user, "password")
}
