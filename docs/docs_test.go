package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSwaggerDocListsMountedPaths(t *testing.T) {
	var doc struct {
		BasePath string                    `json:"basePath"`
		Paths    map[string]map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(SwaggerInfo.ReadDoc()), &doc))

	require.Equal(t, "/api", doc.BasePath)
	for _, path := range []string{
		"/auth/register", "/auth/login",
		"/users", "/users/stats", "/users/find/{id}", "/users/{id}",
		"/carts", "/carts/find/{userId}", "/carts/{id}",
		"/orders", "/orders/income", "/orders/find/{userId}", "/orders/{id}",
		"/products", "/products/find/{id}", "/products/{id}", "/products/{id}/image",
		"/search/products", "/search/users",
	} {
		require.Contains(t, doc.Paths, path)
	}
	require.Contains(t, doc.Paths["/search/products"], "get")
	require.NotContains(t, doc.Paths["/search/products"]["get"], "security")
	require.Contains(t, doc.Paths["/search/users"]["get"], "security")
}
