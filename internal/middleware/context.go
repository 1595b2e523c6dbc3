package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/storefront/internal/pkg/token"
)

const (
	identityKey = "identity"
	userIDKey   = "userID"
	isAdminKey  = "isAdmin"
)

// SetIdentity attaches a verified identity to the gin context and the request context.
func SetIdentity(c *gin.Context, identity token.Identity) {
	c.Set(identityKey, identity)
	c.Set(userIDKey, identity.SubjectID)
	c.Set(isAdminKey, identity.IsAdmin)
	c.Request = c.Request.WithContext(token.ContextWithIdentity(c.Request.Context(), identity))
}

// CurrentIdentity returns the identity the guard chain attached, if the route is guarded.
func CurrentIdentity(c *gin.Context) (token.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return token.IdentityFromContext(c.Request.Context())
	}
	identity, ok := v.(token.Identity)
	return identity, ok
}
