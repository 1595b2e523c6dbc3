// ================== internal/middleware/auth.go ==================
package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/storefront/internal/pkg/logger"
	"github.com/xyz-asif/storefront/internal/pkg/policy"
	"github.com/xyz-asif/storefront/internal/pkg/response"
	"github.com/xyz-asif/storefront/internal/pkg/token"
	apperrors "github.com/xyz-asif/storefront/pkg/errors"
)

const (
	// TokenHeader is the header existing clients send ("Bearer <token>").
	TokenHeader = "token"
	// AuthorizationHeader is accepted when TokenHeader is absent.
	AuthorizationHeader = "Authorization"
)

// State is where a request stands in the guard chain.
type State int

const (
	Unauthenticated State = iota
	Authenticated
	Authorized
	Rejected
)

func (s State) String() string {
	switch s {
	case Unauthenticated:
		return "unauthenticated"
	case Authenticated:
		return "authenticated"
	case Authorized:
		return "authorized"
	case Rejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Decision is the result of each stage. Err is set only when State is Rejected.
type Decision struct {
	State    State
	Identity token.Identity
	Err      *apperrors.AuthError
}

// Verifier validates a raw assertion header value.
type Verifier interface {
	Verify(header string) (token.Identity, *apperrors.AuthError)
}

// OwnerResolver returns the subject id owning the resource a request targets. It runs only
// after authentication succeeded. Return apperrors.ErrNotFound or apperrors.ErrInvalidID for
// 404 and 400 responses; anything else is a 500.
type OwnerResolver func(c *gin.Context) (string, error)

// RejectionRecorder counts guard rejections by kind.
type RejectionRecorder interface {
	RecordRejection(kind apperrors.AuthKind)
}

// Guard builds gin middleware from a verifier and a policy mode.
type Guard struct {
	verifier Verifier
	log      *logger.Logger
	recorder RejectionRecorder
}

type GuardOption func(*Guard)

func WithLogger(l *logger.Logger) GuardOption {
	return func(g *Guard) { g.log = l }
}

func WithRejectionRecorder(r RejectionRecorder) GuardOption {
	return func(g *Guard) { g.recorder = r }
}

func NewGuard(verifier Verifier, opts ...GuardOption) *Guard {
	g := &Guard{verifier: verifier, log: logger.Default().Named("guard")}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Authenticate is the first stage: verify the presented assertion.
func (g *Guard) Authenticate(header string) Decision {
	identity, authErr := g.verifier.Verify(header)
	if authErr != nil {
		return Decision{State: Rejected, Err: authErr}
	}
	return Decision{State: Authenticated, Identity: identity}
}

// Authorize is the second stage. It only acts on an Authenticated decision.
func Authorize(d Decision, ownerID string, mode policy.Mode) Decision {
	if d.State != Authenticated {
		if d.State == Rejected {
			return d
		}
		return Decision{State: Rejected, Err: apperrors.NewAuthError(apperrors.Missing, apperrors.ErrMissing.Message)}
	}
	if authErr := policy.Authorize(d.Identity, ownerID, mode); authErr != nil {
		return Decision{State: Rejected, Identity: d.Identity, Err: authErr}
	}
	return Decision{State: Authorized, Identity: d.Identity}
}

// Authenticated lets any verified identity through.
func (g *Guard) Authenticated() gin.HandlerFunc {
	return g.Require(policy.Authenticated, nil)
}

// SelfOrAdmin lets through the owner reported by owner, or any admin.
func (g *Guard) SelfOrAdmin(owner OwnerResolver) gin.HandlerFunc {
	return g.Require(policy.SelfOrAdmin, owner)
}

// AdminOnly lets through admins only.
func (g *Guard) AdminOnly() gin.HandlerFunc {
	return g.Require(policy.AdminOnly, nil)
}

// Require runs the full chain for mode. Only an Authorized decision reaches the next handler.
func (g *Guard) Require(mode policy.Mode, owner OwnerResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		d := g.Authenticate(AssertionHeader(c.Request))
		if d.State == Rejected {
			g.reject(c, d)
			return
		}

		var ownerID string
		if mode.NeedsOwner() && owner != nil {
			id, err := owner(c)
			if err != nil {
				g.ownerLookupFailed(c, err)
				return
			}
			ownerID = id
		}

		d = Authorize(d, ownerID, mode)
		if d.State != Authorized {
			g.reject(c, d)
			return
		}

		SetIdentity(c, d.Identity)
		c.Next()
	}
}

// OwnerFromParam resolves the owner directly from a path parameter, e.g. /users/:id.
func OwnerFromParam(name string) OwnerResolver {
	return func(c *gin.Context) (string, error) {
		id := strings.TrimSpace(c.Param(name))
		if id == "" {
			return "", apperrors.ErrInvalidID
		}
		return id, nil
	}
}

// AssertionHeader returns the raw assertion header, preferring TokenHeader.
func AssertionHeader(r *http.Request) string {
	if v := r.Header.Get(TokenHeader); v != "" {
		return v
	}
	return r.Header.Get(AuthorizationHeader)
}

func (g *Guard) reject(c *gin.Context, d Decision) {
	if g.recorder != nil {
		g.recorder.RecordRejection(d.Err.Kind)
	}
	g.log.Warn("%s %s rejected: %v", c.Request.Method, c.Request.URL.Path, d.Err)
	response.AuthFailure(c, d.Err)
	c.Abort()
}

func (g *Guard) ownerLookupFailed(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		response.NotFound(c, "Resource not found", "NOT_FOUND")
	case errors.Is(err, apperrors.ErrInvalidID):
		response.BadRequest(c, "Invalid id", "INVALID_ID")
	default:
		g.log.Error("owner lookup for %s failed: %v", c.Request.URL.Path, err)
		response.DatabaseError(c, "Failed to load resource")
	}
	c.Abort()
}
