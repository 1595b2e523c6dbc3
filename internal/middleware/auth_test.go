package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/xyz-asif/storefront/internal/pkg/policy"
	"github.com/xyz-asif/storefront/internal/pkg/token"
	apperrors "github.com/xyz-asif/storefront/pkg/errors"
)

const testSecret = "guard-test-secret"

type guardFixture struct {
	now     time.Time
	manager *token.Manager
	metrics *Metrics
	router  *gin.Engine
}

func newGuardFixture(t *testing.T) *guardFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	f := &guardFixture{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	m, err := token.NewManager(testSecret, token.DefaultTTL, token.WithClock(func() time.Time { return f.now }))
	require.NoError(t, err)
	f.manager = m
	f.metrics = NewMetrics(prometheus.NewRegistry())

	guard := NewGuard(m, WithRejectionRecorder(f.metrics))
	carts := map[string]string{"cart-1": "U1"}
	cartOwner := func(c *gin.Context) (string, error) {
		if c.Param("id") == "broken" {
			return "", errors.New("connection reset")
		}
		owner, ok := carts[c.Param("id")]
		if !ok {
			return "", apperrors.ErrNotFound
		}
		return owner, nil
	}

	ok := func(c *gin.Context) {
		identity, _ := CurrentIdentity(c)
		c.JSON(http.StatusOK, gin.H{"subject": identity.SubjectID, "userID": c.GetString("userID")})
	}

	r := gin.New()
	r.POST("/orders", guard.Authenticated(), ok)
	r.PUT("/users/:id", guard.SelfOrAdmin(OwnerFromParam("id")), ok)
	r.PUT("/carts/:id", guard.SelfOrAdmin(cartOwner), ok)
	r.GET("/users", guard.AdminOnly(), ok)
	f.router = r
	return f
}

func (f *guardFixture) issue(t *testing.T, subject string, admin bool) string {
	t.Helper()
	tok, err := f.manager.Issue(subject, admin)
	require.NoError(t, err)
	return tok
}

func (f *guardFixture) do(method, path, header, value string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	if header != "" {
		req.Header.Set(header, value)
	}
	f.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestGuard_NoHeader(t *testing.T) {
	f := newGuardFixture(t)

	w := f.do(http.MethodPost, "/orders", "", "")

	require.Equal(t, http.StatusUnauthorized, w.Code)
	body := decodeBody(t, w)
	require.Equal(t, "You are not authenticated!", body["error"])
	require.Equal(t, "AUTH_REQUIRED", body["code"])
	require.Equal(t, float64(1), testutil.ToFloat64(f.metrics.authRejections.WithLabelValues("missing")))
}

func TestGuard_MalformedHeader(t *testing.T) {
	f := newGuardFixture(t)

	for _, v := range []string{"Bearer", "Bearer a b"} {
		w := f.do(http.MethodPost, "/orders", TokenHeader, v)
		require.Equal(t, http.StatusUnauthorized, w.Code, v)
		require.Equal(t, "AUTH_MALFORMED", decodeBody(t, w)["code"], v)
	}
}

func TestGuard_AuthenticatedAcceptsAnyVerifiedIdentity(t *testing.T) {
	f := newGuardFixture(t)
	tok := f.issue(t, "U1", false)

	w := f.do(http.MethodPost, "/orders", TokenHeader, "Bearer "+tok)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	require.Equal(t, "U1", body["subject"])
	require.Equal(t, "U1", body["userID"])
}

func TestGuard_FallsBackToAuthorizationHeader(t *testing.T) {
	f := newGuardFixture(t)
	tok := f.issue(t, "U1", false)

	w := f.do(http.MethodPost, "/orders", AuthorizationHeader, "Bearer "+tok)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestGuard_TokenHeaderWins(t *testing.T) {
	f := newGuardFixture(t)
	tok := f.issue(t, "U1", false)

	other, err := token.NewManager("some-other-secret", token.DefaultTTL, token.WithClock(func() time.Time { return f.now }))
	require.NoError(t, err)
	foreign, err := other.Issue("U1", false)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/orders", nil)
	req.Header.Set(TokenHeader, "Bearer "+foreign)
	req.Header.Set(AuthorizationHeader, "Bearer "+tok)
	f.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, "AUTH_INVALID_TOKEN", decodeBody(t, w)["code"])
	require.Equal(t, float64(1), testutil.ToFloat64(f.metrics.authRejections.WithLabelValues("invalid")))
}

func TestGuard_UnparsableTokenIsMalformed(t *testing.T) {
	f := newGuardFixture(t)

	w := f.do(http.MethodPost, "/orders", TokenHeader, "Bearer garbage")

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, "AUTH_MALFORMED", decodeBody(t, w)["code"])
}

func TestGuard_ExpiredToken(t *testing.T) {
	f := newGuardFixture(t)
	tok := f.issue(t, "U1", false)
	f.now = f.now.Add(4 * 24 * time.Hour)

	w := f.do(http.MethodPost, "/orders", TokenHeader, "Bearer "+tok)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, "AUTH_TOKEN_EXPIRED", decodeBody(t, w)["code"])
	require.Equal(t, float64(1), testutil.ToFloat64(f.metrics.authRejections.WithLabelValues("expired")))
}

func TestGuard_SelfOrAdminOnPath(t *testing.T) {
	f := newGuardFixture(t)
	user := f.issue(t, "U1", false)
	admin := f.issue(t, "A1", true)

	require.Equal(t, http.StatusOK, f.do(http.MethodPut, "/users/U1", TokenHeader, "Bearer "+user).Code)
	require.Equal(t, http.StatusOK, f.do(http.MethodPut, "/users/U2", TokenHeader, "Bearer "+admin).Code)

	w := f.do(http.MethodPut, "/users/U2", TokenHeader, "Bearer "+user)
	require.Equal(t, http.StatusForbidden, w.Code)
	body := decodeBody(t, w)
	require.Equal(t, "You are not allowed to do that!", body["error"])
	require.Equal(t, "FORBIDDEN", body["code"])
}

func TestGuard_SelfOrAdminOnLoadedResource(t *testing.T) {
	f := newGuardFixture(t)
	owner := f.issue(t, "U1", false)
	other := f.issue(t, "U2", false)

	require.Equal(t, http.StatusOK, f.do(http.MethodPut, "/carts/cart-1", TokenHeader, "Bearer "+owner).Code)
	require.Equal(t, http.StatusForbidden, f.do(http.MethodPut, "/carts/cart-1", TokenHeader, "Bearer "+other).Code)
	require.Equal(t, http.StatusNotFound, f.do(http.MethodPut, "/carts/missing", TokenHeader, "Bearer "+owner).Code)
	require.Equal(t, http.StatusInternalServerError, f.do(http.MethodPut, "/carts/broken", TokenHeader, "Bearer "+owner).Code)
}

func TestGuard_OwnerLookupRunsAfterAuthentication(t *testing.T) {
	f := newGuardFixture(t)

	w := f.do(http.MethodPut, "/carts/missing", "", "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGuard_AdminOnly(t *testing.T) {
	f := newGuardFixture(t)

	require.Equal(t, http.StatusOK, f.do(http.MethodGet, "/users", TokenHeader, "Bearer "+f.issue(t, "A1", true)).Code)
	require.Equal(t, http.StatusForbidden, f.do(http.MethodGet, "/users", TokenHeader, "Bearer "+f.issue(t, "U1", false)).Code)
	require.Equal(t, float64(1), testutil.ToFloat64(f.metrics.authRejections.WithLabelValues("forbidden")))
}

func TestAuthorizeStages(t *testing.T) {
	identity := token.Identity{SubjectID: "U1"}

	d := Authorize(Decision{State: Unauthenticated}, "U1", policy.Authenticated)
	require.Equal(t, Rejected, d.State)
	require.Equal(t, apperrors.Missing, d.Err.Kind)

	rejected := Decision{State: Rejected, Err: apperrors.NewAuthError(apperrors.Expired, "expired")}
	require.Equal(t, rejected, Authorize(rejected, "U1", policy.SelfOrAdmin))

	d = Authorize(Decision{State: Authenticated, Identity: identity}, "U1", policy.SelfOrAdmin)
	require.Equal(t, Authorized, d.State)
	require.Nil(t, d.Err)

	d = Authorize(Decision{State: Authenticated, Identity: identity}, "", policy.SelfOrAdmin)
	require.Equal(t, Rejected, d.State)
	require.Equal(t, apperrors.Forbidden, d.Err.Kind)
}
