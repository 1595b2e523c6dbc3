// ================== internal/pkg/token/token.go ==================
package token

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	apperrors "github.com/xyz-asif/storefront/pkg/errors"
)

const (
	Issuer     = "storefront-api"
	DefaultTTL = 72 * time.Hour
)

// Identity is the verified claim carried by a request once its assertion checks out.
type Identity struct {
	SubjectID string
	IsAdmin   bool
	TokenID   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Claims is the signed payload. "id" and "isAdmin" keep the field names existing clients decode.
type Claims struct {
	UserID  string `json:"id"`
	IsAdmin bool   `json:"isAdmin"`
	jwt.RegisteredClaims
}

// Manager issues and verifies access tokens with a single symmetric key.
type Manager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

type Option func(*Manager)

// WithClock overrides the time source. Tests use it to move across the expiry boundary.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

func NewManager(secret string, ttl time.Duration, opts ...Option) (*Manager, error) {
	if secret == "" {
		return nil, errors.New("token secret is required")
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	m := &Manager{secret: []byte(secret), ttl: ttl, now: time.Now}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Issue signs a token for the given subject. Expiry is issued-at plus the manager's TTL.
func (m *Manager) Issue(subjectID string, isAdmin bool) (string, error) {
	subjectID = strings.TrimSpace(subjectID)
	if subjectID == "" {
		return "", errors.New("subject id is required")
	}

	now := m.now().UTC()
	claims := &Claims{
		UserID:  subjectID,
		IsAdmin: isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    Issuer,
			Subject:   subjectID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify checks a raw header value of the form "<scheme> <token>" and returns the identity it
// asserts. Only the second field is used.
func (m *Manager) Verify(header string) (Identity, *apperrors.AuthError) {
	tokenString, authErr := ExtractToken(header)
	if authErr != nil {
		return Identity{}, authErr
	}
	return m.VerifyToken(tokenString)
}

// VerifyToken checks an already extracted token string.
func (m *Manager) VerifyToken(tokenString string) (Identity, *apperrors.AuthError) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(Issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)

	parsed, err := parser.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	})
	if err != nil {
		return Identity{}, classify(err)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return Identity{}, apperrors.NewAuthError(apperrors.Invalid, apperrors.ErrInvalid.Message)
	}

	subject := claims.Subject
	if subject == "" {
		subject = claims.UserID
	}
	if subject == "" || (claims.UserID != "" && claims.UserID != subject) {
		return Identity{}, apperrors.NewAuthError(apperrors.Invalid, apperrors.ErrInvalid.Message).
			WithCause(errors.New("subject missing or inconsistent"))
	}

	identity := Identity{
		SubjectID: subject,
		IsAdmin:   claims.IsAdmin,
		TokenID:   claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}
	if claims.IssuedAt != nil {
		identity.IssuedAt = claims.IssuedAt.Time
	}
	return identity, nil
}

// ExtractToken splits "<scheme> <token>" and returns the token.
func ExtractToken(header string) (string, *apperrors.AuthError) {
	if strings.TrimSpace(header) == "" {
		return "", apperrors.NewAuthError(apperrors.Missing, apperrors.ErrMissing.Message)
	}
	fields := strings.Fields(header)
	if len(fields) != 2 {
		return "", apperrors.NewAuthError(apperrors.Malformed, apperrors.ErrMalformed.Message).
			WithCause(fmt.Errorf("expected 2 header fields, got %d", len(fields)))
	}
	return fields[1], nil
}

// classify maps jwt parse errors onto the auth taxonomy. The parser checks the signature before
// the time claims, so a wrongly signed expired token comes back as Invalid.
func classify(err error) *apperrors.AuthError {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return apperrors.NewAuthError(apperrors.Malformed, apperrors.ErrMalformed.Message).WithCause(err)
	case errors.Is(err, jwt.ErrTokenExpired):
		return apperrors.NewAuthError(apperrors.Expired, apperrors.ErrExpired.Message).WithCause(err)
	default:
		return apperrors.NewAuthError(apperrors.Invalid, apperrors.ErrInvalid.Message).WithCause(err)
	}
}
