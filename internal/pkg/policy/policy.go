// Package policy decides whether a verified identity may act on a resource.
package policy

import (
	"github.com/xyz-asif/storefront/internal/pkg/token"
	apperrors "github.com/xyz-asif/storefront/pkg/errors"
)

// Mode selects the rule a route is guarded by.
type Mode int

const (
	// Authenticated permits any verified identity.
	Authenticated Mode = iota
	// SelfOrAdmin permits the resource owner or any admin.
	SelfOrAdmin
	// AdminOnly permits admins only.
	AdminOnly
)

func (m Mode) String() string {
	switch m {
	case Authenticated:
		return "authenticated"
	case SelfOrAdmin:
		return "self-or-admin"
	case AdminOnly:
		return "admin-only"
	default:
		return "unknown"
	}
}

// NeedsOwner reports whether the mode compares against a resource owner id.
func (m Mode) NeedsOwner() bool {
	return m == SelfOrAdmin
}

// Authorize applies mode to an identity that has already been verified. ownerID is ignored
// unless mode is SelfOrAdmin.
func Authorize(identity token.Identity, ownerID string, mode Mode) *apperrors.AuthError {
	switch mode {
	case Authenticated:
		return nil
	case SelfOrAdmin:
		if identity.IsAdmin {
			return nil
		}
		if ownerID != "" && identity.SubjectID == ownerID {
			return nil
		}
	case AdminOnly:
		if identity.IsAdmin {
			return nil
		}
	}
	return apperrors.NewAuthError(apperrors.Forbidden, apperrors.ErrForbidden.Message)
}
