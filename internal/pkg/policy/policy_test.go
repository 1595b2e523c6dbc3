package policy

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xyz-asif/storefront/internal/pkg/token"
	apperrors "github.com/xyz-asif/storefront/pkg/errors"
)

func TestAuthorize(t *testing.T) {
	alice := token.Identity{SubjectID: "alice"}
	admin := token.Identity{SubjectID: "root", IsAdmin: true}

	tests := []struct {
		name     string
		identity token.Identity
		owner    string
		mode     Mode
		allowed  bool
	}{
		{"authenticated any owner", alice, "bob", Authenticated, true},
		{"self access", alice, "alice", SelfOrAdmin, true},
		{"other owner", alice, "bob", SelfOrAdmin, false},
		{"empty owner", alice, "", SelfOrAdmin, false},
		{"empty subject does not match empty owner", token.Identity{}, "", SelfOrAdmin, false},
		{"admin on other owner", admin, "bob", SelfOrAdmin, true},
		{"admin without owner", admin, "", SelfOrAdmin, true},
		{"admin only as admin", admin, "", AdminOnly, true},
		{"admin only as owner", alice, "alice", AdminOnly, false},
		{"unknown mode", admin, "", Mode(99), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Authorize(tc.identity, tc.owner, tc.mode)
			if tc.allowed {
				require.Nil(t, err)
				return
			}
			require.NotNil(t, err)
			require.Equal(t, apperrors.Forbidden, err.Kind)
			require.Equal(t, 403, err.StatusCode())
		})
	}
}

func TestModeNeedsOwner(t *testing.T) {
	require.True(t, SelfOrAdmin.NeedsOwner())
	require.False(t, AdminOnly.NeedsOwner())
	require.False(t, Authenticated.NeedsOwner())
	require.Equal(t, "admin-only", AdminOnly.String())
}
