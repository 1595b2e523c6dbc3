package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsValidEmail(t *testing.T) {
	require.True(t, IsValidEmail("alice@example.com"))
	require.False(t, IsValidEmail("alice@"))
	require.False(t, IsValidEmail("  "))
}

func TestIsValidUsername(t *testing.T) {
	require.True(t, IsValidUsername("alice_01"))
	require.False(t, IsValidUsername("al"))
	require.False(t, IsValidUsername("alice smith"))
}

func TestIsAcceptablePassword(t *testing.T) {
	require.False(t, IsAcceptablePassword("12345"))
	require.True(t, IsAcceptablePassword("123456"))
	require.True(t, IsAcceptablePassword("пароль"))
	require.False(t, IsAcceptablePassword(strings.Repeat("x", MaxPasswordLength+1)))
}

func TestNormalizeEmail(t *testing.T) {
	require.Equal(t, "alice@example.com", NormalizeEmail("  Alice@Example.COM "))
}
