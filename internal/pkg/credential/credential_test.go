package credential

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestCodec(t *testing.T, key string) *Codec {
	t.Helper()
	c, err := NewCodec(key, bcrypt.MinCost)
	require.NoError(t, err)
	return c
}

func TestProtectThenCheck(t *testing.T) {
	c := newTestCodec(t, "pepper")

	for _, secret := range []string{"hunter2", "pässwörd", strings.Repeat("x", 200)} {
		stored, err := c.Protect(secret)
		require.NoError(t, err)
		require.NotContains(t, stored, secret)
		require.True(t, c.Check(secret, stored), secret)
		require.False(t, c.Check(secret+"!", stored), secret)
	}
}

func TestProtectIsSalted(t *testing.T) {
	c := newTestCodec(t, "pepper")

	a, err := c.Protect("same")
	require.NoError(t, err)
	b, err := c.Protect("same")
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestLongSecretsAreNotTruncated(t *testing.T) {
	c := newTestCodec(t, "pepper")
	prefix := strings.Repeat("a", 80)

	stored, err := c.Protect(prefix + "1")
	require.NoError(t, err)
	require.False(t, c.Check(prefix+"2", stored))
}

func TestCheckWithDifferentKeyFails(t *testing.T) {
	stored, err := newTestCodec(t, "key-one").Protect("secret")
	require.NoError(t, err)

	require.False(t, newTestCodec(t, "key-two").Check("secret", stored))
}

func TestCheckMalformedStoredForm(t *testing.T) {
	c := newTestCodec(t, "pepper")

	require.False(t, c.Check("secret", ""))
	require.False(t, c.Check("secret", "not-a-bcrypt-hash"))
	require.NotPanics(t, func() { c.DummyCheck("secret") })
}

func TestProtectRejectsEmptyInput(t *testing.T) {
	c := newTestCodec(t, "pepper")

	_, err := c.Protect("")
	require.ErrorIs(t, err, ErrEmptySecret)

	_, err = NewCodec("", bcrypt.MinCost)
	require.ErrorIs(t, err, ErrEmptyKey)
}

func TestFunctionalForm(t *testing.T) {
	stored, err := Protect("secret", "key")
	require.NoError(t, err)
	require.True(t, Check("secret", stored, "key"))
	require.False(t, Check("other", stored, "key"))
	require.False(t, Check("secret", stored, ""))
}
