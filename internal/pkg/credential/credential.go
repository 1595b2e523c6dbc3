// Package credential turns plaintext passwords into stored forms and checks them.
//
// The stored form is bcrypt(base64(HMAC-SHA256(key, secret))). bcrypt supplies the salt and the
// work factor; the HMAC step binds the record to the server-held key and keeps inputs under
// bcrypt's 72-byte limit.
package credential

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmptySecret = errors.New("credential: secret is empty")
	ErrEmptyKey    = errors.New("credential: key is empty")
)

// Codec protects and checks secrets with a fixed key and bcrypt cost.
type Codec struct {
	key  []byte
	cost int

	// dummy is a valid stored form used to spend the same time on unknown principals.
	dummy []byte
}

// NewCodec builds a Codec. A cost outside bcrypt's range falls back to bcrypt.DefaultCost.
func NewCodec(key string, cost int) (*Codec, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	c := &Codec{key: []byte(key), cost: cost}

	dummy, err := bcrypt.GenerateFromPassword(c.pepper("dummy-credential"), cost)
	if err != nil {
		return nil, err
	}
	c.dummy = dummy
	return c, nil
}

// Protect derives the stored form of secret.
func (c *Codec) Protect(secret string) (string, error) {
	if secret == "" {
		return "", ErrEmptySecret
	}
	hash, err := bcrypt.GenerateFromPassword(c.pepper(secret), c.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Check reports whether secret matches stored. Any mismatch or malformed stored form yields false.
func (c *Codec) Check(secret, stored string) bool {
	if stored == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(stored), c.pepper(secret)) == nil
}

// DummyCheck performs a comparison that always fails, taking as long as a real Check.
func (c *Codec) DummyCheck(secret string) {
	_ = bcrypt.CompareHashAndPassword(c.dummy, c.pepper(secret+"\x00"))
}

func (c *Codec) pepper(secret string) []byte {
	mac := hmac.New(sha256.New, c.key)
	mac.Write([]byte(secret))
	sum := mac.Sum(nil)

	out := make([]byte, base64.RawStdEncoding.EncodedLen(len(sum)))
	base64.RawStdEncoding.Encode(out, sum)
	return out
}

// Protect is the functional form of Codec.Protect with the default cost.
func Protect(secret, key string) (string, error) {
	c, err := newUncheckedCodec(key)
	if err != nil {
		return "", err
	}
	return c.Protect(secret)
}

// Check is the functional form of Codec.Check.
func Check(secret, stored, key string) bool {
	c, err := newUncheckedCodec(key)
	if err != nil {
		return false
	}
	return c.Check(secret, stored)
}

func newUncheckedCodec(key string) (*Codec, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}
	return &Codec{key: []byte(key), cost: bcrypt.DefaultCost}, nil
}
