package ids

import (
	mathrand "math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(mathrand.New(mathrand.NewSource(time.Now().UnixNano())), 0)
)

// NewReference returns a lexicographically sortable identifier, used as a human-facing order
// reference alongside the document id.
func NewReference() string {
	return NewReferenceAt(time.Now())
}

// NewReferenceAt is NewReference with an explicit timestamp.
func NewReferenceAt(t time.Time) string {
	entropyMu.Lock()
	defer entropyMu.Unlock()
	return ulid.MustNew(ulid.Timestamp(t), entropy).String()
}

// IsReference reports whether s parses as a reference produced by NewReference.
func IsReference(s string) bool {
	_, err := ulid.ParseStrict(s)
	return err == nil
}
