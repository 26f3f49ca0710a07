// Package shortid generates candidate ids for short links.
package shortid

import (
	"encoding/base64"
	"math/rand"
	"strconv"
)

// New returns a compact, URL-safe candidate id: a random number across the
// full uint32 range, formatted as decimal and base64-encoded without padding.
// Uniqueness is NOT guaranteed here; the links primary key enforces it, and
// the create handler retries on collision.
func New() string {
	n := rand.Uint32()
	return base64.RawURLEncoding.EncodeToString([]byte(strconv.FormatUint(uint64(n), 10)))
}
