package shortid

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var urlSafe = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

func TestNewProducesURLSafeIDs(t *testing.T) {
	for i := 0; i < 100; i++ {
		id := New()
		assert.NotEmpty(t, id)
		assert.Regexp(t, urlSafe, id)
		assert.False(t, strings.Contains(id, "="), "id must be padding-free")
	}
}

func TestNewVaries(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		seen[New()] = true
	}
	assert.Greater(t, len(seen), 1)
}
