package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusMapping(t *testing.T) {
	assert.Equal(t, http.StatusConflict, InvalidInput("url malformed").Status())
	assert.Equal(t, http.StatusUnauthorized, Unauthorized("Unauthorized").Status())
	assert.Equal(t, http.StatusNotFound, NotFound("Not found").Status())
	assert.Equal(t, http.StatusInternalServerError, Exhausted("out of ids").Status())
	assert.Equal(t, http.StatusInternalServerError, Internal(errors.New("boom")).Status())
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindConflict, KindOf(Conflict(errors.New("duplicate key"))))
	assert.Equal(t, KindNotFound, KindOf(fmt.Errorf("wrapped: %w", NotFound("Not found"))))
	assert.Equal(t, KindInternal, KindOf(errors.New("plain")))
}

func TestInternalHidesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Internal(cause)
	assert.Equal(t, "Internal server error", err.Message)
	assert.ErrorIs(t, err, cause)
}
