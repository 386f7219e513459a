package apperror

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Kind
	}{
		{"Validation", Validation("bad input"), KindValidation},
		{"WrappedNotFound", fmt.Errorf("load: %w", NotFound("order not found")), KindNotFound},
		{"PlainError", errors.New("boom"), KindDependency},
		{"Wrap", Wrap(KindConflict, "duplicate", sql.ErrNoRows), KindConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, KindOf(tt.err))
		})
	}
}

func TestIs(t *testing.T) {
	notFound := NotFound("address not found")

	assert.True(t, errors.Is(notFound, ErrNotFound))
	assert.True(t, errors.Is(fmt.Errorf("ctx: %w", notFound), notFound))
	assert.False(t, errors.Is(notFound, ErrValidation))
	assert.False(t, errors.Is(notFound, NotFound("order not found")))

	wrapped := Wrap(KindDependency, "query failed", sql.ErrConnDone)
	assert.True(t, errors.Is(wrapped, sql.ErrConnDone))
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(Validation("x")))
	assert.Equal(t, http.StatusUnauthorized, HTTPStatus(Auth("x")))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(NotFound("x")))
	assert.Equal(t, http.StatusConflict, HTTPStatus(Conflict("x")))
	assert.Equal(t, http.StatusUnprocessableEntity, HTTPStatus(Coupon("x")))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("db down")))
}

func TestPublicMessage(t *testing.T) {
	assert.Equal(t, "order not found", PublicMessage(NotFound("order not found")))
	assert.Equal(t, "internal server error", PublicMessage(errors.New("pq: connection refused")))
}
