package apperr

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{name: "direct match", err: NewNotFound("entry"), code: CodeNotFound, want: true},
		{name: "wrapped match", err: fmt.Errorf("ctx: %w", NewValidation("bad")), code: CodeValidation, want: true},
		{name: "other code", err: NewNotFound("entry"), code: CodeValidation, want: false},
		{name: "plain error", err: errors.New("boom"), code: CodeNotFound, want: false},
		{name: "nil", err: nil, code: CodeNotFound, want: false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Is(tt.err, tt.code))
		})
	}
}

func TestStatusOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, http.StatusBadRequest, StatusOf(NewValidation("x")))
	assert.Equal(t, http.StatusUnauthorized, StatusOf(NewUnauthorized("x")))
	assert.Equal(t, http.StatusNotFound, StatusOf(NewNotFound("entry")))
	assert.Equal(t, http.StatusConflict, StatusOf(NewConflict("x")))
	assert.Equal(t, http.StatusServiceUnavailable, StatusOf(NewGenerationUnavailable("x")))
	assert.Equal(t, http.StatusInternalServerError, StatusOf(NewPersistence(errors.New("db down"))))
	assert.Equal(t, http.StatusInternalServerError, StatusOf(errors.New("boom")))
}

func TestPersistenceHidesCause(t *testing.T) {
	t.Parallel()

	cause := errors.New("dial tcp: refused")
	err := NewPersistence(cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "refused")
	assert.Equal(t, "internal error", MessageOf(err))
	assert.Equal(t, "entry not found", MessageOf(NewNotFound("entry")))
	assert.Equal(t, CodeGenerationUnavailable, CodeOf(NewGenerationUnavailable("later")))
	assert.Equal(t, CodePersistence, CodeOf(errors.New("boom")))
}

func TestNewCanceled(t *testing.T) {
	t.Parallel()

	err := NewCanceled(context.DeadlineExceeded)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, CodeGenerationUnavailable, CodeOf(err))
	assert.Equal(t, http.StatusServiceUnavailable, StatusOf(err))
	assert.Equal(t, "request canceled before generation finished", MessageOf(err))
}
