package domain

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	e := NewAppError(CodeValidation, "bad input", nil)
	if e.Error() != "bad input" {
		t.Errorf("Error()=%q; want 'bad input'", e.Error())
	}

	wrapped := NewAppError(CodeInternal, "database error", errors.New("disk full"))
	if wrapped.Error() != "database error: disk full" {
		t.Errorf("Error()=%q", wrapped.Error())
	}
}

func TestErrorHelpers(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
		want  bool
	}{
		{"sentinel not found", ErrNotFound, IsNotFound, true},
		{"constructed not found", NewAppError(CodeNotFound, "blog not found", nil), IsNotFound, true},
		{"wrapped not found", fmt.Errorf("lookup: %w", ErrNotFound), IsNotFound, true},
		{"different code", ErrValidation, IsNotFound, false},
		{"plain error", errors.New("boom"), IsNotFound, false},
		{"nil", nil, IsNotFound, false},
		{"unauthorized", ErrUnauthorized, IsUnauthorized, true},
		{"already exists", ErrAlreadyExists, IsAlreadyExists, true},
		{"validation", ErrValidation, IsValidation, true},
		{"internal", ErrInternal, IsInternal, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.check(tt.err); got != tt.want {
				t.Errorf("got %v; want %v", got, tt.want)
			}
		})
	}
}

func TestHTTPStatusCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{ErrNotFound, http.StatusNotFound},
		{ErrAlreadyExists, http.StatusConflict},
		{ErrValidation, http.StatusBadRequest},
		{ErrUnauthorized, http.StatusUnauthorized},
		{ErrInternal, http.StatusInternalServerError},
		{fmt.Errorf("wrap: %w", ErrNotFound), http.StatusNotFound},
		{errors.New("plain"), http.StatusInternalServerError},
		{nil, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := HTTPStatusCode(tt.err); got != tt.want {
			t.Errorf("HTTPStatusCode(%v)=%d; want %d", tt.err, got, tt.want)
		}
	}
}
