package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jonathan/resumeforge/internal/generation"
	"github.com/jonathan/resumeforge/internal/results"
	"github.com/jonathan/resumeforge/internal/schemas"
	"github.com/stretchr/testify/assert"
)

func TestErrInvalidBody(t *testing.T) {
	err := &ErrInvalidBody{Message: "unexpected EOF"}
	assert.Equal(t, "invalid request body: unexpected EOF", err.Error())
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"profile validation", &generation.ValidationError{Fields: []string{"name"}}, http.StatusBadRequest},
		{"schema validation", &schemas.ValidationError{}, http.StatusBadRequest},
		{"wrapped validation", fmt.Errorf("bind: %w", &generation.ValidationError{}), http.StatusBadRequest},
		{"body too large", &http.MaxBytesError{Limit: 10}, http.StatusRequestEntityTooLarge},
		{"not found", results.ErrNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("download: %w", results.ErrNotFound), http.StatusNotFound},
		{"generation", &generation.GenerationError{}, http.StatusBadGateway},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}
