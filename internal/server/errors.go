package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/resumeforge/internal/generation"
	"github.com/jonathan/resumeforge/internal/results"
	"github.com/jonathan/resumeforge/internal/schemas"
)

// ErrInvalidBody indicates a request body that could not be decoded
type ErrInvalidBody struct {
	Message string
}

func (e *ErrInvalidBody) Error() string {
	return fmt.Sprintf("invalid request body: %s", e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		profileErr *generation.ValidationError
		schemaErr  *schemas.ValidationError
		bodyErr    *ErrInvalidBody
		tooLarge   *http.MaxBytesError
		genErr     *generation.GenerationError
	)

	switch {
	case errors.As(err, &profileErr), errors.As(err, &schemaErr), errors.As(err, &bodyErr):
		return http.StatusBadRequest
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, results.ErrNotFound):
		return http.StatusNotFound
	case errors.As(err, &genErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
