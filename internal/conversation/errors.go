package conversation

import (
	"errors"
	"net/http"

	"github.com/stewardhq/steward/internal/authz"
)

// Domain errors for conversation operations.
var (
	ErrEmptyInput = errors.New("input is empty")
)

// MapHTTPStatus maps conversation domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrEmptyInput) {
		return http.StatusBadRequest
	}
	if errors.Is(err, authz.ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
