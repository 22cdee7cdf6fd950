package directory

import (
	"errors"
	"net/http"
)

// Domain errors for directory operations.
var (
	ErrNotFound       = errors.New("employee not found")
	ErrDuplicate      = errors.New("employee already exists")
	ErrInvalidCommand = errors.New("invalid employee command")
)

// MapHTTPStatus maps directory domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrInvalidCommand) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
