package schema

import (
	"errors"
	"net/http"
)

// Domain errors for schema lookups.
var (
	ErrNotFound            = errors.New("collection not found")
	ErrDuplicateCollection = errors.New("duplicate collection definition")
	ErrFieldOverlap        = errors.New("field declared both required and optional")
)

// MapHTTPStatus maps schema domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
