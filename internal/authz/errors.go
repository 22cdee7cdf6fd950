package authz

import (
	"errors"
	"net/http"
)

var (
	ErrRoleCycle   = errors.New("role hierarchy contains a cycle")
	ErrUnknownRole = errors.New("unknown role in hierarchy")
	ErrNotFound    = errors.New("employee not found")
	ErrDenied      = errors.New("authorization denied")
)

func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDenied):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
