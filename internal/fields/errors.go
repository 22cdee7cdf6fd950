package fields

import (
	"errors"
	"net/http"

	"github.com/stewardhq/steward/internal/schema"
)

var ErrUnknownCollection = errors.New("unknown collection")

func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrUnknownCollection), errors.Is(err, schema.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
