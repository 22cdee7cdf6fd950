package fields

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/stewardhq/steward/pkg/handlers"
	"github.com/stewardhq/steward/pkg/routes"
)

// Handler exposes field extraction and validation over HTTP.
type Handler struct {
	processor *Processor
	logger    *slog.Logger
}

// NewHandler creates a Handler backed by the given processor.
func NewHandler(processor *Processor, logger *slog.Logger) *Handler {
	return &Handler{
		processor: processor,
		logger:    logger.With("handler", "fields"),
	}
}

// ProcessRequest is the payload for a field processing call.
type ProcessRequest struct {
	Collection string            `json:"collection"`
	Input      string            `json:"input"`
	Existing   map[string]string `json:"existing,omitempty"`
}

// Routes returns the route group definition for field processing endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/fields",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "/process", Handler: h.Process},
		},
	}
}

// Process extracts and validates fields from free text against a collection.
func (h *Handler) Process(w http.ResponseWriter, r *http.Request) {
	var req ProcessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	result, err := h.processor.Process(req.Collection, req.Input, req.Existing)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
