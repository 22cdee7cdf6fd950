package sessions

import (
	"log/slog"
	"net/http"

	"github.com/stewardhq/steward/pkg/handlers"
	"github.com/stewardhq/steward/pkg/routes"
)

// Handler provides HTTP endpoints for session inspection.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "sessions"),
	}
}

// Routes returns the route group definition for session endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/sessions",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/{id}", Handler: h.Find},
			{Method: "GET", Pattern: "/{id}/summary", Handler: h.Summary},
			{Method: "GET", Pattern: "/{id}/events", Handler: h.Events},
			{Method: "DELETE", Pattern: "/{id}", Handler: h.End},
		},
	}
}

// Find returns a snapshot of a live session.
func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	s, err := h.sys.Snapshot(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, s)
}

// Summary returns session metadata without full state.
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	s, err := h.sys.Summarize(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, s)
}

// Events returns the durable event trail for a session, live or not.
func (h *Handler) Events(w http.ResponseWriter, r *http.Request) {
	events, err := h.sys.Events(r.Context(), r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, events)
}

// End removes a live session.
func (h *Handler) End(w http.ResponseWriter, r *http.Request) {
	if err := h.sys.End(r.Context(), r.PathValue("id")); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
