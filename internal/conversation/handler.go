package conversation

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/stewardhq/steward/pkg/handlers"
	"github.com/stewardhq/steward/pkg/routes"
)

// Handler provides the HTTP entry point for chat turns.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "conversation"),
	}
}

// Routes returns the route group definition for conversation endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/chat",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "", Handler: h.Chat},
		},
	}
}

// Chat processes one user message and returns the turn result.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	var cmd ChatCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	result, err := h.sys.Process(r.Context(), cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
