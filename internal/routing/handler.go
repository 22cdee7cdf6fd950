package routing

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/stewardhq/steward/internal/schema"
	"github.com/stewardhq/steward/pkg/handlers"
	"github.com/stewardhq/steward/pkg/routes"
)

// Handler provides read-only HTTP endpoints for the collection catalog.
type Handler struct {
	router *Router
	logger *slog.Logger
}

// NewHandler creates a Handler backed by the given router.
func NewHandler(router *Router, logger *slog.Logger) *Handler {
	return &Handler{
		router: router,
		logger: logger.With("handler", "collections"),
	}
}

// Routes returns the route group definition for collection catalog endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/collections",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List},
			{Method: "GET", Pattern: "/suggest", Handler: h.Suggest},
			{Method: "GET", Pattern: "/{name}", Handler: h.Find},
		},
	}
}

// List returns summary information for every collection in catalog order.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	collections := h.router.registry.Collections()
	infos := make([]Suggestion, 0, len(collections))
	for i := range collections {
		info, err := h.router.Info(collections[i].Name)
		if err != nil {
			handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
			return
		}
		infos = append(infos, *info)
	}

	handlers.RespondJSON(w, http.StatusOK, infos)
}

// Find returns detailed information for one collection by name.
func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	info, err := h.router.Info(r.PathValue("name"))
	if err != nil {
		handlers.RespondError(w, h.logger, schema.MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, info)
}

// Suggest returns collection suggestions for a partial input supplied via
// the q query parameter; limit controls how many are returned.
func (h *Handler) Suggest(w http.ResponseWriter, r *http.Request) {
	limit := 5
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	suggestions := h.router.Suggest(r.Context(), r.URL.Query().Get("q"), limit)
	handlers.RespondJSON(w, http.StatusOK, suggestions)
}
