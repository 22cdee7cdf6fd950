package authz

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/stewardhq/steward/pkg/handlers"
	"github.com/stewardhq/steward/pkg/routes"
)

// Handler provides HTTP endpoints for authentication and access checks.
type Handler struct {
	engine *Engine
	logger *slog.Logger
}

func NewHandler(engine *Engine, logger *slog.Logger) *Handler {
	return &Handler{
		engine: engine,
		logger: logger.With("handler", "authz"),
	}
}

// AuthenticateRequest identifies the employee to authenticate.
type AuthenticateRequest struct {
	EmployeeID string `json:"employee_id"`
}

// CheckRequest describes a collection access question.
type CheckRequest struct {
	EmployeeID string `json:"employee_id"`
	Collection string `json:"collection"`
	Operation  string `json:"operation"`
}

func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/authz",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "/authenticate", Handler: h.Authenticate},
			{Method: "POST", Pattern: "/check", Handler: h.Check},
			{Method: "GET", Pattern: "/{employeeId}/summary", Handler: h.Summary},
		},
	}
}

// Authenticate resolves an employee into a profile with roles and permissions.
func (h *Handler) Authenticate(w http.ResponseWriter, r *http.Request) {
	var req AuthenticateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	profile, err := h.engine.Authenticate(r.Context(), req.EmployeeID)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, profile)
}

// Check evaluates a single collection access question and returns the
// decision either way.
func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	var req CheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}
	if req.Operation == "" {
		req.Operation = "write"
	}

	profile, err := h.engine.Authenticate(r.Context(), req.EmployeeID)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, h.engine.Authorize(profile, req.Collection, req.Operation))
}

// Summary reports the employee's reach across all collections.
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	employeeID := r.PathValue("employeeId")

	profile, err := h.engine.Authenticate(r.Context(), employeeID)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, h.engine.Summarize(profile))
}
