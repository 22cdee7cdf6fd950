// Package conversation implements the chat entry point. It owns session
// state transitions around each workflow turn: merging extracted fields,
// capturing authentication, and resetting the session after a completed
// operation.
package conversation

import (
	"github.com/stewardhq/steward/internal/sessions"
	"github.com/stewardhq/steward/internal/workflow"
)

// ChatCommand is one user message addressed to a session. A missing
// SessionID starts a new session.
type ChatCommand struct {
	SessionID  string `json:"session_id,omitempty"`
	EmployeeID string `json:"employee_id,omitempty"`
	Input      string `json:"input"`
}

// TurnResult is the full response to one chat turn.
type TurnResult struct {
	SessionID string              `json:"session_id"`
	Reasoning *workflow.Reasoning `json:"reasoning"`
	Outcome   *workflow.Outcome   `json:"outcome"`
	Stage     sessions.Stage      `json:"stage"`
}
