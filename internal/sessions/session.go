// Package sessions manages conversation session state. Live sessions are
// held in a TTL store in memory; a durable event trail per session is kept
// in PostgreSQL for history and auditing.
package sessions

import "time"

// Stage tracks where a session is in the collection flow.
type Stage string

const (
	StageInitial        Stage = "initial"
	StageCollecting     Stage = "collecting"
	StageValidating     Stage = "validating"
	StageAuthenticating Stage = "authenticating"
	StageExecuting      Stage = "executing"
)

// Session is the mutable state of one conversation. Mutations must go
// through Store.Update so turns on the same session are serialized.
type Session struct {
	ID            string            `json:"id"`
	EmployeeID    string            `json:"employee_id,omitempty"`
	Authenticated bool              `json:"authenticated"`
	Stage         Stage             `json:"stage"`
	Collection    string            `json:"collection,omitempty"`
	Collected     map[string]string `json:"collected,omitempty"`
	Missing       []string          `json:"missing,omitempty"`
	History       []Turn            `json:"history,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	LastActivity  time.Time         `json:"last_activity"`
}

// Turn is one exchange entry in the session history.
type Turn struct {
	Role    string    `json:"role"`
	Content string    `json:"content"`
	At      time.Time `json:"at"`
}

// Reset clears collection progress after a completed operation, keeping
// identity and history.
func (s *Session) Reset() {
	s.Stage = StageInitial
	s.Collection = ""
	s.Collected = nil
	s.Missing = nil
}

// AddTurn appends to the history, keeping at most historyLimit entries.
func (s *Session) AddTurn(role, content string) {
	s.History = append(s.History, Turn{Role: role, Content: content, At: time.Now()})
	if len(s.History) > historyLimit {
		s.History = s.History[len(s.History)-historyLimit:]
	}
}

const historyLimit = 20

// Event is one durable entry in a session's event trail.
type Event struct {
	ID        int64          `json:"id"`
	SessionID string         `json:"session_id"`
	Kind      string         `json:"kind"`
	Payload   map[string]any `json:"payload,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// Summary reports a session's shape without its full state.
type Summary struct {
	ID            string    `json:"id"`
	EmployeeID    string    `json:"employee_id,omitempty"`
	Authenticated bool      `json:"authenticated"`
	Stage         Stage     `json:"stage"`
	Collection    string    `json:"collection,omitempty"`
	Collected     int       `json:"collected_fields"`
	Turns         int       `json:"turns"`
	CreatedAt     time.Time `json:"created_at"`
	LastActivity  time.Time `json:"last_activity"`
	Duration      string    `json:"duration"`
}
