package sessions

import (
	"context"

	"github.com/stewardhq/steward/pkg/lifecycle"
)

// System defines the public contract for session state operations.
type System interface {
	Handler() *Handler

	// Start launches the expiry sweeper under lifecycle coordination.
	Start(lc *lifecycle.Coordinator)

	// Update runs fn against the session for id, creating it if absent.
	// Calls for the same session are serialized; fn must not retain the
	// session beyond its return.
	Update(ctx context.Context, id string, fn func(s *Session) error) error

	Snapshot(id string) (*Session, error)
	Summarize(id string) (*Summary, error)
	End(ctx context.Context, id string) error
	Active() int

	RecordEvent(ctx context.Context, sessionID, kind string, payload map[string]any) error
	Events(ctx context.Context, sessionID string) ([]Event, error)
}
