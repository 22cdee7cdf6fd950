package sessions

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/stewardhq/steward/pkg/lifecycle"
	"github.com/stewardhq/steward/pkg/repository"
)

type manager struct {
	store  *store
	db     *sql.DB
	logger *slog.Logger
	sweep  time.Duration
}

// New creates a session manager implementing the System interface.
func New(cfg Config, db *sql.DB, logger *slog.Logger) System {
	return &manager{
		store:  newStore(cfg.TTLDuration()),
		db:     db,
		logger: logger.With("system", "sessions"),
		sweep:  cfg.SweepIntervalDuration(),
	}
}

func (m *manager) Handler() *Handler {
	return NewHandler(m, m.logger)
}

func (m *manager) Start(lc *lifecycle.Coordinator) {
	ctx := lc.Context()
	go func() {
		ticker := time.NewTicker(m.sweep)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if removed := m.store.sweep(); removed > 0 {
					m.logger.Debug("expired sessions removed", "count", removed)
				}
			}
		}
	}()
}

func (m *manager) Update(ctx context.Context, id string, fn func(s *Session) error) error {
	e := m.store.getOrCreate(id)

	e.mu.Lock()
	defer e.mu.Unlock()

	if err := fn(e.session); err != nil {
		return err
	}

	e.session.LastActivity = time.Now()
	m.store.touch(e)
	return nil
}

func (m *manager) Snapshot(id string) (*Session, error) {
	e, ok := m.store.get(id)
	if !ok {
		return nil, ErrNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	return cloneSession(e.session), nil
}

func (m *manager) Summarize(id string) (*Summary, error) {
	s, err := m.Snapshot(id)
	if err != nil {
		return nil, err
	}

	return &Summary{
		ID:            s.ID,
		EmployeeID:    s.EmployeeID,
		Authenticated: s.Authenticated,
		Stage:         s.Stage,
		Collection:    s.Collection,
		Collected:     len(s.Collected),
		Turns:         len(s.History),
		CreatedAt:     s.CreatedAt,
		LastActivity:  s.LastActivity,
		Duration:      s.LastActivity.Sub(s.CreatedAt).Round(time.Second).String(),
	}, nil
}

func (m *manager) End(ctx context.Context, id string) error {
	if _, ok := m.store.get(id); !ok {
		return ErrNotFound
	}

	m.store.remove(id)

	if err := m.RecordEvent(ctx, id, "session_ended", nil); err != nil {
		m.logger.Warn("session end event not recorded", "session_id", id, "error", err)
	}

	m.logger.Info("session ended", "session_id", id)
	return nil
}

func (m *manager) Active() int {
	return m.store.count()
}

func (m *manager) RecordEvent(ctx context.Context, sessionID, kind string, payload map[string]any) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal event payload: %w", err)
	}

	_, err = m.db.ExecContext(
		ctx,
		"INSERT INTO session_events(session_id, kind, payload) VALUES ($1, $2, $3)",
		sessionID, kind, payloadJSON,
	)
	if err != nil {
		return fmt.Errorf("insert session event: %w", err)
	}
	return nil
}

func (m *manager) Events(ctx context.Context, sessionID string) ([]Event, error) {
	q := `
		SELECT id, session_id, kind, payload, created_at
		FROM session_events
		WHERE session_id = $1
		ORDER BY id`

	events, err := repository.QueryMany(ctx, m.db, q, []any{sessionID}, scanEvent)
	if err != nil {
		return nil, fmt.Errorf("query session events: %w", err)
	}
	return events, nil
}

func scanEvent(s repository.Scanner) (Event, error) {
	var e Event
	var payloadRaw []byte

	if err := s.Scan(&e.ID, &e.SessionID, &e.Kind, &payloadRaw, &e.CreatedAt); err != nil {
		return e, err
	}

	if len(payloadRaw) > 0 {
		if err := json.Unmarshal(payloadRaw, &e.Payload); err != nil {
			return e, fmt.Errorf("unmarshal event payload: %w", err)
		}
	}

	return e, nil
}

func cloneSession(s *Session) *Session {
	c := *s
	if s.Collected != nil {
		c.Collected = make(map[string]string, len(s.Collected))
		for k, v := range s.Collected {
			c.Collected[k] = v
		}
	}
	c.Missing = append([]string(nil), s.Missing...)
	c.History = append([]Turn(nil), s.History...)
	return &c
}
