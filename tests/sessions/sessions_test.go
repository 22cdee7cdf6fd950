package sessions_test

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stewardhq/steward/internal/sessions"
	"github.com/stewardhq/steward/pkg/database"
)

// deadDB returns a lazily opened handle pointing nowhere; queries fail on
// first use, which exercises the durable-trail degradation paths.
func deadDB(t *testing.T) *sql.DB {
	t.Helper()

	cfg := database.Config{
		Host:            "127.0.0.1",
		Port:            1,
		Name:            "steward",
		User:            "steward",
		Password:        "steward",
		SSLMode:         "disable",
		MaxOpenConns:    2,
		MaxIdleConns:    1,
		ConnMaxLifetime: "1m",
		ConnTimeout:     "1s",
	}

	sys, err := database.New(&cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("database.New() error = %v", err)
	}

	db := sys.Connection()
	t.Cleanup(func() { db.Close() })
	return db
}

func newSystem(t *testing.T, ttl string) sessions.System {
	t.Helper()

	cfg := sessions.Config{TTL: ttl, SweepInterval: "1m"}
	if err := cfg.Finalize(sessions.Env{}); err != nil {
		t.Fatalf("Config.Finalize() error = %v", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return sessions.New(cfg, deadDB(t), logger)
}

func TestUpdateCreatesSession(t *testing.T) {
	sys := newSystem(t, "1h")

	err := sys.Update(context.Background(), "s1", func(s *sessions.Session) error {
		if s.ID != "s1" {
			t.Errorf("session ID = %q, want %q", s.ID, "s1")
		}
		if s.Stage != sessions.StageInitial {
			t.Errorf("Stage = %q, want %q", s.Stage, sessions.StageInitial)
		}
		s.Collection = "purchase_order"
		return nil
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	snap, err := sys.Snapshot("s1")
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}
	if snap.Collection != "purchase_order" {
		t.Errorf("Collection = %q, want %q", snap.Collection, "purchase_order")
	}
}

func TestUpdatePropagatesError(t *testing.T) {
	sys := newSystem(t, "1h")

	wantErr := errors.New("turn failed")
	err := sys.Update(context.Background(), "s1", func(s *sessions.Session) error {
		return wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Errorf("Update() error = %v, want %v", err, wantErr)
	}
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	sys := newSystem(t, "1h")

	_ = sys.Update(context.Background(), "s1", func(s *sessions.Session) error {
		s.Collected = map[string]string{"supplier_id": "SUP001"}
		return nil
	})

	snap, err := sys.Snapshot("s1")
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}
	snap.Collected["supplier_id"] = "tampered"

	again, _ := sys.Snapshot("s1")
	if again.Collected["supplier_id"] != "SUP001" {
		t.Errorf("Collected[supplier_id] = %q after mutating a snapshot, want %q",
			again.Collected["supplier_id"], "SUP001")
	}
}

func TestSnapshotNotFound(t *testing.T) {
	sys := newSystem(t, "1h")

	_, err := sys.Snapshot("missing")
	if !errors.Is(err, sessions.ErrNotFound) {
		t.Errorf("Snapshot(missing) error = %v, want ErrNotFound", err)
	}
}

func TestSessionExpiry(t *testing.T) {
	sys := newSystem(t, "1ms")

	_ = sys.Update(context.Background(), "s1", func(s *sessions.Session) error { return nil })
	time.Sleep(10 * time.Millisecond)

	if _, err := sys.Snapshot("s1"); !errors.Is(err, sessions.ErrNotFound) {
		t.Errorf("Snapshot() after TTL error = %v, want ErrNotFound", err)
	}
}

func TestActive(t *testing.T) {
	sys := newSystem(t, "1h")

	_ = sys.Update(context.Background(), "a", func(s *sessions.Session) error { return nil })
	_ = sys.Update(context.Background(), "b", func(s *sessions.Session) error { return nil })

	if got := sys.Active(); got != 2 {
		t.Errorf("Active() = %d, want 2", got)
	}
}

func TestEndRemovesSession(t *testing.T) {
	sys := newSystem(t, "1h")

	_ = sys.Update(context.Background(), "s1", func(s *sessions.Session) error { return nil })

	// The event insert fails against the dead database; End still removes
	// the live session.
	if err := sys.End(context.Background(), "s1"); err != nil {
		t.Fatalf("End() error = %v", err)
	}

	if _, err := sys.Snapshot("s1"); !errors.Is(err, sessions.ErrNotFound) {
		t.Errorf("Snapshot() after End error = %v, want ErrNotFound", err)
	}
	if err := sys.End(context.Background(), "s1"); !errors.Is(err, sessions.ErrNotFound) {
		t.Errorf("second End() error = %v, want ErrNotFound", err)
	}
}

func TestSummarize(t *testing.T) {
	sys := newSystem(t, "1h")

	_ = sys.Update(context.Background(), "s1", func(s *sessions.Session) error {
		s.EmployeeID = "EMP001"
		s.Authenticated = true
		s.Stage = sessions.StageCollecting
		s.Collection = "purchase_order"
		s.Collected = map[string]string{"supplier_id": "SUP001", "total_amount": "15000"}
		s.AddTurn("user", "hello")
		s.AddTurn("assistant", "hi")
		return nil
	})

	sum, err := sys.Summarize("s1")
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if sum.Collection != "purchase_order" {
		t.Errorf("Collection = %q, want %q", sum.Collection, "purchase_order")
	}
	if sum.Collected != 2 {
		t.Errorf("Collected = %d, want 2", sum.Collected)
	}
	if sum.Turns != 2 {
		t.Errorf("Turns = %d, want 2", sum.Turns)
	}
	if !sum.Authenticated {
		t.Error("Authenticated = false, want true")
	}
}

func TestRecordEventDeadDatabase(t *testing.T) {
	sys := newSystem(t, "1h")

	err := sys.RecordEvent(context.Background(), "s1", "turn", map[string]any{"status": "executed"})
	if err == nil {
		t.Error("RecordEvent() with unreachable database succeeded, want error")
	}
}

func TestAddTurnHistoryCap(t *testing.T) {
	s := &sessions.Session{ID: "s1"}
	for i := 0; i < 30; i++ {
		s.AddTurn("user", "message")
	}
	if len(s.History) != 20 {
		t.Errorf("len(History) = %d, want 20", len(s.History))
	}
}

func TestSessionReset(t *testing.T) {
	s := &sessions.Session{
		ID:            "s1",
		EmployeeID:    "EMP001",
		Authenticated: true,
		Stage:         sessions.StageCollecting,
		Collection:    "purchase_order",
		Collected:     map[string]string{"supplier_id": "SUP001"},
		Missing:       []string{"order_date"},
	}
	s.AddTurn("user", "hello")

	s.Reset()

	if s.Stage != sessions.StageInitial {
		t.Errorf("Stage = %q, want %q", s.Stage, sessions.StageInitial)
	}
	if s.Collection != "" || s.Collected != nil || s.Missing != nil {
		t.Error("Reset() left collection progress behind")
	}
	if s.EmployeeID != "EMP001" || !s.Authenticated {
		t.Error("Reset() dropped identity, want it kept")
	}
	if len(s.History) != 1 {
		t.Errorf("len(History) = %d after Reset, want 1", len(s.History))
	}
}
