package conversation_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"

	gaconfig "github.com/JaimeStill/go-agents/pkg/config"

	"github.com/stewardhq/steward/internal/authz"
	"github.com/stewardhq/steward/internal/conversation"
	"github.com/stewardhq/steward/internal/fields"
	"github.com/stewardhq/steward/internal/records"
	"github.com/stewardhq/steward/internal/routing"
	"github.com/stewardhq/steward/internal/schema"
	"github.com/stewardhq/steward/internal/sessions"
	"github.com/stewardhq/steward/pkg/database"
	"github.com/stewardhq/steward/pkg/pagination"
)

type stubDirectory struct{}

func (stubDirectory) Resolve(ctx context.Context, employeeID string) (string, string, bool, bool, error) {
	return "", "", false, false, nil
}

type fakeRecords struct {
	created []records.CreateCommand
}

func (f *fakeRecords) Handler(maxUploadSize int64) *records.Handler { return nil }

func (f *fakeRecords) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters records.Filters,
) (*pagination.PageResult[records.Record], error) {
	return nil, errors.New("not implemented")
}

func (f *fakeRecords) Find(ctx context.Context, id uuid.UUID) (*records.Record, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeRecords) Create(ctx context.Context, cmd records.CreateCommand) (*records.Record, error) {
	f.created = append(f.created, cmd)
	return &records.Record{ID: uuid.New(), Collection: cmd.Collection, Fields: cmd.Fields}, nil
}

func (f *fakeRecords) Update(ctx context.Context, id uuid.UUID, cmd records.UpdateCommand) (*records.Record, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeRecords) Delete(ctx context.Context, id uuid.UUID) error {
	return errors.New("not implemented")
}

func (f *fakeRecords) Attach(ctx context.Context, recordID uuid.UUID, cmd records.AttachCommand) (*records.Attachment, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeRecords) Attachments(ctx context.Context, recordID uuid.UUID) ([]records.Attachment, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeRecords) DownloadAttachment(ctx context.Context, id uuid.UUID) (*records.Attachment, io.ReadCloser, error) {
	return nil, nil, errors.New("not implemented")
}

func (f *fakeRecords) DeleteAttachment(ctx context.Context, id uuid.UUID) error {
	return errors.New("not implemented")
}

func newSystem(t *testing.T) (conversation.System, sessions.System, *fakeRecords) {
	t.Helper()

	registry, err := schema.NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}

	routingCfg := routing.Config{}
	if err := routingCfg.Finalize(nil); err != nil {
		t.Fatalf("routing Config.Finalize() error = %v", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	engine, err := authz.New(authz.Config{ProfileTTL: "30m"}, registry, stubDirectory{}, logger)
	if err != nil {
		t.Fatalf("authz.New() error = %v", err)
	}

	dbCfg := database.Config{
		Host: "127.0.0.1", Port: 1, Name: "steward", User: "steward",
		SSLMode: "disable", MaxOpenConns: 2, MaxIdleConns: 1,
		ConnMaxLifetime: "1m", ConnTimeout: "1s",
	}
	dbSys, err := database.New(&dbCfg, logger)
	if err != nil {
		t.Fatalf("database.New() error = %v", err)
	}
	t.Cleanup(func() { dbSys.Connection().Close() })

	sessionsCfg := sessions.Config{TTL: "1h", SweepInterval: "1m"}
	sessionSys := sessions.New(sessionsCfg, dbSys.Connection(), logger)

	recs := &fakeRecords{}
	sys := conversation.New(
		gaconfig.DefaultAgentConfig(),
		false,
		30*time.Second,
		registry,
		routing.New(routingCfg, registry, logger),
		fields.New(registry, schema.NewCatalog(), logger),
		engine,
		recs,
		sessionSys,
		logger,
	)
	return sys, sessionSys, recs
}

func TestProcessEmptyInput(t *testing.T) {
	sys, _, _ := newSystem(t)

	_, err := sys.Process(context.Background(), conversation.ChatCommand{Input: "   "})
	if !errors.Is(err, conversation.ErrEmptyInput) {
		t.Errorf("Process() error = %v, want ErrEmptyInput", err)
	}
}

func TestProcessStartsSession(t *testing.T) {
	sys, sessionSys, _ := newSystem(t)

	result, err := sys.Process(context.Background(), conversation.ChatCommand{
		Input: "zzyx qwfp vbnm",
	})
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	if result.SessionID == "" {
		t.Fatal("SessionID is empty")
	}
	if result.Outcome.Status != "awaiting_clarification" {
		t.Errorf("Status = %q, want %q", result.Outcome.Status, "awaiting_clarification")
	}
	if result.Stage != sessions.StageInitial {
		t.Errorf("Stage = %q, want %q", result.Stage, sessions.StageInitial)
	}

	snap, err := sessionSys.Snapshot(result.SessionID)
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}
	if len(snap.History) != 2 {
		t.Errorf("len(History) = %d, want user and assistant turns", len(snap.History))
	}
}

func TestProcessAuthenticationFlow(t *testing.T) {
	sys, sessionSys, _ := newSystem(t)
	ctx := context.Background()

	first, err := sys.Process(ctx, conversation.ChatCommand{
		Input: "Create purchase order for supplier SUP001, laptops x10, total $15000",
	})
	if err != nil {
		t.Fatalf("first Process() error = %v", err)
	}

	if first.Outcome.Status != "awaiting_auth" {
		t.Fatalf("first Status = %q, want %q", first.Outcome.Status, "awaiting_auth")
	}
	if first.Stage != sessions.StageAuthenticating {
		t.Errorf("first Stage = %q, want %q", first.Stage, sessions.StageAuthenticating)
	}

	// Anything without an employee ID re-prompts.
	retry, err := sys.Process(ctx, conversation.ChatCommand{
		SessionID: first.SessionID,
		Input:     "it is me",
	})
	if err != nil {
		t.Fatalf("retry Process() error = %v", err)
	}
	if retry.Outcome.Status != "awaiting_auth" {
		t.Errorf("retry Status = %q, want %q", retry.Outcome.Status, "awaiting_auth")
	}

	second, err := sys.Process(ctx, conversation.ChatCommand{
		SessionID: first.SessionID,
		Input:     "EMP005",
	})
	if err != nil {
		t.Fatalf("second Process() error = %v", err)
	}

	if second.Outcome.Status != "awaiting_input" {
		t.Fatalf("second Status = %q, want %q (outcome: %+v)",
			second.Outcome.Status, "awaiting_input", second.Outcome)
	}
	if second.Stage != sessions.StageCollecting {
		t.Errorf("second Stage = %q, want %q", second.Stage, sessions.StageCollecting)
	}

	snap, err := sessionSys.Snapshot(first.SessionID)
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}
	if !snap.Authenticated || snap.EmployeeID != "EMP005" {
		t.Errorf("session identity = {%q, %t}, want {EMP005, true}", snap.EmployeeID, snap.Authenticated)
	}
	if snap.Collection != "purchase_order" {
		t.Errorf("session Collection = %q, want %q", snap.Collection, "purchase_order")
	}
	if snap.Collected["supplier_id"] != "SUP001" {
		t.Errorf("Collected[supplier_id] = %q, want %q", snap.Collected["supplier_id"], "SUP001")
	}
}

func TestProcessExecutesWithIdentity(t *testing.T) {
	sys, sessionSys, recs := newSystem(t)

	result, err := sys.Process(context.Background(), conversation.ChatCommand{
		EmployeeID: "EMP005",
		Input:      "Create purchase order from supplier SUP001 on 2025-03-01, laptops x10, total $15000",
	})
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	if result.Outcome.Status != "executed" {
		t.Fatalf("Status = %q, want %q (outcome: %+v)", result.Outcome.Status, "executed", result.Outcome)
	}
	if result.Outcome.RecordID == nil {
		t.Error("RecordID = nil, want a persisted record")
	}
	if len(recs.created) != 1 {
		t.Fatalf("records created = %d, want 1", len(recs.created))
	}
	if recs.created[0].CreatedBy != "EMP005" {
		t.Errorf("CreatedBy = %q, want %q", recs.created[0].CreatedBy, "EMP005")
	}

	// A completed operation resets collection progress but keeps identity.
	snap, err := sessionSys.Snapshot(result.SessionID)
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}
	if snap.Stage != sessions.StageInitial {
		t.Errorf("Stage = %q after execution, want %q", snap.Stage, sessions.StageInitial)
	}
	if snap.Collection != "" {
		t.Errorf("Collection = %q after execution, want empty", snap.Collection)
	}
	if !snap.Authenticated {
		t.Error("Authenticated = false after execution, want identity kept")
	}
}

func TestProcessReusesSession(t *testing.T) {
	sys, _, _ := newSystem(t)
	ctx := context.Background()

	first, err := sys.Process(ctx, conversation.ChatCommand{Input: "zzyx qwfp"})
	if err != nil {
		t.Fatalf("first Process() error = %v", err)
	}

	second, err := sys.Process(ctx, conversation.ChatCommand{
		SessionID: first.SessionID,
		Input:     "I need vacation leave next week",
	})
	if err != nil {
		t.Fatalf("second Process() error = %v", err)
	}

	if second.SessionID != first.SessionID {
		t.Errorf("SessionID = %q, want reuse of %q", second.SessionID, first.SessionID)
	}
	if second.Reasoning.TargetCollection != "employee_leave_request" {
		t.Errorf("TargetCollection = %q, want %q",
			second.Reasoning.TargetCollection, "employee_leave_request")
	}
}

func TestMapHTTPStatus(t *testing.T) {
	if got := conversation.MapHTTPStatus(conversation.ErrEmptyInput); got != 400 {
		t.Errorf("MapHTTPStatus(ErrEmptyInput) = %d, want 400", got)
	}
	if got := conversation.MapHTTPStatus(errors.New("boom")); got != 500 {
		t.Errorf("MapHTTPStatus(unknown) = %d, want 500", got)
	}
}
