package conversation

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/stewardhq/steward/internal/authz"
	"github.com/stewardhq/steward/internal/fields"
	"github.com/stewardhq/steward/internal/records"
	"github.com/stewardhq/steward/internal/routing"
	"github.com/stewardhq/steward/internal/schema"
	"github.com/stewardhq/steward/internal/sessions"
	"github.com/stewardhq/steward/internal/workflow"

	"log/slog"

	gaconfig "github.com/JaimeStill/go-agents/pkg/config"
)

type service struct {
	rt       *workflow.Runtime
	sessions sessions.System
	authz    *authz.Engine
	logger   *slog.Logger
}

// New creates a conversation service implementing the System interface.
// It internally constructs the workflow runtime from the provided dependencies.
func New(
	agent gaconfig.AgentConfig,
	agentEnabled bool,
	agentTimeout time.Duration,
	registry *schema.Registry,
	router *routing.Router,
	processor *fields.Processor,
	engine *authz.Engine,
	recs records.System,
	sess sessions.System,
	logger *slog.Logger,
) System {
	rt := &workflow.Runtime{
		Agent:        agent,
		AgentEnabled: agentEnabled,
		AgentTimeout: agentTimeout,
		Registry:     registry,
		Router:       router,
		Fields:       processor,
		Authz:        engine,
		Records:      recs,
		Logger:       logger.With("workflow", "turn"),
	}
	return &service{
		rt:       rt,
		sessions: sess,
		authz:    engine,
		logger:   logger.With("system", "conversation"),
	}
}

func (s *service) Handler() *Handler {
	return NewHandler(s, s.logger)
}

var employeeIDRE = regexp.MustCompile(`\b(?i:EMP)\d{3,6}\b`)

// Process runs one chat turn. Session mutations happen inside the session
// store's per-session lock, so turns on the same session are serialized.
func (s *service) Process(ctx context.Context, cmd ChatCommand) (*TurnResult, error) {
	if strings.TrimSpace(cmd.Input) == "" && cmd.EmployeeID == "" {
		return nil, ErrEmptyInput
	}

	sessionID := cmd.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	var result *TurnResult
	err := s.sessions.Update(ctx, sessionID, func(sess *sessions.Session) error {
		sess.AddTurn("user", cmd.Input)

		if err := s.captureIdentity(ctx, sess, cmd); err != nil {
			return err
		}

		var turn *workflow.TurnResult
		var err error

		if sess.Stage == sessions.StageAuthenticating {
			turn, err = s.resumeAfterAuth(ctx, sess, cmd.Input)
		} else {
			turn, err = s.runTurn(ctx, sess, cmd.Input)
		}
		if err != nil {
			return err
		}

		s.applyOutcome(sess, turn)
		sess.AddTurn("assistant", turn.Outcome.Response)

		result = &TurnResult{
			SessionID: sessionID,
			Reasoning: turn.Reasoning,
			Outcome:   turn.Outcome,
			Stage:     sess.Stage,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.recordTurn(ctx, result)
	return result, nil
}

// captureIdentity authenticates the session when the caller supplies an
// employee ID out of band.
func (s *service) captureIdentity(ctx context.Context, sess *sessions.Session, cmd ChatCommand) error {
	if sess.Authenticated || cmd.EmployeeID == "" {
		return nil
	}

	profile, err := s.authz.Authenticate(ctx, cmd.EmployeeID)
	if err != nil {
		return fmt.Errorf("authenticate %s: %w", cmd.EmployeeID, err)
	}

	sess.EmployeeID = profile.EmployeeID
	sess.Authenticated = true
	return nil
}

func (s *service) runTurn(ctx context.Context, sess *sessions.Session, input string) (*workflow.TurnResult, error) {
	tc := workflow.TurnContext{
		SessionID:     sess.ID,
		EmployeeID:    sess.EmployeeID,
		Authenticated: sess.Authenticated,
		Collection:    sess.Collection,
		Collected:     sess.Collected,
		HistoryLen:    len(sess.History),
	}

	turn, err := workflow.Execute(ctx, s.rt, input, tc)
	if err != nil {
		return nil, fmt.Errorf("execute turn: %w", err)
	}
	return turn, nil
}

// resumeAfterAuth handles the turn after an authentication request. A
// recognizable employee ID authenticates the session and resumes the
// pending collection; anything else re-prompts.
func (s *service) resumeAfterAuth(ctx context.Context, sess *sessions.Session, input string) (*workflow.TurnResult, error) {
	id := employeeIDRE.FindString(input)
	if id == "" {
		return &workflow.TurnResult{
			Reasoning: &workflow.Reasoning{
				Intent:     "authenticate",
				NextAction: workflow.ActionRequestAuth,
				Strategy:   "session",
			},
			Outcome: &workflow.Outcome{
				Response: "I couldn't find an employee ID in that. Please provide it in the form EMP123.",
				Action:   "request_employee_id",
				Status:   "awaiting_auth",
				UIHint:   "show_auth_prompt",
			},
		}, nil
	}

	profile, err := s.authz.Authenticate(ctx, strings.ToUpper(id))
	if err != nil {
		return nil, fmt.Errorf("authenticate %s: %w", id, err)
	}

	sess.EmployeeID = profile.EmployeeID
	sess.Authenticated = true

	if sess.Collection == "" {
		return &workflow.TurnResult{
			Reasoning: &workflow.Reasoning{
				Intent:     "authenticate",
				NextAction: workflow.ActionProvideFeedback,
				Strategy:   "session",
			},
			Outcome: &workflow.Outcome{
				Response: fmt.Sprintf("Thanks, %s. What would you like to do?", profile.EmployeeID),
				Action:   "authenticated",
				Status:   "awaiting_input",
			},
		}, nil
	}

	// Resume the pending collection with what was gathered so far.
	return s.runTurn(ctx, sess, buildResumeInput(sess))
}

// buildResumeInput replays the collected values so the workflow can pick up
// the pending collection where it left off.
func buildResumeInput(sess *sessions.Session) string {
	var b strings.Builder
	b.WriteString(strings.ReplaceAll(sess.Collection, "_", " "))
	for field, value := range sess.Collected {
		fmt.Fprintf(&b, ", %s: %s", field, value)
	}
	return b.String()
}

// applyOutcome advances session state based on what the turn produced.
func (s *service) applyOutcome(sess *sessions.Session, turn *workflow.TurnResult) {
	r := turn.Reasoning
	o := turn.Outcome

	if r.TargetCollection != "" {
		sess.Collection = r.TargetCollection
	}
	if len(r.ExtractedData) > 0 {
		if sess.Collected == nil {
			sess.Collected = make(map[string]string, len(r.ExtractedData))
		}
		for field, value := range r.ExtractedData {
			sess.Collected[field] = value
		}
	}
	sess.Missing = r.MissingRequired

	switch o.Status {
	case "awaiting_auth":
		sess.Stage = sessions.StageAuthenticating
	case "awaiting_input", "has_errors":
		if sess.Collection != "" {
			sess.Stage = sessions.StageCollecting
		} else {
			sess.Stage = sessions.StageInitial
		}
	case "awaiting_clarification":
		sess.Stage = sessions.StageInitial
	case "executed":
		sess.Reset()
	case "denied":
		sess.Stage = sessions.StageInitial
	}
}

func (s *service) recordTurn(ctx context.Context, result *TurnResult) {
	payload := map[string]any{
		"action": result.Outcome.Action,
		"status": result.Outcome.Status,
	}
	if result.Outcome.Collection != "" {
		payload["collection"] = result.Outcome.Collection
	}
	if result.Outcome.RecordID != nil {
		payload["record_id"] = result.Outcome.RecordID.String()
	}

	if err := s.sessions.RecordEvent(ctx, result.SessionID, "turn", payload); err != nil {
		s.logger.Warn("turn event not recorded", "session_id", result.SessionID, "error", err)
	}
}
