package workflow

import (
	"context"

	"github.com/google/uuid"
)

// ActionType identifies the handler a turn dispatches to after reasoning.
type ActionType string

const (
	ActionCollectInfo      ActionType = "collect_info"
	ActionValidateData     ActionType = "validate_data"
	ActionExecuteOperation ActionType = "execute_operation"
	ActionRequestAuth      ActionType = "request_auth"
	ActionClarifyIntent    ActionType = "clarify_intent"
	ActionProvideFeedback  ActionType = "provide_feedback"
)

func (a ActionType) valid() bool {
	switch a {
	case ActionCollectInfo, ActionValidateData, ActionExecuteOperation,
		ActionRequestAuth, ActionClarifyIntent, ActionProvideFeedback:
		return true
	}
	return false
}

// TurnContext carries the session facts a reasoning strategy may use.
type TurnContext struct {
	SessionID     string
	EmployeeID    string
	Authenticated bool
	Collection    string
	Collected     map[string]string
	HistoryLen    int
}

// Reasoning is the analysis of one user input: what they want, which
// collection it maps to, and what should happen next.
type Reasoning struct {
	Intent              string            `json:"intent"`
	Confidence          float64           `json:"confidence"`
	TargetCollection    string            `json:"target_collection,omitempty"`
	Rationale           string            `json:"reasoning"`
	ExtractedData       map[string]string `json:"extracted_data,omitempty"`
	MissingRequired     []string          `json:"missing_required_fields,omitempty"`
	AuthorizationNeeded bool              `json:"authorization_needed"`
	NextAction          ActionType        `json:"next_action"`
	Alternatives        []string          `json:"alternative_collections,omitempty"`
	Strategy            string            `json:"strategy"`
}

// Strategy produces a Reasoning for one input. Any error aborts the
// strategy for the turn; the orchestrator falls through to the next one
// without retrying.
type Strategy interface {
	Name() string
	Reason(ctx context.Context, input string, tc TurnContext) (*Reasoning, error)
}

// Outcome is the user-facing result of acting on a Reasoning.
type Outcome struct {
	Response         string            `json:"response"`
	Action           string            `json:"action"`
	Status           string            `json:"status"`
	UIHint           string            `json:"ui_hint,omitempty"`
	Collection       string            `json:"collection,omitempty"`
	RequiredFields   []string          `json:"required_fields,omitempty"`
	FieldPrompts     map[string]string `json:"field_prompts,omitempty"`
	Suggestions      []Suggestion      `json:"suggestions,omitempty"`
	ValidationErrors []string          `json:"validation_errors,omitempty"`
	DenialReason     string            `json:"denial_reason,omitempty"`
	RequiredAction   string            `json:"required_action,omitempty"`
	RecordID         *uuid.UUID        `json:"record_id,omitempty"`
}

// Suggestion is one clarification option surfaced to the user.
type Suggestion struct {
	Collection  string `json:"collection"`
	DisplayName string `json:"display_name"`
	Description string `json:"description,omitempty"`
}

// TurnResult pairs the reasoning with the action outcome for one turn.
type TurnResult struct {
	Reasoning *Reasoning `json:"reasoning"`
	Outcome   *Outcome   `json:"outcome"`
}

// decideNextAction applies the deterministic dispatch rules shared by both
// strategies.
func decideNextAction(target string, missing []string, authorizationNeeded, authenticated bool) ActionType {
	if target == "" {
		return ActionClarifyIntent
	}
	if authorizationNeeded && !authenticated {
		return ActionRequestAuth
	}
	if len(missing) > 0 {
		return ActionCollectInfo
	}
	return ActionExecuteOperation
}
