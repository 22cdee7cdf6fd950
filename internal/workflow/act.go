package workflow

import (
	"context"
	"fmt"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/stewardhq/steward/internal/records"
)

// CollectInfoNode asks for the next missing field. With nothing missing it
// proceeds straight to execution.
func CollectInfoNode(rt *Runtime) state.StateNode {
	return actionNode(rt, "collect", func(ctx context.Context, rt *Runtime, input string, tc TurnContext, r *Reasoning) (Outcome, error) {
		if len(r.MissingRequired) == 0 {
			return executeOperation(ctx, rt, input, tc, r)
		}

		prompts := make(map[string]string, len(r.MissingRequired))
		for _, field := range r.MissingRequired {
			prompts[field] = rt.Fields.PromptFor(field)
		}

		return Outcome{
			Response:       fmt.Sprintf("I need some additional information for %s:", displayName(rt, r.TargetCollection)),
			Action:         "collect_fields",
			Status:         "awaiting_input",
			UIHint:         "show_field_progress",
			Collection:     r.TargetCollection,
			RequiredFields: r.MissingRequired,
			FieldPrompts:   prompts,
		}, nil
	})
}

// ValidateDataNode re-runs field validation. Clean data proceeds straight
// to execution; errors are itemized back to the user.
func ValidateDataNode(rt *Runtime) state.StateNode {
	return actionNode(rt, "validate", func(ctx context.Context, rt *Runtime, input string, tc TurnContext, r *Reasoning) (Outcome, error) {
		result, err := rt.Fields.Process(r.TargetCollection, input, tc.Collected)
		if err != nil {
			return Outcome{}, fmt.Errorf("%w: %w", ErrActionFailed, err)
		}

		if result.Summary.Invalid > 0 || len(result.MissingRequired) > 0 {
			return Outcome{
				Response:         "Some fields need attention before I can continue:",
				Action:           "collect_fields",
				Status:           "has_errors",
				UIHint:           "show_field_progress",
				Collection:       r.TargetCollection,
				RequiredFields:   result.MissingRequired,
				ValidationErrors: result.Summary.Errors,
			}, nil
		}

		return executeOperation(ctx, rt, input, tc, r)
	})
}

// ExecuteOperationNode re-confirms authorization and hands the validated
// field set to record persistence.
func ExecuteOperationNode(rt *Runtime) state.StateNode {
	return actionNode(rt, "execute", executeOperation)
}

// RequestAuthNode asks the user to identify themselves.
func RequestAuthNode(rt *Runtime) state.StateNode {
	return actionNode(rt, "auth", func(ctx context.Context, rt *Runtime, input string, tc TurnContext, r *Reasoning) (Outcome, error) {
		return Outcome{
			Response:   "This operation requires authentication. Please provide your employee ID.",
			Action:     "request_employee_id",
			Status:     "awaiting_auth",
			UIHint:     "show_auth_prompt",
			Collection: r.TargetCollection,
		}, nil
	})
}

// ClarifyIntentNode surfaces the closest matching collections as options.
func ClarifyIntentNode(rt *Runtime) state.StateNode {
	return actionNode(rt, "clarify", func(ctx context.Context, rt *Runtime, input string, tc TurnContext, r *Reasoning) (Outcome, error) {
		var suggestions []Suggestion
		for _, s := range rt.Router.Suggest(ctx, input, 5) {
			suggestions = append(suggestions, Suggestion{
				Collection:  s.Collection,
				DisplayName: s.DisplayName,
				Description: fmt.Sprintf("%d required fields", len(s.RequiredFields)),
			})
		}

		return Outcome{
			Response:    "I'm not sure what you'd like to do. Here are some options:",
			Action:      "clarify_intent",
			Status:      "awaiting_clarification",
			UIHint:      "show_suggestions",
			Suggestions: suggestions,
		}, nil
	})
}

// ProvideFeedbackNode returns a generic help message.
func ProvideFeedbackNode(rt *Runtime) state.StateNode {
	return actionNode(rt, "feedback", func(ctx context.Context, rt *Runtime, input string, tc TurnContext, r *Reasoning) (Outcome, error) {
		return Outcome{
			Response: "I understand you're looking for help. Could you please be more specific about what you'd like to do?",
			Action:   "provide_feedback",
			Status:   "awaiting_input",
		}, nil
	})
}

// RespondNode is the exit point. The outcome is already in state; this node
// only records the turn completion.
func RespondNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		r, err := extractReasoning(s)
		if err != nil {
			return s, fmt.Errorf("respond: %w", err)
		}

		rt.Logger.Debug("turn complete", "next_action", r.NextAction)
		return s, nil
	})
}

type actionFunc func(ctx context.Context, rt *Runtime, input string, tc TurnContext, r *Reasoning) (Outcome, error)

func actionNode(rt *Runtime, name string, fn actionFunc) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		input, err := extractInput(s)
		if err != nil {
			return s, fmt.Errorf("%s: %w", name, err)
		}

		tc, err := extractTurnContext(s)
		if err != nil {
			return s, fmt.Errorf("%s: %w", name, err)
		}

		reasoning, err := extractReasoning(s)
		if err != nil {
			return s, fmt.Errorf("%s: %w", name, err)
		}

		outcome, err := fn(ctx, rt, input, tc, reasoning)
		if err != nil {
			return s, fmt.Errorf("%s: %w", name, err)
		}

		s = s.Set(KeyOutcome, outcome)
		return s, nil
	})
}

func executeOperation(ctx context.Context, rt *Runtime, input string, tc TurnContext, r *Reasoning) (Outcome, error) {
	if !tc.Authenticated {
		return Outcome{
			Response:   "This operation requires authentication. Please provide your employee ID.",
			Action:     "request_employee_id",
			Status:     "awaiting_auth",
			UIHint:     "show_auth_prompt",
			Collection: r.TargetCollection,
		}, nil
	}

	profile, err := rt.Authz.Authenticate(ctx, tc.EmployeeID)
	if err != nil {
		return Outcome{}, fmt.Errorf("%w: authenticate %s: %w", ErrActionFailed, tc.EmployeeID, err)
	}

	decision := rt.Authz.Authorize(profile, r.TargetCollection, "create")
	if !decision.Authorized {
		return Outcome{
			Response:       fmt.Sprintf("You are not authorized for %s. Please contact your administrator.", displayName(rt, r.TargetCollection)),
			Action:         "authorization_denied",
			Status:         "denied",
			Collection:     r.TargetCollection,
			DenialReason:   string(decision.DenialReason),
			RequiredAction: decision.RequiredAction,
		}, nil
	}

	result, err := rt.Fields.Process(r.TargetCollection, input, tc.Collected)
	if err != nil {
		return Outcome{}, fmt.Errorf("%w: %w", ErrActionFailed, err)
	}

	if !result.Complete() {
		return Outcome{
			Response:         "Some required information is still missing or invalid:",
			Action:           "collect_fields",
			Status:           "awaiting_input",
			UIHint:           "show_field_progress",
			Collection:       r.TargetCollection,
			RequiredFields:   result.MissingRequired,
			ValidationErrors: result.Summary.Errors,
		}, nil
	}

	rec, err := rt.Records.Create(ctx, records.CreateCommand{
		Collection: r.TargetCollection,
		Fields:     result.Data(),
		CreatedBy:  tc.EmployeeID,
		SessionID:  tc.SessionID,
	})
	if err != nil {
		return Outcome{}, fmt.Errorf("%w: persist record: %w", ErrActionFailed, err)
	}

	return Outcome{
		Response:   fmt.Sprintf("Your %s has been submitted successfully.", displayName(rt, r.TargetCollection)),
		Action:     "execute",
		Status:     "executed",
		Collection: r.TargetCollection,
		RecordID:   &rec.ID,
	}, nil
}

func displayName(rt *Runtime, collection string) string {
	if col, err := rt.Registry.Collection(collection); err == nil {
		return col.DisplayName()
	}
	return collection
}
