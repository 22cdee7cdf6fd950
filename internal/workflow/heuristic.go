package workflow

import (
	"context"
	"fmt"

	"github.com/stewardhq/steward/internal/authz"
	"github.com/stewardhq/steward/internal/routing"
)

// heuristicStrategy produces deterministic reasoning from the router and
// field processor. It is always available and never calls out.
type heuristicStrategy struct {
	rt *Runtime
}

func (h *heuristicStrategy) Name() string { return "heuristic" }

func (h *heuristicStrategy) Reason(ctx context.Context, input string, tc TurnContext) (*Reasoning, error) {
	decision := h.rt.Router.Route(ctx, input, routing.UserContext{
		Authenticated: tc.Authenticated,
		EmployeeID:    tc.EmployeeID,
	})

	reasoning := &Reasoning{
		Intent:       decision.Collection,
		Confidence:   decision.Confidence,
		Rationale:    decision.Reasoning,
		Alternatives: decision.Alternatives,
		Strategy:     h.Name(),
	}

	if decision.Fallback {
		// Nothing matched; the router's default is not a real target.
		reasoning.Intent = "unknown"
		reasoning.NextAction = ActionClarifyIntent
		return reasoning, nil
	}

	reasoning.TargetCollection = decision.Collection
	reasoning.AuthorizationNeeded = h.authorizationNeeded(decision.Collection)

	result, err := h.rt.Fields.Process(decision.Collection, input, tc.Collected)
	if err != nil {
		return nil, fmt.Errorf("process fields: %w", err)
	}

	extracted := make(map[string]string, len(result.Fields))
	for name, value := range result.Fields {
		if value.Valid {
			extracted[name] = value.Raw
		}
	}
	reasoning.ExtractedData = extracted
	reasoning.MissingRequired = result.MissingRequired

	reasoning.NextAction = decideNextAction(
		reasoning.TargetCollection,
		reasoning.MissingRequired,
		reasoning.AuthorizationNeeded,
		tc.Authenticated,
	)
	return reasoning, nil
}

// authorizationNeeded reports whether the collection's access rule demands
// more than baseline authenticated access.
func (h *heuristicStrategy) authorizationNeeded(collection string) bool {
	rule, ok := authz.RuleFor(collection)
	if !ok {
		return false
	}
	return rule.RequiredAccessLevel >= authz.LevelRoleBased
}
