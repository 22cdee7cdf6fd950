package workflow

import (
	"context"
	"fmt"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"
)

// ReasonNode returns a state node that runs the reasoning strategies in
// order and stores the first successful Reasoning. A strategy failure is
// logged and recovered by falling through; it never surfaces to the caller.
func ReasonNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		input, err := extractInput(s)
		if err != nil {
			return s, fmt.Errorf("reason: %w", err)
		}

		tc, err := extractTurnContext(s)
		if err != nil {
			return s, fmt.Errorf("reason: %w", err)
		}

		var reasoning *Reasoning
		for _, strategy := range rt.Strategies() {
			result, err := strategy.Reason(ctx, input, tc)
			if err != nil {
				rt.Logger.Warn("reasoning strategy failed",
					"strategy", strategy.Name(),
					"error", err,
				)
				continue
			}
			reasoning = result
			break
		}

		if reasoning == nil {
			return s, ErrReasoningFailed
		}

		rt.Logger.Info("turn reasoned",
			"strategy", reasoning.Strategy,
			"target", reasoning.TargetCollection,
			"confidence", reasoning.Confidence,
			"next_action", reasoning.NextAction,
		)

		s = s.Set(KeyReasoning, *reasoning)
		return s, nil
	})
}
