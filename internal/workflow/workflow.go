package workflow

import (
	"context"
	"fmt"

	gaoconfig "github.com/JaimeStill/go-agents-orchestration/pkg/config"
	"github.com/JaimeStill/go-agents-orchestration/pkg/state"
)

// Execute runs one conversation turn. It builds the turn graph
// (reason → one of six action nodes → respond), executes it, and extracts
// the TurnResult from the final state.
func Execute(ctx context.Context, rt *Runtime, input string, tc TurnContext) (*TurnResult, error) {
	graph, err := buildGraph(rt)
	if err != nil {
		return nil, fmt.Errorf("build graph: %w", err)
	}

	initialState := state.New(nil)
	initialState = initialState.Set(KeyInput, input)
	initialState = initialState.Set(KeyTurnContext, tc)

	finalState, err := graph.Execute(ctx, initialState)
	if err != nil {
		return nil, fmt.Errorf("execute graph: %w", err)
	}

	return extractResult(finalState)
}

func buildGraph(rt *Runtime) (state.StateGraph, error) {
	cfg := gaoconfig.DefaultGraphConfig("steward-turn")
	cfg.Observer = "noop"

	graph, err := state.NewGraph(cfg)
	if err != nil {
		return nil, err
	}

	if err := graph.AddNode("reason", ReasonNode(rt)); err != nil {
		return nil, err
	}

	actions := map[string]state.StateNode{
		"collect":  CollectInfoNode(rt),
		"validate": ValidateDataNode(rt),
		"execute":  ExecuteOperationNode(rt),
		"auth":     RequestAuthNode(rt),
		"clarify":  ClarifyIntentNode(rt),
		"feedback": ProvideFeedbackNode(rt),
	}

	for name, node := range actions {
		if err := graph.AddNode(name, node); err != nil {
			return nil, err
		}
	}

	if err := graph.AddNode("respond", RespondNode(rt)); err != nil {
		return nil, err
	}

	// reason fans out to exactly one action node based on the decided
	// next action.
	dispatch := map[string]ActionType{
		"collect":  ActionCollectInfo,
		"validate": ActionValidateData,
		"execute":  ActionExecuteOperation,
		"auth":     ActionRequestAuth,
		"clarify":  ActionClarifyIntent,
		"feedback": ActionProvideFeedback,
	}

	for name, action := range dispatch {
		if err := graph.AddEdge("reason", name, nextActionIs(action)); err != nil {
			return nil, err
		}
		if err := graph.AddEdge(name, "respond", nil); err != nil {
			return nil, err
		}
	}

	if err := graph.SetEntryPoint("reason"); err != nil {
		return nil, err
	}

	if err := graph.SetExitPoint("respond"); err != nil {
		return nil, err
	}

	return graph, nil
}

func nextActionIs(action ActionType) func(state.State) bool {
	return func(s state.State) bool {
		r, err := extractReasoning(s)
		if err != nil {
			return false
		}
		return r.NextAction == action
	}
}

func extractResult(s state.State) (*TurnResult, error) {
	reasoning, err := extractReasoning(s)
	if err != nil {
		return nil, err
	}

	val, ok := s.Get(KeyOutcome)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingState, KeyOutcome)
	}
	outcome, ok := val.(Outcome)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not Outcome", ErrMissingState, KeyOutcome)
	}

	return &TurnResult{Reasoning: reasoning, Outcome: &outcome}, nil
}

func extractReasoning(s state.State) (*Reasoning, error) {
	val, ok := s.Get(KeyReasoning)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingState, KeyReasoning)
	}
	r, ok := val.(Reasoning)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not Reasoning", ErrMissingState, KeyReasoning)
	}
	return &r, nil
}

func extractTurnContext(s state.State) (TurnContext, error) {
	val, ok := s.Get(KeyTurnContext)
	if !ok {
		return TurnContext{}, fmt.Errorf("%w: %s", ErrMissingState, KeyTurnContext)
	}
	tc, ok := val.(TurnContext)
	if !ok {
		return TurnContext{}, fmt.Errorf("%w: %s is not TurnContext", ErrMissingState, KeyTurnContext)
	}
	return tc, nil
}

func extractInput(s state.State) (string, error) {
	val, ok := s.Get(KeyInput)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrMissingState, KeyInput)
	}
	input, ok := val.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s is not string", ErrMissingState, KeyInput)
	}
	return input, nil
}
