package workflow

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/JaimeStill/go-agents/pkg/agent"

	"github.com/stewardhq/steward/pkg/formatting"
)

// agentResponse is the JSON contract the model is asked to produce.
type agentResponse struct {
	Intent              string            `json:"intent"`
	Confidence          float64           `json:"confidence"`
	TargetCollection    string            `json:"target_collection"`
	Reasoning           string            `json:"reasoning"`
	ExtractedData       map[string]string `json:"extracted_data"`
	MissingRequired     []string          `json:"missing_required_fields"`
	AuthorizationNeeded bool              `json:"authorization_needed"`
	NextAction          string            `json:"next_action"`
	Alternatives        []string          `json:"alternative_collections"`
}

// agentStrategy asks a language model to analyze the input against the full
// collection catalog. Any transport or parse failure aborts the strategy;
// the orchestrator falls through to the heuristic without retrying.
type agentStrategy struct {
	rt *Runtime
}

func (a *agentStrategy) Name() string { return "agent" }

func (a *agentStrategy) Reason(ctx context.Context, input string, tc TurnContext) (*Reasoning, error) {
	prompt, err := a.buildPrompt(input, tc)
	if err != nil {
		return nil, fmt.Errorf("build reasoning prompt: %w", err)
	}

	callCtx := ctx
	if a.rt.AgentTimeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, a.rt.AgentTimeout)
		defer cancel()
	}

	ag, err := agent.New(&a.rt.Agent)
	if err != nil {
		return nil, fmt.Errorf("create agent: %w", err)
	}

	resp, err := ag.Chat(callCtx, prompt)
	if err != nil {
		return nil, fmt.Errorf("chat call: %w", err)
	}

	parsed, err := formatting.Parse[agentResponse](resp.Text())
	if err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}

	return a.normalize(parsed, tc), nil
}

func (a *agentStrategy) buildPrompt(input string, tc TurnContext) (string, error) {
	catalog := make(map[string]map[string][]string)
	names := make([]string, 0)
	for _, col := range a.rt.Registry.Collections() {
		names = append(names, col.Name)
		catalog[col.Name] = map[string][]string{
			"required": col.Required,
			"optional": col.Optional,
		}
	}

	namesJSON, err := json.MarshalIndent(names, "", "  ")
	if err != nil {
		return "", err
	}
	catalogJSON, err := json.MarshalIndent(catalog, "", "  ")
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("You are an intelligent business operations assistant analyzing user requests.\n\n")
	fmt.Fprintf(&b, "USER INPUT: %q\n\n", input)
	b.WriteString("CONTEXT:\n")
	fmt.Fprintf(&b, "- User authenticated: %t\n", tc.Authenticated)
	fmt.Fprintf(&b, "- Employee ID: %s\n", valueOr(tc.EmployeeID, "Not provided"))
	fmt.Fprintf(&b, "- Session history: %d messages\n\n", tc.HistoryLen)
	fmt.Fprintf(&b, "AVAILABLE OPERATIONS (%d collections):\n%s\n\n", len(names), namesJSON)
	fmt.Fprintf(&b, "COLLECTION SCHEMAS:\n%s\n\n", catalogJSON)
	b.WriteString(`ANALYZE the user input and provide your reasoning in this JSON format:
{
    "intent": "primary intent/goal",
    "confidence": 0.85,
    "target_collection": "most_appropriate_collection_name",
    "reasoning": "step-by-step analysis of why this collection fits",
    "extracted_data": {"field_name": "extracted_value"},
    "missing_required_fields": ["field1", "field2"],
    "authorization_needed": true,
    "next_action": "collect_info|validate_data|execute_operation|request_auth|clarify_intent",
    "alternative_collections": ["backup_option1", "backup_option2"]
}

Focus on:
1. Understanding the business intent
2. Finding the best matching collection
3. Identifying what data is already provided vs. what is missing
4. Determining appropriate next steps
`)
	return b.String(), nil
}

// normalize converts the model's answer into a Reasoning, discarding
// hallucinated collections and recomputing the next action when the model's
// choice is not usable.
func (a *agentStrategy) normalize(resp agentResponse, tc TurnContext) *Reasoning {
	target := resp.TargetCollection
	if target != "" && !a.rt.Registry.Has(target) {
		target = ""
	}

	reasoning := &Reasoning{
		Intent:              valueOr(resp.Intent, "unknown"),
		Confidence:          clamp(resp.Confidence, 0, 1),
		TargetCollection:    target,
		Rationale:           valueOr(resp.Reasoning, "Model analysis completed"),
		ExtractedData:       resp.ExtractedData,
		MissingRequired:     resp.MissingRequired,
		AuthorizationNeeded: resp.AuthorizationNeeded,
		Alternatives:        resp.Alternatives,
		Strategy:            a.Name(),
	}

	action := ActionType(resp.NextAction)
	if !action.valid() || target == "" {
		action = decideNextAction(target, reasoning.MissingRequired, reasoning.AuthorizationNeeded, tc.Authenticated)
	}
	reasoning.NextAction = action
	return reasoning
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
