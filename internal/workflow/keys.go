package workflow

// State keys used by the turn graph.
const (
	KeyInput       = "input"
	KeyTurnContext = "turn_context"
	KeyReasoning   = "reasoning"
	KeyOutcome     = "outcome"
)
