package workflow

import "errors"

// Domain errors for turn execution.
var (
	ErrReasoningFailed = errors.New("reasoning failed")
	ErrActionFailed    = errors.New("action failed")
	ErrMissingState    = errors.New("missing workflow state")
)
