package conversation

import "context"

// System defines the public contract for conversation operations.
type System interface {
	Handler() *Handler

	Process(ctx context.Context, cmd ChatCommand) (*TurnResult, error)
}
