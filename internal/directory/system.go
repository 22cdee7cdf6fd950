package directory

import (
	"context"

	"github.com/google/uuid"

	"github.com/stewardhq/steward/pkg/pagination"
)

// System defines the public contract for employee directory operations.
type System interface {
	Handler() *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Employee], error)

	Find(ctx context.Context, id uuid.UUID) (*Employee, error)
	FindByEmployeeID(ctx context.Context, employeeID string) (*Employee, error)
	Create(ctx context.Context, cmd CreateCommand) (*Employee, error)
	Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Employee, error)
	Deactivate(ctx context.Context, id uuid.UUID) error

	// Resolve satisfies the authorization engine's directory contract.
	Resolve(ctx context.Context, employeeID string) (department, position string, active, found bool, err error)
}
