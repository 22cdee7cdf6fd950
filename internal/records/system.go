package records

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/stewardhq/steward/pkg/pagination"
)

// System defines the public contract for record persistence operations.
type System interface {
	Handler(maxUploadSize int64) *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Record], error)

	Find(ctx context.Context, id uuid.UUID) (*Record, error)
	Create(ctx context.Context, cmd CreateCommand) (*Record, error)
	Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Record, error)
	Delete(ctx context.Context, id uuid.UUID) error

	Attach(ctx context.Context, recordID uuid.UUID, cmd AttachCommand) (*Attachment, error)
	Attachments(ctx context.Context, recordID uuid.UUID) ([]Attachment, error)
	DownloadAttachment(ctx context.Context, id uuid.UUID) (*Attachment, io.ReadCloser, error)
	DeleteAttachment(ctx context.Context, id uuid.UUID) error
}
