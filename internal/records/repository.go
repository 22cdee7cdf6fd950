package records

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/stewardhq/steward/internal/schema"
	"github.com/stewardhq/steward/pkg/pagination"
	"github.com/stewardhq/steward/pkg/query"
	"github.com/stewardhq/steward/pkg/repository"
	"github.com/stewardhq/steward/pkg/storage"
)

type repo struct {
	db         *sql.DB
	registry   *schema.Registry
	storage    storage.System
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a record repository implementing the System interface.
func New(
	db *sql.DB,
	registry *schema.Registry,
	store storage.System,
	logger *slog.Logger,
	pagination pagination.Config,
) System {
	return &repo{
		db:         db,
		registry:   registry,
		storage:    store,
		logger:     logger.With("system", "records"),
		pagination: pagination,
	}
}

func (r *repo) Handler(maxUploadSize int64) *Handler {
	return NewHandler(r, r.logger, r.pagination, maxUploadSize)
}

func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[Record], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Collection", "CreatedBy")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count records: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	items, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanRecord)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Record, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	rec, err := repository.QueryOne(ctx, r.db, q, args, scanRecord)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &rec, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Record, error) {
	if !r.registry.Has(cmd.Collection) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCollection, cmd.Collection)
	}

	fieldsJSON, err := json.Marshal(cmd.Fields)
	if err != nil {
		return nil, fmt.Errorf("marshal record fields: %w", err)
	}

	insertQ := `
		INSERT INTO records(collection, fields, created_by, session_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, collection, fields, created_by, session_id, created_at, updated_at`

	rec, err := repository.QueryOne(
		ctx, r.db, insertQ,
		[]any{cmd.Collection, fieldsJSON, cmd.CreatedBy, cmd.SessionID},
		scanRecord,
	)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("record created",
		"id", rec.ID,
		"collection", rec.Collection,
		"created_by", rec.CreatedBy,
	)
	return &rec, nil
}

func (r *repo) Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Record, error) {
	fieldsJSON, err := json.Marshal(cmd.Fields)
	if err != nil {
		return nil, fmt.Errorf("marshal record fields: %w", err)
	}

	updateQ := `
		UPDATE records
		SET fields = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id, collection, fields, created_by, session_id, created_at, updated_at`

	rec, err := repository.QueryOne(ctx, r.db, updateQ, []any{fieldsJSON, id}, scanRecord)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("record updated", "id", rec.ID, "updated_by", cmd.UpdatedBy)
	return &rec, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	attachments, err := r.Attachments(ctx, id)
	if err != nil {
		return err
	}

	_, err = repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		if _, err := tx.ExecContext(ctx, "DELETE FROM record_attachments WHERE record_id = $1", id); err != nil {
			return struct{}{}, err
		}
		if err := repository.ExecExpectOne(ctx, tx, "DELETE FROM records WHERE id = $1", id); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, nil
	})

	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	for _, a := range attachments {
		if delErr := r.storage.Delete(ctx, a.StorageKey); delErr != nil {
			r.logger.Warn("blob delete failed after DB delete", "key", a.StorageKey, "error", delErr)
		}
	}

	r.logger.Info("record deleted", "id", id)
	return nil
}

func (r *repo) Attach(ctx context.Context, recordID uuid.UUID, cmd AttachCommand) (*Attachment, error) {
	if _, err := r.Find(ctx, recordID); err != nil {
		return nil, err
	}

	id := uuid.New()
	key := buildStorageKey(recordID, id, sanitizeFilename(cmd.Filename))

	if err := r.storage.Upload(ctx, key, bytes.NewReader(cmd.Data), cmd.ContentType); err != nil {
		return nil, fmt.Errorf("upload attachment blob: %w", err)
	}

	insertQ := `
		INSERT INTO record_attachments(id, record_id, filename, content_type, size_bytes, storage_key)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, record_id, filename, content_type, size_bytes, storage_key, uploaded_at`

	insertArgs := []any{id, recordID, cmd.Filename, cmd.ContentType, int64(len(cmd.Data)), key}

	a, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Attachment, error) {
		return repository.QueryOne(ctx, tx, insertQ, insertArgs, scanAttachment)
	})

	if err != nil {
		if delErr := r.storage.Delete(ctx, key); delErr != nil {
			r.logger.Warn("compensating blob delete failed", "key", key, "error", delErr)
		}
		return nil, repository.MapError(err, ErrAttachmentNotFound, ErrDuplicate)
	}

	r.logger.Info("attachment stored", "id", a.ID, "record_id", recordID, "filename", a.Filename)
	return &a, nil
}

func (r *repo) Attachments(ctx context.Context, recordID uuid.UUID) ([]Attachment, error) {
	q, args := query.
		NewBuilder(attachmentProjection, query.SortField{Field: "UploadedAt"}).
		WhereEquals("RecordID", recordID).
		Build()

	items, err := repository.QueryMany(ctx, r.db, q, args, scanAttachment)
	if err != nil {
		return nil, fmt.Errorf("query attachments: %w", err)
	}
	return items, nil
}

func (r *repo) DownloadAttachment(ctx context.Context, id uuid.UUID) (*Attachment, io.ReadCloser, error) {
	q, args := query.NewBuilder(attachmentProjection).BuildSingle("ID", id)

	a, err := repository.QueryOne(ctx, r.db, q, args, scanAttachment)
	if err != nil {
		return nil, nil, repository.MapError(err, ErrAttachmentNotFound, ErrDuplicate)
	}

	reader, err := r.storage.Download(ctx, a.StorageKey)
	if err != nil {
		return nil, nil, fmt.Errorf("download attachment blob: %w", err)
	}
	return &a, reader, nil
}

func (r *repo) DeleteAttachment(ctx context.Context, id uuid.UUID) error {
	q, args := query.NewBuilder(attachmentProjection).BuildSingle("ID", id)

	a, err := repository.QueryOne(ctx, r.db, q, args, scanAttachment)
	if err != nil {
		return repository.MapError(err, ErrAttachmentNotFound, ErrDuplicate)
	}

	if err := repository.ExecExpectOne(
		ctx, r.db,
		"DELETE FROM record_attachments WHERE id = $1",
		id,
	); err != nil {
		return repository.MapError(err, ErrAttachmentNotFound, ErrDuplicate)
	}

	if delErr := r.storage.Delete(ctx, a.StorageKey); delErr != nil {
		r.logger.Warn("blob delete failed after DB delete", "key", a.StorageKey, "error", delErr)
	}

	r.logger.Info("attachment deleted", "id", id)
	return nil
}

func buildStorageKey(recordID, attachmentID uuid.UUID, filename string) string {
	return fmt.Sprintf("records/%s/%s/%s", recordID, attachmentID, filename)
}

func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	if name == "." || name == "" {
		name = "attachment"
	}
	return url.PathEscape(name)
}
