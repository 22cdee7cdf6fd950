// Package records implements persistence for business records produced by
// completed conversations. Each record stores a validated field map for one
// collection, with optional file attachments held in blob storage.
package records

import (
	"time"

	"github.com/google/uuid"
)

// Record is one stored business record. Fields holds the validated field
// map as submitted at creation.
type Record struct {
	ID         uuid.UUID      `json:"id"`
	Collection string         `json:"collection"`
	Fields     map[string]any `json:"fields"`
	CreatedBy  string         `json:"created_by"`
	SessionID  string         `json:"session_id"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// Attachment is a file linked to a record, with the payload in blob storage.
type Attachment struct {
	ID          uuid.UUID `json:"id"`
	RecordID    uuid.UUID `json:"record_id"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	StorageKey  string    `json:"storage_key"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

// CreateCommand carries the data needed to persist a record.
type CreateCommand struct {
	Collection string         `json:"collection"`
	Fields     map[string]any `json:"fields"`
	CreatedBy  string         `json:"created_by"`
	SessionID  string         `json:"session_id"`
}

// UpdateCommand replaces a record's field map.
type UpdateCommand struct {
	Fields    map[string]any `json:"fields"`
	UpdatedBy string         `json:"updated_by"`
}

// AttachCommand carries an attachment payload for upload.
type AttachCommand struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Data        []byte `json:"-"`
}
