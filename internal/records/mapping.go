package records

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/stewardhq/steward/pkg/query"
	"github.com/stewardhq/steward/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "records", "r").
	Project("id", "ID").
	Project("collection", "Collection").
	Project("fields", "Fields").
	Project("created_by", "CreatedBy").
	Project("session_id", "SessionID").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = query.SortField{
	Field:      "CreatedAt",
	Descending: true,
}

var attachmentProjection = query.
	NewProjectionMap("public", "record_attachments", "a").
	Project("id", "ID").
	Project("record_id", "RecordID").
	Project("filename", "Filename").
	Project("content_type", "ContentType").
	Project("size_bytes", "SizeBytes").
	Project("storage_key", "StorageKey").
	Project("uploaded_at", "UploadedAt")

// Filters contains optional filtering criteria for record queries.
// Nil fields are ignored. All fields use exact matching.
type Filters struct {
	Collection *string `json:"collection,omitempty"`
	CreatedBy  *string `json:"created_by,omitempty"`
	SessionID  *string `json:"session_id,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEquals("Collection", f.Collection).
		WhereEquals("CreatedBy", f.CreatedBy).
		WhereEquals("SessionID", f.SessionID)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if c := values.Get("collection"); c != "" {
		f.Collection = &c
	}

	if c := values.Get("created_by"); c != "" {
		f.CreatedBy = &c
	}

	if s := values.Get("session_id"); s != "" {
		f.SessionID = &s
	}

	return f
}

func scanRecord(s repository.Scanner) (Record, error) {
	var rec Record
	var fieldsRaw []byte

	err := s.Scan(
		&rec.ID,
		&rec.Collection,
		&fieldsRaw,
		&rec.CreatedBy,
		&rec.SessionID,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)

	if err != nil {
		return rec, err
	}

	if len(fieldsRaw) > 0 {
		if err := json.Unmarshal(fieldsRaw, &rec.Fields); err != nil {
			return rec, fmt.Errorf("unmarshal record fields: %w", err)
		}
	}

	if rec.Fields == nil {
		rec.Fields = map[string]any{}
	}

	return rec, nil
}

func scanAttachment(s repository.Scanner) (Attachment, error) {
	var a Attachment

	err := s.Scan(
		&a.ID,
		&a.RecordID,
		&a.Filename,
		&a.ContentType,
		&a.SizeBytes,
		&a.StorageKey,
		&a.UploadedAt,
	)

	return a, err
}
