// Package fields extracts, converts, and validates collection field values
// from natural language input. Extraction runs type-specific patterns first
// and contextual "field: value" phrasing second; every extracted value is
// typed, validated against the field catalog, and scored for confidence.
package fields

// Value is one processed field with its validation outcome.
type Value struct {
	Field      string   `json:"field"`
	Raw        string   `json:"raw"`
	Typed      any      `json:"typed"`
	Valid      bool     `json:"valid"`
	Errors     []string `json:"errors,omitempty"`
	Confidence float64  `json:"confidence"`
	Source     string   `json:"source"`
}

// Summary aggregates validation outcomes across a processing pass.
type Summary struct {
	Processed int      `json:"processed"`
	Valid     int      `json:"valid"`
	Invalid   int      `json:"invalid"`
	Missing   int      `json:"missing"`
	Errors    []string `json:"errors"`
	Status    string   `json:"status"`
}

// Result is the outcome of processing input against one collection.
type Result struct {
	Collection        string           `json:"collection"`
	Fields            map[string]Value `json:"fields"`
	MissingRequired   []string         `json:"missing_required"`
	CompletionPercent float64          `json:"completion_percent"`
	NextField         string           `json:"next_field,omitempty"`
	Prompt            string           `json:"prompt,omitempty"`
	Summary           Summary          `json:"summary"`
}

// Complete reports whether every required field is present and valid.
func (r *Result) Complete() bool {
	return len(r.MissingRequired) == 0
}

// Data returns the typed values of all valid fields.
func (r *Result) Data() map[string]any {
	data := make(map[string]any, len(r.Fields))
	for name, v := range r.Fields {
		if v.Valid {
			data[name] = v.Typed
		}
	}
	return data
}
