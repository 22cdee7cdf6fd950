package fields

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/stewardhq/steward/internal/schema"
)

// Processor extracts, converts, and validates field values for any
// registered collection.
type Processor struct {
	registry *schema.Registry
	catalog  *schema.Catalog
	logger   *slog.Logger
}

func New(registry *schema.Registry, catalog *schema.Catalog, logger *slog.Logger) *Processor {
	return &Processor{
		registry: registry,
		catalog:  catalog,
		logger:   logger.With("system", "fields"),
	}
}

// Process merges previously collected values with anything extractable from
// input, then converts and validates every known field for the collection.
// Existing values take precedence over freshly extracted ones.
func (p *Processor) Process(collection, input string, existing map[string]string) (*Result, error) {
	col, err := p.registry.Collection(collection)
	if err != nil {
		return nil, err
	}

	all := col.Fields()
	raw := make(map[string]string, len(all))
	extracted := p.extractValues(input, all)
	for field, value := range extracted {
		raw[field] = value
	}
	for field, value := range existing {
		if strings.TrimSpace(value) != "" {
			raw[field] = value
		}
	}

	result := &Result{
		Collection: col.Name,
		Fields:     make(map[string]Value, len(raw)),
	}

	for _, field := range all {
		value, ok := raw[field]
		if !ok {
			continue
		}
		def := p.catalog.Definition(field)
		required := col.IsRequired(field)

		typed, convErrs := convert(value, def.Type)
		errs := convErrs
		errs = append(errs, validate(typed, def, required)...)

		source := "extracted"
		if _, fromExisting := existing[field]; fromExisting {
			source = "provided"
		}

		result.Fields[field] = Value{
			Field:      field,
			Raw:        value,
			Typed:      typed,
			Valid:      len(errs) == 0,
			Errors:     errs,
			Confidence: confidence(value, def, len(errs), input),
			Source:     source,
		}
	}

	p.finalize(result, col)

	p.logger.Debug("processed fields",
		"collection", col.Name,
		"extracted", len(extracted),
		"valid", result.Summary.Valid,
		"missing", len(result.MissingRequired))

	return result, nil
}

// finalize computes completion state from the validated field set. Missing
// required fields are reported in collection declaration order and the
// first one becomes the next prompt target.
func (p *Processor) finalize(result *Result, col *schema.Collection) {
	validRequired := 0
	for _, field := range col.Required {
		v, ok := result.Fields[field]
		if ok && v.Valid {
			validRequired++
			continue
		}
		result.MissingRequired = append(result.MissingRequired, field)
	}

	if len(col.Required) > 0 {
		result.CompletionPercent = float64(validRequired) / float64(len(col.Required)) * 100
	} else {
		result.CompletionPercent = 100
	}

	var errs []string
	for _, field := range col.Fields() {
		v, ok := result.Fields[field]
		if !ok {
			continue
		}
		result.Summary.Processed++
		if v.Valid {
			result.Summary.Valid++
		} else {
			result.Summary.Invalid++
			for _, e := range v.Errors {
				errs = append(errs, fmt.Sprintf("%s: %s", field, e))
			}
		}
	}
	result.Summary.Missing = len(result.MissingRequired)
	result.Summary.Errors = errs

	switch {
	case result.Summary.Invalid > 0:
		result.Summary.Status = "has_errors"
	case len(result.MissingRequired) > 0:
		result.Summary.Status = "incomplete"
	default:
		result.Summary.Status = "complete"
	}

	if len(result.MissingRequired) > 0 {
		result.NextField = result.MissingRequired[0]
		result.Prompt = p.PromptFor(result.NextField)
	}
}
