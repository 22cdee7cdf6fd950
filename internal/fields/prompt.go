package fields

import (
	"fmt"

	"github.com/stewardhq/steward/internal/schema"
)

// PromptFor builds a user-facing request for a single field, including a
// format hint when the field type has one.
func (p *Processor) PromptFor(field string) string {
	def := p.catalog.Definition(field)
	prompt := fmt.Sprintf("Please provide your %s", def.DisplayName)
	if hint := formatHint(def.Type); hint != "" {
		prompt = fmt.Sprintf("%s (%s)", prompt, hint)
	}
	return prompt
}

func formatHint(ft schema.FieldType) string {
	switch ft {
	case schema.FieldPhone:
		return "10-digit mobile number"
	case schema.FieldDate:
		return "YYYY-MM-DD format"
	case schema.FieldEmail:
		return "email format (e.g., john@company.com)"
	case schema.FieldID:
		return "proper ID format"
	default:
		return ""
	}
}
