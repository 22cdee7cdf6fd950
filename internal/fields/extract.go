package fields

import (
	"regexp"
	"strings"

	"github.com/stewardhq/steward/internal/schema"
)

var (
	emailRE = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)

	phoneREs = []*regexp.Regexp{
		regexp.MustCompile(`\b\d{10}\b`),
		regexp.MustCompile(`\+\d{1,3}\s?\d{10}\b`),
		regexp.MustCompile(`\b\d{3}[-.\s]?\d{3}[-.\s]?\d{4}\b`),
	}

	idRE = regexp.MustCompile(`\b(?i:EMP|PO|VEN|SUP|CUS|ORD)\d{3,6}\b`)

	dateREs = []*regexp.Regexp{
		regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`),
		regexp.MustCompile(`\b\d{2}/\d{2}/\d{4}\b`),
		regexp.MustCompile(`\b\d{2}-\d{2}-\d{4}\b`),
	}

	// Dollar amounts are preferred; bare numbers only count when not glued
	// to an identifier like SUP001.
	currencySymbolRE = regexp.MustCompile(`\$\s?(\d[\d,]*\.?\d*)`)
	standaloneNumRE  = regexp.MustCompile(`(?:^|[^A-Za-z0-9$.])(\d+(?:\.\d+)?)\b`)

	// Quantity shorthand like "laptops x10".
	quantityRE = regexp.MustCompile(`(?i)[x*](\d+)\b`)
	itemRE     = regexp.MustCompile(`(?i)\b([a-z]+(?:\s+[a-z]+)*\s*x\s*\d+)\b`)
)

// idPrefixes rejects cross-assignment of typed identifiers: a SUP value
// never lands in employee_id.
var idPrefixes = map[string][]string{
	"employee_id": {"EMP", "emp"},
	"po_id":       {"PO", "po"},
	"vendor_id":   {"VEN", "ven"},
	"supplier_id": {"SUP", "sup"},
	"customer_id": {"CUS", "cus"},
	"order_id":    {"ORD", "ord"},
}

func (p *Processor) extractValues(input string, fieldNames []string) map[string]string {
	extracted := make(map[string]string)

	for _, field := range fieldNames {
		def := p.catalog.Definition(field)
		if raw, ok := extractByType(input, field, def.Type); ok {
			extracted[field] = raw
		}
	}

	for _, field := range fieldNames {
		if _, ok := extracted[field]; ok {
			continue
		}
		if raw, ok := extractByContext(input, field); ok {
			extracted[field] = raw
		}
	}

	return extracted
}

func extractByType(input, field string, ft schema.FieldType) (string, bool) {
	switch ft {
	case schema.FieldEmail:
		if m := emailRE.FindString(input); m != "" {
			return m, true
		}
	case schema.FieldPhone:
		for _, re := range phoneREs {
			if m := re.FindString(input); m != "" {
				return m, true
			}
		}
	case schema.FieldID:
		for _, m := range idRE.FindAllString(input, -1) {
			if idMatchesField(m, field) {
				return m, true
			}
		}
	case schema.FieldDate:
		for _, re := range dateREs {
			if m := re.FindString(input); m != "" {
				return m, true
			}
		}
	case schema.FieldCurrency:
		if m := currencySymbolRE.FindStringSubmatch(input); m != nil {
			return m[1], true
		}
		if m := standaloneNumRE.FindStringSubmatch(input); m != nil {
			return m[1], true
		}
	case schema.FieldNumber:
		if m := standaloneNumRE.FindStringSubmatch(input); m != nil {
			return m[1], true
		}
		if m := quantityRE.FindStringSubmatch(input); m != nil {
			return m[1], true
		}
	case schema.FieldText:
		if isItemField(field) {
			if m := itemRE.FindString(input); m != "" {
				return m, true
			}
		}
	}
	return "", false
}

// idMatchesField enforces that a typed identifier's prefix belongs to the
// field it is assigned to. Fields without a registered prefix accept any id.
func idMatchesField(id, field string) bool {
	prefixes, ok := idPrefixes[field]
	if !ok {
		return true
	}
	for _, prefix := range prefixes {
		if strings.HasPrefix(id, prefix) {
			return true
		}
	}
	return false
}

func isItemField(field string) bool {
	f := strings.ToLower(field)
	return strings.Contains(f, "item") || f == "product" || f == "products"
}

// extractByContext finds values introduced by the field's own name:
// "field: value", "field is value", or "my field is value", accepting
// underscore, space, and hyphen spellings of the field name.
func extractByContext(input, field string) (string, bool) {
	variations := []string{
		field,
		strings.ReplaceAll(field, "_", " "),
		strings.ReplaceAll(field, "_", "-"),
	}

	for _, variation := range variations {
		quoted := regexp.QuoteMeta(variation)
		patterns := []string{
			`(?i)` + quoted + `\s*[:=]\s*([^\s,;]+)`,
			`(?i)` + quoted + `\s+is\s+([^\s,;]+)`,
			`(?i)my\s+` + quoted + `\s+is\s+([^\s,;]+)`,
		}

		for _, pattern := range patterns {
			re, err := regexp.Compile(pattern)
			if err != nil {
				continue
			}
			if m := re.FindStringSubmatch(input); m != nil {
				return strings.TrimSpace(m[1]), true
			}
		}
	}
	return "", false
}
