package fields

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/stewardhq/steward/internal/schema"
)

// dateLayouts are tried in order; the first successful parse wins.
var dateLayouts = []string{"2006-01-02", "01/02/2006", "01-02-2006", "02/01/2006"}

var currencyStripRE = regexp.MustCompile(`[$,\s]`)

var (
	trueWords  = map[string]struct{}{"true": {}, "yes": {}, "1": {}, "on": {}, "enable": {}}
	falseWords = map[string]struct{}{"false": {}, "no": {}, "0": {}, "off": {}, "disable": {}}
)

// convert turns a raw string into the field's typed representation.
// Conversion failures are reported as validation errors and leave the raw
// string as the value.
func convert(raw string, ft schema.FieldType) (any, []string) {
	switch ft {
	case schema.FieldNumber:
		if strings.Contains(raw, ".") {
			f, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return raw, []string{fmt.Sprintf("Could not parse number: %s", raw)}
			}
			return f, nil
		}
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return raw, []string{fmt.Sprintf("Could not parse number: %s", raw)}
		}
		return n, nil

	case schema.FieldCurrency:
		cleaned := currencyStripRE.ReplaceAllString(raw, "")
		f, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return raw, []string{fmt.Sprintf("Could not parse amount: %s", raw)}
		}
		return f, nil

	case schema.FieldDate:
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, raw); err == nil {
				return t, nil
			}
		}
		return raw, []string{fmt.Sprintf("Could not parse date: %s", raw)}

	case schema.FieldBoolean:
		lowered := strings.ToLower(raw)
		if _, ok := trueWords[lowered]; ok {
			return true, nil
		}
		if _, ok := falseWords[lowered]; ok {
			return false, nil
		}
		return raw, []string{fmt.Sprintf("Could not parse boolean: %s", raw)}

	default:
		return raw, nil
	}
}

var emailFormatRE = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// validate checks a typed value against its field definition. Errors are
// accumulated in rule order so messages are stable.
func validate(typed any, def schema.FieldDefinition, required bool) []string {
	var errs []string

	text := stringify(typed)
	if strings.TrimSpace(text) == "" {
		if required {
			errs = append(errs, fmt.Sprintf("%s is required", def.DisplayName))
		}
		return errs
	}

	switch def.Type {
	case schema.FieldEmail:
		if !emailFormatRE.MatchString(text) {
			errs = append(errs, "Invalid email format")
		}
	case schema.FieldPhone:
		if def.Rules.Pattern != "" && !matchPattern(def.Rules.Pattern, text) {
			errs = append(errs, "Invalid phone number format")
		}
	case schema.FieldID:
		if def.Rules.Pattern != "" && !matchPattern(def.Rules.Pattern, text) {
			errs = append(errs, "Invalid ID format")
		}
	}

	if def.Rules.MinLength > 0 && len(text) < def.Rules.MinLength {
		errs = append(errs, fmt.Sprintf("Minimum length is %d characters", def.Rules.MinLength))
	}
	if def.Rules.MaxLength > 0 && len(text) > def.Rules.MaxLength {
		errs = append(errs, fmt.Sprintf("Maximum length is %d characters", def.Rules.MaxLength))
	}

	if def.Rules.HasRange {
		if n, ok := asFloat(typed); ok {
			if n < def.Rules.MinValue {
				errs = append(errs, fmt.Sprintf("Minimum value is %g", def.Rules.MinValue))
			}
			if n > def.Rules.MaxValue {
				errs = append(errs, fmt.Sprintf("Maximum value is %g", def.Rules.MaxValue))
			}
		}
	}

	if def.Type == schema.FieldText && def.Rules.Pattern != "" && !matchPattern(def.Rules.Pattern, text) {
		errs = append(errs, "Value contains invalid characters")
	}

	return errs
}

// confidence scores how trustworthy an extracted value is: 0.5 base, +0.3
// for passing validation, +0.2 when the raw value matches the field type's
// strict pattern, +0.1 when the field name appears within 50 characters of
// the value in the original input. Capped at 1.0.
func confidence(raw string, def schema.FieldDefinition, errCount int, fullInput string) float64 {
	score := 0.5

	if errCount == 0 {
		score += 0.3
	}

	if matchesTypePattern(raw, def.Type) {
		score += 0.2
	}

	lowered := strings.ToLower(fullInput)
	value := strings.ToLower(raw)
	for _, name := range []string{def.Name, strings.ToLower(def.DisplayName)} {
		ni := strings.Index(lowered, strings.ToLower(name))
		vi := strings.Index(lowered, value)
		if ni >= 0 && vi >= 0 && abs(ni-vi) < 50 {
			score += 0.1
			break
		}
	}

	return min(score, 1.0)
}

func matchesTypePattern(raw string, ft schema.FieldType) bool {
	switch ft {
	case schema.FieldEmail:
		return emailRE.MatchString(raw)
	case schema.FieldPhone:
		for _, re := range phoneREs {
			if re.MatchString(raw) {
				return true
			}
		}
	case schema.FieldID:
		return idRE.MatchString(raw)
	case schema.FieldDate:
		for _, re := range dateREs {
			if re.MatchString(raw) {
				return true
			}
		}
	case schema.FieldCurrency, schema.FieldNumber:
		return standaloneNumRE.MatchString(" " + raw)
	}
	return false
}

func matchPattern(pattern, value string) bool {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return true
	}
	return re.MatchString(value)
}

func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case time.Time:
		return t.Format("2006-01-02")
	default:
		return fmt.Sprintf("%v", v)
	}
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
