package schema

import "strings"

// FieldType identifies how a field's raw text is converted and validated.
type FieldType string

const (
	FieldText     FieldType = "text"
	FieldEmail    FieldType = "email"
	FieldPhone    FieldType = "phone"
	FieldNumber   FieldType = "number"
	FieldDate     FieldType = "date"
	FieldBoolean  FieldType = "boolean"
	FieldID       FieldType = "id"
	FieldCurrency FieldType = "currency"
	FieldURL      FieldType = "url"
)

// ValidationRules constrains a field value. Zero values disable a rule;
// MinValue uses HasRange so a genuine zero lower bound still applies.
type ValidationRules struct {
	Pattern   string  `json:"pattern,omitempty"`
	MinLength int     `json:"min_length,omitempty"`
	MaxLength int     `json:"max_length,omitempty"`
	MinValue  float64 `json:"min_value,omitempty"`
	MaxValue  float64 `json:"max_value,omitempty"`
	HasRange  bool    `json:"has_range,omitempty"`
}

// FieldDefinition describes a field's type, presentation, and validation.
type FieldDefinition struct {
	Name        string          `json:"name"`
	Type        FieldType       `json:"type"`
	DisplayName string          `json:"display_name"`
	Description string          `json:"description"`
	Rules       ValidationRules `json:"rules"`
}

// Catalog resolves field definitions, preferring curated definitions for
// well-known fields and falling back to name-based type inference.
type Catalog struct {
	defined map[string]FieldDefinition
}

// NewCatalog builds the field catalog with its curated definitions.
func NewCatalog() *Catalog {
	return &Catalog{defined: definedFields}
}

// Definition returns the definition for a field. Unknown fields get an
// inferred type with that type's default validation rules.
func (c *Catalog) Definition(field string) FieldDefinition {
	if def, ok := c.defined[field]; ok {
		return def
	}

	ft := InferType(field)
	return FieldDefinition{
		Name:        field,
		Type:        ft,
		DisplayName: titleWords(field),
		Description: "Please provide " + strings.ReplaceAll(field, "_", " "),
		Rules:       defaultRules(ft),
	}
}

// InferType derives a field type from the field's name.
func InferType(field string) FieldType {
	f := strings.ToLower(field)

	switch {
	case strings.Contains(f, "email"):
		return FieldEmail
	case strings.Contains(f, "phone"), strings.Contains(f, "mobile"), strings.Contains(f, "contact"):
		return FieldPhone
	case strings.Contains(f, "_id"), strings.Contains(f, "id_"):
		return FieldID
	case strings.Contains(f, "date"), strings.Contains(f, "time"):
		return FieldDate
	case strings.Contains(f, "amount"), strings.Contains(f, "price"),
		strings.Contains(f, "cost"), strings.Contains(f, "salary"),
		strings.Contains(f, "fee"):
		return FieldCurrency
	case strings.Contains(f, "quantity"), strings.Contains(f, "count"),
		strings.Contains(f, "number"), strings.Contains(f, "age"):
		return FieldNumber
	case strings.Contains(f, "url"), strings.Contains(f, "website"):
		return FieldURL
	default:
		return FieldText
	}
}

func defaultRules(ft FieldType) ValidationRules {
	switch ft {
	case FieldText:
		return ValidationRules{MinLength: 1, MaxLength: 255}
	case FieldPhone:
		return ValidationRules{Pattern: `^\d{10}$`}
	case FieldID:
		return ValidationRules{MinLength: 3, MaxLength: 20}
	case FieldCurrency:
		return ValidationRules{MinValue: 0, MaxValue: 1_000_000, HasRange: true}
	case FieldNumber:
		return ValidationRules{MinValue: 0, MaxValue: 999_999, HasRange: true}
	default:
		return ValidationRules{}
	}
}

var definedFields = map[string]FieldDefinition{
	"employee_id": {
		Name:        "employee_id",
		Type:        FieldID,
		DisplayName: "Employee ID",
		Description: "Unique employee identifier (e.g., EMP001)",
		Rules:       ValidationRules{Pattern: `^(EMP|emp)\d{3,6}$`, MinLength: 6, MaxLength: 9},
	},
	"first_name": {
		Name:        "first_name",
		Type:        FieldText,
		DisplayName: "First Name",
		Description: "Your first name",
		Rules:       ValidationRules{MinLength: 1, MaxLength: 50, Pattern: `^[A-Za-z\s'-]+$`},
	},
	"last_name": {
		Name:        "last_name",
		Type:        FieldText,
		DisplayName: "Last Name",
		Description: "Your last name",
		Rules:       ValidationRules{MinLength: 1, MaxLength: 50, Pattern: `^[A-Za-z\s'-]+$`},
	},
	"email": {
		Name:        "email",
		Type:        FieldEmail,
		DisplayName: "Email Address",
		Description: "Your email address (e.g., john.doe@company.com)",
	},
	"mobile": {
		Name:        "mobile",
		Type:        FieldPhone,
		DisplayName: "Mobile Number",
		Description: "Your mobile phone number (10 digits)",
		Rules:       ValidationRules{Pattern: `^\d{10}$`},
	},
	"phone": {
		Name:        "phone",
		Type:        FieldPhone,
		DisplayName: "Phone Number",
		Description: "Phone number",
		Rules:       ValidationRules{Pattern: `^\d{10}$|^\+\d{1,3}\s?\d{10}$`},
	},
	"department": {
		Name:        "department",
		Type:        FieldText,
		DisplayName: "Department",
		Description: "Your department (e.g., IT, HR, Finance)",
		Rules:       ValidationRules{MinLength: 2, MaxLength: 100},
	},
	"position": {
		Name:        "position",
		Type:        FieldText,
		DisplayName: "Position",
		Description: "Your job position/title",
		Rules:       ValidationRules{MinLength: 2, MaxLength: 100},
	},
	"po_id": {
		Name:        "po_id",
		Type:        FieldID,
		DisplayName: "Purchase Order ID",
		Description: "Purchase order identifier (e.g., PO001)",
		Rules:       ValidationRules{Pattern: `^(PO|po)\d{3,6}$`},
	},
	"vendor_id": {
		Name:        "vendor_id",
		Type:        FieldID,
		DisplayName: "Vendor ID",
		Description: "Vendor identifier",
		Rules:       ValidationRules{Pattern: `^(VEN|ven)\d{3,6}$`},
	},
	"supplier_id": {
		Name:        "supplier_id",
		Type:        FieldID,
		DisplayName: "Supplier ID",
		Description: "Supplier identifier",
		Rules:       ValidationRules{Pattern: `^(SUP|sup)\d{3,6}$`},
	},
	"customer_id": {
		Name:        "customer_id",
		Type:        FieldID,
		DisplayName: "Customer ID",
		Description: "Customer identifier",
		Rules:       ValidationRules{Pattern: `^(CUS|cus)\d{3,6}$`},
	},
	"order_id": {
		Name:        "order_id",
		Type:        FieldID,
		DisplayName: "Order ID",
		Description: "Order identifier",
		Rules:       ValidationRules{Pattern: `^(ORD|ord)\d{3,6}$`},
	},
	"amount": {
		Name:        "amount",
		Type:        FieldCurrency,
		DisplayName: "Amount",
		Description: "Monetary amount (e.g., 1000.00)",
		Rules:       ValidationRules{MinValue: 0, MaxValue: 1_000_000, HasRange: true},
	},
	"salary": {
		Name:        "salary",
		Type:        FieldCurrency,
		DisplayName: "Salary",
		Description: "Annual salary amount",
		Rules:       ValidationRules{MinValue: 0, MaxValue: 10_000_000, HasRange: true},
	},
	"date": {
		Name:        "date",
		Type:        FieldDate,
		DisplayName: "Date",
		Description: "Date (YYYY-MM-DD format)",
	},
	"start_date": {
		Name:        "start_date",
		Type:        FieldDate,
		DisplayName: "Start Date",
		Description: "Start date (YYYY-MM-DD)",
	},
	"end_date": {
		Name:        "end_date",
		Type:        FieldDate,
		DisplayName: "End Date",
		Description: "End date (YYYY-MM-DD)",
	},
	"quantity": {
		Name:        "quantity",
		Type:        FieldNumber,
		DisplayName: "Quantity",
		Description: "Number of items",
		Rules:       ValidationRules{MinValue: 1, MaxValue: 10_000, HasRange: true},
	},
	"product": {
		Name:        "product",
		Type:        FieldText,
		DisplayName: "Product",
		Description: "Product name or description",
		Rules:       ValidationRules{MinLength: 2, MaxLength: 200},
	},
	"description": {
		Name:        "description",
		Type:        FieldText,
		DisplayName: "Description",
		Description: "Additional details or description",
		Rules:       ValidationRules{MaxLength: 1000},
	},
	"notes": {
		Name:        "notes",
		Type:        FieldText,
		DisplayName: "Notes",
		Description: "Additional notes or comments",
		Rules:       ValidationRules{MaxLength: 500},
	},
	"reason": {
		Name:        "reason",
		Type:        FieldText,
		DisplayName: "Reason",
		Description: "Reason or justification",
		Rules:       ValidationRules{MaxLength: 500},
	},
}
