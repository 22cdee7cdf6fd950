package schema_test

import (
	"errors"
	"testing"

	"github.com/stewardhq/steward/internal/schema"
)

func newRegistry(t *testing.T) *schema.Registry {
	t.Helper()
	r, err := schema.NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}
	return r
}

func TestRegistryCollectionCount(t *testing.T) {
	r := newRegistry(t)
	if got := len(r.Collections()); got != 49 {
		t.Errorf("len(Collections()) = %d, want 49", got)
	}
}

func TestRegistryCanonicalOrder(t *testing.T) {
	r := newRegistry(t)
	names := r.Names()
	if len(names) == 0 {
		t.Fatal("Names() returned no collections")
	}
	if names[0] != "user_registration" {
		t.Errorf("Names()[0] = %q, want %q", names[0], "user_registration")
	}
}

func TestRegistryHas(t *testing.T) {
	r := newRegistry(t)

	for _, name := range []string{
		"purchase_order",
		"customer_support_ticket",
		"employee_leave_request",
		"payroll_management",
	} {
		if !r.Has(name) {
			t.Errorf("Has(%q) = false, want true", name)
		}
	}

	if r.Has("nonexistent_collection") {
		t.Error("Has(nonexistent_collection) = true, want false")
	}
}

func TestRegistryCollectionNotFound(t *testing.T) {
	r := newRegistry(t)
	_, err := r.Collection("nope")
	if !errors.Is(err, schema.ErrNotFound) {
		t.Errorf("Collection(nope) error = %v, want ErrNotFound", err)
	}
}

func TestPurchaseOrderFields(t *testing.T) {
	r := newRegistry(t)
	c, err := r.Collection("purchase_order")
	if err != nil {
		t.Fatalf("Collection(purchase_order) error = %v", err)
	}

	wantRequired := []string{"supplier_id", "order_date", "total_amount", "items"}
	if len(c.Required) != len(wantRequired) {
		t.Fatalf("Required = %v, want %v", c.Required, wantRequired)
	}
	for i, f := range wantRequired {
		if c.Required[i] != f {
			t.Errorf("Required[%d] = %q, want %q", i, c.Required[i], f)
		}
	}
}

func TestCollectionRequiredFields(t *testing.T) {
	tests := []struct {
		collection string
		required   []string
	}{
		{"payment_processing", []string{"amount", "currency", "payment_method", "transaction_id"}},
		{"customer_support_ticket", []string{"ticket_id", "customer_id", "issue_type", "priority"}},
		{"user_registration", []string{"email", "first_name", "last_name", "password"}},
		{"meeting_scheduler", []string{"meeting_title", "organizer_id", "start_time", "end_time"}},
		{"payroll_management", []string{"employee_id", "pay_period", "gross_salary", "deductions"}},
		{"travel_request", []string{"employee_id", "destination", "start_date", "end_date", "purpose"}},
	}

	r := newRegistry(t)
	for _, tt := range tests {
		t.Run(tt.collection, func(t *testing.T) {
			c, err := r.Collection(tt.collection)
			if err != nil {
				t.Fatalf("Collection(%q) error = %v", tt.collection, err)
			}
			if len(c.Required) != len(tt.required) {
				t.Fatalf("Required = %v, want %v", c.Required, tt.required)
			}
			for i, f := range tt.required {
				if c.Required[i] != f {
					t.Errorf("Required[%d] = %q, want %q", i, c.Required[i], f)
				}
			}
		})
	}
}

func TestCollectionFieldsOrder(t *testing.T) {
	r := newRegistry(t)
	c, _ := r.Collection("purchase_order")

	fields := c.Fields()
	want := len(c.Required) + len(c.Optional)
	if len(fields) != want {
		t.Fatalf("len(Fields()) = %d, want %d", len(fields), want)
	}
	for i, f := range c.Required {
		if fields[i] != f {
			t.Errorf("Fields()[%d] = %q, want required field %q", i, fields[i], f)
		}
	}
}

func TestCollectionIsRequired(t *testing.T) {
	r := newRegistry(t)
	c, _ := r.Collection("purchase_order")

	if !c.IsRequired("supplier_id") {
		t.Error("IsRequired(supplier_id) = false, want true")
	}
	if c.IsRequired("status") {
		t.Error("IsRequired(status) = true, want false")
	}
}

func TestCollectionDisplayName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"purchase_order", "Purchase Order"},
		{"customer_support_ticket", "Customer Support Ticket"},
		{"faq_management", "Faq Management"},
	}

	r := newRegistry(t)
	for _, tt := range tests {
		c, err := r.Collection(tt.name)
		if err != nil {
			t.Fatalf("Collection(%q) error = %v", tt.name, err)
		}
		if got := c.DisplayName(); got != tt.want {
			t.Errorf("DisplayName(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestInferType(t *testing.T) {
	tests := []struct {
		field string
		want  schema.FieldType
	}{
		{"email", schema.FieldEmail},
		{"contact_email", schema.FieldEmail},
		{"mobile", schema.FieldPhone},
		{"supplier_id", schema.FieldID},
		{"order_date", schema.FieldDate},
		{"start_time", schema.FieldDate},
		{"total_amount", schema.FieldCurrency},
		{"gross_salary", schema.FieldCurrency},
		{"price", schema.FieldCurrency},
		{"quantity", schema.FieldNumber},
		{"website", schema.FieldURL},
		{"items", schema.FieldText},
		{"description", schema.FieldText},
	}

	for _, tt := range tests {
		if got := schema.InferType(tt.field); got != tt.want {
			t.Errorf("InferType(%q) = %q, want %q", tt.field, got, tt.want)
		}
	}
}

func TestCatalogCuratedDefinition(t *testing.T) {
	c := schema.NewCatalog()

	def := c.Definition("employee_id")
	if def.Type != schema.FieldID {
		t.Errorf("Definition(employee_id).Type = %q, want %q", def.Type, schema.FieldID)
	}
	if def.DisplayName != "Employee ID" {
		t.Errorf("Definition(employee_id).DisplayName = %q, want %q", def.DisplayName, "Employee ID")
	}
	if def.Rules.Pattern == "" {
		t.Error("Definition(employee_id).Rules.Pattern is empty")
	}
}

func TestCatalogInferredDefinition(t *testing.T) {
	c := schema.NewCatalog()

	def := c.Definition("order_date")
	if def.Type != schema.FieldDate {
		t.Errorf("Definition(order_date).Type = %q, want %q", def.Type, schema.FieldDate)
	}
	if def.DisplayName != "Order Date" {
		t.Errorf("Definition(order_date).DisplayName = %q, want %q", def.DisplayName, "Order Date")
	}
	if def.Description == "" {
		t.Error("Definition(order_date).Description is empty")
	}
}

func TestCatalogDefaultTextRules(t *testing.T) {
	c := schema.NewCatalog()

	def := c.Definition("some_unknown_field")
	if def.Type != schema.FieldText {
		t.Fatalf("Definition(some_unknown_field).Type = %q, want %q", def.Type, schema.FieldText)
	}
	if def.Rules.MinLength != 1 || def.Rules.MaxLength != 255 {
		t.Errorf("text rules = {MinLength: %d, MaxLength: %d}, want {1, 255}",
			def.Rules.MinLength, def.Rules.MaxLength)
	}
}

func TestRequiredOptionalDisjoint(t *testing.T) {
	r := newRegistry(t)

	for _, c := range r.Collections() {
		required := make(map[string]struct{}, len(c.Required))
		for _, f := range c.Required {
			required[f] = struct{}{}
		}
		for _, f := range c.Optional {
			if _, ok := required[f]; ok {
				t.Errorf("%s: field %q is both required and optional", c.Name, f)
			}
		}
	}
}
