package directory

import (
	"net/url"

	"github.com/stewardhq/steward/pkg/query"
	"github.com/stewardhq/steward/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "employees", "e").
	Project("id", "ID").
	Project("employee_id", "EmployeeID").
	Project("name", "Name").
	Project("email", "Email").
	Project("department", "Department").
	Project("position", "Position").
	Project("active", "Active").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = query.SortField{
	Field: "EmployeeID",
}

// Filters contains optional filtering criteria for directory queries.
// Nil fields are ignored. All fields use exact matching.
type Filters struct {
	Department *string `json:"department,omitempty"`
	Position   *string `json:"position,omitempty"`
	Active     *bool   `json:"active,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEquals("Department", f.Department).
		WhereEquals("Position", f.Position).
		WhereEquals("Active", f.Active)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if d := values.Get("department"); d != "" {
		f.Department = &d
	}

	if p := values.Get("position"); p != "" {
		f.Position = &p
	}

	switch values.Get("active") {
	case "true":
		active := true
		f.Active = &active
	case "false":
		active := false
		f.Active = &active
	}

	return f
}

func scanEmployee(s repository.Scanner) (Employee, error) {
	var e Employee

	err := s.Scan(
		&e.ID,
		&e.EmployeeID,
		&e.Name,
		&e.Email,
		&e.Department,
		&e.Position,
		&e.Active,
		&e.CreatedAt,
		&e.UpdatedAt,
	)

	return e, err
}
