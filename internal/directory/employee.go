// Package directory implements the employee directory domain. It provides
// types, data access, and business logic for the organizational records that
// authentication derives roles from.
package directory

import (
	"time"

	"github.com/google/uuid"
)

// Employee represents one directory entry. EmployeeID is the business
// identifier users authenticate with; ID is the storage key.
type Employee struct {
	ID         uuid.UUID `json:"id"`
	EmployeeID string    `json:"employee_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Department string    `json:"department"`
	Position   string    `json:"position"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CreateCommand carries the data needed to register an employee.
type CreateCommand struct {
	EmployeeID string `json:"employee_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
	Position   string `json:"position"`
}

// UpdateCommand carries the mutable directory fields. Nil fields are left
// unchanged.
type UpdateCommand struct {
	Name       *string `json:"name,omitempty"`
	Email      *string `json:"email,omitempty"`
	Department *string `json:"department,omitempty"`
	Position   *string `json:"position,omitempty"`
	Active     *bool   `json:"active,omitempty"`
}
