package authz

import "fmt"

// Role defines a single node in the role graph. Inherits names parent roles
// whose resolved permissions are folded into this role's.
type Role struct {
	Level       int
	Permissions []Permission
	Inherits    []string
	Description string
}

var roleTable = map[string]Role{
	"admin": {
		Level:       10,
		Permissions: []Permission{PermRead, PermWrite, PermUpdate, PermDelete, PermApprove, PermAdmin},
		Description: "System administrator with full access",
	},
	"hr_manager": {
		Level:       8,
		Permissions: []Permission{PermRead, PermWrite, PermUpdate, PermDelete, PermApprove},
		Inherits:    []string{"hr_staff"},
		Description: "HR manager with approval authority",
	},
	"finance_manager": {
		Level:       8,
		Permissions: []Permission{PermRead, PermWrite, PermUpdate, PermDelete, PermApprove},
		Inherits:    []string{"finance_staff"},
		Description: "Finance manager with approval authority",
	},
	"manager": {
		Level:       7,
		Permissions: []Permission{PermRead, PermWrite, PermUpdate, PermApprove},
		Inherits:    []string{"employee"},
		Description: "General manager role",
	},
	"hr_staff": {
		Level:       6,
		Permissions: []Permission{PermRead, PermWrite, PermUpdate},
		Inherits:    []string{"employee"},
		Description: "HR staff member",
	},
	"finance_staff": {
		Level:       6,
		Permissions: []Permission{PermRead, PermWrite, PermUpdate},
		Inherits:    []string{"employee"},
		Description: "Finance staff member",
	},
	"procurement_staff": {
		Level:       6,
		Permissions: []Permission{PermRead, PermWrite, PermUpdate},
		Inherits:    []string{"employee"},
		Description: "Procurement staff member",
	},
	"customer_service": {
		Level:       5,
		Permissions: []Permission{PermRead, PermWrite, PermUpdate},
		Inherits:    []string{"employee"},
		Description: "Customer service representative",
	},
	"employee": {
		Level:       3,
		Permissions: []Permission{PermRead, PermWrite},
		Description: "Regular employee",
	},
	"contractor": {
		Level:       2,
		Permissions: []Permission{PermRead},
		Description: "External contractor",
	},
	"guest": {
		Level:       1,
		Permissions: []Permission{PermRead},
		Description: "Guest user with read-only access",
	},
}

// Hierarchy holds the validated role graph with permissions resolved through
// inheritance. Construction fails on a cycle or an unknown parent.
type Hierarchy struct {
	roles    map[string]Role
	resolved map[string]map[Permission]bool
}

func NewHierarchy() (*Hierarchy, error) {
	return newHierarchy(roleTable)
}

func newHierarchy(roles map[string]Role) (*Hierarchy, error) {
	h := &Hierarchy{
		roles:    roles,
		resolved: make(map[string]map[Permission]bool, len(roles)),
	}

	const (
		unvisited = 0
		visiting  = 1
		done      = 2
	)
	state := make(map[string]int, len(roles))

	var resolve func(name string) (map[Permission]bool, error)
	resolve = func(name string) (map[Permission]bool, error) {
		role, ok := h.roles[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownRole, name)
		}
		switch state[name] {
		case done:
			return h.resolved[name], nil
		case visiting:
			return nil, fmt.Errorf("%w: at role %s", ErrRoleCycle, name)
		}
		state[name] = visiting

		perms := make(map[Permission]bool, len(role.Permissions))
		for _, p := range role.Permissions {
			perms[p] = true
		}
		for _, parent := range role.Inherits {
			inherited, err := resolve(parent)
			if err != nil {
				return nil, err
			}
			for p := range inherited {
				perms[p] = true
			}
		}

		h.resolved[name] = perms
		state[name] = done
		return perms, nil
	}

	for name := range roles {
		if _, err := resolve(name); err != nil {
			return nil, err
		}
	}
	return h, nil
}

// Has reports whether the role graph knows the given role.
func (h *Hierarchy) Has(role string) bool {
	_, ok := h.roles[role]
	return ok
}

// Resolved returns the transitive permission set for a single role. Unknown
// roles resolve to nothing.
func (h *Hierarchy) Resolved(role string) map[Permission]bool {
	perms := make(map[Permission]bool)
	for p := range h.resolved[role] {
		perms[p] = true
	}
	return perms
}

// PermissionsFor unions the resolved permission sets of every named role.
func (h *Hierarchy) PermissionsFor(roles []string) map[Permission]bool {
	perms := make(map[Permission]bool)
	for _, role := range roles {
		for p := range h.resolved[role] {
			perms[p] = true
		}
	}
	return perms
}

// Level returns the highest level among the given roles.
func (h *Hierarchy) Level(roles []string) int {
	highest := 0
	for _, name := range roles {
		if role, ok := h.roles[name]; ok && role.Level > highest {
			highest = role.Level
		}
	}
	return highest
}
