package authz

import "sort"

// AccessLevel orders access tiers from least to most privileged. Comparison
// uses ordinal order.
type AccessLevel int

const (
	LevelPublic AccessLevel = iota
	LevelAuthenticated
	LevelRoleBased
	LevelDepartment
	LevelAdminOnly
)

func (l AccessLevel) String() string {
	switch l {
	case LevelPublic:
		return "public"
	case LevelAuthenticated:
		return "authenticated"
	case LevelRoleBased:
		return "role_based"
	case LevelDepartment:
		return "department"
	case LevelAdminOnly:
		return "admin_only"
	default:
		return "unknown"
	}
}

type Permission string

const (
	PermRead    Permission = "read"
	PermWrite   Permission = "write"
	PermUpdate  Permission = "update"
	PermDelete  Permission = "delete"
	PermApprove Permission = "approve"
	PermAdmin   Permission = "admin"
)

type DenialReason string

const (
	DenialNone              DenialReason = ""
	DenialUnknownCollection DenialReason = "collection_not_found"
	DenialAccessLevel       DenialReason = "insufficient_access_level"
	DenialRole              DenialReason = "role_not_allowed"
	DenialDepartment        DenialReason = "department_not_allowed"
	DenialPermission        DenialReason = "missing_permission"
)

// Profile is an authenticated user with resolved roles and permissions.
type Profile struct {
	EmployeeID  string              `json:"employee_id"`
	Department  string              `json:"department"`
	Position    string              `json:"position"`
	Roles       []string            `json:"roles"`
	Permissions map[Permission]bool `json:"-"`
	AccessLevel AccessLevel         `json:"access_level"`
	Active      bool                `json:"active"`
}

// Decision is the outcome of an authorization check.
type Decision struct {
	Authorized     bool           `json:"authorized"`
	Collection     string         `json:"collection"`
	Operation      string         `json:"operation"`
	Granted        []Permission   `json:"granted_permissions,omitempty"`
	Restrictions   map[string]any `json:"restrictions,omitempty"`
	DenialReason   DenialReason   `json:"denial_reason,omitempty"`
	RequiredAction string         `json:"required_action,omitempty"`
}

// Summary reports a user's overall reach across the registry.
type Summary struct {
	EmployeeID            string       `json:"employee_id"`
	Department            string       `json:"department"`
	Position              string       `json:"position"`
	Roles                 []string     `json:"roles"`
	AccessLevel           string       `json:"access_level"`
	Permissions           []Permission `json:"permissions"`
	AccessibleCollections []string     `json:"accessible_collections"`
	TotalCollections      int          `json:"total_collections"`
	AccessPercentage      float64      `json:"access_percentage"`
}

func sortedPermissions(set map[Permission]bool) []Permission {
	perms := make([]Permission, 0, len(set))
	for p := range set {
		perms = append(perms, p)
	}
	sort.Slice(perms, func(i, j int) bool { return perms[i] < perms[j] })
	return perms
}
