package authz

import (
	"context"
	"log/slog"
	"slices"
	"sort"
	"strings"

	"github.com/stewardhq/steward/internal/schema"
)

// Directory resolves an employee identifier to organizational facts.
// found=false is recoverable; the engine falls back to pattern inference.
type Directory interface {
	Resolve(ctx context.Context, employeeID string) (department, position string, active, found bool, err error)
}

// Engine answers authentication and authorization questions against the
// role graph and per-collection access rules.
type Engine struct {
	registry  *schema.Registry
	hierarchy *Hierarchy
	rules     map[string]Rule
	directory Directory
	cache     *profileCache
	logger    *slog.Logger
}

// New validates the role graph (a cycle is a configuration error) and builds
// the per-collection rule set.
func New(cfg Config, registry *schema.Registry, directory Directory, logger *slog.Logger) (*Engine, error) {
	hierarchy, err := NewHierarchy()
	if err != nil {
		return nil, err
	}
	return &Engine{
		registry:  registry,
		hierarchy: hierarchy,
		rules:     accessRules,
		directory: directory,
		cache:     newProfileCache(cfg.ProfileTTLDuration()),
		logger:    logger.With("system", "authz"),
	}, nil
}

// Authenticate builds a profile for an employee, consulting the directory
// first and falling back to identifier-pattern inference when the employee
// is not on file. Profiles are cached with a TTL.
func (e *Engine) Authenticate(ctx context.Context, employeeID string) (*Profile, error) {
	if profile, ok := e.cache.get(employeeID); ok {
		return profile, nil
	}

	department, position, active, found, err := e.directory.Resolve(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if !found {
		department = inferDepartment(employeeID)
		position = inferPosition(employeeID)
		active = true
	}

	roles := assignRoles(department, position, employeeID)
	profile := &Profile{
		EmployeeID:  employeeID,
		Department:  department,
		Position:    position,
		Roles:       roles,
		Permissions: e.hierarchy.PermissionsFor(roles),
		AccessLevel: accessLevelFor(roles, department),
		Active:      active,
	}

	e.cache.put(employeeID, profile)
	e.logger.Info("user authenticated", "employee_id", employeeID, "roles", roles, "department", department)
	return profile, nil
}

// Authorize checks a user against a collection's access rule for an
// operation. Checks run in a fixed order: access level, roles, departments,
// permission.
func (e *Engine) Authorize(profile *Profile, collection, operation string) Decision {
	decision := Decision{Collection: collection, Operation: operation}

	if !e.registry.Has(collection) {
		decision.DenialReason = DenialUnknownCollection
		decision.RequiredAction = "contact_admin"
		return decision
	}

	rule, ok := e.rules[collection]
	if !ok {
		rule = defaultRule(collection)
	}

	if profile.AccessLevel < rule.RequiredAccessLevel {
		decision.DenialReason = DenialAccessLevel
		decision.RequiredAction = "upgrade_access"
		return decision
	}

	if len(rule.AllowedRoles) > 0 && !hasAnyRole(profile.Roles, rule.AllowedRoles) {
		decision.DenialReason = DenialRole
		decision.RequiredAction = "contact_admin"
		return decision
	}

	if len(rule.AllowedDepartments) > 0 && !slices.Contains(rule.AllowedDepartments, profile.Department) {
		decision.DenialReason = DenialDepartment
		decision.RequiredAction = "contact_admin"
		return decision
	}

	required := operationPermission(operation)
	if !profile.Permissions[required] {
		decision.DenialReason = DenialPermission
		decision.RequiredAction = "request_permission"
		return decision
	}

	decision.Authorized = true
	decision.Granted = grantedPermissions(profile, rule)
	decision.Restrictions = mergedRestrictions(profile, rule)
	return decision
}

// FieldAccess gates a single field. Collection access is required first;
// field_restrictions inside the rule's restrictions then narrow by role or
// department. Unrestricted fields are allowed.
func (e *Engine) FieldAccess(profile *Profile, collection, field, operation string) bool {
	decision := e.Authorize(profile, collection, operation)
	if !decision.Authorized {
		return false
	}

	restrictions, ok := decision.Restrictions["field_restrictions"].(map[string]any)
	if !ok {
		return true
	}
	rule, ok := restrictions[field].(map[string]any)
	if !ok {
		return true
	}

	if roles, ok := rule["allowed_roles"].([]string); ok {
		return hasAnyRole(profile.Roles, roles)
	}
	if departments, ok := rule["allowed_departments"].([]string); ok {
		return slices.Contains(departments, profile.Department)
	}
	return true
}

// AccessibleCollections lists every collection the user may perform the
// operation on, in registry order.
func (e *Engine) AccessibleCollections(profile *Profile, operation string) []string {
	var accessible []string
	for _, col := range e.registry.Collections() {
		if e.Authorize(profile, col.Name, operation).Authorized {
			accessible = append(accessible, col.Name)
		}
	}
	return accessible
}

// Summarize reports the user's overall reach across the registry.
func (e *Engine) Summarize(profile *Profile) Summary {
	accessible := e.AccessibleCollections(profile, "write")
	total := len(e.registry.Collections())

	pct := 0.0
	if total > 0 {
		pct = float64(len(accessible)) / float64(total) * 100
	}

	return Summary{
		EmployeeID:            profile.EmployeeID,
		Department:            profile.Department,
		Position:              profile.Position,
		Roles:                 profile.Roles,
		AccessLevel:           profile.AccessLevel.String(),
		Permissions:           sortedPermissions(profile.Permissions),
		AccessibleCollections: accessible,
		TotalCollections:      total,
		AccessPercentage:      pct,
	}
}

func grantedPermissions(profile *Profile, rule Rule) []Permission {
	if len(rule.RequiredPermissions) == 0 {
		return sortedPermissions(profile.Permissions)
	}
	granted := make(map[Permission]bool)
	for _, p := range rule.RequiredPermissions {
		if profile.Permissions[p] {
			granted[p] = true
		}
	}
	return sortedPermissions(granted)
}

// mergedRestrictions overlays department restrictions with the rule's own;
// rule values win on key conflict.
func mergedRestrictions(profile *Profile, rule Rule) map[string]any {
	merged := make(map[string]any)
	if dept, ok := departmentProfiles[profile.Department]; ok {
		for k, v := range dept.Restrictions {
			merged[k] = v
		}
	}
	for k, v := range rule.Restrictions {
		merged[k] = v
	}
	return merged
}

func hasAnyRole(held, allowed []string) bool {
	for _, role := range allowed {
		if slices.Contains(held, role) {
			return true
		}
	}
	return false
}

func inferDepartment(employeeID string) string {
	id := strings.ToUpper(employeeID)
	switch {
	case strings.HasPrefix(id, "EMP001"), strings.HasPrefix(id, "EMP002"):
		return "Administration"
	case strings.HasPrefix(id, "EMP003"):
		return "HR"
	case strings.HasPrefix(id, "EMP004"):
		return "Finance"
	case strings.HasPrefix(id, "EMP005"):
		return "Procurement"
	default:
		return "General"
	}
}

func inferPosition(employeeID string) string {
	switch strings.ToUpper(employeeID) {
	case "EMP001", "EMP002":
		return "Administrator"
	case "EMP003":
		return "HR Manager"
	case "EMP004":
		return "Finance Manager"
	case "EMP005":
		return "Procurement Manager"
	default:
		return "Employee"
	}
}

func assignRoles(department, position, employeeID string) []string {
	set := map[string]bool{"employee": true}

	id := strings.ToUpper(employeeID)
	lowered := strings.ToLower(position)
	if id == "EMP001" || id == "EMP002" || strings.HasPrefix(lowered, "admin") {
		set["admin"] = true
	}

	isManager := strings.Contains(lowered, "manager")
	switch department {
	case "Administration":
		set["admin"] = true
		set["manager"] = true
	case "HR":
		set["hr_staff"] = true
		if isManager {
			set["hr_manager"] = true
		}
	case "Finance":
		set["finance_staff"] = true
		if isManager {
			set["finance_manager"] = true
		}
	case "Procurement":
		set["procurement_staff"] = true
		if isManager {
			set["warehouse_manager"] = true
		}
	case "Customer Service":
		set["customer_service"] = true
	case "IT":
		if strings.Contains(lowered, "admin") {
			set["system_admin"] = true
		}
	}

	if isManager {
		set["manager"] = true
	}

	roles := make([]string, 0, len(set))
	for role := range set {
		roles = append(roles, role)
	}
	sort.Strings(roles)
	return roles
}

func accessLevelFor(roles []string, department string) AccessLevel {
	if slices.Contains(roles, "admin") {
		return LevelAdminOnly
	}
	for _, role := range roles {
		if strings.HasSuffix(role, "_manager") {
			return LevelRoleBased
		}
	}
	switch department {
	case "HR", "Finance", "Procurement":
		return LevelRoleBased
	}
	return LevelAuthenticated
}
