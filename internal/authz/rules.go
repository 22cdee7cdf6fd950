package authz

// Rule governs access to one collection. Empty AllowedRoles or
// AllowedDepartments means no restriction on that axis.
type Rule struct {
	Collection          string
	RequiredAccessLevel AccessLevel
	AllowedRoles        []string
	AllowedDepartments  []string
	RequiredPermissions []Permission
	Restrictions        map[string]any
}

var adminCollections = []string{
	"payroll_management", "performance_review", "employee_exit_clearance",
	"system_configuration", "role_management", "access_control",
	"system_audit_and_compliance_dashboard", "data_backup_and_restore",
}

var hrCollections = []string{
	"user_registration", "user_onboarding", "user_activation",
	"employee_leave_request", "training_registration", "recruitment_portal",
	"interview_scheduling", "offer_letter_generation", "attendance_tracking",
	"shift_scheduling", "grievance_management",
}

var financeCollections = []string{
	"payment_processing", "expense_reimbursement", "invoice_management",
	"vendor_management", "contract_management",
}

var procurementCollections = []string{
	"purchase_order", "supplier_registration", "inventory_management",
	"warehouse_management", "shipping_management",
}

var customerCollections = []string{
	"customer_support_ticket", "client_registration", "order_placement",
	"order_tracking", "customer_feedback_management",
}

var generalCollections = []string{
	"project_assignment", "meeting_scheduler", "travel_request",
	"it_asset_allocation", "knowledge_base", "faq_management",
	"announcements_notice_board", "knowledge_transfer_kt_handover",
}

func buildRules() map[string]Rule {
	rules := make(map[string]Rule)

	for _, name := range adminCollections {
		rules[name] = Rule{
			Collection:          name,
			RequiredAccessLevel: LevelAdminOnly,
			AllowedRoles:        []string{"admin", "hr_manager", "system_admin"},
			AllowedDepartments:  []string{"HR", "IT", "Administration"},
			RequiredPermissions: []Permission{PermAdmin},
			Restrictions:        map[string]any{"approval_required": true},
		}
	}

	for _, name := range hrCollections {
		rules[name] = Rule{
			Collection:          name,
			RequiredAccessLevel: LevelRoleBased,
			AllowedRoles:        []string{"hr_staff", "hr_manager", "admin", "manager"},
			AllowedDepartments:  []string{"HR", "Administration"},
			RequiredPermissions: []Permission{PermWrite},
			Restrictions: map[string]any{
				"field_restrictions": map[string]any{
					"salary": map[string]any{
						"allowed_roles": []string{"hr_manager", "admin"},
					},
				},
			},
		}
	}

	for _, name := range financeCollections {
		rules[name] = Rule{
			Collection:          name,
			RequiredAccessLevel: LevelRoleBased,
			AllowedRoles:        []string{"finance_staff", "finance_manager", "admin", "accountant"},
			AllowedDepartments:  []string{"Finance", "Accounting", "Administration"},
			RequiredPermissions: []Permission{PermWrite},
			Restrictions:        map[string]any{"approval_required_above": 10000},
		}
	}

	for _, name := range procurementCollections {
		rules[name] = Rule{
			Collection:          name,
			RequiredAccessLevel: LevelRoleBased,
			AllowedRoles:        []string{"procurement_staff", "warehouse_manager", "admin", "manager"},
			AllowedDepartments:  []string{"Procurement", "Warehouse", "Operations", "Administration"},
			RequiredPermissions: []Permission{PermWrite},
			Restrictions:        map[string]any{"approval_required_above": 5000},
		}
	}

	for _, name := range customerCollections {
		rules[name] = Rule{
			Collection:          name,
			RequiredAccessLevel: LevelAuthenticated,
			AllowedRoles:        []string{"customer_service", "sales", "manager", "admin"},
			AllowedDepartments:  []string{"Customer Service", "Sales", "Administration"},
			RequiredPermissions: []Permission{PermWrite},
			Restrictions:        map[string]any{},
		}
	}

	for _, name := range generalCollections {
		rules[name] = Rule{
			Collection:          name,
			RequiredAccessLevel: LevelAuthenticated,
			AllowedRoles:        []string{"employee", "manager", "admin"},
			RequiredPermissions: []Permission{PermWrite},
			Restrictions:        map[string]any{},
		}
	}

	return rules
}

var accessRules = buildRules()

// RuleFor returns the explicit access rule governing a collection. The
// second return is false when the collection falls under the default rule.
func RuleFor(collection string) (Rule, bool) {
	rule, ok := accessRules[collection]
	return rule, ok
}

// defaultRule covers collections without an explicit rule.
func defaultRule(collection string) Rule {
	return Rule{
		Collection:          collection,
		RequiredAccessLevel: LevelAuthenticated,
		AllowedRoles:        []string{"employee", "manager", "admin"},
		RequiredPermissions: []Permission{PermWrite},
		Restrictions:        map[string]any{},
	}
}

// operationPermission maps an operation string to the permission it needs.
// Unrecognized operations require write.
func operationPermission(operation string) Permission {
	switch operation {
	case "read":
		return PermRead
	case "write", "create":
		return PermWrite
	case "update":
		return PermUpdate
	case "delete":
		return PermDelete
	case "approve":
		return PermApprove
	case "admin":
		return PermAdmin
	default:
		return PermWrite
	}
}

type departmentProfile struct {
	DefaultRoles []string
	Restrictions map[string]any
}

var departmentProfiles = map[string]departmentProfile{
	"Administration": {
		DefaultRoles: []string{"admin", "manager"},
		Restrictions: map[string]any{},
	},
	"HR": {
		DefaultRoles: []string{"hr_staff", "hr_manager"},
		Restrictions: map[string]any{"sensitive_data_access": true},
	},
	"Finance": {
		DefaultRoles: []string{"finance_staff", "finance_manager"},
		Restrictions: map[string]any{"financial_approval_limit": 50000},
	},
	"IT": {
		DefaultRoles: []string{"system_admin", "employee"},
		Restrictions: map[string]any{"system_access": true},
	},
	"Procurement": {
		DefaultRoles: []string{"procurement_staff", "employee"},
		Restrictions: map[string]any{"procurement_limit": 25000},
	},
	"Sales": {
		DefaultRoles: []string{"employee", "manager"},
		Restrictions: map[string]any{},
	},
	"Customer Service": {
		DefaultRoles: []string{"customer_service", "employee"},
		Restrictions: map[string]any{},
	},
}
