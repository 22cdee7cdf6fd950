package routing

// stopWords are dropped during input normalization.
var stopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {},
	"in": {}, "on": {}, "at": {}, "to": {}, "for": {}, "of": {},
	"with": {}, "by": {},
}

// collectionKeywords maps each collection to the vocabulary that signals it.
var collectionKeywords = map[string][]string{
	"user_registration":                     {"register", "signup", "account", "user", "profile", "create", "join"},
	"user_onboarding":                       {"onboard", "setup", "permissions", "access", "initialize"},
	"user_activation":                       {"activate", "enable", "start", "begin"},
	"supplier_registration":                 {"supplier", "vendor", "partner", "contractor"},
	"client_registration":                   {"client", "customer", "company", "organization"},
	"product_catalog":                       {"product", "catalog", "item", "goods", "merchandise"},
	"inventory_management":                  {"inventory", "stock", "warehouse", "storage", "goods"},
	"order_placement":                       {"order", "place", "purchase", "buy", "acquire"},
	"order_tracking":                        {"track", "trace", "follow", "monitor", "status"},
	"payment_processing":                    {"payment", "pay", "transaction", "billing", "charge"},
	"employee_leave_request":                {"leave", "vacation", "holiday", "time", "off", "absence"},
	"payroll_management":                    {"payroll", "salary", "wage", "compensation", "payment"},
	"training_registration":                 {"training", "course", "education", "learning", "skill"},
	"performance_review":                    {"performance", "review", "evaluation", "assessment", "rating"},
	"customer_support_ticket":               {"support", "help", "assistance", "issue", "problem", "ticket"},
	"project_assignment":                    {"project", "assignment", "task", "work", "job"},
	"meeting_scheduler":                     {"meeting", "schedule", "appointment", "conference", "call"},
	"it_asset_allocation":                   {"asset", "equipment", "device", "hardware", "allocation"},
	"compliance_report":                     {"compliance", "regulation", "audit", "report"},
	"audit_log_viewer":                      {"audit", "log", "history", "record", "tracking"},
	"recruitment_portal":                    {"recruitment", "hiring", "candidate", "recruit", "job"},
	"interview_scheduling":                  {"interview", "screening", "assessment"},
	"offer_letter_generation":               {"offer", "letter", "employment", "position"},
	"employee_exit_clearance":               {"exit", "resignation", "clearance", "leaving"},
	"travel_request":                        {"travel", "trip", "journey", "business", "visit"},
	"expense_reimbursement":                 {"expense", "reimbursement", "claim", "refund"},
	"vendor_management":                     {"vendor", "supplier", "partner", "contractor", "management"},
	"invoice_management":                    {"invoice", "bill", "billing", "payment", "charge"},
	"shipping_management":                   {"shipping", "delivery", "dispatch", "transport"},
	"warehouse_management":                  {"warehouse", "storage", "facility", "location"},
	"purchase_order":                        {"purchase", "order", "po", "procurement", "buying"},
	"contract_management":                   {"contract", "agreement", "terms", "legal"},
	"knowledge_base":                        {"knowledge", "documentation", "wiki", "information"},
	"faq_management":                        {"faq", "question", "answer", "help", "guide"},
	"system_configuration":                  {"system", "configuration", "settings", "setup"},
	"role_management":                       {"role", "permission", "access", "authority"},
	"access_control":                        {"access", "control", "security", "authorization"},
	"notification_settings":                 {"notification", "alert", "reminder", "message"},
	"chatbot_training_data":                 {"chatbot", "bot", "ai", "training", "data"},
	"attendance_tracking":                   {"attendance", "checkin", "checkout", "presence"},
	"shift_scheduling":                      {"shift", "schedule", "roster", "rotation"},
	"health_and_safety_incident_reporting":  {"safety", "incident", "accident", "health", "report"},
	"grievance_management":                  {"grievance", "complaint", "dispute", "issue"},
	"knowledge_transfer_kt_handover":        {"handover", "transfer", "knowledge", "kt"},
	"customer_feedback_management":          {"feedback", "review", "rating", "opinion"},
	"marketing_campaign_management":         {"marketing", "campaign", "promotion", "advertising"},
	"data_backup_and_restore":               {"backup", "restore", "recovery", "data"},
	"system_audit_and_compliance_dashboard": {"dashboard", "audit", "compliance", "monitoring"},
	"announcements_notice_board":            {"announcement", "notice", "news", "bulletin"},
}

// keywordWeights boosts keywords that strongly indicate a specific
// collection. Keywords absent from a collection's map score 0.5.
var keywordWeights = map[string]map[string]float64{
	"user_registration":       {"register": 1.0, "user": 0.9, "account": 0.8, "signup": 1.0},
	"purchase_order":          {"purchase": 1.0, "order": 0.9, "po": 1.0, "buy": 0.8},
	"supplier_registration":   {"supplier": 1.0, "vendor": 0.9, "register": 0.8},
	"employee_leave_request":  {"leave": 1.0, "vacation": 0.9, "time off": 1.0},
	"payroll_management":      {"payroll": 1.0, "salary": 0.9, "payment": 0.7},
	"customer_support_ticket": {"support": 1.0, "help": 0.8, "issue": 0.8, "problem": 0.8},
	"meeting_scheduler":       {"meeting": 1.0, "schedule": 0.9, "appointment": 0.9},
	"inventory_management":    {"inventory": 1.0, "stock": 0.9, "warehouse": 0.8},
}

// businessDomains groups collections under named business areas. The
// highest scoring domain becomes the decision's primary domain.
var businessDomains = []businessDomain{
	{
		Name: "user_management",
		Collections: []string{
			"user_registration", "user_onboarding", "user_activation",
			"role_management", "access_control",
		},
	},
	{
		Name: "supplier_vendor",
		Collections: []string{
			"supplier_registration", "vendor_management", "purchase_order",
			"contract_management", "invoice_management",
		},
	},
	{
		Name: "customer_client",
		Collections: []string{
			"client_registration", "customer_support_ticket",
			"customer_feedback_management", "order_placement", "order_tracking",
		},
	},
	{
		Name: "hr_employee",
		Collections: []string{
			"employee_leave_request", "payroll_management", "training_registration",
			"performance_review", "recruitment_portal", "interview_scheduling",
			"offer_letter_generation", "employee_exit_clearance", "attendance_tracking",
			"shift_scheduling", "grievance_management",
		},
	},
	{
		Name: "inventory_products",
		Collections: []string{
			"product_catalog", "inventory_management", "warehouse_management",
			"shipping_management",
		},
	},
	{
		Name: "financial",
		Collections: []string{
			"payment_processing", "expense_reimbursement", "payroll_management",
			"invoice_management",
		},
	},
	{
		Name: "operations",
		Collections: []string{
			"project_assignment", "meeting_scheduler", "travel_request",
			"it_asset_allocation", "compliance_report", "audit_log_viewer",
		},
	},
	{
		Name: "knowledge_support",
		Collections: []string{
			"knowledge_base", "faq_management", "customer_support_ticket",
			"chatbot_training_data", "knowledge_transfer_kt_handover",
		},
	},
	{
		Name: "system_admin",
		Collections: []string{
			"system_configuration", "notification_settings", "data_backup_and_restore",
			"system_audit_and_compliance_dashboard", "announcements_notice_board",
		},
	},
	{
		Name: "safety_compliance",
		Collections: []string{
			"health_and_safety_incident_reporting", "compliance_report",
			"system_audit_and_compliance_dashboard",
		},
	},
	{
		Name: "marketing_business",
		Collections: []string{
			"marketing_campaign_management", "customer_feedback_management",
			"announcements_notice_board",
		},
	},
}

type businessDomain struct {
	Name        string
	Collections []string
}

// intentPatterns map action vocabulary to the collections that action
// typically targets, with a per-pattern weight.
var intentPatterns = []intentPattern{
	{
		Name:        "registration",
		Keywords:    []string{"register", "sign up", "create", "new", "join", "enroll"},
		Collections: []string{"user_registration", "supplier_registration", "client_registration", "training_registration"},
		Weight:      1.0,
	},
	{
		Name:        "request",
		Keywords:    []string{"request", "need", "want", "apply", "submit"},
		Collections: []string{"employee_leave_request", "travel_request", "expense_reimbursement"},
		Weight:      0.9,
	},
	{
		Name:        "order",
		Keywords:    []string{"order", "purchase", "buy", "place order"},
		Collections: []string{"order_placement", "purchase_order"},
		Weight:      1.0,
	},
	{
		Name:        "track",
		Keywords:    []string{"track", "status", "check", "monitor", "follow"},
		Collections: []string{"order_tracking", "attendance_tracking"},
		Weight:      0.8,
	},
	{
		Name:        "schedule",
		Keywords:    []string{"schedule", "book", "appointment", "meeting"},
		Collections: []string{"meeting_scheduler", "interview_scheduling", "shift_scheduling"},
		Weight:      0.9,
	},
	{
		Name:        "manage",
		Keywords:    []string{"manage", "administration", "control", "handle"},
		Collections: []string{"vendor_management", "role_management", "grievance_management"},
		Weight:      0.7,
	},
	{
		Name:        "report",
		Keywords:    []string{"report", "incident", "issue", "problem", "complaint"},
		Collections: []string{"health_and_safety_incident_reporting", "customer_support_ticket", "compliance_report"},
		Weight:      0.8,
	},
}

type intentPattern struct {
	Name        string
	Keywords    []string
	Collections []string
	Weight      float64
}
