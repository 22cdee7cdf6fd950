package schema

// collectionData defines every business collection the service manages.
// Order is significant: routing tie-breaks resolve in favor of the
// earlier entry, so collections are listed in their canonical order.
var collectionData = []Collection{
	{
		Name:     "user_registration",
		Required: []string{"email", "first_name", "last_name", "password"},
		Optional: []string{"phone", "position", "employee_id"},
	},
	{
		Name:     "supplier_registration",
		Required: []string{"company_name", "contact_email", "business_type", "tax_id"},
		Optional: []string{"requesting_user_id", "phone"},
	},
	{
		Name:     "performance_review",
		Required: []string{"employee_id", "reviewer_id", "review_period", "overall_rating"},
		Optional: []string{"rating"},
	},
	{
		Name:     "audit_log_viewer",
		Required: []string{"user_id", "action", "timestamp", "resource"},
		Optional: nil,
	},
	{
		Name:     "health_and_safety_incident_reporting",
		Required: []string{"incident_date", "location", "incident_type", "reporter_id"},
		Optional: []string{"description"},
	},
	{
		Name:     "grievance_management",
		Required: []string{"employee_id", "grievance_type", "description", "submission_date"},
		Optional: []string{"status"},
	},
	{
		Name:     "travel_request",
		Required: []string{"employee_id", "destination", "start_date", "end_date", "purpose"},
		Optional: []string{"status"},
	},
	{
		Name:     "payment_processing",
		Required: []string{"amount", "currency", "payment_method", "transaction_id"},
		Optional: []string{"customer_id"},
	},
	{
		Name:     "purchase_order",
		Required: []string{"supplier_id", "order_date", "total_amount", "items"},
		Optional: []string{"status"},
	},
	{
		Name:     "customer_feedback_management",
		Required: []string{"customer_id", "feedback_type", "rating", "comments"},
		Optional: nil,
	},
	{
		Name:     "training_registration",
		Required: []string{"employee_id", "training_program", "start_date", "trainer_id"},
		Optional: []string{"location"},
	},
	{
		Name:     "interview_scheduling",
		Required: []string{"candidate_id", "position", "interview_date", "interviewer_id"},
		Optional: []string{"interview_type"},
	},
	{
		Name:     "chatbot_training_data",
		Required: []string{"question", "answer", "category", "confidence_score"},
		Optional: nil,
	},
	{
		Name:     "expense_reimbursement",
		Required: []string{"employee_id", "expense_type", "amount", "expense_date"},
		Optional: nil,
	},
	{
		Name:     "user_onboarding",
		Required: []string{"user_id", "onboarding_stage", "start_date", "assigned_mentor"},
		Optional: []string{"progress"},
	},
	{
		Name:     "data_backup_and_restore",
		Required: []string{"backup_type", "timestamp", "status", "data_size"},
		Optional: nil,
	},
	{
		Name:     "order_tracking",
		Required: []string{"order_id", "customer_id", "status", "last_updated"},
		Optional: nil,
	},
	{
		Name:     "knowledge_base",
		Required: []string{"title", "content", "category", "author_id"},
		Optional: nil,
	},
	{
		Name:     "role_management",
		Required: []string{"role_name", "permissions", "description", "created_by"},
		Optional: nil,
	},
	{
		Name:     "employee_exit_clearance",
		Required: []string{"employee_id", "last_working_day", "clearance_status", "hr_approval"},
		Optional: []string{"status"},
	},
	{
		Name:     "invoice_management",
		Required: []string{"invoice_number", "customer_id", "amount", "due_date"},
		Optional: nil,
	},
	{
		Name:     "shipping_management",
		Required: []string{"shipment_id", "origin", "destination", "carrier"},
		Optional: nil,
	},
	{
		Name:     "knowledge_transfer_kt_handover",
		Required: []string{"project_id", "from_employee", "to_employee", "handover_date"},
		Optional: []string{"status"},
	},
	{
		Name:     "faq_management",
		Required: []string{"question", "answer", "category", "created_by"},
		Optional: nil,
	},
	{
		Name:     "shift_scheduling",
		Required: []string{"employee_id", "shift_date", "start_time", "end_time"},
		Optional: []string{"location"},
	},
	{
		Name:     "it_asset_allocation",
		Required: []string{"asset_id", "employee_id", "asset_type", "allocation_date"},
		Optional: nil,
	},
	{
		Name:     "contract_management",
		Required: []string{"contract_id", "vendor_name", "contract_type", "start_date", "end_date"},
		Optional: []string{"status"},
	},
	{
		Name:     "customer_support_ticket",
		Required: []string{"ticket_id", "customer_id", "issue_type", "priority"},
		Optional: []string{"status"},
	},
	{
		Name:     "attendance_tracking",
		Required: []string{"employee_id", "date", "check_in_time", "check_out_time"},
		Optional: nil,
	},
	{
		Name:     "vendor_management",
		Required: []string{"vendor_id", "company_name", "contact_email", "service_category"},
		Optional: []string{"rating"},
	},
	{
		Name:     "notification_settings",
		Required: []string{"user_id", "notification_type", "enabled", "delivery_method"},
		Optional: nil,
	},
	{
		Name:     "client_registration",
		Required: []string{"company_name", "contact_person", "email", "industry"},
		Optional: nil,
	},
	{
		Name:     "product_catalog",
		Required: []string{"product_id", "name", "category", "price"},
		Optional: nil,
	},
	{
		Name:     "inventory_management",
		Required: []string{"item_id", "item_name", "current_stock", "minimum_stock"},
		Optional: nil,
	},
	{
		Name:     "access_control",
		Required: []string{"user_id", "resource", "permission_level", "granted_by"},
		Optional: nil,
	},
	{
		Name:     "employee_leave_request",
		Required: []string{"employee_id", "leave_type", "start_date", "end_date"},
		Optional: nil,
	},
	{
		Name:     "project_assignment",
		Required: []string{"project_id", "employee_id", "role", "start_date"},
		Optional: nil,
	},
	{
		Name:     "order_placement",
		Required: []string{"customer_id", "items", "total_amount", "order_date"},
		Optional: nil,
	},
	{
		Name:     "marketing_campaign_management",
		Required: []string{"campaign_name", "start_date", "end_date", "budget"},
		Optional: nil,
	},
	{
		Name:     "meeting_scheduler",
		Required: []string{"meeting_title", "organizer_id", "start_time", "end_time"},
		Optional: nil,
	},
	{
		Name:     "payroll_management",
		Required: []string{"employee_id", "pay_period", "gross_salary", "deductions"},
		Optional: nil,
	},
	{
		Name:     "user_activation",
		Required: []string{"user_id", "activation_token", "status", "created_date"},
		Optional: nil,
	},
	{
		Name:     "compliance_report",
		Required: []string{"report_type", "reporting_period", "compliance_status", "created_by"},
		Optional: nil,
	},
	{
		Name:     "warehouse_management",
		Required: []string{"warehouse_id", "operation_type", "item_id", "quantity"},
		Optional: nil,
	},
	{
		Name:     "recruitment_portal",
		Required: []string{"job_id", "candidate_id", "application_date", "status"},
		Optional: nil,
	},
	{
		Name:     "system_audit_and_compliance_dashboard",
		Required: []string{"audit_type", "timestamp", "system_component", "compliance_score"},
		Optional: nil,
	},
	{
		Name:     "offer_letter_generation",
		Required: []string{"candidate_id", "position", "salary", "start_date"},
		Optional: nil,
	},
	{
		Name:     "announcements_notice_board",
		Required: []string{"title", "content", "posted_by", "post_date"},
		Optional: nil,
	},
	{
		Name:     "system_configuration",
		Required: []string{"config_key", "config_value", "module", "updated_by"},
		Optional: nil,
	},
}
