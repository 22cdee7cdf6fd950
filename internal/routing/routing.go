// Package routing maps free-text business requests onto the collection
// catalog. It combines four weighted signals (semantic keywords, business
// domain relevance, intent patterns, and direct name overlap) into a single
// capped confidence score with a tier classification.
package routing

// Tier classifies a decision's confidence.
type Tier string

const (
	TierHigh   Tier = "high"
	TierMedium Tier = "medium"
	TierLow    Tier = "low"
)

// Decision is the outcome of routing one input.
type Decision struct {
	Collection      string   `json:"collection"`
	Confidence      float64  `json:"confidence"`
	Tier            Tier     `json:"tier"`
	Reasoning       string   `json:"reasoning"`
	Alternatives    []string `json:"alternatives"`
	MatchedKeywords []string `json:"matched_keywords"`
	PrimaryDomain   string   `json:"primary_domain,omitempty"`

	// Fallback marks a decision where no collection scored at all and the
	// configured default was substituted.
	Fallback bool `json:"fallback,omitempty"`
}

// UserContext carries conversation facts that inform routing.
type UserContext struct {
	Authenticated bool
	EmployeeID    string
	Department    string
}

// Suggestion summarizes a collection offered as a likely match.
type Suggestion struct {
	Collection     string   `json:"collection"`
	DisplayName    string   `json:"display_name"`
	RequiredFields []string `json:"required_fields"`
	OptionalFields []string `json:"optional_fields"`
	BusinessDomain string   `json:"business_domain,omitempty"`
	TotalFields    int      `json:"total_fields"`
}
