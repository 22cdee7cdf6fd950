package routing_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"slices"
	"testing"

	"github.com/stewardhq/steward/internal/routing"
	"github.com/stewardhq/steward/internal/schema"
)

func newRouter(t *testing.T) *routing.Router {
	t.Helper()

	registry, err := schema.NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}

	cfg := routing.Config{}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("Config.Finalize() error = %v", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return routing.New(cfg, registry, logger)
}

func TestRoutePurchaseOrder(t *testing.T) {
	r := newRouter(t)

	d := r.Route(context.Background(),
		"Create purchase order for supplier SUP001, laptops x10, total $15000",
		routing.UserContext{})

	if d.Collection != "purchase_order" {
		t.Errorf("Collection = %q, want %q", d.Collection, "purchase_order")
	}
	if d.Fallback {
		t.Error("Fallback = true, want false")
	}
	if d.Confidence <= 0 {
		t.Errorf("Confidence = %v, want > 0", d.Confidence)
	}
	if !slices.Contains(d.MatchedKeywords, "purchase") {
		t.Errorf("MatchedKeywords = %v, want to contain %q", d.MatchedKeywords, "purchase")
	}
	if len(d.Alternatives) > 3 {
		t.Errorf("len(Alternatives) = %d, want at most 3", len(d.Alternatives))
	}
}

func TestRouteByKeywords(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"supplier signup", "I want to register a new supplier", "supplier_registration"},
		{"leave request", "I need vacation leave next week", "employee_leave_request"},
		{"inventory check", "update warehouse inventory stock levels", "inventory_management"},
		{"meeting", "schedule a meeting with the team", "meeting_scheduler"},
	}

	r := newRouter(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := r.Route(context.Background(), tt.input, routing.UserContext{})
			if d.Collection != tt.want {
				t.Errorf("Route(%q).Collection = %q, want %q", tt.input, d.Collection, tt.want)
			}
			if d.Fallback {
				t.Errorf("Route(%q).Fallback = true, want false", tt.input)
			}
		})
	}
}

func TestRouteFallback(t *testing.T) {
	r := newRouter(t)

	for _, input := range []string{"", "zzyx qwfp vbnm"} {
		d := r.Route(context.Background(), input, routing.UserContext{})

		if !d.Fallback {
			t.Errorf("Route(%q).Fallback = false, want true", input)
		}
		if d.Collection != "customer_support_ticket" {
			t.Errorf("Route(%q).Collection = %q, want default %q", input, d.Collection, "customer_support_ticket")
		}
		if d.Confidence != 0.1 {
			t.Errorf("Route(%q).Confidence = %v, want 0.1", input, d.Confidence)
		}
		if d.Tier != routing.TierLow {
			t.Errorf("Route(%q).Tier = %q, want %q", input, d.Tier, routing.TierLow)
		}
	}
}

func TestRouteConfidenceCapped(t *testing.T) {
	r := newRouter(t)

	d := r.Route(context.Background(),
		"purchase order po buy order purchase procurement buying purchase order",
		routing.UserContext{})

	if d.Confidence > 1.0 {
		t.Errorf("Confidence = %v, want at most 1.0", d.Confidence)
	}
	if d.Collection != "purchase_order" {
		t.Errorf("Collection = %q, want %q", d.Collection, "purchase_order")
	}
}

func TestRouteReasoningPresent(t *testing.T) {
	r := newRouter(t)

	d := r.Route(context.Background(), "process a payment transaction", routing.UserContext{})
	if d.Reasoning == "" {
		t.Error("Reasoning is empty")
	}
}

func TestSuggestEmptyPartial(t *testing.T) {
	r := newRouter(t)

	got := r.Suggest(context.Background(), "", 3)
	if len(got) != 3 {
		t.Fatalf("len(Suggest) = %d, want 3", len(got))
	}
	if got[0].Collection != "user_registration" {
		t.Errorf("Suggest[0].Collection = %q, want %q", got[0].Collection, "user_registration")
	}
}

func TestSuggestPartialInput(t *testing.T) {
	r := newRouter(t)

	got := r.Suggest(context.Background(), "create a purchase order", 2)
	if len(got) == 0 {
		t.Fatal("Suggest returned nothing")
	}
	if len(got) > 2 {
		t.Fatalf("len(Suggest) = %d, want at most 2", len(got))
	}
	if got[0].Collection != "purchase_order" {
		t.Errorf("Suggest[0].Collection = %q, want %q", got[0].Collection, "purchase_order")
	}
}

func TestInfo(t *testing.T) {
	r := newRouter(t)

	info, err := r.Info("purchase_order")
	if err != nil {
		t.Fatalf("Info(purchase_order) error = %v", err)
	}

	if info.DisplayName != "Purchase Order" {
		t.Errorf("DisplayName = %q, want %q", info.DisplayName, "Purchase Order")
	}
	wantRequired := []string{"supplier_id", "order_date", "total_amount", "items"}
	if !slices.Equal(info.RequiredFields, wantRequired) {
		t.Errorf("RequiredFields = %v, want %v", info.RequiredFields, wantRequired)
	}
	if info.BusinessDomain != "supplier_vendor" {
		t.Errorf("BusinessDomain = %q, want %q", info.BusinessDomain, "supplier_vendor")
	}
	if info.TotalFields != len(info.RequiredFields)+len(info.OptionalFields) {
		t.Errorf("TotalFields = %d, want %d", info.TotalFields, len(info.RequiredFields)+len(info.OptionalFields))
	}
}

func TestInfoUnknownCollection(t *testing.T) {
	r := newRouter(t)

	_, err := r.Info("nope")
	if !errors.Is(err, schema.ErrNotFound) {
		t.Errorf("Info(nope) error = %v, want ErrNotFound", err)
	}
}

func TestConfigDefaults(t *testing.T) {
	cfg := routing.Config{}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	sum := cfg.SemanticWeight + cfg.DomainWeight + cfg.IntentWeight + cfg.NameWeight
	if sum < 0.999 || sum > 1.001 {
		t.Errorf("weight sum = %v, want 1.0", sum)
	}
	if cfg.HighThreshold != 0.8 || cfg.MediumThreshold != 0.5 {
		t.Errorf("thresholds = {%v, %v}, want {0.8, 0.5}", cfg.HighThreshold, cfg.MediumThreshold)
	}
	if cfg.DefaultCollection != "customer_support_ticket" {
		t.Errorf("DefaultCollection = %q, want %q", cfg.DefaultCollection, "customer_support_ticket")
	}
}

func TestConfigValidation(t *testing.T) {
	cfg := routing.Config{
		SemanticWeight:  0.5,
		DomainWeight:    0.3,
		IntentWeight:    0.3,
		NameWeight:      0.3,
		HighThreshold:   0.8,
		MediumThreshold: 0.5,
	}
	if err := cfg.Finalize(nil); err == nil {
		t.Error("Finalize() with weights summing to 1.4 succeeded, want error")
	}

	cfg = routing.Config{
		HighThreshold:   0.5,
		MediumThreshold: 0.8,
	}
	if err := cfg.Finalize(nil); err == nil {
		t.Error("Finalize() with inverted thresholds succeeded, want error")
	}
}

func TestRouteKeywordMonotonicity(t *testing.T) {
	r := newRouter(t)

	inputs := []string{
		"po",
		"po purchase",
		"po purchase order procurement",
	}

	prev := 0.0
	for _, input := range inputs {
		d := r.Route(context.Background(), input, routing.UserContext{})
		if d.Collection != "purchase_order" {
			t.Fatalf("Route(%q).Collection = %q, want purchase_order", input, d.Collection)
		}
		if d.Confidence < prev {
			t.Errorf("Route(%q).Confidence = %v, want >= %v (more keywords should not weaken the match)",
				input, d.Confidence, prev)
		}
		prev = d.Confidence
	}
}
