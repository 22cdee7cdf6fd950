package routing

import (
	"context"
	"strings"
)

// commonCollections are offered when there is no input to analyze.
var commonCollections = []string{
	"user_registration",
	"purchase_order",
	"customer_support_ticket",
	"employee_leave_request",
	"supplier_registration",
}

// Suggest returns up to limit collection suggestions for a partial input.
// Empty input yields the most commonly used collections.
func (r *Router) Suggest(ctx context.Context, partial string, limit int) []Suggestion {
	if limit <= 0 {
		limit = len(commonCollections)
	}

	var names []string
	if strings.TrimSpace(partial) == "" {
		names = commonCollections
	} else {
		decision := r.Route(ctx, partial, UserContext{})
		names = append([]string{decision.Collection}, decision.Alternatives...)
	}

	suggestions := make([]Suggestion, 0, limit)
	for _, name := range names {
		if len(suggestions) == limit {
			break
		}
		info, err := r.Info(name)
		if err != nil {
			continue
		}
		suggestions = append(suggestions, *info)
	}
	return suggestions
}

// Info describes a collection's fields and business domain.
func (r *Router) Info(name string) (*Suggestion, error) {
	c, err := r.registry.Collection(name)
	if err != nil {
		return nil, err
	}

	return &Suggestion{
		Collection:     c.Name,
		DisplayName:    c.DisplayName(),
		RequiredFields: c.Required,
		OptionalFields: c.Optional,
		BusinessDomain: domainOf(c.Name),
		TotalFields:    len(c.Required) + len(c.Optional),
	}, nil
}

func domainOf(collection string) string {
	for _, domain := range businessDomains {
		for _, c := range domain.Collections {
			if c == collection {
				return domain.Name
			}
		}
	}
	return ""
}
