// Package schema defines the static catalog of business collections the
// service manages: each collection's ordered required and optional fields,
// plus type definitions and validation rules for the fields themselves.
package schema

import (
	"fmt"
	"strings"
)

// Collection describes a business record collection and the fields it
// collects. Required and Optional preserve declaration order; the first
// missing required field is always the next one prompted for.
type Collection struct {
	Name     string   `json:"name"`
	Required []string `json:"required"`
	Optional []string `json:"optional"`
}

// Fields returns required fields followed by optional fields.
func (c *Collection) Fields() []string {
	fields := make([]string, 0, len(c.Required)+len(c.Optional))
	fields = append(fields, c.Required...)
	fields = append(fields, c.Optional...)
	return fields
}

// IsRequired reports whether field is one of the collection's required fields.
func (c *Collection) IsRequired(field string) bool {
	for _, f := range c.Required {
		if f == field {
			return true
		}
	}
	return false
}

// DisplayName returns the collection name with underscores replaced by
// spaces and each word capitalized.
func (c *Collection) DisplayName() string {
	return titleWords(c.Name)
}

// Registry provides ordered access to collection definitions.
type Registry struct {
	collections []Collection
	byName      map[string]*Collection
}

// NewRegistry builds the registry from the static collection catalog.
// It fails if any collection declares a field as both required and optional.
func NewRegistry() (*Registry, error) {
	r := &Registry{
		collections: collectionData,
		byName:      make(map[string]*Collection, len(collectionData)),
	}

	for i := range r.collections {
		c := &r.collections[i]
		if _, exists := r.byName[c.Name]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCollection, c.Name)
		}
		for _, opt := range c.Optional {
			if c.IsRequired(opt) {
				return nil, fmt.Errorf("%w: %s.%s", ErrFieldOverlap, c.Name, opt)
			}
		}
		r.byName[c.Name] = c
	}

	return r, nil
}

// Collection returns the named collection definition.
func (r *Registry) Collection(name string) (*Collection, error) {
	c, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return c, nil
}

// Has reports whether the named collection exists.
func (r *Registry) Has(name string) bool {
	_, ok := r.byName[name]
	return ok
}

// Collections returns all collection definitions in canonical order.
func (r *Registry) Collections() []Collection {
	return r.collections
}

// Names returns all collection names in canonical order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.collections))
	for i := range r.collections {
		names[i] = r.collections[i].Name
	}
	return names
}

func titleWords(s string) string {
	words := strings.Split(strings.ReplaceAll(s, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
