package routing

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the routing signal weights and confidence tier thresholds.
// Weights must sum to 1.0 so the capped combined score stays normalized.
type Config struct {
	SemanticWeight    float64 `toml:"semantic_weight"`
	DomainWeight      float64 `toml:"domain_weight"`
	IntentWeight      float64 `toml:"intent_weight"`
	NameWeight        float64 `toml:"name_weight"`
	HighThreshold     float64 `toml:"high_threshold"`
	MediumThreshold   float64 `toml:"medium_threshold"`
	DefaultCollection string  `toml:"default_collection"`
	DefaultConfidence float64 `toml:"default_confidence"`
}

// Env maps config fields to environment variable names for override injection.
type Env struct {
	SemanticWeight    string
	DomainWeight      string
	IntentWeight      string
	NameWeight        string
	HighThreshold     string
	MediumThreshold   string
	DefaultCollection string
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *Config) Merge(overlay *Config) {
	if overlay.SemanticWeight != 0 {
		c.SemanticWeight = overlay.SemanticWeight
	}
	if overlay.DomainWeight != 0 {
		c.DomainWeight = overlay.DomainWeight
	}
	if overlay.IntentWeight != 0 {
		c.IntentWeight = overlay.IntentWeight
	}
	if overlay.NameWeight != 0 {
		c.NameWeight = overlay.NameWeight
	}
	if overlay.HighThreshold != 0 {
		c.HighThreshold = overlay.HighThreshold
	}
	if overlay.MediumThreshold != 0 {
		c.MediumThreshold = overlay.MediumThreshold
	}
	if overlay.DefaultCollection != "" {
		c.DefaultCollection = overlay.DefaultCollection
	}
	if overlay.DefaultConfidence != 0 {
		c.DefaultConfidence = overlay.DefaultConfidence
	}
}

func (c *Config) loadDefaults() {
	if c.SemanticWeight == 0 {
		c.SemanticWeight = 0.30
	}
	if c.DomainWeight == 0 {
		c.DomainWeight = 0.25
	}
	if c.IntentWeight == 0 {
		c.IntentWeight = 0.25
	}
	if c.NameWeight == 0 {
		c.NameWeight = 0.20
	}
	if c.HighThreshold == 0 {
		c.HighThreshold = 0.8
	}
	if c.MediumThreshold == 0 {
		c.MediumThreshold = 0.5
	}
	if c.DefaultCollection == "" {
		c.DefaultCollection = "customer_support_ticket"
	}
	if c.DefaultConfidence == 0 {
		c.DefaultConfidence = 0.1
	}
}

func (c *Config) loadEnv(env *Env) {
	setFloat := func(envVar string, target *float64) {
		if v := os.Getenv(envVar); v != "" {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				*target = f
			}
		}
	}

	setFloat(env.SemanticWeight, &c.SemanticWeight)
	setFloat(env.DomainWeight, &c.DomainWeight)
	setFloat(env.IntentWeight, &c.IntentWeight)
	setFloat(env.NameWeight, &c.NameWeight)
	setFloat(env.HighThreshold, &c.HighThreshold)
	setFloat(env.MediumThreshold, &c.MediumThreshold)

	if v := os.Getenv(env.DefaultCollection); v != "" {
		c.DefaultCollection = v
	}
}

func (c *Config) validate() error {
	sum := c.SemanticWeight + c.DomainWeight + c.IntentWeight + c.NameWeight
	if sum < 0.999 || sum > 1.001 {
		return fmt.Errorf("signal weights must sum to 1.0, got %.3f", sum)
	}
	if c.MediumThreshold >= c.HighThreshold {
		return fmt.Errorf(
			"medium_threshold %.2f must be below high_threshold %.2f",
			c.MediumThreshold, c.HighThreshold,
		)
	}
	return nil
}
