package authz

import (
	"fmt"
	"os"
	"time"
)

type Config struct {
	ProfileTTL string `toml:"profile_ttl"`
}

type Env struct {
	ProfileTTL string
}

// ProfileTTLDuration returns ProfileTTL as a time.Duration.
func (c *Config) ProfileTTLDuration() time.Duration {
	d, _ := time.ParseDuration(c.ProfileTTL)
	return d
}

func (c *Config) Finalize(env Env) error {
	c.loadDefaults()
	c.loadEnv(env)
	return c.validate()
}

func (c *Config) Merge(overlay *Config) {
	if overlay == nil {
		return
	}
	if overlay.ProfileTTL != "" {
		c.ProfileTTL = overlay.ProfileTTL
	}
}

func (c *Config) loadDefaults() {
	if c.ProfileTTL == "" {
		c.ProfileTTL = "30m"
	}
}

func (c *Config) loadEnv(env Env) {
	if v := os.Getenv(env.ProfileTTL); v != "" {
		c.ProfileTTL = v
	}
}

func (c *Config) validate() error {
	if _, err := time.ParseDuration(c.ProfileTTL); err != nil {
		return fmt.Errorf("invalid profile_ttl %q: %w", c.ProfileTTL, err)
	}
	return nil
}
