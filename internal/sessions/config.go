package sessions

import (
	"fmt"
	"os"
	"time"
)

type Config struct {
	TTL           string `toml:"ttl"`
	SweepInterval string `toml:"sweep_interval"`
}

type Env struct {
	TTL           string
	SweepInterval string
}

// TTLDuration returns TTL as a time.Duration.
func (c *Config) TTLDuration() time.Duration {
	d, _ := time.ParseDuration(c.TTL)
	return d
}

// SweepIntervalDuration returns SweepInterval as a time.Duration.
func (c *Config) SweepIntervalDuration() time.Duration {
	d, _ := time.ParseDuration(c.SweepInterval)
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
	if overlay.TTL != "" {
		c.TTL = overlay.TTL
	}
	if overlay.SweepInterval != "" {
		c.SweepInterval = overlay.SweepInterval
	}
}

func (c *Config) loadDefaults() {
	if c.TTL == "" {
		c.TTL = "1h"
	}
	if c.SweepInterval == "" {
		c.SweepInterval = "5m"
	}
}

func (c *Config) loadEnv(env Env) {
	if v := os.Getenv(env.TTL); v != "" {
		c.TTL = v
	}
	if v := os.Getenv(env.SweepInterval); v != "" {
		c.SweepInterval = v
	}
}

func (c *Config) validate() error {
	if _, err := time.ParseDuration(c.TTL); err != nil {
		return fmt.Errorf("invalid ttl %q: %w", c.TTL, err)
	}
	if _, err := time.ParseDuration(c.SweepInterval); err != nil {
		return fmt.Errorf("invalid sweep_interval %q: %w", c.SweepInterval, err)
	}
	return nil
}
