package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	EnvConversationAgentEnabled = "STEWARD_CONVERSATION_AGENT_ENABLED"
	EnvConversationAgentTimeout = "STEWARD_CONVERSATION_AGENT_TIMEOUT"
)

// ConversationConfig controls how chat turns are reasoned about. When the
// agent is disabled the keyword heuristic handles every turn on its own.
type ConversationConfig struct {
	AgentEnabled bool   `toml:"agent_enabled"`
	AgentTimeout string `toml:"agent_timeout"`
}

// AgentTimeoutDuration returns AgentTimeout as a time.Duration.
func (c *ConversationConfig) AgentTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.AgentTimeout)
	return d
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *ConversationConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *ConversationConfig) Merge(overlay *ConversationConfig) {
	if overlay.AgentEnabled {
		c.AgentEnabled = true
	}
	if overlay.AgentTimeout != "" {
		c.AgentTimeout = overlay.AgentTimeout
	}
}

func (c *ConversationConfig) loadDefaults() {
	if c.AgentTimeout == "" {
		c.AgentTimeout = "30s"
	}
}

func (c *ConversationConfig) loadEnv() {
	if v := os.Getenv(EnvConversationAgentEnabled); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			c.AgentEnabled = enabled
		}
	}
	if v := os.Getenv(EnvConversationAgentTimeout); v != "" {
		c.AgentTimeout = v
	}
}

func (c *ConversationConfig) validate() error {
	if _, err := time.ParseDuration(c.AgentTimeout); err != nil {
		return fmt.Errorf("invalid agent_timeout: %w", err)
	}
	return nil
}
