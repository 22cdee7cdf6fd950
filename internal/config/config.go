package config

import (
	"fmt"
	"os"
	"time"

	gaconfig "github.com/JaimeStill/go-agents/pkg/config"
	"github.com/pelletier/go-toml/v2"
	"github.com/stewardhq/steward/internal/authz"
	"github.com/stewardhq/steward/internal/routing"
	"github.com/stewardhq/steward/internal/sessions"
	"github.com/stewardhq/steward/pkg/database"
	"github.com/stewardhq/steward/pkg/storage"
)

const (
	BaseConfigFile       = "config.toml"
	OverlayConfigPattern = "config.%s.toml"

	EnvStewardEnv             = "STEWARD_ENV"
	EnvStewardShutdownTimeout = "STEWARD_SHUTDOWN_TIMEOUT"
	EnvStewardVersion         = "STEWARD_VERSION"
)

var databaseEnv = &database.Env{
	Host:            "STEWARD_DB_HOST",
	Port:            "STEWARD_DB_PORT",
	Name:            "STEWARD_DB_NAME",
	User:            "STEWARD_DB_USER",
	Password:        "STEWARD_DB_PASSWORD",
	SSLMode:         "STEWARD_DB_SSL_MODE",
	MaxOpenConns:    "STEWARD_DB_MAX_OPEN_CONNS",
	MaxIdleConns:    "STEWARD_DB_MAX_IDLE_CONNS",
	ConnMaxLifetime: "STEWARD_DB_CONN_MAX_LIFETIME",
	ConnTimeout:     "STEWARD_DB_CONN_TIMEOUT",
}

var storageEnv = &storage.Env{
	ContainerName:    "STEWARD_STORAGE_CONTAINER_NAME",
	ConnectionString: "STEWARD_STORAGE_CONNECTION_STRING",
}

var routingEnv = &routing.Env{
	SemanticWeight:    "STEWARD_ROUTING_SEMANTIC_WEIGHT",
	DomainWeight:      "STEWARD_ROUTING_DOMAIN_WEIGHT",
	IntentWeight:      "STEWARD_ROUTING_INTENT_WEIGHT",
	NameWeight:        "STEWARD_ROUTING_NAME_WEIGHT",
	HighThreshold:     "STEWARD_ROUTING_HIGH_THRESHOLD",
	MediumThreshold:   "STEWARD_ROUTING_MEDIUM_THRESHOLD",
	DefaultCollection: "STEWARD_ROUTING_DEFAULT_COLLECTION",
}

var authzEnv = authz.Env{
	ProfileTTL: "STEWARD_AUTHZ_PROFILE_TTL",
}

var sessionsEnv = sessions.Env{
	TTL:           "STEWARD_SESSIONS_TTL",
	SweepInterval: "STEWARD_SESSIONS_SWEEP_INTERVAL",
}

// Config is the root configuration for the Steward service.
type Config struct {
	Server          ServerConfig          `toml:"server"`
	Database        database.Config       `toml:"database"`
	Storage         storage.Config        `toml:"storage"`
	API             APIConfig             `toml:"api"`
	Agent           gaconfig.AgentConfig  `toml:"agent"`
	Routing         routing.Config        `toml:"routing"`
	Authz           authz.Config          `toml:"authz"`
	Sessions        sessions.Config       `toml:"sessions"`
	Conversation    ConversationConfig    `toml:"conversation"`
	ShutdownTimeout string                `toml:"shutdown_timeout"`
	Version         string                `toml:"version"`
}

// Env returns the STEWARD_ENV value, defaulting to "local".
func (c *Config) Env() string {
	if env := os.Getenv(EnvStewardEnv); env != "" {
		return env
	}
	return "local"
}

// ShutdownTimeoutDuration returns ShutdownTimeout as a time.Duration.
func (c *Config) ShutdownTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.ShutdownTimeout)
	return d
}

// Load reads the base config (if present), applies any environment overlay,
// and finalizes all values. If no config.toml exists, defaults and environment
// variables provide all configuration.
func Load() (*Config, error) {
	cfg := &Config{}

	if _, err := os.Stat(BaseConfigFile); err == nil {
		loaded, err := load(BaseConfigFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if path := overlayPath(); path != "" {
		overlay, err := load(path)
		if err != nil {
			return nil, fmt.Errorf("load overlay %s: %w", path, err)
		}
		cfg.Merge(overlay)
	}

	if err := cfg.finalize(); err != nil {
		return nil, fmt.Errorf("finalize config: %w", err)
	}

	return cfg, nil
}

// Merge overwrites non-zero fields from overlay across all sub-configs.
func (c *Config) Merge(overlay *Config) {
	if overlay.ShutdownTimeout != "" {
		c.ShutdownTimeout = overlay.ShutdownTimeout
	}
	if overlay.Version != "" {
		c.Version = overlay.Version
	}
	c.Server.Merge(&overlay.Server)
	c.Database.Merge(&overlay.Database)
	c.Storage.Merge(&overlay.Storage)
	c.API.Merge(&overlay.API)
	c.Agent.Merge(&overlay.Agent)
	c.Routing.Merge(&overlay.Routing)
	c.Authz.Merge(&overlay.Authz)
	c.Sessions.Merge(&overlay.Sessions)
	c.Conversation.Merge(&overlay.Conversation)
}

func (c *Config) finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.validate(); err != nil {
		return err
	}
	if err := c.Server.Finalize(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	if err := c.Database.Finalize(databaseEnv); err != nil {
		return fmt.Errorf("database: %w", err)
	}
	if err := c.Storage.Finalize(storageEnv); err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	if err := c.API.Finalize(); err != nil {
		return fmt.Errorf("api: %w", err)
	}
	if err := FinalizeAgent(&c.Agent); err != nil {
		return fmt.Errorf("agent: %w", err)
	}
	if err := c.Routing.Finalize(routingEnv); err != nil {
		return fmt.Errorf("routing: %w", err)
	}
	if err := c.Authz.Finalize(authzEnv); err != nil {
		return fmt.Errorf("authz: %w", err)
	}
	if err := c.Sessions.Finalize(sessionsEnv); err != nil {
		return fmt.Errorf("sessions: %w", err)
	}
	if err := c.Conversation.Finalize(); err != nil {
		return fmt.Errorf("conversation: %w", err)
	}
	return nil
}
func (c *Config) loadDefaults() {
	if c.ShutdownTimeout == "" {
		c.ShutdownTimeout = "30s"
	}
	if c.Version == "" {
		c.Version = "0.1.0"
	}
}

func (c *Config) loadEnv() {
	if v := os.Getenv(EnvStewardShutdownTimeout); v != "" {
		c.ShutdownTimeout = v
	}
	if v := os.Getenv(EnvStewardVersion); v != "" {
		c.Version = v
	}
}

func (c *Config) validate() error {
	if _, err := time.ParseDuration(c.ShutdownTimeout); err != nil {
		return fmt.Errorf("invalid shutdown_timeout: %w", err)
	}
	return nil
}

func load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return &cfg, nil
}

func overlayPath() string {
	if env := os.Getenv(EnvStewardEnv); env != "" {
		path := fmt.Sprintf(OverlayConfigPattern, env)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
