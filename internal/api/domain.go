package api

import (
	"fmt"

	"github.com/stewardhq/steward/internal/authz"
	"github.com/stewardhq/steward/internal/config"
	"github.com/stewardhq/steward/internal/conversation"
	"github.com/stewardhq/steward/internal/directory"
	"github.com/stewardhq/steward/internal/fields"
	"github.com/stewardhq/steward/internal/records"
	"github.com/stewardhq/steward/internal/routing"
	"github.com/stewardhq/steward/internal/schema"
	"github.com/stewardhq/steward/internal/sessions"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Registry     *schema.Registry
	Router       *routing.Router
	Fields       *fields.Processor
	Authz        *authz.Engine
	Directory    directory.System
	Records      records.System
	Sessions     sessions.System
	Conversation conversation.System
}

// NewDomain creates all domain systems from the API runtime. Session sweeping
// starts when the lifecycle coordinator runs its startup hooks.
func NewDomain(cfg *config.Config, runtime *Runtime) (*Domain, error) {
	registry, err := schema.NewRegistry()
	if err != nil {
		return nil, fmt.Errorf("build collection registry: %w", err)
	}
	catalog := schema.NewCatalog()

	router := routing.New(cfg.Routing, registry, runtime.Logger)
	processor := fields.New(registry, catalog, runtime.Logger)

	directorySystem := directory.New(
		runtime.Database.Connection(),
		runtime.Logger,
		runtime.Pagination,
	)

	engine, err := authz.New(cfg.Authz, registry, directorySystem, runtime.Logger)
	if err != nil {
		return nil, fmt.Errorf("build authorization engine: %w", err)
	}

	recordsSystem := records.New(
		runtime.Database.Connection(),
		registry,
		runtime.Storage,
		runtime.Logger,
		runtime.Pagination,
	)

	sessionsSystem := sessions.New(
		cfg.Sessions,
		runtime.Database.Connection(),
		runtime.Logger,
	)
	sessionsSystem.Start(runtime.Lifecycle)

	conversationSystem := conversation.New(
		runtime.Agent,
		cfg.Conversation.AgentEnabled,
		cfg.Conversation.AgentTimeoutDuration(),
		registry,
		router,
		processor,
		engine,
		recordsSystem,
		sessionsSystem,
		runtime.Logger,
	)

	return &Domain{
		Registry:     registry,
		Router:       router,
		Fields:       processor,
		Authz:        engine,
		Directory:    directorySystem,
		Records:      recordsSystem,
		Sessions:     sessionsSystem,
		Conversation: conversationSystem,
	}, nil
}
