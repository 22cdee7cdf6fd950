// Package workflow implements the reason/act turn loop. Each turn runs a
// state graph: a reasoning node picks a target collection and next action,
// then one of six action nodes produces the outcome returned to the user.
package workflow

import (
	"log/slog"
	"time"

	"github.com/stewardhq/steward/internal/authz"
	"github.com/stewardhq/steward/internal/fields"
	"github.com/stewardhq/steward/internal/records"
	"github.com/stewardhq/steward/internal/routing"
	"github.com/stewardhq/steward/internal/schema"

	gaconfig "github.com/JaimeStill/go-agents/pkg/config"
)

// Runtime bundles the dependencies that workflow nodes require.
// It is constructed by higher-level composition code from Infrastructure and Domain systems.
type Runtime struct {
	Agent        gaconfig.AgentConfig
	AgentEnabled bool
	AgentTimeout time.Duration
	Registry     *schema.Registry
	Router       *routing.Router
	Fields       *fields.Processor
	Authz        *authz.Engine
	Records      records.System
	Logger       *slog.Logger
}

// Strategies returns the reasoning strategies in attempt order. The
// heuristic strategy is always last and always present, so reasoning never
// fails outright when the model call does.
func (rt *Runtime) Strategies() []Strategy {
	var strategies []Strategy
	if rt.AgentEnabled {
		strategies = append(strategies, &agentStrategy{rt: rt})
	}
	return append(strategies, &heuristicStrategy{rt: rt})
}
