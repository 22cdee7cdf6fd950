// Package api assembles the API module with all domain systems and route registration.
package api

import (
	"net/http"

	"github.com/stewardhq/steward/internal/config"
	"github.com/stewardhq/steward/internal/infrastructure"
	"github.com/stewardhq/steward/pkg/middleware"
	"github.com/stewardhq/steward/pkg/module"
)

// NewModule creates the API module with all domain handlers and middleware.
func NewModule(cfg *config.Config, infra *infrastructure.Infrastructure) (*module.Module, error) {
	runtime := NewRuntime(cfg, infra)

	domain, err := NewDomain(cfg, runtime)
	if err != nil {
		return nil, err
	}

	spec, err := buildSpec(cfg)
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	registerRoutes(mux, domain, cfg, runtime, spec)

	m := module.New(cfg.API.BasePath, mux)
	m.Use(middleware.CORS(&cfg.API.CORS))
	m.Use(middleware.Logger(runtime.Logger))

	return m, nil
}
