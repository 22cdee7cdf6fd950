package api

import (
	"net/http"

	"github.com/stewardhq/steward/internal/authz"
	"github.com/stewardhq/steward/internal/config"
	"github.com/stewardhq/steward/internal/fields"
	"github.com/stewardhq/steward/internal/routing"
	"github.com/stewardhq/steward/pkg/openapi"
	"github.com/stewardhq/steward/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	domain *Domain,
	cfg *config.Config,
	runtime *Runtime,
	spec []byte,
) {
	routes.Register(
		mux,
		routing.NewHandler(domain.Router, runtime.Logger).Routes(),
		fields.NewHandler(domain.Fields, runtime.Logger).Routes(),
		authz.NewHandler(domain.Authz, runtime.Logger).Routes(),
		domain.Directory.Handler().Routes(),
		domain.Records.Handler(cfg.API.MaxUploadSizeBytes()).Routes(),
		domain.Sessions.Handler().Routes(),
		domain.Conversation.Handler().Routes(),
		newStorageHandler(
			runtime.Storage,
			runtime.Logger,
			cfg.Storage.MaxListSize,
		).routes(),
	)

	mux.HandleFunc("GET /openapi.json", openapi.ServeSpec(spec))
}
