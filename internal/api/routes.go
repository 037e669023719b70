package api

import (
	"net/http"

	"github.com/JaimeStill/file-flow/internal/config"
	"github.com/JaimeStill/file-flow/internal/dashboard"
	"github.com/JaimeStill/file-flow/internal/documents"
	"github.com/JaimeStill/file-flow/internal/personnel"
	"github.com/JaimeStill/file-flow/pkg/openapi"
	"github.com/JaimeStill/file-flow/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	spec *openapi.Spec,
	runtime *Runtime,
	domain *Domain,
	cfg *config.Config,
) {
	documentsHandler := documents.NewHandler(domain.Documents, runtime.Logger, runtime.MaxBodySize)
	dashboardHandler := dashboard.NewHandler(domain.Dashboard, runtime.Logger)
	personnelHandler := personnel.NewHandler(domain.Personnel, runtime.Logger, runtime.MaxBodySize)

	routes.Register(
		mux,
		cfg.API.BasePath,
		spec,
		documentsHandler.Routes(),
		dashboardHandler.Routes(),
		personnelHandler.Routes(),
	)
}
