package dashboard

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/file-flow/pkg/handlers"
	"github.com/JaimeStill/file-flow/pkg/routes"
)

// Handler provides HTTP endpoints for dashboard views.
type Handler struct {
	sys    System
	logger *slog.Logger
}

func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "dashboard"),
	}
}

// Routes returns the dashboard endpoint route group.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/dashboard",
		Tags:        []string{"Dashboard"},
		Description: "Due recalls, deadline urgency, and daily counts",
		Schemas:     Schemas,
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/due_recalls", Handler: h.DueRecalls, OpenAPI: Spec.DueRecalls},
			{Method: "GET", Pattern: "/overdue_documents", Handler: h.Overdue, OpenAPI: Spec.Overdue},
			{Method: "GET", Pattern: "/statistics", Handler: h.Statistics, OpenAPI: Spec.Statistics},
		},
	}
}

func (h *Handler) DueRecalls(w http.ResponseWriter, r *http.Request) {
	items, err := h.sys.DueRecalls(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, items)
}

func (h *Handler) Overdue(w http.ResponseWriter, r *http.Request) {
	items, err := h.sys.Overdue(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, items)
}

func (h *Handler) Statistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.sys.Statistics(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, stats)
}
