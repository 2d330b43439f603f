package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/tripsmith/tripsmith/internal/config"
	"github.com/tripsmith/tripsmith/internal/enrich"
	chatHandler "github.com/tripsmith/tripsmith/internal/handler/chat"
	sessionHandler "github.com/tripsmith/tripsmith/internal/handler/session"
	wsHandler "github.com/tripsmith/tripsmith/internal/handler/ws"
	middlewarePkg "github.com/tripsmith/tripsmith/internal/middleware"
	"github.com/tripsmith/tripsmith/internal/service/agent"
	"github.com/tripsmith/tripsmith/pkg/utils"
)

// NewRouter wires HTTP routes to core services.
func NewRouter(cfg *config.Config, agentSvc *agent.Service, gateway *enrich.Gateway) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		utils.RespondJSON(w, http.StatusOK, map[string]string{
			"service": "tripsmith",
			"status":  "ok",
		})
	})

	r.Route("/api", func(api chi.Router) {
		api.Use(middlewarePkg.RequireAPIKey(cfg.Auth.APIKey))

		chatHandler.New(agentSvc, gateway).RegisterRoutes(api)
		sessionHandler.New(agentSvc).RegisterRoutes(api)
		wsHandler.New(agentSvc).RegisterRoutes(api)
	})

	return r
}
