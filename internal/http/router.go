package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"photospro/internal/handlers"
	"photospro/internal/service"
	"photospro/internal/store"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	Store    *store.Store
	Settings service.SettingsService
	DB       handlers.Pinger
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(LoggerMiddleware)
	r.Use(RequestLogger)
	r.Use(Metrics)
	r.Use(CORS)

	s := deps.Store
	finances := service.NewRecordService(s.Finances())
	sessions := service.NewRecordService(s.Sessions())

	portfolioHandler := handlers.NewPortfolioHandler(s)
	sessionsHandler := handlers.NewSessionsHandler(s)
	clientsHandler := handlers.NewClientsHandler(s)
	tasksHandler := handlers.NewTasksHandler(s)
	financesHandler := handlers.NewFinancesHandler(s)
	totalsHandler := handlers.NewTotalsHandler(finances)
	briefHandler := handlers.NewBriefHandler(sessions)
	settingsHandler := handlers.NewSettingsHandler(deps.Settings)

	mountSessions := func(r chi.Router) {
		sessionsHandler.Mount(r)
		r.Get("/{id}/brief", briefHandler.ServeHTTP)
	}

	r.Route("/api", func(r chi.Router) {
		r.Route("/portfolio", portfolioHandler.Mount)
		r.Route("/sessions", mountSessions)
		r.Route("/photoSessions", mountSessions)
		r.Route("/clients", clientsHandler.Mount)
		r.Route("/tasks", tasksHandler.Mount)
		r.Route("/finances", func(r chi.Router) {
			financesHandler.Mount(r)
			r.Get("/totals", totalsHandler.ServeHTTP)
		})

		r.Method(http.MethodGet, "/enums", handlers.NewEnumsHandler())
		r.Get("/settings", settingsHandler.Get)
		r.Put("/settings/notifications", settingsHandler.PutNotifications)
		r.Put("/settings/vibration", settingsHandler.PutVibration)
		r.Post("/reset", settingsHandler.Reset)
		r.Method(http.MethodGet, "/health", handlers.NewHealthHandler(deps.DB, s.Counts))
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
