package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/zahratravel/agency-backend/api/controllers"
	"github.com/zahratravel/agency-backend/api/middleware"
	"github.com/zahratravel/agency-backend/internal/reports"
	"github.com/zahratravel/agency-backend/pkg/config"
	"github.com/zahratravel/agency-backend/pkg/db"
	"github.com/zahratravel/agency-backend/pkg/enums"
	"github.com/zahratravel/agency-backend/pkg/logger"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	store reports.RecordStore,
	reportService reports.Service,
	registry *prometheus.Registry,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, logg))
		r.Use(middleware.RequireRoles(logg, enums.UserRoleAdmin, enums.UserRoleSuperAdmin))

		r.With(middleware.Timeout(cfg.Reports.RequestTimeout)).
			Get("/dashboard", controllers.DashboardReport(reportService, logg))
		r.Get("/staff", controllers.StaffRoster(store, logg))
	})

	return r
}
