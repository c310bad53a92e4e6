package app

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"

	"github.com/hoteldesk/hoteldesk/internal/admin"
	"github.com/hoteldesk/hoteldesk/internal/auth"
	"github.com/hoteldesk/hoteldesk/internal/expenses"
	"github.com/hoteldesk/hoteldesk/internal/observability"
	"github.com/hoteldesk/hoteldesk/internal/push"
	"github.com/hoteldesk/hoteldesk/internal/reports"
	"github.com/hoteldesk/hoteldesk/internal/sales"
	"github.com/hoteldesk/hoteldesk/internal/shared"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger          *slog.Logger
	Config          *Config
	SessionManager  *shared.SessionManager
	AuthService     *auth.Service
	AuthHandler     *auth.Handler
	SalesHandler    *sales.Handler
	ExpensesHandler *expenses.Handler
	AdminHandler    *admin.Handler
	ReportsHandler  *reports.Handler
	PushHandler     *push.Handler
	Metrics         *observability.Metrics
}

// NewRouter constructs the chi.Router for the dashboard gateway.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:         params.Logger,
		Config:         params.Config,
		SessionManager: params.SessionManager,
		Metrics:        params.Metrics,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {
		// Login gets its own tighter rate limit to slow credential stuffing.
		r.Group(func(r chi.Router) {
			r.Use(httprate.Limit(10, time.Minute, httprate.WithKeyFuncs(httprate.KeyByIP)))
			r.Route("/auth", params.AuthHandler.MountPublicRoutes)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.Hydrate(params.Logger, params.AuthService, params.SessionManager))

			r.Route("/session", params.AuthHandler.MountRoutes)

			r.Group(func(r chi.Router) {
				r.Use(shared.RequireRoles(shared.RoleStaff, shared.RoleManager, shared.RoleAdmin))
				r.Route("/sales", params.SalesHandler.MountRoutes)
				r.Route("/expenses", params.ExpensesHandler.MountRoutes)
				r.Route("/push", params.PushHandler.MountSubscriptionRoutes)
			})

			r.Group(func(r chi.Router) {
				r.Use(shared.RequireRoles(shared.RoleAdmin))
				r.Route("/admin", func(r chi.Router) {
					params.AdminHandler.MountRoutes(r)
					r.Route("/reports", params.ReportsHandler.MountRoutes)
					r.Route("/push", params.PushHandler.MountBroadcastRoutes)
				})
			})
		})
	})

	if params.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", params.Metrics.Handler())
	}

	return r
}
