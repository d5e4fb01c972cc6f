package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/smk-chits/smk-chits/internal/auctions"
	"github.com/smk-chits/smk-chits/internal/collections"
	"github.com/smk-chits/smk-chits/internal/groups"
	"github.com/smk-chits/smk-chits/internal/members"
	"github.com/smk-chits/smk-chits/internal/observability"
	"github.com/smk-chits/smk-chits/internal/reminders"
	"github.com/smk-chits/smk-chits/internal/reports"
	"github.com/smk-chits/smk-chits/internal/settings"
	"github.com/smk-chits/smk-chits/internal/tickets"
	"github.com/smk-chits/smk-chits/jobs"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger           *slog.Logger
	Config           *Config
	MembersHandler   *members.Handler
	GroupsHandler    *groups.Handler
	TicketsHandler   *tickets.Handler
	AuctionsHandler  *auctions.Handler
	PaymentsHandler  *collections.Handler
	SettingsHandler  *settings.Handler
	ReportsHandler   *reports.Handler
	RemindersHandler *reminders.Handler
	JobHandler       *jobs.Handler
	Metrics          *observability.Metrics
}

// NewRouter constructs the chi.Router with application defaults.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:  params.Logger,
		Config:  params.Config,
		Metrics: params.Metrics,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/members", params.MembersHandler.MountRoutes)
	r.Route("/groups", params.GroupsHandler.MountRoutes)
	r.Route("/tickets", params.TicketsHandler.MountRoutes)
	r.Route("/auctions", params.AuctionsHandler.MountRoutes)
	r.Route("/payments", params.PaymentsHandler.MountRoutes)
	r.Route("/settings", params.SettingsHandler.MountRoutes)
	r.Route("/reports", params.ReportsHandler.MountRoutes)
	r.Route("/reminders", params.RemindersHandler.MountRoutes)
	r.Route("/jobs", params.JobHandler.MountRoutes)
	if params.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", params.Metrics.Handler())
	}

	return r
}
