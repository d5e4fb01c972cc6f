package reports

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/smk-chits/smk-chits/internal/shared"
)

// Handler manages report endpoints.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler builds Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers report routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/dashboard", h.dashboard)
	r.Post("/dashboard/refresh", h.refreshDashboard)
	r.Get("/todays-list", h.todaysList)
	r.Get("/defaulters", h.defaulters)
	r.Get("/defaulters/export.csv", h.defaultersCSV)
	r.Get("/members/{id}/ledger", h.memberLedger)
}

func asOfParam(r *http.Request) time.Time {
	if v := r.URL.Query().Get("as_of"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			return t
		}
	}
	return time.Now()
}

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Dashboard(r.Context())
	if err != nil {
		h.logger.Error("dashboard", slog.Any("error", err))
		shared.WriteError(w, http.StatusInternalServerError, shared.UserSafeMessage(err))
		return
	}
	shared.WriteJSON(w, http.StatusOK, stats)
}

func (h *Handler) refreshDashboard(w http.ResponseWriter, r *http.Request) {
	if err := h.service.InvalidateDashboard(r.Context()); err != nil {
		h.logger.Error("refresh dashboard", slog.Any("error", err))
		shared.WriteError(w, http.StatusInternalServerError, shared.UserSafeMessage(err))
		return
	}
	shared.WriteJSON(w, http.StatusAccepted, map[string]string{"status": "refreshing"})
}

func (h *Handler) todaysList(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.TodaysList(r.Context(), asOfParam(r))
	if err != nil {
		h.logger.Error("todays list", slog.Any("error", err))
		shared.WriteError(w, http.StatusInternalServerError, shared.UserSafeMessage(err))
		return
	}
	shared.WriteJSON(w, http.StatusOK, view)
}

func (h *Handler) defaulters(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.Defaulters(r.Context(), asOfParam(r))
	if err != nil {
		h.logger.Error("defaulters", slog.Any("error", err))
		shared.WriteError(w, http.StatusInternalServerError, shared.UserSafeMessage(err))
		return
	}
	shared.WriteJSON(w, http.StatusOK, view)
}

func (h *Handler) defaultersCSV(w http.ResponseWriter, r *http.Request) {
	asOf := asOfParam(r)
	view, err := h.service.Defaulters(r.Context(), asOf)
	if err != nil {
		h.logger.Error("export defaulters", slog.Any("error", err))
		shared.WriteError(w, http.StatusInternalServerError, shared.UserSafeMessage(err))
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=defaulters-%s.csv", asOf.Format("20060102")))
	if err := writeDefaultersCSV(w, view); err != nil {
		h.logger.Error("stream defaulters csv", slog.Any("error", err))
	}
}

func writeDefaultersCSV(w io.Writer, view DefaulterView) error {
	streamer := shared.NewCSVStreamer(w)
	if err := streamer.WriteComment("# Report: Defaulters"); err != nil {
		return err
	}
	warnings := "none"
	if view.Warning != "" {
		warnings = view.Warning
	}
	if err := streamer.WriteComment(fmt.Sprintf("# As of: %s | Entries: %s | Warnings: %s",
		view.AsOf.Format("2006-01-02"), strconv.Itoa(len(view.Entries)), warnings)); err != nil {
		return err
	}
	if err := streamer.WriteRow([]string{"Member", "Phone", "Group", "Ticket", "Total Paid", "Expected Total", "Outstanding"}); err != nil {
		return err
	}
	for _, e := range view.Entries {
		if err := streamer.WriteRow([]string{
			e.Member.Name,
			e.Member.Phone,
			e.Group.Name,
			strconv.Itoa(e.Ticket.TicketNumber),
			shared.FormatDecimal(e.TotalPaid),
			shared.FormatDecimal(e.ExpectedTotal),
			shared.FormatDecimal(e.Outstanding),
		}); err != nil {
			return err
		}
	}
	if err := streamer.WriteRow([]string{"Total", "", "", "", "", "", shared.FormatDecimal(view.TotalOutstanding)}); err != nil {
		return err
	}
	return streamer.Close()
}

func (h *Handler) memberLedger(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.MemberLedger(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			shared.WriteError(w, http.StatusNotFound, shared.UserSafeMessage(err))
			return
		}
		h.logger.Error("member ledger", slog.Any("error", err))
		shared.WriteError(w, http.StatusInternalServerError, shared.UserSafeMessage(err))
		return
	}
	shared.WriteJSON(w, http.StatusOK, view)
}
