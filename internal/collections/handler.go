package collections

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/smk-chits/smk-chits/internal/shared"
	"github.com/smk-chits/smk-chits/report"
)

// PDFRenderer converts HTML to a PDF document.
type PDFRenderer interface {
	RenderHTML(ctx context.Context, html string) ([]byte, error)
}

// Handler manages payment endpoints.
type Handler struct {
	logger   *slog.Logger
	service  *Service
	renderer PDFRenderer
	validate *validator.Validate
}

// NewHandler builds Handler instance. renderer may be nil when no PDF
// backend is configured; the receipt endpoint then returns 503.
func NewHandler(logger *slog.Logger, service *Service, renderer PDFRenderer) *Handler {
	return &Handler{logger: logger, service: service, renderer: renderer, validate: validator.New()}
}

// MountRoutes registers payment routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/export.csv", h.exportCSV)
	r.Get("/{id}", h.get)
	r.Get("/{id}/receipt.pdf", h.receiptPDF)
}

func parseFilters(r *http.Request) ListFilters {
	q := r.URL.Query()
	filters := ListFilters{
		MemberID: q.Get("member_id"),
		GroupID:  q.Get("group_id"),
	}
	if v := q.Get("from"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			filters.From = t
		}
	}
	if v := q.Get("to"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			filters.To = t
		}
	}
	if v := q.Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filters.Limit = n
		}
	}
	if v := q.Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filters.Offset = n
		}
	}
	return filters
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	payments, err := h.service.List(r.Context(), parseFilters(r))
	if err != nil {
		h.logger.Error("list payments", slog.Any("error", err))
		shared.WriteError(w, http.StatusInternalServerError, shared.UserSafeMessage(err))
		return
	}
	shared.WriteJSON(w, http.StatusOK, map[string]any{"payments": payments})
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var input CreatePaymentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		shared.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(input); err != nil {
		shared.WriteError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	payment, err := h.service.Create(r.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, shared.ErrNotFound):
			shared.WriteError(w, http.StatusNotFound, shared.UserSafeMessage(err))
		case errors.Is(err, shared.ErrConflict):
			shared.WriteError(w, http.StatusConflict, shared.UserSafeMessage(err))
		default:
			h.logger.Error("create payment", slog.Any("error", err))
			shared.WriteError(w, http.StatusInternalServerError, shared.UserSafeMessage(err))
		}
		return
	}
	shared.WriteJSON(w, http.StatusCreated, payment)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	payment, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			shared.WriteError(w, http.StatusNotFound, shared.UserSafeMessage(err))
			return
		}
		h.logger.Error("get payment", slog.Any("error", err))
		shared.WriteError(w, http.StatusInternalServerError, shared.UserSafeMessage(err))
		return
	}
	shared.WriteJSON(w, http.StatusOK, payment)
}

func (h *Handler) exportCSV(w http.ResponseWriter, r *http.Request) {
	filters := parseFilters(r)
	rows, err := h.service.ExportRows(r.Context(), filters)
	if err != nil {
		h.logger.Error("export payments", slog.Any("error", err))
		shared.WriteError(w, http.StatusInternalServerError, shared.UserSafeMessage(err))
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=payments-%s.csv", time.Now().Format("20060102")))
	if err := writePaymentsCSV(w, rows, filters); err != nil {
		h.logger.Error("stream payments csv", slog.Any("error", err))
	}
}

func (h *Handler) receiptPDF(w http.ResponseWriter, r *http.Request) {
	if h.renderer == nil {
		shared.WriteError(w, http.StatusServiceUnavailable, "pdf rendering not configured")
		return
	}
	data, err := h.service.Receipt(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			shared.WriteError(w, http.StatusNotFound, shared.UserSafeMessage(err))
			return
		}
		h.logger.Error("load receipt", slog.Any("error", err))
		shared.WriteError(w, http.StatusInternalServerError, shared.UserSafeMessage(err))
		return
	}
	html, err := report.ReceiptHTML(data.Payment, data.Member, data.Group, data.Settings)
	if err != nil {
		h.logger.Error("render receipt html", slog.Any("error", err))
		shared.WriteError(w, http.StatusInternalServerError, shared.UserSafeMessage(err))
		return
	}
	pdf, err := h.renderer.RenderHTML(r.Context(), html)
	if err != nil {
		h.logger.Error("render receipt pdf", slog.Any("error", err))
		shared.WriteError(w, http.StatusBadGateway, "receipt rendering failed")
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=receipt-%s.pdf", data.Payment.ReceiptNumber))
	_, _ = w.Write(pdf)
}
