package auctions

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/smk-chits/smk-chits/internal/shared"
)

// Handler manages auction endpoints.
type Handler struct {
	logger   *slog.Logger
	service  *Service
	validate *validator.Validate
}

// NewHandler builds Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, validate: validator.New()}
}

// MountRoutes registers auction routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.record)
	r.Post("/preview", h.preview)
	r.Get("/{id}", h.get)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	auctions, err := h.service.List(r.Context(), r.URL.Query().Get("group_id"))
	if err != nil {
		h.logger.Error("list auctions", slog.Any("error", err))
		shared.WriteError(w, http.StatusInternalServerError, shared.UserSafeMessage(err))
		return
	}
	shared.WriteJSON(w, http.StatusOK, map[string]any{"auctions": auctions})
}

func (h *Handler) preview(w http.ResponseWriter, r *http.Request) {
	var input PreviewInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		shared.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(input); err != nil {
		shared.WriteError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	settlement, err := h.service.Preview(r.Context(), input)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			shared.WriteError(w, http.StatusNotFound, shared.UserSafeMessage(err))
			return
		}
		h.logger.Error("preview auction", slog.Any("error", err))
		shared.WriteError(w, http.StatusInternalServerError, shared.UserSafeMessage(err))
		return
	}
	shared.WriteJSON(w, http.StatusOK, settlement)
}

func (h *Handler) record(w http.ResponseWriter, r *http.Request) {
	var input RecordInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		shared.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(input); err != nil {
		shared.WriteError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	auction, err := h.service.Record(r.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, shared.ErrNotFound):
			shared.WriteError(w, http.StatusNotFound, shared.UserSafeMessage(err))
		case errors.Is(err, ErrTicketOutsideGroup), errors.Is(err, ErrTicketNotActive):
			shared.WriteError(w, http.StatusConflict, err.Error())
		default:
			h.logger.Error("record auction", slog.Any("error", err))
			shared.WriteError(w, http.StatusInternalServerError, shared.UserSafeMessage(err))
		}
		return
	}
	shared.WriteJSON(w, http.StatusCreated, auction)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	auction, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			shared.WriteError(w, http.StatusNotFound, shared.UserSafeMessage(err))
			return
		}
		h.logger.Error("get auction", slog.Any("error", err))
		shared.WriteError(w, http.StatusInternalServerError, shared.UserSafeMessage(err))
		return
	}
	shared.WriteJSON(w, http.StatusOK, auction)
}
