package tickets

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/smk-chits/smk-chits/internal/chit"
	"github.com/smk-chits/smk-chits/internal/shared"
)

// Handler manages ticket endpoints.
type Handler struct {
	logger   *slog.Logger
	service  *Service
	validate *validator.Validate
}

// NewHandler builds Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, validate: validator.New()}
}

// MountRoutes registers ticket routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.enroll)
	r.Get("/{id}", h.get)
	r.Post("/{id}/status", h.setStatus)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	tickets, err := h.service.List(r.Context(), ListFilters{
		MemberID: r.URL.Query().Get("member_id"),
		GroupID:  r.URL.Query().Get("group_id"),
	})
	if err != nil {
		h.logger.Error("list tickets", slog.Any("error", err))
		shared.WriteError(w, http.StatusInternalServerError, shared.UserSafeMessage(err))
		return
	}
	shared.WriteJSON(w, http.StatusOK, map[string]any{"tickets": tickets})
}

func (h *Handler) enroll(w http.ResponseWriter, r *http.Request) {
	var input EnrollInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		shared.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(input); err != nil {
		shared.WriteError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	ticket, err := h.service.Enroll(r.Context(), input)
	if err != nil {
		h.logger.Error("enroll ticket", slog.Any("error", err))
		shared.WriteError(w, http.StatusInternalServerError, shared.UserSafeMessage(err))
		return
	}
	shared.WriteJSON(w, http.StatusCreated, ticket)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	ticket, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			shared.WriteError(w, http.StatusNotFound, shared.UserSafeMessage(err))
			return
		}
		h.logger.Error("get ticket", slog.Any("error", err))
		shared.WriteError(w, http.StatusInternalServerError, shared.UserSafeMessage(err))
		return
	}
	shared.WriteJSON(w, http.StatusOK, ticket)
}

func (h *Handler) setStatus(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Status chit.TicketStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		shared.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	ticket, err := h.service.SetStatus(r.Context(), chi.URLParam(r, "id"), body.Status)
	if err != nil {
		switch {
		case errors.Is(err, shared.ErrNotFound):
			shared.WriteError(w, http.StatusNotFound, shared.UserSafeMessage(err))
		case errors.Is(err, shared.ErrInvalidTransition):
			shared.WriteError(w, http.StatusConflict, shared.UserSafeMessage(err))
		default:
			h.logger.Error("set ticket status", slog.Any("error", err))
			shared.WriteError(w, http.StatusInternalServerError, shared.UserSafeMessage(err))
		}
		return
	}
	shared.WriteJSON(w, http.StatusOK, ticket)
}
