package groups

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/smk-chits/smk-chits/internal/chit"
	"github.com/smk-chits/smk-chits/internal/shared"
)

// Handler manages chit group endpoints.
type Handler struct {
	logger   *slog.Logger
	service  *Service
	validate *validator.Validate
}

// NewHandler builds Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, validate: validator.New()}
}

// MountRoutes registers chit group routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
	r.Post("/{id}/status", h.transition)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	groups, err := h.service.List(r.Context(), ListFilters{
		Status: chit.GroupStatus(r.URL.Query().Get("status")),
		Limit:  limit,
	})
	if err != nil {
		h.logger.Error("list groups", slog.Any("error", err))
		shared.WriteError(w, http.StatusInternalServerError, shared.UserSafeMessage(err))
		return
	}
	shared.WriteJSON(w, http.StatusOK, map[string]any{"groups": groups})
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var input CreateGroupInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		shared.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(input); err != nil {
		shared.WriteError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	group, err := h.service.Create(r.Context(), input)
	if err != nil {
		h.logger.Error("create group", slog.Any("error", err))
		shared.WriteError(w, http.StatusInternalServerError, shared.UserSafeMessage(err))
		return
	}
	shared.WriteJSON(w, http.StatusCreated, group)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	group, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			shared.WriteError(w, http.StatusNotFound, shared.UserSafeMessage(err))
			return
		}
		h.logger.Error("get group", slog.Any("error", err))
		shared.WriteError(w, http.StatusInternalServerError, shared.UserSafeMessage(err))
		return
	}
	shared.WriteJSON(w, http.StatusOK, group)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	var input UpdateGroupInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		shared.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(input); err != nil {
		shared.WriteError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	group, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), input)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			shared.WriteError(w, http.StatusNotFound, shared.UserSafeMessage(err))
			return
		}
		h.logger.Error("update group", slog.Any("error", err))
		shared.WriteError(w, http.StatusInternalServerError, shared.UserSafeMessage(err))
		return
	}
	shared.WriteJSON(w, http.StatusOK, group)
}

func (h *Handler) transition(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Status chit.GroupStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		shared.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	group, err := h.service.Transition(r.Context(), chi.URLParam(r, "id"), body.Status)
	if err != nil {
		switch {
		case errors.Is(err, shared.ErrNotFound):
			shared.WriteError(w, http.StatusNotFound, shared.UserSafeMessage(err))
		case errors.Is(err, shared.ErrInvalidTransition):
			shared.WriteError(w, http.StatusConflict, shared.UserSafeMessage(err))
		default:
			h.logger.Error("transition group", slog.Any("error", err))
			shared.WriteError(w, http.StatusInternalServerError, shared.UserSafeMessage(err))
		}
		return
	}
	shared.WriteJSON(w, http.StatusOK, group)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		switch {
		case errors.Is(err, shared.ErrNotFound):
			shared.WriteError(w, http.StatusNotFound, shared.UserSafeMessage(err))
		case errors.Is(err, shared.ErrConflict):
			shared.WriteError(w, http.StatusConflict, "Group has tickets, auctions or payments and cannot be deleted.")
		default:
			h.logger.Error("delete group", slog.Any("error", err))
			shared.WriteError(w, http.StatusInternalServerError, shared.UserSafeMessage(err))
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
