package members

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/smk-chits/smk-chits/internal/shared"
)

// Handler manages member endpoints.
type Handler struct {
	logger   *slog.Logger
	service  *Service
	validate *validator.Validate
}

// NewHandler builds Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, validate: validator.New()}
}

// MountRoutes registers member routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	members, err := h.service.List(r.Context(), ListFilters{
		Search: r.URL.Query().Get("q"),
		Limit:  limit,
	})
	if err != nil {
		h.logger.Error("list members", slog.Any("error", err))
		shared.WriteError(w, http.StatusInternalServerError, shared.UserSafeMessage(err))
		return
	}
	shared.WriteJSON(w, http.StatusOK, map[string]any{"members": members})
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var input CreateMemberInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		shared.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(input); err != nil {
		shared.WriteError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	member, err := h.service.Create(r.Context(), input)
	if err != nil {
		h.logger.Error("create member", slog.Any("error", err))
		shared.WriteError(w, http.StatusInternalServerError, shared.UserSafeMessage(err))
		return
	}
	shared.WriteJSON(w, http.StatusCreated, member)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	member, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			shared.WriteError(w, http.StatusNotFound, shared.UserSafeMessage(err))
			return
		}
		h.logger.Error("get member", slog.Any("error", err))
		shared.WriteError(w, http.StatusInternalServerError, shared.UserSafeMessage(err))
		return
	}
	shared.WriteJSON(w, http.StatusOK, member)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	var input UpdateMemberInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		shared.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(input); err != nil {
		shared.WriteError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	member, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), input)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			shared.WriteError(w, http.StatusNotFound, shared.UserSafeMessage(err))
			return
		}
		h.logger.Error("update member", slog.Any("error", err))
		shared.WriteError(w, http.StatusInternalServerError, shared.UserSafeMessage(err))
		return
	}
	shared.WriteJSON(w, http.StatusOK, member)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		switch {
		case errors.Is(err, shared.ErrNotFound):
			shared.WriteError(w, http.StatusNotFound, shared.UserSafeMessage(err))
		case errors.Is(err, shared.ErrConflict):
			shared.WriteError(w, http.StatusConflict, "Member has tickets or payments and cannot be deleted.")
		default:
			h.logger.Error("delete member", slog.Any("error", err))
			shared.WriteError(w, http.StatusInternalServerError, shared.UserSafeMessage(err))
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
