package reminders

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/smk-chits/smk-chits/internal/shared"
)

// Handler manages reminder endpoints.
type Handler struct {
	logger   *slog.Logger
	service  *Service
	validate *validator.Validate
}

// NewHandler builds Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, validate: validator.New()}
}

// MountRoutes registers reminder routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/defaulters", h.sendDefaulters)
}

func (h *Handler) sendDefaulters(w http.ResponseWriter, r *http.Request) {
	var input SendInput
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			shared.WriteError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}
	if err := h.validate.Struct(input); err != nil {
		shared.WriteError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	result, err := h.service.SendDefaulterReminders(r.Context(), input)
	if err != nil {
		h.logger.Error("send reminders", slog.Any("error", err))
		shared.WriteError(w, http.StatusInternalServerError, shared.UserSafeMessage(err))
		return
	}
	shared.WriteJSON(w, http.StatusAccepted, result)
}
