package update_chef_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ChefReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ChefReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-ChefReservationService/internal/service/availability"
	"github.com/m04kA/SMC-ChefReservationService/internal/service/availability/models"
)

const (
	msgInvalidChefID      = "некорректный ID шефа"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUser        = "отсутствует пользователь"
	msgChefNotFound       = "шеф не найден"
	msgForbidden          = "изменить доступность может только владелец профиля шефа"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/chefs/{chefId}/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	chefID, err := handlers.PathID(r, "chefId")
	if err != nil {
		h.logger.Warn("PUT /chefs/{id}/availability - Invalid chef ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidChefID)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	var req models.AvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /chefs/{id}/availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Upsert(r.Context(), actor, chefID, &req)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("PUT /chefs/{id}/availability - Invalid availability: chef_id=%d, error=%v", chefID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, availability.ErrChefNotFound):
			handlers.RespondNotFound(w, msgChefNotFound)

		case errors.Is(err, availability.ErrAccessDenied):
			h.logger.Warn("PUT /chefs/{id}/availability - Access denied: chef_id=%d, user_id=%d", chefID, actor.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("PUT /chefs/{id}/availability - Failed to update availability: chef_id=%d, error=%v", chefID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /chefs/{id}/availability - Availability updated: chef_id=%d", chefID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
