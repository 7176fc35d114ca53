package create_location

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ChefReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ChefReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-ChefReservationService/internal/service/locations"
	"github.com/m04kA/SMC-ChefReservationService/internal/service/locations/models"
)

const (
	msgInvalidChefID      = "некорректный ID шефа"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUser        = "отсутствует пользователь"
	msgChefNotFound       = "шеф не найден"
	msgForbidden          = "площадку может создать только владелец профиля шефа"
)

type Handler struct {
	service LocationService
	logger  Logger
}

func NewHandler(service LocationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/chefs/{chefId}/locations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	chefID, err := handlers.PathID(r, "chefId")
	if err != nil {
		h.logger.Warn("POST /chefs/{id}/locations - Invalid chef ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidChefID)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	var req models.LocationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /chefs/{id}/locations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	location, err := h.service.Create(r.Context(), actor, chefID, &req)
	if err != nil {
		switch {
		case errors.Is(err, locations.ErrInvalidInput):
			h.logger.Warn("POST /chefs/{id}/locations - Invalid location: chef_id=%d, error=%v", chefID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, locations.ErrChefNotFound):
			handlers.RespondNotFound(w, msgChefNotFound)

		case errors.Is(err, locations.ErrAccessDenied):
			h.logger.Warn("POST /chefs/{id}/locations - Access denied: chef_id=%d, user_id=%d", chefID, actor.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("POST /chefs/{id}/locations - Failed to create location: chef_id=%d, error=%v", chefID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /chefs/{id}/locations - Location created: location_id=%d, chef_id=%d", location.ID, chefID)
	handlers.RespondJSON(w, http.StatusCreated, location)
}
