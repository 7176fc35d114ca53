package update_location

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ChefReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ChefReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-ChefReservationService/internal/service/locations"
	"github.com/m04kA/SMC-ChefReservationService/internal/service/locations/models"
)

const (
	msgInvalidLocationID  = "некорректный ID площадки"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUser        = "отсутствует пользователь"
	msgNotFound           = "площадка не найдена"
	msgForbidden          = "доступ запрещен"
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

// Handle PUT /api/v1/chef-home/{locationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	locationID, err := handlers.PathID(r, "locationId")
	if err != nil {
		h.logger.Warn("PUT /chef-home/{id} - Invalid location ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLocationID)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	var req models.LocationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /chef-home/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	location, err := h.service.Update(r.Context(), actor, locationID, &req)
	if err != nil {
		switch {
		case errors.Is(err, locations.ErrInvalidInput):
			h.logger.Warn("PUT /chef-home/{id} - Invalid location: location_id=%d, error=%v", locationID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, locations.ErrLocationNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, locations.ErrAccessDenied), errors.Is(err, locations.ErrChefNotFound):
			h.logger.Warn("PUT /chef-home/{id} - Access denied: location_id=%d, user_id=%d", locationID, actor.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("PUT /chef-home/{id} - Failed to update location: location_id=%d, error=%v", locationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /chef-home/{id} - Location updated: location_id=%d", locationID)
	handlers.RespondJSON(w, http.StatusOK, location)
}
