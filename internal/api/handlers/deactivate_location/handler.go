package deactivate_location

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ChefReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ChefReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-ChefReservationService/internal/service/locations"
)

const (
	msgInvalidLocationID = "некорректный ID площадки"
	msgMissingUser       = "отсутствует пользователь"
	msgNotFound          = "площадка не найдена"
	msgForbidden         = "доступ запрещен"
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

// Handle DELETE /api/v1/chef-home/{locationId}
// Мягкое удаление: площадка перестаёт принимать визиты
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	locationID, err := handlers.PathID(r, "locationId")
	if err != nil {
		h.logger.Warn("DELETE /chef-home/{id} - Invalid location ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLocationID)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	if err := h.service.Deactivate(r.Context(), actor, locationID); err != nil {
		switch {
		case errors.Is(err, locations.ErrLocationNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, locations.ErrAccessDenied), errors.Is(err, locations.ErrChefNotFound):
			h.logger.Warn("DELETE /chef-home/{id} - Access denied: location_id=%d, user_id=%d", locationID, actor.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /chef-home/{id} - Failed to deactivate location: location_id=%d, error=%v", locationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /chef-home/{id} - Location deactivated: location_id=%d", locationID)
	handlers.RespondNoContent(w)
}
