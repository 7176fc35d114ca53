package get_location

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ChefReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ChefReservationService/internal/service/locations"
)

const (
	msgInvalidLocationID = "некорректный ID площадки"
	msgNotFound          = "площадка не найдена"
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

// Handle GET /api/v1/chef-home/{locationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	locationID, err := handlers.PathID(r, "locationId")
	if err != nil {
		h.logger.Warn("GET /chef-home/{id} - Invalid location ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLocationID)
		return
	}

	location, err := h.service.Get(r.Context(), locationID)
	if err != nil {
		if errors.Is(err, locations.ErrLocationNotFound) {
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("GET /chef-home/{id} - Failed to get location: location_id=%d, error=%v", locationID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, location)
}
