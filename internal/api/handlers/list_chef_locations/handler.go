package list_chef_locations

import (
	"net/http"

	"github.com/m04kA/SMC-ChefReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ChefReservationService/internal/api/middleware"
)

const (
	msgInvalidChefID = "некорректный ID шефа"
	msgMissingUser   = "отсутствует пользователь"
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

// Handle GET /api/v1/chefs/{chefId}/locations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	chefID, err := handlers.PathID(r, "chefId")
	if err != nil {
		h.logger.Warn("GET /chefs/{id}/locations - Invalid chef ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidChefID)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	result, err := h.service.ListByChef(r.Context(), actor, chefID)
	if err != nil {
		h.logger.Error("GET /chefs/{id}/locations - Failed to list locations: chef_id=%d, error=%v", chefID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /chefs/{id}/locations - Locations retrieved: chef_id=%d, count=%d", chefID, len(result.Locations))
	handlers.RespondJSON(w, http.StatusOK, result)
}
