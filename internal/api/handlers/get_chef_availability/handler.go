package get_chef_availability

import (
	"net/http"

	"github.com/m04kA/SMC-ChefReservationService/internal/api/handlers"
)

const msgInvalidChefID = "некорректный ID шефа"

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

// Handle GET /api/v1/chefs/{chefId}/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	chefID, err := handlers.PathID(r, "chefId")
	if err != nil {
		h.logger.Warn("GET /chefs/{id}/availability - Invalid chef ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidChefID)
		return
	}

	result, err := h.service.Get(r.Context(), chefID)
	if err != nil {
		h.logger.Error("GET /chefs/{id}/availability - Failed to get availability: chef_id=%d, error=%v", chefID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /chefs/{id}/availability - Availability retrieved: chef_id=%d, default=%t", chefID, result.IsDefault)
	handlers.RespondJSON(w, http.StatusOK, result)
}
