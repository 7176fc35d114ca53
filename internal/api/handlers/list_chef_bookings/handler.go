package list_chef_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ChefReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ChefReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-ChefReservationService/internal/service/bookings"
)

const (
	msgInvalidChefID = "некорректный ID шефа"
	msgMissingUser   = "отсутствует пользователь"
	msgChefNotFound  = "шеф не найден"
	msgForbidden     = "доступ запрещен"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/chefs/{chefId}/bookings
// Query params: status, startDate, endDate, includeInactive (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	chefID, err := handlers.PathID(r, "chefId")
	if err != nil {
		h.logger.Warn("GET /chefs/{id}/bookings - Invalid chef ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidChefID)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	req, err := handlers.ParseBookingsQuery(r)
	if err != nil {
		h.logger.Warn("GET /chefs/{id}/bookings - Invalid query: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	result, err := h.service.ListChefBookings(r.Context(), actor, chefID, req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /chefs/{id}/bookings - Invalid filter: chef_id=%d, error=%v", chefID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, bookings.ErrChefNotFound):
			h.logger.Warn("GET /chefs/{id}/bookings - Chef not found: chef_id=%d", chefID)
			handlers.RespondNotFound(w, msgChefNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /chefs/{id}/bookings - Access denied: chef_id=%d, user_id=%d", chefID, actor.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /chefs/{id}/bookings - Failed to list bookings: chef_id=%d, error=%v", chefID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /chefs/{id}/bookings - Bookings retrieved: chef_id=%d, count=%d", chefID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
