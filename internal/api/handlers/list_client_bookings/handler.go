package list_client_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ChefReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ChefReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-ChefReservationService/internal/service/bookings"
)

const (
	msgMissingUser = "отсутствует пользователь"
	msgForbidden   = "список доступен только клиентам"
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

// Handle GET /api/v1/clients/me/bookings
// Query params: status, startDate, endDate, includeInactive (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	req, err := handlers.ParseBookingsQuery(r)
	if err != nil {
		h.logger.Warn("GET /clients/me/bookings - Invalid query: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	result, err := h.service.ListClientBookings(r.Context(), actor, req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /clients/me/bookings - Invalid filter: user_id=%d, error=%v", actor.UserID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /clients/me/bookings - Access denied: user_id=%d, role=%s", actor.UserID, actor.Role)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /clients/me/bookings - Failed to list bookings: user_id=%d, error=%v", actor.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /clients/me/bookings - Bookings retrieved: user_id=%d, count=%d", actor.UserID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
