package add_review

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ChefReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ChefReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-ChefReservationService/internal/service/bookings"
	"github.com/m04kA/SMC-ChefReservationService/internal/service/bookings/models"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUser        = "отсутствует пользователь"
	msgNotFound           = "бронирование не найдено"
	msgForbidden          = "отзыв может оставить только клиент бронирования"
	msgCannotReview       = "отзыв можно оставить один раз после завершения мероприятия"
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

// Handle POST /api/v1/bookings/{bookingId}/review
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := handlers.PathID(r, "bookingId")
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/review - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	var req models.AddReviewRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/{id}/review - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	booking, err := h.service.AddReview(r.Context(), actor, bookingID, &req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("POST /bookings/{id}/review - Invalid review: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/review - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("POST /bookings/{id}/review - Access denied: booking_id=%d, user_id=%d", bookingID, actor.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrCannotReview):
			h.logger.Warn("POST /bookings/{id}/review - Cannot review: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgCannotReview)

		case errors.Is(err, bookings.ErrBusy):
			handlers.RespondBusy(w)

		default:
			h.logger.Error("POST /bookings/{id}/review - Failed to add review: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/review - Review added: booking_id=%d, rating=%d", bookingID, req.Rating)
	handlers.RespondJSON(w, http.StatusOK, booking)
}
