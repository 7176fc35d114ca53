package transition_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ChefReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ChefReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-ChefReservationService/internal/domain"
	"github.com/m04kA/SMC-ChefReservationService/internal/service/bookings/models"
	transitionBooking "github.com/m04kA/SMC-ChefReservationService/internal/usecase/transition_booking"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUser        = "отсутствует пользователь"
	msgNotFound           = "бронирование не найдено"
	msgForbidden          = "доступ запрещен"
	msgTooEarly           = "мероприятие ещё не началось"
)

type Handler struct {
	useCase TransitionBookingUseCase
	logger  Logger
}

func NewHandler(useCase TransitionBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/bookings/{bookingId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := handlers.PathID(r, "bookingId")
	if err != nil {
		h.logger.Warn("PUT /bookings/{id}/status - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /bookings/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	booking, err := h.useCase.Execute(r.Context(), &transitionBooking.Request{
		Actor:     actor,
		BookingID: bookingID,
		Event:     domain.BookingEvent(req.Event),
		Reason:    req.Reason,
	})
	if err != nil {
		if handlers.RespondDomainError(w, err) {
			h.logger.Warn("PUT /bookings/{id}/status - Rejected: booking_id=%d, event=%s, reason=%v", bookingID, req.Event, err)
			return
		}

		switch {
		case errors.Is(err, transitionBooking.ErrInvalidInput):
			h.logger.Warn("PUT /bookings/{id}/status - Invalid input: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, transitionBooking.ErrBookingNotFound):
			h.logger.Warn("PUT /bookings/{id}/status - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, transitionBooking.ErrAccessDenied):
			h.logger.Warn("PUT /bookings/{id}/status - Access denied: booking_id=%d, user_id=%d", bookingID, actor.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, transitionBooking.ErrTooEarlyToStart):
			h.logger.Warn("PUT /bookings/{id}/status - Too early to start: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusConflict, handlers.CodeInvalidTransition, msgTooEarly)

		case errors.Is(err, transitionBooking.ErrPaymentProvider):
			h.logger.Error("PUT /bookings/{id}/status - Refund failed: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondPaymentProviderError(w)

		case errors.Is(err, transitionBooking.ErrBusy):
			h.logger.Warn("PUT /bookings/{id}/status - Busy: booking_id=%d", bookingID)
			handlers.RespondBusy(w)

		default:
			h.logger.Error("PUT /bookings/{id}/status - Failed to update status: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /bookings/{id}/status - Booking updated: booking_id=%d, event=%s, status=%s",
		bookingID, req.Event, booking.Status)
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainBooking(booking))
}
