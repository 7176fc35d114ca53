package confirm_payment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ChefReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ChefReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-ChefReservationService/internal/service/bookings/models"
	confirmPayment "github.com/m04kA/SMC-ChefReservationService/internal/usecase/confirm_payment"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUser        = "отсутствует пользователь"
	msgNotFound           = "бронирование не найдено"
	msgForbidden          = "подтвердить оплату может только клиент бронирования"
	msgIntentMismatch     = "платёжное намерение не относится к бронированию"
	msgNotPayable         = "бронирование в текущем статусе нельзя оплатить"
)

type Handler struct {
	useCase ConfirmPaymentUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmPaymentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/payments/confirm
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := handlers.PathID(r, "bookingId")
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/payments/confirm - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	var req ConfirmPaymentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/{id}/payments/confirm - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	booking, err := h.useCase.Execute(r.Context(), &confirmPayment.Request{
		Actor:     actor,
		BookingID: bookingID,
		IntentID:  req.IntentID,
	})
	if err != nil {
		switch {
		case errors.Is(err, confirmPayment.ErrInvalidInput):
			h.logger.Warn("POST /bookings/{id}/payments/confirm - Invalid input: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, confirmPayment.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/payments/confirm - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, confirmPayment.ErrAccessDenied):
			h.logger.Warn("POST /bookings/{id}/payments/confirm - Access denied: booking_id=%d, user_id=%d", bookingID, actor.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, confirmPayment.ErrNotPayable):
			h.logger.Warn("POST /bookings/{id}/payments/confirm - Not payable: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusConflict, handlers.CodeNotPayable, msgNotPayable)

		case errors.Is(err, confirmPayment.ErrIntentMismatch):
			h.logger.Warn("POST /bookings/{id}/payments/confirm - Intent mismatch: booking_id=%d, intent_id=%s", bookingID, req.IntentID)
			handlers.RespondConflict(w, msgIntentMismatch)

		case errors.Is(err, confirmPayment.ErrPaymentProvider):
			h.logger.Error("POST /bookings/{id}/payments/confirm - Payment provider error: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondPaymentProviderError(w)

		case errors.Is(err, confirmPayment.ErrBusy):
			handlers.RespondBusy(w)

		default:
			h.logger.Error("POST /bookings/{id}/payments/confirm - Failed to confirm payment: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/payments/confirm - Payment confirmed: booking_id=%d, payment_status=%s",
		bookingID, booking.Payment.Status)
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainBooking(booking))
}
