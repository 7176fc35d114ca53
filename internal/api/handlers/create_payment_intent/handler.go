package create_payment_intent

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ChefReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ChefReservationService/internal/api/middleware"
	createPaymentIntent "github.com/m04kA/SMC-ChefReservationService/internal/usecase/create_payment_intent"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUser        = "отсутствует пользователь"
	msgNotFound           = "бронирование не найдено"
	msgForbidden          = "оплатить может только клиент бронирования"
	msgNotPayable         = "бронирование нельзя оплатить в текущем статусе"
	msgNothingToPay       = "сумма уже оплачена"
)

type Handler struct {
	useCase CreatePaymentIntentUseCase
	logger  Logger
}

func NewHandler(useCase CreatePaymentIntentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/payment-intents
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := handlers.PathID(r, "bookingId")
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/payment-intents - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	var req CreateIntentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/{id}/payment-intents - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &createPaymentIntent.Request{
		Actor:     actor,
		BookingID: bookingID,
		Kind:      createPaymentIntent.Kind(req.Kind),
	})
	if err != nil {
		switch {
		case errors.Is(err, createPaymentIntent.ErrInvalidInput):
			h.logger.Warn("POST /bookings/{id}/payment-intents - Invalid input: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, createPaymentIntent.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/payment-intents - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, createPaymentIntent.ErrAccessDenied):
			h.logger.Warn("POST /bookings/{id}/payment-intents - Access denied: booking_id=%d, user_id=%d", bookingID, actor.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, createPaymentIntent.ErrNotPayable):
			h.logger.Warn("POST /bookings/{id}/payment-intents - Not payable: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusConflict, handlers.CodeNotPayable, msgNotPayable)

		case errors.Is(err, createPaymentIntent.ErrNothingToPay):
			h.logger.Warn("POST /bookings/{id}/payment-intents - Nothing to pay: booking_id=%d, kind=%s", bookingID, req.Kind)
			handlers.RespondConflict(w, msgNothingToPay)

		case errors.Is(err, createPaymentIntent.ErrPaymentProvider):
			h.logger.Error("POST /bookings/{id}/payment-intents - Payment provider error: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondPaymentProviderError(w)

		case errors.Is(err, createPaymentIntent.ErrBusy):
			handlers.RespondBusy(w)

		default:
			h.logger.Error("POST /bookings/{id}/payment-intents - Failed to create intent: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/payment-intents - Intent created: booking_id=%d, intent_id=%s, amount=%.2f",
		bookingID, result.IntentID, result.Amount)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
