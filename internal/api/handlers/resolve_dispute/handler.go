package resolve_dispute

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ChefReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ChefReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-ChefReservationService/internal/service/bookings/models"
	resolveDispute "github.com/m04kA/SMC-ChefReservationService/internal/usecase/resolve_dispute"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUser        = "отсутствует пользователь"
	msgNotFound           = "бронирование не найдено"
	msgForbidden          = "только для администраторов"
	msgNotDisputed        = "бронирование не находится в споре"
	msgRefundTooLarge     = "сумма возврата превышает оплаченную"
)

type Handler struct {
	useCase ResolveDisputeUseCase
	logger  Logger
}

func NewHandler(useCase ResolveDisputeUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/admin/disputes/{bookingId}/resolve
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := handlers.PathID(r, "bookingId")
	if err != nil {
		h.logger.Warn("PUT /admin/disputes/{id}/resolve - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	var req ResolveDisputeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/disputes/{id}/resolve - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	booking, err := h.useCase.Execute(r.Context(), &resolveDispute.Request{
		Actor:        actor,
		BookingID:    bookingID,
		Resolution:   req.Resolution,
		RefundAmount: req.RefundAmount,
	})
	if err != nil {
		switch {
		case errors.Is(err, resolveDispute.ErrForbidden):
			h.logger.Warn("PUT /admin/disputes/{id}/resolve - Forbidden: user_id=%d, role=%s", actor.UserID, actor.Role)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, resolveDispute.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, resolveDispute.ErrBookingNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, resolveDispute.ErrNotDisputed):
			h.logger.Warn("PUT /admin/disputes/{id}/resolve - Not disputed: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusConflict, handlers.CodeNotDisputed, msgNotDisputed)

		case errors.Is(err, resolveDispute.ErrRefundExceedsCaptured):
			h.logger.Warn("PUT /admin/disputes/{id}/resolve - Refund too large: booking_id=%d, amount=%.2f", bookingID, req.RefundAmount)
			handlers.RespondError(w, http.StatusUnprocessableEntity, handlers.CodeRefundExceedsCaptured, msgRefundTooLarge)

		case errors.Is(err, resolveDispute.ErrPaymentProvider):
			h.logger.Error("PUT /admin/disputes/{id}/resolve - Refund failed: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondPaymentProviderError(w)

		default:
			h.logger.Error("PUT /admin/disputes/{id}/resolve - Failed to resolve dispute: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/disputes/{id}/resolve - Dispute resolved: booking_id=%d, status=%s, refund=%.2f",
		bookingID, booking.Status, req.RefundAmount)
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainBooking(booking))
}
