package confirm_payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ChefReservationService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ChefReservationService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-ChefReservationService/pkg/retry"
)

// UseCase use case для подтверждения платежа по бронированию
type UseCase struct {
	bookingRepo   BookingRepository
	paymentClient PaymentClient
	notifier      Notifier
	budget        retry.Budget
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	paymentClient PaymentClient,
	notifier Notifier,
	budget retry.Budget,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		paymentClient: paymentClient,
		notifier:      notifier,
		budget:        budget,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute подтверждает платёж у провайдера и только после успеха записывает захваченную сумму
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.Booking, error) {
	uc.logger.Info("ConfirmPayment: booking=%d, intent=%s, user=%d", req.BookingID, req.IntentID, req.Actor.UserID)

	// 1. Валидация входных данных
	if req.BookingID <= 0 {
		return nil, fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}
	if req.IntentID == "" {
		return nil, fmt.Errorf("%w: intentId is required", ErrInvalidInput)
	}

	// 2. Бронирование должно ждать именно это намерение
	booking, err := uc.getWithIntent(ctx, req)
	if err != nil {
		return nil, err
	}

	// 3. Подтверждаем у провайдера. При ошибке бронирование не меняется
	captured, err := uc.paymentClient.Confirm(ctx, req.IntentID, booking.ID)
	if err != nil {
		uc.logger.Error("ConfirmPayment: provider failed for booking=%d intent=%s: %v", booking.ID, req.IntentID, err)
		return nil, fmt.Errorf("%w: %v", ErrPaymentProvider, err)
	}

	// 4. Записываем захваченную сумму
	var result *domain.Booking
	err = retry.Do(ctx, uc.budget, isVersionConflict, func(ctx context.Context) error {
		current, err := uc.getWithIntent(ctx, req)
		if err != nil {
			return err
		}

		current.Payment.CapturedAmount += captured
		current.Payment.IntentID = nil
		if current.Payment.CapturedAmount >= current.TotalAmount {
			current.Payment.Status = domain.PaymentStatusPaid
		} else {
			current.Payment.Status = domain.PaymentStatusDepositPaid
		}

		if err := uc.bookingRepo.Update(ctx, current); err != nil {
			if errors.Is(err, bookingRepo.ErrVersionConflict) {
				return err
			}
			uc.logger.Error("ConfirmPayment: failed to update booking=%d: %v", current.ID, err)
			return fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
		}
		result = current
		return nil
	})
	if err != nil {
		if errors.Is(err, retry.ErrExhausted) {
			uc.logger.Warn("ConfirmPayment: booking=%d version conflicts exhausted retries", req.BookingID)
			return nil, ErrBusy
		}
		return nil, err
	}

	uc.logger.Info("ConfirmPayment: booking=%d captured %.2f, payment status %s",
		result.ID, captured, result.Payment.Status)
	uc.notifier.Notify(ctx, domain.NewBookingEvent(result, "payment", uc.timeProvider.Now()))

	return result, nil
}

func (uc *UseCase) getWithIntent(ctx context.Context, req *Request) (*domain.Booking, error) {
	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("ConfirmPayment: booking id=%d not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("ConfirmPayment: failed to get booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	if !req.Actor.Role.IsClientLike() || !booking.IsClient(req.Actor.UserID) {
		uc.logger.Warn("ConfirmPayment: user=%d is not the client of booking=%d", req.Actor.UserID, booking.ID)
		return nil, ErrAccessDenied
	}

	if booking.Status != domain.BookingStatusPending && booking.Status != domain.BookingStatusConfirmed {
		uc.logger.Warn("ConfirmPayment: booking=%d is %s", booking.ID, booking.Status)
		return nil, ErrNotPayable
	}

	if booking.Payment.IntentID == nil || *booking.Payment.IntentID != req.IntentID {
		uc.logger.Warn("ConfirmPayment: booking=%d does not await intent %s", booking.ID, req.IntentID)
		return nil, ErrIntentMismatch
	}
	return booking, nil
}

func isVersionConflict(err error) bool {
	return errors.Is(err, bookingRepo.ErrVersionConflict)
}
