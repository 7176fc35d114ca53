package create_payment_intent

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/m04kA/SMC-ChefReservationService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ChefReservationService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-ChefReservationService/pkg/retry"
)

// UseCase use case для создания платёжного намерения по бронированию
type UseCase struct {
	bookingRepo   BookingRepository
	paymentClient PaymentClient
	budget        retry.Budget
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, paymentClient PaymentClient, budget retry.Budget, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		paymentClient: paymentClient,
		budget:        budget,
		logger:        logger,
	}
}

// Execute создает намерение у провайдера и сохраняет его id в бронировании
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreatePaymentIntent: booking=%d, kind=%s, user=%d", req.BookingID, req.Kind, req.Actor.UserID)

	// 1. Валидация входных данных
	if req.BookingID <= 0 {
		return nil, fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}
	if req.Kind != KindDeposit && req.Kind != KindFull {
		uc.logger.Warn("CreatePaymentIntent: unknown kind %q", req.Kind)
		return nil, fmt.Errorf("%w: kind must be deposit or full", ErrInvalidInput)
	}

	// 2. Получаем бронирование и проверяем владельца
	booking, err := uc.getPayable(ctx, req)
	if err != nil {
		return nil, err
	}

	// 3. Считаем сумму
	amount := amountFor(booking, req.Kind)
	if amount <= 0 {
		uc.logger.Warn("CreatePaymentIntent: nothing to pay for booking=%d (%s)", booking.ID, req.Kind)
		return nil, ErrNothingToPay
	}

	// 4. Создаем намерение у провайдера
	intentID, err := uc.paymentClient.CreateIntent(ctx, booking.ID, amount)
	if err != nil {
		uc.logger.Error("CreatePaymentIntent: provider failed for booking=%d: %v", booking.ID, err)
		return nil, fmt.Errorf("%w: %v", ErrPaymentProvider, err)
	}

	// 5. Сохраняем id намерения, перечитывая бронирование при конфликте версий
	err = retry.Do(ctx, uc.budget, isVersionConflict, func(ctx context.Context) error {
		current, err := uc.getPayable(ctx, req)
		if err != nil {
			return err
		}
		current.Payment.IntentID = &intentID
		if err := uc.bookingRepo.Update(ctx, current); err != nil {
			if errors.Is(err, bookingRepo.ErrVersionConflict) {
				return err
			}
			uc.logger.Error("CreatePaymentIntent: failed to update booking=%d: %v", current.ID, err)
			return fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, retry.ErrExhausted) {
			uc.logger.Warn("CreatePaymentIntent: booking=%d version conflicts exhausted retries", req.BookingID)
			return nil, ErrBusy
		}
		return nil, err
	}

	uc.logger.Info("CreatePaymentIntent: booking=%d intent=%s amount=%.2f", booking.ID, intentID, amount)
	return &Response{BookingID: booking.ID, IntentID: intentID, Amount: amount}, nil
}

func (uc *UseCase) getPayable(ctx context.Context, req *Request) (*domain.Booking, error) {
	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("CreatePaymentIntent: booking id=%d not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("CreatePaymentIntent: failed to get booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	if !req.Actor.Role.IsClientLike() || !booking.IsClient(req.Actor.UserID) {
		uc.logger.Warn("CreatePaymentIntent: user=%d is not the client of booking=%d", req.Actor.UserID, booking.ID)
		return nil, ErrAccessDenied
	}

	if booking.Status != domain.BookingStatusPending && booking.Status != domain.BookingStatusConfirmed {
		uc.logger.Warn("CreatePaymentIntent: booking=%d is %s", booking.ID, booking.Status)
		return nil, ErrNotPayable
	}
	return booking, nil
}

// amountFor депозит доплачивается до depositAmount, полная оплата - до totalAmount
func amountFor(booking *domain.Booking, kind Kind) float64 {
	target := booking.TotalAmount
	if kind == KindDeposit {
		target = booking.Payment.DepositAmount
	}
	return math.Round((target-booking.Payment.CapturedAmount)*100) / 100
}

func isVersionConflict(err error) bool {
	return errors.Is(err, bookingRepo.ErrVersionConflict)
}
