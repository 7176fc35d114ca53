package resolve_dispute

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ChefReservationService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ChefReservationService/internal/infra/storage/booking"
)

// UseCase use case для разрешения спора по бронированию
type UseCase struct {
	bookingRepo   BookingRepository
	paymentClient PaymentClient
	txManager     TransactionManager
	notifier      Notifier
	metrics       Metrics
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	paymentClient PaymentClient,
	txManager TransactionManager,
	notifier Notifier,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		paymentClient: paymentClient,
		txManager:     txManager,
		notifier:      notifier,
		metrics:       metrics,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute разрешает спор. Строка бронирования блокируется (FOR UPDATE) до конца транзакции,
// поэтому два администратора не могут разрешить один спор одновременно.
// Возврат с ключом "dispute:<id>" делает повтор безопасным у провайдера.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.Booking, error) {
	uc.logger.Info("ResolveDispute: booking=%d, admin=%d, refund=%.2f", req.BookingID, req.Actor.UserID, req.RefundAmount)

	// 1. Валидация входных данных
	if req.Actor.Role != domain.RoleAdmin {
		uc.logger.Warn("ResolveDispute: role %s cannot resolve disputes", req.Actor.Role)
		return nil, ErrForbidden
	}
	if req.BookingID <= 0 {
		return nil, fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}
	resolution := strings.TrimSpace(req.Resolution)
	if resolution == "" {
		return nil, fmt.Errorf("%w: resolution is required", ErrInvalidInput)
	}
	if len(resolution) > domain.MaxResolutionLength {
		return nil, fmt.Errorf("%w: resolution must not exceed %d characters", ErrInvalidInput, domain.MaxResolutionLength)
	}
	if req.RefundAmount < 0 {
		return nil, fmt.Errorf("%w: refundAmount must not be negative", ErrInvalidInput)
	}

	now := uc.timeProvider.Now()
	var result *domain.Booking

	// 2. Всё под блокировкой строки бронирования
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем бронирование с блокировкой
		booking, err := uc.bookingRepo.GetByIDForUpdate(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("ResolveDispute: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("ResolveDispute: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// 2.2. Спор должен быть открыт
		if booking.Status != domain.BookingStatusDisputed {
			uc.logger.Warn("ResolveDispute: booking=%d is %s, not disputed", booking.ID, booking.Status)
			return ErrNotDisputed
		}
		if _, err := domain.BookingTransition(booking.Status, domain.BookingEventResolve, req.Actor.Role); err != nil {
			return err
		}

		// 2.3. Нельзя вернуть больше, чем захвачено и ещё не возвращено
		if req.RefundAmount > booking.Payment.Refundable() {
			uc.logger.Warn("ResolveDispute: refund %.2f exceeds refundable %.2f for booking=%d",
				req.RefundAmount, booking.Payment.Refundable(), booking.ID)
			return fmt.Errorf("%w: requested %.2f, refundable %.2f",
				ErrRefundExceedsCaptured, req.RefundAmount, booking.Payment.Refundable())
		}

		// 2.4. Возврат до изменения статуса
		if req.RefundAmount > 0 {
			reason := fmt.Sprintf("dispute:%d", booking.ID)
			if err := uc.paymentClient.Refund(txCtx, booking.ID, req.RefundAmount, reason); err != nil {
				uc.logger.Error("ResolveDispute: refund %.2f for booking=%d failed: %v", req.RefundAmount, booking.ID, err)
				return fmt.Errorf("%w: %v", ErrPaymentProvider, err)
			}
		}

		// 2.5. Записываем решение. Оно неизменяемо: повторно спор не откроется
		booking.Status = domain.ResolveBookingTarget(req.RefundAmount)
		booking.Resolution = &resolution
		booking.ResolvedBy = &req.Actor.UserID
		booking.ResolvedAt = &now
		booking.ApplyRefund(req.RefundAmount)
		booking.Payment.IntentID = nil
		if booking.Status == domain.BookingStatusCancelled {
			booking.CancelledAt = &now
		}

		if err := uc.bookingRepo.Update(txCtx, booking); err != nil {
			uc.logger.Error("ResolveDispute: failed to update booking=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
		}

		result = booking
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("ResolveDispute: booking=%d resolved as %s", result.ID, result.Status)

	if uc.metrics != nil {
		uc.metrics.RecordTransition(string(domain.ReservationKindBooking), string(domain.BookingEventResolve), string(result.Status))
		if req.RefundAmount > 0 {
			uc.metrics.RecordRefund("dispute", req.RefundAmount)
		}
	}
	uc.notifier.Notify(ctx, domain.NewBookingEvent(result, string(domain.BookingEventResolve), now))

	return result, nil
}
