package transition_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ChefReservationService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ChefReservationService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-ChefReservationService/internal/service/access"
	"github.com/m04kA/SMC-ChefReservationService/pkg/retry"
)

// UseCase use case для перехода бронирования по событию
type UseCase struct {
	bookingRepo   BookingRepository
	access        AccessChecker
	paymentClient PaymentClient
	refundPolicy  RefundPolicy
	txManager     TransactionManager
	notifier      Notifier
	metrics       Metrics
	budget        retry.Budget
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	accessChecker AccessChecker,
	paymentClient PaymentClient,
	refundPolicy RefundPolicy,
	txManager TransactionManager,
	notifier Notifier,
	metrics Metrics,
	budget retry.Budget,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		access:        accessChecker,
		paymentClient: paymentClient,
		refundPolicy:  refundPolicy,
		txManager:     txManager,
		notifier:      notifier,
		metrics:       metrics,
		budget:        budget,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute применяет событие к бронированию.
// Чтение, запись статуса и возврат денег идут в одной транзакции под блокировкой строки:
// сначала пишется статус, затем вызывается провайдер, ошибка провайдера откатывает запись.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.Booking, error) {
	uc.logger.Info("TransitionBooking: booking=%d, event=%s, user=%d, role=%s",
		req.BookingID, req.Event, req.Actor.UserID, req.Actor.Role)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("TransitionBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	var (
		result   *domain.Booking
		refunded float64
	)

	// 2. Читаем, проверяем и записываем с повтором при конфликте версий
	err := retry.Do(ctx, uc.budget, isVersionConflict, func(ctx context.Context) error {
		return uc.txManager.Do(ctx, func(txCtx context.Context) error {
			booking, amount, err := uc.apply(txCtx, req, now)
			if err != nil {
				return err
			}
			result = booking
			refunded = amount
			return nil
		})
	})

	if err != nil {
		if errors.Is(err, retry.ErrExhausted) {
			uc.logger.Warn("TransitionBooking: booking=%d version conflicts exhausted retries", req.BookingID)
			return nil, ErrBusy
		}
		return nil, err
	}

	uc.logger.Info("TransitionBooking: booking=%d is now %s (refunded %.2f)", result.ID, result.Status, refunded)

	// 3. Метрики и уведомление
	if uc.metrics != nil {
		uc.metrics.RecordTransition(string(domain.ReservationKindBooking), string(req.Event), string(result.Status))
		if refunded > 0 {
			uc.metrics.RecordRefund(string(req.Event), refunded)
		}
	}
	uc.notifier.Notify(ctx, domain.NewBookingEvent(result, string(req.Event), now))

	return result, nil
}

// apply одна попытка перехода внутри транзакции. Возвращает обновлённое бронирование и сумму возврата
func (uc *UseCase) apply(ctx context.Context, req *Request, now time.Time) (*domain.Booking, float64, error) {
	// 2.1. Получаем бронирование с блокировкой строки
	booking, err := uc.bookingRepo.GetByIDForUpdate(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("TransitionBooking: booking id=%d not found", req.BookingID)
			return nil, 0, ErrBookingNotFound
		}
		uc.logger.Error("TransitionBooking: failed to get booking id=%d: %v", req.BookingID, err)
		return nil, 0, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	// 2.2. Актор должен быть участником бронирования
	if err := uc.access.Participant(ctx, req.Actor, booking.ClientID, booking.ChefID); err != nil {
		if errors.Is(err, access.ErrAccessDenied) || errors.Is(err, access.ErrChefNotFound) {
			uc.logger.Warn("TransitionBooking: user=%d has no access to booking=%d", req.Actor.UserID, booking.ID)
			return nil, 0, ErrAccessDenied
		}
		return nil, 0, fmt.Errorf("%w: access check: %v", ErrInternal, err)
	}

	// 2.3. Таблица переходов
	from := booking.Status
	rule, err := domain.BookingTransition(from, req.Event, req.Actor.Role)
	if err != nil {
		uc.logger.Warn("TransitionBooking: booking=%d: %v", booking.ID, err)
		return nil, 0, err
	}

	// 2.4. Начать можно только в день мероприятия или позже
	if req.Event == domain.BookingEventStart && domain.DateOnly(now).Before(domain.DateOnly(booking.Event.Date)) {
		uc.logger.Warn("TransitionBooking: booking=%d starts on %s", booking.ID, booking.Event.Date.Format(domain.DateFormat))
		return nil, 0, ErrTooEarlyToStart
	}

	// 2.5. Сумма возврата считается по состоянию под блокировкой
	var refund float64
	if rule.To == domain.BookingStatusCancelled {
		refund = uc.refundAmount(booking, req.Actor, now)
	}

	// 2.6. Применяем переход
	booking.Status = rule.To
	switch rule.To {
	case domain.BookingStatusCancelled:
		booking.CancellationReason = req.Reason
		booking.CancelledAt = &now
		booking.ApplyRefund(refund)
		booking.Payment.IntentID = nil
	case domain.BookingStatusCompleted:
		booking.Payment.IntentID = nil
	case domain.BookingStatusDisputed:
		booking.DisputeReason = req.Reason
	}

	// 2.7. Compare-and-swap по версии
	if err := uc.bookingRepo.Update(ctx, booking); err != nil {
		if errors.Is(err, bookingRepo.ErrVersionConflict) {
			uc.logger.Warn("TransitionBooking: booking=%d changed concurrently, retrying", booking.ID)
			return nil, 0, err
		}
		uc.logger.Error("TransitionBooking: failed to update booking=%d: %v", booking.ID, err)
		return nil, 0, fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
	}

	// 2.8. Возврат у провайдера. Ошибка откатывает транзакцию вместе со статусом.
	// Причина cancel:<id> служит ключом идемпотентности при повторе
	if refund > 0 {
		reason := fmt.Sprintf("cancel:%d", booking.ID)
		if err := uc.paymentClient.Refund(ctx, booking.ID, refund, reason); err != nil {
			uc.logger.Error("TransitionBooking: refund %.2f for booking=%d failed: %v", refund, booking.ID, err)
			return nil, 0, fmt.Errorf("%w: %v", ErrPaymentProvider, err)
		}
	}

	return booking, refund, nil
}

// refundAmount отказ или отмена до подтверждения возвращают всё, дальше решает политика
func (uc *UseCase) refundAmount(booking *domain.Booking, actor domain.Actor, now time.Time) float64 {
	if booking.Status == domain.BookingStatusPending {
		return booking.Payment.Refundable()
	}
	amount := uc.refundPolicy.Amount(booking, actor, now)
	if amount > booking.Payment.Refundable() {
		return booking.Payment.Refundable()
	}
	return amount
}

func isVersionConflict(err error) bool {
	return errors.Is(err, bookingRepo.ErrVersionConflict)
}
