package start_due_bookings

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ChefReservationService/internal/domain"
	"github.com/m04kA/SMC-ChefReservationService/internal/usecase/transition_booking"
)

// DefaultBatchSize сколько бронирований обрабатывается за один проход
const DefaultBatchSize = 100

// UseCase переводит подтверждённые бронирования в in_progress, когда наступило время начала
type UseCase struct {
	bookingRepo  BookingRepository
	transitioner BookingTransitioner
	batchSize    uint64
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, transitioner BookingTransitioner, batchSize uint64, logger Logger) *UseCase {
	if batchSize == 0 {
		batchSize = DefaultBatchSize
	}
	return &UseCase{
		bookingRepo:  bookingRepo,
		transitioner: transitioner,
		batchSize:    batchSize,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute один проход фоновой задачи. Ошибка одного бронирования не останавливает остальные
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	now := uc.timeProvider.Now()

	bookings, err := uc.bookingRepo.ListDueForStart(ctx, domain.DateOnly(now), uc.batchSize)
	if err != nil {
		uc.logger.Error("StartDueBookings: failed to list due bookings: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	resp := &Response{}
	for _, b := range bookings {
		if !hasStarted(b, now) {
			resp.Skipped++
			continue
		}

		_, err := uc.transitioner.Execute(ctx, &transition_booking.Request{
			Actor:     domain.SystemActor,
			BookingID: b.ID,
			Event:     domain.BookingEventStart,
		})
		if err != nil {
			uc.logger.Warn("StartDueBookings: booking=%d not started: %v", b.ID, err)
			resp.Failed++
			continue
		}
		resp.Started++
	}

	if len(bookings) > 0 {
		uc.logger.Info("StartDueBookings: started=%d, skipped=%d, failed=%d", resp.Started, resp.Skipped, resp.Failed)
	}
	return resp, nil
}

// hasStarted время начала мероприятия уже прошло
func hasStarted(b *domain.Booking, now time.Time) bool {
	minutes, err := b.Event.StartTime.Minutes()
	if err != nil {
		return false
	}
	start := domain.DateOnly(b.Event.Date).Add(time.Duration(minutes) * time.Minute)
	return !now.Before(start)
}
