package start_due_bookings

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ChefReservationService/internal/domain"
	"github.com/m04kA/SMC-ChefReservationService/internal/usecase/transition_booking"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	ListDueForStart(ctx context.Context, date time.Time, limit uint64) ([]*domain.Booking, error)
}

// BookingTransitioner переход бронирования по событию
type BookingTransitioner interface {
	Execute(ctx context.Context, req *transition_booking.Request) (*domain.Booking, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время в UTC
func (p *RealTimeProvider) Now() time.Time {
	return time.Now().UTC()
}
