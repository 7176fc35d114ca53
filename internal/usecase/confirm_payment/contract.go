package confirm_payment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ChefReservationService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	Update(ctx context.Context, booking *domain.Booking) error
}

// PaymentClient подтверждение платежа у провайдера
type PaymentClient interface {
	Confirm(ctx context.Context, intentID string, bookingID int64) (float64, error)
}

// Notifier уведомления по бронированиям
type Notifier interface {
	Notify(ctx context.Context, event domain.ReservationEvent)
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
