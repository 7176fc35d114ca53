package resolve_dispute

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ChefReservationService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Booking, error)
	Update(ctx context.Context, booking *domain.Booking) error
}

// PaymentClient возврат средств у платёжного провайдера
type PaymentClient interface {
	Refund(ctx context.Context, bookingID int64, amount float64, reason string) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier уведомления о переходах резерваций
type Notifier interface {
	Notify(ctx context.Context, event domain.ReservationEvent)
}

// Metrics бизнес-метрики
type Metrics interface {
	RecordTransition(kind, event, status string)
	RecordRefund(source string, amount float64)
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
