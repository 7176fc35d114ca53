package create_payment_intent

import (
	"context"

	"github.com/m04kA/SMC-ChefReservationService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	Update(ctx context.Context, booking *domain.Booking) error
}

// PaymentClient создание платёжного намерения у провайдера
type PaymentClient interface {
	CreateIntent(ctx context.Context, bookingID int64, amount float64) (string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
