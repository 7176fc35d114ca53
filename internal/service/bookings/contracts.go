package bookings

import (
	"context"

	"github.com/m04kA/SMC-ChefReservationService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	Update(ctx context.Context, booking *domain.Booking) error
}

// AccessChecker проверка прав на бронирование
type AccessChecker interface {
	ChefOwner(ctx context.Context, actor domain.Actor, chefID int64) error
	Participant(ctx context.Context, actor domain.Actor, clientID, chefID int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
