package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ChefReservationService/internal/domain"
	"github.com/m04kA/SMC-ChefReservationService/internal/service/capacity"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// AvailabilityRepository интерфейс репозитория доступности шефа
type AvailabilityRepository interface {
	GetByChefID(ctx context.Context, chefID int64) (*domain.ChefAvailability, error)
}

// ChefCatalogClient интерфейс клиента каталога шефов
type ChefCatalogClient interface {
	GetChef(ctx context.Context, chefID int64) (*domain.Chef, error)
	GetMenu(ctx context.Context, chefID, menuID int64) (*domain.Menu, error)
}

// CapacityResolver проверка структурной допустимости запроса
type CapacityResolver interface {
	ValidateServiceRequest(availability domain.Availability, menu *domain.Menu, req capacity.Request, now time.Time) error
}

// ConflictDetector блокировка расписания шефа и поиск пересечений
type ConflictDetector interface {
	Lock(ctx context.Context, chefID int64) error
	FindConflicts(ctx context.Context, chefID int64, window domain.TimeWindow) ([]domain.ReservationRef, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier уведомления о переходах резерваций
type Notifier interface {
	Notify(ctx context.Context, event domain.ReservationEvent)
}

// Metrics бизнес-метрики
type Metrics interface {
	RecordRejection(kind, code string)
	RecordTransition(kind, event, status string)
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
