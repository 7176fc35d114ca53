package create_appointment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ChefReservationService/internal/domain"
	"github.com/m04kA/SMC-ChefReservationService/internal/service/capacity"
)

// AppointmentRepository интерфейс репозитория визитов
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *domain.ChefHomeAppointment) (*domain.ChefHomeAppointment, error)
}

// LocationRepository интерфейс репозитория площадок
type LocationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.ChefHomeLocation, error)
}

// CapacityResolver проверка структурной допустимости запроса
type CapacityResolver interface {
	ValidateLocationRequest(location *domain.ChefHomeLocation, req capacity.Request, now time.Time) error
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
