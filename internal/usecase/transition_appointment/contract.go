package transition_appointment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ChefReservationService/internal/domain"
)

// AppointmentRepository интерфейс репозитория визитов
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.ChefHomeAppointment, error)
	UpdateStatus(ctx context.Context, appointment *domain.ChefHomeAppointment) error
}

// AccessChecker проверка участия актора в визите
type AccessChecker interface {
	Participant(ctx context.Context, actor domain.Actor, clientID, chefID int64) error
}

// Notifier уведомления о переходах резерваций
type Notifier interface {
	Notify(ctx context.Context, event domain.ReservationEvent)
}

// Metrics бизнес-метрики
type Metrics interface {
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
