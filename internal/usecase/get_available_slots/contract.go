package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ChefReservationService/internal/domain"
)

// LocationRepository интерфейс репозитория площадок
type LocationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.ChefHomeLocation, error)
}

// ScheduleRepository активные резервации шефа обоих видов на дату
type ScheduleRepository interface {
	ListActiveByChefAndDate(ctx context.Context, chefID int64, date time.Time) ([]domain.ReservationRef, error)
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
