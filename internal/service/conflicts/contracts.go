package conflicts

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ChefReservationService/internal/domain"
)

// ScheduleRepository расписание шефа по обоим видам резерваций
type ScheduleRepository interface {
	LockChef(ctx context.Context, chefID int64) error
	ListActiveByChefAndDate(ctx context.Context, chefID int64, date time.Time) ([]domain.ReservationRef, error)
}

// Metrics счётчик обнаруженных конфликтов
type Metrics interface {
	RecordConflict(kind string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
