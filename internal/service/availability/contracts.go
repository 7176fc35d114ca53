package availability

import (
	"context"

	"github.com/m04kA/SMC-ChefReservationService/internal/domain"
)

// AvailabilityRepository интерфейс репозитория доступности шефа
type AvailabilityRepository interface {
	GetByChefID(ctx context.Context, chefID int64) (*domain.ChefAvailability, error)
	Upsert(ctx context.Context, availability *domain.ChefAvailability) (*domain.ChefAvailability, error)
}

// AccessChecker проверка владельца профиля шефа
type AccessChecker interface {
	ChefOwner(ctx context.Context, actor domain.Actor, chefID int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
