package locations

import (
	"context"

	"github.com/m04kA/SMC-ChefReservationService/internal/domain"
)

// LocationRepository интерфейс репозитория площадок
type LocationRepository interface {
	Create(ctx context.Context, loc *domain.ChefHomeLocation) (*domain.ChefHomeLocation, error)
	Update(ctx context.Context, loc *domain.ChefHomeLocation) error
	GetByID(ctx context.Context, id int64) (*domain.ChefHomeLocation, error)
	ListByChef(ctx context.Context, chefID int64) ([]*domain.ChefHomeLocation, error)
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
