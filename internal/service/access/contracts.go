package access

import (
	"context"

	"github.com/m04kA/SMC-ChefReservationService/internal/domain"
)

// ChefCatalogClient источник профиля шефа с аккаунтом-владельцем
type ChefCatalogClient interface {
	GetChef(ctx context.Context, chefID int64) (*domain.Chef, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
