package deactivate_location

import (
	"context"

	"github.com/m04kA/SMC-ChefReservationService/internal/domain"
)

type LocationService interface {
	Deactivate(ctx context.Context, actor domain.Actor, locationID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
