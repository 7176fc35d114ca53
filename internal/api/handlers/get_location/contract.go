package get_location

import (
	"context"

	"github.com/m04kA/SMC-ChefReservationService/internal/service/locations/models"
)

type LocationService interface {
	Get(ctx context.Context, locationID int64) (*models.LocationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
