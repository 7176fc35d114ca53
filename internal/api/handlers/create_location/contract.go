package create_location

import (
	"context"

	"github.com/m04kA/SMC-ChefReservationService/internal/domain"
	"github.com/m04kA/SMC-ChefReservationService/internal/service/locations/models"
)

type LocationService interface {
	Create(ctx context.Context, actor domain.Actor, chefID int64, req *models.LocationRequest) (*models.LocationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
