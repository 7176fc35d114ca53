package list_chef_locations

import (
	"context"

	"github.com/m04kA/SMC-ChefReservationService/internal/domain"
	"github.com/m04kA/SMC-ChefReservationService/internal/service/locations/models"
)

type LocationService interface {
	ListByChef(ctx context.Context, actor domain.Actor, chefID int64) (*models.LocationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
