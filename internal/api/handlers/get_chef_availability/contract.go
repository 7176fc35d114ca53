package get_chef_availability

import (
	"context"

	"github.com/m04kA/SMC-ChefReservationService/internal/service/availability/models"
)

type AvailabilityService interface {
	Get(ctx context.Context, chefID int64) (*models.ChefAvailabilityResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
