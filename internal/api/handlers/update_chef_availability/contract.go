package update_chef_availability

import (
	"context"

	"github.com/m04kA/SMC-ChefReservationService/internal/domain"
	"github.com/m04kA/SMC-ChefReservationService/internal/service/availability/models"
)

type AvailabilityService interface {
	Upsert(ctx context.Context, actor domain.Actor, chefID int64, req *models.AvailabilityRequest) (*models.ChefAvailabilityResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
