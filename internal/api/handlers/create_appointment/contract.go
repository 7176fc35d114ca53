package create_appointment

import (
	"context"

	"github.com/m04kA/SMC-ChefReservationService/internal/domain"
	createAppointment "github.com/m04kA/SMC-ChefReservationService/internal/usecase/create_appointment"
)

type CreateAppointmentUseCase interface {
	Execute(ctx context.Context, req *createAppointment.Request) (*domain.ChefHomeAppointment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
