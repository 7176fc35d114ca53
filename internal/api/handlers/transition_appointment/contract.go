package transition_appointment

import (
	"context"

	"github.com/m04kA/SMC-ChefReservationService/internal/domain"
	transitionAppointment "github.com/m04kA/SMC-ChefReservationService/internal/usecase/transition_appointment"
)

type TransitionAppointmentUseCase interface {
	Execute(ctx context.Context, req *transitionAppointment.Request) (*domain.ChefHomeAppointment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
