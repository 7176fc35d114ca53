package confirm_payment

import (
	"context"

	"github.com/m04kA/SMC-ChefReservationService/internal/domain"
	confirmPayment "github.com/m04kA/SMC-ChefReservationService/internal/usecase/confirm_payment"
)

type ConfirmPaymentUseCase interface {
	Execute(ctx context.Context, req *confirmPayment.Request) (*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
