package resolve_dispute

import (
	"context"

	"github.com/m04kA/SMC-ChefReservationService/internal/domain"
	resolveDispute "github.com/m04kA/SMC-ChefReservationService/internal/usecase/resolve_dispute"
)

type ResolveDisputeUseCase interface {
	Execute(ctx context.Context, req *resolveDispute.Request) (*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
