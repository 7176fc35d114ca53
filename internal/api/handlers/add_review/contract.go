package add_review

import (
	"context"

	"github.com/m04kA/SMC-ChefReservationService/internal/domain"
	"github.com/m04kA/SMC-ChefReservationService/internal/service/bookings/models"
)

type BookingService interface {
	AddReview(ctx context.Context, actor domain.Actor, bookingID int64, req *models.AddReviewRequest) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
