package list_chef_bookings

import (
	"context"

	"github.com/m04kA/SMC-ChefReservationService/internal/domain"
	"github.com/m04kA/SMC-ChefReservationService/internal/service/bookings/models"
)

type BookingService interface {
	ListChefBookings(ctx context.Context, actor domain.Actor, chefID int64, req *models.ListBookingsRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
