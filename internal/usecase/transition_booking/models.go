package transition_booking

import "github.com/m04kA/SMC-ChefReservationService/internal/domain"

// Request модель запроса на переход бронирования
type Request struct {
	Actor     domain.Actor
	BookingID int64
	Event     domain.BookingEvent
	Reason    *string // причина отмены или спора
}
