package transition_appointment

import "github.com/m04kA/SMC-ChefReservationService/internal/domain"

// Request модель запроса на переход визита
type Request struct {
	Actor         domain.Actor
	AppointmentID int64
	Event         domain.AppointmentEvent
}
