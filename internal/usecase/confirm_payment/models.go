package confirm_payment

import "github.com/m04kA/SMC-ChefReservationService/internal/domain"

// Request модель запроса на подтверждение платежа
type Request struct {
	Actor     domain.Actor
	BookingID int64
	IntentID  string
}
