package create_payment_intent

import "github.com/m04kA/SMC-ChefReservationService/internal/domain"

// Kind какую часть стоимости оплачивают
type Kind string

const (
	KindDeposit Kind = "deposit"
	KindFull    Kind = "full"
)

// Request модель запроса на создание платёжного намерения
type Request struct {
	Actor     domain.Actor
	BookingID int64
	Kind      Kind
}

// Response созданное намерение
type Response struct {
	BookingID int64
	IntentID  string
	Amount    float64
}
