package resolve_dispute

import "github.com/m04kA/SMC-ChefReservationService/internal/domain"

// Request модель запроса на разрешение спора
type Request struct {
	Actor        domain.Actor
	BookingID    int64
	Resolution   string
	RefundAmount float64 // 0 - решение в пользу шефа
}
