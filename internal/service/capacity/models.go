package capacity

import "github.com/m04kA/SMC-ChefReservationService/internal/domain"

// Request запрашиваемое окно и количество гостей
type Request struct {
	Window domain.TimeWindow
	Guests int
}
