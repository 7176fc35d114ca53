package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-ChefReservationService/internal/domain"
)

// Request модель запроса на получение свободных интервалов площадки
type Request struct {
	LocationID int64     // ID площадки шефа
	Date       time.Time // Дата (без времени)
}

// Response модель ответа со списком свободных интервалов
type Response struct {
	LocationID int64
	ChefID     int64
	Date       time.Time
	Slots      []domain.AvailableSlot // Пустой, если в этот день площадка не принимает
}
