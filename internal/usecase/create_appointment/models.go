package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-ChefReservationService/internal/domain"
	"github.com/m04kA/SMC-ChefReservationService/pkg/types"
)

// Request модель запроса на визит к шефу
type Request struct {
	Actor      domain.Actor
	LocationID int64
	Date       time.Time        // Дата визита (без времени)
	StartTime  types.TimeString // Начало, "HH:MM"
	EndTime    types.TimeString // Конец, "HH:MM"
	Guests     int
	Message    *string
}
