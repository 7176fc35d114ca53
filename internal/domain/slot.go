package domain

import (
	"time"

	"github.com/m04kA/SMC-ChefReservationService/pkg/types"
)

// AvailableSlot свободный интервал внутри объявленного слота
type AvailableSlot struct {
	Start types.TimeString
	End   types.TimeString
}

// DaySlots свободные интервалы площадки на дату
type DaySlots struct {
	LocationID int64
	Date       time.Time
	Slots      []AvailableSlot
}
