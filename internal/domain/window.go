package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ChefReservationService/pkg/types"
)

// ReservationKind тип резервации
type ReservationKind string

const (
	ReservationKindBooking     ReservationKind = "booking"
	ReservationKindAppointment ReservationKind = "appointment"
)

// TimeWindow полуоткрытый интервал [Start, End) в пределах одной даты
type TimeWindow struct {
	Date  time.Time
	Start types.TimeString
	End   types.TimeString
}

// Validate проверяет формат времени и Start < End
func (w TimeWindow) Validate() error {
	if w.Date.IsZero() {
		return fmt.Errorf("date is required")
	}
	if err := w.Start.Validate(); err != nil {
		return err
	}
	if err := w.End.Validate(); err != nil {
		return err
	}
	if !w.Start.IsBefore(w.End) {
		return fmt.Errorf("start %s must be before end %s", w.Start, w.End)
	}
	return nil
}

// Overlaps проверяет пересечение полуоткрытых интервалов одной даты.
// Окна, которые только касаются границами (14:00-16:00 и 16:00-18:00), не пересекаются.
func (w TimeWindow) Overlaps(other TimeWindow) bool {
	if !SameDay(w.Date, other.Date) {
		return false
	}
	return other.Start.IsBefore(w.End) && w.Start.IsBefore(other.End)
}

// DurationMinutes длительность окна
func (w TimeWindow) DurationMinutes() int {
	start, errStart := w.Start.Minutes()
	end, errEnd := w.End.Minutes()
	if errStart != nil || errEnd != nil {
		return 0
	}
	return end - start
}

// ReservationRef ссылка на существующую резервацию шефа (бронирование или визит)
type ReservationRef struct {
	Kind   ReservationKind
	ID     int64
	Window TimeWindow
	Status string
}
