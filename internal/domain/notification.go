package domain

import "time"

// ReservationEvent уведомление об успешном переходе резервации
type ReservationEvent struct {
	ReservationID int64           `json:"reservationId"`
	Kind          ReservationKind `json:"kind"`
	Event         string          `json:"event"`
	Status        string          `json:"status"`
	ChefID        int64           `json:"chefId"`
	ClientID      int64           `json:"clientId"`
	OccurredAt    time.Time       `json:"occurredAt"`
}

// NewBookingEvent событие по бронированию
func NewBookingEvent(b *Booking, event string, at time.Time) ReservationEvent {
	return ReservationEvent{
		ReservationID: b.ID,
		Kind:          ReservationKindBooking,
		Event:         event,
		Status:        string(b.Status),
		ChefID:        b.ChefID,
		ClientID:      b.ClientID,
		OccurredAt:    at,
	}
}

// NewAppointmentEvent событие по визиту
func NewAppointmentEvent(a *ChefHomeAppointment, event string, at time.Time) ReservationEvent {
	return ReservationEvent{
		ReservationID: a.ID,
		Kind:          ReservationKindAppointment,
		Event:         event,
		Status:        string(a.Status),
		ChefID:        a.ChefID,
		ClientID:      a.ClientID,
		OccurredAt:    at,
	}
}
