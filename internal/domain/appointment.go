package domain

import (
	"time"
)

// AppointmentStatus статус визита к шефу
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusAccepted  AppointmentStatus = "accepted"
	AppointmentStatusDeclined  AppointmentStatus = "declined"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// ChefHomeAppointment визит клиента на площадку шефа
type ChefHomeAppointment struct {
	ID         int64
	LocationID int64
	ChefID     int64
	ClientID   int64
	Window     TimeWindow
	Guests     int
	Message    *string
	Status     AppointmentStatus
	Version    int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsActive returns true if the appointment still occupies the chef's time
func (a *ChefHomeAppointment) IsActive() bool {
	return a.Status != AppointmentStatusDeclined && a.Status != AppointmentStatusCancelled
}
