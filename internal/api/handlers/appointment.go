package handlers

import (
	"time"

	"github.com/m04kA/SMC-ChefReservationService/internal/domain"
)

// AppointmentResponse визит на площадку шефа
type AppointmentResponse struct {
	ID         int64     `json:"id"`
	LocationID int64     `json:"locationId"`
	ChefID     int64     `json:"chefId"`
	ClientID   int64     `json:"clientId"`
	Date       string    `json:"date"`
	StartTime  string    `json:"startTime"`
	EndTime    string    `json:"endTime"`
	Guests     int       `json:"guests"`
	Message    *string   `json:"message,omitempty"`
	Status     string    `json:"status"`
	Version    int       `json:"version"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.ChefHomeAppointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:         a.ID,
		LocationID: a.LocationID,
		ChefID:     a.ChefID,
		ClientID:   a.ClientID,
		Date:       a.Window.Date.Format(domain.DateFormat),
		StartTime:  a.Window.Start.String(),
		EndTime:    a.Window.End.String(),
		Guests:     a.Guests,
		Message:    a.Message,
		Status:     string(a.Status),
		Version:    a.Version,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}
