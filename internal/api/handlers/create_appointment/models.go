package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-ChefReservationService/internal/domain"
	createAppointment "github.com/m04kA/SMC-ChefReservationService/internal/usecase/create_appointment"
	"github.com/m04kA/SMC-ChefReservationService/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	Date      string  `json:"date"`      // "2025-10-15"
	StartTime string  `json:"startTime"` // "19:00"
	EndTime   string  `json:"endTime"`   // "21:00"
	Guests    int     `json:"guests"`
	Message   *string `json:"message,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest(actor domain.Actor, locationID int64) (*createAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}
	start, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		Actor:      actor,
		LocationID: locationID,
		Date:       date,
		StartTime:  start,
		EndTime:    end,
		Guests:     r.Guests,
		Message:    r.Message,
	}, nil
}
