package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-ChefReservationService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-ChefReservationService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date       string          `json:"date"`
	LocationID int64           `json:"locationId"`
	ChefID     int64           `json:"chefId"`
	Slots      []AvailableSlot `json:"slots"`
}

// AvailableSlot свободный интервал
type AvailableSlot struct {
	Start string `json:"start"` // "19:00"
	End   string `json:"end"`   // "21:30"
}

// ToUseCaseRequest создает запрос к use case с парсингом даты
func ToUseCaseRequest(locationID int64, dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		LocationID: locationID,
		Date:       date,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, AvailableSlot{
			Start: s.Start.String(),
			End:   s.End.String(),
		})
	}

	return &AvailableSlotsResponse{
		Date:       resp.Date.Format(domain.DateFormat),
		LocationID: resp.LocationID,
		ChefID:     resp.ChefID,
		Slots:      slots,
	}
}
