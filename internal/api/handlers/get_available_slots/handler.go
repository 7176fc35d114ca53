package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ChefReservationService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-ChefReservationService/internal/usecase/get_available_slots"
)

const (
	msgInvalidLocationID = "некорректный ID площадки"
	msgMissingDate       = "дата обязательна"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgDateInPast        = "дата в прошлом"
	msgLocationNotFound  = "площадка не найдена"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/chef-home/{locationId}/available-slots
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	locationID, err := handlers.PathID(r, "locationId")
	if err != nil {
		h.logger.Warn("GET /chef-home/{id}/available-slots - Invalid location ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLocationID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /chef-home/{id}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(locationID, dateStr)
	if err != nil {
		h.logger.Warn("GET /chef-home/{id}/available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrLocationNotFound):
			h.logger.Warn("GET /chef-home/{id}/available-slots - Location not found: location_id=%d", locationID)
			handlers.RespondNotFound(w, msgLocationNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /chef-home/{id}/available-slots - Date in past: location_id=%d, date=%s", locationID, dateStr)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /chef-home/{id}/available-slots - Failed to get slots: location_id=%d, error=%v", locationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /chef-home/{id}/available-slots - Slots retrieved successfully: location_id=%d, slots_count=%d",
		locationID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
