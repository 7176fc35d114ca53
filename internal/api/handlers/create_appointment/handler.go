package create_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ChefReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ChefReservationService/internal/api/middleware"
	createAppointment "github.com/m04kA/SMC-ChefReservationService/internal/usecase/create_appointment"
)

const (
	msgInvalidLocationID  = "некорректный ID площадки"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateTime    = "некорректная дата или время, ожидается YYYY-MM-DD и HH:MM"
	msgMissingUser        = "отсутствует пользователь"
	msgLocationNotFound   = "площадка не найдена"
	msgForbidden          = "записаться могут только клиенты"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/chef-home/{locationId}/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	locationID, err := handlers.PathID(r, "locationId")
	if err != nil {
		h.logger.Warn("POST /chef-home/{id}/appointments - Invalid location ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLocationID)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /chef-home/{id}/appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(actor, locationID)
	if err != nil {
		h.logger.Warn("POST /chef-home/{id}/appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	appointment, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		if handlers.RespondDomainError(w, err) {
			h.logger.Warn("POST /chef-home/{id}/appointments - Rejected: location_id=%d, reason=%v", locationID, err)
			return
		}

		switch {
		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /chef-home/{id}/appointments - Invalid input: location_id=%d, error=%v", locationID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, createAppointment.ErrForbidden):
			h.logger.Warn("POST /chef-home/{id}/appointments - Forbidden: user_id=%d, role=%s", actor.UserID, actor.Role)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, createAppointment.ErrLocationNotFound):
			h.logger.Warn("POST /chef-home/{id}/appointments - Location not found: location_id=%d", locationID)
			handlers.RespondNotFound(w, msgLocationNotFound)

		case errors.Is(err, createAppointment.ErrBusy):
			h.logger.Warn("POST /chef-home/{id}/appointments - Busy: location_id=%d", locationID)
			handlers.RespondBusy(w)

		default:
			h.logger.Error("POST /chef-home/{id}/appointments - Failed to create appointment: location_id=%d, error=%v", locationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /chef-home/{id}/appointments - Appointment created: appointment_id=%d, location_id=%d, user_id=%d",
		appointment.ID, locationID, actor.UserID)
	handlers.RespondJSON(w, http.StatusCreated, handlers.FromDomainAppointment(appointment))
}
