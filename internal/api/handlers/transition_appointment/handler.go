package transition_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ChefReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ChefReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-ChefReservationService/internal/domain"
	transitionAppointment "github.com/m04kA/SMC-ChefReservationService/internal/usecase/transition_appointment"
)

const (
	msgInvalidAppointmentID = "некорректный ID визита"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgMissingUser          = "отсутствует пользователь"
	msgNotFound             = "визит не найден"
	msgForbidden            = "доступ запрещен"
)

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Event string `json:"event"` // accept, decline, cancel
}

type Handler struct {
	useCase TransitionAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase TransitionAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/chef-home/appointments/{appointmentId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := handlers.PathID(r, "appointmentId")
	if err != nil {
		h.logger.Warn("PATCH /chef-home/appointments/{id}/status - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /chef-home/appointments/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	appointment, err := h.useCase.Execute(r.Context(), &transitionAppointment.Request{
		Actor:         actor,
		AppointmentID: appointmentID,
		Event:         domain.AppointmentEvent(req.Event),
	})
	if err != nil {
		if handlers.RespondDomainError(w, err) {
			h.logger.Warn("PATCH /chef-home/appointments/{id}/status - Rejected: appointment_id=%d, event=%s, reason=%v",
				appointmentID, req.Event, err)
			return
		}

		switch {
		case errors.Is(err, transitionAppointment.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, transitionAppointment.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /chef-home/appointments/{id}/status - Appointment not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, transitionAppointment.ErrAccessDenied):
			h.logger.Warn("PATCH /chef-home/appointments/{id}/status - Access denied: appointment_id=%d, user_id=%d",
				appointmentID, actor.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, transitionAppointment.ErrBusy):
			handlers.RespondBusy(w)

		default:
			h.logger.Error("PATCH /chef-home/appointments/{id}/status - Failed to update status: appointment_id=%d, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /chef-home/appointments/{id}/status - Appointment updated: appointment_id=%d, status=%s",
		appointmentID, appointment.Status)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromDomainAppointment(appointment))
}
