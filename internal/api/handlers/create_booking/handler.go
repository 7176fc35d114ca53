package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ChefReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ChefReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-ChefReservationService/internal/service/bookings/models"
	createBooking "github.com/m04kA/SMC-ChefReservationService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты мероприятия, ожидается YYYY-MM-DD"
	msgInvalidTime        = "некорректный формат времени начала, ожидается HH:MM"
	msgMissingUser        = "отсутствует пользователь"
	msgChefNotFound       = "шеф не найден"
	msgChefInactive       = "шеф не принимает бронирования"
	msgMenuNotFound       = "меню не найдено"
	msgServiceNotOffered  = "шеф не оказывает эту услугу"
	msgForbidden          = "бронировать могут только клиенты"
)

var (
	errInvalidDate = errors.New("invalid event date")
	errInvalidTime = errors.New("invalid start time")
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(actor)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		if errors.Is(err, errInvalidTime) {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	booking, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		if handlers.RespondDomainError(w, err) {
			h.logger.Warn("POST /bookings - Rejected: user_id=%d, chef_id=%d, reason=%v", actor.UserID, req.ChefID, err)
			return
		}

		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%d, error=%v", actor.UserID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, createBooking.ErrForbidden):
			h.logger.Warn("POST /bookings - Forbidden: user_id=%d, role=%s", actor.UserID, actor.Role)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, createBooking.ErrChefNotFound):
			h.logger.Warn("POST /bookings - Chef not found: chef_id=%d", req.ChefID)
			handlers.RespondNotFound(w, msgChefNotFound)

		case errors.Is(err, createBooking.ErrMenuNotFound):
			h.logger.Warn("POST /bookings - Menu not found: chef_id=%d, menu_id=%v", req.ChefID, req.MenuID)
			handlers.RespondNotFound(w, msgMenuNotFound)

		case errors.Is(err, createBooking.ErrChefInactive):
			h.logger.Warn("POST /bookings - Chef inactive: chef_id=%d", req.ChefID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, handlers.CodeValidation, msgChefInactive)

		case errors.Is(err, createBooking.ErrServiceNotOffered):
			h.logger.Warn("POST /bookings - Service not offered: chef_id=%d, service=%s", req.ChefID, req.ServiceType)
			handlers.RespondError(w, http.StatusUnprocessableEntity, handlers.CodeValidation, msgServiceNotOffered)

		case errors.Is(err, createBooking.ErrBusy):
			h.logger.Warn("POST /bookings - Busy: chef_id=%d", req.ChefID)
			handlers.RespondBusy(w)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, chef_id=%d, error=%v",
				actor.UserID, req.ChefID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, user_id=%d, chef_id=%d",
		booking.ID, actor.UserID, req.ChefID)
	handlers.RespondJSON(w, http.StatusCreated, models.FromDomainBooking(booking))
}
