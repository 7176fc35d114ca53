package list_disputes

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ChefReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ChefReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-ChefReservationService/internal/service/bookings"
)

const (
	msgMissingUser = "отсутствует пользователь"
	msgForbidden   = "только для администраторов"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/disputes
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	result, err := h.service.ListDisputes(r.Context(), actor)
	if err != nil {
		if errors.Is(err, bookings.ErrAccessDenied) {
			h.logger.Warn("GET /admin/disputes - Access denied: user_id=%d, role=%s", actor.UserID, actor.Role)
			handlers.RespondForbidden(w, msgForbidden)
			return
		}
		h.logger.Error("GET /admin/disputes - Failed to list disputes: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/disputes - Disputes retrieved: count=%d", len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
