package transition_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ChefReservationService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-ChefReservationService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-ChefReservationService/internal/service/access"
	"github.com/m04kA/SMC-ChefReservationService/pkg/retry"
)

// UseCase use case для перехода визита по событию
type UseCase struct {
	appointmentRepo AppointmentRepository
	access          AccessChecker
	notifier        Notifier
	metrics         Metrics
	budget          retry.Budget
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	accessChecker AccessChecker,
	notifier Notifier,
	metrics Metrics,
	budget retry.Budget,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		access:          accessChecker,
		notifier:        notifier,
		metrics:         metrics,
		budget:          budget,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute применяет событие к визиту
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.ChefHomeAppointment, error) {
	uc.logger.Info("TransitionAppointment: appointment=%d, event=%s, user=%d, role=%s",
		req.AppointmentID, req.Event, req.Actor.UserID, req.Actor.Role)

	// 1. Валидация входных данных
	if req.AppointmentID <= 0 {
		return nil, fmt.Errorf("%w: appointmentID must be positive", ErrInvalidInput)
	}
	if !req.Event.IsValid() {
		uc.logger.Warn("TransitionAppointment: unknown event %q", req.Event)
		return nil, fmt.Errorf("%w: unknown event %q", ErrInvalidInput, req.Event)
	}

	now := uc.timeProvider.Now()
	var result *domain.ChefHomeAppointment

	// 2. Читаем, проверяем и записываем с повтором при конфликте версий
	err := retry.Do(ctx, uc.budget, isVersionConflict, func(ctx context.Context) error {
		appointment, err := uc.appointmentRepo.GetByID(ctx, req.AppointmentID)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				uc.logger.Warn("TransitionAppointment: appointment id=%d not found", req.AppointmentID)
				return ErrAppointmentNotFound
			}
			uc.logger.Error("TransitionAppointment: failed to get appointment id=%d: %v", req.AppointmentID, err)
			return fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
		}

		if err := uc.access.Participant(ctx, req.Actor, appointment.ClientID, appointment.ChefID); err != nil {
			if errors.Is(err, access.ErrAccessDenied) || errors.Is(err, access.ErrChefNotFound) {
				uc.logger.Warn("TransitionAppointment: user=%d has no access to appointment=%d", req.Actor.UserID, appointment.ID)
				return ErrAccessDenied
			}
			return fmt.Errorf("%w: access check: %v", ErrInternal, err)
		}

		rule, err := domain.AppointmentTransition(appointment.Status, req.Event, req.Actor.Role)
		if err != nil {
			uc.logger.Warn("TransitionAppointment: appointment=%d: %v", appointment.ID, err)
			return err
		}

		appointment.Status = rule.To
		if err := uc.appointmentRepo.UpdateStatus(ctx, appointment); err != nil {
			if errors.Is(err, appointmentRepo.ErrVersionConflict) {
				uc.logger.Warn("TransitionAppointment: appointment=%d changed concurrently, retrying", appointment.ID)
				return err
			}
			uc.logger.Error("TransitionAppointment: failed to update appointment=%d: %v", appointment.ID, err)
			return fmt.Errorf("%w: failed to update appointment: %v", ErrInternal, err)
		}

		result = appointment
		return nil
	})

	if err != nil {
		if errors.Is(err, retry.ErrExhausted) {
			uc.logger.Warn("TransitionAppointment: appointment=%d version conflicts exhausted retries", req.AppointmentID)
			return nil, ErrBusy
		}
		return nil, err
	}

	uc.logger.Info("TransitionAppointment: appointment=%d is now %s", result.ID, result.Status)

	if uc.metrics != nil {
		uc.metrics.RecordTransition(string(domain.ReservationKindAppointment), string(req.Event), string(result.Status))
	}
	uc.notifier.Notify(ctx, domain.NewAppointmentEvent(result, string(req.Event), now))

	return result, nil
}

func isVersionConflict(err error) bool {
	return errors.Is(err, appointmentRepo.ErrVersionConflict)
}
