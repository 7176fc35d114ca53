package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ChefReservationService/internal/domain"
	locationRepo "github.com/m04kA/SMC-ChefReservationService/internal/infra/storage/location"
	"github.com/m04kA/SMC-ChefReservationService/internal/service/capacity"
	"github.com/m04kA/SMC-ChefReservationService/pkg/retry"
	"github.com/m04kA/SMC-ChefReservationService/pkg/txmanager"
)

// UseCase use case для запроса визита на площадку шефа
type UseCase struct {
	appointmentRepo AppointmentRepository
	locationRepo    LocationRepository
	resolver        CapacityResolver
	detector        ConflictDetector
	txManager       TransactionManager
	notifier        Notifier
	metrics         Metrics
	budget          retry.Budget
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	locationRepo LocationRepository,
	resolver CapacityResolver,
	detector ConflictDetector,
	txManager TransactionManager,
	notifier Notifier,
	metrics Metrics,
	budget retry.Budget,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		locationRepo:    locationRepo,
		resolver:        resolver,
		detector:        detector,
		txManager:       txManager,
		notifier:        notifier,
		metrics:         metrics,
		budget:          budget,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute создает визит в статусе pending
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.ChefHomeAppointment, error) {
	uc.logger.Info("CreateAppointment: user=%d, location=%d, date=%s, time=%s-%s, guests=%d",
		req.Actor.UserID, req.LocationID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime, req.Guests)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}
	if !req.Actor.Role.IsClientLike() {
		uc.logger.Warn("CreateAppointment: role %s cannot request appointments", req.Actor.Role)
		return nil, ErrForbidden
	}

	now := uc.timeProvider.Now()

	// 2. Получаем площадку
	location, err := uc.locationRepo.GetByID(ctx, req.LocationID)
	if err != nil {
		if errors.Is(err, locationRepo.ErrLocationNotFound) {
			uc.logger.Warn("CreateAppointment: location id=%d not found", req.LocationID)
			return nil, ErrLocationNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get location id=%d: %v", req.LocationID, err)
		return nil, fmt.Errorf("%w: failed to get location: %v", ErrInternal, err)
	}

	// 3. Структурная проверка запроса
	window := domain.TimeWindow{Date: domain.DateOnly(req.Date), Start: req.StartTime, End: req.EndTime}
	if err := uc.resolver.ValidateLocationRequest(location, capacity.Request{Window: window, Guests: req.Guests}, now); err != nil {
		if rej, ok := domain.AsRejection(err); ok {
			uc.logger.Warn("CreateAppointment: rejected: %v", rej)
			uc.reject(rej)
			return nil, rej
		}
		uc.logger.Error("CreateAppointment: capacity check failed: %v", err)
		return nil, fmt.Errorf("%w: capacity check: %v", ErrInternal, err)
	}

	appointment := &domain.ChefHomeAppointment{
		LocationID: location.ID,
		ChefID:     location.ChefID,
		ClientID:   req.Actor.UserID,
		Window:     window,
		Guests:     req.Guests,
		Message:    req.Message,
		Status:     domain.AppointmentStatusPending,
	}

	// 4. Проверка пересечений и вставка под блокировкой шефа
	var result *domain.ChefHomeAppointment
	err = retry.Do(ctx, uc.budget, txmanager.IsSerializationFailure, func(ctx context.Context) error {
		return uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
			if err := uc.detector.Lock(txCtx, location.ChefID); err != nil {
				return fmt.Errorf("%w: failed to lock chef schedule: %w", ErrInternal, err)
			}

			conflicts, err := uc.detector.FindConflicts(txCtx, location.ChefID, window)
			if err != nil {
				return fmt.Errorf("%w: failed to find conflicts: %w", ErrInternal, err)
			}
			if len(conflicts) > 0 {
				return domain.Reject(domain.CodeConflictDetected,
					fmt.Sprintf("chef already has a %s id=%d at %s-%s",
						conflicts[0].Kind, conflicts[0].ID, conflicts[0].Window.Start, conflicts[0].Window.End))
			}

			created, err := uc.appointmentRepo.Create(txCtx, appointment)
			if err != nil {
				return fmt.Errorf("%w: failed to create appointment: %w", ErrInternal, err)
			}
			result = created
			return nil
		})
	})

	if err != nil {
		if rej, ok := domain.AsRejection(err); ok {
			uc.logger.Warn("CreateAppointment: rejected: %v", rej)
			uc.reject(rej)
			return nil, rej
		}
		if errors.Is(err, retry.ErrExhausted) {
			uc.logger.Warn("CreateAppointment: chef=%d schedule is busy: %v", location.ChefID, err)
			return nil, ErrBusy
		}
		uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
		if errors.Is(err, ErrInternal) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", result.ID)

	if uc.metrics != nil {
		uc.metrics.RecordTransition(string(domain.ReservationKindAppointment), "request", string(result.Status))
	}
	uc.notifier.Notify(ctx, domain.NewAppointmentEvent(result, "request", now))

	return result, nil
}

func (uc *UseCase) reject(rej *domain.RejectionError) {
	if uc.metrics != nil {
		uc.metrics.RecordRejection(string(domain.ReservationKindAppointment), string(rej.Code))
	}
}
