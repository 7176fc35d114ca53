package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ChefReservationService/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-ChefReservationService/internal/infra/storage/availability"
	"github.com/m04kA/SMC-ChefReservationService/internal/integrations/chefcatalog"
	"github.com/m04kA/SMC-ChefReservationService/internal/service/capacity"
	"github.com/m04kA/SMC-ChefReservationService/pkg/retry"
	"github.com/m04kA/SMC-ChefReservationService/pkg/txmanager"
)

// Config параметры создания бронирования
type Config struct {
	DepositPercent int
	Retry          retry.Budget
}

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo      BookingRepository
	availabilityRepo AvailabilityRepository
	catalog          ChefCatalogClient
	resolver         CapacityResolver
	detector         ConflictDetector
	txManager        TransactionManager
	notifier         Notifier
	metrics          Metrics
	cfg              Config
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	availabilityRepo AvailabilityRepository,
	catalog ChefCatalogClient,
	resolver CapacityResolver,
	detector ConflictDetector,
	txManager TransactionManager,
	notifier Notifier,
	metrics Metrics,
	cfg Config,
	logger Logger,
) *UseCase {
	if cfg.DepositPercent <= 0 {
		cfg.DepositPercent = domain.DefaultDepositPercent
	}
	return &UseCase{
		bookingRepo:      bookingRepo,
		availabilityRepo: availabilityRepo,
		catalog:          catalog,
		resolver:         resolver,
		detector:         detector,
		txManager:        txManager,
		notifier:         notifier,
		metrics:          metrics,
		cfg:              cfg,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка пересечений и вставка выполняются в сериализуемой транзакции под блокировкой шефа.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.Booking, error) {
	uc.logger.Info("CreateBooking: user=%d, chef=%d, service=%s, date=%s, time=%s, duration=%d, guests=%d",
		req.Actor.UserID, req.ChefID, req.ServiceType, req.Date.Format(domain.DateFormat),
		req.StartTime, req.DurationMinutes, req.Guests)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}
	if !req.Actor.Role.IsClientLike() {
		uc.logger.Warn("CreateBooking: role %s cannot create bookings", req.Actor.Role)
		return nil, ErrForbidden
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем шефа
	chef, err := uc.catalog.GetChef(ctx, req.ChefID)
	if err != nil {
		if errors.Is(err, chefcatalog.ErrChefNotFound) {
			uc.logger.Warn("CreateBooking: chef id=%d not found", req.ChefID)
			return nil, ErrChefNotFound
		}
		uc.logger.Error("CreateBooking: failed to get chef id=%d: %v", req.ChefID, err)
		return nil, fmt.Errorf("%w: failed to get chef: %v", ErrInternal, err)
	}
	if !chef.IsActive {
		uc.logger.Warn("CreateBooking: chef id=%d is inactive", req.ChefID)
		return nil, ErrChefInactive
	}
	if !chef.OffersService(req.ServiceType) {
		uc.logger.Warn("CreateBooking: chef id=%d does not offer %s", req.ChefID, req.ServiceType)
		return nil, ErrServiceNotOffered
	}

	// 4. Получаем меню, если указано
	var menu *domain.Menu
	if req.MenuID != nil {
		menu, err = uc.catalog.GetMenu(ctx, req.ChefID, *req.MenuID)
		if err != nil {
			if errors.Is(err, chefcatalog.ErrMenuNotFound) {
				uc.logger.Warn("CreateBooking: menu id=%d not found for chef id=%d", *req.MenuID, req.ChefID)
				return nil, ErrMenuNotFound
			}
			uc.logger.Error("CreateBooking: failed to get menu id=%d: %v", *req.MenuID, err)
			return nil, fmt.Errorf("%w: failed to get menu: %v", ErrInternal, err)
		}
	}

	// 5. Вычисляем окно. Мероприятие не может переходить через полночь
	date := domain.DateOnly(req.Date)
	endTime, err := req.StartTime.AddMinutes(req.DurationMinutes)
	if err != nil {
		rej := domain.Reject(domain.CodeInvalidTimeRange, "event must end on the same day")
		uc.reject(rej)
		return nil, rej
	}
	window := domain.TimeWindow{Date: date, Start: req.StartTime, End: endTime}

	// 6. Получаем доступность шефа. Если не настроена, используем значения по умолчанию
	availability := domain.DefaultChefAvailability()
	stored, err := uc.availabilityRepo.GetByChefID(ctx, req.ChefID)
	switch {
	case err == nil:
		availability = stored.Availability
	case errors.Is(err, availabilityRepo.ErrAvailabilityNotFound):
		uc.logger.Info("CreateBooking: using default availability for chef=%d", req.ChefID)
	default:
		uc.logger.Error("CreateBooking: failed to get availability for chef=%d: %v", req.ChefID, err)
		return nil, fmt.Errorf("%w: failed to get availability: %v", ErrInternal, err)
	}

	// 7. Структурная проверка запроса (гости, lead time, слоты, blackout)
	if err := uc.resolver.ValidateServiceRequest(availability, menu, capacity.Request{Window: window, Guests: req.Guests}, now); err != nil {
		if rej, ok := domain.AsRejection(err); ok {
			uc.logger.Warn("CreateBooking: rejected: %v", rej)
			uc.reject(rej)
			return nil, rej
		}
		uc.logger.Error("CreateBooking: capacity check failed: %v", err)
		return nil, fmt.Errorf("%w: capacity check: %v", ErrInternal, err)
	}

	// 8. Считаем стоимость
	total := calculateTotal(chef, menu, req.DurationMinutes)
	booking := &domain.Booking{
		ClientID:    req.Actor.UserID,
		ChefID:      req.ChefID,
		MenuID:      req.MenuID,
		ServiceType: req.ServiceType,
		Event: domain.EventDetails{
			Date:            date,
			StartTime:       window.Start,
			EndTime:         window.End,
			DurationMinutes: req.DurationMinutes,
			Guests:          req.Guests,
		},
		Location:    req.Location,
		TotalAmount: total,
		Payment: domain.Payment{
			Status:        domain.PaymentStatusUnpaid,
			DepositAmount: calculateDeposit(total, uc.cfg.DepositPercent),
		},
		Status: domain.BookingStatusPending,
	}

	// 9. Проверка пересечений и вставка под блокировкой шефа, с повтором при конфликте сериализации
	var result *domain.Booking
	err = retry.Do(ctx, uc.cfg.Retry, txmanager.IsSerializationFailure, func(ctx context.Context) error {
		return uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
			// 9.1. Блокируем расписание шефа до конца транзакции
			if err := uc.detector.Lock(txCtx, req.ChefID); err != nil {
				return fmt.Errorf("%w: failed to lock chef schedule: %w", ErrInternal, err)
			}

			// 9.2. Ищем активные резервации, пересекающиеся с окном
			conflicts, err := uc.detector.FindConflicts(txCtx, req.ChefID, window)
			if err != nil {
				return fmt.Errorf("%w: failed to find conflicts: %w", ErrInternal, err)
			}
			if len(conflicts) > 0 {
				return domain.Reject(domain.CodeConflictDetected,
					fmt.Sprintf("chef already has a %s id=%d at %s-%s",
						conflicts[0].Kind, conflicts[0].ID, conflicts[0].Window.Start, conflicts[0].Window.End))
			}

			// 9.3. Сохраняем бронирование
			created, err := uc.bookingRepo.Create(txCtx, booking)
			if err != nil {
				return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
			}

			result = created
			return nil
		})
	})

	if err != nil {
		if rej, ok := domain.AsRejection(err); ok {
			uc.logger.Warn("CreateBooking: rejected: %v", rej)
			uc.reject(rej)
			return nil, rej
		}
		if errors.Is(err, retry.ErrExhausted) {
			uc.logger.Warn("CreateBooking: chef=%d schedule is busy: %v", req.ChefID, err)
			return nil, ErrBusy
		}
		uc.logger.Error("CreateBooking: failed to create booking: %v", err)
		if errors.Is(err, ErrInternal) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, total=%.2f", result.ID, result.TotalAmount)

	// 10. Уведомляем о новом бронировании
	if uc.metrics != nil {
		uc.metrics.RecordTransition(string(domain.ReservationKindBooking), "create", string(result.Status))
	}
	uc.notifier.Notify(ctx, domain.NewBookingEvent(result, "create", now))

	return result, nil
}

func (uc *UseCase) reject(rej *domain.RejectionError) {
	if uc.metrics != nil {
		uc.metrics.RecordRejection(string(domain.ReservationKindBooking), string(rej.Code))
	}
}
