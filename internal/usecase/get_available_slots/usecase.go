package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ChefReservationService/internal/domain"
	locationRepo "github.com/m04kA/SMC-ChefReservationService/internal/infra/storage/location"
)

// UseCase use case для получения свободных интервалов площадки шефа
type UseCase struct {
	locationRepo LocationRepository
	scheduleRepo ScheduleRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	locationRepo LocationRepository,
	scheduleRepo ScheduleRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		locationRepo: locationRepo,
		scheduleRepo: scheduleRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute возвращает объявленные слоты площадки за вычетом занятых окон шефа.
// Занятость учитывает резервации обоих видов, в том числе выездные бронирования шефа.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: location=%d, date=%s", req.LocationID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if req.LocationID <= 0 {
		return nil, fmt.Errorf("%w: locationID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()
	date := domain.DateOnly(req.Date)
	if isDateInPast(date, now) {
		uc.logger.Warn("GetAvailableSlots: date %s is in the past", date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	// 3. Получаем площадку
	location, err := uc.locationRepo.GetByID(ctx, req.LocationID)
	if err != nil {
		if errors.Is(err, locationRepo.ErrLocationNotFound) {
			uc.logger.Warn("GetAvailableSlots: location id=%d not found", req.LocationID)
			return nil, ErrLocationNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get location id=%d: %v", req.LocationID, err)
		return nil, fmt.Errorf("%w: failed to get location: %v", ErrInternal, err)
	}

	resp := &Response{
		LocationID: location.ID,
		ChefID:     location.ChefID,
		Date:       date,
		Slots:      []domain.AvailableSlot{},
	}

	// 4. Дневные правила: в закрытый день слотов нет
	if !isBookableDay(location, date, now) {
		uc.logger.Info("GetAvailableSlots: location=%d does not accept appointments on %s",
			location.ID, date.Format(domain.DateFormat))
		return resp, nil
	}

	// 5. Занятые окна шефа на эту дату
	occupied, err := uc.scheduleRepo.ListActiveByChefAndDate(ctx, location.ChefID, date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get schedule for chef=%d: %v", location.ChefID, err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	// 6. Вычитаем занятые окна из объявленных слотов
	slots, err := freeSlots(location.Availability.TimeSlots, occupied, currentMinute(date, now))
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to compute free slots: %v", err)
		return nil, fmt.Errorf("%w: failed to compute free slots: %v", ErrInternal, err)
	}
	resp.Slots = slots

	uc.logger.Info("GetAvailableSlots: %d free intervals for location=%d on %s",
		len(slots), location.ID, date.Format(domain.DateFormat))

	return resp, nil
}
