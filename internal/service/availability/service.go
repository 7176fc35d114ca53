package availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ChefReservationService/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-ChefReservationService/internal/infra/storage/availability"
	"github.com/m04kA/SMC-ChefReservationService/internal/service/access"
	"github.com/m04kA/SMC-ChefReservationService/internal/service/availability/models"
)

// Service сервис правил доступности шефа для выездных услуг
type Service struct {
	repo          AvailabilityRepository
	accessChecker AccessChecker
	logger        Logger
}

// NewService создает новый экземпляр сервиса доступности
func NewService(repo AvailabilityRepository, accessChecker AccessChecker, logger Logger) *Service {
	return &Service{
		repo:          repo,
		accessChecker: accessChecker,
		logger:        logger,
	}
}

// Get получает доступность шефа
// Публичный метод. Если шеф ничего не настроил, возвращаются правила по умолчанию
func (s *Service) Get(ctx context.Context, chefID int64) (*models.ChefAvailabilityResponse, error) {
	s.logger.Info("Get: fetching availability for chef=%d", chefID)

	stored, err := s.repo.GetByChefID(ctx, chefID)
	if err != nil {
		if errors.Is(err, availabilityRepo.ErrAvailabilityNotFound) {
			s.logger.Info("Get: chef=%d has no availability, using default", chefID)
			return models.FromDomainAvailability(&domain.ChefAvailability{
				ChefID:       chefID,
				Availability: domain.DefaultChefAvailability(),
			}, true), nil
		}
		s.logger.Error("Get: repository error for chef=%d: %v", chefID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAvailability(stored, false), nil
}

// Upsert создаёт или полностью заменяет доступность шефа
// Доступно только шефу-владельцу профиля
func (s *Service) Upsert(ctx context.Context, actor domain.Actor, chefID int64, req *models.AvailabilityRequest) (*models.ChefAvailabilityResponse, error) {
	s.logger.Info("Upsert: updating availability for chef=%d by user=%d", chefID, actor.UserID)

	// 1. Валидируем входные данные до обращения к каталогу и БД
	rules, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("Upsert: invalid availability for chef=%d: %v", chefID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := rules.Validate(); err != nil {
		s.logger.Warn("Upsert: invalid availability for chef=%d: %v", chefID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 2. Проверяем права доступа (только владелец профиля)
	if err := s.accessChecker.ChefOwner(ctx, actor, chefID); err != nil {
		s.logger.Warn("Upsert: access check failed for user=%d, chef=%d: %v", actor.UserID, chefID, err)
		return nil, mapAccessError(err)
	}

	// 3. Сохраняем
	saved, err := s.repo.Upsert(ctx, &domain.ChefAvailability{
		ChefID:       chefID,
		Availability: rules,
	})
	if err != nil {
		s.logger.Error("Upsert: repository error for chef=%d: %v", chefID, err)
		return nil, fmt.Errorf("%w: Upsert - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Upsert: successfully saved availability for chef=%d", chefID)
	return models.FromDomainAvailability(saved, false), nil
}

func mapAccessError(err error) error {
	switch {
	case errors.Is(err, access.ErrAccessDenied):
		return ErrAccessDenied
	case errors.Is(err, access.ErrChefNotFound):
		return ErrChefNotFound
	default:
		return fmt.Errorf("%w: access check: %v", ErrInternal, err)
	}
}
