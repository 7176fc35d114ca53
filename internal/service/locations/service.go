package locations

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ChefReservationService/internal/domain"
	locationRepo "github.com/m04kA/SMC-ChefReservationService/internal/infra/storage/location"
	"github.com/m04kA/SMC-ChefReservationService/internal/service/access"
	"github.com/m04kA/SMC-ChefReservationService/internal/service/locations/models"
)

// Service сервис площадок шефа (chef-home)
type Service struct {
	repo          LocationRepository
	accessChecker AccessChecker
	logger        Logger
}

// NewService создает новый экземпляр сервиса площадок
func NewService(repo LocationRepository, accessChecker AccessChecker, logger Logger) *Service {
	return &Service{
		repo:          repo,
		accessChecker: accessChecker,
		logger:        logger,
	}
}

// Create создает площадку шефа
// Доступно только шефу-владельцу профиля
func (s *Service) Create(ctx context.Context, actor domain.Actor, chefID int64, req *models.LocationRequest) (*models.LocationResponse, error) {
	s.logger.Info("Create: creating location for chef=%d by user=%d", chefID, actor.UserID)

	// 1. Валидируем входные данные
	loc, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("Create: invalid location for chef=%d: %v", chefID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 2. Проверяем права доступа
	if err := s.accessChecker.ChefOwner(ctx, actor, chefID); err != nil {
		s.logger.Warn("Create: access check failed for user=%d, chef=%d: %v", actor.UserID, chefID, err)
		return nil, mapAccessError(err)
	}

	// 3. Сохраняем
	loc.ChefID = chefID
	loc.IsActive = true
	created, err := s.repo.Create(ctx, loc)
	if err != nil {
		s.logger.Error("Create: repository error for chef=%d: %v", chefID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created location id=%d for chef=%d", created.ID, chefID)
	return models.FromDomainLocation(created), nil
}

// Update полностью заменяет параметры площадки
func (s *Service) Update(ctx context.Context, actor domain.Actor, locationID int64, req *models.LocationRequest) (*models.LocationResponse, error) {
	s.logger.Info("Update: updating location id=%d by user=%d", locationID, actor.UserID)

	next, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("Update: invalid location id=%d: %v", locationID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	current, err := s.getOwned(ctx, "Update", actor, locationID)
	if err != nil {
		return nil, err
	}

	// Владелец, статус и даты не меняются через Update
	next.ID = current.ID
	next.ChefID = current.ChefID
	next.IsActive = current.IsActive
	next.CreatedAt = current.CreatedAt

	if err := s.repo.Update(ctx, next); err != nil {
		return nil, s.mapRepoError("Update", locationID, err)
	}

	s.logger.Info("Update: successfully updated location id=%d", locationID)
	return models.FromDomainLocation(next), nil
}

// Deactivate мягко удаляет площадку: новые визиты не принимаются, существующие остаются
func (s *Service) Deactivate(ctx context.Context, actor domain.Actor, locationID int64) error {
	s.logger.Info("Deactivate: deactivating location id=%d by user=%d", locationID, actor.UserID)

	loc, err := s.getOwned(ctx, "Deactivate", actor, locationID)
	if err != nil {
		return err
	}

	if !loc.IsActive {
		s.logger.Info("Deactivate: location id=%d already inactive", locationID)
		return nil
	}

	loc.IsActive = false
	if err := s.repo.Update(ctx, loc); err != nil {
		return s.mapRepoError("Deactivate", locationID, err)
	}

	s.logger.Info("Deactivate: location id=%d deactivated", locationID)
	return nil
}

// Get получает площадку по ID
// Публичный метод - доступен всем
func (s *Service) Get(ctx context.Context, locationID int64) (*models.LocationResponse, error) {
	s.logger.Info("Get: fetching location id=%d", locationID)

	loc, err := s.repo.GetByID(ctx, locationID)
	if err != nil {
		return nil, s.mapRepoError("Get", locationID, err)
	}
	return models.FromDomainLocation(loc), nil
}

// ListByChef площадки шефа
// Владелец и администратор видят и неактивные площадки, остальные - только активные
func (s *Service) ListByChef(ctx context.Context, actor domain.Actor, chefID int64) (*models.LocationListResponse, error) {
	s.logger.Info("ListByChef: fetching locations for chef=%d by user=%d", chefID, actor.UserID)

	locations, err := s.repo.ListByChef(ctx, chefID)
	if err != nil {
		s.logger.Error("ListByChef: repository error for chef=%d: %v", chefID, err)
		return nil, fmt.Errorf("%w: ListByChef - repository error: %v", ErrInternal, err)
	}

	if !s.seesInactive(ctx, actor, chefID) {
		active := make([]*domain.ChefHomeLocation, 0, len(locations))
		for _, loc := range locations {
			if loc.IsActive {
				active = append(active, loc)
			}
		}
		locations = active
	}

	s.logger.Info("ListByChef: successfully fetched %d locations for chef=%d", len(locations), chefID)
	return models.FromDomainLocationList(locations), nil
}

// Вспомогательные методы

func (s *Service) getOwned(ctx context.Context, op string, actor domain.Actor, locationID int64) (*domain.ChefHomeLocation, error) {
	loc, err := s.repo.GetByID(ctx, locationID)
	if err != nil {
		return nil, s.mapRepoError(op, locationID, err)
	}

	if err := s.accessChecker.ChefOwner(ctx, actor, loc.ChefID); err != nil {
		s.logger.Warn("%s: access check failed for user=%d, location id=%d: %v", op, actor.UserID, locationID, err)
		return nil, mapAccessError(err)
	}
	return loc, nil
}

func (s *Service) seesInactive(ctx context.Context, actor domain.Actor, chefID int64) bool {
	switch actor.Role {
	case domain.RoleAdmin:
		return true
	case domain.RoleChef:
		return s.accessChecker.ChefOwner(ctx, actor, chefID) == nil
	}
	return false
}

func (s *Service) mapRepoError(op string, locationID int64, err error) error {
	if errors.Is(err, locationRepo.ErrLocationNotFound) {
		s.logger.Warn("%s: location id=%d not found", op, locationID)
		return ErrLocationNotFound
	}
	s.logger.Error("%s: repository error for location id=%d: %v", op, locationID, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
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
