package access

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ChefReservationService/internal/domain"
	"github.com/m04kA/SMC-ChefReservationService/internal/integrations/chefcatalog"
)

// Checker проверяет, что актор является участником резервации.
// Клиент сравнивается по clientId, шеф - по аккаунту-владельцу профиля шефа из каталога.
type Checker struct {
	catalog ChefCatalogClient
	logger  Logger
}

// NewChecker создает новый экземпляр Checker
func NewChecker(catalog ChefCatalogClient, logger Logger) *Checker {
	return &Checker{
		catalog: catalog,
		logger:  logger,
	}
}

// ChefOwner проверяет, что актор - шеф, которому принадлежит профиль chefID
func (c *Checker) ChefOwner(ctx context.Context, actor domain.Actor, chefID int64) error {
	if actor.Role != domain.RoleChef {
		return ErrAccessDenied
	}

	chef, err := c.catalog.GetChef(ctx, chefID)
	if err != nil {
		if errors.Is(err, chefcatalog.ErrChefNotFound) {
			c.logger.Warn("ChefOwner: chef id=%d not found", chefID)
			return ErrChefNotFound
		}
		c.logger.Error("ChefOwner: failed to get chef id=%d: %v", chefID, err)
		return fmt.Errorf("%w: ChefOwner - failed to get chef: %v", ErrInternal, err)
	}

	if !chef.OwnedBy(actor.UserID) {
		c.logger.Warn("ChefOwner: user=%d does not own chef=%d", actor.UserID, chefID)
		return ErrAccessDenied
	}
	return nil
}

// Participant проверяет, что актор - клиент или шеф резервации.
// Системный актор и администратор допускаются всегда, роль для них проверяет таблица переходов.
func (c *Checker) Participant(ctx context.Context, actor domain.Actor, clientID, chefID int64) error {
	switch {
	case actor.Role == domain.RoleAdmin || actor.Role == domain.RoleSystem:
		return nil
	case actor.Role.IsClientLike():
		if actor.UserID != clientID {
			c.logger.Warn("Participant: user=%d is not the client of reservation (client=%d)", actor.UserID, clientID)
			return ErrAccessDenied
		}
		return nil
	case actor.Role == domain.RoleChef:
		return c.ChefOwner(ctx, actor, chefID)
	default:
		return ErrAccessDenied
	}
}
