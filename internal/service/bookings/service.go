package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ChefReservationService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ChefReservationService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-ChefReservationService/internal/service/access"
	"github.com/m04kA/SMC-ChefReservationService/internal/service/bookings/models"
)

// Service сервис чтения бронирований и отзывов
type Service struct {
	bookingRepo   BookingRepository
	accessChecker AccessChecker
	logger        Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	accessChecker AccessChecker,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:   bookingRepo,
		accessChecker: accessChecker,
		logger:        logger,
	}
}

// GetByID получает бронирование по ID
// Доступно клиенту бронирования, шефу-владельцу и администратору
func (s *Service) GetByID(ctx context.Context, actor domain.Actor, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d role=%s", id, actor.UserID, actor.Role)

	booking, err := s.getBooking(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	if err := s.accessChecker.Participant(ctx, actor, booking.ClientID, booking.ChefID); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", actor.UserID, id)
		return nil, s.mapAccessError("GetByID", err)
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// ListClientBookings бронирования текущего клиента
func (s *Service) ListClientBookings(ctx context.Context, actor domain.Actor, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("ListClientBookings: fetching bookings for user=%d", actor.UserID)

	if !actor.Role.IsClientLike() {
		s.logger.Warn("ListClientBookings: role=%s is not a client", actor.Role)
		return nil, ErrAccessDenied
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("ListClientBookings: invalid filter for user=%d: %v", actor.UserID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	filter.ClientID = &actor.UserID

	return s.list(ctx, "ListClientBookings", filter)
}

// ListChefBookings бронирования шефа, доступно только владельцу профиля
func (s *Service) ListChefBookings(ctx context.Context, actor domain.Actor, chefID int64, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("ListChefBookings: fetching bookings for chef=%d by user=%d", chefID, actor.UserID)

	if actor.Role != domain.RoleAdmin {
		if err := s.accessChecker.ChefOwner(ctx, actor, chefID); err != nil {
			s.logger.Warn("ListChefBookings: access denied for user=%d to chef=%d", actor.UserID, chefID)
			return nil, s.mapAccessError("ListChefBookings", err)
		}
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("ListChefBookings: invalid filter for chef=%d: %v", chefID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	filter.ChefID = &chefID

	return s.list(ctx, "ListChefBookings", filter)
}

// ListDisputes открытые споры, только для администратора
func (s *Service) ListDisputes(ctx context.Context, actor domain.Actor) (*models.BookingListResponse, error) {
	s.logger.Info("ListDisputes: fetching disputes by user=%d", actor.UserID)

	if actor.Role != domain.RoleAdmin {
		s.logger.Warn("ListDisputes: role=%s is not admin", actor.Role)
		return nil, ErrAccessDenied
	}

	status := domain.BookingStatusDisputed
	return s.list(ctx, "ListDisputes", domain.BookingsFilter{Status: &status})
}

// AddReview оставляет оценку и отзыв по завершённому бронированию. Отзыв можно оставить один раз
func (s *Service) AddReview(ctx context.Context, actor domain.Actor, bookingID int64, req *models.AddReviewRequest) (*models.BookingResponse, error) {
	s.logger.Info("AddReview: booking id=%d by user=%d, rating=%d", bookingID, actor.UserID, req.Rating)

	review, err := req.Validate()
	if err != nil {
		s.logger.Warn("AddReview: invalid review for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	booking, err := s.getBooking(ctx, "AddReview", bookingID)
	if err != nil {
		return nil, err
	}

	if !actor.Role.IsClientLike() || !booking.IsClient(actor.UserID) {
		s.logger.Warn("AddReview: user=%d is not the client of booking id=%d", actor.UserID, bookingID)
		return nil, ErrAccessDenied
	}

	if !booking.CanBeReviewed() {
		s.logger.Warn("AddReview: booking id=%d cannot be reviewed, status=%s", bookingID, booking.Status)
		return nil, ErrCannotReview
	}

	rating := req.Rating
	booking.Rating = &rating
	booking.Review = trimmed(review)

	// Отзыв пишется через CAS по версии: параллельный второй отзыв получит конфликт
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		if errors.Is(err, bookingRepo.ErrVersionConflict) {
			s.logger.Warn("AddReview: booking id=%d modified concurrently", bookingID)
			return nil, ErrBusy
		}
		s.logger.Error("AddReview: failed to update booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: AddReview - update booking: %v", ErrInternal, err)
	}

	s.logger.Info("AddReview: booking id=%d reviewed", bookingID)
	return models.FromDomainBooking(booking), nil
}

// Вспомогательные методы

func (s *Service) getBooking(ctx context.Context, op string, id int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return booking, nil
}

func (s *Service) list(ctx context.Context, op string, filter domain.BookingsFilter) (*models.BookingListResponse, error) {
	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("%s: repository error: %v", op, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	s.logger.Info("%s: successfully fetched %d bookings", op, len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

func (s *Service) mapAccessError(op string, err error) error {
	switch {
	case errors.Is(err, access.ErrAccessDenied):
		return ErrAccessDenied
	case errors.Is(err, access.ErrChefNotFound):
		return ErrChefNotFound
	default:
		return fmt.Errorf("%w: %s - access check: %v", ErrInternal, op, err)
	}
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
