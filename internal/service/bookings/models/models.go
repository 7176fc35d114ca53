package models

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/m04kA/SMC-ChefReservationService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// ListBookingsRequest фильтр списка бронирований
type ListBookingsRequest struct {
	StartDate       *time.Time `json:"startDate,omitempty"`       // Начало периода (опционально)
	EndDate         *time.Time `json:"endDate,omitempty"`         // Конец периода (опционально)
	Status          *string    `json:"status,omitempty"`          // Фильтр по статусу (опционально)
	IncludeInactive bool       `json:"includeInactive,omitempty"` // Включить отменённые и завершённые
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	if r == nil {
		return domain.BookingsFilter{}, nil
	}

	filter := domain.BookingsFilter{
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}

	if r.StartDate != nil && r.EndDate != nil && r.EndDate.Before(*r.StartDate) {
		return filter, fmt.Errorf("endDate must not be before startDate")
	}

	// Конвертируем статус если указан
	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// AddReviewRequest оценка и текст отзыва
type AddReviewRequest struct {
	Rating int     `json:"rating"`
	Review *string `json:"review,omitempty"`
}

// Validate проверяет оценку и длину отзыва, возвращает нормализованный текст
func (r *AddReviewRequest) Validate() (*string, error) {
	if r.Rating < domain.MinRating || r.Rating > domain.MaxRating {
		return nil, fmt.Errorf("rating must be between %d and %d", domain.MinRating, domain.MaxRating)
	}
	if r.Review == nil {
		return nil, nil
	}
	if utf8.RuneCountInString(*r.Review) > domain.MaxReviewLength {
		return nil, fmt.Errorf("review must not exceed %d characters", domain.MaxReviewLength)
	}
	review := *r.Review
	return &review, nil
}

// Response модели

// PaymentResponse денежная часть бронирования
type PaymentResponse struct {
	Status         string  `json:"status"`
	DepositAmount  float64 `json:"depositAmount"`
	CapturedAmount float64 `json:"capturedAmount"`
	RefundedAmount float64 `json:"refundedAmount"`
	IntentID       *string `json:"intentId,omitempty"`
}

// LocationResponse адрес мероприятия
type LocationResponse struct {
	Address string `json:"address"`
	City    string `json:"city"`
	ZipCode string `json:"zipCode"`
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID              int64            `json:"id"`
	ClientID        int64            `json:"clientId"`
	ChefID          int64            `json:"chefId"`
	MenuID          *int64           `json:"menuId,omitempty"`
	ServiceType     string           `json:"serviceType"`
	EventDate       string           `json:"eventDate"` // "2025-10-15"
	StartTime       string           `json:"startTime"` // "19:00"
	EndTime         string           `json:"endTime"`
	DurationMinutes int              `json:"durationMinutes"`
	Guests          int              `json:"guests"`
	Location        LocationResponse `json:"location"`
	TotalAmount     float64          `json:"totalAmount"`
	Payment         PaymentResponse  `json:"payment"`
	Status          string           `json:"status"`

	Rating *int    `json:"rating,omitempty"`
	Review *string `json:"review,omitempty"`

	DisputeReason *string `json:"disputeReason,omitempty"`
	Resolution    *string `json:"resolution,omitempty"`
	ResolvedBy    *int64  `json:"resolvedBy,omitempty"`
	ResolvedAt    *string `json:"resolvedAt,omitempty"` // ISO 8601 format

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	Version   int       `json:"version"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:              b.ID,
		ClientID:        b.ClientID,
		ChefID:          b.ChefID,
		MenuID:          b.MenuID,
		ServiceType:     string(b.ServiceType),
		EventDate:       b.Event.Date.Format(domain.DateFormat),
		StartTime:       b.Event.StartTime.String(),
		EndTime:         b.Event.EndTime.String(),
		DurationMinutes: b.Event.DurationMinutes,
		Guests:          b.Event.Guests,
		Location: LocationResponse{
			Address: b.Location.Address,
			City:    b.Location.City,
			ZipCode: b.Location.ZipCode,
		},
		TotalAmount: b.TotalAmount,
		Payment: PaymentResponse{
			Status:         string(b.Payment.Status),
			DepositAmount:  b.Payment.DepositAmount,
			CapturedAmount: b.Payment.CapturedAmount,
			RefundedAmount: b.Payment.RefundedAmount,
			IntentID:       b.Payment.IntentID,
		},
		Status:             string(b.Status),
		Rating:             b.Rating,
		Review:             b.Review,
		DisputeReason:      b.DisputeReason,
		Resolution:         b.Resolution,
		ResolvedBy:         b.ResolvedBy,
		CancellationReason: b.CancellationReason,
		Version:            b.Version,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	resp.ResolvedAt = formatTime(b.ResolvedAt)
	resp.CancelledAt = formatTime(b.CancelledAt)

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)

	validStatuses := []domain.BookingStatus{
		domain.BookingStatusPending,
		domain.BookingStatusConfirmed,
		domain.BookingStatusInProgress,
		domain.BookingStatusCompleted,
		domain.BookingStatusCancelled,
		domain.BookingStatusDisputed,
	}

	for _, valid := range validStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}

// formatTime конвертирует время в строку ISO 8601
func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
