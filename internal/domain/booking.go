package domain

import (
	"time"

	"github.com/m04kA/SMC-ChefReservationService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "pending"
	BookingStatusConfirmed  BookingStatus = "confirmed"
	BookingStatusInProgress BookingStatus = "in_progress"
	BookingStatusCompleted  BookingStatus = "completed"
	BookingStatusCancelled  BookingStatus = "cancelled"
	BookingStatusDisputed   BookingStatus = "disputed"
)

// ServiceType тип услуги шефа
type ServiceType string

const (
	ServiceTypeHomeDining     ServiceType = "home-dining"
	ServiceTypePrivateEvents  ServiceType = "private-events"
	ServiceTypeCookingClasses ServiceType = "cooking-classes"
	ServiceTypeCatering       ServiceType = "catering"
)

// IsValid проверяет, что тип услуги известен
func (s ServiceType) IsValid() bool {
	switch s {
	case ServiceTypeHomeDining, ServiceTypePrivateEvents, ServiceTypeCookingClasses, ServiceTypeCatering:
		return true
	}
	return false
}

// PaymentStatus состояние оплаты бронирования
type PaymentStatus string

const (
	PaymentStatusUnpaid            PaymentStatus = "unpaid"
	PaymentStatusDepositPaid       PaymentStatus = "deposit_paid"
	PaymentStatusPaid              PaymentStatus = "paid"
	PaymentStatusPartiallyRefunded PaymentStatus = "partially_refunded"
	PaymentStatusRefunded          PaymentStatus = "refunded"
)

// EventDetails параметры мероприятия
type EventDetails struct {
	Date            time.Time
	StartTime       types.TimeString
	EndTime         types.TimeString
	DurationMinutes int
	Guests          int
}

// Address адрес клиента
type Address struct {
	Address string
	City    string
	ZipCode string
}

// Payment денежная часть бронирования
type Payment struct {
	Status         PaymentStatus
	DepositAmount  float64
	CapturedAmount float64
	RefundedAmount float64
	IntentID       *string
}

// Refundable сумма, которую ещё можно вернуть
func (p Payment) Refundable() float64 {
	return p.CapturedAmount - p.RefundedAmount
}

// Booking represents a chef service booking
type Booking struct {
	ID          int64
	ClientID    int64
	ChefID      int64
	MenuID      *int64
	ServiceType ServiceType
	Event       EventDetails
	Location    Address
	TotalAmount float64
	Payment     Payment
	Status      BookingStatus

	Rating *int
	Review *string

	DisputeReason *string
	Resolution    *string
	ResolvedBy    *int64
	ResolvedAt    *time.Time

	CancellationReason *string
	CancelledAt        *time.Time

	Version   int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still occupies the chef's time
func (b *Booking) IsActive() bool {
	return b.Status != BookingStatusCancelled && b.Status != BookingStatusCompleted
}

// IsTerminal returns true if no further transitions are possible
func (b *Booking) IsTerminal() bool {
	return !b.IsActive()
}

// Window временное окно бронирования
func (b *Booking) Window() TimeWindow {
	return TimeWindow{Date: b.Event.Date, Start: b.Event.StartTime, End: b.Event.EndTime}
}

// IsClient проверяет, что пользователь - клиент этого бронирования
func (b *Booking) IsClient(userID int64) bool {
	return b.ClientID == userID
}

// CanBeReviewed returns true if the client may leave a rating
func (b *Booking) CanBeReviewed() bool {
	return b.Status == BookingStatusCompleted && b.Rating == nil
}

// ApplyRefund учитывает возврат в платёжной части
func (b *Booking) ApplyRefund(amount float64) {
	if amount <= 0 {
		return
	}
	b.Payment.RefundedAmount += amount
	if b.Payment.RefundedAmount >= b.Payment.CapturedAmount {
		b.Payment.Status = PaymentStatusRefunded
	} else {
		b.Payment.Status = PaymentStatusPartiallyRefunded
	}
}

// BookingsFilter фильтр для списка бронирований
type BookingsFilter struct {
	ClientID        *int64
	ChefID          *int64
	StartDate       *time.Time
	EndDate         *time.Time
	Status          *BookingStatus
	IncludeInactive bool // включать отменённые и завершённые
}
