package refunds

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/m04kA/SMC-ChefReservationService/internal/domain"
)

const (
	PolicyFull   = "full"
	PolicyNotice = "notice"
)

// ErrUnknownPolicy возвращается для неизвестного имени политики
var ErrUnknownPolicy = errors.New("refunds: unknown refund policy")

// Policy сколько вернуть клиенту при отмене подтверждённого бронирования
type Policy interface {
	Amount(booking *domain.Booking, actor domain.Actor, now time.Time) float64
}

// New возвращает политику по имени из конфигурации
func New(name string) (Policy, error) {
	switch name {
	case "", PolicyFull:
		return FullRefund{}, nil
	case PolicyNotice:
		return DefaultNoticeRefund, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
	}
}

// FullRefund возвращает весь захваченный остаток
type FullRefund struct{}

func (FullRefund) Amount(booking *domain.Booking, _ domain.Actor, _ time.Time) float64 {
	return booking.Payment.Refundable()
}

// NoticeRefund процент возврата зависит от того, за сколько часов до начала отменили.
// Отмена шефом всегда возвращает 100%.
type NoticeRefund struct {
	FullNotice     time.Duration
	PartialNotice  time.Duration
	PartialPercent float64
}

// DefaultNoticeRefund 100% за 48 часов, 50% за 24 часа, иначе 0
var DefaultNoticeRefund = NoticeRefund{
	FullNotice:     48 * time.Hour,
	PartialNotice:  24 * time.Hour,
	PartialPercent: 50,
}

func (p NoticeRefund) Amount(booking *domain.Booking, actor domain.Actor, now time.Time) float64 {
	refundable := booking.Payment.Refundable()
	if refundable <= 0 {
		return 0
	}
	if actor.Role == domain.RoleChef {
		return refundable
	}

	notice := EventStart(booking).Sub(now)
	switch {
	case notice >= p.FullNotice:
		return refundable
	case notice >= p.PartialNotice:
		return RoundCents(refundable * p.PartialPercent / 100)
	default:
		return 0
	}
}

// EventStart момент начала мероприятия (UTC)
func EventStart(booking *domain.Booking) time.Time {
	minutes, err := booking.Event.StartTime.Minutes()
	if err != nil {
		return domain.DateOnly(booking.Event.Date)
	}
	return domain.DateOnly(booking.Event.Date).Add(time.Duration(minutes) * time.Minute)
}

// RoundCents округляет сумму до копеек
func RoundCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}
