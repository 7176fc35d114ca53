package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTransition пара (статус, событие) отсутствует в таблице переходов
	ErrInvalidTransition = errors.New("invalid transition")

	// ErrForbiddenActor переход существует, но роль актора не может его выполнить
	ErrForbiddenActor = errors.New("actor is not allowed to perform this transition")
)

// TransitionError отказ в переходе из статуса From по событию Event
type TransitionError struct {
	Kind  ReservationKind
	From  string
	Event string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("invalid %s transition: %s -> %s", e.Kind, e.From, e.Event)
}

// Is позволяет сравнивать через errors.Is(err, ErrInvalidTransition)
func (e *TransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}

// BookingEvent событие жизненного цикла бронирования
type BookingEvent string

const (
	BookingEventAccept   BookingEvent = "accept"
	BookingEventReject   BookingEvent = "reject"
	BookingEventCancel   BookingEvent = "cancel"
	BookingEventStart    BookingEvent = "start"
	BookingEventComplete BookingEvent = "complete"
	BookingEventDispute  BookingEvent = "dispute"
	BookingEventResolve  BookingEvent = "resolve"
)

// BookingRule строка таблицы переходов бронирования.
// Для resolve To пустой: итоговый статус зависит от суммы возврата.
type BookingRule struct {
	From  BookingStatus
	Event BookingEvent
	Roles []Role
	To    BookingStatus
}

type bookingKey struct {
	from  BookingStatus
	event BookingEvent
}

var bookingRules = map[bookingKey]BookingRule{}

func init() {
	for _, r := range []BookingRule{
		{From: BookingStatusPending, Event: BookingEventAccept, Roles: []Role{RoleChef}, To: BookingStatusConfirmed},
		{From: BookingStatusPending, Event: BookingEventReject, Roles: []Role{RoleChef}, To: BookingStatusCancelled},
		{From: BookingStatusPending, Event: BookingEventCancel, Roles: []Role{RoleClient, RoleChef}, To: BookingStatusCancelled},
		{From: BookingStatusConfirmed, Event: BookingEventStart, Roles: []Role{RoleChef, RoleSystem}, To: BookingStatusInProgress},
		{From: BookingStatusConfirmed, Event: BookingEventCancel, Roles: []Role{RoleClient, RoleChef}, To: BookingStatusCancelled},
		{From: BookingStatusInProgress, Event: BookingEventComplete, Roles: []Role{RoleChef}, To: BookingStatusCompleted},
		{From: BookingStatusConfirmed, Event: BookingEventDispute, Roles: []Role{RoleClient, RoleChef}, To: BookingStatusDisputed},
		{From: BookingStatusInProgress, Event: BookingEventDispute, Roles: []Role{RoleClient, RoleChef}, To: BookingStatusDisputed},
		{From: BookingStatusDisputed, Event: BookingEventResolve, Roles: []Role{RoleAdmin}},
	} {
		bookingRules[bookingKey{r.From, r.Event}] = r
	}
	for _, r := range []AppointmentRule{
		{From: AppointmentStatusPending, Event: AppointmentEventAccept, Roles: []Role{RoleChef}, To: AppointmentStatusAccepted},
		{From: AppointmentStatusPending, Event: AppointmentEventDecline, Roles: []Role{RoleChef}, To: AppointmentStatusDeclined},
		{From: AppointmentStatusPending, Event: AppointmentEventCancel, Roles: []Role{RoleClient, RoleChef}, To: AppointmentStatusCancelled},
		{From: AppointmentStatusAccepted, Event: AppointmentEventCancel, Roles: []Role{RoleClient, RoleChef}, To: AppointmentStatusCancelled},
	} {
		appointmentRules[appointmentKey{r.From, r.Event}] = r
	}
}

// BookingStatuses все статусы бронирования
func BookingStatuses() []BookingStatus {
	return []BookingStatus{
		BookingStatusPending,
		BookingStatusConfirmed,
		BookingStatusInProgress,
		BookingStatusCompleted,
		BookingStatusCancelled,
		BookingStatusDisputed,
	}
}

// BookingEvents все события бронирования
func BookingEvents() []BookingEvent {
	return []BookingEvent{
		BookingEventAccept,
		BookingEventReject,
		BookingEventCancel,
		BookingEventStart,
		BookingEventComplete,
		BookingEventDispute,
		BookingEventResolve,
	}
}

// IsValid проверяет, что событие известно
func (e BookingEvent) IsValid() bool {
	for _, known := range BookingEvents() {
		if e == known {
			return true
		}
	}
	return false
}

// IsValid проверяет, что статус известен
func (s BookingStatus) IsValid() bool {
	for _, known := range BookingStatuses() {
		if s == known {
			return true
		}
	}
	return false
}

// BookingTransition ищет правило перехода и проверяет роль.
// Несуществующая пара возвращает *TransitionError, неподходящая роль - ErrForbiddenActor.
func BookingTransition(from BookingStatus, event BookingEvent, role Role) (BookingRule, error) {
	rule, ok := bookingRules[bookingKey{from, event}]
	if !ok {
		return BookingRule{}, &TransitionError{Kind: ReservationKindBooking, From: string(from), Event: string(event)}
	}
	if !hasRole(rule.Roles, role) {
		return BookingRule{}, fmt.Errorf("%w: role %q cannot %s a %s booking", ErrForbiddenActor, role, event, from)
	}
	return rule, nil
}

// ResolveBookingTarget итоговый статус спора: возврат отменяет бронирование,
// решение в пользу шефа завершает его
func ResolveBookingTarget(refundAmount float64) BookingStatus {
	if refundAmount > 0 {
		return BookingStatusCancelled
	}
	return BookingStatusCompleted
}

// AppointmentEvent событие жизненного цикла визита
type AppointmentEvent string

const (
	AppointmentEventAccept  AppointmentEvent = "accept"
	AppointmentEventDecline AppointmentEvent = "decline"
	AppointmentEventCancel  AppointmentEvent = "cancel"
)

// AppointmentRule строка таблицы переходов визита
type AppointmentRule struct {
	From  AppointmentStatus
	Event AppointmentEvent
	Roles []Role
	To    AppointmentStatus
}

type appointmentKey struct {
	from  AppointmentStatus
	event AppointmentEvent
}

var appointmentRules = map[appointmentKey]AppointmentRule{}

// AppointmentStatuses все статусы визита
func AppointmentStatuses() []AppointmentStatus {
	return []AppointmentStatus{
		AppointmentStatusPending,
		AppointmentStatusAccepted,
		AppointmentStatusDeclined,
		AppointmentStatusCancelled,
	}
}

// AppointmentEvents все события визита
func AppointmentEvents() []AppointmentEvent {
	return []AppointmentEvent{AppointmentEventAccept, AppointmentEventDecline, AppointmentEventCancel}
}

// IsValid проверяет, что событие известно
func (e AppointmentEvent) IsValid() bool {
	for _, known := range AppointmentEvents() {
		if e == known {
			return true
		}
	}
	return false
}

// AppointmentTransition ищет правило перехода визита и проверяет роль
func AppointmentTransition(from AppointmentStatus, event AppointmentEvent, role Role) (AppointmentRule, error) {
	rule, ok := appointmentRules[appointmentKey{from, event}]
	if !ok {
		return AppointmentRule{}, &TransitionError{Kind: ReservationKindAppointment, From: string(from), Event: string(event)}
	}
	if !hasRole(rule.Roles, role) {
		return AppointmentRule{}, fmt.Errorf("%w: role %q cannot %s a %s appointment", ErrForbiddenActor, role, event, from)
	}
	return rule, nil
}

func hasRole(allowed []Role, role Role) bool {
	role = role.normalize()
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}
