package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingTransition_ListedPairs(t *testing.T) {
	tests := []struct {
		from  BookingStatus
		event BookingEvent
		role  Role
		to    BookingStatus
	}{
		{BookingStatusPending, BookingEventAccept, RoleChef, BookingStatusConfirmed},
		{BookingStatusPending, BookingEventReject, RoleChef, BookingStatusCancelled},
		{BookingStatusPending, BookingEventCancel, RoleClient, BookingStatusCancelled},
		{BookingStatusPending, BookingEventCancel, RoleB2B, BookingStatusCancelled},
		{BookingStatusPending, BookingEventCancel, RoleChef, BookingStatusCancelled},
		{BookingStatusConfirmed, BookingEventStart, RoleSystem, BookingStatusInProgress},
		{BookingStatusConfirmed, BookingEventStart, RoleChef, BookingStatusInProgress},
		{BookingStatusConfirmed, BookingEventCancel, RoleClient, BookingStatusCancelled},
		{BookingStatusConfirmed, BookingEventDispute, RoleClient, BookingStatusDisputed},
		{BookingStatusInProgress, BookingEventComplete, RoleChef, BookingStatusCompleted},
		{BookingStatusInProgress, BookingEventDispute, RoleChef, BookingStatusDisputed},
		{BookingStatusDisputed, BookingEventResolve, RoleAdmin, ""},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"/"+string(tt.event)+"/"+string(tt.role), func(t *testing.T) {
			rule, err := BookingTransition(tt.from, tt.event, tt.role)
			require.NoError(t, err)
			assert.Equal(t, tt.to, rule.To)
		})
	}
}

func TestBookingTransition_UnlistedPairsAreInvalid(t *testing.T) {
	listed := 0
	for _, from := range BookingStatuses() {
		for _, event := range BookingEvents() {
			_, ok := bookingRules[bookingKey{from, event}]
			if ok {
				listed++
				continue
			}
			for _, role := range []Role{RoleClient, RoleChef, RoleAdmin, RoleSystem} {
				_, err := BookingTransition(from, event, role)
				assert.ErrorIs(t, err, ErrInvalidTransition, "%s/%s", from, event)

				var te *TransitionError
				require.True(t, errors.As(err, &te))
				assert.Equal(t, string(from), te.From)
				assert.Equal(t, string(event), te.Event)
			}
		}
	}
	assert.Equal(t, 9, listed)
}

func TestBookingTransition_TerminalStatuses(t *testing.T) {
	for _, from := range []BookingStatus{BookingStatusCompleted, BookingStatusCancelled} {
		for _, event := range BookingEvents() {
			_, err := BookingTransition(from, event, RoleAdmin)
			assert.ErrorIs(t, err, ErrInvalidTransition)
		}
	}
}

func TestBookingTransition_SkipStatesRejected(t *testing.T) {
	_, err := BookingTransition(BookingStatusPending, BookingEventComplete, RoleChef)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = BookingTransition(BookingStatusPending, BookingEventStart, RoleSystem)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestBookingTransition_WrongRole(t *testing.T) {
	_, err := BookingTransition(BookingStatusPending, BookingEventAccept, RoleClient)
	assert.ErrorIs(t, err, ErrForbiddenActor)
	assert.NotErrorIs(t, err, ErrInvalidTransition)

	_, err = BookingTransition(BookingStatusDisputed, BookingEventResolve, RoleChef)
	assert.ErrorIs(t, err, ErrForbiddenActor)

	_, err = BookingTransition(BookingStatusInProgress, BookingEventComplete, RoleSystem)
	assert.ErrorIs(t, err, ErrForbiddenActor)
}

func TestResolveBookingTarget(t *testing.T) {
	assert.Equal(t, BookingStatusCancelled, ResolveBookingTarget(100))
	assert.Equal(t, BookingStatusCompleted, ResolveBookingTarget(0))
}

func TestAppointmentTransition(t *testing.T) {
	rule, err := AppointmentTransition(AppointmentStatusPending, AppointmentEventAccept, RoleChef)
	require.NoError(t, err)
	assert.Equal(t, AppointmentStatusAccepted, rule.To)

	rule, err = AppointmentTransition(AppointmentStatusPending, AppointmentEventDecline, RoleChef)
	require.NoError(t, err)
	assert.Equal(t, AppointmentStatusDeclined, rule.To)

	rule, err = AppointmentTransition(AppointmentStatusAccepted, AppointmentEventCancel, RoleClient)
	require.NoError(t, err)
	assert.Equal(t, AppointmentStatusCancelled, rule.To)

	_, err = AppointmentTransition(AppointmentStatusPending, AppointmentEventDecline, RoleClient)
	assert.ErrorIs(t, err, ErrForbiddenActor)

	for _, from := range []AppointmentStatus{AppointmentStatusDeclined, AppointmentStatusCancelled} {
		for _, event := range AppointmentEvents() {
			_, err := AppointmentTransition(from, event, RoleChef)
			assert.ErrorIs(t, err, ErrInvalidTransition)
		}
	}

	_, err = AppointmentTransition(AppointmentStatusAccepted, AppointmentEventAccept, RoleChef)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}
