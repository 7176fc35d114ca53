package transition_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ChefReservationService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-ChefReservationService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-ChefReservationService/internal/service/access"
	"github.com/m04kA/SMC-ChefReservationService/pkg/logger"
	"github.com/m04kA/SMC-ChefReservationService/pkg/retry"
)

type memRepo struct {
	appointment domain.ChefHomeAppointment
	conflicts   int
	updates     int
}

func (r *memRepo) GetByID(_ context.Context, id int64) (*domain.ChefHomeAppointment, error) {
	if id != r.appointment.ID {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	a := r.appointment
	return &a, nil
}

func (r *memRepo) UpdateStatus(_ context.Context, a *domain.ChefHomeAppointment) error {
	r.updates++
	if r.conflicts > 0 {
		r.conflicts--
		return appointmentRepo.ErrVersionConflict
	}
	a.Version++
	r.appointment = *a
	return nil
}

type fakeCatalog struct{}

func (fakeCatalog) GetChef(_ context.Context, id int64) (*domain.Chef, error) {
	return &domain.Chef{ID: id, UserID: 70}, nil
}

type recordingNotifier struct{ events []domain.ReservationEvent }

func (n *recordingNotifier) Notify(_ context.Context, e domain.ReservationEvent) {
	n.events = append(n.events, e)
}

func newUseCase(status domain.AppointmentStatus) (*UseCase, *memRepo, *recordingNotifier) {
	repo := &memRepo{appointment: domain.ChefHomeAppointment{
		ID: 5, LocationID: 1, ChefID: 7, ClientID: 42, Status: status, Version: 1,
		Window: domain.TimeWindow{Date: time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC), Start: "12:00", End: "14:00"},
	}}
	notifier := &recordingNotifier{}
	log := logger.NewNop()
	uc := NewUseCase(repo, access.NewChecker(fakeCatalog{}, log), notifier, nil,
		retry.Budget{MaxAttempts: 3, InitialInterval: time.Millisecond, MaxInterval: time.Millisecond}, log)
	return uc, repo, notifier
}

var (
	chef   = domain.Actor{UserID: 70, Role: domain.RoleChef}
	client = domain.Actor{UserID: 42, Role: domain.RoleClient}
)

func TestExecute_Transitions(t *testing.T) {
	tests := []struct {
		name    string
		from    domain.AppointmentStatus
		actor   domain.Actor
		event   domain.AppointmentEvent
		want    domain.AppointmentStatus
		wantErr error
	}{
		{name: "chef accepts", from: domain.AppointmentStatusPending, actor: chef, event: domain.AppointmentEventAccept, want: domain.AppointmentStatusAccepted},
		{name: "chef declines", from: domain.AppointmentStatusPending, actor: chef, event: domain.AppointmentEventDecline, want: domain.AppointmentStatusDeclined},
		{name: "client cancels pending", from: domain.AppointmentStatusPending, actor: client, event: domain.AppointmentEventCancel, want: domain.AppointmentStatusCancelled},
		{name: "client cancels accepted", from: domain.AppointmentStatusAccepted, actor: client, event: domain.AppointmentEventCancel, want: domain.AppointmentStatusCancelled},
		{name: "client cannot accept", from: domain.AppointmentStatusPending, actor: client, event: domain.AppointmentEventAccept, wantErr: domain.ErrForbiddenActor},
		{name: "declined is final", from: domain.AppointmentStatusDeclined, actor: chef, event: domain.AppointmentEventAccept, wantErr: domain.ErrInvalidTransition},
		{name: "stranger", from: domain.AppointmentStatusPending, actor: domain.Actor{UserID: 43, Role: domain.RoleClient}, event: domain.AppointmentEventCancel, wantErr: ErrAccessDenied},
		{name: "unknown event", from: domain.AppointmentStatusPending, actor: chef, event: "confirm", wantErr: ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, repo, notifier := newUseCase(tt.from)

			a, err := uc.Execute(context.Background(), &Request{Actor: tt.actor, AppointmentID: 5, Event: tt.event})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, tt.from, repo.appointment.Status)
				assert.Empty(t, notifier.events)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a.Status)
			assert.Equal(t, 2, repo.appointment.Version)
			require.Len(t, notifier.events, 1)
			assert.Equal(t, domain.ReservationKindAppointment, notifier.events[0].Kind)
		})
	}
}

func TestExecute_NotFoundAndBusy(t *testing.T) {
	uc, repo, _ := newUseCase(domain.AppointmentStatusPending)

	_, err := uc.Execute(context.Background(), &Request{Actor: chef, AppointmentID: 6, Event: domain.AppointmentEventAccept})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)

	repo.conflicts = 5
	_, err = uc.Execute(context.Background(), &Request{Actor: chef, AppointmentID: 5, Event: domain.AppointmentEventAccept})
	assert.ErrorIs(t, err, ErrBusy)
	assert.Equal(t, 3, repo.updates)
}
