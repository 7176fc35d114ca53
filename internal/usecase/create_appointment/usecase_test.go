package create_appointment

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ChefReservationService/internal/domain"
	locationRepo "github.com/m04kA/SMC-ChefReservationService/internal/infra/storage/location"
	"github.com/m04kA/SMC-ChefReservationService/internal/service/capacity"
	"github.com/m04kA/SMC-ChefReservationService/internal/service/conflicts"
	"github.com/m04kA/SMC-ChefReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ChefReservationService/pkg/logger"
	"github.com/m04kA/SMC-ChefReservationService/pkg/retry"
	"github.com/m04kA/SMC-ChefReservationService/pkg/types"
)

var today = time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

// memSchedule визиты в памяти плюс заранее занятые окна других видов
type memSchedule struct {
	mu           sync.Mutex
	appointments []*domain.ChefHomeAppointment
	bookings     []domain.ReservationRef
}

func (s *memSchedule) Create(_ context.Context, a *domain.ChefHomeAppointment) (*domain.ChefHomeAppointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	created := *a
	created.ID = int64(len(s.appointments) + 1)
	created.Version = 1
	s.appointments = append(s.appointments, &created)
	return &created, nil
}

func (s *memSchedule) LockChef(context.Context, int64) error { return nil }

func (s *memSchedule) ListActiveByChefAndDate(_ context.Context, chefID int64, date time.Time) ([]domain.ReservationRef, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	refs := append([]domain.ReservationRef{}, s.bookings...)
	for _, a := range s.appointments {
		if a.ChefID == chefID && a.IsActive() && domain.SameDay(a.Window.Date, date) {
			refs = append(refs, domain.ReservationRef{Kind: domain.ReservationKindAppointment, ID: a.ID, Window: a.Window})
		}
	}
	return refs, nil
}

type fakeTx struct{ dbmetrics.TxExecutor }

type serialTxManager struct{ mu sync.Mutex }

func (m *serialTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(dbmetrics.WithTx(ctx, fakeTx{}))
}

type fakeLocations map[int64]*domain.ChefHomeLocation

func (f fakeLocations) GetByID(_ context.Context, id int64) (*domain.ChefHomeLocation, error) {
	loc, ok := f[id]
	if !ok {
		return nil, locationRepo.ErrLocationNotFound
	}
	return loc, nil
}

type nopNotifier struct{ events []domain.ReservationEvent }

func (n *nopNotifier) Notify(_ context.Context, e domain.ReservationEvent) { n.events = append(n.events, e) }

func location(id int64, active bool) *domain.ChefHomeLocation {
	return &domain.ChefHomeLocation{
		ID:       id,
		ChefID:   7,
		Address:  "3 quai des Orfèvres",
		City:     "Paris",
		ZipCode:  "75001",
		Capacity: domain.Capacity{MinGuests: 2, MaxGuests: 6},
		Availability: domain.Availability{
			TimeSlots:    []domain.TimeSlot{{Start: "10:00", End: "22:00"}},
			LeadTimeDays: 3,
		},
		IsActive: active,
	}
}

func newUseCase(schedule *memSchedule, notifier *nopNotifier) *UseCase {
	log := logger.NewNop()
	uc := NewUseCase(
		schedule,
		fakeLocations{1: location(1, true), 2: location(2, false)},
		capacity.NewResolver(),
		conflicts.NewDetector(schedule, nil, log),
		&serialTxManager{},
		notifier,
		nil,
		retry.Budget{MaxAttempts: 3, InitialInterval: time.Millisecond, MaxInterval: time.Millisecond},
		log,
	)
	uc.timeProvider = fixedTime{today}
	return uc
}

func request(day int, start, end string) *Request {
	return &Request{
		Actor:      domain.Actor{UserID: 42, Role: domain.RoleClient},
		LocationID: 1,
		Date:       domain.DateOnly(today).AddDate(0, 0, day),
		StartTime:  types.TimeString(start),
		EndTime:    types.TimeString(end),
		Guests:     4,
	}
}

func TestExecute_LeadTime(t *testing.T) {
	uc := newUseCase(&memSchedule{}, &nopNotifier{})

	_, err := uc.Execute(context.Background(), request(2, "12:00", "14:00"))
	assert.ErrorIs(t, err, domain.ErrLeadTimeViolation)

	a, err := uc.Execute(context.Background(), request(3, "12:00", "14:00"))
	require.NoError(t, err)
	assert.Equal(t, domain.AppointmentStatusPending, a.Status)
	assert.Equal(t, int64(7), a.ChefID)
}

func TestExecute_ConflictsWithBookingOfSameChef(t *testing.T) {
	day := domain.DateOnly(today).AddDate(0, 0, 5)
	schedule := &memSchedule{bookings: []domain.ReservationRef{{
		Kind:   domain.ReservationKindBooking,
		ID:     31,
		Window: domain.TimeWindow{Date: day, Start: "10:00", End: "12:00"},
	}}}
	notifier := &nopNotifier{}
	uc := newUseCase(schedule, notifier)

	_, err := uc.Execute(context.Background(), request(5, "11:00", "13:00"))
	assert.ErrorIs(t, err, domain.ErrConflictDetected)

	_, err = uc.Execute(context.Background(), request(5, "12:00", "13:00"))
	require.NoError(t, err)
	require.Len(t, notifier.events, 1)
	assert.Equal(t, "request", notifier.events[0].Event)
}

func TestExecute_ConcurrentOverlappingAppointments(t *testing.T) {
	schedule := &memSchedule{}
	uc := newUseCase(schedule, &nopNotifier{})

	var wg sync.WaitGroup
	errs := make([]error, 2)
	reqs := []*Request{request(4, "10:00", "12:00"), request(4, "11:00", "13:00")}
	for i := range reqs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Execute(context.Background(), reqs[i])
		}(i)
	}
	wg.Wait()

	failed := 0
	for _, err := range errs {
		if err != nil {
			failed++
			assert.ErrorIs(t, err, domain.ErrConflictDetected)
		}
	}
	assert.Equal(t, 1, failed)
	assert.Len(t, schedule.appointments, 1)
}

func TestExecute_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *Request)
		wantErr error
	}{
		{name: "location not found", mutate: func(r *Request) { r.LocationID = 9 }, wantErr: ErrLocationNotFound},
		{name: "inactive location", mutate: func(r *Request) { r.LocationID = 2 }, wantErr: domain.ErrLocationInactive},
		{name: "too many guests", mutate: func(r *Request) { r.Guests = 7 }, wantErr: domain.ErrOutOfCapacity},
		{name: "too few guests", mutate: func(r *Request) { r.Guests = 1 }, wantErr: domain.ErrOutOfCapacity},
		{name: "end before start", mutate: func(r *Request) { r.EndTime = "11:00" }, wantErr: domain.ErrInvalidTimeRange},
		{name: "outside slot", mutate: func(r *Request) { r.EndTime = "22:30" }, wantErr: domain.ErrOutsideAvailabilityWindow},
		{name: "chef cannot request", mutate: func(r *Request) { r.Actor.Role = domain.RoleChef }, wantErr: ErrForbidden},
		{name: "no guests", mutate: func(r *Request) { r.Guests = 0 }, wantErr: ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schedule := &memSchedule{}
			uc := newUseCase(schedule, &nopNotifier{})
			req := request(10, "12:00", "14:00")
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, schedule.appointments)
		})
	}
}
