package start_due_bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ChefReservationService/internal/domain"
	"github.com/m04kA/SMC-ChefReservationService/internal/usecase/transition_booking"
	"github.com/m04kA/SMC-ChefReservationService/pkg/logger"
	"github.com/m04kA/SMC-ChefReservationService/pkg/types"
)

var now = time.Date(2025, 6, 10, 19, 30, 0, 0, time.UTC)

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type fakeRepo struct {
	bookings []*domain.Booking
	err      error
	date     time.Time
	limit    uint64
}

func (r *fakeRepo) ListDueForStart(_ context.Context, date time.Time, limit uint64) ([]*domain.Booking, error) {
	r.date = date
	r.limit = limit
	return r.bookings, r.err
}

type fakeTransitioner struct {
	requests []*transition_booking.Request
	failIDs  map[int64]bool
}

func (f *fakeTransitioner) Execute(_ context.Context, req *transition_booking.Request) (*domain.Booking, error) {
	f.requests = append(f.requests, req)
	if f.failIDs[req.BookingID] {
		return nil, transition_booking.ErrBusy
	}
	return &domain.Booking{ID: req.BookingID, Status: domain.BookingStatusInProgress}, nil
}

func booking(id int64, day int, start string) *domain.Booking {
	return &domain.Booking{
		ID:     id,
		Status: domain.BookingStatusConfirmed,
		Event: domain.EventDetails{
			Date:      time.Date(2025, 6, day, 0, 0, 0, 0, time.UTC),
			StartTime: types.TimeString(start),
		},
	}
}

func TestExecute_StartsOnlyStartedEvents(t *testing.T) {
	repo := &fakeRepo{bookings: []*domain.Booking{
		booking(1, 9, "20:00"),
		booking(2, 10, "19:00"),
		booking(3, 10, "19:30"),
		booking(4, 10, "21:00"),
		booking(5, 10, "12:00"),
	}}
	transitioner := &fakeTransitioner{failIDs: map[int64]bool{5: true}}

	uc := NewUseCase(repo, transitioner, 0, logger.NewNop())
	uc.timeProvider = fixedTime{now}

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, &Response{Started: 3, Skipped: 1, Failed: 1}, resp)
	assert.Equal(t, time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), repo.date)
	assert.Equal(t, uint64(DefaultBatchSize), repo.limit)

	require.Len(t, transitioner.requests, 4)
	for _, req := range transitioner.requests {
		assert.Equal(t, domain.SystemActor, req.Actor)
		assert.Equal(t, domain.BookingEventStart, req.Event)
	}
}

func TestExecute_RepositoryError(t *testing.T) {
	uc := NewUseCase(&fakeRepo{err: errors.New("connection refused")}, &fakeTransitioner{}, 10, logger.NewNop())

	_, err := uc.Execute(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}
