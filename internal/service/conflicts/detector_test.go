package conflicts

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ChefReservationService/internal/domain"
	"github.com/m04kA/SMC-ChefReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ChefReservationService/pkg/logger"
	"github.com/m04kA/SMC-ChefReservationService/pkg/types"
)

type fakeSchedule struct {
	refs    []domain.ReservationRef
	err     error
	locked  []int64
	lastDay time.Time
}

func (f *fakeSchedule) LockChef(_ context.Context, chefID int64) error {
	f.locked = append(f.locked, chefID)
	return nil
}

func (f *fakeSchedule) ListActiveByChefAndDate(_ context.Context, _ int64, date time.Time) ([]domain.ReservationRef, error) {
	f.lastDay = date
	return f.refs, f.err
}

type countingMetrics struct {
	conflicts map[string]int
}

func (m *countingMetrics) RecordConflict(kind string) {
	if m.conflicts == nil {
		m.conflicts = map[string]int{}
	}
	m.conflicts[kind]++
}

type fakeTx struct{ dbmetrics.TxExecutor }

var eventDay = time.Date(2025, 7, 14, 0, 0, 0, 0, time.UTC)

func ref(kind domain.ReservationKind, id int64, start, end string) domain.ReservationRef {
	return domain.ReservationRef{
		Kind:   kind,
		ID:     id,
		Window: domain.TimeWindow{Date: eventDay, Start: types.TimeString(start), End: types.TimeString(end)},
	}
}

func TestDetector_FindConflictsAcrossKinds(t *testing.T) {
	repo := &fakeSchedule{refs: []domain.ReservationRef{
		ref(domain.ReservationKindBooking, 1, "10:00", "12:00"),
		ref(domain.ReservationKindAppointment, 2, "12:30", "14:00"),
		ref(domain.ReservationKindBooking, 3, "18:00", "20:00"),
	}}
	m := &countingMetrics{}
	d := NewDetector(repo, m, logger.NewNop())

	window := domain.TimeWindow{Date: eventDay, Start: "11:00", End: "13:00"}
	conflicts, err := d.FindConflicts(context.Background(), 42, window)
	require.NoError(t, err)
	require.Len(t, conflicts, 2)
	assert.Equal(t, int64(1), conflicts[0].ID)
	assert.Equal(t, int64(2), conflicts[1].ID)
	assert.Equal(t, eventDay, repo.lastDay)
	assert.Equal(t, 1, m.conflicts["booking"])
	assert.Equal(t, 1, m.conflicts["appointment"])
}

func TestDetector_TouchingWindowsDoNotConflict(t *testing.T) {
	repo := &fakeSchedule{refs: []domain.ReservationRef{
		ref(domain.ReservationKindBooking, 1, "14:00", "16:00"),
	}}
	d := NewDetector(repo, nil, logger.NewNop())

	has, err := d.HasConflict(context.Background(), 42, domain.TimeWindow{Date: eventDay, Start: "16:00", End: "18:00"})
	require.NoError(t, err)
	assert.False(t, has)

	has, err = d.HasConflict(context.Background(), 42, domain.TimeWindow{Date: eventDay, Start: "12:00", End: "14:00"})
	require.NoError(t, err)
	assert.False(t, has)

	has, err = d.HasConflict(context.Background(), 42, domain.TimeWindow{Date: eventDay, Start: "15:59", End: "18:00"})
	require.NoError(t, err)
	assert.True(t, has)
}

func TestDetector_RepositoryError(t *testing.T) {
	repoErr := errors.New("connection refused")
	d := NewDetector(&fakeSchedule{err: repoErr}, nil, logger.NewNop())

	_, err := d.HasConflict(context.Background(), 42, domain.TimeWindow{Date: eventDay, Start: "10:00", End: "11:00"})
	assert.ErrorIs(t, err, ErrInternal)
	assert.ErrorIs(t, err, repoErr)
}

func TestDetector_LockRequiresTransaction(t *testing.T) {
	repo := &fakeSchedule{}
	d := NewDetector(repo, nil, logger.NewNop())

	assert.ErrorIs(t, d.Lock(context.Background(), 42), ErrNoTransaction)
	assert.Empty(t, repo.locked)

	ctx := dbmetrics.WithTx(context.Background(), fakeTx{})
	require.NoError(t, d.Lock(ctx, 42))
	assert.Equal(t, []int64{42}, repo.locked)
}
