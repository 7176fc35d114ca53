package notifier

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ChefReservationService/internal/domain"
	"github.com/m04kA/SMC-ChefReservationService/pkg/logger"
)

type fakePublisher struct {
	mu       sync.Mutex
	channel  string
	payloads [][]byte
	err      error

	// release если задан, публикация ждёт его закрытия
	release chan struct{}
}

func (f *fakePublisher) Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd {
	if f.release != nil {
		select {
		case <-f.release:
		case <-ctx.Done():
			return redis.NewIntResult(0, ctx.Err())
		}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.channel = channel
	data, _ := message.([]byte)
	f.payloads = append(f.payloads, data)
	return redis.NewIntResult(1, f.err)
}

func (f *fakePublisher) published() [][]byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.payloads
}

func TestNotifier_Notify(t *testing.T) {
	pub := &fakePublisher{}
	n := New(pub, "", logger.NewNop())

	b := &domain.Booking{ID: 15, ChefID: 2, ClientID: 3, Status: domain.BookingStatusConfirmed}
	n.Notify(context.Background(), domain.NewBookingEvent(b, string(domain.BookingEventAccept), time.Now()))
	n.Close()

	assert.Equal(t, DefaultChannel, pub.channel)
	require.Len(t, pub.published(), 1)

	var got domain.ReservationEvent
	require.NoError(t, json.Unmarshal(pub.published()[0], &got))
	assert.Equal(t, int64(15), got.ReservationID)
	assert.Equal(t, domain.ReservationKindBooking, got.Kind)
	assert.Equal(t, "accept", got.Event)
	assert.Equal(t, "confirmed", got.Status)
}

func TestNotifier_PublishFailureIsSwallowed(t *testing.T) {
	pub := &fakePublisher{err: errors.New("redis: connection refused")}
	n := New(pub, "custom", logger.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	a := &domain.ChefHomeAppointment{ID: 4, Status: domain.AppointmentStatusDeclined}
	assert.NotPanics(t, func() {
		n.Notify(ctx, domain.NewAppointmentEvent(a, string(domain.AppointmentEventDecline), time.Now()))
		n.Close()
	})
	assert.Equal(t, "custom", pub.channel)
	assert.Len(t, pub.published(), 1)
}

func TestNotifier_SlowRedisDoesNotBlockCaller(t *testing.T) {
	pub := &fakePublisher{release: make(chan struct{})}
	n := New(pub, "", logger.NewNop())

	b := &domain.Booking{ID: 1, Status: domain.BookingStatusCancelled}
	returned := make(chan struct{})
	go func() {
		for i := 0; i < 3; i++ {
			n.Notify(context.Background(), domain.NewBookingEvent(b, string(domain.BookingEventCancel), time.Now()))
		}
		close(returned)
	}()

	select {
	case <-returned:
	case <-time.After(time.Second):
		t.Fatal("Notify blocked on a slow publisher")
	}
	assert.Empty(t, pub.published())

	close(pub.release)
	n.Close()
	assert.Len(t, pub.published(), 3)
}

func TestNotifier_FullQueueDropsEvents(t *testing.T) {
	pub := &fakePublisher{release: make(chan struct{})}
	n := New(pub, "", logger.NewNop())

	b := &domain.Booking{ID: 1, Status: domain.BookingStatusConfirmed}
	// одно событие может уже быть извлечено воркером и ждать публикации
	for i := 0; i < queueSize+10; i++ {
		n.Notify(context.Background(), domain.NewBookingEvent(b, string(domain.BookingEventAccept), time.Now()))
	}

	close(pub.release)
	n.Close()
	assert.LessOrEqual(t, len(pub.published()), queueSize+1)
	assert.GreaterOrEqual(t, len(pub.published()), queueSize)
}

func TestNotifier_NotifyAfterCloseIsDropped(t *testing.T) {
	pub := &fakePublisher{}
	n := New(pub, "", logger.NewNop())
	n.Close()

	b := &domain.Booking{ID: 2, Status: domain.BookingStatusConfirmed}
	assert.NotPanics(t, func() {
		n.Notify(context.Background(), domain.NewBookingEvent(b, string(domain.BookingEventAccept), time.Now()))
	})
	n.Close()
	assert.Empty(t, pub.published())
}
