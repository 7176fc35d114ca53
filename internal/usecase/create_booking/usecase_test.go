package create_booking

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ChefReservationService/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-ChefReservationService/internal/infra/storage/availability"
	"github.com/m04kA/SMC-ChefReservationService/internal/integrations/chefcatalog"
	"github.com/m04kA/SMC-ChefReservationService/internal/service/capacity"
	"github.com/m04kA/SMC-ChefReservationService/internal/service/conflicts"
	"github.com/m04kA/SMC-ChefReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ChefReservationService/pkg/logger"
	"github.com/m04kA/SMC-ChefReservationService/pkg/ptr"
	"github.com/m04kA/SMC-ChefReservationService/pkg/retry"
	"github.com/m04kA/SMC-ChefReservationService/pkg/txmanager"
	"github.com/m04kA/SMC-ChefReservationService/pkg/types"
)

const (
	chefID   int64 = 7
	clientID int64 = 100
)

var now = time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

// memStore бронирования в памяти; служит и репозиторием, и расписанием шефа
type memStore struct {
	mu       sync.Mutex
	bookings []*domain.Booking
	nextID   int64
}

func (s *memStore) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	created := *b
	created.ID = s.nextID
	created.Version = 1
	created.CreatedAt = now
	created.UpdatedAt = now
	s.bookings = append(s.bookings, &created)
	return &created, nil
}

func (s *memStore) LockChef(context.Context, int64) error { return nil }

func (s *memStore) ListActiveByChefAndDate(_ context.Context, chef int64, date time.Time) ([]domain.ReservationRef, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	refs := make([]domain.ReservationRef, 0)
	for _, b := range s.bookings {
		if b.ChefID == chef && b.IsActive() && domain.SameDay(b.Event.Date, date) {
			refs = append(refs, domain.ReservationRef{
				Kind: domain.ReservationKindBooking, ID: b.ID, Window: b.Window(), Status: string(b.Status),
			})
		}
	}
	return refs, nil
}

func (s *memStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.bookings)
}

type fakeTx struct{ dbmetrics.TxExecutor }

// serialTxManager выполняет транзакции строго по одной, как advisory lock шефа
type serialTxManager struct {
	mu       sync.Mutex
	failures int
	calls    int
}

func (m *serialTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.failures > 0 {
		m.failures--
		return txmanager.ErrSerialization
	}
	return fn(dbmetrics.WithTx(ctx, fakeTx{}))
}

type fakeCatalog struct {
	chefs map[int64]*domain.Chef
	menus map[int64]*domain.Menu
}

func (c *fakeCatalog) GetChef(_ context.Context, id int64) (*domain.Chef, error) {
	chef, ok := c.chefs[id]
	if !ok {
		return nil, chefcatalog.ErrChefNotFound
	}
	return chef, nil
}

func (c *fakeCatalog) GetMenu(_ context.Context, _ int64, menuID int64) (*domain.Menu, error) {
	menu, ok := c.menus[menuID]
	if !ok {
		return nil, chefcatalog.ErrMenuNotFound
	}
	return menu, nil
}

type noAvailability struct{}

func (noAvailability) GetByChefID(context.Context, int64) (*domain.ChefAvailability, error) {
	return nil, availabilityRepo.ErrAvailabilityNotFound
}

type recordingNotifier struct {
	mu     sync.Mutex
	events []domain.ReservationEvent
}

func (n *recordingNotifier) Notify(_ context.Context, event domain.ReservationEvent) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, event)
}

type recordingMetrics struct {
	mu         sync.Mutex
	rejections map[string]int
}

func (m *recordingMetrics) RecordRejection(_, code string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.rejections == nil {
		m.rejections = map[string]int{}
	}
	m.rejections[code]++
}

func (m *recordingMetrics) RecordTransition(string, string, string) {}

type fixture struct {
	uc       *UseCase
	store    *memStore
	tx       *serialTxManager
	notifier *recordingNotifier
	metrics  *recordingMetrics
}

func newFixture() *fixture {
	store := &memStore{}
	tx := &serialTxManager{}
	notifier := &recordingNotifier{}
	metrics := &recordingMetrics{}
	log := logger.NewNop()

	catalog := &fakeCatalog{
		chefs: map[int64]*domain.Chef{
			chefID: {ID: chefID, UserID: 70, HourlyRate: 60, IsActive: true,
				ServiceTypes: []domain.ServiceType{domain.ServiceTypeHomeDining, domain.ServiceTypeCatering}},
			8: {ID: 8, UserID: 80, HourlyRate: 50, IsActive: false},
		},
		menus: map[int64]*domain.Menu{
			11: {ID: 11, ChefID: chefID, Type: domain.MenuTypeFlatRate, Price: 450, MinGuests: 2, MaxGuests: 8},
			12: {ID: 12, ChefID: chefID, Type: domain.MenuTypeHourly, Price: 0},
		},
	}

	uc := NewUseCase(
		store,
		noAvailability{},
		catalog,
		capacity.NewResolver(),
		conflicts.NewDetector(store, nil, log),
		tx,
		notifier,
		metrics,
		Config{Retry: retry.Budget{MaxAttempts: 3, InitialInterval: time.Millisecond, MaxInterval: time.Millisecond}},
		log,
	)
	uc.timeProvider = fixedTime{now}

	return &fixture{uc: uc, store: store, tx: tx, notifier: notifier, metrics: metrics}
}

func request(start string, duration int) *Request {
	return &Request{
		Actor:           domain.Actor{UserID: clientID, Role: domain.RoleClient},
		ChefID:          chefID,
		ServiceType:     domain.ServiceTypeHomeDining,
		Date:            time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		StartTime:       types.TimeString(start),
		DurationMinutes: duration,
		Guests:          4,
		Location:        domain.Address{Address: "12 rue de Rivoli", City: "Paris", ZipCode: "75001"},
	}
}

func TestExecute_CreatesPendingBookingWithHourlyPrice(t *testing.T) {
	f := newFixture()

	booking, err := f.uc.Execute(context.Background(), request("19:00", 180))
	require.NoError(t, err)

	assert.Equal(t, int64(1), booking.ID)
	assert.Equal(t, domain.BookingStatusPending, booking.Status)
	assert.Equal(t, types.TimeString("22:00"), booking.Event.EndTime)
	assert.Equal(t, 180.0, booking.TotalAmount)
	assert.Equal(t, 54.0, booking.Payment.DepositAmount)
	assert.Equal(t, domain.PaymentStatusUnpaid, booking.Payment.Status)

	require.Len(t, f.notifier.events, 1)
	assert.Equal(t, "create", f.notifier.events[0].Event)
	assert.Equal(t, domain.ReservationKindBooking, f.notifier.events[0].Kind)
}

func TestExecute_FlatRateMenuUsesMenuPrice(t *testing.T) {
	f := newFixture()
	req := request("12:00", 120)
	req.MenuID = ptr.Ptr(int64(11))

	booking, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 450.0, booking.TotalAmount)
	assert.Equal(t, 135.0, booking.Payment.DepositAmount)
}

func TestExecute_MenuGuestBounds(t *testing.T) {
	f := newFixture()
	req := request("12:00", 120)
	req.MenuID = ptr.Ptr(int64(11))
	req.Guests = 9

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrOutOfCapacity)
	assert.Equal(t, 0, f.store.count())
	assert.Equal(t, 1, f.metrics.rejections[string(domain.CodeOutOfCapacity)])
}

func TestExecute_OverlapIsRejectedAndTouchingIsAllowed(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.uc.Execute(ctx, request("14:00", 120))
	require.NoError(t, err)

	// 15:00-17:00 пересекается с 14:00-16:00
	_, err = f.uc.Execute(ctx, request("15:00", 120))
	assert.ErrorIs(t, err, domain.ErrConflictDetected)

	// повтор того же запроса даёт тот же отказ и ничего не меняет
	_, err = f.uc.Execute(ctx, request("15:00", 120))
	assert.ErrorIs(t, err, domain.ErrConflictDetected)
	assert.Equal(t, 1, f.store.count())

	// 16:00-18:00 касается границы и не конфликтует
	_, err = f.uc.Execute(ctx, request("16:00", 120))
	require.NoError(t, err)
	assert.Equal(t, 2, f.store.count())
	assert.Equal(t, 2, f.metrics.rejections[string(domain.CodeConflictDetected)])
}

func TestExecute_ConcurrentOverlappingRequests(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	const workers = 8
	var wg sync.WaitGroup
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.uc.Execute(ctx, request("18:00", 120))
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, domain.ErrConflictDetected)
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, f.store.count())
}

func TestExecute_SerializationFailures(t *testing.T) {
	t.Run("retried within budget", func(t *testing.T) {
		f := newFixture()
		f.tx.failures = 2

		_, err := f.uc.Execute(context.Background(), request("10:00", 60))
		require.NoError(t, err)
		assert.Equal(t, 3, f.tx.calls)
	})

	t.Run("busy after budget", func(t *testing.T) {
		f := newFixture()
		f.tx.failures = 10

		_, err := f.uc.Execute(context.Background(), request("10:00", 60))
		assert.ErrorIs(t, err, ErrBusy)
		assert.Equal(t, 3, f.tx.calls)
		assert.Equal(t, 0, f.store.count())
	})
}

func TestExecute_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *Request)
		wantErr error
	}{
		{name: "chef not found", mutate: func(r *Request) { r.ChefID = 99 }, wantErr: ErrChefNotFound},
		{name: "chef inactive", mutate: func(r *Request) { r.ChefID = 8 }, wantErr: ErrChefInactive},
		{name: "service not offered", mutate: func(r *Request) { r.ServiceType = domain.ServiceTypeCookingClasses }, wantErr: ErrServiceNotOffered},
		{name: "menu not found", mutate: func(r *Request) { r.MenuID = ptr.Ptr(int64(404)) }, wantErr: ErrMenuNotFound},
		{name: "chef cannot book", mutate: func(r *Request) { r.Actor.Role = domain.RoleChef }, wantErr: ErrForbidden},
		{name: "bad start time", mutate: func(r *Request) { r.StartTime = "7pm" }, wantErr: ErrInvalidInput},
		{name: "too short", mutate: func(r *Request) { r.DurationMinutes = 10 }, wantErr: ErrInvalidInput},
		{name: "no address", mutate: func(r *Request) { r.Location.City = "" }, wantErr: ErrInvalidInput},
		{name: "crosses midnight", mutate: func(r *Request) { r.StartTime = "22:00"; r.DurationMinutes = 180 }, wantErr: domain.ErrInvalidTimeRange},
		{name: "outside default slot", mutate: func(r *Request) { r.StartTime = "21:30"; r.DurationMinutes = 120 }, wantErr: domain.ErrOutsideAvailabilityWindow},
		{name: "same day", mutate: func(r *Request) { r.Date = now }, wantErr: domain.ErrLeadTimeViolation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			req := request("19:00", 120)
			tt.mutate(req)

			_, err := f.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, 0, f.store.count())
			assert.Empty(t, f.notifier.events)
		})
	}
}

func TestExecute_B2BActsAsClient(t *testing.T) {
	f := newFixture()
	req := request("19:00", 120)
	req.Actor.Role = domain.RoleB2B

	booking, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, clientID, booking.ClientID)
}
