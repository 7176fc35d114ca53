package booking

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ChefReservationService/internal/domain"
	"github.com/m04kA/SMC-ChefReservationService/pkg/types"
)

var eventDay = time.Date(2025, 9, 20, 0, 0, 0, 0, time.UTC)

func newBooking() *domain.Booking {
	return &domain.Booking{
		ClientID:    10,
		ChefID:      20,
		ServiceType: domain.ServiceTypeHomeDining,
		Event: domain.EventDetails{
			Date:            eventDay,
			StartTime:       "19:00",
			EndTime:         "22:00",
			DurationMinutes: 180,
			Guests:          4,
		},
		Location:    domain.Address{Address: "1 rue de Rivoli", City: "Paris", ZipCode: "75001"},
		TotalAmount: 240,
		Payment:     domain.Payment{Status: domain.PaymentStatusUnpaid, DepositAmount: 72},
		Status:      domain.BookingStatusPending,
	}
}

func bookingRow(id int64, status string, version int) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(columns).AddRow(
		id, int64(10), int64(20), nil, "home-dining",
		eventDay, "19:00:00", "22:00:00", 180, 4,
		"1 rue de Rivoli", "Paris", "75001",
		240.0, "deposit_paid", 72.0, 72.0, 0.0, "pi_1",
		status, nil, nil, nil, nil, nil, nil, nil, nil,
		version, now, now,
	)
}

func TestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO bookings")).
		WithArgs(int64(10), int64(20), nil, "home-dining", eventDay, "19:00", "22:00", int64(180), int64(4),
			"1 rue de Rivoli", "Paris", "75001", 240.0, "unpaid", 72.0, "pending").
		WillReturnRows(sqlmock.NewRows([]string{"id", "version", "created_at", "updated_at"}).AddRow(int64(1), 1, now, now))

	created, err := NewRepository(db).Create(context.Background(), newBooking())
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, 1, created.Version)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("FROM bookings WHERE id = $1")).
		WithArgs(int64(7)).
		WillReturnRows(bookingRow(7, "confirmed", 3))

	b, err := NewRepository(db).GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, b.Status)
	assert.Equal(t, types.TimeString("19:00"), b.Event.StartTime)
	assert.Equal(t, 72.0, b.Payment.CapturedAmount)
	assert.Equal(t, domain.PaymentStatusDepositPaid, b.Payment.Status)
	require.NotNil(t, b.Payment.IntentID)
	assert.Equal(t, "pi_1", *b.Payment.IntentID)
	assert.Nil(t, b.MenuID)
	assert.Nil(t, b.Rating)
	assert.Equal(t, 3, b.Version)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("FROM bookings WHERE id = $1")).
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows(columns))

	_, err = NewRepository(db).GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestRepository_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	b := newBooking()
	b.ID = 7
	b.Version = 3
	b.Status = domain.BookingStatusConfirmed

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE bookings SET")).
		WillReturnRows(sqlmock.NewRows([]string{"version", "updated_at"}).AddRow(4, time.Now()))

	require.NoError(t, NewRepository(db).Update(context.Background(), b))
	assert.Equal(t, 4, b.Version)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Update_VersionConflict(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	b := newBooking()
	b.ID = 7
	b.Version = 3

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE bookings SET")).
		WillReturnRows(sqlmock.NewRows([]string{"version", "updated_at"}))

	err = NewRepository(db).Update(context.Background(), b)
	assert.ErrorIs(t, err, ErrVersionConflict)
	assert.Equal(t, 3, b.Version)
}

func TestRepository_List_ExcludesTerminalByDefault(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	chefID := int64(20)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE chef_id = $1 AND status NOT IN ($2,$3) ORDER BY event_date DESC, start_time DESC")).
		WithArgs(chefID, "cancelled", "completed").
		WillReturnRows(bookingRow(1, "pending", 1))

	list, err := NewRepository(db).List(context.Background(), domain.BookingsFilter{ChefID: &chefID})
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}
