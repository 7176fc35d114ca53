package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ChefReservationService/internal/domain"
	"github.com/m04kA/SMC-ChefReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ChefReservationService/pkg/psqlbuilder"
)

const tableName = "bookings"

var columns = []string{
	"id",
	"client_id",
	"chef_id",
	"menu_id",
	"service_type",
	"event_date",
	"start_time",
	"end_time",
	"duration_minutes",
	"guests",
	"address",
	"city",
	"zip_code",
	"total_amount",
	"payment_status",
	"deposit_amount",
	"captured_amount",
	"refunded_amount",
	"payment_intent_id",
	"status",
	"rating",
	"review",
	"dispute_reason",
	"resolution",
	"resolved_by",
	"resolved_at",
	"cancellation_reason",
	"cancelled_at",
	"version",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование в статусе, указанном в booking (pending).
// Если в контексте передана активная транзакция, использует её.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableName).
		Columns(
			"client_id",
			"chef_id",
			"menu_id",
			"service_type",
			"event_date",
			"start_time",
			"end_time",
			"duration_minutes",
			"guests",
			"address",
			"city",
			"zip_code",
			"total_amount",
			"payment_status",
			"deposit_amount",
			"status",
		).
		Values(
			booking.ClientID,
			booking.ChefID,
			booking.MenuID,
			booking.ServiceType,
			booking.Event.Date,
			booking.Event.StartTime,
			booking.Event.EndTime,
			booking.Event.DurationMinutes,
			booking.Event.Guests,
			booking.Location.Address,
			booking.Location.City,
			booking.Location.ZipCode,
			booking.TotalAmount,
			booking.Payment.Status,
			booking.Payment.DepositAmount,
			booking.Status,
		).
		Suffix("RETURNING id, version, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&booking.Version,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	return r.get(ctx, id, false)
}

// GetByIDForUpdate получает бронирование и блокирует строку до конца транзакции.
// Вне транзакции работает как GetByID.
func (r *Repository) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Booking, error) {
	return r.get(ctx, id, dbmetrics.IsInTransaction(ctx))
}

func (r *Repository) get(ctx context.Context, id int64, forUpdate bool) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"id": id})
	if forUpdate {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %w", ErrScanRow, err)
	}

	return booking, nil
}

// List получает бронирования по фильтру
// Поддерживает фильтрацию по:
// - клиенту и/или шефу
// - периоду (StartDate, EndDate)
// - статусу (Status)
// - включению отменённых и завершённых (IncludeInactive)
func (r *Repository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).From(tableName)

	if filter.ClientID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"client_id": *filter.ClientID})
	}
	if filter.ChefID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"chef_id": *filter.ChefID})
	}
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"event_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"event_date": *filter.EndDate})
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": string(*filter.Status)})
	} else if !filter.IncludeInactive {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": terminalStatuses()})
	}

	query, args, err := selectBuilder.
		OrderBy("event_date DESC", "start_time DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// ListDueForStart получает подтверждённые бронирования, дата которых уже наступила
func (r *Repository) ListDueForStart(ctx context.Context, date time.Time, limit uint64) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"status": string(domain.BookingStatusConfirmed)}).
		Where(squirrel.LtOrEq{"event_date": date}).
		OrderBy("event_date ASC", "start_time ASC").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListDueForStart - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListDueForStart - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// Update сохраняет изменяемые поля бронирования с проверкой версии.
// При успехе увеличивает booking.Version. Если версия в БД другая - ErrVersionConflict.
func (r *Repository) Update(ctx context.Context, booking *domain.Booking) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableName).
		Set("status", booking.Status).
		Set("payment_status", booking.Payment.Status).
		Set("deposit_amount", booking.Payment.DepositAmount).
		Set("captured_amount", booking.Payment.CapturedAmount).
		Set("refunded_amount", booking.Payment.RefundedAmount).
		Set("payment_intent_id", booking.Payment.IntentID).
		Set("rating", booking.Rating).
		Set("review", booking.Review).
		Set("dispute_reason", booking.DisputeReason).
		Set("resolution", booking.Resolution).
		Set("resolved_by", booking.ResolvedBy).
		Set("resolved_at", booking.ResolvedAt).
		Set("cancellation_reason", booking.CancellationReason).
		Set("cancelled_at", booking.CancelledAt).
		Set("version", squirrel.Expr("version + 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": booking.ID, "version": booking.Version}).
		Suffix("RETURNING version, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&booking.Version, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: booking id=%d version=%d", ErrVersionConflict, booking.ID, booking.Version)
	}
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %w", ErrExecQuery, err)
	}

	booking.UpdatedAt = updatedAt.Time
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&b.ID,
		&b.ClientID,
		&b.ChefID,
		&b.MenuID,
		&b.ServiceType,
		&b.Event.Date,
		&b.Event.StartTime,
		&b.Event.EndTime,
		&b.Event.DurationMinutes,
		&b.Event.Guests,
		&b.Location.Address,
		&b.Location.City,
		&b.Location.ZipCode,
		&b.TotalAmount,
		&b.Payment.Status,
		&b.Payment.DepositAmount,
		&b.Payment.CapturedAmount,
		&b.Payment.RefundedAmount,
		&b.Payment.IntentID,
		&b.Status,
		&b.Rating,
		&b.Review,
		&b.DisputeReason,
		&b.Resolution,
		&b.ResolvedBy,
		&b.ResolvedAt,
		&b.CancellationReason,
		&b.CancelledAt,
		&b.Version,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time
	return &b, nil
}

func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %w", ErrScanRow, err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows iteration: %w", ErrScanRow, err)
	}
	return bookings, nil
}

func terminalStatuses() []string {
	result := make([]string, len(domain.BookingTerminalStatuses))
	for i, s := range domain.BookingTerminalStatuses {
		result[i] = string(s)
	}
	return result
}
