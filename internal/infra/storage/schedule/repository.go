package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ChefReservationService/internal/domain"
	"github.com/m04kA/SMC-ChefReservationService/pkg/dbmetrics"
)

// Repository расписание шефа: бронирования и визиты в одном запросе
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// LockChef берёт транзакционную advisory-блокировку по chef_id.
// Блокировка снимается при COMMIT/ROLLBACK.
func (r *Repository) LockChef(ctx context.Context, chefID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if _, err := executor.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", chefID); err != nil {
		return fmt.Errorf("%w: LockChef - chef_id=%d: %w", ErrExecQuery, chefID, err)
	}
	return nil
}

// ListActiveByChefAndDate возвращает все незавершённые резервации шефа на дату
// из обеих таблиц (bookings и chef_home_appointments)
func (r *Repository) ListActiveByChefAndDate(ctx context.Context, chefID int64, date time.Time) ([]domain.ReservationRef, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildActiveQuery(chefID, date)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveByChefAndDate - %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveByChefAndDate - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	refs := make([]domain.ReservationRef, 0)
	for rows.Next() {
		var ref domain.ReservationRef
		if err := rows.Scan(
			&ref.Kind,
			&ref.ID,
			&ref.Window.Date,
			&ref.Window.Start,
			&ref.Window.End,
			&ref.Status,
		); err != nil {
			return nil, fmt.Errorf("%w: ListActiveByChefAndDate - scan row: %w", ErrScanRow, err)
		}
		refs = append(refs, ref)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActiveByChefAndDate - rows iteration: %w", ErrScanRow, err)
	}

	return refs, nil
}

// buildActiveQuery собирает UNION ALL по обеим таблицам.
// Части строятся с '?' и переводятся в $N уже после склейки.
func buildActiveQuery(chefID int64, date time.Time) (string, []interface{}, error) {
	bookingsSQL, bookingsArgs, err := squirrel.
		Select("'booking' AS kind", "id", "event_date AS date", "start_time", "end_time", "status").
		From("bookings").
		Where(squirrel.Eq{"chef_id": chefID, "event_date": date}).
		Where(squirrel.NotEq{"status": bookingReleased()}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("bookings part: %w", err)
	}

	appointmentsSQL, appointmentsArgs, err := squirrel.
		Select("'appointment' AS kind", "id", "requested_date AS date", "start_time", "end_time", "status").
		From("chef_home_appointments").
		Where(squirrel.Eq{"chef_id": chefID, "requested_date": date}).
		Where(squirrel.NotEq{"status": appointmentReleased()}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("appointments part: %w", err)
	}

	query := bookingsSQL + " UNION ALL " + appointmentsSQL + " ORDER BY start_time ASC"
	query, err = squirrel.Dollar.ReplacePlaceholders(query)
	if err != nil {
		return "", nil, fmt.Errorf("placeholders: %w", err)
	}

	return query, append(bookingsArgs, appointmentsArgs...), nil
}

func bookingReleased() []string {
	result := make([]string, len(domain.BookingTerminalStatuses))
	for i, s := range domain.BookingTerminalStatuses {
		result[i] = string(s)
	}
	return result
}

func appointmentReleased() []string {
	result := make([]string, len(domain.AppointmentReleasedStatuses))
	for i, s := range domain.AppointmentReleasedStatuses {
		result[i] = string(s)
	}
	return result
}
