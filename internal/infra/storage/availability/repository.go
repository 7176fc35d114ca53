package availability

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ChefReservationService/internal/domain"
	"github.com/m04kA/SMC-ChefReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ChefReservationService/pkg/psqlbuilder"
)

const tableName = "chef_availability"

// Repository репозиторий правил доступности шефа для выездных услуг
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория доступности
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByChefID получает доступность шефа. Если записи нет - ErrAvailabilityNotFound
func (r *Repository) GetByChefID(ctx context.Context, chefID int64) (*domain.ChefAvailability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	cols := append([]string{"chef_id"}, Columns...)
	cols = append(cols, "created_at", "updated_at")

	query, args, err := psqlbuilder.Select(cols...).
		From(tableName).
		Where(squirrel.Eq{"chef_id": chefID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByChefID - build select query: %v", ErrBuildQuery, err)
	}

	var result domain.ChefAvailability
	var row Row
	var createdAt, updatedAt sql.NullTime

	dest := append([]interface{}{&result.ChefID}, row.Dest()...)
	dest = append(dest, &createdAt, &updatedAt)

	err = executor.QueryRowContext(ctx, query, args...).Scan(dest...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAvailabilityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByChefID - scan availability: %w", ErrScanRow, err)
	}

	result.Availability, err = row.Decode()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByChefID - %v", ErrScanRow, err)
	}
	result.CreatedAt = createdAt.Time
	result.UpdatedAt = updatedAt.Time

	return &result, nil
}

// Upsert создает или заменяет доступность шефа
func (r *Repository) Upsert(ctx context.Context, availability *domain.ChefAvailability) (*domain.ChefAvailability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	values, err := Encode(availability.Availability)
	if err != nil {
		return nil, err
	}

	query, args, err := psqlbuilder.Insert(tableName).
		Columns(append([]string{"chef_id"}, Columns...)...).
		Values(append([]interface{}{availability.ChefID}, values...)...).
		Suffix(`ON CONFLICT (chef_id) DO UPDATE SET
			days_of_week = EXCLUDED.days_of_week,
			time_slots = EXCLUDED.time_slots,
			lead_time_days = EXCLUDED.lead_time_days,
			advance_booking_limit_days = EXCLUDED.advance_booking_limit_days,
			blackout_dates = EXCLUDED.blackout_dates,
			updated_at = NOW()
		RETURNING created_at, updated_at`).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %w", ErrExecQuery, err)
	}

	availability.CreatedAt = createdAt.Time
	availability.UpdatedAt = updatedAt.Time
	return availability, nil
}
