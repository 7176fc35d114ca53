package appointment

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

const tableName = "chef_home_appointments"

// Repository репозиторий визитов к шефу
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория визитов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает визит
func (r *Repository) Create(ctx context.Context, a *domain.ChefHomeAppointment) (*domain.ChefHomeAppointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableName).
		Columns(
			"location_id",
			"chef_id",
			"client_id",
			"requested_date",
			"start_time",
			"end_time",
			"guests",
			"message",
			"status",
		).
		Values(
			a.LocationID,
			a.ChefID,
			a.ClientID,
			a.Window.Date,
			a.Window.Start,
			a.Window.End,
			a.Guests,
			a.Message,
			a.Status,
		).
		Suffix("RETURNING id, version, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&a.ID, &a.Version, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	a.CreatedAt = createdAt.Time
	a.UpdatedAt = updatedAt.Time
	return a, nil
}

// GetByID получает визит по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.ChefHomeAppointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"location_id",
		"chef_id",
		"client_id",
		"requested_date",
		"start_time",
		"end_time",
		"guests",
		"message",
		"status",
		"version",
		"created_at",
		"updated_at",
	).
		From(tableName).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var a domain.ChefHomeAppointment
	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&a.ID,
		&a.LocationID,
		&a.ChefID,
		&a.ClientID,
		&a.Window.Date,
		&a.Window.Start,
		&a.Window.End,
		&a.Guests,
		&a.Message,
		&a.Status,
		&a.Version,
		&createdAt,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %w", ErrScanRow, err)
	}

	a.CreatedAt = createdAt.Time
	a.UpdatedAt = updatedAt.Time
	return &a, nil
}

// UpdateStatus меняет статус визита с проверкой версии
func (r *Repository) UpdateStatus(ctx context.Context, a *domain.ChefHomeAppointment) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableName).
		Set("status", a.Status).
		Set("version", squirrel.Expr("version + 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": a.ID, "version": a.Version}).
		Suffix("RETURNING version, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&a.Version, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: appointment id=%d version=%d", ErrVersionConflict, a.ID, a.Version)
	}
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %w", ErrExecQuery, err)
	}

	a.UpdatedAt = updatedAt.Time
	return nil
}
