package location

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ChefReservationService/internal/domain"
	"github.com/m04kA/SMC-ChefReservationService/internal/infra/storage/availability"
	"github.com/m04kA/SMC-ChefReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ChefReservationService/pkg/psqlbuilder"
)

const tableName = "chef_home_locations"

var baseColumns = []string{
	"id",
	"chef_id",
	"address",
	"city",
	"zip_code",
	"min_guests",
	"max_guests",
	"base_price",
	"price_per_guest",
	"currency",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository репозиторий площадок шефа
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория площадок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает площадку
func (r *Repository) Create(ctx context.Context, loc *domain.ChefHomeLocation) (*domain.ChefHomeLocation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	availabilityValues, err := availability.Encode(loc.Availability)
	if err != nil {
		return nil, err
	}

	cols := []string{"chef_id", "address", "city", "zip_code", "min_guests", "max_guests",
		"base_price", "price_per_guest", "currency", "is_active"}
	values := []interface{}{loc.ChefID, loc.Address, loc.City, loc.ZipCode, loc.Capacity.MinGuests, loc.Capacity.MaxGuests,
		loc.Pricing.BasePrice, loc.Pricing.PricePerGuest, loc.Pricing.Currency, loc.IsActive}

	query, args, err := psqlbuilder.Insert(tableName).
		Columns(append(cols, availability.Columns...)...).
		Values(append(values, availabilityValues...)...).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&loc.ID, &createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	loc.CreatedAt = createdAt.Time
	loc.UpdatedAt = updatedAt.Time
	return loc, nil
}

// Update заменяет изменяемые поля площадки
func (r *Repository) Update(ctx context.Context, loc *domain.ChefHomeLocation) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	availabilityValues, err := availability.Encode(loc.Availability)
	if err != nil {
		return err
	}

	builder := psqlbuilder.Update(tableName).
		Set("address", loc.Address).
		Set("city", loc.City).
		Set("zip_code", loc.ZipCode).
		Set("min_guests", loc.Capacity.MinGuests).
		Set("max_guests", loc.Capacity.MaxGuests).
		Set("base_price", loc.Pricing.BasePrice).
		Set("price_per_guest", loc.Pricing.PricePerGuest).
		Set("currency", loc.Pricing.Currency).
		Set("is_active", loc.IsActive).
		Set("updated_at", squirrel.Expr("NOW()"))
	for i, col := range availability.Columns {
		builder = builder.Set(col, availabilityValues[i])
	}

	query, args, err := builder.
		Where(squirrel.Eq{"id": loc.ID}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrLocationNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %w", ErrExecQuery, err)
	}

	loc.UpdatedAt = updatedAt.Time
	return nil
}

// GetByID получает площадку по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.ChefHomeLocation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(append(baseColumns, availability.Columns...)...).
		From(tableName).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	loc, err := scanLocation(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrLocationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan location: %w", ErrScanRow, err)
	}
	return loc, nil
}

// ListByChef получает все площадки шефа, включая неактивные
func (r *Repository) ListByChef(ctx context.Context, chefID int64) ([]*domain.ChefHomeLocation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(append(baseColumns, availability.Columns...)...).
		From(tableName).
		Where(squirrel.Eq{"chef_id": chefID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByChef - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByChef - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	locations := make([]*domain.ChefHomeLocation, 0)
	for rows.Next() {
		loc, err := scanLocation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByChef - scan location: %w", ErrScanRow, err)
		}
		locations = append(locations, loc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByChef - rows iteration: %w", ErrScanRow, err)
	}
	return locations, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanLocation(row rowScanner) (*domain.ChefHomeLocation, error) {
	var loc domain.ChefHomeLocation
	var pricePerGuest sql.NullFloat64
	var createdAt, updatedAt sql.NullTime
	var av availability.Row

	dest := []interface{}{
		&loc.ID,
		&loc.ChefID,
		&loc.Address,
		&loc.City,
		&loc.ZipCode,
		&loc.Capacity.MinGuests,
		&loc.Capacity.MaxGuests,
		&loc.Pricing.BasePrice,
		&pricePerGuest,
		&loc.Pricing.Currency,
		&loc.IsActive,
		&createdAt,
		&updatedAt,
	}
	if err := row.Scan(append(dest, av.Dest()...)...); err != nil {
		return nil, err
	}

	decoded, err := av.Decode()
	if err != nil {
		return nil, err
	}
	loc.Availability = decoded

	if pricePerGuest.Valid {
		v := pricePerGuest.Float64
		loc.Pricing.PricePerGuest = &v
	}
	loc.CreatedAt = createdAt.Time
	loc.UpdatedAt = updatedAt.Time
	return &loc, nil
}
