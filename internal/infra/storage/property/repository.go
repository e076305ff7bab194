package property

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/tomrobak/vacaflow-booking-service/internal/domain"
	"github.com/tomrobak/vacaflow-booking-service/pkg/dbmetrics"
	"github.com/tomrobak/vacaflow-booking-service/pkg/psqlbuilder"
)

type DBExecutor = dbmetrics.DBExecutor

var propertyColumns = []string{
	"id",
	"host_id",
	"name",
	"nightly_rate",
	"max_guests",
	"available_from",
	"available_to",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с объектами размещения
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория объектов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый объект размещения
func (r *Repository) Create(ctx context.Context, property *domain.Property) (*domain.Property, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("properties").
		Columns(
			"host_id",
			"name",
			"nightly_rate",
			"max_guests",
			"available_from",
			"available_to",
		).
		Values(
			property.HostID,
			property.Name,
			property.NightlyRate,
			property.MaxGuests,
			property.AvailableFrom,
			property.AvailableTo,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&property.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	property.CreatedAt = createdAt.Time
	property.UpdatedAt = updatedAt.Time

	return property, nil
}

// GetByID получает объект по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Property, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(propertyColumns...).
		From("properties").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	property, err := scanProperty(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrPropertyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan property: %v", ErrScanRow, err)
	}

	return property, nil
}

// List получает все объекты размещения
func (r *Repository) List(ctx context.Context) ([]*domain.Property, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(propertyColumns...).
		From("properties").
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	properties := make([]*domain.Property, 0)
	for rows.Next() {
		property, err := scanProperty(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		properties = append(properties, property)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return properties, nil
}

// Update обновляет объект размещения
func (r *Repository) Update(ctx context.Context, property *domain.Property) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("properties").
		Set("host_id", property.HostID).
		Set("name", property.Name).
		Set("nightly_rate", property.NightlyRate).
		Set("max_guests", property.MaxGuests).
		Set("available_from", property.AvailableFrom).
		Set("available_to", property.AvailableTo).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": property.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrPropertyNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProperty(row rowScanner) (*domain.Property, error) {
	var property domain.Property
	var availableFrom, availableTo sql.NullTime
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&property.ID,
		&property.HostID,
		&property.Name,
		&property.NightlyRate,
		&property.MaxGuests,
		&availableFrom,
		&availableTo,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, err
	}

	property.AvailableFrom = availableFrom.Time
	property.AvailableTo = availableTo.Time
	property.CreatedAt = createdAt.Time
	property.UpdatedAt = updatedAt.Time

	return &property, nil
}
