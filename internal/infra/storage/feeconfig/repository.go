package feeconfig

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

var feeConfigColumns = []string{
	"id",
	"property_id",
	"cleaning_fee",
	"service_fee_rate",
	"created_at",
	"updated_at",
}

// Repository репозиторий конфигурации сборов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория конфигурации сборов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetWithHierarchy получает конфигурацию сборов с учетом иерархии приоритетов:
// сначала конфигурация конкретного объекта, затем глобальная (property_id NULL).
// Возвращает ErrFeeConfigNotFound, если нет ни той, ни другой —
// вызывающая сторона подставляет дефолты из config.toml
func (r *Repository) GetWithHierarchy(ctx context.Context, propertyID int64) (*domain.PropertyFeeConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	// Конфигурация объекта приоритетнее глобальной:
	// сортируем NULL property_id в конец и берем первую строку
	query, args, err := psqlbuilder.Select(feeConfigColumns...).
		From("fee_config").
		Where(squirrel.Or{
			squirrel.Eq{"property_id": propertyID},
			squirrel.Eq{"property_id": nil},
		}).
		OrderBy("property_id ASC NULLS LAST").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetWithHierarchy - build select query: %v", ErrBuildQuery, err)
	}

	config, err := scanFeeConfig(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrFeeConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithHierarchy - scan config: %v", ErrScanRow, err)
	}

	return config, nil
}

// GetByPropertyID получает конфигурацию, заданную именно для объекта (без иерархии)
func (r *Repository) GetByPropertyID(ctx context.Context, propertyID int64) (*domain.PropertyFeeConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(feeConfigColumns...).
		From("fee_config").
		Where(squirrel.Eq{"property_id": propertyID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByPropertyID - build select query: %v", ErrBuildQuery, err)
	}

	config, err := scanFeeConfig(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrFeeConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPropertyID - scan config: %v", ErrScanRow, err)
	}

	return config, nil
}

// Upsert создает или обновляет конфигурацию сборов объекта
// Уникальность по property_id обеспечена индексом
func (r *Repository) Upsert(ctx context.Context, config *domain.PropertyFeeConfig) (*domain.PropertyFeeConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("fee_config").
		Columns(
			"property_id",
			"cleaning_fee",
			"service_fee_rate",
		).
		Values(
			config.PropertyID,
			config.CleaningFee,
			config.ServiceFeeRate,
		).
		Suffix(`ON CONFLICT (property_id) DO UPDATE SET
			cleaning_fee = EXCLUDED.cleaning_fee,
			service_fee_rate = EXCLUDED.service_fee_rate,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&config.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute query: %v", ErrExecQuery, err)
	}

	config.CreatedAt = createdAt.Time
	config.UpdatedAt = updatedAt.Time

	return config, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanFeeConfig(row rowScanner) (*domain.PropertyFeeConfig, error) {
	var config domain.PropertyFeeConfig
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&config.ID,
		&config.PropertyID,
		&config.CleaningFee,
		&config.ServiceFeeRate,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, err
	}

	config.CreatedAt = createdAt.Time
	config.UpdatedAt = updatedAt.Time

	return &config, nil
}
