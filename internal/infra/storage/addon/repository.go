package addon

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

// Repository репозиторий каталога дополнений
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория дополнений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListActive получает все активные дополнения каталога
// Результат используется как каталог для расчета стоимости:
// неизвестные выбранные id отфильтровываются доменной логикой
func (r *Repository) ListActive(ctx context.Context) ([]*domain.Addon, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"price",
		"category",
		"active",
	).
		From("addons").
		Where(squirrel.Eq{"active": true}).
		OrderBy("category ASC, name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAddons(rows)
}

func scanAddons(rows *sql.Rows) ([]*domain.Addon, error) {
	addons := make([]*domain.Addon, 0)

	for rows.Next() {
		var addon domain.Addon
		err := rows.Scan(
			&addon.ID,
			&addon.Name,
			&addon.Price,
			&addon.Category,
			&addon.Active,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAddons - scan row: %v", ErrScanRow, err)
		}
		addons = append(addons, &addon)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAddons - rows error: %v", ErrScanRow, err)
	}

	return addons, nil
}
