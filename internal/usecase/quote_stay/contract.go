package quote_stay

import (
	"context"

	"github.com/tomrobak/vacaflow-booking-service/internal/domain"
)

// PropertyRepository интерфейс репозитория объектов
type PropertyRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Property, error)
}

// AddonRepository интерфейс репозитория каталога дополнений
type AddonRepository interface {
	ListActive(ctx context.Context) ([]*domain.Addon, error)
}

// FeeConfigRepository интерфейс репозитория конфигурации сборов
type FeeConfigRepository interface {
	GetWithHierarchy(ctx context.Context, propertyID int64) (*domain.PropertyFeeConfig, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
