package fees

import (
	"context"

	"github.com/tomrobak/vacaflow-booking-service/internal/domain"
)

// FeeConfigRepository интерфейс репозитория конфигурации сборов
type FeeConfigRepository interface {
	GetWithHierarchy(ctx context.Context, propertyID int64) (*domain.PropertyFeeConfig, error)
	Upsert(ctx context.Context, config *domain.PropertyFeeConfig) (*domain.PropertyFeeConfig, error)
}

// PropertyRepository интерфейс репозитория объектов
type PropertyRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Property, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
