package create_booking

import (
	"context"
	"time"

	"github.com/tomrobak/vacaflow-booking-service/internal/domain"
	"github.com/tomrobak/vacaflow-booking-service/internal/integrations/guestservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	// GetByPropertyWithFilter получает брони объекта, затрагивающие период
	GetByPropertyWithFilter(ctx context.Context, filter domain.PropertyBookingsFilter) ([]*domain.Booking, error)
}

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
	// GetWithHierarchy получает конфигурацию с учетом иерархии приоритетов
	GetWithHierarchy(ctx context.Context, propertyID int64) (*domain.PropertyFeeConfig, error)
}

// GuestServiceClient интерфейс клиента для GuestService
type GuestServiceClient interface {
	GetGuestWithGracefulDegradation(ctx context.Context, guestID int64) (*guestservice.Guest, error)
}

// TransactionManager интерфейс менеджера транзакций
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
