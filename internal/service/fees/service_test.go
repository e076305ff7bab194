package fees

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tomrobak/vacaflow-booking-service/internal/domain"
	feeRepo "github.com/tomrobak/vacaflow-booking-service/internal/infra/storage/feeconfig"
	propertyRepo "github.com/tomrobak/vacaflow-booking-service/internal/infra/storage/property"
	"github.com/tomrobak/vacaflow-booking-service/internal/service/fees/models"
)

type mockFeeRepo struct {
	mock.Mock
}

func (m *mockFeeRepo) GetWithHierarchy(ctx context.Context, propertyID int64) (*domain.PropertyFeeConfig, error) {
	args := m.Called(ctx, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PropertyFeeConfig), args.Error(1)
}

func (m *mockFeeRepo) Upsert(ctx context.Context, config *domain.PropertyFeeConfig) (*domain.PropertyFeeConfig, error) {
	args := m.Called(ctx, config)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PropertyFeeConfig), args.Error(1)
}

type mockPropertyRepo struct {
	mock.Mock
}

func (m *mockPropertyRepo) GetByID(ctx context.Context, id int64) (*domain.Property, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Property), args.Error(1)
}

type noopLogger struct{}

func (l *noopLogger) Info(format string, v ...interface{})  {}
func (l *noopLogger) Warn(format string, v ...interface{})  {}
func (l *noopLogger) Error(format string, v ...interface{}) {}

var testDefaults = domain.FeeConfig{
	CleaningFee:    60.0,
	ServiceFeeRate: 0.12,
}

func newTestService() (*Service, *mockFeeRepo, *mockPropertyRepo) {
	fees := new(mockFeeRepo)
	properties := new(mockPropertyRepo)
	return NewService(fees, properties, testDefaults, &noopLogger{}), fees, properties
}

func hostedProperty() *domain.Property {
	return &domain.Property{
		ID:     1,
		HostID: 7,
		Name:   "Домик у озера",
	}
}

func TestGetEffective(t *testing.T) {
	ctx := context.Background()

	t.Run("конфигурация объекта", func(t *testing.T) {
		svc, fees, properties := newTestService()

		propertyID := int64(1)
		updatedAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
		properties.On("GetByID", ctx, propertyID).Return(hostedProperty(), nil)
		fees.On("GetWithHierarchy", ctx, propertyID).Return(&domain.PropertyFeeConfig{
			ID:             5,
			PropertyID:     &propertyID,
			CleaningFee:    100.0,
			ServiceFeeRate: 0.10,
			UpdatedAt:      updatedAt,
		}, nil)

		result, err := svc.GetEffective(ctx, propertyID)
		require.NoError(t, err)

		assert.Equal(t, models.SourceProperty, result.Source)
		assert.Equal(t, 100.0, result.CleaningFee)
		assert.Equal(t, 0.10, result.ServiceFeeRate)
		require.NotNil(t, result.UpdatedAt)
		assert.Equal(t, updatedAt, *result.UpdatedAt)
	})

	t.Run("глобальная конфигурация", func(t *testing.T) {
		svc, fees, properties := newTestService()

		properties.On("GetByID", ctx, int64(1)).Return(hostedProperty(), nil)
		fees.On("GetWithHierarchy", ctx, int64(1)).Return(&domain.PropertyFeeConfig{
			ID:             2,
			PropertyID:     nil,
			CleaningFee:    80.0,
			ServiceFeeRate: 0.15,
		}, nil)

		result, err := svc.GetEffective(ctx, int64(1))
		require.NoError(t, err)

		assert.Equal(t, models.SourceGlobal, result.Source)
		assert.Equal(t, 80.0, result.CleaningFee)
	})

	t.Run("дефолты при пустой иерархии", func(t *testing.T) {
		svc, fees, properties := newTestService()

		properties.On("GetByID", ctx, int64(1)).Return(hostedProperty(), nil)
		fees.On("GetWithHierarchy", ctx, int64(1)).Return(nil, feeRepo.ErrFeeConfigNotFound)

		result, err := svc.GetEffective(ctx, int64(1))
		require.NoError(t, err)

		assert.Equal(t, models.SourceDefault, result.Source)
		assert.Equal(t, 60.0, result.CleaningFee)
		assert.Equal(t, 0.12, result.ServiceFeeRate)
		assert.Nil(t, result.UpdatedAt)
	})

	t.Run("объект не найден", func(t *testing.T) {
		svc, _, properties := newTestService()

		properties.On("GetByID", ctx, int64(99)).Return(nil, errors.New("sql: no rows"))

		_, err := svc.GetEffective(ctx, int64(99))
		assert.Error(t, err)
	})
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("хост обновляет сборы", func(t *testing.T) {
		svc, fees, properties := newTestService()

		propertyID := int64(1)
		properties.On("GetByID", ctx, propertyID).Return(hostedProperty(), nil)
		fees.On("Upsert", ctx, mock.MatchedBy(func(c *domain.PropertyFeeConfig) bool {
			return c.PropertyID != nil && *c.PropertyID == propertyID &&
				c.CleaningFee == 120.0 && c.ServiceFeeRate == 0.18
		})).Return(&domain.PropertyFeeConfig{
			ID:             3,
			PropertyID:     &propertyID,
			CleaningFee:    120.0,
			ServiceFeeRate: 0.18,
		}, nil)

		result, err := svc.Update(ctx, &models.UpdateFeeConfigRequest{
			GuestID:        7,
			PropertyID:     propertyID,
			CleaningFee:    120.0,
			ServiceFeeRate: 0.18,
		})
		require.NoError(t, err)

		assert.Equal(t, models.SourceProperty, result.Source)
		assert.Equal(t, 120.0, result.CleaningFee)
		fees.AssertExpectations(t)
	})

	t.Run("не хост получает отказ", func(t *testing.T) {
		svc, fees, properties := newTestService()

		properties.On("GetByID", ctx, int64(1)).Return(hostedProperty(), nil)

		_, err := svc.Update(ctx, &models.UpdateFeeConfigRequest{
			GuestID:        42,
			PropertyID:     1,
			CleaningFee:    120.0,
			ServiceFeeRate: 0.18,
		})
		assert.ErrorIs(t, err, ErrAccessDenied)
		fees.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})

	t.Run("валидация границ значений", func(t *testing.T) {
		svc, _, _ := newTestService()

		cases := []struct {
			name string
			fee  float64
			rate float64
		}{
			{"отрицательный сбор за уборку", -1.0, 0.12},
			{"сбор за уборку выше максимума", domain.MaxCleaningFee + 1, 0.12},
			{"отрицательная ставка", 60.0, -0.01},
			{"ставка выше максимума", 60.0, domain.MaxServiceFeeRate + 0.01},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := svc.Update(ctx, &models.UpdateFeeConfigRequest{
					GuestID:        7,
					PropertyID:     1,
					CleaningFee:    tc.fee,
					ServiceFeeRate: tc.rate,
				})
				assert.ErrorIs(t, err, ErrInvalidInput)
			})
		}
	})

	t.Run("объект не найден", func(t *testing.T) {
		svc, _, properties := newTestService()

		properties.On("GetByID", ctx, int64(99)).Return(nil, propertyRepo.ErrPropertyNotFound)

		_, err := svc.Update(ctx, &models.UpdateFeeConfigRequest{
			GuestID:        7,
			PropertyID:     99,
			CleaningFee:    60.0,
			ServiceFeeRate: 0.12,
		})
		assert.ErrorIs(t, err, ErrPropertyNotFound)
	})
}
