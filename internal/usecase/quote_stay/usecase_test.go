package quote_stay

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
)

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

type mockAddonRepo struct {
	mock.Mock
}

func (m *mockAddonRepo) ListActive(ctx context.Context) ([]*domain.Addon, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Addon), args.Error(1)
}

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

type noopLogger struct{}

func (l *noopLogger) Info(format string, v ...interface{})  {}
func (l *noopLogger) Warn(format string, v ...interface{})  {}
func (l *noopLogger) Error(format string, v ...interface{}) {}

func newTestUseCase() (*UseCase, *mockPropertyRepo, *mockAddonRepo, *mockFeeRepo) {
	properties := new(mockPropertyRepo)
	addons := new(mockAddonRepo)
	fees := new(mockFeeRepo)

	uc := NewUseCase(
		properties,
		addons,
		fees,
		domain.FeeConfig{CleaningFee: domain.DefaultCleaningFee, ServiceFeeRate: domain.DefaultServiceFeeRate},
		&noopLogger{},
	)

	return uc, properties, addons, fees
}

func testProperty() *domain.Property {
	return &domain.Property{
		ID:            1,
		Name:          "Seaside Villa",
		NightlyRate:   299.0,
		MaxGuests:     6,
		AvailableFrom: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		AvailableTo:   time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
	}
}

func testCatalog() []*domain.Addon {
	return []*domain.Addon{
		{ID: 10, Name: "Late check-out", Price: 45.0, Category: "comfort", Active: true},
		{ID: 11, Name: "Airport transfer", Price: 30.0, Category: "transport", Active: true},
	}
}

func TestQuoteStay_FullBreakdown(t *testing.T) {
	uc, properties, addons, fees := newTestUseCase()
	ctx := context.Background()

	req := &Request{
		PropertyID: 1,
		CheckIn:    time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2024, 6, 6, 0, 0, 0, 0, time.UTC),
		AddonIDs:   []int64{10, 11},
	}

	properties.On("GetByID", ctx, int64(1)).Return(testProperty(), nil).Once()
	fees.On("GetWithHierarchy", ctx, int64(1)).Return(nil, feeRepo.ErrFeeConfigNotFound).Once()
	addons.On("ListActive", ctx).Return(testCatalog(), nil).Once()

	resp, err := uc.Execute(ctx, req)
	require.NoError(t, err)

	// 5 * 299 = 1495, дополнения 75, уборка 60, сервисный сбор round(1495 * 0.12) = 179
	assert.Equal(t, 5, resp.Breakdown.Nights)
	assert.Equal(t, 299.0, resp.Breakdown.NightlyRate)
	assert.Equal(t, 1495.0, resp.Breakdown.Subtotal)
	assert.Equal(t, 75.0, resp.Breakdown.AddonsTotal)
	assert.Equal(t, 60.0, resp.Breakdown.CleaningFee)
	assert.Equal(t, 179.0, resp.Breakdown.ServiceFee)
	assert.Equal(t, 1809.0, resp.Breakdown.Total)
}

func TestQuoteStay_ZeroNights(t *testing.T) {
	uc, properties, addons, fees := newTestUseCase()
	ctx := context.Background()

	// Выезд в день заезда: нулевая детализация, не ошибка
	req := &Request{
		PropertyID: 1,
		CheckIn:    time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		AddonIDs:   []int64{10},
	}

	properties.On("GetByID", ctx, int64(1)).Return(testProperty(), nil).Once()
	fees.On("GetWithHierarchy", ctx, int64(1)).Return(nil, feeRepo.ErrFeeConfigNotFound).Once()
	addons.On("ListActive", ctx).Return(testCatalog(), nil).Once()

	resp, err := uc.Execute(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, 0, resp.Breakdown.Nights)
	assert.Equal(t, 299.0, resp.Breakdown.NightlyRate)
	assert.Equal(t, 0.0, resp.Breakdown.AddonsTotal)
	assert.Equal(t, 0.0, resp.Breakdown.CleaningFee)
	assert.Equal(t, 0.0, resp.Breakdown.ServiceFee)
	assert.Equal(t, 0.0, resp.Breakdown.Total)
}

func TestQuoteStay_PropertyFeeConfig(t *testing.T) {
	uc, properties, addons, fees := newTestUseCase()
	ctx := context.Background()

	req := &Request{
		PropertyID: 1,
		CheckIn:    time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC),
	}

	propID := int64(1)
	properties.On("GetByID", ctx, int64(1)).Return(testProperty(), nil).Once()
	fees.On("GetWithHierarchy", ctx, int64(1)).
		Return(&domain.PropertyFeeConfig{ID: 5, PropertyID: &propID, CleaningFee: 100.0, ServiceFeeRate: 0.10}, nil).Once()
	addons.On("ListActive", ctx).Return([]*domain.Addon{}, nil).Once()

	resp, err := uc.Execute(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, 100.0, resp.Breakdown.CleaningFee)
	assert.Equal(t, 60.0, resp.Breakdown.ServiceFee)
	assert.Equal(t, 758.0, resp.Breakdown.Total)
}

func TestQuoteStay_Idempotent(t *testing.T) {
	uc, properties, addons, fees := newTestUseCase()
	ctx := context.Background()

	req := &Request{
		PropertyID: 1,
		CheckIn:    time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2024, 6, 6, 0, 0, 0, 0, time.UTC),
		AddonIDs:   []int64{10},
	}

	properties.On("GetByID", ctx, int64(1)).Return(testProperty(), nil).Twice()
	fees.On("GetWithHierarchy", ctx, int64(1)).Return(nil, feeRepo.ErrFeeConfigNotFound).Twice()
	addons.On("ListActive", ctx).Return(testCatalog(), nil).Twice()

	first, err := uc.Execute(ctx, req)
	require.NoError(t, err)

	second, err := uc.Execute(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, first.Breakdown, second.Breakdown)
}

func TestQuoteStay_PropertyNotFound(t *testing.T) {
	uc, properties, _, _ := newTestUseCase()
	ctx := context.Background()

	req := &Request{
		PropertyID: 999,
		CheckIn:    time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2024, 6, 6, 0, 0, 0, 0, time.UTC),
	}

	properties.On("GetByID", ctx, int64(999)).Return(nil, propertyRepo.ErrPropertyNotFound).Once()

	resp, err := uc.Execute(ctx, req)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrPropertyNotFound)
}

func TestQuoteStay_Validation(t *testing.T) {
	uc, _, _, _ := newTestUseCase()
	ctx := context.Background()

	tests := []struct {
		name string
		req  *Request
	}{
		{"нулевой propertyID", &Request{PropertyID: 0, CheckIn: time.Now(), CheckOut: time.Now()}},
		{"пустая дата заезда", &Request{PropertyID: 1, CheckOut: time.Now()}},
		{"пустая дата выезда", &Request{PropertyID: 1, CheckIn: time.Now()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := uc.Execute(ctx, tt.req)
			assert.Nil(t, resp)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestQuoteStay_FeeRepoFailure(t *testing.T) {
	uc, properties, _, fees := newTestUseCase()
	ctx := context.Background()

	req := &Request{
		PropertyID: 1,
		CheckIn:    time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2024, 6, 6, 0, 0, 0, 0, time.UTC),
	}

	properties.On("GetByID", ctx, int64(1)).Return(testProperty(), nil).Once()
	fees.On("GetWithHierarchy", ctx, int64(1)).Return(nil, errors.New("connection refused")).Once()

	resp, err := uc.Execute(ctx, req)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrInternal)
}
