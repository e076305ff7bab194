package create_booking

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
	"github.com/tomrobak/vacaflow-booking-service/internal/integrations/guestservice"
)

type mockBookingRepo struct {
	mock.Mock
}

// Create при nil-результате в ожидании возвращает переданную бронь (эхо)
func (m *mockBookingRepo) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	args := m.Called(ctx, booking)
	if err := args.Error(1); err != nil {
		return nil, err
	}
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Booking), nil
	}
	return booking, nil
}

func (m *mockBookingRepo) GetByPropertyWithFilter(ctx context.Context, filter domain.PropertyBookingsFilter) ([]*domain.Booking, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Booking), args.Error(1)
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

type mockGuestClient struct {
	mock.Mock
}

func (m *mockGuestClient) GetGuestWithGracefulDegradation(ctx context.Context, guestID int64) (*guestservice.Guest, error) {
	args := m.Called(ctx, guestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*guestservice.Guest), args.Error(1)
}

// mockTxManager выполняет функцию напрямую, без реальной транзакции
type mockTxManager struct{}

func (m *mockTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type noopLogger struct{}

func (l *noopLogger) Info(format string, v ...interface{})  {}
func (l *noopLogger) Warn(format string, v ...interface{})  {}
func (l *noopLogger) Error(format string, v ...interface{}) {}

type testDeps struct {
	bookingRepo  *mockBookingRepo
	propertyRepo *mockPropertyRepo
	addonRepo    *mockAddonRepo
	feeRepo      *mockFeeRepo
	guestClient  *mockGuestClient
	uc           *UseCase
}

func newTestUseCase(now time.Time) *testDeps {
	deps := &testDeps{
		bookingRepo:  new(mockBookingRepo),
		propertyRepo: new(mockPropertyRepo),
		addonRepo:    new(mockAddonRepo),
		feeRepo:      new(mockFeeRepo),
		guestClient:  new(mockGuestClient),
	}

	deps.uc = NewUseCase(
		deps.bookingRepo,
		deps.propertyRepo,
		deps.addonRepo,
		deps.feeRepo,
		deps.guestClient,
		&mockTxManager{},
		domain.FeeConfig{CleaningFee: domain.DefaultCleaningFee, ServiceFeeRate: domain.DefaultServiceFeeRate},
		&noopLogger{},
	)
	deps.uc.timeProvider = &fixedTimeProvider{now: now}

	return deps
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

func TestCreateBooking_Success(t *testing.T) {
	now := time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC)
	deps := newTestUseCase(now)
	ctx := context.Background()

	req := &Request{
		GuestID:    42,
		PropertyID: 1,
		CheckIn:    time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2024, 6, 6, 0, 0, 0, 0, time.UTC),
		GuestCount: 2,
		AddonIDs:   []int64{10, 11},
	}

	guestName := "Anna Smith"
	guestEmail := "anna@example.com"

	deps.propertyRepo.On("GetByID", ctx, int64(1)).Return(testProperty(), nil).Once()
	deps.guestClient.On("GetGuestWithGracefulDegradation", ctx, int64(42)).
		Return(&guestservice.Guest{ID: 42, Name: guestName, Email: guestEmail}, nil).Once()
	deps.addonRepo.On("ListActive", ctx).Return(testCatalog(), nil).Once()
	deps.feeRepo.On("GetWithHierarchy", ctx, int64(1)).Return(nil, feeRepo.ErrFeeConfigNotFound).Once()
	deps.bookingRepo.On("GetByPropertyWithFilter", ctx, mock.AnythingOfType("domain.PropertyBookingsFilter")).
		Return([]*domain.Booking{}, nil).Once()
	deps.bookingRepo.On("Create", ctx, mock.AnythingOfType("*domain.Booking")).
		Run(func(args mock.Arguments) {
			b := args.Get(1).(*domain.Booking)
			b.ID = 100
		}).
		Return(nil, nil).Once()

	resp, err := deps.uc.Execute(ctx, req)
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, int64(100), resp.ID)
	assert.NotEmpty(t, resp.Reference)
	assert.Equal(t, string(domain.StatusPending), resp.Status)

	// 5 ночей * 299 + дополнения 75 + уборка 60 + сервисный сбор 179
	assert.Equal(t, 5, resp.Breakdown.Nights)
	assert.Equal(t, 1495.0, resp.Breakdown.Subtotal)
	assert.Equal(t, 75.0, resp.Breakdown.AddonsTotal)
	assert.Equal(t, 60.0, resp.Breakdown.CleaningFee)
	assert.Equal(t, 179.0, resp.Breakdown.ServiceFee)
	assert.Equal(t, 1809.0, resp.Breakdown.Total)

	require.NotNil(t, resp.GuestName)
	assert.Equal(t, guestName, *resp.GuestName)
	assert.Equal(t, []int64{10, 11}, resp.AddonIDs)

	deps.bookingRepo.AssertExpectations(t)
	deps.propertyRepo.AssertExpectations(t)
	deps.guestClient.AssertExpectations(t)
}

func TestCreateBooking_PropertyFeeConfigOverridesDefaults(t *testing.T) {
	now := time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC)
	deps := newTestUseCase(now)
	ctx := context.Background()

	req := &Request{
		GuestID:    42,
		PropertyID: 1,
		CheckIn:    time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC),
		GuestCount: 2,
	}

	propID := int64(1)
	deps.propertyRepo.On("GetByID", ctx, int64(1)).Return(testProperty(), nil).Once()
	deps.guestClient.On("GetGuestWithGracefulDegradation", ctx, int64(42)).
		Return(&guestservice.Guest{ID: 42, Name: "Anna", Email: "anna@example.com"}, nil).Once()
	deps.addonRepo.On("ListActive", ctx).Return([]*domain.Addon{}, nil).Once()
	deps.feeRepo.On("GetWithHierarchy", ctx, int64(1)).
		Return(&domain.PropertyFeeConfig{ID: 5, PropertyID: &propID, CleaningFee: 100.0, ServiceFeeRate: 0.10}, nil).Once()
	deps.bookingRepo.On("GetByPropertyWithFilter", ctx, mock.Anything).Return([]*domain.Booking{}, nil).Once()
	deps.bookingRepo.On("Create", ctx, mock.Anything).Return(nil, nil).Once()

	resp, err := deps.uc.Execute(ctx, req)
	require.NoError(t, err)

	// 2 ночи * 299 = 598, сервисный сбор round(598 * 0.10) = 60
	assert.Equal(t, 100.0, resp.Breakdown.CleaningFee)
	assert.Equal(t, 60.0, resp.Breakdown.ServiceFee)
	assert.Equal(t, 758.0, resp.Breakdown.Total)
}

func TestCreateBooking_DatesNotAvailable(t *testing.T) {
	now := time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC)
	deps := newTestUseCase(now)
	ctx := context.Background()

	req := &Request{
		GuestID:    42,
		PropertyID: 1,
		CheckIn:    time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2024, 6, 6, 0, 0, 0, 0, time.UTC),
		GuestCount: 2,
	}

	existing := &domain.Booking{
		ID:         7,
		PropertyID: 1,
		Range: domain.NewDateRange(
			time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 6, 8, 0, 0, 0, 0, time.UTC),
		),
		Status: domain.StatusConfirmed,
	}

	deps.propertyRepo.On("GetByID", ctx, int64(1)).Return(testProperty(), nil).Once()
	deps.guestClient.On("GetGuestWithGracefulDegradation", ctx, int64(42)).
		Return(&guestservice.Guest{ID: 42, Name: "Anna", Email: "anna@example.com"}, nil).Once()
	deps.addonRepo.On("ListActive", ctx).Return([]*domain.Addon{}, nil).Once()
	deps.feeRepo.On("GetWithHierarchy", ctx, int64(1)).Return(nil, feeRepo.ErrFeeConfigNotFound).Once()
	deps.bookingRepo.On("GetByPropertyWithFilter", ctx, mock.Anything).
		Return([]*domain.Booking{existing}, nil).Once()

	resp, err := deps.uc.Execute(ctx, req)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrDatesNotAvailable)

	deps.bookingRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateBooking_BackToBackAllowed(t *testing.T) {
	now := time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC)
	deps := newTestUseCase(now)
	ctx := context.Background()

	// Заезд в день выезда существующей брони
	req := &Request{
		GuestID:    42,
		PropertyID: 1,
		CheckIn:    time.Date(2024, 6, 6, 0, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC),
		GuestCount: 2,
	}

	existing := &domain.Booking{
		ID:         7,
		PropertyID: 1,
		Range: domain.NewDateRange(
			time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 6, 6, 0, 0, 0, 0, time.UTC),
		),
		Status: domain.StatusConfirmed,
	}

	deps.propertyRepo.On("GetByID", ctx, int64(1)).Return(testProperty(), nil).Once()
	deps.guestClient.On("GetGuestWithGracefulDegradation", ctx, int64(42)).
		Return(&guestservice.Guest{ID: 42, Name: "Anna", Email: "anna@example.com"}, nil).Once()
	deps.addonRepo.On("ListActive", ctx).Return([]*domain.Addon{}, nil).Once()
	deps.feeRepo.On("GetWithHierarchy", ctx, int64(1)).Return(nil, feeRepo.ErrFeeConfigNotFound).Once()
	deps.bookingRepo.On("GetByPropertyWithFilter", ctx, mock.Anything).
		Return([]*domain.Booking{existing}, nil).Once()
	deps.bookingRepo.On("Create", ctx, mock.Anything).Return(nil, nil).Once()

	resp, err := deps.uc.Execute(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Breakdown.Nights)
}

func TestCreateBooking_PropertyNotFound(t *testing.T) {
	now := time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC)
	deps := newTestUseCase(now)
	ctx := context.Background()

	req := &Request{
		GuestID:    42,
		PropertyID: 999,
		CheckIn:    time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2024, 6, 6, 0, 0, 0, 0, time.UTC),
		GuestCount: 2,
	}

	deps.propertyRepo.On("GetByID", ctx, int64(999)).Return(nil, propertyRepo.ErrPropertyNotFound).Once()

	resp, err := deps.uc.Execute(ctx, req)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrPropertyNotFound)
}

func TestCreateBooking_GuestNotFound(t *testing.T) {
	now := time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC)
	deps := newTestUseCase(now)
	ctx := context.Background()

	req := &Request{
		GuestID:    404,
		PropertyID: 1,
		CheckIn:    time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2024, 6, 6, 0, 0, 0, 0, time.UTC),
		GuestCount: 2,
	}

	deps.propertyRepo.On("GetByID", ctx, int64(1)).Return(testProperty(), nil).Once()
	deps.guestClient.On("GetGuestWithGracefulDegradation", ctx, int64(404)).
		Return(nil, guestservice.ErrGuestNotFound).Once()

	resp, err := deps.uc.Execute(ctx, req)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrGuestNotFound)
}

func TestCreateBooking_GuestServiceDegraded(t *testing.T) {
	now := time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC)
	deps := newTestUseCase(now)
	ctx := context.Background()

	req := &Request{
		GuestID:    42,
		PropertyID: 1,
		CheckIn:    time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2024, 6, 6, 0, 0, 0, 0, time.UTC),
		GuestCount: 2,
	}

	deps.propertyRepo.On("GetByID", ctx, int64(1)).Return(testProperty(), nil).Once()
	deps.guestClient.On("GetGuestWithGracefulDegradation", ctx, int64(42)).
		Return(nil, guestservice.ErrServiceDegraded).Once()
	deps.addonRepo.On("ListActive", ctx).Return([]*domain.Addon{}, nil).Once()
	deps.feeRepo.On("GetWithHierarchy", ctx, int64(1)).Return(nil, feeRepo.ErrFeeConfigNotFound).Once()
	deps.bookingRepo.On("GetByPropertyWithFilter", ctx, mock.Anything).Return([]*domain.Booking{}, nil).Once()
	deps.bookingRepo.On("Create", ctx, mock.Anything).Return(nil, nil).Once()

	// Бронирование создается без денормализованных данных гостя
	resp, err := deps.uc.Execute(ctx, req)
	require.NoError(t, err)
	assert.Nil(t, resp.GuestName)
	assert.Nil(t, resp.GuestEmail)
}

func TestCreateBooking_ExcessGuestCountAccepted(t *testing.T) {
	now := time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC)
	deps := newTestUseCase(now)
	ctx := context.Background()

	// Вместимость объекта 6, запрошено 10: принимаем с предупреждением
	req := &Request{
		GuestID:    42,
		PropertyID: 1,
		CheckIn:    time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC),
		GuestCount: 10,
	}

	deps.propertyRepo.On("GetByID", ctx, int64(1)).Return(testProperty(), nil).Once()
	deps.guestClient.On("GetGuestWithGracefulDegradation", ctx, int64(42)).
		Return(&guestservice.Guest{ID: 42, Name: "Anna", Email: "anna@example.com"}, nil).Once()
	deps.addonRepo.On("ListActive", ctx).Return([]*domain.Addon{}, nil).Once()
	deps.feeRepo.On("GetWithHierarchy", ctx, int64(1)).Return(nil, feeRepo.ErrFeeConfigNotFound).Once()
	deps.bookingRepo.On("GetByPropertyWithFilter", ctx, mock.Anything).Return([]*domain.Booking{}, nil).Once()
	deps.bookingRepo.On("Create", ctx, mock.Anything).Return(nil, nil).Once()

	resp, err := deps.uc.Execute(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, 10, resp.GuestCount)
}

func TestCreateBooking_UnknownAddonsIgnored(t *testing.T) {
	now := time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC)
	deps := newTestUseCase(now)
	ctx := context.Background()

	req := &Request{
		GuestID:    42,
		PropertyID: 1,
		CheckIn:    time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC),
		GuestCount: 2,
		AddonIDs:   []int64{10, 999},
	}

	deps.propertyRepo.On("GetByID", ctx, int64(1)).Return(testProperty(), nil).Once()
	deps.guestClient.On("GetGuestWithGracefulDegradation", ctx, int64(42)).
		Return(&guestservice.Guest{ID: 42, Name: "Anna", Email: "anna@example.com"}, nil).Once()
	deps.addonRepo.On("ListActive", ctx).Return(testCatalog(), nil).Once()
	deps.feeRepo.On("GetWithHierarchy", ctx, int64(1)).Return(nil, feeRepo.ErrFeeConfigNotFound).Once()
	deps.bookingRepo.On("GetByPropertyWithFilter", ctx, mock.Anything).Return([]*domain.Booking{}, nil).Once()
	deps.bookingRepo.On("Create", ctx, mock.Anything).Return(nil, nil).Once()

	resp, err := deps.uc.Execute(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, 45.0, resp.Breakdown.AddonsTotal)
	assert.Equal(t, []int64{10}, resp.AddonIDs)
}

func TestCreateBooking_InternalErrorOnRepoFailure(t *testing.T) {
	now := time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC)
	deps := newTestUseCase(now)
	ctx := context.Background()

	req := &Request{
		GuestID:    42,
		PropertyID: 1,
		CheckIn:    time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2024, 6, 6, 0, 0, 0, 0, time.UTC),
		GuestCount: 2,
	}

	deps.propertyRepo.On("GetByID", ctx, int64(1)).Return(nil, errors.New("connection refused")).Once()

	resp, err := deps.uc.Execute(ctx, req)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestKnownAddonIDs(t *testing.T) {
	catalog := testCatalog()

	assert.Equal(t, []int64{}, knownAddonIDs(nil, catalog))
	assert.Equal(t, []int64{10, 11}, knownAddonIDs([]int64{10, 11}, catalog))
	assert.Equal(t, []int64{10}, knownAddonIDs([]int64{10, 999}, catalog))
	// Дубликаты схлопываются
	assert.Equal(t, []int64{10}, knownAddonIDs([]int64{10, 10, 10}, catalog))
}
