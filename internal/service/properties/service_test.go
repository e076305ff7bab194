package properties

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tomrobak/vacaflow-booking-service/internal/domain"
	propertyRepo "github.com/tomrobak/vacaflow-booking-service/internal/infra/storage/property"
	"github.com/tomrobak/vacaflow-booking-service/internal/service/properties/models"
	"github.com/tomrobak/vacaflow-booking-service/pkg/ptr"
)

type mockPropertyRepo struct {
	mock.Mock
}

func (m *mockPropertyRepo) Create(ctx context.Context, property *domain.Property) (*domain.Property, error) {
	args := m.Called(ctx, property)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Property), args.Error(1)
}

func (m *mockPropertyRepo) GetByID(ctx context.Context, id int64) (*domain.Property, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Property), args.Error(1)
}

func (m *mockPropertyRepo) List(ctx context.Context) ([]*domain.Property, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Property), args.Error(1)
}

func (m *mockPropertyRepo) Update(ctx context.Context, property *domain.Property) error {
	return m.Called(ctx, property).Error(0)
}

type noopLogger struct{}

func (l *noopLogger) Info(format string, v ...interface{})  {}
func (l *noopLogger) Warn(format string, v ...interface{})  {}
func (l *noopLogger) Error(format string, v ...interface{}) {}

func newTestService() (*Service, *mockPropertyRepo) {
	repo := new(mockPropertyRepo)
	return NewService(repo, &noopLogger{}), repo
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testProperty() *domain.Property {
	return &domain.Property{
		ID:            1,
		HostID:        7,
		Name:          "Домик у озера",
		NightlyRate:   299.0,
		MaxGuests:     6,
		AvailableFrom: day(2024, time.January, 1),
		AvailableTo:   day(2025, time.December, 31),
	}
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("успешное создание", func(t *testing.T) {
		svc, repo := newTestService()

		repo.On("Create", ctx, mock.MatchedBy(func(p *domain.Property) bool {
			return p.HostID == 7 && p.Name == "Домик у озера" && p.NightlyRate == 299.0
		})).Return(testProperty(), nil)

		result, err := svc.Create(ctx, &models.CreatePropertyRequest{
			HostID:        7,
			Name:          "Домик у озера",
			NightlyRate:   299.0,
			MaxGuests:     6,
			AvailableFrom: "2024-01-01",
			AvailableTo:   "2025-12-31",
		})
		require.NoError(t, err)

		assert.Equal(t, int64(1), result.ID)
		assert.Equal(t, int64(7), result.HostID)
		assert.Equal(t, "2024-01-01", result.AvailableFrom)
		repo.AssertExpectations(t)
	})

	t.Run("валидация запроса", func(t *testing.T) {
		svc, repo := newTestService()

		base := func() *models.CreatePropertyRequest {
			return &models.CreatePropertyRequest{
				HostID:        7,
				Name:          "Домик у озера",
				NightlyRate:   299.0,
				MaxGuests:     6,
				AvailableFrom: "2024-01-01",
				AvailableTo:   "2025-12-31",
			}
		}

		cases := []struct {
			name   string
			mutate func(r *models.CreatePropertyRequest)
		}{
			{"нулевой hostId", func(r *models.CreatePropertyRequest) { r.HostID = 0 }},
			{"пустое имя", func(r *models.CreatePropertyRequest) { r.Name = "" }},
			{"нулевая ставка", func(r *models.CreatePropertyRequest) { r.NightlyRate = 0 }},
			{"нулевая вместимость", func(r *models.CreatePropertyRequest) { r.MaxGuests = 0 }},
			{"кривой формат даты", func(r *models.CreatePropertyRequest) { r.AvailableFrom = "01.01.2024" }},
			{"окно задом наперед", func(r *models.CreatePropertyRequest) {
				r.AvailableFrom = "2025-12-31"
				r.AvailableTo = "2024-01-01"
			}},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				req := base()
				tc.mutate(req)

				_, err := svc.Create(ctx, req)
				assert.ErrorIs(t, err, ErrInvalidInput)
			})
		}

		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("хост обновляет объект", func(t *testing.T) {
		svc, repo := newTestService()

		repo.On("GetByID", ctx, int64(1)).Return(testProperty(), nil)
		repo.On("Update", ctx, mock.MatchedBy(func(p *domain.Property) bool {
			return p.ID == 1 && p.NightlyRate == 350.0 && p.Name == "Домик у озера"
		})).Return(nil)

		result, err := svc.Update(ctx, 1, &models.UpdatePropertyRequest{
			GuestID:     7,
			NightlyRate: ptr.Ptr(350.0),
		})
		require.NoError(t, err)

		assert.Equal(t, 350.0, result.NightlyRate)
		repo.AssertExpectations(t)
	})

	t.Run("не хост получает отказ", func(t *testing.T) {
		svc, repo := newTestService()

		repo.On("GetByID", ctx, int64(1)).Return(testProperty(), nil)

		_, err := svc.Update(ctx, 1, &models.UpdatePropertyRequest{
			GuestID: 42,
			Name:    ptr.Ptr("Чужой домик"),
		})
		assert.ErrorIs(t, err, ErrAccessDenied)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("объект не найден", func(t *testing.T) {
		svc, repo := newTestService()

		repo.On("GetByID", ctx, int64(99)).Return(nil, propertyRepo.ErrPropertyNotFound)

		_, err := svc.Update(ctx, 99, &models.UpdatePropertyRequest{GuestID: 7})
		assert.ErrorIs(t, err, ErrPropertyNotFound)
	})

	t.Run("обновление ломает окно доступности", func(t *testing.T) {
		svc, repo := newTestService()

		repo.On("GetByID", ctx, int64(1)).Return(testProperty(), nil)

		_, err := svc.Update(ctx, 1, &models.UpdatePropertyRequest{
			GuestID:     7,
			AvailableTo: ptr.Ptr("2023-01-01"),
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestList(t *testing.T) {
	ctx := context.Background()

	t.Run("список объектов", func(t *testing.T) {
		svc, repo := newTestService()

		repo.On("List", ctx).Return([]*domain.Property{testProperty()}, nil)

		result, err := svc.List(ctx)
		require.NoError(t, err)
		require.Len(t, result.Properties, 1)
		assert.Equal(t, int64(1), result.Properties[0].ID)
	})

	t.Run("пустой каталог", func(t *testing.T) {
		svc, repo := newTestService()

		repo.On("List", ctx).Return([]*domain.Property{}, nil)

		result, err := svc.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, result.Properties)
	})
}
