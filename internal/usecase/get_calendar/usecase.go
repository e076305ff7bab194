package get_calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tomrobak/vacaflow-booking-service/internal/domain"
	propertyRepo "github.com/tomrobak/vacaflow-booking-service/internal/infra/storage/property"
)

// UseCase use case получения календаря занятости на месяц
type UseCase struct {
	bookingRepo  BookingRepository
	propertyRepo PropertyRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	propertyRepo PropertyRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		propertyRepo: propertyRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения календаря
// Индекс день -> брони строится одним проходом по списку броней,
// а не фильтрацией всего списка для каждой ячейки сетки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetCalendar: property=%d, month=%s",
		req.PropertyID, req.Month.Format(domain.MonthFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetCalendar: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем объект размещения
	property, err := uc.propertyRepo.GetByID(ctx, req.PropertyID)
	if err != nil {
		if errors.Is(err, propertyRepo.ErrPropertyNotFound) {
			uc.logger.Warn("GetCalendar: property id=%d not found", req.PropertyID)
			return nil, ErrPropertyNotFound
		}
		uc.logger.Error("GetCalendar: failed to get property id=%d: %v", req.PropertyID, err)
		return nil, fmt.Errorf("%w: failed to get property: %v", ErrInternal, err)
	}

	// 4. Получаем брони, затрагивающие месяц
	firstDay := time.Date(req.Month.Year(), req.Month.Month(), 1, 0, 0, 0, 0, req.Month.Location())
	lastDay := firstDay.AddDate(0, 1, -1)

	filter := domain.PropertyBookingsFilter{
		PropertyID:       req.PropertyID,
		StartDate:        &firstDay,
		EndDate:          &lastDay,
		IncludeCancelled: false,
	}

	bookings, err := uc.bookingRepo.GetByPropertyWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetCalendar: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 5. Строим индекс месяца и раскладываем по дням
	idx := domain.BuildMonthIndex(firstDay, bookings)

	days := make([]Day, 0, idx.DaysInMonth())
	for d := 1; d <= idx.DaysInMonth(); d++ {
		date := firstDay.AddDate(0, 0, d-1)

		touching := idx.BookingsOn(d)
		bookingIDs := make([]int64, 0, len(touching))
		for _, b := range touching {
			bookingIDs = append(bookingIDs, b.ID)
		}

		days = append(days, Day{
			Date:        date,
			Occupied:    idx.IsOccupied(d),
			Unavailable: domain.IsDateUnavailable(date, now, property, bookings),
			BookingIDs:  bookingIDs,
		})
	}

	uc.logger.Info("GetCalendar: property=%d month=%s days=%d bookings=%d",
		req.PropertyID, firstDay.Format(domain.MonthFormat), len(days), len(bookings))

	return &Response{
		PropertyID: req.PropertyID,
		Month:      firstDay,
		Days:       days,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.PropertyID <= 0 {
		return fmt.Errorf("%w: propertyID must be positive", ErrInvalidInput)
	}

	if req.Month.IsZero() {
		return fmt.Errorf("%w: month is required", ErrInvalidInput)
	}

	return nil
}
