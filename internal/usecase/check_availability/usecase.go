package check_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/tomrobak/vacaflow-booking-service/internal/domain"
	propertyRepo "github.com/tomrobak/vacaflow-booking-service/internal/infra/storage/property"
)

// UseCase use case проверки доступности дат объекта
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

// Execute выполняет use case проверки доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем объект размещения
	property, err := uc.propertyRepo.GetByID(ctx, req.PropertyID)
	if err != nil {
		if errors.Is(err, propertyRepo.ErrPropertyNotFound) {
			uc.logger.Warn("CheckAvailability: property id=%d not found", req.PropertyID)
			return nil, ErrPropertyNotFound
		}
		uc.logger.Error("CheckAvailability: failed to get property id=%d: %v", req.PropertyID, err)
		return nil, fmt.Errorf("%w: failed to get property: %v", ErrInternal, err)
	}

	// 4. Определяем проверяемый период и получаем затрагивающие его брони
	var window domain.DateRange
	if req.IsRangeCheck() {
		window = domain.NewDateRange(*req.CheckIn, *req.CheckOut)
	} else {
		d := domain.DayOf(*req.Date)
		window = domain.DateRange{CheckIn: d, CheckOut: d}
	}

	filter := domain.PropertyBookingsFilter{
		PropertyID:       req.PropertyID,
		StartDate:        &window.CheckIn,
		EndDate:          &window.CheckOut,
		IncludeCancelled: false,
	}

	bookings, err := uc.bookingRepo.GetByPropertyWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 5. Проверяем доступность
	if req.IsRangeCheck() {
		available := domain.IsRangeBookable(window, now, property, bookings)
		conflicts := domain.FindConflictingBookings(window, bookings)

		uc.logger.Info("CheckAvailability: property=%d range %s..%s available=%t conflicts=%d",
			req.PropertyID, window.CheckIn.Format(domain.DateFormat), window.CheckOut.Format(domain.DateFormat),
			available, len(conflicts))

		return &Response{
			PropertyID:    req.PropertyID,
			CheckIn:       &window.CheckIn,
			CheckOut:      &window.CheckOut,
			Available:     available,
			ConflictCount: len(conflicts),
		}, nil
	}

	available := !domain.IsDateUnavailable(window.CheckIn, now, property, bookings)

	uc.logger.Info("CheckAvailability: property=%d date=%s available=%t",
		req.PropertyID, window.CheckIn.Format(domain.DateFormat), available)

	return &Response{
		PropertyID: req.PropertyID,
		Date:       &window.CheckIn,
		Available:  available,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.PropertyID <= 0 {
		return fmt.Errorf("%w: propertyID must be positive", ErrInvalidInput)
	}

	if req.Date == nil {
		if req.CheckIn == nil || req.CheckOut == nil {
			return fmt.Errorf("%w: either date or checkIn+checkOut is required", ErrInvalidInput)
		}
		return nil
	}

	if req.CheckIn != nil || req.CheckOut != nil {
		return fmt.Errorf("%w: date and checkIn/checkOut are mutually exclusive", ErrInvalidInput)
	}

	return nil
}
