package create_booking

import (
	"fmt"
	"time"

	"github.com/tomrobak/vacaflow-booking-service/internal/domain"
)

// validateRequest валидирует структурную корректность запроса
// Бизнес-проверки дат (прошлое, окно объекта, занятость) выполняются отдельно
func validateRequest(req *Request) error {
	if req.GuestID <= 0 {
		return fmt.Errorf("%w: guestID must be positive", ErrInvalidInput)
	}

	if req.PropertyID <= 0 {
		return fmt.Errorf("%w: propertyID must be positive", ErrInvalidInput)
	}

	if req.CheckIn.IsZero() {
		return fmt.Errorf("%w: checkIn is required", ErrInvalidInput)
	}

	if req.CheckOut.IsZero() {
		return fmt.Errorf("%w: checkOut is required", ErrInvalidInput)
	}

	if req.GuestCount <= 0 {
		return fmt.Errorf("%w: guestCount must be positive", ErrInvalidInput)
	}

	return nil
}

// validateRange проверяет бизнес-корректность диапазона проживания
func validateRange(r domain.DateRange, now time.Time, property *domain.Property) error {
	if !r.HasNights() {
		return ErrNoNightsSelected
	}

	if r.Nights() > domain.MaxStayNights {
		return fmt.Errorf("%w: at most %d nights", ErrStayTooLong, domain.MaxStayNights)
	}

	if domain.IsDayInPast(r.CheckIn, now) {
		return ErrDateInPast
	}

	// Занятые ночи [CheckIn, CheckOut) должны попадать в окно бронирования
	for _, day := range r.Days() {
		if !property.IsWithinBookableWindow(day) {
			return ErrOutsideBookableWindow
		}
	}

	return nil
}
