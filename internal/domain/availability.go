package domain

import "time"

// IsDateUnavailable проверяет, что день недоступен для бронирования
//
// День недоступен, если:
// - он строго раньше сегодняшнего (сегодняшний день всегда доступен)
// - он вне окна бронирования объекта [AvailableFrom, AvailableTo]
// - он занят любым блокирующим бронированием (полуинтервал, день выезда свободен)
//
// Отмененные бронирования даты не занимают
func IsDateUnavailable(day time.Time, now time.Time, property *Property, bookings []*Booking) bool {
	if IsDayInPast(day, now) {
		return true
	}

	if !property.IsWithinBookableWindow(day) {
		return true
	}

	for _, booking := range bookings {
		if !booking.Blocks() {
			continue
		}
		if booking.Range.OccupiesDay(day) {
			return true
		}
	}

	return false
}

// IsRangeBookable проверяет, что диапазон можно забронировать целиком
// Диапазон должен охватывать хотя бы одну ночь (CheckIn < CheckOut),
// и каждый занятый день [CheckIn, CheckOut) должен быть доступен
//
// День выезда не потребляется, поэтому заезд в день чужого выезда разрешен
func IsRangeBookable(r DateRange, now time.Time, property *Property, bookings []*Booking) bool {
	if !r.HasNights() {
		return false
	}

	for _, day := range r.Days() {
		if IsDateUnavailable(day, now, property, bookings) {
			return false
		}
	}

	return true
}

// FindConflictingBookings возвращает блокирующие бронирования, пересекающиеся
// с диапазоном по занятым ночам
// Используется для диагностики, когда IsRangeBookable вернул false
func FindConflictingBookings(r DateRange, bookings []*Booking) []*Booking {
	conflicts := make([]*Booking, 0)

	for _, booking := range bookings {
		if !booking.Blocks() {
			continue
		}
		if booking.Range.Overlaps(r) {
			conflicts = append(conflicts, booking)
		}
	}

	return conflicts
}
