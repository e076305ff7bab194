package domain

import "time"

// DateRange интервал проживания с точностью до календарного дня
// CheckIn и CheckOut всегда нормализованы к полуночи (время суток игнорируется)
//
// Бронирование занимает ночи полуинтервала [CheckIn, CheckOut):
// день выезда не потребляется, поэтому выезд и следующий заезд
// могут приходиться на одну дату (back-to-back бронирования разрешены)
type DateRange struct {
	CheckIn  time.Time
	CheckOut time.Time
}

// NewDateRange создает диапазон, нормализуя обе даты к началу дня
func NewDateRange(checkIn, checkOut time.Time) DateRange {
	return DateRange{
		CheckIn:  DayOf(checkIn),
		CheckOut: DayOf(checkOut),
	}
}

// IsValid проверяет структурную корректность диапазона (CheckIn <= CheckOut)
// Диапазон нулевой длины корректен, но дает ноль оплачиваемых ночей
func (r DateRange) IsValid() bool {
	return !r.CheckIn.IsZero() && !r.CheckOut.IsZero() && !r.CheckOut.Before(r.CheckIn)
}

// Nights возвращает количество оплачиваемых ночей
// Диапазон с CheckOut <= CheckIn дает ноль ночей
func (r DateRange) Nights() int {
	nights := DaysBetween(r.CheckIn, r.CheckOut)
	if nights < 0 {
		return 0
	}
	return nights
}

// HasNights проверяет, что диапазон охватывает хотя бы одну ночь
func (r DateRange) HasNights() bool {
	return r.Nights() > 0
}

// OccupiesDay проверяет, что день занят этим диапазоном
// Полуинтервал [CheckIn, CheckOut): день выезда НЕ занят
func (r DateRange) OccupiesDay(day time.Time) bool {
	d := DayOf(day)
	return !d.Before(r.CheckIn) && d.Before(r.CheckOut)
}

// TouchesDay проверяет, что день затронут этим диапазоном, включая день выезда
// Используется для отображения в календаре, не для проверки доступности
func (r DateRange) TouchesDay(day time.Time) bool {
	d := DayOf(day)
	return !d.Before(r.CheckIn) && !d.After(r.CheckOut)
}

// Overlaps проверяет пересечение занятых ночей двух диапазонов
// Полуинтервалы пересекаются только при реальном наложении:
// если один диапазон заканчивается там, где начинается другой — это НЕ пересечение
//
// Примеры:
// - [июл 05, июл 10) и [июл 08, июл 12) → ЕСТЬ пересечение (ночи 08, 09)
// - [июл 05, июл 10) и [июл 10, июл 12) → НЕТ пересечения (back-to-back)
func (r DateRange) Overlaps(other DateRange) bool {
	return r.CheckIn.Before(other.CheckOut) && other.CheckIn.Before(r.CheckOut)
}

// Days возвращает занятые дни диапазона ([CheckIn, CheckOut), без дня выезда)
func (r DateRange) Days() []time.Time {
	nights := r.Nights()
	if nights <= 0 {
		return []time.Time{}
	}

	days := make([]time.Time, 0, nights)
	for day := r.CheckIn; day.Before(r.CheckOut); day = day.AddDate(0, 0, 1) {
		days = append(days, day)
	}
	return days
}

// DayOf нормализует момент времени к началу календарного дня
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay проверяет, что два момента времени относятся к одному календарному дню
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// DaysBetween возвращает количество календарных границ дней между from и to
// Отрицательно, если to раньше from
// Считается в UTC, чтобы переводы часов не ломали арифметику дней
func DaysBetween(from, to time.Time) int {
	a := DayOf(from)
	b := DayOf(to)
	utcA := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	utcB := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(utcB.Sub(utcA).Hours() / 24)
}

// IsDayInPast проверяет, что день строго раньше сегодняшнего
// Сегодняшний день прошедшим не считается
func IsDayInPast(day, now time.Time) bool {
	return DayOf(day).Before(DayOf(now))
}
