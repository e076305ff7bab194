package domain

import "time"

// BookingsForDate возвращает бронирования, затрагивающие указанный день
// Включительно по обеим границам: бронирование видно в календаре и в день выезда
// Отмененные бронирования не возвращаются
func BookingsForDate(day time.Time, bookings []*Booking) []*Booking {
	result := make([]*Booking, 0)

	for _, booking := range bookings {
		if booking.IsCancelled() {
			continue
		}
		if booking.Range.TouchesDay(day) {
			result = append(result, booking)
		}
	}

	return result
}

// MonthIndex индекс день -> бронирования для отрисовки календарной сетки
// Строится одним проходом по списку бронирований, чтобы не фильтровать
// весь список заново для каждой ячейки календаря
type MonthIndex struct {
	month    time.Time // Первый день месяца
	daysIn   int
	byDay    map[int][]*Booking // День месяца -> затрагивающие бронирования
	occupied map[int]bool       // День месяца -> занят ли блокирующим бронированием
}

// BuildMonthIndex строит индекс бронирований на месяц
// month может быть любым днем внутри месяца
//
// Для каждого бронирования диапазон обрезается границами месяца и
// раскладывается по дням: затронутые дни (включая день выезда) попадают
// в листинг, занятые ночи (полуинтервал) — в карту занятости
func BuildMonthIndex(month time.Time, bookings []*Booking) *MonthIndex {
	firstDay := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
	nextMonth := firstDay.AddDate(0, 1, 0)
	daysIn := DaysBetween(firstDay, nextMonth)

	idx := &MonthIndex{
		month:    firstDay,
		daysIn:   daysIn,
		byDay:    make(map[int][]*Booking),
		occupied: make(map[int]bool),
	}

	for _, booking := range bookings {
		if booking.IsCancelled() {
			continue
		}

		// Обрезаем затронутые дни [CheckIn, CheckOut] границами месяца
		from := booking.Range.CheckIn
		if from.Before(firstDay) {
			from = firstDay
		}
		to := booking.Range.CheckOut
		if to.After(nextMonth) {
			to = nextMonth
		}

		for day := from; !day.After(to) && day.Before(nextMonth); day = day.AddDate(0, 0, 1) {
			d := day.Day()
			idx.byDay[d] = append(idx.byDay[d], booking)
			if booking.Blocks() && booking.Range.OccupiesDay(day) {
				idx.occupied[d] = true
			}
		}
	}

	return idx
}

// Month возвращает первый день индексируемого месяца
func (m *MonthIndex) Month() time.Time {
	return m.month
}

// DaysInMonth возвращает количество дней в индексируемом месяце
func (m *MonthIndex) DaysInMonth() int {
	return m.daysIn
}

// BookingsOn возвращает бронирования, затрагивающие указанный день месяца (1-31)
func (m *MonthIndex) BookingsOn(day int) []*Booking {
	return m.byDay[day]
}

// IsOccupied проверяет, занят ли день месяца блокирующим бронированием
// День выезда занятым не считается
func (m *MonthIndex) IsOccupied(day int) bool {
	return m.occupied[day]
}
