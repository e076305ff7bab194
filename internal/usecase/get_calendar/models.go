package get_calendar

import "time"

// Request модель запроса календаря на месяц
type Request struct {
	PropertyID int64
	Month      time.Time // Любой день внутри запрашиваемого месяца
}

// Response модель ответа с календарем на месяц
type Response struct {
	PropertyID int64
	Month      time.Time // Первый день месяца
	Days       []Day     // По одному элементу на каждый день месяца
}

// Day состояние одного дня календарной сетки
type Day struct {
	Date        time.Time
	Occupied    bool    // Занят блокирующим бронированием (ночь)
	Unavailable bool    // Недоступен для заезда (прошлое, вне окна или занят)
	BookingIDs  []int64 // Брони, затрагивающие день (включая день выезда)
}
