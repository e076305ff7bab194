package check_availability

import "time"

// Request модель запроса на проверку доступности
// Либо Date (проверка одного дня), либо CheckIn+CheckOut (проверка диапазона)
type Request struct {
	PropertyID int64
	Date       *time.Time // Проверка одного дня
	CheckIn    *time.Time // Проверка диапазона: заезд
	CheckOut   *time.Time // Проверка диапазона: выезд
}

// IsRangeCheck returns true if the request checks a date range
func (r *Request) IsRangeCheck() bool {
	return r.Date == nil
}

// Response модель ответа о доступности
type Response struct {
	PropertyID int64
	Date       *time.Time
	CheckIn    *time.Time
	CheckOut   *time.Time
	Available  bool
	// Количество блокирующих броней, пересекающихся с запрошенным диапазоном
	// Заполняется только при проверке диапазона
	ConflictCount int
}
