package domain

// Default fee configuration values
// Используются, когда для объекта нет записи в fee_config и значения не заданы в config.toml
const (
	DefaultCleaningFee    = 60.0
	DefaultServiceFeeRate = 0.12
)

// Business validation constants
const (
	MinServiceFeeRate = 0.0
	MaxServiceFeeRate = 0.5
	MinCleaningFee    = 0.0
	MaxCleaningFee    = 10000.0

	MaxStayNights = 365 // 1 year

	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	DateFormat  = "2006-01-02" // YYYY-MM-DD
	MonthFormat = "2006-01"    // YYYY-MM
)

// InactiveStatuses список статусов, не блокирующих доступность объекта
// Используется для фильтрации при проверке занятости дат
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
}

// BlockingStatuses список статусов, занимающих даты объекта
var BlockingStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}
