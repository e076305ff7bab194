package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a property reservation in the system
type Booking struct {
	ID         int64
	Reference  string // Публичный код подтверждения (UUID)
	PropertyID int64
	GuestID    int64
	Range      DateRange
	GuestCount int
	Status     BookingStatus

	// Снимок цены на момент бронирования
	NightlyRate float64
	Nights      int
	Subtotal    float64
	AddonsTotal float64
	CleaningFee float64
	ServiceFee  float64
	TotalAmount float64

	// Denormalized data for history
	GuestName  *string
	GuestEmail *string
	AddonIDs   []int64

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Blocks returns true if the booking occupies its dates
// Pending и confirmed блокируют даты, cancelled — никогда
func (b *Booking) Blocks() bool {
	switch b.Status {
	case StatusPending, StatusConfirmed:
		return true
	case StatusCancelled:
		return false
	default:
		return false
	}
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanBeConfirmed returns true if the booking can be confirmed
func (b *Booking) CanBeConfirmed() bool {
	return b.Status == StatusPending
}

// CanTransitionTo проверяет допустимость перехода статуса
// Машина состояний: pending -> confirmed | cancelled; confirmed -> cancelled;
// cancelled — терминальный статус
func (b *Booking) CanTransitionTo(next BookingStatus) bool {
	switch b.Status {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCancelled
	case StatusCancelled:
		return false
	default:
		return false
	}
}

// ParseBookingStatus валидирует и конвертирует строку в BookingStatus
func ParseBookingStatus(s string) (BookingStatus, bool) {
	switch BookingStatus(s) {
	case StatusPending:
		return StatusPending, true
	case StatusConfirmed:
		return StatusConfirmed, true
	case StatusCancelled:
		return StatusCancelled, true
	default:
		return "", false
	}
}

// PropertyBookingsFilter фильтр для получения бронирований объекта
type PropertyBookingsFilter struct {
	PropertyID       int64          // Обязательный параметр
	StartDate        *time.Time     // Начало периода (опционально, если nil - без ограничения)
	EndDate          *time.Time     // Конец периода (опционально, если nil - без ограничения)
	Status           *BookingStatus // Фильтр по статусу (опционально)
	IncludeCancelled bool           // Включать ли отмененные бронирования
}
