package domain

import "time"

// Property represents a rental property in the system
type Property struct {
	ID            int64
	HostID        int64 // Владелец объекта (id в GuestService)
	Name          string
	NightlyRate   float64
	MaxGuests     int
	AvailableFrom time.Time // Начало окна бронирования (включительно)
	AvailableTo   time.Time // Конец окна бронирования (включительно)
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsWithinBookableWindow проверяет, что день попадает в окно бронирования объекта
// Обе границы окна включены
func (p *Property) IsWithinBookableWindow(day time.Time) bool {
	d := DayOf(day)
	return !d.Before(DayOf(p.AvailableFrom)) && !d.After(DayOf(p.AvailableTo))
}

// IsHost проверяет, что гость является владельцем объекта
func (p *Property) IsHost(guestID int64) bool {
	return p.HostID == guestID
}

// FitsGuests returns true if the property accommodates the requested guest count
func (p *Property) FitsGuests(count int) bool {
	return count > 0 && count <= p.MaxGuests
}
