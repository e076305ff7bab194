package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testProperty() *Property {
	return &Property{
		ID:            1,
		Name:          "Seaside Cabin",
		NightlyRate:   299,
		MaxGuests:     4,
		AvailableFrom: day(2024, time.January, 1),
		AvailableTo:   day(2024, time.December, 31),
	}
}

func confirmedBooking(checkIn, checkOut time.Time) *Booking {
	return &Booking{
		ID:         100,
		PropertyID: 1,
		Range:      NewDateRange(checkIn, checkOut),
		Status:     StatusConfirmed,
	}
}

func TestIsDateUnavailable(t *testing.T) {
	now := day(2024, time.June, 15)
	property := testProperty()
	bookings := []*Booking{
		confirmedBooking(day(2024, time.July, 5), day(2024, time.July, 10)),
	}

	tests := []struct {
		name     string
		day      time.Time
		expected bool
	}{
		{"past day unavailable", day(2024, time.June, 14), true},
		{"today available", day(2024, time.June, 15), false},
		{"free future day available", day(2024, time.June, 20), false},
		{"before bookable window", day(2023, time.December, 31), true},
		{"after bookable window", day(2025, time.January, 1), true},
		{"occupied by booking", day(2024, time.July, 7), true},
		{"check-in day occupied", day(2024, time.July, 5), true},
		{"check-out day free", day(2024, time.July, 10), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsDateUnavailable(tt.day, now, property, bookings))
		})
	}
}

func TestIsDateUnavailable_StatusFiltering(t *testing.T) {
	now := day(2024, time.June, 15)
	property := testProperty()
	target := day(2024, time.July, 7)

	tests := []struct {
		name     string
		status   BookingStatus
		expected bool
	}{
		{"pending blocks", StatusPending, true},
		{"confirmed blocks", StatusConfirmed, true},
		{"cancelled never blocks", StatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			booking := confirmedBooking(day(2024, time.July, 5), day(2024, time.July, 10))
			booking.Status = tt.status

			result := IsDateUnavailable(target, now, property, []*Booking{booking})
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestIsRangeBookable(t *testing.T) {
	now := day(2024, time.June, 15)
	property := testProperty()
	bookings := []*Booking{
		confirmedBooking(day(2024, time.July, 5), day(2024, time.July, 10)),
	}

	tests := []struct {
		name     string
		r        DateRange
		expected bool
	}{
		{
			name:     "free range bookable",
			r:        NewDateRange(day(2024, time.August, 1), day(2024, time.August, 5)),
			expected: true,
		},
		{
			name:     "range inside existing booking not bookable",
			r:        NewDateRange(day(2024, time.July, 6), day(2024, time.July, 8)),
			expected: false,
		},
		{
			name:     "partial overlap not bookable",
			r:        NewDateRange(day(2024, time.July, 8), day(2024, time.July, 12)),
			expected: false,
		},
		{
			name: "back-to-back check-in on existing check-out day bookable",
			// Бронирование A заканчивается 10-го, заезд B 10-го разрешен
			r:        NewDateRange(day(2024, time.July, 10), day(2024, time.July, 12)),
			expected: true,
		},
		{
			name: "check-out on existing check-in day bookable",
			// Выезд 5-го, заезд существующей брони 5-го: ночи 2,3,4 свободны
			r:        NewDateRange(day(2024, time.July, 2), day(2024, time.July, 5)),
			expected: true,
		},
		{
			name:     "zero-night range not bookable",
			r:        NewDateRange(day(2024, time.August, 1), day(2024, time.August, 1)),
			expected: false,
		},
		{
			name:     "range in the past not bookable",
			r:        NewDateRange(day(2024, time.June, 1), day(2024, time.June, 5)),
			expected: false,
		},
		{
			name:     "range starting today bookable",
			r:        NewDateRange(day(2024, time.June, 15), day(2024, time.June, 17)),
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsRangeBookable(tt.r, now, property, bookings))
		})
	}
}

func TestFindConflictingBookings(t *testing.T) {
	bookingA := confirmedBooking(day(2024, time.July, 5), day(2024, time.July, 10))
	cancelled := confirmedBooking(day(2024, time.July, 12), day(2024, time.July, 15))
	cancelled.Status = StatusCancelled

	bookings := []*Booking{bookingA, cancelled}

	conflicts := FindConflictingBookings(
		NewDateRange(day(2024, time.July, 8), day(2024, time.July, 14)),
		bookings,
	)

	// Отмененное бронирование конфликтом не считается
	assert.Len(t, conflicts, 1)
	assert.Equal(t, bookingA.ID, conflicts[0].ID)

	noConflicts := FindConflictingBookings(
		NewDateRange(day(2024, time.July, 10), day(2024, time.July, 12)),
		bookings,
	)
	assert.Empty(t, noConflicts)
}
