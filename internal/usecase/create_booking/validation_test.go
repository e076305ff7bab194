package create_booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tomrobak/vacaflow-booking-service/internal/domain"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestValidateRequest(t *testing.T) {
	valid := func() *Request {
		return &Request{
			GuestID:    42,
			PropertyID: 1,
			CheckIn:    day(2024, 6, 1),
			CheckOut:   day(2024, 6, 6),
			GuestCount: 2,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Request)
		wantErr bool
	}{
		{"корректный запрос", func(r *Request) {}, false},
		{"нулевой guestID", func(r *Request) { r.GuestID = 0 }, true},
		{"отрицательный propertyID", func(r *Request) { r.PropertyID = -1 }, true},
		{"пустая дата заезда", func(r *Request) { r.CheckIn = time.Time{} }, true},
		{"пустая дата выезда", func(r *Request) { r.CheckOut = time.Time{} }, true},
		{"нулевое количество гостей", func(r *Request) { r.GuestCount = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			tt.mutate(req)

			err := validateRequest(req)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateRange(t *testing.T) {
	now := time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC)
	property := testProperty()

	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		wantErr  error
	}{
		{
			name:     "корректный диапазон",
			checkIn:  day(2024, 6, 1),
			checkOut: day(2024, 6, 6),
			wantErr:  nil,
		},
		{
			name:     "заезд сегодня допустим",
			checkIn:  day(2024, 5, 20),
			checkOut: day(2024, 5, 22),
			wantErr:  nil,
		},
		{
			name:     "ноль ночей",
			checkIn:  day(2024, 6, 1),
			checkOut: day(2024, 6, 1),
			wantErr:  ErrNoNightsSelected,
		},
		{
			name:     "выезд раньше заезда",
			checkIn:  day(2024, 6, 6),
			checkOut: day(2024, 6, 1),
			wantErr:  ErrNoNightsSelected,
		},
		{
			name:     "заезд в прошлом",
			checkIn:  day(2024, 5, 19),
			checkOut: day(2024, 5, 22),
			wantErr:  ErrDateInPast,
		},
		{
			name:     "слишком длинное проживание",
			checkIn:  day(2024, 6, 1),
			checkOut: day(2024, 6, 1).AddDate(0, 0, domain.MaxStayNights+1),
			wantErr:  ErrStayTooLong,
		},
		{
			name:     "диапазон за пределами окна бронирования",
			checkIn:  day(2025, 12, 30),
			checkOut: day(2026, 1, 2),
			wantErr:  ErrOutsideBookableWindow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := domain.NewDateRange(tt.checkIn, tt.checkOut)

			err := validateRange(r, now, property)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
