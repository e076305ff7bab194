package models

import (
	"errors"
	"time"

	"github.com/tomrobak/vacaflow-booking-service/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	GuestID            int64  `json:"guestId"`
	CancellationReason string `json:"cancellationReason"`
}

// GetGuestBookingsRequest запрос на получение бронирований гостя
type GetGuestBookingsRequest struct {
	GuestID int64   `json:"guestId"`
	Status  *string `json:"status,omitempty"`
}

// GetPropertyBookingsRequest запрос на получение бронирований объекта
type GetPropertyBookingsRequest struct {
	GuestID          int64      `json:"guestId"`
	PropertyID       int64      `json:"propertyId"`
	StartDate        *time.Time `json:"startDate,omitempty"`        // Начало периода (опционально)
	EndDate          *time.Time `json:"endDate,omitempty"`          // Конец периода (опционально)
	Status           *string    `json:"status,omitempty"`           // Фильтр по статусу (опционально)
	IncludeCancelled bool       `json:"includeCancelled,omitempty"` // Включить отмененные бронирования
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetPropertyBookingsRequest) ToDomainFilter() (domain.PropertyBookingsFilter, error) {
	filter := domain.PropertyBookingsFilter{
		PropertyID:       r.PropertyID,
		StartDate:        r.StartDate,
		EndDate:          r.EndDate,
		IncludeCancelled: r.IncludeCancelled,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// PriceBreakdownResponse детализация стоимости проживания
type PriceBreakdownResponse struct {
	Nights      int     `json:"nights"`
	NightlyRate float64 `json:"nightlyRate"`
	Subtotal    float64 `json:"subtotal"`
	AddonsTotal float64 `json:"addonsTotal"`
	CleaningFee float64 `json:"cleaningFee"`
	ServiceFee  float64 `json:"serviceFee"`
	Total       float64 `json:"total"`
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID         int64  `json:"id"`
	Reference  string `json:"reference"`
	PropertyID int64  `json:"propertyId"`
	GuestID    int64  `json:"guestId"`
	CheckIn    string `json:"checkIn"`  // "2025-06-01"
	CheckOut   string `json:"checkOut"` // "2025-06-06"
	GuestCount int    `json:"guestCount"`
	Status     string `json:"status"`

	Price PriceBreakdownResponse `json:"price"`

	// Денормализованные данные гостя
	GuestName  *string `json:"guestName,omitempty"`
	GuestEmail *string `json:"guestEmail,omitempty"`
	AddonIDs   []int64 `json:"addonIds"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:         b.ID,
		Reference:  b.Reference,
		PropertyID: b.PropertyID,
		GuestID:    b.GuestID,
		CheckIn:    b.Range.CheckIn.Format(domain.DateFormat),
		CheckOut:   b.Range.CheckOut.Format(domain.DateFormat),
		GuestCount: b.GuestCount,
		Status:     string(b.Status),
		Price: PriceBreakdownResponse{
			Nights:      b.Nights,
			NightlyRate: b.NightlyRate,
			Subtotal:    b.Subtotal,
			AddonsTotal: b.AddonsTotal,
			CleaningFee: b.CleaningFee,
			ServiceFee:  b.ServiceFee,
			Total:       b.TotalAmount,
		},
		GuestName:  b.GuestName,
		GuestEmail: b.GuestEmail,
		AddonIDs:   b.AddonIDs,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}

	if resp.AddonIDs == nil {
		resp.AddonIDs = []int64{}
	}

	if b.CancellationReason != nil && *b.CancellationReason != "" {
		resp.CancellationReason = b.CancellationReason
	}

	if b.CancelledAt != nil {
		cancelledAt := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledAt
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, b := range bookings {
		if resp := FromDomainBooking(b); resp != nil {
			result.Bookings = append(result.Bookings, *resp)
		}
	}

	return result
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	parsed, ok := domain.ParseBookingStatus(status)
	if !ok {
		return "", ErrInvalidStatus
	}
	return parsed, nil
}
