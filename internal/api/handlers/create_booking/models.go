package create_booking

import (
	"time"

	"github.com/tomrobak/vacaflow-booking-service/internal/domain"
	createBooking "github.com/tomrobak/vacaflow-booking-service/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	PropertyID int64   `json:"propertyId"`
	CheckIn    string  `json:"checkIn"`  // "2025-06-01"
	CheckOut   string  `json:"checkOut"` // "2025-06-06"
	GuestCount int     `json:"guestCount"`
	AddonIDs   []int64 `json:"addonIds,omitempty"`
}

// PriceBreakdownResponse детализация стоимости в HTTP ответе
type PriceBreakdownResponse struct {
	Nights      int     `json:"nights"`
	NightlyRate float64 `json:"nightlyRate"`
	Subtotal    float64 `json:"subtotal"`
	AddonsTotal float64 `json:"addonsTotal"`
	CleaningFee float64 `json:"cleaningFee"`
	ServiceFee  float64 `json:"serviceFee"`
	Total       float64 `json:"total"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID         int64  `json:"id"`
	Reference  string `json:"reference"`
	PropertyID int64  `json:"propertyId"`
	GuestID    int64  `json:"guestId"`
	CheckIn    string `json:"checkIn"`
	CheckOut   string `json:"checkOut"`
	GuestCount int    `json:"guestCount"`
	Status     string `json:"status"`

	Price PriceBreakdownResponse `json:"price"`

	GuestName  *string `json:"guestName,omitempty"`
	GuestEmail *string `json:"guestEmail,omitempty"`
	AddonIDs   []int64 `json:"addonIds"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(guestID int64) (*createBooking.Request, error) {
	checkIn, err := time.Parse(domain.DateFormat, r.CheckIn)
	if err != nil {
		return nil, err
	}

	checkOut, err := time.Parse(domain.DateFormat, r.CheckOut)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		GuestID:    guestID,
		PropertyID: r.PropertyID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		GuestCount: r.GuestCount,
		AddonIDs:   r.AddonIDs,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	addonIDs := resp.AddonIDs
	if addonIDs == nil {
		addonIDs = []int64{}
	}

	return &BookingResponse{
		ID:         resp.ID,
		Reference:  resp.Reference,
		PropertyID: resp.PropertyID,
		GuestID:    resp.GuestID,
		CheckIn:    resp.CheckIn.Format(domain.DateFormat),
		CheckOut:   resp.CheckOut.Format(domain.DateFormat),
		GuestCount: resp.GuestCount,
		Status:     resp.Status,
		Price: PriceBreakdownResponse{
			Nights:      resp.Breakdown.Nights,
			NightlyRate: resp.Breakdown.NightlyRate,
			Subtotal:    resp.Breakdown.Subtotal,
			AddonsTotal: resp.Breakdown.AddonsTotal,
			CleaningFee: resp.Breakdown.CleaningFee,
			ServiceFee:  resp.Breakdown.ServiceFee,
			Total:       resp.Breakdown.Total,
		},
		GuestName:  resp.GuestName,
		GuestEmail: resp.GuestEmail,
		AddonIDs:   addonIDs,
		CreatedAt:  resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  resp.UpdatedAt.Format(time.RFC3339),
	}
}
