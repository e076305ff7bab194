package check_availability

import (
	"time"

	"github.com/tomrobak/vacaflow-booking-service/internal/domain"
	checkAvailability "github.com/tomrobak/vacaflow-booking-service/internal/usecase/check_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	PropertyID    int64   `json:"propertyId"`
	Date          *string `json:"date,omitempty"`
	CheckIn       *string `json:"checkIn,omitempty"`
	CheckOut      *string `json:"checkOut,omitempty"`
	Available     bool    `json:"available"`
	ConflictCount int     `json:"conflictCount,omitempty"`
}

// ToUseCaseRequest формирует запрос use case из query параметров
// Либо date, либо пара checkIn+checkOut
func ToUseCaseRequest(propertyID int64, dateStr, checkInStr, checkOutStr string) (*checkAvailability.Request, error) {
	req := &checkAvailability.Request{PropertyID: propertyID}

	if dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			return nil, err
		}
		req.Date = &date
	}

	if checkInStr != "" {
		checkIn, err := time.Parse(domain.DateFormat, checkInStr)
		if err != nil {
			return nil, err
		}
		req.CheckIn = &checkIn
	}

	if checkOutStr != "" {
		checkOut, err := time.Parse(domain.DateFormat, checkOutStr)
		if err != nil {
			return nil, err
		}
		req.CheckOut = &checkOut
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *AvailabilityResponse {
	result := &AvailabilityResponse{
		PropertyID:    resp.PropertyID,
		Available:     resp.Available,
		ConflictCount: resp.ConflictCount,
	}

	if resp.Date != nil {
		date := resp.Date.Format(domain.DateFormat)
		result.Date = &date
	}

	if resp.CheckIn != nil {
		checkIn := resp.CheckIn.Format(domain.DateFormat)
		result.CheckIn = &checkIn
	}

	if resp.CheckOut != nil {
		checkOut := resp.CheckOut.Format(domain.DateFormat)
		result.CheckOut = &checkOut
	}

	return result
}
