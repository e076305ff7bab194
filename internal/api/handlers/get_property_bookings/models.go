package get_property_bookings

import (
	"fmt"
	"strconv"
	"time"

	"github.com/tomrobak/vacaflow-booking-service/internal/domain"
	"github.com/tomrobak/vacaflow-booking-service/internal/service/bookings/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
func ToServiceRequest(
	propertyID int64,
	guestID int64,
	startDateStr string,
	endDateStr string,
	statusStr string,
	includeCancelledStr string,
) (*models.GetPropertyBookingsRequest, error) {
	req := &models.GetPropertyBookingsRequest{
		GuestID:          guestID,
		PropertyID:       propertyID,
		IncludeCancelled: false, // По умолчанию только активные
	}

	if startDateStr != "" {
		startDate, err := time.Parse(domain.DateFormat, startDateStr)
		if err != nil {
			return nil, fmt.Errorf("invalid startDate: %w", err)
		}
		req.StartDate = &startDate
	}

	if endDateStr != "" {
		endDate, err := time.Parse(domain.DateFormat, endDateStr)
		if err != nil {
			return nil, fmt.Errorf("invalid endDate: %w", err)
		}
		req.EndDate = &endDate
	}

	if statusStr != "" {
		req.Status = &statusStr
	}

	if includeCancelledStr != "" {
		includeCancelled, err := strconv.ParseBool(includeCancelledStr)
		if err != nil {
			return nil, fmt.Errorf("invalid includeCancelled value: %w", err)
		}
		req.IncludeCancelled = includeCancelled
	}

	return req, nil
}
