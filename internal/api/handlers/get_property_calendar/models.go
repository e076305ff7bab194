package get_property_calendar

import (
	"github.com/tomrobak/vacaflow-booking-service/internal/domain"
	getCalendar "github.com/tomrobak/vacaflow-booking-service/internal/usecase/get_calendar"
)

// CalendarDayResponse состояние одного дня календаря
type CalendarDayResponse struct {
	Date        string  `json:"date"`
	Occupied    bool    `json:"occupied"`
	Unavailable bool    `json:"unavailable"`
	BookingIDs  []int64 `json:"bookingIds"`
}

// CalendarResponse HTTP response model
type CalendarResponse struct {
	PropertyID int64                 `json:"propertyId"`
	Month      string                `json:"month"` // "2025-06"
	Days       []CalendarDayResponse `json:"days"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getCalendar.Response) *CalendarResponse {
	days := make([]CalendarDayResponse, 0, len(resp.Days))
	for _, d := range resp.Days {
		bookingIDs := d.BookingIDs
		if bookingIDs == nil {
			bookingIDs = []int64{}
		}

		days = append(days, CalendarDayResponse{
			Date:        d.Date.Format(domain.DateFormat),
			Occupied:    d.Occupied,
			Unavailable: d.Unavailable,
			BookingIDs:  bookingIDs,
		})
	}

	return &CalendarResponse{
		PropertyID: resp.PropertyID,
		Month:      resp.Month.Format(domain.MonthFormat),
		Days:       days,
	}
}
