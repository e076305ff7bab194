package quote_stay

import (
	"strconv"
	"strings"
	"time"

	"github.com/tomrobak/vacaflow-booking-service/internal/domain"
	quoteStay "github.com/tomrobak/vacaflow-booking-service/internal/usecase/quote_stay"
)

// QuoteResponse HTTP response model
type QuoteResponse struct {
	PropertyID  int64   `json:"propertyId"`
	CheckIn     string  `json:"checkIn"`
	CheckOut    string  `json:"checkOut"`
	Nights      int     `json:"nights"`
	NightlyRate float64 `json:"nightlyRate"`
	Subtotal    float64 `json:"subtotal"`
	AddonsTotal float64 `json:"addonsTotal"`
	CleaningFee float64 `json:"cleaningFee"`
	ServiceFee  float64 `json:"serviceFee"`
	Total       float64 `json:"total"`
}

// ToUseCaseRequest формирует запрос use case из query параметров
func ToUseCaseRequest(propertyID int64, checkInStr, checkOutStr, addonIDsStr string) (*quoteStay.Request, error) {
	checkIn, err := time.Parse(domain.DateFormat, checkInStr)
	if err != nil {
		return nil, err
	}

	checkOut, err := time.Parse(domain.DateFormat, checkOutStr)
	if err != nil {
		return nil, err
	}

	addonIDs, err := parseAddonIDs(addonIDsStr)
	if err != nil {
		return nil, err
	}

	return &quoteStay.Request{
		PropertyID: propertyID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		AddonIDs:   addonIDs,
	}, nil
}

// parseAddonIDs парсит список id из строки вида "1,2,3"
func parseAddonIDs(s string) ([]int64, error) {
	if s == "" {
		return nil, nil
	}

	parts := strings.Split(s, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *quoteStay.Response) *QuoteResponse {
	return &QuoteResponse{
		PropertyID:  resp.PropertyID,
		CheckIn:     resp.CheckIn.Format(domain.DateFormat),
		CheckOut:    resp.CheckOut.Format(domain.DateFormat),
		Nights:      resp.Breakdown.Nights,
		NightlyRate: resp.Breakdown.NightlyRate,
		Subtotal:    resp.Breakdown.Subtotal,
		AddonsTotal: resp.Breakdown.AddonsTotal,
		CleaningFee: resp.Breakdown.CleaningFee,
		ServiceFee:  resp.Breakdown.ServiceFee,
		Total:       resp.Breakdown.Total,
	}
}
