package update_fee_config

import (
	"github.com/tomrobak/vacaflow-booking-service/internal/service/fees/models"
)

// UpdateFeeConfigRequest тело запроса на изменение сборов объекта
type UpdateFeeConfigRequest struct {
	CleaningFee    float64 `json:"cleaningFee"`
	ServiceFeeRate float64 `json:"serviceFeeRate"`
}

func (r *UpdateFeeConfigRequest) ToServiceRequest(propertyID int64, guestID int64) *models.UpdateFeeConfigRequest {
	return &models.UpdateFeeConfigRequest{
		GuestID:        guestID,
		PropertyID:     propertyID,
		CleaningFee:    r.CleaningFee,
		ServiceFeeRate: r.ServiceFeeRate,
	}
}
