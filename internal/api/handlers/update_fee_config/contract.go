package update_fee_config

import (
	"context"

	"github.com/tomrobak/vacaflow-booking-service/internal/service/fees/models"
)

type FeeService interface {
	Update(ctx context.Context, req *models.UpdateFeeConfigRequest) (*models.FeeConfigResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
