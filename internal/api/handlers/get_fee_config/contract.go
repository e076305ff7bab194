package get_fee_config

import (
	"context"

	"github.com/tomrobak/vacaflow-booking-service/internal/service/fees/models"
)

type FeeService interface {
	GetEffective(ctx context.Context, propertyID int64) (*models.FeeConfigResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
