package list_addons

import (
	"context"

	"github.com/tomrobak/vacaflow-booking-service/internal/service/addons"
)

type AddonService interface {
	List(ctx context.Context) (*addons.AddonListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
