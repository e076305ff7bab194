package confirm_booking

import "context"

type BookingService interface {
	Confirm(ctx context.Context, bookingID int64, guestID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
