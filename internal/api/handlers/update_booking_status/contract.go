package update_booking_status

import (
	"context"

	updateBookingStatus "github.com/m04kA/SMC-CompanionAdmin/internal/usecase/update_booking_status"
)

type UpdateBookingStatusUseCase interface {
	Execute(ctx context.Context, req *updateBookingStatus.Request) (*updateBookingStatus.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
