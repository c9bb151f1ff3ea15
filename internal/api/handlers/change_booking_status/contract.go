package change_booking_status

import (
	"context"

	"github.com/m04kA/SMC-CompanionAdmin/internal/domain"
)

type BookingsService interface {
	ChangeStatus(ctx context.Context, ref domain.BookingRef, status domain.BookingStatus, actor string) error
}

type NotificationSource interface {
	Current() *domain.Notification
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
