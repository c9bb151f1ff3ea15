package refresh_bookings

import "context"

// Refresher перезагрузка списка с рассылкой события клиентам
type Refresher interface {
	RunOnce(ctx context.Context) (int, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
