package get_companion_availability

import (
	"context"
	"encoding/json"
)

type CompanionsService interface {
	Availability(ctx context.Context, eventTypeID string) json.RawMessage
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
