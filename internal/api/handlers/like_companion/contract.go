package like_companion

import (
	"context"
	"encoding/json"
)

type CompanionsService interface {
	Like(ctx context.Context, documentID string) (json.RawMessage, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
