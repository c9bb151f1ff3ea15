package get_companion

import (
	"context"

	"github.com/m04kA/SMC-CompanionAdmin/internal/integrations/cms"
)

type CompanionsService interface {
	Get(ctx context.Context, documentID, locale string) (*cms.Companion, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
