package list_companions

import (
	"context"

	"github.com/m04kA/SMC-CompanionAdmin/internal/integrations/cms"
)

type CompanionsService interface {
	List(ctx context.Context, locale string, page, pageSize int) (*cms.CompanionList, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
