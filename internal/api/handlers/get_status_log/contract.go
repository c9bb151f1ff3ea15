package get_status_log

import (
	"context"

	getStatusLog "github.com/m04kA/SMC-CompanionAdmin/internal/usecase/get_status_log"
)

type GetStatusLogUseCase interface {
	Execute(ctx context.Context, req *getStatusLog.Request) (*getStatusLog.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
