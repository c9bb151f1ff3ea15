package get_me

import (
	"context"

	"github.com/m04kA/SMC-CompanionAdmin/internal/domain"
)

type SessionService interface {
	Me(ctx context.Context, id string) (*domain.User, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
