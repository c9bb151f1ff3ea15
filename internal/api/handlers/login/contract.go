package login

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CompanionAdmin/internal/domain"
)

type SessionService interface {
	Login(ctx context.Context, identifier, password string) (*domain.Session, error)
	TTL() time.Duration
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
