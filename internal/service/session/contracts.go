package session

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CompanionAdmin/internal/domain"
	"github.com/m04kA/SMC-CompanionAdmin/internal/integrations/cms"
)

// SessionRepository хранилище сессий
type SessionRepository interface {
	Save(ctx context.Context, s *domain.Session, ttl time.Duration) error
	Get(ctx context.Context, id string) (*domain.Session, error)
	UpdateView(ctx context.Context, id string, view domain.ViewState) error
	Delete(ctx context.Context, id string) error
}

// AuthClient авторизация в CMS
type AuthClient interface {
	Login(ctx context.Context, identifier, password string) (*cms.AuthResponse, error)
	ForgotPassword(ctx context.Context, email string) error
	GetProfile(ctx context.Context, jwt string) (*cms.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
