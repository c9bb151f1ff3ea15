package forgot_password

import "context"

type SessionService interface {
	ForgotPassword(ctx context.Context, email string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
