package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CompanionAdmin/internal/api/handlers"
	"github.com/m04kA/SMC-CompanionAdmin/internal/domain"
	sessionService "github.com/m04kA/SMC-CompanionAdmin/internal/service/session"
)

const (
	msgUnauthorized = "требуется авторизация"
	msgForbidden    = "доступ только для администраторов"
)

type contextKey string

const sessionKey contextKey = "session"

// SessionAuth пускает только запросы с действующей сессией администратора.
// Нет cookie или сессия истекла - 401, пользователь не admin - 403.
func SessionAuth(sessions SessionGetter, cookieName string, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			sess, err := sessions.Get(r.Context(), cookie.Value)
			if err != nil {
				if errors.Is(err, sessionService.ErrSessionNotFound) {
					handlers.RespondUnauthorized(w, msgUnauthorized)
					return
				}
				logger.Error("%s %s - Failed to load session: %v", r.Method, r.URL.Path, err)
				handlers.RespondInternalError(w)
				return
			}

			if !sess.User.IsAdmin() {
				logger.Warn("%s %s - Access denied: user_id=%d, user_type=%q", r.Method, r.URL.Path, sess.User.ID, sess.User.UserType)
				handlers.RespondForbidden(w, msgForbidden)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), sess)))
		})
	}
}

// WithSession кладет сессию в контекст
func WithSession(ctx context.Context, sess *domain.Session) context.Context {
	return context.WithValue(ctx, sessionKey, sess)
}

// GetSession достает сессию, положенную SessionAuth
func GetSession(ctx context.Context) (*domain.Session, bool) {
	sess, ok := ctx.Value(sessionKey).(*domain.Session)
	return sess, ok && sess != nil
}
