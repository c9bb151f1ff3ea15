package login

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CompanionAdmin/internal/api/handlers"
	sessionService "github.com/m04kA/SMC-CompanionAdmin/internal/service/session"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgCredentialsMissing = "логин и пароль обязательны"
	msgInvalidCredentials = "неверный логин или пароль"
)

type Handler struct {
	service SessionService
	cookie  handlers.CookieConfig
	logger  Logger
}

func NewHandler(service SessionService, cookie handlers.CookieConfig, logger Logger) *Handler {
	return &Handler{
		service: service,
		cookie:  cookie,
		logger:  logger,
	}
}

// Handle POST /api/v1/auth/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	sess, err := h.service.Login(r.Context(), req.Identifier, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, sessionService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgCredentialsMissing)

		case errors.Is(err, sessionService.ErrInvalidCredentials):
			h.logger.Warn("POST /auth/login - Invalid credentials: identifier=%s", req.Identifier)
			handlers.RespondUnauthorized(w, msgInvalidCredentials)

		default:
			h.logger.Error("POST /auth/login - Failed to login: identifier=%s, error=%v", req.Identifier, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.SetSessionCookie(w, h.cookie, sess.ID, h.service.TTL())

	h.logger.Info("POST /auth/login - Logged in: user_id=%d, admin=%t", sess.User.ID, sess.User.IsAdmin())
	handlers.RespondJSON(w, http.StatusOK, &LoginResponse{User: sess.User, IsAdmin: sess.User.IsAdmin()})
}
