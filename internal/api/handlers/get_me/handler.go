package get_me

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CompanionAdmin/internal/api/handlers"
	sessionService "github.com/m04kA/SMC-CompanionAdmin/internal/service/session"
)

const msgUnauthorized = "требуется авторизация"

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

// Handle GET /api/v1/auth/me
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.Me(r.Context(), handlers.SessionID(r, h.cookie))
	if err != nil {
		switch {
		case errors.Is(err, sessionService.ErrSessionNotFound),
			errors.Is(err, sessionService.ErrInvalidCredentials):
			handlers.RespondUnauthorized(w, msgUnauthorized)

		default:
			h.logger.Error("GET /auth/me - Failed to load profile: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, user)
}
