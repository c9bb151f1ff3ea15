package logout

import (
	"net/http"

	"github.com/m04kA/SMC-CompanionAdmin/internal/api/handlers"
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

// Handle POST /api/v1/auth/logout
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if id := handlers.SessionID(r, h.cookie); id != "" {
		if err := h.service.Logout(r.Context(), id); err != nil {
			h.logger.Error("POST /auth/logout - Failed to delete session: %v", err)
			handlers.RespondInternalError(w)
			return
		}
	}

	handlers.ClearSessionCookie(w, h.cookie)
	w.WriteHeader(http.StatusNoContent)
}
