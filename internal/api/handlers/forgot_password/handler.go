package forgot_password

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CompanionAdmin/internal/api/handlers"
	sessionService "github.com/m04kA/SMC-CompanionAdmin/internal/service/session"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidEmail       = "некорректный email"
)

// ForgotPasswordRequest HTTP request model
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

type Handler struct {
	service SessionService
	logger  Logger
}

func NewHandler(service SessionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/auth/forgot-password
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ForgotPasswordRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/forgot-password - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.ForgotPassword(r.Context(), req.Email); err != nil {
		if errors.Is(err, sessionService.ErrInvalidInput) {
			handlers.RespondBadRequest(w, msgInvalidEmail)
			return
		}
		h.logger.Error("POST /auth/forgot-password - Failed to request reset: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /auth/forgot-password - Reset requested")
	handlers.RespondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
