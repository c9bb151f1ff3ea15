package like_companion

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CompanionAdmin/internal/api/handlers"
	"github.com/m04kA/SMC-CompanionAdmin/internal/service/companions"
)

const (
	msgInvalidID = "некорректный documentId"
	msgNotFound  = "компаньон не найден"
	msgUpstream  = "CMS недоступна"
)

type Handler struct {
	service CompanionsService
	logger  Logger
}

func NewHandler(service CompanionsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/companions/{documentId}/like
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	documentID := mux.Vars(r)["documentId"]

	raw, err := h.service.Like(r.Context(), documentID)
	if err != nil {
		switch {
		case errors.Is(err, companions.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidID)

		case errors.Is(err, companions.ErrNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("POST /companions/{documentId}/like - Failed to like: document_id=%s, error=%v", documentID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgUpstream)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(raw)
}
