package get_companion

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

// Handle GET /api/v1/companions/{documentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	documentID := mux.Vars(r)["documentId"]

	companion, err := h.service.Get(r.Context(), documentID, r.URL.Query().Get("locale"))
	if err != nil {
		switch {
		case errors.Is(err, companions.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidID)

		case errors.Is(err, companions.ErrNotFound):
			h.logger.Warn("GET /companions/{documentId} - Companion not found: document_id=%s", documentID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /companions/{documentId} - Failed to get companion: document_id=%s, error=%v", documentID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgUpstream)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, companion)
}
