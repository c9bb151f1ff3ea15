package get_panel_texts

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CompanionAdmin/internal/api/handlers"
	"github.com/m04kA/SMC-CompanionAdmin/internal/service/companions"
)

const (
	msgNotFound = "тексты панели не найдены"
	msgUpstream = "CMS недоступна"
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

// Handle GET /api/v1/panel-texts?locale=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	locale := r.URL.Query().Get("locale")

	texts, err := h.service.PanelTexts(r.Context(), locale)
	if err != nil {
		switch {
		case errors.Is(err, companions.ErrNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /panel-texts - Failed to load texts: locale=%s, error=%v", locale, err)
			handlers.RespondError(w, http.StatusBadGateway, msgUpstream)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, texts)
}
