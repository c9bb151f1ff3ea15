package refresh_bookings

import (
	"net/http"

	"github.com/m04kA/SMC-CompanionAdmin/internal/api/handlers"
)

const msgFetchFailed = "не удалось загрузить бронирования из CMS"

// RefreshResponse HTTP response model
type RefreshResponse struct {
	Loaded int `json:"loaded"`
}

type Handler struct {
	refresher Refresher
	logger    Logger
}

func NewHandler(refresher Refresher, logger Logger) *Handler {
	return &Handler{
		refresher: refresher,
		logger:    logger,
	}
}

// Handle POST /api/v1/admin/bookings/refresh
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	loaded, err := h.refresher.RunOnce(r.Context())
	if err != nil {
		h.logger.Error("POST /admin/bookings/refresh - Failed to refresh: %v", err)
		handlers.RespondError(w, http.StatusBadGateway, msgFetchFailed)
		return
	}

	h.logger.Info("POST /admin/bookings/refresh - Refreshed: loaded=%d", loaded)
	handlers.RespondJSON(w, http.StatusOK, &RefreshResponse{Loaded: loaded})
}
