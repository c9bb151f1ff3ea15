package get_companion_availability

import (
	"net/http"

	"github.com/gorilla/mux"
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

// Handle GET /api/v1/companions/availability/{eventTypeId}
// Недоступность CMS не ошибка: отдаем пустой список слотов.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slots := h.service.Availability(r.Context(), mux.Vars(r)["eventTypeId"])

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"availability_slots":`))
	_, _ = w.Write(slots)
	_, _ = w.Write([]byte("}\n"))
}
