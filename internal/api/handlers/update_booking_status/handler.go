package update_booking_status

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CompanionAdmin/internal/api/handlers"
	updateBookingStatus "github.com/m04kA/SMC-CompanionAdmin/internal/usecase/update_booking_status"
)

// Тексты ошибок входят в контракт вебхука, поэтому на английском
const (
	msgRequired      = "ID and status are required"
	msgInvalidStatus = "Invalid status. Must be pending, confirmed, or cancelled"
	msgCMSFailed     = "Failed to update booking in Strapi"
	msgInternalError = "Internal server error"
)

type Handler struct {
	useCase UpdateBookingStatusUseCase
	logger  Logger
}

func NewHandler(useCase UpdateBookingStatusUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/cal-webhook/update-status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /cal-webhook/update-status - Invalid request body: %v", err)
		handlers.RespondError(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, updateBookingStatus.ErrInvalidInput):
			h.logger.Warn("PUT /cal-webhook/update-status - Missing fields: id=%q, status=%q", req.ID, req.Status)
			handlers.RespondBadRequest(w, msgRequired)

		case errors.Is(err, updateBookingStatus.ErrInvalidStatus):
			h.logger.Warn("PUT /cal-webhook/update-status - Invalid status: id=%s, status=%q", req.ID, req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, updateBookingStatus.ErrCMSUpdate):
			h.logger.Error("PUT /cal-webhook/update-status - CMS update failed: id=%s, error=%v", req.ID, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgCMSFailed)

		default:
			h.logger.Error("PUT /cal-webhook/update-status - Failed to update status: id=%s, error=%v", req.ID, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgInternalError)
		}
		return
	}

	h.logger.Info("PUT /cal-webhook/update-status - Status updated: id=%s, status=%s", req.ID, req.Status)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
