package export_bookings

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-CompanionAdmin/internal/api/handlers"
	"github.com/m04kA/SMC-CompanionAdmin/internal/api/middleware"
	exportBookings "github.com/m04kA/SMC-CompanionAdmin/internal/usecase/export_bookings"
)

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	msgUnauthorized = "требуется авторизация"
)

type Handler struct {
	useCase ExportBookingsUseCase
	logger  Logger
}

func NewHandler(useCase ExportBookingsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/bookings/export
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.GetSession(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &exportBookings.Request{SessionID: sess.ID})
	if err != nil {
		switch {
		case errors.Is(err, exportBookings.ErrInvalidInput),
			errors.Is(err, exportBookings.ErrSessionNotFound):
			handlers.RespondUnauthorized(w, msgUnauthorized)

		default:
			h.logger.Error("GET /admin/bookings/export - Failed to export: user_id=%d, error=%v", sess.User.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	w.Header().Set("Content-Type", contentTypeXLSX)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.FileName))
	w.Header().Set("Content-Length", strconv.Itoa(len(result.Content)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(result.Content); err != nil {
		h.logger.Warn("GET /admin/bookings/export - Failed to write response: %v", err)
		return
	}

	h.logger.Info("GET /admin/bookings/export - Exported: rows=%d, user_id=%d", result.Count, sess.User.ID)
}
