package change_booking_status

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CompanionAdmin/internal/api/handlers"
	"github.com/m04kA/SMC-CompanionAdmin/internal/api/middleware"
	"github.com/m04kA/SMC-CompanionAdmin/internal/domain"
	"github.com/m04kA/SMC-CompanionAdmin/internal/service/bookings"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidStatus      = "некорректный статус: ожидается pending, confirmed или cancelled"
	msgUpdateFailed       = "не удалось обновить статус в CMS"
	msgUnauthorized       = "требуется авторизация"
)

type Handler struct {
	service       BookingsService
	notifications NotificationSource
	logger        Logger
}

func NewHandler(service BookingsService, notifications NotificationSource, logger Logger) *Handler {
	return &Handler{
		service:       service,
		notifications: notifications,
		logger:        logger,
	}
}

// Handle PUT /api/v1/admin/bookings/{id}/status
// {id} - documentId или числовой id
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.GetSession(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	ref := domain.ParseBookingRef(strings.TrimSpace(mux.Vars(r)["id"]))
	if ref.IsZero() {
		h.logger.Warn("PUT /admin/bookings/{id}/status - Invalid booking ID: %q", mux.Vars(r)["id"])
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req ChangeStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/bookings/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err := h.service.ChangeStatus(r.Context(), ref, domain.BookingStatus(req.Status), sess.User.Username)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidBookingID)

		case errors.Is(err, bookings.ErrInvalidStatus):
			h.logger.Warn("PUT /admin/bookings/{id}/status - Invalid status: booking=%s, status=%q", ref.Identifier(), req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, bookings.ErrStatusUpdate):
			h.logger.Error("PUT /admin/bookings/{id}/status - CMS rejected update: booking=%s, error=%v", ref.Identifier(), err)
			handlers.RespondError(w, http.StatusBadGateway, msgUpdateFailed)

		default:
			h.logger.Error("PUT /admin/bookings/{id}/status - Failed to change status: booking=%s, error=%v", ref.Identifier(), err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/bookings/{id}/status - Status changed: booking=%s, status=%s, user_id=%d",
		ref.Identifier(), req.Status, sess.User.ID)
	handlers.RespondJSON(w, http.StatusOK, &ChangeStatusResponse{
		Success:      true,
		Notification: h.notifications.Current(),
	})
}
