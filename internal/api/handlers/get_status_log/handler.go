package get_status_log

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-CompanionAdmin/internal/api/handlers"
	"github.com/m04kA/SMC-CompanionAdmin/internal/domain"
	getStatusLog "github.com/m04kA/SMC-CompanionAdmin/internal/usecase/get_status_log"
)

const (
	msgInvalidPaging = "некорректные limit/offset"
	msgDisabled      = "журнал статусов отключен"
)

// StatusLogResponse HTTP response model
type StatusLogResponse struct {
	Entries []*domain.StatusLogEntry `json:"entries"`
}

type Handler struct {
	useCase GetStatusLogUseCase
	logger  Logger
}

func NewHandler(useCase GetStatusLogUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/status-log?bookingId=&limit=&offset=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := &getStatusLog.Request{BookingRef: q.Get("bookingId")}

	var err error
	if req.Limit, err = intParam(q.Get("limit")); err != nil {
		handlers.RespondBadRequest(w, msgInvalidPaging)
		return
	}
	if req.Offset, err = intParam(q.Get("offset")); err != nil {
		handlers.RespondBadRequest(w, msgInvalidPaging)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getStatusLog.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidPaging)

		case errors.Is(err, getStatusLog.ErrDisabled):
			handlers.RespondNotFound(w, msgDisabled)

		default:
			h.logger.Error("GET /admin/status-log - Failed to read status log: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	entries := result.Entries
	if entries == nil {
		entries = []*domain.StatusLogEntry{}
	}
	handlers.RespondJSON(w, http.StatusOK, &StatusLogResponse{Entries: entries})
}

func intParam(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}
