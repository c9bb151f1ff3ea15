package get_dashboard

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CompanionAdmin/internal/api/handlers"
	"github.com/m04kA/SMC-CompanionAdmin/internal/api/middleware"
	getDashboard "github.com/m04kA/SMC-CompanionAdmin/internal/usecase/get_dashboard"
)

const (
	msgInvalidPage   = "некорректный номер страницы"
	msgInvalidFilter = "некорректный фильтр: ожидается dateType single|range и даты YYYY-MM-DD"
	msgUnauthorized  = "требуется авторизация"
)

type Handler struct {
	useCase GetDashboardUseCase
	logger  Logger
}

func NewHandler(useCase GetDashboardUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.GetSession(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	req, err := ToUseCaseRequest(sess.ID, r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /admin/bookings - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPage)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getDashboard.ErrInvalidInput):
			h.logger.Warn("GET /admin/bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		case errors.Is(err, getDashboard.ErrSessionNotFound):
			handlers.RespondUnauthorized(w, msgUnauthorized)

		default:
			h.logger.Error("GET /admin/bookings - Failed to build dashboard: user_id=%d, error=%v", sess.User.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
