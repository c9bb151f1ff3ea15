package list_companions

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-CompanionAdmin/internal/api/handlers"
	"github.com/m04kA/SMC-CompanionAdmin/internal/service/companions"
)

const (
	msgInvalidPaging = "некорректные параметры пагинации"
	msgUpstream      = "CMS недоступна"
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

// Handle GET /api/v1/companions?locale=&page=&pageSize=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page, err := optionalInt(q.Get("page"))
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidPaging)
		return
	}
	pageSize, err := optionalInt(q.Get("pageSize"))
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidPaging)
		return
	}

	list, err := h.service.List(r.Context(), q.Get("locale"), page, pageSize)
	if err != nil {
		switch {
		case errors.Is(err, companions.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidPaging)

		default:
			h.logger.Error("GET /companions - Failed to list companions: %v", err)
			handlers.RespondError(w, http.StatusBadGateway, msgUpstream)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, list)
}

func optionalInt(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}
