package health

import (
	"context"
	"net/http"
	"time"

	"github.com/m04kA/SMC-CompanionAdmin/internal/api/handlers"
)

// Checker проверка зависимости (redis, postgres)
type Checker interface {
	Ping(ctx context.Context) error
}

// CheckFunc функция как Checker
type CheckFunc func(ctx context.Context) error

func (f CheckFunc) Ping(ctx context.Context) error { return f(ctx) }

// Response HTTP response model
type Response struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

type Handler struct {
	checks  map[string]Checker
	timeout time.Duration
}

// NewHandler checks может быть пустым
func NewHandler(checks map[string]Checker) *Handler {
	return &Handler{
		checks:  checks,
		timeout: 2 * time.Second,
	}
}

// Handle GET /health
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	resp := Response{Status: "ok", Checks: make(map[string]string, len(h.checks))}
	status := http.StatusOK

	for name, c := range h.checks {
		if err := c.Ping(ctx); err != nil {
			resp.Checks[name] = err.Error()
			resp.Status = "degraded"
			status = http.StatusServiceUnavailable
			continue
		}
		resp.Checks[name] = "ok"
	}

	handlers.RespondJSON(w, status, resp)
}
