package logout

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CompanionAdmin/internal/api/handlers"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct {
	deleted []string
}

func (f *fakeService) Logout(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func TestHandle_DeletesSessionAndClearsCookie(t *testing.T) {
	cfg := handlers.CookieConfig{Name: "admin_session"}
	svc := &fakeService{}
	h := NewHandler(svc, cfg, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: "admin_session", Value: "sess-1"})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, []string{"sess-1"}, svc.deleted)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, -1, cookies[0].MaxAge)
}

func TestHandle_WithoutCookie(t *testing.T) {
	svc := &fakeService{}
	h := NewHandler(svc, handlers.CookieConfig{Name: "admin_session"}, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, svc.deleted)
}
