package get_panel_texts

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-CompanionAdmin/internal/integrations/cms"
	"github.com/m04kA/SMC-CompanionAdmin/internal/service/companions"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct {
	err error
}

func (f fakeService) PanelTexts(context.Context, string) (*cms.PanelTexts, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &cms.PanelTexts{DashboardTitle: "Painel"}, nil
}

func TestHandle(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler(fakeService{}, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/panel-texts?locale=pt", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"dashboard_title":"Painel"`)

	rec = httptest.NewRecorder()
	NewHandler(fakeService{err: companions.ErrNotFound}, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/panel-texts", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
