package get_companion_availability

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct {
	eventTypeID string
}

func (f *fakeService) Availability(_ context.Context, eventTypeID string) json.RawMessage {
	f.eventTypeID = eventTypeID
	return json.RawMessage(`[]`)
}

func TestHandle(t *testing.T) {
	svc := &fakeService{}
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/companions/availability/{eventTypeId}", NewHandler(svc, nopLogger{}).Handle)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/companions/availability/123", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "123", svc.eventTypeID)
	assert.JSONEq(t, `{"availability_slots":[]}`, rec.Body.String())
}
