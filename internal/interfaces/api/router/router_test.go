package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"motor/internal/interfaces/api/handler"
	"motor/internal/pkg/logger"
)

func newTestRouter() http.Handler {
	return NewRouter(&Config{
		ReminderHandler: handler.NewReminderHandler(nil, logger.NewNop()),
		SweepHandler:    handler.NewSweepHandler(nil),
		Logger:          logger.NewNop(),
	})
}

func serve(h http.Handler, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestRouter_Health(t *testing.T) {
	rec := serve(newTestRouter(), http.MethodGet, "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestRouter_Metrics(t *testing.T) {
	rec := serve(newTestRouter(), http.MethodGet, "/metrics")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestRouter_APIRequiresCaller(t *testing.T) {
	rec := serve(newTestRouter(), http.MethodGet, "/api/v1/vehicles/1/reminders")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_CallbackOnlyWhenLineEnabled(t *testing.T) {
	rec := serve(newTestRouter(), http.MethodPost, "/callback")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
