package router

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = errorHandler
	e.GET("/ok", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/boom", func(c echo.Context) error {
		return errors.New("database exploded")
	})
	return e
}

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestErrorHandler_NotFound(t *testing.T) {
	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/bestaat-niet", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.NotEmpty(t, errorBody(t, rec)["error"])
}

func TestErrorHandler_MethodNotAllowedKeepsAllow(t *testing.T) {
	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/ok", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderAllow), http.MethodGet)
	assert.NotEmpty(t, errorBody(t, rec)["error"])
}

func TestErrorHandler_InternalErrorIsGeneric(t *testing.T) {
	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := errorBody(t, rec)
	// The underlying cause never reaches the client.
	assert.Equal(t, "er is een onverwachte fout opgetreden", body["error"])
	assert.NotContains(t, rec.Body.String(), "database exploded")
}

func TestErrorHandler_HeadRequestHasNoBody(t *testing.T) {
	e := newTestEcho()
	req := httptest.NewRequest(http.MethodHead, "/bestaat-niet", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Body.String())
}
