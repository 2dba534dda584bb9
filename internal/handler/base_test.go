package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/kyrelabs/items-api/internal/config"
	"github.com/kyrelabs/items-api/internal/handler"
	"github.com/kyrelabs/items-api/internal/middleware"
	"github.com/kyrelabs/items-api/internal/model"
	"github.com/kyrelabs/items-api/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *server.Server {
	t.Helper()

	log := zerolog.Nop()
	return server.New(config.Default(), &log)
}

func TestHandlePipelineExecutesOnValidPayload(t *testing.T) {
	s := newTestServer(t)
	e := echo.New()
	e.HTTPErrorHandler = middleware.NewMiddlewares(s).Global.GlobalErrorHandler

	var bound *model.Item
	h := handler.NewHandler(s)
	e.POST("/items/", handler.Handle(h, func(c echo.Context, req *model.Item) (*model.Item, error) {
		bound = req
		return req, nil
	}, http.StatusOK))

	req := httptest.NewRequest(http.MethodPost, "/items/", strings.NewReader(`{"name":"Example Item","price":10.99}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, bound, "handler body should have executed")
	assert.Equal(t, "Example Item", bound.Name)
	require.NotNil(t, bound.Price)
	assert.Equal(t, 10.99, *bound.Price)
}

func TestHandlePipelineRejectsBeforeHandlerRuns(t *testing.T) {
	s := newTestServer(t)
	e := echo.New()
	e.HTTPErrorHandler = middleware.NewMiddlewares(s).Global.GlobalErrorHandler

	executed := false
	h := handler.NewHandler(s)
	e.POST("/items/", handler.Handle(h, func(c echo.Context, req *model.Item) (*model.Item, error) {
		executed = true
		return req, nil
	}, http.StatusOK))

	t.Run("missing required field", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/items/", strings.NewReader(`{"price":10.99}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.False(t, executed, "handler body must not run on a validation failure")
	})

	t.Run("mistyped field", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/items/", strings.NewReader(`{"name":"Example Item","price":"ten"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.False(t, executed, "handler body must not run on a bind failure")
	})
}

func TestHandleAllocatesFreshPayloadPerRequest(t *testing.T) {
	s := newTestServer(t)
	e := echo.New()
	e.HTTPErrorHandler = middleware.NewMiddlewares(s).Global.GlobalErrorHandler

	h := handler.NewHandler(s)
	e.POST("/items/", handler.Handle(h, func(c echo.Context, req *model.Item) (*model.Item, error) {
		return req, nil
	}, http.StatusOK))

	first := httptest.NewRequest(http.MethodPost, "/items/", strings.NewReader(`{"name":"First","price":1,"tax":0.5}`))
	first.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, first)
	require.Equal(t, http.StatusOK, rec.Code)

	// The second request omits tax; it must not inherit the first
	// request's value through a shared payload instance.
	second := httptest.NewRequest(http.MethodPost, "/items/", strings.NewReader(`{"name":"Second","price":2}`))
	second.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, second)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"name":"Second","price":2}`, rec.Body.String())
}
