package router_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/kyrelabs/items-api/internal/config"
	"github.com/kyrelabs/items-api/internal/errs"
	"github.com/kyrelabs/items-api/internal/router"
	"github.com/kyrelabs/items-api/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *echo.Echo {
	t.Helper()

	log := zerolog.Nop()
	s := server.New(config.Default(), &log)
	return router.New(s)
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRootEndpoint(t *testing.T) {
	e := newTestRouter(t)

	rec := doJSON(e, http.MethodGet, "/", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Hello World"}`, rec.Body.String())
}

func TestItemLookupEndpoint(t *testing.T) {
	e := newTestRouter(t)

	t.Run("numeric id", func(t *testing.T) {
		rec := doJSON(e, http.MethodGet, "/items/123", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"item_id":"123"}`, rec.Body.String())
	})

	t.Run("arbitrary text ids round-trip", func(t *testing.T) {
		for _, id := range []string{"abc", "item-42", "AB_cd.9"} {
			rec := doJSON(e, http.MethodGet, "/items/"+id, "")

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, fmt.Sprintf(`{"item_id":%q}`, id), rec.Body.String())
		}
	})
}

func TestItemCreateEndpoint(t *testing.T) {
	e := newTestRouter(t)

	t.Run("full item echoes back unchanged", func(t *testing.T) {
		body := `{"name":"Example Item","description":"A description of the item","price":10.99,"tax":1.20}`
		rec := doJSON(e, http.MethodPost, "/items/", body)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, body, rec.Body.String())
	})

	t.Run("optional fields absent in stay absent out", func(t *testing.T) {
		rec := doJSON(e, http.MethodPost, "/items/", `{"name":"Plain","price":5}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"name":"Plain","price":5}`, rec.Body.String())
	})

	t.Run("same input same output", func(t *testing.T) {
		body := `{"name":"Example Item","price":10.99}`

		first := doJSON(e, http.MethodPost, "/items/", body)
		second := doJSON(e, http.MethodPost, "/items/", body)

		assert.Equal(t, first.Body.String(), second.Body.String())
	})

	t.Run("missing name is rejected with field detail", func(t *testing.T) {
		rec := doJSON(e, http.MethodPost, "/items/", `{"price":10.99}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)

		var envelope errs.HTTPError
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
		assert.Equal(t, "BAD_REQUEST", envelope.Code)
		assert.Equal(t, http.StatusBadRequest, envelope.Status)
		require.Len(t, envelope.Errors, 1)
		assert.Equal(t, "name", envelope.Errors[0].Field)
		assert.Equal(t, "is required", envelope.Errors[0].Error)
	})

	t.Run("non-numeric price is rejected", func(t *testing.T) {
		rec := doJSON(e, http.MethodPost, "/items/", `{"name":"Example Item","price":"10.99"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)

		var envelope errs.HTTPError
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
		assert.Equal(t, "BAD_REQUEST", envelope.Code)
	})

	t.Run("malformed JSON is rejected", func(t *testing.T) {
		rec := doJSON(e, http.MethodPost, "/items/", `{"name":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUnknownRouteReturnsEnvelope(t *testing.T) {
	e := newTestRouter(t)

	rec := doJSON(e, http.MethodGet, "/nope", "")

	require.Equal(t, http.StatusNotFound, rec.Code)

	var envelope errs.HTTPError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "NOT_FOUND", envelope.Code)
	assert.Equal(t, "Route not found", envelope.Message)
}

func TestHealthEndpoint(t *testing.T) {
	e := newTestRouter(t)

	rec := doJSON(e, http.MethodGet, "/status", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "healthy", payload["status"])
	assert.Equal(t, "development", payload["environment"])
	assert.NotEmpty(t, payload["uptime"])
}

func TestMetricsEndpoint(t *testing.T) {
	e := newTestRouter(t)

	// Generate some traffic first so the request counter has samples.
	doJSON(e, http.MethodGet, "/", "")
	doJSON(e, http.MethodGet, "/items/123", "")

	rec := doJSON(e, http.MethodGet, "/metrics", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "items_api_http_requests_total")
	assert.Contains(t, rec.Body.String(), `route="/items/:id"`)
}

func TestResponsesCarryRequestID(t *testing.T) {
	e := newTestRouter(t)

	rec := doJSON(e, http.MethodGet, "/", "")
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "corr-1")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, "corr-1", rec.Header().Get("X-Request-ID"))
}
