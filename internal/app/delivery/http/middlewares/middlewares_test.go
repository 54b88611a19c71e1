package middlewares

import (
	"bytes"
	"hospital-records-service/internal/app/config"
	"hospital-records-service/internal/pkg/constvars"
	"hospital-records-service/internal/pkg/metrics"
	"hospital-records-service/internal/pkg/utils"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestMiddlewares(app config.App) (*Middlewares, *bytes.Buffer) {
	var accessLog bytes.Buffer
	accessLogger := logrus.New()
	accessLogger.SetOutput(&accessLog)
	accessLogger.SetFormatter(&logrus.JSONFormatter{})

	return NewMiddlewares(zap.NewNop(), accessLogger, &config.InternalConfig{App: app}), &accessLog
}

func okHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("success"))
}

func TestRequestIDMiddleware(t *testing.T) {
	middlewares, _ := newTestMiddlewares(config.App{})

	var seen string
	handler := middlewares.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = utils.GetRequestID(r.Context())
		okHandler(w, r)
	}))

	t.Run("Generated When Missing", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.True(t, strings.HasPrefix(seen, constvars.REQUEST_ID_PREFIX), "generated id should carry the service prefix")
		assert.Equal(t, seen, rr.Header().Get(constvars.HeaderXRequestID))
	})

	t.Run("Client Id Is Kept", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(constvars.HeaderXRequestID, "client-123")

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, "client-123", seen)
		assert.Equal(t, "client-123", rr.Header().Get(constvars.HeaderXRequestID))
	})
}

func TestErrorHandler(t *testing.T) {
	middlewares, _ := newTestMiddlewares(config.App{})

	handler := middlewares.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rr := httptest.NewRecorder()
	require.NotPanics(t, func() {
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/patient", nil))
	})

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, constvars.ErrClientSomethingWrongWithApplication, body["message"])
	assert.NotContains(t, rr.Body.String(), "boom")
}

func TestBodyLimit(t *testing.T) {
	middlewares, _ := newTestMiddlewares(config.App{RequestBodyLimitInMegabyte: 1})

	var readErr error
	handler := middlewares.BodyLimit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, readErr = io.ReadAll(r.Body)
		okHandler(w, r)
	}))

	t.Run("Within Limit", func(t *testing.T) {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Jane"}`)))
		assert.NoError(t, readErr)
	})

	t.Run("Over Limit", func(t *testing.T) {
		body := bytes.Repeat([]byte("a"), 1024*1024+1)
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body)))

		var maxBytesErr *http.MaxBytesError
		assert.ErrorAs(t, readErr, &maxBytesErr)
	})
}

func TestRateLimit(t *testing.T) {
	middlewares, _ := newTestMiddlewares(config.App{MaxRequests: 1})
	handler := middlewares.RateLimit()(http.HandlerFunc(okHandler))

	newRequest := func() *http.Request {
		req := httptest.NewRequest(http.MethodGet, "/api/patient", nil)
		req.RemoteAddr = "192.0.2.10:4321"
		return req
	}

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, newRequest())
	assert.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	handler.ServeHTTP(second, newRequest())
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Contains(t, second.Body.String(), constvars.ErrClientTooManyRequests)
}

func TestRequestLogger(t *testing.T) {
	middlewares, accessLog := newTestMiddlewares(config.App{})

	handler := middlewares.RequestIDMiddleware(middlewares.RequestLogger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})))

	req := httptest.NewRequest(http.MethodPost, "/api/patient", nil)
	req.Header.Set(constvars.HeaderXRequestID, "log-me")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(accessLog.Bytes(), &entry))
	assert.Equal(t, "log-me", entry[constvars.LoggingRequestIDKey])
	assert.Equal(t, http.MethodPost, entry[constvars.LoggingMethodKey])
	assert.Equal(t, float64(http.StatusCreated), entry[constvars.LoggingStatusCodeKey])
}

func TestMetrics(t *testing.T) {
	middlewares, _ := newTestMiddlewares(config.App{})

	router := chi.NewRouter()
	router.Use(middlewares.Metrics)
	router.Get("/api/patient/{id}", okHandler)

	counter := metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/api/patient/{id}", "200")
	before := testutil.ToFloat64(counter)

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/patient/abc", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/patient/def", nil))

	assert.Equal(t, before+2, testutil.ToFloat64(counter), "ids should collapse into the route pattern")
}
