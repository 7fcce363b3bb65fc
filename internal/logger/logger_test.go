package logger

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// observe swaps the global logger for an in-memory one for the test.
func observe(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, observed := observer.New(zapcore.InfoLevel)

	original := log
	log = zap.New(core)
	t.Cleanup(func() { log = original })

	return observed
}

func TestNew(t *testing.T) {
	for _, env := range []string{"production", "development", ""} {
		l, err := New(env)
		require.NoError(t, err, env)
		assert.NotNil(t, l)
	}
}

func TestL(t *testing.T) {
	original := log
	defer func() { log = original }()

	log = nil
	initOnce = sync.Once{}
	t.Setenv("APP_ENV", "test")

	assert.NotNil(t, L())
	assert.NotNil(t, log)
}

func TestRequestIDContext(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, "", RequestIDFrom(ctx))

	ctx = WithRequestID(ctx, "req-1")
	assert.Equal(t, "req-1", RequestIDFrom(ctx))
}

func TestFromCtx(t *testing.T) {
	observed := observe(t)

	t.Run("WithRequestID", func(t *testing.T) {
		FromCtx(WithRequestID(context.Background(), "req-abc-123")).Info("with id")

		logs := observed.TakeAll()
		require.Len(t, logs, 1)
		assert.Equal(t, "req-abc-123", logs[0].ContextMap()["request_id"])
	})

	t.Run("WithoutRequestID", func(t *testing.T) {
		FromCtx(context.Background()).Info("without id")

		logs := observed.TakeAll()
		require.Len(t, logs, 1)
		_, ok := logs[0].ContextMap()["request_id"]
		assert.False(t, ok)
	})
}

func TestSync(t *testing.T) {
	assert.NotPanics(t, Sync)
}

func TestRequestIDMiddleware(t *testing.T) {
	var seen string
	handler := RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFrom(r.Context())
	}))

	t.Run("Generates ID when missing", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

		assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
		assert.Equal(t, w.Header().Get(RequestIDHeader), seen)
	})

	t.Run("Preserves existing ID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set(RequestIDHeader, "test-id-123")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, "test-id-123", w.Header().Get(RequestIDHeader))
		assert.Equal(t, "test-id-123", seen)
	})
}

func TestLoggingMiddleware(t *testing.T) {
	observed := observe(t)

	handler := LoggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/auth/register", nil))

	logs := observed.TakeAll()
	require.Len(t, logs, 1)
	assert.Equal(t, "incoming request", logs[0].Message)

	fields := logs[0].ContextMap()
	assert.Equal(t, "/api/auth/register", fields["path"])
	assert.Equal(t, http.MethodPost, fields["method"])
	assert.EqualValues(t, http.StatusCreated, fields["status"])
}
