package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"marketplace-be/internal/auth"
	"marketplace-be/internal/user"
	"marketplace-be/internal/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCors(t *testing.T) {
	nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	handler := CORS("http://localhost:3000")(nextHandler)

	t.Run("OPTIONS request", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/auth/login", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "POST")
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "Content-Type")
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("Normal request", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Wildcard", func(t *testing.T) {
		w := httptest.NewRecorder()

		CORS("")(nextHandler).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
	})
}

func TestTimeout(t *testing.T) {
	t.Run("Sets deadline", func(t *testing.T) {
		var hasDeadline bool
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, hasDeadline = r.Context().Deadline()
		})

		Timeout(time.Second)(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		assert.True(t, hasDeadline)
	})

	t.Run("Disabled", func(t *testing.T) {
		var hasDeadline bool
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, hasDeadline = r.Context().Deadline()
		})

		Timeout(0)(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		assert.False(t, hasDeadline)
	})
}

func TestAuth(t *testing.T) {
	tokens := user.NewTokenManager("test-secret", time.Hour)
	mw := AuthMiddleware(tokens)

	t.Run("Missing Token", func(t *testing.T) {
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, ok := utils.GetUserIDFromContext(r.Context())
			assert.False(t, ok, "Context should not contain user ID")
			w.WriteHeader(http.StatusOK)
		})

		w := httptest.NewRecorder()
		mw(next).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Invalid Token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer invalid-token")
		w := httptest.NewRecorder()

		mw(http.NotFoundHandler()).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"message":"Invalid token"}`, w.Body.String())
	})

	t.Run("Valid Token", func(t *testing.T) {
		tokenString, err := tokens.Generate(&user.User{ID: 1, Email: "a@x.com", Role: user.RoleDealer})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+tokenString)
		w := httptest.NewRecorder()

		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := utils.GetUserIDFromContext(r.Context())
			assert.True(t, ok)
			assert.Equal(t, uint(1), userID)
			w.WriteHeader(http.StatusOK)
		})

		mw(next).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Valid Cookie", func(t *testing.T) {
		tokenString, err := tokens.Generate(&user.User{ID: 2, Email: "b@x.com", Role: user.RoleUser})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: auth.AccessTokenCookie, Value: tokenString})
		w := httptest.NewRecorder()

		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, _ := utils.GetUserIDFromContext(r.Context())
			assert.Equal(t, uint(2), userID)
			w.WriteHeader(http.StatusOK)
		})

		mw(next).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Expired Token", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"user_id": float64(1),
			"exp":     time.Now().Add(-time.Hour).Unix(),
		})
		tokenString, err := token.SignedString([]byte("test-secret"))
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+tokenString)
		w := httptest.NewRecorder()

		mw(http.NotFoundHandler()).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Malformed Header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Basic user:pass")
		w := httptest.NewRecorder()

		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, ok := utils.GetUserIDFromContext(r.Context())
			assert.False(t, ok)
			w.WriteHeader(http.StatusOK)
		})

		mw(next).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
