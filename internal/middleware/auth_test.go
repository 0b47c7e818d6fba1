package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/HITENDRAPAL3/Backend-ExpenseTracker/internal/auth"
	"github.com/HITENDRAPAL3/Backend-ExpenseTracker/internal/domain"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthenticate_ValidToken(t *testing.T) {
	tokens := auth.NewJWTManager("test-secret", time.Hour)
	userID := uuid.New()
	token, err := tokens.Generate(&domain.User{ID: userID, Username: "alice"})
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/expenses", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := NewAuthMiddleware(tokens)
	handler := mw.Authenticate()(func(c echo.Context) error {
		assert.Equal(t, userID, GetUserID(c))
		assert.Equal(t, "alice", GetUsername(c))
		return c.String(http.StatusOK, "OK")
	})

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	tokens := auth.NewJWTManager("test-secret", time.Hour)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/expenses", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := NewAuthMiddleware(tokens)
	handler := mw.Authenticate()(func(c echo.Context) error {
		t.Fatal("handler should not be called")
		return nil
	})

	err := handler(c)
	require.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestAuthenticate_MalformedHeader(t *testing.T) {
	tokens := auth.NewJWTManager("test-secret", time.Hour)
	mw := NewAuthMiddleware(tokens)

	for _, header := range []string{"Basic abc123", "Bearer", "token"} {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/expenses", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		handler := mw.Authenticate()(func(c echo.Context) error {
			t.Fatalf("handler should not be called for header %q", header)
			return nil
		})

		err := handler(c)
		require.Error(t, err, "header %q", header)
		httpErr, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	}
}

func TestAuthenticate_WrongSecret(t *testing.T) {
	issuer := auth.NewJWTManager("issuer-secret", time.Hour)
	token, err := issuer.Generate(&domain.User{ID: uuid.New(), Username: "alice"})
	require.NoError(t, err)

	verifier := auth.NewJWTManager("different-secret", time.Hour)
	mw := NewAuthMiddleware(verifier)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/expenses", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := mw.Authenticate()(func(c echo.Context) error {
		t.Fatal("handler should not be called")
		return nil
	})

	err = handler(c)
	require.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}
