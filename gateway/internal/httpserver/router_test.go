package httpserver

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/burakmt/todo-platform/pkg/tokens"
)

func newGateway(t *testing.T) (*echo.Echo, *tokens.Issuer) {
	t.Helper()

	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Backend-Path", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(backend.Close)

	issuer := &tokens.Issuer{
		Secret:    []byte("test-jwt-secret"),
		Issuer:    "todo-platform",
		Audience:  "todo-clients",
		AccessTTL: 15 * time.Minute,
	}

	e := echo.New()
	require.NoError(t, Register(e, &Deps{
		UserURL: backend.URL,
		TodoURL: backend.URL,
		Issuer:  issuer,
	}))
	return e, issuer
}

func TestGateway_PublicAuthRoutes(t *testing.T) {
	t.Parallel()

	e, _ := newGateway(t)

	for _, path := range []string{"/api/user/register", "/api/user/login", "/api/user/refresh-token"} {
		req := httptest.NewRequest(http.MethodPost, path, nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.Equal(t, path, rec.Header().Get("X-Backend-Path"))
	}
}

func TestGateway_ProtectedRoutesRequireBearer(t *testing.T) {
	t.Parallel()

	e, issuer := newGateway(t)

	req := httptest.NewRequest(http.MethodGet, "/api/todo/mine", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/todo/mine", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer garbage")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	token, err := issuer.IssueAccessToken(1, "a@x.com", "User")
	require.NoError(t, err)

	req = httptest.NewRequest(http.MethodGet, "/api/todo/mine", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "/api/todo/mine", rec.Header().Get("X-Backend-Path"))

	// Health endpoints bypass auth entirely.
	req = httptest.NewRequest(http.MethodGet, "/health/live", nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
