package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authmw "github.com/burakmt/todo-platform/pkg/middleware/auth"
	"github.com/burakmt/todo-platform/pkg/tokens"
	"github.com/burakmt/todo-platform/services/user/internal/models"
)

func TestSelfOrAdminPredicate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		p       authmw.Principal
		routeID string
		want    bool
	}{
		{name: "admin on any id", p: authmw.Principal{UserID: "1", Role: models.RoleAdmin}, routeID: "999", want: true},
		{name: "user on own id", p: authmw.Principal{UserID: "7", Role: models.RoleUser}, routeID: "7", want: true},
		{name: "user on other id", p: authmw.Principal{UserID: "7", Role: models.RoleUser}, routeID: "8", want: false},
		{name: "missing subject", p: authmw.Principal{Role: models.RoleUser}, routeID: "7", want: false},
		{name: "missing route id", p: authmw.Principal{UserID: "7", Role: models.RoleUser}, routeID: "", want: false},
		{name: "string compare, no numeric coercion", p: authmw.Principal{UserID: "07", Role: models.RoleUser}, routeID: "7", want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, selfOrAdmin(tt.p, tt.routeID))
		})
	}
}

func TestAdminOnlyPredicate(t *testing.T) {
	t.Parallel()

	assert.True(t, adminOnly(authmw.Principal{Role: models.RoleAdmin}))
	// Id match is irrelevant for admin-only.
	assert.False(t, adminOnly(authmw.Principal{UserID: "7", Role: models.RoleUser}))
	assert.False(t, adminOnly(authmw.Principal{Role: "admin"}))
	assert.False(t, adminOnly(authmw.Principal{}))
}

func testIssuer() *tokens.Issuer {
	return &tokens.Issuer{
		Secret:    []byte("test-jwt-secret"),
		Issuer:    "todo-platform",
		Audience:  "todo-clients",
		AccessTTL: 15 * time.Minute,
	}
}

func policyTestServer(t *testing.T, policy echo.MiddlewareFunc) *echo.Echo {
	t.Helper()

	e := echo.New()
	g := e.Group("/users")
	g.Use(authmw.RequireAuth(testIssuer()))
	g.GET("/:id", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, policy)
	return e
}

func doGet(e *echo.Echo, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestSelfOrAdminMiddleware(t *testing.T) {
	t.Parallel()

	iss := testIssuer()
	e := policyTestServer(t, SelfOrAdmin())

	adminToken, err := iss.IssueAccessToken(1, "admin@x.com", models.RoleAdmin)
	require.NoError(t, err)
	userToken, err := iss.IssueAccessToken(7, "u@x.com", models.RoleUser)
	require.NoError(t, err)

	// No bearer at all: 401, not 403.
	assert.Equal(t, http.StatusUnauthorized, doGet(e, "/users/7", "").Code)
	assert.Equal(t, http.StatusUnauthorized, doGet(e, "/users/7", "garbage").Code)

	assert.Equal(t, http.StatusOK, doGet(e, "/users/999", adminToken).Code)
	assert.Equal(t, http.StatusOK, doGet(e, "/users/7", userToken).Code)
	assert.Equal(t, http.StatusForbidden, doGet(e, "/users/8", userToken).Code)
}

func TestAdminOnlyMiddleware(t *testing.T) {
	t.Parallel()

	iss := testIssuer()
	e := policyTestServer(t, AdminOnly())

	adminToken, err := iss.IssueAccessToken(1, "admin@x.com", models.RoleAdmin)
	require.NoError(t, err)
	userToken, err := iss.IssueAccessToken(7, "u@x.com", models.RoleUser)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, doGet(e, "/users/1", adminToken).Code)
	// Matching id does not help without the admin role.
	assert.Equal(t, http.StatusForbidden, doGet(e, "/users/7", userToken).Code)
	assert.Equal(t, http.StatusUnauthorized, doGet(e, "/users/1", "").Code)
}
