package shared

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler() (http.Handler, *bool) {
	called := false
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}), &called
}

func TestRequireRolesAnonymousGets401WithLoginPath(t *testing.T) {
	next, called := okHandler()
	guard := RequireRoles(RoleAdmin)(next)

	rec := httptest.NewRecorder()
	guard.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, *called)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "/admin/login", body["login"])
}

func TestRequireRolesNonAdminLoginPath(t *testing.T) {
	next, _ := okHandler()
	guard := RequireRoles(RoleStaff, RoleManager)(next)

	rec := httptest.NewRecorder()
	guard.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/sales", nil))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "/login", body["login"])
}

func TestRequireRolesWrongRoleGets403(t *testing.T) {
	next, called := okHandler()
	guard := RequireRoles(RoleAdmin)(next)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req = req.WithContext(ContextWithIdentity(req.Context(), &Identity{ID: 1, Role: RoleStaff}))

	rec := httptest.NewRecorder()
	guard.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, *called)
}

func TestRequireRolesAllowedRolePasses(t *testing.T) {
	next, called := okHandler()
	guard := RequireRoles(RoleStaff, RoleManager, RoleAdmin)(next)

	req := httptest.NewRequest(http.MethodGet, "/sales", nil)
	req = req.WithContext(ContextWithIdentity(req.Context(), &Identity{ID: 1, Role: RoleManager}))

	rec := httptest.NewRecorder()
	guard.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, *called)
}
