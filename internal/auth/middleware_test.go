package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoteldesk/hoteldesk/internal/shared"
	"github.com/hoteldesk/hoteldesk/internal/upstream"
)

func TestHydrateUsesCachedSnapshot(t *testing.T) {
	var upstreamCalls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		upstreamCalls++
	}))
	defer srv.Close()
	service := NewService(upstream.New(srv.URL, srv.Client()))

	sessions := newSessionManager(t)
	sess := loadSession(t, sessions)
	sess.SetToken("tok-1")
	snapshot, err := json.Marshal(User{ID: 4, Role: shared.RoleManager})
	require.NoError(t, err)
	sess.SetIdentity(snapshot)

	var seen *shared.Identity
	mw := Hydrate(testLogger(), service, sessions)
	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = shared.IdentityFromContext(r.Context())
	}))

	req := withSession(httptest.NewRequest(http.MethodGet, "/", nil), sess)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	require.NotNil(t, seen)
	assert.Equal(t, int64(4), seen.ID)
	assert.Equal(t, shared.RoleManager, seen.Role)
	assert.Zero(t, upstreamCalls)
}

func TestHydrateResolvesIdentityOnce(t *testing.T) {
	var upstreamCalls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		upstreamCalls++
		require.Equal(t, "/auth/me", r.URL.Path)
		require.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"id":4,"name":"Asha","managed_hotels":[{"id":1,"name":"Sea View"}]}`))
	}))
	defer srv.Close()
	service := NewService(upstream.New(srv.URL, srv.Client()))

	sessions := newSessionManager(t)
	sess := loadSession(t, sessions)
	sess.SetToken("tok-1")

	var seen *shared.Identity
	mw := Hydrate(testLogger(), service, sessions)
	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = shared.IdentityFromContext(r.Context())
	}))

	req := withSession(httptest.NewRequest(http.MethodGet, "/", nil), sess)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	require.NotNil(t, seen)
	assert.Equal(t, shared.RoleManager, seen.Role)
	assert.Equal(t, 1, upstreamCalls)
	assert.NotNil(t, sess.Identity(), "snapshot should be cached for the next request")

	// Second request is served from the cached snapshot.
	handler.ServeHTTP(httptest.NewRecorder(), withSession(httptest.NewRequest(http.MethodGet, "/", nil), sess))
	assert.Equal(t, 1, upstreamCalls)
}

func TestHydrateClearsSessionOnDeadToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"token expired"}`))
	}))
	defer srv.Close()
	service := NewService(upstream.New(srv.URL, srv.Client()))

	sessions := newSessionManager(t)
	sess := loadSession(t, sessions)
	sess.SetToken("dead-token")

	var seen *shared.Identity
	mw := Hydrate(testLogger(), service, sessions)
	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = shared.IdentityFromContext(r.Context())
	}))

	req := withSession(httptest.NewRequest(http.MethodGet, "/", nil), sess)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.Nil(t, seen)
	assert.Empty(t, sess.Token())
}

func TestHydrateSkipsAnonymousSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("upstream must not be called without a token")
	}))
	defer srv.Close()
	service := NewService(upstream.New(srv.URL, srv.Client()))

	sessions := newSessionManager(t)
	sess := loadSession(t, sessions)

	mw := Hydrate(testLogger(), service, sessions)
	called := false
	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		assert.Nil(t, shared.IdentityFromContext(r.Context()))
	}))

	handler.ServeHTTP(httptest.NewRecorder(), withSession(httptest.NewRequest(http.MethodGet, "/", nil), sess))
	assert.True(t, called)
}
