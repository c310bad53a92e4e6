package auth

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoteldesk/hoteldesk/internal/shared"
	"github.com/hoteldesk/hoteldesk/internal/upstream"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newSessionManager(t *testing.T) *shared.SessionManager {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return shared.NewSessionManager(client, "hoteldesk_session", "secret", time.Hour, false)
}

func newHandler(t *testing.T, backend http.HandlerFunc) (*Handler, *shared.SessionManager) {
	t.Helper()
	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)
	sessions := newSessionManager(t)
	service := NewService(upstream.New(srv.URL, srv.Client()))
	return NewHandler(testLogger(), service, sessions), sessions
}

func withSession(req *http.Request, sess *shared.Session) *http.Request {
	return req.WithContext(shared.ContextWithSession(req.Context(), sess))
}

func loadSession(t *testing.T, sessions *shared.SessionManager) *shared.Session {
	t.Helper()
	sess, err := sessions.Load(context.Background(), httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	return sess
}

func TestLoginStoresTokenAndRole(t *testing.T) {
	handler, sessions := newHandler(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/login", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token":"tok-1","user":{"id":5,"name":"Asha","phone":"0170","hotel":{"id":2,"name":"Sea View"}}}`))
	})

	sess := loadSession(t, sessions)

	router := chi.NewRouter()
	router.Route("/auth", handler.MountPublicRoutes)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"phone":"0170","password":"secret1"}`))
	req = withSession(req, sess)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "tok-1", sess.Token())
	assert.Equal(t, shared.RoleStaff, sess.Role())
	assert.NotNil(t, sess.Identity())

	var body loginResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, shared.RoleStaff, body.Role)
	assert.Equal(t, int64(5), body.User.ID)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	handler, sessions := newHandler(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"invalid credentials"}`))
	})
	sess := loadSession(t, sessions)

	router := chi.NewRouter()
	router.Route("/auth", handler.MountPublicRoutes)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"phone":"0170","password":"wrong-1"}`))
	req = withSession(req, sess)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, sess.Token())
}

func TestLoginValidatesPayload(t *testing.T) {
	handler, sessions := newHandler(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("upstream must not be called on invalid payload")
	})
	sess := loadSession(t, sessions)

	router := chi.NewRouter()
	router.Route("/auth", handler.MountPublicRoutes)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"phone":"0170","password":"short"}`))
	req = withSession(req, sess)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogoutDestroysSession(t *testing.T) {
	handler, sessions := newHandler(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})
	sess := loadSession(t, sessions)
	sess.SetToken("tok-1")

	router := chi.NewRouter()
	router.Route("/session", handler.MountRoutes)

	req := httptest.NewRequest(http.MethodPost, "/session/logout", nil)
	req = withSession(req, sess)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	rec2 := httptest.NewRecorder()
	require.NoError(t, sessions.Commit(context.Background(), rec2, req, sess))
	cookies := rec2.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, -1, cookies[0].MaxAge)
}

func TestMeReturnsIdentity(t *testing.T) {
	handler, _ := newHandler(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})

	router := chi.NewRouter()
	router.Route("/session", handler.MountRoutes)

	req := httptest.NewRequest(http.MethodGet, "/session/me", nil)
	req = req.WithContext(shared.ContextWithIdentity(req.Context(), &shared.Identity{ID: 7, Role: shared.RoleAdmin}))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var identity shared.Identity
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &identity))
	assert.Equal(t, int64(7), identity.ID)
}
