package reports

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoteldesk/hoteldesk/internal/shared"
	"github.com/hoteldesk/hoteldesk/internal/upstream"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestRouter(t *testing.T, backend http.HandlerFunc) *chi.Mux {
	t.Helper()
	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)
	handler := NewHandler(testLogger(), NewService(upstream.New(srv.URL, srv.Client())))
	router := chi.NewRouter()
	router.Route("/reports", handler.MountRoutes)
	return router
}

func authed(req *http.Request) *http.Request {
	sess := &shared.Session{}
	sess.SetToken("tok-1")
	ctx := shared.ContextWithSession(req.Context(), sess)
	ctx = shared.ContextWithIdentity(ctx, &shared.Identity{ID: 1, Role: shared.RoleAdmin})
	return req.WithContext(ctx)
}

func TestSalesByCityRollsUp(t *testing.T) {
	router := newTestRouter(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/admin/hotel-sales-by-city", r.URL.Path)
		require.Equal(t, "2025-03-01", r.URL.Query().Get("from"))
		_, _ = w.Write([]byte(`[
			{"hotel_id":1,"name":"Sea View","city":"Chittagong","total":300},
			{"hotel_id":2,"name":"Hill Top","city":"Sylhet","total":700}
		]`))
	})

	req := authed(httptest.NewRequest(http.MethodGet, "/reports/sales-by-city?from=2025-03-01&to=2025-03-31", nil))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Cities []CityGroup `json:"cities"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Cities, 2)
	assert.Equal(t, "Sylhet", body.Cities[0].City)
}

func TestReportsRequireDateRange(t *testing.T) {
	router := newTestRouter(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("upstream must not be called without a date range")
	})

	for _, path := range []string{
		"/reports/sales-by-city",
		"/reports/compare-hotels",
		"/reports/activity-logs",
	} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, authed(httptest.NewRequest(http.MethodGet, path, nil)))
		assert.Equal(t, http.StatusBadRequest, rec.Code, path)
	}
}

func TestCompareHotelsRanks(t *testing.T) {
	router := newTestRouter(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/admin/compare-hotels", r.URL.Path)
		_, _ = w.Write([]byte(`[
			{"hotel_id":1,"name":"Sea View","total":30},
			{"hotel_id":2,"name":"Hill Top","total":70}
		]`))
	})

	req := authed(httptest.NewRequest(http.MethodGet, "/reports/compare-hotels?from=2025-03-01&to=2025-03-31", nil))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var comparison Comparison
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &comparison))
	assert.Equal(t, 100.0, comparison.GrandTotal)
	assert.Equal(t, "Hill Top", comparison.Hotels[0].Name)
}

func TestExpensesOverviewComputesTotals(t *testing.T) {
	router := newTestRouter(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/admin/expenses", r.URL.Path)
		require.Equal(t, "2025", r.URL.Query().Get("year"))
		_, _ = w.Write([]byte(`[
			{"hotel_id":1,"hotel_name":"Sea View","rent":100,"salary":200}
		]`))
	})

	req := authed(httptest.NewRequest(http.MethodGet, "/reports/expenses?year=2025&month=3", nil))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Hotels []ExpenseRow `json:"hotels"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Hotels, 1)
	assert.Equal(t, 300.0, body.Hotels[0].Total)
}

func TestExpensesOverviewValidatesMonth(t *testing.T) {
	router := newTestRouter(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("upstream must not be called with an invalid month")
	})

	req := authed(httptest.NewRequest(http.MethodGet, "/reports/expenses?year=2025&month=13", nil))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMissingSalesRequiresDate(t *testing.T) {
	router := newTestRouter(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/missing-sales", r.URL.Path)
		require.Equal(t, "2025-03-01", r.URL.Query().Get("date"))
		_, _ = w.Write([]byte(`[{"hotel_id":3,"name":"Idle Inn"}]`))
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authed(httptest.NewRequest(http.MethodGet, "/reports/missing-sales", nil)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, authed(httptest.NewRequest(http.MethodGet, "/reports/missing-sales?date=2025-03-01", nil)))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Idle Inn")
}

func TestSalesByCityCSVExport(t *testing.T) {
	router := newTestRouter(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"hotel_id":1,"name":"Sea View","city":"Chittagong","total":100}]`))
	})

	req := authed(httptest.NewRequest(http.MethodGet, "/reports/sales-by-city.csv?from=2025-03-01&to=2025-03-31", nil))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, rec.Body.String(), "Sea View")
	assert.Contains(t, rec.Body.String(), "Total")
}
