package expenses

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoteldesk/hoteldesk/internal/upstream"
)

func newService(t *testing.T, backend http.HandlerFunc) *Service {
	t.Helper()
	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)
	return NewService(upstream.New(srv.URL, srv.Client()))
}

func TestMonthMaps404ToEmptySheet(t *testing.T) {
	service := newService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"not found"}`))
	})

	sheet, err := service.Month(context.Background(), "tok", 3, 2025, 2)

	require.NoError(t, err)
	assert.Equal(t, Sheet{HotelID: 3, Year: 2025, Month: 2}, sheet)
}

func TestMonthRelaysOtherErrors(t *testing.T) {
	service := newService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := service.Month(context.Background(), "tok", 3, 2025, 2)

	var apiErr *upstream.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
}

func TestMonthWithPreviousFetchesBothMonths(t *testing.T) {
	seen := map[string]bool{}
	service := newService(t, func(w http.ResponseWriter, r *http.Request) {
		key := r.URL.Query().Get("year") + "-" + r.URL.Query().Get("month")
		seen[key] = true
		switch key {
		case "2025-3":
			_, _ = w.Write([]byte(`{"hotel_id":3,"year":2025,"month":3,"rent":100}`))
		case "2025-2":
			_, _ = w.Write([]byte(`{"hotel_id":3,"year":2025,"month":2,"rent":90}`))
		default:
			t.Errorf("unexpected month query %q", key)
			w.WriteHeader(http.StatusBadRequest)
		}
	})

	current, previous, err := service.MonthWithPrevious(context.Background(), "tok", 3, 2025, 3)

	require.NoError(t, err)
	assert.Equal(t, 100.0, current.Rent)
	assert.Equal(t, 90.0, previous.Rent)
	assert.True(t, seen["2025-3"])
	assert.True(t, seen["2025-2"])
}

func TestMonthWithPreviousCrossesYearBoundary(t *testing.T) {
	service := newService(t, func(w http.ResponseWriter, r *http.Request) {
		key := r.URL.Query().Get("year") + "-" + r.URL.Query().Get("month")
		if key != "2025-1" && key != "2024-12" {
			t.Errorf("unexpected month query %q", key)
		}
		_, _ = w.Write([]byte(`{}`))
	})

	_, _, err := service.MonthWithPrevious(context.Background(), "tok", 3, 2025, 1)
	require.NoError(t, err)
}

func TestMonthWithPreviousFailsWhole(t *testing.T) {
	service := newService(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("month") == "2" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(`{}`))
	})

	_, _, err := service.MonthWithPrevious(context.Background(), "tok", 3, 2025, 3)
	require.Error(t, err)
}

func TestPreviousMonth(t *testing.T) {
	year, month := previousMonth(2025, 3)
	assert.Equal(t, 2025, year)
	assert.Equal(t, 2, month)

	year, month = previousMonth(2025, 1)
	assert.Equal(t, 2024, year)
	assert.Equal(t, 12, month)
}
