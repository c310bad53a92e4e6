package reports

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"

	"github.com/hoteldesk/hoteldesk/internal/expenses"
	"github.com/hoteldesk/hoteldesk/internal/upstream"
)

// Service fetches report data upstream and shapes it for rendering.
type Service struct {
	api *upstream.Client
}

// NewService constructs a Service.
func NewService(api *upstream.Client) *Service {
	return &Service{api: api}
}

func rangeValues(from, to string) url.Values {
	values := url.Values{}
	if from != "" {
		values.Set("from", from)
	}
	if to != "" {
		values.Set("to", to)
	}
	return values
}

// SalesByCity loads per-hotel totals and rolls them up by city.
func (s *Service) SalesByCity(ctx context.Context, token, from, to string) ([]CityGroup, error) {
	var rows []HotelSales
	if err := s.api.Get(ctx, token, "/admin/hotel-sales-by-city", rangeValues(from, to), &rows); err != nil {
		return nil, err
	}
	return RollupByCity(rows), nil
}

// CompareHotels loads per-hotel totals ranked against the grand total.
func (s *Service) CompareHotels(ctx context.Context, token, from, to string) (Comparison, error) {
	var rows []HotelSales
	if err := s.api.Get(ctx, token, "/admin/compare-hotels", rangeValues(from, to), &rows); err != nil {
		return Comparison{}, err
	}
	return Compare(rows), nil
}

// ExpenseRow is one hotel's sheet in the all-hotels overview.
type ExpenseRow struct {
	HotelID   int64  `json:"hotel_id"`
	HotelName string `json:"hotel_name"`
	expenses.Sheet
	Total float64 `json:"total"`
}

// ExpensesOverview loads every hotel's sheet for a (year, month).
func (s *Service) ExpensesOverview(ctx context.Context, token string, year, month int) ([]ExpenseRow, error) {
	values := url.Values{}
	values.Set("year", strconv.Itoa(year))
	values.Set("month", strconv.Itoa(month))
	var rows []ExpenseRow
	if err := s.api.Get(ctx, token, "/admin/expenses", values, &rows); err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].Total = rows[i].Sheet.Total()
	}
	return rows, nil
}

// ActivityLogs relays the audit feed for a date range.
func (s *Service) ActivityLogs(ctx context.Context, token, from, to string) (json.RawMessage, error) {
	var out json.RawMessage
	if err := s.api.Get(ctx, token, "/activity-logs", rangeValues(from, to), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MissingSales lists hotels with no sale record for a date.
func (s *Service) MissingSales(ctx context.Context, token, date string) (json.RawMessage, error) {
	values := url.Values{}
	values.Set("date", date)
	var out json.RawMessage
	if err := s.api.Get(ctx, token, "/missing-sales", values, &out); err != nil {
		return nil, err
	}
	return out, nil
}
