package sales

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"

	"github.com/hoteldesk/hoteldesk/internal/upstream"
)

// Query narrows a sales listing. From and To are ISO dates; Search is the
// category filter term applied before grouping.
type Query struct {
	HotelID int64
	From    string
	To      string
	Search  string
	Order   Order
}

func (q Query) values() url.Values {
	values := url.Values{}
	if q.HotelID > 0 {
		values.Set("hotel_id", strconv.FormatInt(q.HotelID, 10))
	}
	if q.From != "" {
		values.Set("from", q.From)
	}
	if q.To != "" {
		values.Set("to", q.To)
	}
	return values
}

// Service fetches sale records upstream and shapes them for rendering. Each
// call is all-or-nothing for its screen: no retries, no partial results.
type Service struct {
	api *upstream.Client
}

// NewService constructs a Service.
func NewService(api *upstream.Client) *Service {
	return &Service{api: api}
}

// DailySales loads currency sales and returns filtered, grouped records.
func (s *Service) DailySales(ctx context.Context, token string, q Query) ([]DayGroup, error) {
	var records []SaleRecord
	if err := s.api.Get(ctx, token, "/daily-sales", q.values(), &records); err != nil {
		return nil, err
	}
	entries := make([]Entry, len(records))
	for i, rec := range records {
		entries[i] = FromSale(rec)
	}
	return GroupByHotelDate(FilterByCategory(entries, q.Search), q.Order), nil
}

// BoxSales loads quantity sales, normalizes them into the sale shape, and
// returns filtered, grouped records.
func (s *Service) BoxSales(ctx context.Context, token string, q Query) ([]DayGroup, error) {
	var records []BoxSaleRecord
	if err := s.api.Get(ctx, token, "/boxes-sales", q.values(), &records); err != nil {
		return nil, err
	}
	entries := make([]Entry, len(records))
	for i, rec := range records {
		entries[i] = FromBoxSale(rec)
	}
	return GroupByHotelDate(FilterByCategory(entries, q.Search), q.Order), nil
}

// SubmitDailySale forwards a validated entry payload upstream.
func (s *Service) SubmitDailySale(ctx context.Context, token string, req CreateSaleRequest) (json.RawMessage, error) {
	var created json.RawMessage
	if err := s.api.Post(ctx, token, "/daily-sales", req, &created); err != nil {
		return nil, err
	}
	return created, nil
}

// SubmitBoxSale forwards a validated box entry payload upstream.
func (s *Service) SubmitBoxSale(ctx context.Context, token string, req CreateBoxSaleRequest) (json.RawMessage, error) {
	var created json.RawMessage
	if err := s.api.Post(ctx, token, "/boxes-sales", req, &created); err != nil {
		return nil, err
	}
	return created, nil
}
