package expenses

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hoteldesk/hoteldesk/internal/upstream"
)

// Service fetches and submits monthly expense sheets.
type Service struct {
	api *upstream.Client
}

// NewService constructs a Service.
func NewService(api *upstream.Client) *Service {
	return &Service{api: api}
}

func monthValues(hotelID int64, year, month int) url.Values {
	values := url.Values{}
	values.Set("hotel_id", strconv.FormatInt(hotelID, 10))
	values.Set("year", strconv.Itoa(year))
	values.Set("month", strconv.Itoa(month))
	return values
}

// Month loads the sheet for one (hotel, year, month). A 404 upstream means
// nothing was recorded yet and maps to an empty sheet, not an error.
func (s *Service) Month(ctx context.Context, token string, hotelID int64, year, month int) (Sheet, error) {
	var sheet Sheet
	err := s.api.Get(ctx, token, "/expenses", monthValues(hotelID, year, month), &sheet)
	if err != nil {
		var apiErr *upstream.APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
			return Sheet{HotelID: hotelID, Year: year, Month: month}, nil
		}
		return Sheet{}, err
	}
	return sheet, nil
}

// MonthWithPrevious loads the requested month and the month before it
// concurrently. The two results fill disjoint slots; the errgroup makes the
// completion coordinated instead of racy.
func (s *Service) MonthWithPrevious(ctx context.Context, token string, hotelID int64, year, month int) (current, previous Sheet, err error) {
	prevYear, prevMonth := previousMonth(year, month)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		sheet, err := s.Month(ctx, token, hotelID, year, month)
		if err != nil {
			return err
		}
		current = sheet
		return nil
	})
	g.Go(func() error {
		sheet, err := s.Month(ctx, token, hotelID, prevYear, prevMonth)
		if err != nil {
			return err
		}
		previous = sheet
		return nil
	})
	if err := g.Wait(); err != nil {
		return Sheet{}, Sheet{}, err
	}
	return current, previous, nil
}

// Save creates a sheet upstream.
func (s *Service) Save(ctx context.Context, token string, sheet Sheet) (json.RawMessage, error) {
	var saved json.RawMessage
	if err := s.api.Post(ctx, token, "/expenses", sheet, &saved); err != nil {
		return nil, err
	}
	return saved, nil
}

// Update replaces a sheet upstream.
func (s *Service) Update(ctx context.Context, token string, sheet Sheet) (json.RawMessage, error) {
	var saved json.RawMessage
	if err := s.api.Put(ctx, token, "/expenses", sheet, &saved); err != nil {
		return nil, err
	}
	return saved, nil
}

func previousMonth(year, month int) (int, int) {
	t := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
	return t.Year(), int(t.Month())
}
