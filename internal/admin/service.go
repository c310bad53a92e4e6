package admin

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/hoteldesk/hoteldesk/internal/upstream"
)

// Service relays CRUD calls to the upstream admin endpoints.
type Service struct {
	api *upstream.Client
}

// NewService constructs a Service.
func NewService(api *upstream.Client) *Service {
	return &Service{api: api}
}

// List fetches a collection, passing listing filters through.
func (s *Service) List(ctx context.Context, token, path string, query url.Values) (json.RawMessage, error) {
	var out json.RawMessage
	if err := s.api.Get(ctx, token, path, query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get fetches a single entity.
func (s *Service) Get(ctx context.Context, token, path string) (json.RawMessage, error) {
	var out json.RawMessage
	if err := s.api.Get(ctx, token, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create forwards a validated create payload.
func (s *Service) Create(ctx context.Context, token, path string, body any) (json.RawMessage, error) {
	var out json.RawMessage
	if err := s.api.Post(ctx, token, path, body, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Update forwards a validated update payload.
func (s *Service) Update(ctx context.Context, token, path string, body any) (json.RawMessage, error) {
	var out json.RawMessage
	if err := s.api.Put(ctx, token, path, body, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes an entity.
func (s *Service) Delete(ctx context.Context, token, path string) error {
	return s.api.Delete(ctx, token, path, nil)
}
