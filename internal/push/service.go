// Package push forwards browser push subscriptions upstream and hands
// broadcast requests to the background worker. Delivery itself is platform
// infrastructure owned by the backend.
package push

import (
	"context"
	"encoding/json"

	"github.com/hoteldesk/hoteldesk/internal/upstream"
	"github.com/hoteldesk/hoteldesk/jobs"
)

// Service relays subscription saves and queues broadcasts.
type Service struct {
	api  *upstream.Client
	jobs *jobs.Client
}

// NewService constructs a Service.
func NewService(api *upstream.Client, jobsClient *jobs.Client) *Service {
	return &Service{api: api, jobs: jobsClient}
}

// SaveSubscription forwards a push subscription object under the caller's
// token. The subscription blob is opaque to the gateway.
func (s *Service) SaveSubscription(ctx context.Context, token string, subscription json.RawMessage) error {
	return s.api.Post(ctx, token, "/save-subscription", subscription, nil)
}

// Broadcast enqueues a push-all task; a slow upstream never blocks the
// dashboard request.
func (s *Service) Broadcast(ctx context.Context, title, body string) error {
	_, err := s.jobs.EnqueuePushBroadcast(ctx, jobs.PushBroadcastPayload{Title: title, Body: body})
	return err
}
