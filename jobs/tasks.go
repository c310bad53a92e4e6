package jobs

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/url"

	"github.com/hibiken/asynq"

	"github.com/hoteldesk/hoteldesk/internal/upstream"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskTypePushBroadcast fans a push notification out to every subscriber.
	TaskTypePushBroadcast = "push:broadcast"
	// TaskTypeMissingSalesScan reminds hotels that skipped a day's entry.
	TaskTypeMissingSalesScan = "sales:missing_scan"
)

// PushBroadcastPayload describes the notification to deliver.
type PushBroadcastPayload struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// NewPushBroadcastTask constructs an Asynq task.
func NewPushBroadcastTask(payload PushBroadcastPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskTypePushBroadcast, data), nil
}

// NewMissingSalesScanTask constructs the scheduled scan task. The payload is
// empty; the handler derives the date at run time.
func NewMissingSalesScanTask() *asynq.Task {
	return asynq.NewTask(TaskTypeMissingSalesScan, nil)
}

// NewPushBroadcastHandler processes TaskTypePushBroadcast tasks by calling
// the upstream broadcast endpoint with the worker's service token.
func NewPushBroadcastHandler(api *upstream.Client, serviceToken string, logger *slog.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload PushBroadcastPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return asynq.SkipRetry
		}
		if err := api.Post(ctx, serviceToken, "/send-push-all", payload, nil); err != nil {
			logger.Error("push broadcast", slog.Any("error", err))
			return err
		}
		logger.Info("push broadcast delivered", slog.String("title", payload.Title))
		return nil
	}
}

// NewMissingSalesScanHandler checks yesterday's missing-sales list and, when
// hotels skipped their entry, broadcasts a reminder.
func NewMissingSalesScanHandler(api *upstream.Client, serviceToken string, logger *slog.Logger, yesterday func() string) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		date := yesterday()
		values := url.Values{}
		values.Set("date", date)

		var missing []struct {
			HotelID int64  `json:"hotel_id"`
			Name    string `json:"name"`
		}
		if err := api.Get(ctx, serviceToken, "/missing-sales", values, &missing); err != nil {
			logger.Error("missing sales scan", slog.Any("error", err))
			return err
		}
		if len(missing) == 0 {
			return nil
		}

		payload := PushBroadcastPayload{
			Title: "Missing sales entries",
			Body:  "Some hotels have not reported sales for " + date,
		}
		if err := api.Post(ctx, serviceToken, "/send-push-all", payload, nil); err != nil {
			logger.Error("missing sales reminder", slog.Any("error", err))
			return err
		}
		logger.Info("missing sales reminder sent", slog.Int("hotels", len(missing)), slog.String("date", date))
		return nil
	}
}
