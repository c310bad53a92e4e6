package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"

	"github.com/hoteldesk/hoteldesk/internal/app"
	jobmetrics "github.com/hoteldesk/hoteldesk/internal/jobs"
	"github.com/hoteldesk/hoteldesk/internal/upstream"
	"github.com/hoteldesk/hoteldesk/jobs"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping worker startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	api := upstream.New(cfg.UpstreamBaseURL, &http.Client{Timeout: cfg.UpstreamTimeout})
	metrics := jobmetrics.NewMetrics(nil)

	yesterday := func() string {
		return time.Now().UTC().AddDate(0, 0, -1).Format("2006-01-02")
	}

	var cron []jobs.CronRegistration
	if cfg.MissingSalesCron != "" {
		cron = append(cron, jobs.CronRegistration{
			Spec:    cfg.MissingSalesCron,
			Task:    jobs.NewMissingSalesScanTask(),
			Options: []asynq.Option{asynq.MaxRetry(3)},
		})
	}

	worker, err := jobs.NewWorker(jobs.WorkerConfig{
		RedisOpts: asynq.RedisClientOpt{Addr: cfg.RedisAddr},
		Logger:    logger,
		Handlers: []jobs.TaskHandler{
			{
				Type:    jobs.TaskTypePushBroadcast,
				Handler: jobs.Instrument(jobs.TaskTypePushBroadcast, metrics, jobs.NewPushBroadcastHandler(api, cfg.ServiceToken, logger)),
			},
			{
				Type:    jobs.TaskTypeMissingSalesScan,
				Handler: jobs.Instrument(jobs.TaskTypeMissingSalesScan, metrics, jobs.NewMissingSalesScanHandler(api, cfg.ServiceToken, logger, yesterday)),
			},
		},
		Cron: cron,
	})
	if err != nil {
		logger.Error("init worker", slog.Any("error", err))
		os.Exit(1)
	}

	if err := worker.Run(ctx); err != nil && err != context.Canceled {
		logger.Error("worker run", slog.Any("error", err))
		os.Exit(1)
	}
}
