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

	"github.com/hoteldesk/hoteldesk/internal/admin"
	"github.com/hoteldesk/hoteldesk/internal/app"
	"github.com/hoteldesk/hoteldesk/internal/auth"
	"github.com/hoteldesk/hoteldesk/internal/expenses"
	"github.com/hoteldesk/hoteldesk/internal/observability"
	"github.com/hoteldesk/hoteldesk/internal/platform/cache"
	"github.com/hoteldesk/hoteldesk/internal/push"
	"github.com/hoteldesk/hoteldesk/internal/reports"
	"github.com/hoteldesk/hoteldesk/internal/sales"
	"github.com/hoteldesk/hoteldesk/internal/shared"
	"github.com/hoteldesk/hoteldesk/internal/upstream"
	"github.com/hoteldesk/hoteldesk/jobs"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
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

	redisClient, err := cache.New(ctx, cfg.RedisAddr)
	if err != nil {
		logger.Error("connect redis", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("redis close", slog.Any("error", err))
		}
	}()

	sessionManager := shared.NewSessionManager(redisClient, "hoteldesk_session", cfg.SessionSecret, cfg.SessionTTL, cfg.IsProduction())

	api := upstream.New(cfg.UpstreamBaseURL, &http.Client{Timeout: cfg.UpstreamTimeout})

	jobsClient := jobs.NewClient(asynq.RedisClientOpt{Addr: cfg.RedisAddr})
	defer func() {
		if err := jobsClient.Close(); err != nil {
			logger.Warn("jobs client close", slog.Any("error", err))
		}
	}()

	authService := auth.NewService(api)
	authHandler := auth.NewHandler(logger, authService, sessionManager)

	salesService := sales.NewService(api)
	salesHandler := sales.NewHandler(logger, salesService)

	expensesService := expenses.NewService(api)
	expensesHandler := expenses.NewHandler(logger, expensesService)

	adminService := admin.NewService(api)
	adminHandler := admin.NewHandler(logger, adminService)

	reportsService := reports.NewService(api)
	reportsHandler := reports.NewHandler(logger, reportsService)

	pushService := push.NewService(api, jobsClient)
	pushHandler := push.NewHandler(logger, pushService)

	metrics := observability.NewMetrics()

	router := app.NewRouter(app.RouterParams{
		Logger:          logger,
		Config:          cfg,
		SessionManager:  sessionManager,
		AuthService:     authService,
		AuthHandler:     authHandler,
		SalesHandler:    salesHandler,
		ExpensesHandler: expensesHandler,
		AdminHandler:    adminHandler,
		ReportsHandler:  reportsHandler,
		PushHandler:     pushHandler,
		Metrics:         metrics,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
