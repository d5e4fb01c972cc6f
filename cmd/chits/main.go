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
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/smk-chits/smk-chits/cmd/chits/cli"
	"github.com/smk-chits/smk-chits/internal/app"
	"github.com/smk-chits/smk-chits/internal/auctions"
	"github.com/smk-chits/smk-chits/internal/collections"
	"github.com/smk-chits/smk-chits/internal/groups"
	"github.com/smk-chits/smk-chits/internal/members"
	"github.com/smk-chits/smk-chits/internal/observability"
	"github.com/smk-chits/smk-chits/internal/reminders"
	"github.com/smk-chits/smk-chits/internal/reports"
	"github.com/smk-chits/smk-chits/internal/settings"
	"github.com/smk-chits/smk-chits/internal/tickets"
	"github.com/smk-chits/smk-chits/jobs"
	"github.com/smk-chits/smk-chits/report"
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

	if len(os.Args) > 1 && os.Args[1] == "jobs" {
		if err := cli.Run(ctx, cfg.RedisAddr, os.Args[2:]); err != nil {
			logger.Error("jobs command", slog.Any("error", err))
			os.Exit(1)
		}
		return
	}

	dbpool, err := pgxpool.New(ctx, cfg.PGDSN)
	if err != nil {
		logger.Error("connect postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer dbpool.Close()

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Warn("redis ping", slog.Any("error", err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("redis close", slog.Any("error", err))
		}
	}()

	membersRepo := members.NewRepository(dbpool)
	membersService := members.NewService(membersRepo)
	membersHandler := members.NewHandler(logger, membersService)

	groupsRepo := groups.NewRepository(dbpool)
	groupsService := groups.NewService(groupsRepo)
	groupsHandler := groups.NewHandler(logger, groupsService)

	ticketsRepo := tickets.NewRepository(dbpool)
	ticketsService := tickets.NewService(ticketsRepo)
	ticketsHandler := tickets.NewHandler(logger, ticketsService)

	auctionsRepo := auctions.NewRepository(dbpool)
	auctionsService := auctions.NewService(auctionsRepo, groupsService, ticketsService)
	auctionsHandler := auctions.NewHandler(logger, auctionsService)

	settingsRepo := settings.NewRepository(dbpool)
	settingsService := settings.NewService(settingsRepo)
	settingsHandler := settings.NewHandler(logger, settingsService)

	reportClient := report.NewClient(cfg.GotenbergURL)
	if err := reportClient.Ping(ctx); err != nil {
		logger.Warn("gotenberg ping", slog.Any("error", err))
	}

	paymentsRepo := collections.NewRepository(dbpool)
	paymentsService := collections.NewService(paymentsRepo, membersService, groupsService, settingsService)
	paymentsHandler := collections.NewHandler(logger, paymentsService, reportClient)

	reportsRepo := reports.NewRepository(dbpool)
	reportsCache := reports.NewCache(redisClient, cfg.DashboardCacheTTL)
	reportsService := reports.NewService(reportsRepo, reportsCache)
	reportsHandler := reports.NewHandler(logger, reportsService)
	if err := reportsCache.ListenForInvalidation(ctx, ""); err != nil {
		logger.Warn("cache invalidation listener", slog.Any("error", err))
	}

	jobClient, err := jobs.NewClient(asynq.RedisClientOpt{Addr: cfg.RedisAddr})
	if err != nil {
		logger.Error("init job client", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := jobClient.Close(); err != nil {
			logger.Warn("job client close", slog.Any("error", err))
		}
	}()

	remindersService := reminders.NewService(reportsService, settingsService, jobClient, cfg.ReminderInterval)
	remindersHandler := reminders.NewHandler(logger, remindersService)

	inspector := asynq.NewInspector(asynq.RedisClientOpt{Addr: cfg.RedisAddr})
	defer func() {
		if err := inspector.Close(); err != nil {
			logger.Warn("inspector close", slog.Any("error", err))
		}
	}()
	jobHandler := jobs.NewHandler(inspector, logger)

	metrics := observability.NewMetrics()

	router := app.NewRouter(app.RouterParams{
		Logger:           logger,
		Config:           cfg,
		MembersHandler:   membersHandler,
		GroupsHandler:    groupsHandler,
		TicketsHandler:   ticketsHandler,
		AuctionsHandler:  auctionsHandler,
		PaymentsHandler:  paymentsHandler,
		SettingsHandler:  settingsHandler,
		ReportsHandler:   reportsHandler,
		RemindersHandler: remindersHandler,
		JobHandler:       jobHandler,
		Metrics:          metrics,
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
