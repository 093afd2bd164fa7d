package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/infinifab/infinifab/internal/config"
	"github.com/infinifab/infinifab/internal/handler"
	"github.com/infinifab/infinifab/internal/infra/postgresql"
	"github.com/infinifab/infinifab/internal/infra/postgresql/migrations"
	infraredis "github.com/infinifab/infinifab/internal/infra/redis"
	"github.com/infinifab/infinifab/internal/observability"
	"github.com/infinifab/infinifab/internal/provider"
	"github.com/infinifab/infinifab/internal/repository"
	"github.com/infinifab/infinifab/internal/seed"
	"github.com/infinifab/infinifab/internal/service"
	"github.com/infinifab/infinifab/internal/transport"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load config", zap.Error(err))
	}

	logger, err := observability.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatal("failed to initialize logger", zap.Error(err))
	}
	defer logger.Sync() //nolint:errcheck

	db, err := postgresql.NewPostgres(cfg.DatabaseDSN)
	if err != nil {
		logger.Fatal("postgres initialization failed", zap.Error(err))
	}

	if err := migrations.Migrate(db); err != nil {
		logger.Fatal("database migrations failed", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("postgres underlying db init failed", zap.Error(err))
	}
	defer sqlDB.Close()

	rdb, err := infraredis.NewRedis(cfg.RedisURL)
	if err != nil {
		logger.Fatal("redis initialization failed", zap.Error(err))
	}
	defer rdb.Close()

	userRepo := repository.NewGormUserRepo(db)
	quoteRepo := repository.NewGormQuoteRepo(db)
	messageRepo := repository.NewGormMessageRepo(db)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := seed.Quotes(ctx, quoteRepo, logger); err != nil {
		logger.Fatal("quote seeding failed", zap.Error(err))
	}

	rateLimiter, err := infraredis.NewRedisRateLimiter(rdb, cfg.SMSRateLimitPerSec)
	if err != nil {
		logger.Fatal("rate limiter initialization failed", zap.Error(err))
	}

	smsProvider, err := provider.NewTwilioProvider(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioFromNumber)
	if err != nil {
		logger.Fatal("twilio provider initialization failed", zap.Error(err))
	}
	if !smsProvider.Configured() {
		logger.Warn("twilio credentials not configured, deliveries will be recorded as failed")
	}

	metrics := observability.NewMetrics()

	scheduler, err := service.NewScheduler(
		userRepo,
		quoteRepo,
		messageRepo,
		smsProvider,
		rateLimiter,
		cfg.TickInterval,
		cfg.DispatchConcurrency,
		logger,
	)
	if err != nil {
		logger.Fatal("scheduler initialization failed", zap.Error(err))
	}
	scheduler.SetMetrics(metrics)

	userService, err := service.NewUserService(userRepo, logger)
	if err != nil {
		logger.Fatal("user service initialization failed", zap.Error(err))
	}
	quoteService, err := service.NewQuoteService(quoteRepo)
	if err != nil {
		logger.Fatal("quote service initialization failed", zap.Error(err))
	}
	messageService, err := service.NewMessageService(messageRepo)
	if err != nil {
		logger.Fatal("message service initialization failed", zap.Error(err))
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: transport.ErrorHandler(logger),
	})
	app.Use(metrics.HTTPMiddleware())

	api := app.Group("/api")
	if err := handler.RegisterUserRoutes(api, userService); err != nil {
		logger.Fatal("user routes registration failed", zap.Error(err))
	}
	if err := handler.RegisterQuoteRoutes(api, quoteService); err != nil {
		logger.Fatal("quote routes registration failed", zap.Error(err))
	}
	if err := handler.RegisterMessageRoutes(api, messageService); err != nil {
		logger.Fatal("message routes registration failed", zap.Error(err))
	}
	handler.RegisterHealthRoutes(app, sqlDB, rdb)
	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("scheduler started", zap.Duration("tickInterval", cfg.TickInterval))
		return scheduler.Start(gctx)
	})

	g.Go(func() error {
		logger.Info("api started", zap.Int("port", cfg.APIPort))
		return app.Listen(fmt.Sprintf(":%d", cfg.APIPort))
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		return app.ShutdownWithTimeout(shutdownTimeout)
	})

	if err := g.Wait(); err != nil {
		logger.Fatal("service exited with error", zap.Error(err))
	}

	logger.Info("service stopped")
}
