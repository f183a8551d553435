// main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"murray-moving/cmd"
	"murray-moving/internal/data/repository"
	"murray-moving/internal/notify"
	"murray-moving/internal/wire"
	"murray-moving/pkg/database"
	"murray-moving/pkg/metrics"
	"murray-moving/pkg/scheduler"
	"murray-moving/pkg/utils"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	// Load config
	configFile := os.Getenv("CONFIG_FILE")
	if configFile == "" {
		configFile = ".env"
	}
	config, err := utils.LoadConfig(configFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
		zap.String("storage", config.Storage.Driver),
		zap.String("session_store", config.Session.Store),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize repositories
	var repos *repository.Repository
	switch config.Storage.Driver {
	case utils.StoragePostgres:
		db, err := database.Connect(ctx, config.Database)
		if err != nil {
			logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()
		logger.Info("Database connected successfully")

		if config.Database.Migrate {
			if err := database.Migrate(ctx, db); err != nil {
				logger.Fatal("Failed to run migrations", zap.Error(err))
			}
			logger.Info("Database migrations applied")
		}

		repos = repository.NewRepository(db, logger)
	default:
		logger.Warn("Using in-memory storage; data is lost on restart")
		repos = repository.NewMemoryRepository(logger)
	}

	if config.Session.Store == utils.StorageRedis {
		rdb := redis.NewClient(&redis.Options{
			Addr:     config.Redis.Addr,
			Password: config.Redis.Password,
			DB:       config.Redis.DB,
		})
		defer rdb.Close()

		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Fatal("Failed to connect to redis", zap.Error(err), zap.String("addr", config.Redis.Addr))
		}
		logger.Info("Redis connected successfully", zap.String("addr", config.Redis.Addr))

		repos.Session = repository.NewRedisSessionRepository(rdb, logger)
	}

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	appMetrics := metrics.New(config.Metrics.Prefix, registry)

	// Notification dispatcher
	var sender notify.Sender = &notify.LogSender{Log: logger}
	if config.Email.Host != "" {
		sender = &notify.SMTPSender{
			Host:     config.Email.Host,
			Port:     config.Email.Port,
			User:     config.Email.User,
			Password: config.Email.Password,
		}
	} else {
		logger.Warn("SMTP_HOST not set; quote notifications will only be logged")
	}
	dispatcher := notify.NewDispatcher(sender, notify.Config{
		From:      config.Email.From,
		To:        config.Email.To,
		QueueSize: config.Notify.QueueSize,
		Timeout:   config.Notify.Timeout(),
	}, logger, appMetrics)

	// Wire all dependencies
	app := wire.Wiring(wire.Deps{
		Repo:     repos,
		Notifier: dispatcher,
		Metrics:  appMetrics,
		Gatherer: registry,
	}, config, logger)

	if err := app.Service.Auth.EnsureAdmin(ctx); err != nil {
		logger.Fatal("Failed to seed admin user", zap.Error(err))
	}

	// Housekeeping
	jobs := scheduler.New(logger)
	if err := jobs.Add("session-cleanup", config.Session.CleanupSchedule, func(ctx context.Context) error {
		removed, err := app.Service.Auth.CleanExpiredSessions(ctx)
		if err != nil {
			return err
		}
		logger.Info("Expired sessions removed", zap.Int64("count", removed))
		return nil
	}); err != nil {
		logger.Fatal("Failed to schedule session cleanup", zap.Error(err))
	}
	if err := jobs.Add("rate-limit-prune", "@every 10m", func(ctx context.Context) error {
		app.Limiter.Prune()
		return nil
	}); err != nil {
		logger.Fatal("Failed to schedule rate limiter pruning", zap.Error(err))
	}
	jobs.Start()

	// Start server
	if err := cmd.APIServer(ctx, app.Router, config.App.Port, logger); err != nil {
		logger.Error("HTTP server stopped", zap.Error(err))
	}

	// Shutdown: notifications, then jobs; DB and Redis close via defer
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := dispatcher.Close(shutdownCtx); err != nil {
		logger.Warn("Notification dispatcher did not drain", zap.Error(err))
	}
	if err := jobs.Stop(shutdownCtx); err != nil {
		logger.Warn("Scheduler did not stop cleanly", zap.Error(err))
	}

	logger.Info("Application stopped")
}
