package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/flowdesk/wacrm/internal/adapter"
	"github.com/flowdesk/wacrm/internal/config"
	"github.com/flowdesk/wacrm/internal/lifecycle"
	"github.com/flowdesk/wacrm/internal/logger"
	"github.com/flowdesk/wacrm/internal/messaging"
	"github.com/flowdesk/wacrm/internal/meta"
	"github.com/flowdesk/wacrm/internal/poller"
	"github.com/flowdesk/wacrm/internal/providers/jetstream"
	"github.com/flowdesk/wacrm/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadPollerConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:     cfg.Debug,
		SentryDSN: cfg.SentryDSN,
		Tags: map[string]string{
			"service": "status-poller",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting WACRM Status Poller")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	// Initialize store
	dataStore := store.NewPGStore(db)

	// Initialize adapters
	clock := adapter.NewClock()
	httpClient := adapter.NewHTTPClient(cfg.Meta.HTTPTimeout)

	// Initialize Meta Graph API client
	metaClient := meta.NewClient(meta.Config{
		GraphURL:           cfg.Meta.GraphURL,
		APIVersion:         cfg.Meta.APIVersion,
		DefaultWABAID:      cfg.Meta.DefaultWABAID,
		DefaultAccessToken: cfg.Meta.DefaultAccessToken,
	}, httpClient, dataStore)

	// Connect to NATS for outbound template events
	var publisher messaging.Publisher
	if cfg.NATS.URL != "" {
		publisher, err = jetstream.NewPublisher(jetstream.Config{
			URL:            cfg.NATS.URL,
			StreamName:     cfg.NATS.StreamName,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
			ConnectionName: cfg.NATS.ConnectionName,
		}, adapter.NewNatsJetStream(), adapter.NewJSON())
		if err != nil {
			logger.FatalCtx(ctx, "Failed to connect to NATS", zap.Error(err), zap.String("url", cfg.NATS.URL))
		}
		defer publisher.Close()
		logger.InfoCtx(ctx, "Connected to NATS", zap.String("stream", cfg.NATS.StreamName))
	} else {
		logger.WarnCtx(ctx, "NATS URL not configured, template events will not be published")
	}

	// Initialize lifecycle manager
	manager := lifecycle.NewManager(dataStore, metaClient, publisher, clock)

	// Initialize status poller and wire it back into the manager so terminal
	// decisions cancel their polling jobs
	statusPoller := poller.NewPoller(poller.Config{
		PollInterval:    cfg.Poller.Interval,
		MaxAttempts:     cfg.Poller.MaxAttempts,
		RescanInterval:  cfg.Poller.RescanInterval,
		RescanBatchSize: cfg.Poller.RescanBatchSize,
		WorkerPoolSize:  cfg.Poller.Worker.PoolSize,
	}, dataStore, metaClient, manager, clock)
	manager.SetDeregistrar(statusPoller)

	logger.InfoCtx(ctx, "Initialized status poller",
		zap.Duration("poll_interval", cfg.Poller.Interval),
		zap.Int("max_attempts", cfg.Poller.MaxAttempts),
		zap.Duration("rescan_interval", cfg.Poller.RescanInterval),
	)

	// Start the poller in a goroutine
	errChan := make(chan error, 1)
	go func() {
		if err := statusPoller.Start(ctx); err != nil {
			errChan <- err
		}
	}()

	// Wait for interrupt signal or error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errChan:
		logger.ErrorCtx(ctx, err)
	}

	// Cancel context to stop the poller
	cancel()

	// Give the poller time to shut down gracefully
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := statusPoller.Stop(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err)
	}

	logger.InfoCtx(shutdownCtx, "Status poller stopped")
}
