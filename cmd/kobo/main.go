package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"kobo/internal/backend"
	"kobo/internal/config"
	"kobo/internal/events"
	"kobo/internal/export"
	apphttp "kobo/internal/http"
	"kobo/internal/ledger"
	"kobo/internal/log"
)

func main() {
	// Load .env if present; real environment variables win.
	_ = godotenv.Load()

	logger := log.New(log.ComponentApp, log.Config{})
	log.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration", log.FieldError, err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	factory := backend.NewFactory(logger.Logger)
	result, err := factory.Create(cfg)
	if err != nil {
		logger.Error("Failed to initialize storage backend",
			log.FieldError, err, log.FieldBackend, cfg.StoreBackend)
		os.Exit(1)
	}
	if result.Cleanup != nil {
		defer func() {
			if err := result.Cleanup(); err != nil {
				logger.Error("Storage cleanup failed", log.FieldError, err)
			}
		}()
	}

	// Event publishing is optional; the dashboard runs fine without a broker.
	var publisher ledger.Publisher
	if cfg.AMQPURL != "" {
		client, err := events.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			logger.Error("Failed to connect to AMQP broker", log.FieldError, err)
			os.Exit(1)
		}
		defer client.Close()
		publisher = client
		logger.Info("AMQP event publishing enabled",
			"exchange", cfg.AMQPExchange, "queue", cfg.AMQPQueue)
	}

	var delivery export.Delivery
	if cfg.ExportDir != "" {
		delivery, err = export.NewDirDelivery(cfg.ExportDir)
		if err != nil {
			logger.Error("Failed to initialize export directory", log.FieldError, err)
			os.Exit(1)
		}
		logger.Info("Export delivery enabled", "dir", cfg.ExportDir)
	}

	service := ledger.NewService(result.Store, cfg.StorageKey, publisher)
	if err := service.Load(ctx); err != nil {
		logger.Error("Failed to load ledger",
			log.FieldError, err, log.FieldStorageKey, cfg.StorageKey)
		os.Exit(1)
	}

	srv := apphttp.NewServer(":"+cfg.Port, service, delivery)
	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 10 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Starting kobo server",
			log.FieldOperation, log.OpStartup, "port", cfg.Port, log.FieldBackend, cfg.StoreBackend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutdown signal received", log.FieldOperation, log.OpShutdown)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server error", log.FieldError, err)
		os.Exit(1)
	}
	logger.Info("Server stopped gracefully")
}
