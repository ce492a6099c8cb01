package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"github.com/blazmaric/DMARC-SAAS/internal/cache"
	"github.com/blazmaric/DMARC-SAAS/internal/client"
	"github.com/blazmaric/DMARC-SAAS/internal/config"
	"github.com/blazmaric/DMARC-SAAS/internal/core/port"
	"github.com/blazmaric/DMARC-SAAS/internal/core/service"
	"github.com/blazmaric/DMARC-SAAS/internal/infrastructure/amqp"
	"github.com/blazmaric/DMARC-SAAS/internal/server"
	"github.com/blazmaric/DMARC-SAAS/internal/storage"
)

func main() {
	// Initialize logger
	log.SetFormatter(&log.JSONFormatter{})
	log.SetLevel(log.InfoLevel)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Create AMQP client
	amqpClient, err := amqp.NewClient(cfg.AMQPURL)
	if err != nil {
		log.Fatalf("Failed to create AMQP client: %v", err)
	}
	defer amqpClient.Close()
	publisher := amqp.NewPublisher(amqpClient)
	notifier := client.NewAMQPNotifier(publisher)

	ctx := context.Background()
	db, err := storage.NewPostgresDB(ctx, cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	var reportStorage port.ReportStorage = storage.NewReportsStorage(db)

	// Token lookups ride a redis read-through cache when configured.
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("Invalid REDIS_URL: %v", err)
		}
		reportStorage = cache.NewTokenCachingStorage(reportStorage, redis.NewClient(opt))
	}

	// Set up topology (exchanges, queues, bindings)
	if err := amqp.SetupTopology(amqpClient); err != nil {
		log.Fatalf("Failed to setup AMQP topology: %v", err)
	}

	ingestionService := service.NewIngestionService(reportStorage, notifier)
	aggregateService := service.NewAggregateService(reportStorage)

	httpServer := server.NewHTTPServer(ingestionService, aggregateService, cfg.IngestSecret, cfg.MaxBodySize)

	// Start HTTP server in a goroutine
	go func() {
		if err := httpServer.Start(cfg.HTTPAddr); err != nil {
			log.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	log.Info("Ingestion service started successfully")

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Info("Shutting down ingestion service...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Error shutting down HTTP server: %v", err)
	}
}
