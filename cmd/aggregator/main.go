package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"

	"github.com/blazmaric/DMARC-SAAS/internal/config"
	"github.com/blazmaric/DMARC-SAAS/internal/core/domain"
	"github.com/blazmaric/DMARC-SAAS/internal/core/service"
	"github.com/blazmaric/DMARC-SAAS/internal/handler"
	"github.com/blazmaric/DMARC-SAAS/internal/infrastructure/amqp"
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

	ctx := context.Background()
	db, err := storage.NewPostgresDB(ctx, cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	reportStorage := storage.NewReportsStorage(db)

	// Set up topology (exchanges, queues, bindings)
	if err := amqp.SetupTopology(amqpClient); err != nil {
		log.Fatalf("Failed to setup AMQP topology: %v", err)
	}

	validate := validator.New()
	aggregateService := service.NewAggregateService(reportStorage)
	messageHandler := handler.NewAMQPConsumer(
		aggregateService,
		validate,
		cfg.NumWorkers,
		cfg.QueueSize,
	)

	consumer := amqp.NewConsumer(amqpClient, messageHandler)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	messageHandler.Start(ctx)

	if err := consumer.Consume(ctx, domain.ReportAggregationQueue); err != nil {
		log.Fatalf("Failed to start consumer: %v", err)
	}

	log.Info("Aggregator service started successfully")
	log.Infof("Consuming messages from queue: %s", domain.ReportAggregationQueue)

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Info("Shutting down aggregator service...")
	cancel()

	drainCtx, drainCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer drainCancel()
	messageHandler.Stop(drainCtx)
}
