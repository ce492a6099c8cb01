package handler

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	amqp "github.com/rabbitmq/amqp091-go"
	log "github.com/sirupsen/logrus"

	"github.com/blazmaric/DMARC-SAAS/internal/core/domain"
	"github.com/blazmaric/DMARC-SAAS/internal/core/port"
)

type reconcileJob struct {
	message domain.ReportIngestedMessage
}

type AMQPConsumer struct {
	aggregateService port.AggregateService
	validate         *validator.Validate
	jobQueue         chan reconcileJob
	wg               sync.WaitGroup
	numWorkers       int
}

func NewAMQPConsumer(
	aggregateService port.AggregateService,
	validate *validator.Validate,
	numWorkers int,
	queueSize int,
) *AMQPConsumer {
	return &AMQPConsumer{
		aggregateService: aggregateService,
		validate:         validate,
		jobQueue:         make(chan reconcileJob, queueSize),
		numWorkers:       numWorkers,
	}
}

// Start launches the worker pool. Call this before consuming messages.
func (c *AMQPConsumer) Start(ctx context.Context) {
	for i := 0; i < c.numWorkers; i++ {
		c.wg.Add(1)
		go c.worker(ctx, i)
	}
	log.Infof("Started %d aggregate reconciliation workers", c.numWorkers)
}

// Stop gracefully shuts down workers after draining the queue.
func (c *AMQPConsumer) Stop(ctx context.Context) {
	close(c.jobQueue)

	workersDone := make(chan struct{})
	go func() {
		c.wg.Wait()
		close(workersDone)
	}()

	select {
	case <-workersDone:
		log.Info("All aggregate workers stopped after drain.")
	case <-ctx.Done():
		log.Info("Aggregate worker shutdown timed out.")
	}
}

func (c *AMQPConsumer) worker(ctx context.Context, workerID int) {
	defer c.wg.Done()
	for {
		select {
		case <-ctx.Done():
			log.Warnf("[AggregateWorker %d] Context cancelled, stopping", workerID)
			return
		case job, ok := <-c.jobQueue:
			if !ok {
				log.Infof("[AggregateWorker %d] Queue closed, stopping", workerID)
				return
			}
			jobCtx, cancel := context.WithTimeout(ctx, time.Minute)
			if err := c.aggregateService.Reconcile(jobCtx, job.message); err != nil {
				log.WithError(err).WithField("reportID", job.message.ReportID).Error("Aggregate reconciliation failed")
			}
			cancel()
		}
	}
}

func (c *AMQPConsumer) Handle(ctx context.Context, delivery *amqp.Delivery) {
	var err error

	switch delivery.RoutingKey {
	case domain.RoutingKeyReportIngested:
		err = c.handleReportIngestedMessage(ctx, delivery)
	default:
		log.Errorf("unsupported routing key %s", delivery.RoutingKey)
	}

	if err != nil {
		delivery.Nack(false, false) // Send to a retry / dead-letter queue instead
		return
	}
	delivery.Ack(false)
}

func (c *AMQPConsumer) handleReportIngestedMessage(_ context.Context, delivery *amqp.Delivery) error {
	var message domain.ReportIngestedMessage

	if err := json.Unmarshal(delivery.Body, &message); err != nil {
		log.Errorf("failed to unmarshal report ingested message: %v", err)
		return err
	}

	// Validate the message
	if err := c.validate.Struct(message); err != nil {
		log.Errorf("report ingested message validation failed: %v", err)
		return err
	}

	log.WithFields(log.Fields{
		"reportID":    message.ReportID,
		"domainID":    message.DomainID,
		"day":         message.Day.Format("2006-01-02"),
		"recordCount": message.RecordCount,
	}).Info("Received ingested report for aggregate reconciliation")

	// Submit to worker pool (blocks if queue is full, providing backpressure)
	c.jobQueue <- reconcileJob{message: message}

	return nil
}
