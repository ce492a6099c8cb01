package amqp

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/blazmaric/DMARC-SAAS/internal/core/domain"
)

// SetupTopology declares the report exchange, the aggregation queue and
// the binding that routes report.ingested events into it.
func SetupTopology(client *Client) error {
	ch := client.Channel()

	err := ch.ExchangeDeclare(
		domain.ReportExchange,
		"topic", // type
		true,    // durable
		false,   // auto-deleted
		false,   // internal
		false,   // no-wait
		nil,     // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare exchange %q: %w", domain.ReportExchange, err)
	}

	_, err = ch.QueueDeclare(
		domain.ReportAggregationQueue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare queue %q: %w", domain.ReportAggregationQueue, err)
	}

	err = ch.QueueBind(
		domain.ReportAggregationQueue,
		domain.RoutingKeyReportIngested,
		domain.ReportExchange,
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to bind queue %q: %w", domain.ReportAggregationQueue, err)
	}

	log.Info("AMQP topology setup completed")
	return nil
}
