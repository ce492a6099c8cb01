package client

import (
	"context"

	"github.com/blazmaric/DMARC-SAAS/internal/core/domain"
)

type Publisher interface {
	Publish(ctx context.Context, exchange, routingKey string, message any) error
}

type AMQPNotifier struct {
	publisher Publisher
}

func NewAMQPNotifier(publisher Publisher) *AMQPNotifier {
	return &AMQPNotifier{
		publisher: publisher,
	}
}

func (n *AMQPNotifier) NotifyReportIngested(ctx context.Context, message *domain.ReportIngestedMessage) error {
	return n.publisher.Publish(ctx, domain.ReportExchange, domain.RoutingKeyReportIngested, message)
}
