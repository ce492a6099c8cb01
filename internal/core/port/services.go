package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/blazmaric/DMARC-SAAS/internal/core/domain"
)

type IngestionService interface {
	// Ingest runs the full pipeline on one raw email. Expected
	// rejections are returned as *domain.Rejection; anything else is an
	// internal failure.
	Ingest(ctx context.Context, raw []byte) (*domain.IngestResult, error)
}

type AggregateService interface {
	Reconcile(ctx context.Context, msg domain.ReportIngestedMessage) error
	DailyAggregates(ctx context.Context, domainID uuid.UUID, from, to time.Time) ([]domain.DailyAggregate, error)
}
