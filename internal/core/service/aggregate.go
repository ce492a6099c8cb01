package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/blazmaric/DMARC-SAAS/internal/core/domain"
	"github.com/blazmaric/DMARC-SAAS/internal/core/port"
)

// AggregateService reconciles daily aggregate rows from persisted
// records and serves aggregate reads. Reports are the source of truth;
// a merge that failed during ingestion is repaired here.
type AggregateService struct {
	storage port.ReportStorage
}

func NewAggregateService(storage port.ReportStorage) *AggregateService {
	return &AggregateService{storage: storage}
}

// Reconcile recomputes the aggregate row touched by an ingested report.
func (a *AggregateService) Reconcile(ctx context.Context, msg domain.ReportIngestedMessage) error {
	day := utcDay(msg.Day)
	if err := a.storage.RebuildDailyAggregate(ctx, msg.DomainID, day); err != nil {
		return fmt.Errorf("rebuilding aggregate for domain %s day %s: %w",
			msg.DomainID, day.Format("2006-01-02"), err)
	}

	log.WithFields(log.Fields{
		"domainID": msg.DomainID,
		"day":      day.Format("2006-01-02"),
		"reportID": msg.ReportID,
	}).Debug("Daily aggregate reconciled")
	return nil
}

func (a *AggregateService) DailyAggregates(ctx context.Context, domainID uuid.UUID, from, to time.Time) ([]domain.DailyAggregate, error) {
	return a.storage.GetDailyAggregates(ctx, domainID, utcDay(from), utcDay(to))
}
