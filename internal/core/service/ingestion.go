package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/blazmaric/DMARC-SAAS/internal/core/domain"
	"github.com/blazmaric/DMARC-SAAS/internal/core/port"
	"github.com/blazmaric/DMARC-SAAS/internal/mail"
	"github.com/blazmaric/DMARC-SAAS/internal/metrics"
	"github.com/blazmaric/DMARC-SAAS/internal/report"
)

// IngestionService runs the full pipeline for one inbound email:
// decode, extract payload, parse, evaluate alignment, route by token,
// persist idempotently and fold the report into the daily aggregate.
type IngestionService struct {
	storage        port.ReportStorage
	notifierClient port.NotifierClient
}

func NewIngestionService(
	storage port.ReportStorage,
	notifierClient port.NotifierClient,
) *IngestionService {
	return &IngestionService{
		storage:        storage,
		notifierClient: notifierClient,
	}
}

// Ingest processes one raw email. Expected rejections come back as
// *domain.Rejection; every other error is an internal failure. Calls
// are independent and safe to run concurrently: the storage layer's
// uniqueness constraint and atomic increments carry all shared state.
func (s *IngestionService) Ingest(ctx context.Context, raw []byte) (*domain.IngestResult, error) {
	msg := mail.Decode(raw)

	payload, ok := mail.ExtractPayload(msg.Attachments)
	if !ok {
		metrics.IngestOutcomes.WithLabelValues(string(domain.RejectNoPayload)).Inc()
		return nil, domain.Rejected(domain.RejectNoPayload, "no valid report found in email")
	}

	parsed, err := report.Parse(payload)
	if err != nil {
		metrics.IngestOutcomes.WithLabelValues(string(domain.RejectMalformedReport)).Inc()
		return nil, domain.Rejected(domain.RejectMalformedReport, "report payload is not a valid aggregate report")
	}
	report.EvaluateAlignment(parsed)

	token, ok := mail.ExtractRouteToken(msg.Header("To"))
	if !ok {
		metrics.IngestOutcomes.WithLabelValues(string(domain.RejectNoToken)).Inc()
		return nil, domain.Rejected(domain.RejectNoToken, "cannot route report: no token in recipient address")
	}

	monitored, err := s.storage.LookupDomainByToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("resolving token: %w", err)
	}
	if monitored == nil {
		// Stale or forged tokens are routine, not a system failure.
		metrics.IngestOutcomes.WithLabelValues(string(domain.RejectUnknownDomain)).Inc()
		return nil, domain.Rejected(domain.RejectUnknownDomain, "no monitored domain for token")
	}

	key := parsed.Key(monitored.DomainID)
	if existingID, found, err := s.storage.FindReport(ctx, key); err != nil {
		return nil, fmt.Errorf("idempotency lookup: %w", err)
	} else if found {
		log.WithFields(log.Fields{
			"reportID": existingID,
			"orgName":  parsed.OrgName,
		}).Debug("Report already processed, absorbing re-delivery")
		metrics.IngestOutcomes.WithLabelValues("duplicate").Inc()
		return &domain.IngestResult{
			ReportID:    existingID,
			RecordCount: len(parsed.Records),
			Duplicate:   true,
		}, nil
	}

	reportID, err := s.storage.CreateReportWithRecords(ctx, monitored.DomainID, parsed)
	if errors.Is(err, port.ErrDuplicateReport) {
		// Lost the insert race against a concurrent delivery of the
		// same report; the winner's row is authoritative.
		existingID, found, lookupErr := s.storage.FindReport(ctx, key)
		if lookupErr != nil || !found {
			return nil, fmt.Errorf("resolving duplicate report after insert race: %w", lookupErr)
		}
		metrics.IngestOutcomes.WithLabelValues("duplicate").Inc()
		return &domain.IngestResult{
			ReportID:    existingID,
			RecordCount: len(parsed.Records),
			Duplicate:   true,
		}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("persisting report: %w", err)
	}

	day := utcDay(parsed.BeginDate)
	delta := domain.ComputeAggregateDelta(parsed.Records)
	if err := s.storage.IncrementDailyAggregate(ctx, monitored.DomainID, day, delta); err != nil {
		// The persisted report is the source of truth; the aggregator
		// reconciles drift from the stored records.
		metrics.AggregateMergeFailures.Inc()
		log.WithError(err).WithFields(log.Fields{
			"reportID": reportID,
			"domainID": monitored.DomainID,
			"day":      day,
		}).Error("Failed to merge daily aggregate")
	}

	s.notifyIngested(ctx, reportID, monitored.DomainID, day, len(parsed.Records))

	metrics.IngestOutcomes.WithLabelValues("accepted").Inc()
	return &domain.IngestResult{
		ReportID:    reportID,
		RecordCount: len(parsed.Records),
	}, nil
}

func (s *IngestionService) notifyIngested(ctx context.Context, reportID, domainID uuid.UUID, day time.Time, recordCount int) {
	msg := &domain.ReportIngestedMessage{
		ReportID:    reportID,
		DomainID:    domainID,
		Day:         day,
		RecordCount: recordCount,
		IngestedAt:  time.Now().UTC(),
	}
	if err := s.notifierClient.NotifyReportIngested(ctx, msg); err != nil {
		log.WithError(err).WithField("reportID", reportID).Warn("Failed to publish report.ingested")
	}
}

func utcDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
