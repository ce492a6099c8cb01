package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/blazmaric/DMARC-SAAS/internal/core/domain"
)

type ReportStorage interface {
	// LookupDomainByToken resolves a routing token to a monitored
	// domain; (nil, nil) when no domain matches.
	LookupDomainByToken(ctx context.Context, token string) (*domain.MonitoredDomain, error)

	// FindReport returns the id of an already-persisted report with the
	// given natural key, or ok=false.
	FindReport(ctx context.Context, key domain.ReportKey) (uuid.UUID, bool, error)

	// CreateReportWithRecords persists a report and all of its records
	// as one atomic unit. Returns ErrDuplicateReport when the
	// natural key already exists.
	CreateReportWithRecords(ctx context.Context, domainID uuid.UUID, report *domain.ParsedReport) (uuid.UUID, error)

	// IncrementDailyAggregate atomically folds a delta into the
	// (domainID, day) aggregate row, creating it when absent.
	IncrementDailyAggregate(ctx context.Context, domainID uuid.UUID, day time.Time, delta domain.AggregateDelta) error

	// RebuildDailyAggregate recomputes the (domainID, day) row from the
	// persisted records in a single statement.
	RebuildDailyAggregate(ctx context.Context, domainID uuid.UUID, day time.Time) error

	// GetDailyAggregates returns aggregate rows for a domain within
	// [from, to], ordered by date.
	GetDailyAggregates(ctx context.Context, domainID uuid.UUID, from, to time.Time) ([]domain.DailyAggregate, error)
}
