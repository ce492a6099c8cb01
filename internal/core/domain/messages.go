package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	ReportExchange           = "report"
	ReportAggregationQueue   = "report.aggregation"
	RoutingKeyReportIngested = "report.ingested"
)

// ReportIngestedMessage is published after a report and its records
// have been persisted. The aggregator consumes it to reconcile the
// affected daily aggregate row from the stored records.
type ReportIngestedMessage struct {
	ReportID    uuid.UUID `json:"report_id" validate:"required"`
	DomainID    uuid.UUID `json:"domain_id" validate:"required"`
	Day         time.Time `json:"day" validate:"required"`
	RecordCount int       `json:"record_count" validate:"min=0"`
	IngestedAt  time.Time `json:"ingested_at" validate:"required"`
}
