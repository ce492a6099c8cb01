package domain

import (
	"time"

	"github.com/google/uuid"
)

// Disposition is the policy action a receiver applied to a message.
type Disposition string

const (
	DispositionNone       Disposition = "none"
	DispositionQuarantine Disposition = "quarantine"
	DispositionReject     Disposition = "reject"
)

// MonitoredDomain is a customer domain registered for DMARC monitoring.
// Inbound reports are routed to it via the RouteToken embedded in the
// local part of the receiving address.
type MonitoredDomain struct {
	DomainID   uuid.UUID
	CustomerID uuid.UUID
	Name       string
	RouteToken string
}

// ReportKey is the natural key of an aggregate report. Two deliveries
// carrying the same key are the same report.
type ReportKey struct {
	DomainID  uuid.UUID
	OrgName   string
	ReportID  string
	BeginDate time.Time
	EndDate   time.Time
}

// ParsedReport is a normalized DMARC aggregate report as extracted from
// an inbound email. OrgName, ReportID, BeginDate and EndDate are always
// set; the parser rejects reports missing any of them.
type ParsedReport struct {
	OrgName      string
	ReportID     string
	BeginDate    time.Time
	EndDate      time.Time
	PolicyDomain string
	Records      []ParsedRecord
}

// Key builds the natural key for this report under the given domain.
func (r *ParsedReport) Key(domainID uuid.UUID) ReportKey {
	return ReportKey{
		DomainID:  domainID,
		OrgName:   r.OrgName,
		ReportID:  r.ReportID,
		BeginDate: r.BeginDate,
		EndDate:   r.EndDate,
	}
}

// AuthResult is a single detailed authentication result
// (auth_results.dkim or auth_results.spf entry).
type AuthResult struct {
	Domain   string
	Result   string
	Selector string
}

// ParsedRecord is one row of an aggregate report. Count is a
// multiplicity: one record can stand for many delivered messages, so
// aggregation always sums Count, never the number of records.
type ParsedRecord struct {
	SourceIP     string
	Count        int
	Disposition  Disposition
	DKIMResult   string
	SPFResult    string
	DKIMAligned  bool
	SPFAligned   bool
	HeaderFrom   string
	EnvelopeFrom *string

	// Detailed per-mechanism results when the report carries them.
	// When non-empty they are authoritative for alignment; the summary
	// DKIMResult/SPFResult verdicts are only a fallback.
	DKIMAuth []AuthResult
	SPFAuth  []AuthResult
}

// DailyAggregate holds running totals for one domain and one UTC day.
// total = pass_aligned + fail_aligned holds after every merge.
type DailyAggregate struct {
	DomainID    uuid.UUID
	Date        time.Time
	Total       int64
	PassAligned int64
	FailAligned int64
}

// AggregateDelta is the per-report contribution folded into a
// DailyAggregate row by a single atomic increment.
type AggregateDelta struct {
	Total       int64
	PassAligned int64
	FailAligned int64
}

// ComputeAggregateDelta sums record counts: a record counts toward
// PassAligned only when both DKIM and SPF are aligned.
func ComputeAggregateDelta(records []ParsedRecord) AggregateDelta {
	var d AggregateDelta
	for _, rec := range records {
		d.Total += int64(rec.Count)
		if rec.DKIMAligned && rec.SPFAligned {
			d.PassAligned += int64(rec.Count)
		}
	}
	d.FailAligned = d.Total - d.PassAligned
	return d
}

// IngestResult is returned for both newly persisted and re-delivered
// reports; re-deliveries reference the existing report.
type IngestResult struct {
	ReportID    uuid.UUID
	RecordCount int
	Duplicate   bool
}
