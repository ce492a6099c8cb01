package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/blazmaric/DMARC-SAAS/internal/core/domain"
	"github.com/blazmaric/DMARC-SAAS/internal/core/port"
)

// SQLSTATE for unique constraint violations.
const uniqueViolation = "23505"

type ReportsStorage struct {
	db *PostgresDB
}

func NewReportsStorage(db *PostgresDB) *ReportsStorage {
	return &ReportsStorage{
		db: db,
	}
}

func (s *ReportsStorage) LookupDomainByToken(ctx context.Context, token string) (*domain.MonitoredDomain, error) {
	var d domain.MonitoredDomain
	err := s.db.QueryRow(ctx,
		"SELECT id, customer_id, domain_name, rua_token FROM domains WHERE rua_token = $1",
		token,
	).Scan(&d.DomainID, &d.CustomerID, &d.Name, &d.RouteToken)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &d, nil
}

func (s *ReportsStorage) FindReport(ctx context.Context, key domain.ReportKey) (uuid.UUID, bool, error) {
	var id uuid.UUID
	err := s.db.QueryRow(ctx,
		`SELECT id FROM dmarc_reports
		 WHERE domain_id = $1 AND org_name = $2 AND report_id = $3
		   AND begin_date = $4 AND end_date = $5`,
		key.DomainID,
		key.OrgName,
		key.ReportID,
		key.BeginDate,
		key.EndDate,
	).Scan(&id)

	if errors.Is(err, pgx.ErrNoRows) {
		return uuid.Nil, false, nil
	}
	if err != nil {
		return uuid.Nil, false, err
	}

	return id, true, nil
}

// CreateReportWithRecords persists the report and all of its records in
// one transaction: either the full record set becomes visible or
// nothing does. A natural-key collision surfaces as
// port.ErrDuplicateReport.
func (s *ReportsStorage) CreateReportWithRecords(ctx context.Context, domainID uuid.UUID, report *domain.ParsedReport) (uuid.UUID, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return uuid.Nil, err
	}
	defer tx.Rollback(ctx)

	var reportID uuid.UUID
	err = tx.QueryRow(ctx,
		`INSERT INTO dmarc_reports (domain_id, org_name, report_id, begin_date, end_date)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		domainID,
		report.OrgName,
		report.ReportID,
		report.BeginDate,
		report.EndDate,
	).Scan(&reportID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return uuid.Nil, port.ErrDuplicateReport
		}
		return uuid.Nil, err
	}

	recordInsert := `
		INSERT INTO dmarc_records (report_id, source_ip, count, disposition,
			dkim_result, spf_result, dkim_aligned, spf_aligned, header_from, envelope_from)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	for _, rec := range report.Records {
		_, err := tx.Exec(ctx, recordInsert,
			reportID,
			rec.SourceIP,
			rec.Count,
			string(rec.Disposition),
			rec.DKIMResult,
			rec.SPFResult,
			rec.DKIMAligned,
			rec.SPFAligned,
			rec.HeaderFrom,
			rec.EnvelopeFrom,
		)
		if err != nil {
			return uuid.Nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return uuid.Nil, err
	}

	return reportID, nil
}

// IncrementDailyAggregate folds a delta into the (domain, day) row with
// a single upsert-with-increment, so concurrent merges for the same key
// serialize inside Postgres instead of losing updates.
func (s *ReportsStorage) IncrementDailyAggregate(ctx context.Context, domainID uuid.UUID, day time.Time, delta domain.AggregateDelta) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO daily_aggregates (domain_id, date, total, pass_aligned, fail_aligned)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (domain_id, date)
		 DO UPDATE SET
		     total = daily_aggregates.total + EXCLUDED.total,
		     pass_aligned = daily_aggregates.pass_aligned + EXCLUDED.pass_aligned,
		     fail_aligned = daily_aggregates.fail_aligned + EXCLUDED.fail_aligned`,
		domainID,
		day,
		delta.Total,
		delta.PassAligned,
		delta.FailAligned,
	)
	if err != nil {
		return fmt.Errorf("incrementing daily aggregate: %w", err)
	}
	return nil
}

// RebuildDailyAggregate recomputes the (domain, day) row from the
// persisted records in one statement. Reports whose begin date falls on
// the given UTC day contribute; the row is overwritten, not
// incremented.
func (s *ReportsStorage) RebuildDailyAggregate(ctx context.Context, domainID uuid.UUID, day time.Time) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO daily_aggregates (domain_id, date, total, pass_aligned, fail_aligned)
		 SELECT $1, $2::date,
		        COALESCE(SUM(rec.count), 0),
		        COALESCE(SUM(rec.count) FILTER (WHERE rec.dkim_aligned AND rec.spf_aligned), 0),
		        COALESCE(SUM(rec.count) FILTER (WHERE NOT (rec.dkim_aligned AND rec.spf_aligned)), 0)
		 FROM dmarc_records rec
		 JOIN dmarc_reports rep ON rep.id = rec.report_id
		 WHERE rep.domain_id = $1
		   AND (rep.begin_date AT TIME ZONE 'UTC')::date = $2::date
		 ON CONFLICT (domain_id, date)
		 DO UPDATE SET
		     total = EXCLUDED.total,
		     pass_aligned = EXCLUDED.pass_aligned,
		     fail_aligned = EXCLUDED.fail_aligned`,
		domainID,
		day,
	)
	if err != nil {
		return fmt.Errorf("rebuilding daily aggregate: %w", err)
	}
	return nil
}

func (s *ReportsStorage) GetDailyAggregates(ctx context.Context, domainID uuid.UUID, from, to time.Time) ([]domain.DailyAggregate, error) {
	rows, err := s.db.Query(ctx,
		`SELECT domain_id, date, total, pass_aligned, fail_aligned
		 FROM daily_aggregates
		 WHERE domain_id = $1 AND date BETWEEN $2 AND $3
		 ORDER BY date`,
		domainID,
		from,
		to,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var aggregates []domain.DailyAggregate
	for rows.Next() {
		var agg domain.DailyAggregate
		if err := rows.Scan(&agg.DomainID, &agg.Date, &agg.Total, &agg.PassAligned, &agg.FailAligned); err != nil {
			return nil, err
		}
		aggregates = append(aggregates, agg)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return aggregates, nil
}
