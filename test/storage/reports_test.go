package storage

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/ory/dockertest/v3"
	"github.com/stretchr/testify/suite"

	"github.com/blazmaric/DMARC-SAAS/internal/core/domain"
	"github.com/blazmaric/DMARC-SAAS/internal/core/port"
	"github.com/blazmaric/DMARC-SAAS/internal/storage"
	"github.com/blazmaric/DMARC-SAAS/test"
)

// Matches test/sql/fixtures.sql.
var (
	fixtureDomainID  = uuid.MustParse("d290f1ee-6c54-4b01-90e6-d701748f0851")
	fixtureDomainID2 = uuid.MustParse("3f8c2a1e-9b7d-4c6f-8e2a-1d5b9c7e3f80")
)

func TestReportsStorage(t *testing.T) {
	suite.Run(t, new(ReportsSuite))
}

type ReportsSuite struct {
	suite.Suite
	dockerPool       *dockertest.Pool
	postgresResource *dockertest.Resource
	postgresDB       *sql.DB
	storage          *storage.ReportsStorage
}

func (suite *ReportsSuite) SetupSuite() {
	pool, err := dockertest.NewPool("")
	if err != nil {
		suite.T().Fatalf("Could not connect to docker: %s", err)
	}
	suite.dockerPool = pool
	db, port, postgresResource := test.SetupPostgresDB(suite.T(), pool)
	suite.postgresDB = db
	suite.postgresResource = postgresResource

	if !suite.T().Failed() {
		ctx := context.Background()
		postgresDB, err := storage.NewPostgresDB(ctx, test.PostgresHost, port, test.PostgresUser, test.PostgresPassword, test.PostgresDB)
		if err != nil {
			suite.T().Fatalf("Failed to connect to database: %v", err)
		}

		suite.storage = storage.NewReportsStorage(postgresDB)
	}
}

func (suite *ReportsSuite) SetupTest() {
	test.ExecFile(suite.T(), suite.postgresDB, "../sql/create_tables.sql")
	test.ExecFile(suite.T(), suite.postgresDB, "../sql/fixtures.sql")

	if suite.T().Failed() {
		suite.TearDownSuite()
		suite.T().FailNow()
	}
}

func (suite *ReportsSuite) TearDownSuite() {
	if suite.postgresDB != nil {
		_ = suite.postgresDB.Close()
	}
	if suite.dockerPool != nil {
		if suite.postgresResource != nil {
			_ = suite.dockerPool.Purge(suite.postgresResource)
		}
	}
}

func testReport() *domain.ParsedReport {
	envelopeFrom := "mail.example.com"
	return &domain.ParsedReport{
		OrgName:      "google.com",
		ReportID:     "14789654329725112839",
		BeginDate:    time.Unix(1700000000, 0).UTC(),
		EndDate:      time.Unix(1700086400, 0).UTC(),
		PolicyDomain: "example.com",
		Records: []domain.ParsedRecord{
			{
				SourceIP:     "192.0.2.10",
				Count:        7,
				Disposition:  domain.DispositionNone,
				DKIMResult:   "pass",
				SPFResult:    "pass",
				DKIMAligned:  true,
				SPFAligned:   true,
				HeaderFrom:   "example.com",
				EnvelopeFrom: &envelopeFrom,
			},
			{
				SourceIP:    "198.51.100.4",
				Count:       3,
				Disposition: domain.DispositionQuarantine,
				DKIMResult:  "fail",
				SPFResult:   "fail",
				HeaderFrom:  "example.com",
			},
		},
	}
}

func (suite *ReportsSuite) TestLookupDomainByToken_OK() {
	ctx := context.Background()

	monitored, err := suite.storage.LookupDomainByToken(ctx, "abc123")

	suite.NoError(err)
	suite.Require().NotNil(monitored)
	suite.Equal(fixtureDomainID, monitored.DomainID)
	suite.Equal("example.com", monitored.Name)
	suite.Equal("abc123", monitored.RouteToken)
}

func (suite *ReportsSuite) TestLookupDomainByToken_Unknown() {
	ctx := context.Background()

	monitored, err := suite.storage.LookupDomainByToken(ctx, "nobody")

	suite.NoError(err)
	suite.Nil(monitored)
}

func (suite *ReportsSuite) TestCreateAndFindReport() {
	ctx := context.Background()
	report := testReport()

	id, found, err := suite.storage.FindReport(ctx, report.Key(fixtureDomainID))
	suite.NoError(err)
	suite.False(found)
	suite.Equal(uuid.Nil, id)

	createdID, err := suite.storage.CreateReportWithRecords(ctx, fixtureDomainID, report)
	suite.Require().NoError(err)
	suite.NotEqual(uuid.Nil, createdID)

	foundID, found, err := suite.storage.FindReport(ctx, report.Key(fixtureDomainID))
	suite.NoError(err)
	suite.True(found)
	suite.Equal(createdID, foundID)

	var recordCount int
	err = suite.postgresDB.QueryRow(
		"SELECT COUNT(*) FROM dmarc_records WHERE report_id = $1", createdID).Scan(&recordCount)
	suite.NoError(err)
	suite.Equal(2, recordCount)
}

func (suite *ReportsSuite) TestCreateReport_Duplicate() {
	ctx := context.Background()
	report := testReport()

	_, err := suite.storage.CreateReportWithRecords(ctx, fixtureDomainID, report)
	suite.Require().NoError(err)

	_, err = suite.storage.CreateReportWithRecords(ctx, fixtureDomainID, report)
	suite.ErrorIs(err, port.ErrDuplicateReport)
}

func (suite *ReportsSuite) TestCreateReport_SameKeyDifferentDomain() {
	ctx := context.Background()
	report := testReport()

	_, err := suite.storage.CreateReportWithRecords(ctx, fixtureDomainID, report)
	suite.Require().NoError(err)

	// The natural key includes the domain, so the same report for
	// another monitored domain is a distinct row.
	_, err = suite.storage.CreateReportWithRecords(ctx, fixtureDomainID2, report)
	suite.NoError(err)
}

func (suite *ReportsSuite) TestIncrementDailyAggregate_Accumulates() {
	ctx := context.Background()
	day := time.Date(2023, 11, 14, 0, 0, 0, 0, time.UTC)

	err := suite.storage.IncrementDailyAggregate(ctx, fixtureDomainID, day,
		domain.AggregateDelta{Total: 10, PassAligned: 7, FailAligned: 3})
	suite.Require().NoError(err)

	err = suite.storage.IncrementDailyAggregate(ctx, fixtureDomainID, day,
		domain.AggregateDelta{Total: 5, PassAligned: 1, FailAligned: 4})
	suite.Require().NoError(err)

	aggregates, err := suite.storage.GetDailyAggregates(ctx, fixtureDomainID, day, day)
	suite.Require().NoError(err)
	suite.Require().Len(aggregates, 1)

	agg := aggregates[0]
	suite.Equal(int64(15), agg.Total)
	suite.Equal(int64(8), agg.PassAligned)
	suite.Equal(int64(7), agg.FailAligned)
	suite.Equal(agg.Total, agg.PassAligned+agg.FailAligned)
}

func (suite *ReportsSuite) TestIncrementDailyAggregate_PerDomainRows() {
	ctx := context.Background()
	day := time.Date(2023, 11, 14, 0, 0, 0, 0, time.UTC)

	err := suite.storage.IncrementDailyAggregate(ctx, fixtureDomainID, day,
		domain.AggregateDelta{Total: 10, PassAligned: 7, FailAligned: 3})
	suite.Require().NoError(err)

	aggregates, err := suite.storage.GetDailyAggregates(ctx, fixtureDomainID2, day, day)
	suite.NoError(err)
	suite.Empty(aggregates)
}

func (suite *ReportsSuite) TestRebuildDailyAggregate() {
	ctx := context.Background()
	report := testReport()
	day := time.Date(2023, 11, 14, 0, 0, 0, 0, time.UTC)

	_, err := suite.storage.CreateReportWithRecords(ctx, fixtureDomainID, report)
	suite.Require().NoError(err)

	// Seed a drifted row; the rebuild overwrites it from the records.
	err = suite.storage.IncrementDailyAggregate(ctx, fixtureDomainID, day,
		domain.AggregateDelta{Total: 999, PassAligned: 999, FailAligned: 0})
	suite.Require().NoError(err)

	err = suite.storage.RebuildDailyAggregate(ctx, fixtureDomainID, day)
	suite.Require().NoError(err)

	aggregates, err := suite.storage.GetDailyAggregates(ctx, fixtureDomainID, day, day)
	suite.Require().NoError(err)
	suite.Require().Len(aggregates, 1)

	agg := aggregates[0]
	suite.Equal(int64(10), agg.Total)
	suite.Equal(int64(7), agg.PassAligned)
	suite.Equal(int64(3), agg.FailAligned)
}

func (suite *ReportsSuite) TestGetDailyAggregates_RangeAndOrder() {
	ctx := context.Background()

	day1 := time.Date(2023, 11, 12, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2023, 11, 13, 0, 0, 0, 0, time.UTC)
	day3 := time.Date(2023, 11, 14, 0, 0, 0, 0, time.UTC)

	for _, day := range []time.Time{day3, day1, day2} {
		err := suite.storage.IncrementDailyAggregate(ctx, fixtureDomainID, day,
			domain.AggregateDelta{Total: 1, PassAligned: 1})
		suite.Require().NoError(err)
	}

	aggregates, err := suite.storage.GetDailyAggregates(ctx, fixtureDomainID, day1, day2)
	suite.Require().NoError(err)
	suite.Require().Len(aggregates, 2)
	suite.True(aggregates[0].Date.Before(aggregates[1].Date))
}
