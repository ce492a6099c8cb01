package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/blazmaric/DMARC-SAAS/internal/core/domain"
	"github.com/blazmaric/DMARC-SAAS/mocks"
)

const (
	testIngestSecret = "test-secret"
	testMaxBodySize  = 1024
)

type IngestionHTTPSuite struct {
	suite.Suite
	ingestionService *mocks.IngestionService
	handler          *IngestionHTTPHandler
	echo             *echo.Echo
}

func TestIngestionHTTPHandler(t *testing.T) {
	suite.Run(t, new(IngestionHTTPSuite))
}

func (suite *IngestionHTTPSuite) SetupTest() {
	suite.ingestionService = &mocks.IngestionService{}
	suite.handler = NewIngestionHTTPHandler(suite.ingestionService, testIngestSecret, testMaxBodySize)
	suite.echo = echo.New()
}

func (suite *IngestionHTTPSuite) TearDownTest() {
	suite.ingestionService.AssertExpectations(suite.T())
}

func (suite *IngestionHTTPSuite) ingest(secret string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports/ingest", bytes.NewReader(body))
	if secret != "" {
		req.Header.Set(IngestTokenHeader, secret)
	}
	rec := httptest.NewRecorder()
	c := suite.echo.NewContext(req, rec)

	err := suite.handler.Handle()(c)
	assert.NoError(suite.T(), err)
	return rec
}

func (suite *IngestionHTTPSuite) TestAccepted() {
	reportID := uuid.New()
	suite.ingestionService.EXPECT().Ingest(mock.Anything, []byte("raw email")).
		Return(&domain.IngestResult{ReportID: reportID, RecordCount: 2}, nil)

	rec := suite.ingest(testIngestSecret, []byte("raw email"))

	assert.Equal(suite.T(), http.StatusOK, rec.Code)

	var resp IngestReportResponse
	assert.NoError(suite.T(), json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(suite.T(), "Report processed successfully", resp.Message)
	assert.Equal(suite.T(), reportID.String(), resp.ReportID)
	assert.Equal(suite.T(), 2, resp.RecordCount)
}

func (suite *IngestionHTTPSuite) TestDuplicate() {
	reportID := uuid.New()
	suite.ingestionService.EXPECT().Ingest(mock.Anything, mock.Anything).
		Return(&domain.IngestResult{ReportID: reportID, RecordCount: 2, Duplicate: true}, nil)

	rec := suite.ingest(testIngestSecret, []byte("raw email"))

	assert.Equal(suite.T(), http.StatusOK, rec.Code)

	var resp IngestReportResponse
	assert.NoError(suite.T(), json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(suite.T(), "Report already processed", resp.Message)
}

func (suite *IngestionHTTPSuite) TestMissingSecret() {
	rec := suite.ingest("", []byte("raw email"))

	assert.Equal(suite.T(), http.StatusUnauthorized, rec.Code)
}

func (suite *IngestionHTTPSuite) TestWrongSecret() {
	rec := suite.ingest("wrong", []byte("raw email"))

	assert.Equal(suite.T(), http.StatusUnauthorized, rec.Code)
}

func (suite *IngestionHTTPSuite) TestOversizeBody() {
	body := bytes.Repeat([]byte("x"), testMaxBodySize+1)

	rec := suite.ingest(testIngestSecret, body)

	assert.Equal(suite.T(), http.StatusRequestEntityTooLarge, rec.Code)
}

func (suite *IngestionHTTPSuite) TestRejectionStatusMapping() {
	tests := []struct {
		kind   domain.RejectionKind
		status int
	}{
		{domain.RejectNoPayload, http.StatusBadRequest},
		{domain.RejectNoToken, http.StatusBadRequest},
		{domain.RejectMalformedReport, http.StatusBadRequest},
		{domain.RejectUnknownDomain, http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.Run(string(tt.kind), func() {
			suite.SetupTest()
			suite.ingestionService.EXPECT().Ingest(mock.Anything, mock.Anything).
				Return(nil, domain.Rejected(tt.kind, "rejected"))

			rec := suite.ingest(testIngestSecret, []byte("raw email"))

			assert.Equal(suite.T(), tt.status, rec.Code)
			suite.ingestionService.AssertExpectations(suite.T())
		})
	}
}

func (suite *IngestionHTTPSuite) TestInternalError() {
	suite.ingestionService.EXPECT().Ingest(mock.Anything, mock.Anything).
		Return(nil, errors.New("connection refused"))

	rec := suite.ingest(testIngestSecret, []byte("raw email"))

	assert.Equal(suite.T(), http.StatusInternalServerError, rec.Code)
}
