package handler

import (
	"crypto/subtle"
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"github.com/blazmaric/DMARC-SAAS/internal/core/domain"
	"github.com/blazmaric/DMARC-SAAS/internal/core/port"
)

// IngestTokenHeader carries the shared ingest secret set by the mail
// forwarder that delivers raw message bytes to this service.
const IngestTokenHeader = "X-Ingest-Token"

type IngestionHTTPHandler struct {
	ingestionService port.IngestionService
	ingestSecret     string
	maxBodySize      int64
}

type IngestReportResponse struct {
	Message     string `json:"message"`
	ReportID    string `json:"report_id"`
	RecordCount int    `json:"record_count"`
}

func NewIngestionHTTPHandler(ingestionService port.IngestionService, ingestSecret string, maxBodySize int64) *IngestionHTTPHandler {
	return &IngestionHTTPHandler{
		ingestionService: ingestionService,
		ingestSecret:     ingestSecret,
		maxBodySize:      maxBodySize,
	}
}

// Handle accepts raw email bytes and runs the ingestion pipeline.
// Expected rejections map to 4xx responses and are not logged as
// errors; most mail hitting this endpoint is not a DMARC report.
func (h *IngestionHTTPHandler) Handle() echo.HandlerFunc {
	return func(c echo.Context) error {
		secret := c.Request().Header.Get(IngestTokenHeader)
		if subtle.ConstantTimeCompare([]byte(secret), []byte(h.ingestSecret)) != 1 {
			return c.JSON(http.StatusUnauthorized, map[string]string{
				"error": "Invalid or missing ingest token",
			})
		}

		if c.Request().ContentLength > h.maxBodySize {
			return c.JSON(http.StatusRequestEntityTooLarge, map[string]string{
				"error": "Request body too large",
			})
		}

		// Limit the read as well: Content-Length is client-supplied.
		raw, err := io.ReadAll(io.LimitReader(c.Request().Body, h.maxBodySize+1))
		if err != nil {
			log.WithError(err).Error("Failed to read ingest request body")
			return c.JSON(http.StatusInternalServerError, map[string]string{
				"error": "Failed to read request body",
			})
		}
		if int64(len(raw)) > h.maxBodySize {
			return c.JSON(http.StatusRequestEntityTooLarge, map[string]string{
				"error": "Request body too large",
			})
		}

		result, err := h.ingestionService.Ingest(c.Request().Context(), raw)
		if err != nil {
			var rej *domain.Rejection
			if errors.As(err, &rej) {
				return c.JSON(rejectionStatus(rej.Kind), map[string]string{
					"error": rej.Reason,
				})
			}
			log.WithError(err).Error("Report ingestion failed")
			return c.JSON(http.StatusInternalServerError, map[string]string{
				"error": "Internal server error",
			})
		}

		message := "Report processed successfully"
		if result.Duplicate {
			message = "Report already processed"
		}

		return c.JSON(http.StatusOK, IngestReportResponse{
			Message:     message,
			ReportID:    result.ReportID.String(),
			RecordCount: result.RecordCount,
		})
	}
}

func rejectionStatus(kind domain.RejectionKind) int {
	if kind == domain.RejectUnknownDomain {
		return http.StatusNotFound
	}
	return http.StatusBadRequest
}
