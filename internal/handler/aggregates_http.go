package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"github.com/blazmaric/DMARC-SAAS/internal/core/port"
)

type AggregatesHTTPHandler struct {
	aggregateService port.AggregateService
}

type DailyAggregateResponse struct {
	Date        string `json:"date"`
	Total       int64  `json:"total"`
	PassAligned int64  `json:"pass_aligned"`
	FailAligned int64  `json:"fail_aligned"`
}

func NewAggregatesHTTPHandler(aggregateService port.AggregateService) *AggregatesHTTPHandler {
	return &AggregatesHTTPHandler{
		aggregateService: aggregateService,
	}
}

// Handle serves the per-domain daily aggregate rows for the dashboard.
// Defaults to the trailing 30 days when no range is given.
func (h *AggregatesHTTPHandler) Handle() echo.HandlerFunc {
	return func(c echo.Context) error {
		domainID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": "Invalid domain id",
			})
		}

		to := time.Now().UTC()
		from := to.AddDate(0, 0, -30)
		if v := c.QueryParam("from"); v != "" {
			if from, err = time.Parse("2006-01-02", v); err != nil {
				return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid from date"})
			}
		}
		if v := c.QueryParam("to"); v != "" {
			if to, err = time.Parse("2006-01-02", v); err != nil {
				return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid to date"})
			}
		}

		aggregates, err := h.aggregateService.DailyAggregates(c.Request().Context(), domainID, from, to)
		if err != nil {
			log.WithError(err).WithField("domainID", domainID).Error("Failed to fetch daily aggregates")
			return c.JSON(http.StatusInternalServerError, map[string]string{
				"error": "Internal server error",
			})
		}

		resp := make([]DailyAggregateResponse, 0, len(aggregates))
		for _, agg := range aggregates {
			resp = append(resp, DailyAggregateResponse{
				Date:        agg.Date.Format("2006-01-02"),
				Total:       agg.Total,
				PassAligned: agg.PassAligned,
				FailAligned: agg.FailAligned,
			})
		}

		return c.JSON(http.StatusOK, map[string]any{"aggregates": resp})
	}
}
