package server

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"github.com/blazmaric/DMARC-SAAS/internal/core/port"
	"github.com/blazmaric/DMARC-SAAS/internal/handler"
)

type HTTPServer struct {
	echo *echo.Echo
}

func NewHTTPServer(
	ingestionService port.IngestionService,
	aggregateService port.AggregateService,
	ingestSecret string,
	maxBodySize int64,
) *HTTPServer {
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	server := &HTTPServer{
		echo: e,
	}

	// Initialize handlers
	ingestionHandler := handler.NewIngestionHTTPHandler(ingestionService, ingestSecret, maxBodySize)
	aggregatesHandler := handler.NewAggregatesHTTPHandler(aggregateService)

	// Routes
	e.GET("/health", server.healthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.POST("/api/v1/reports/ingest", ingestionHandler.Handle())
	e.GET("/api/v1/domains/:id/aggregates", aggregatesHandler.Handle())

	return server
}

func (s *HTTPServer) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "ingestion",
	})
}

func (s *HTTPServer) Start(address string) error {
	log.Infof("Starting HTTP server on %s", address)
	return s.echo.Start(address)
}

func (s *HTTPServer) Shutdown(ctx context.Context) error {
	log.Info("Shutting down HTTP server")
	return s.echo.Shutdown(ctx)
}
