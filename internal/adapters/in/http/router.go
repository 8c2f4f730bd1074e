package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"storefront/internal/generated/servers"
	"storefront/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
)

// NewEcho builds the echo instance with middleware, the error handler and all
// routes. API requests are validated against the embedded OpenAPI document
// before they reach s.
func NewEcho(s *Server, m *metrics.Metrics, gatherer prometheus.Gatherer) (*echo.Echo, error) {
	doc, err := servers.GetSwagger()
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	validator, err := RequestValidator(doc)
	if err != nil {
		return nil, fmt.Errorf("build request validator: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = errorHandler(s.logger)

	e.Use(requestLogger(s.logger, m))
	e.Use(Identify())
	e.Use(validator)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	if gatherer != nil {
		e.GET("/metrics", echo.WrapHandler(metrics.Handler(gatherer)))
	}

	servers.RegisterHandlers(e, s)
	return e, nil
}

// requestLogger logs every request and records it in the request metrics.
// Errors are rendered here so the logged status is the one sent to the client.
func requestLogger(logger *slog.Logger, m *metrics.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			if err := next(c); err != nil {
				c.Error(err)
			}
			elapsed := time.Since(start)

			req := c.Request()
			status := c.Response().Status
			route := c.Path()
			if route == "" {
				route = "unmatched"
			}

			m.ObserveRequest(route, req.Method, status, elapsed)
			logger.InfoContext(req.Context(), "request",
				"method", req.Method,
				"route", route,
				"uri", req.RequestURI,
				"status", status,
				"latency_ms", elapsed.Milliseconds(),
			)
			return nil
		}
	}
}
