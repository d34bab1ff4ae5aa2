// Package api exposes the usage report over HTTP. The API never performs
// cost logic itself; it orchestrates the fetcher and the report core and
// serializes the result.
package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"neoncost/core/pricing"
	"neoncost/core/report"
	"neoncost/internal/errors"
	"neoncost/internal/logging"
)

// Server serves usage reports as JSON.
type Server struct {
	echo    *echo.Echo
	fetcher report.Fetcher
	orgID   string
	sched   pricing.Schedule
	version string
}

// NewServer creates the report server.
func NewServer(f report.Fetcher, orgID string, sched pricing.Schedule, version string) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	s := &Server{
		echo:    e,
		fetcher: f,
		orgID:   orgID,
		sched:   sched,
		version: version,
	}

	e.GET("/report", s.handleReport)
	e.GET("/health", s.handleHealth)
	e.GET("/version", s.handleVersion)
	return s
}

// Start blocks serving on addr.
func (s *Server) Start(addr string) error {
	logging.Info("starting report server", zap.String("addr", addr))
	return s.echo.Start(addr)
}

// Handler exposes the underlying handler for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

func (s *Server) handleReport(c echo.Context) error {
	r, err := report.Generate(c.Request().Context(), s.fetcher, s.orgID, s.sched, time.Now().UTC())
	if err != nil {
		logging.Error("report generation failed", zap.Error(err))
		return c.JSON(statusFor(err), map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, r)
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleVersion(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"version": s.version})
}

// statusFor maps the error taxonomy onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.IsType(err, errors.TypeAuth):
		return http.StatusUnauthorized
	case errors.IsType(err, errors.TypeInput):
		return http.StatusBadRequest
	case errors.IsType(err, errors.TypeRateLimit):
		return http.StatusTooManyRequests
	case errors.IsType(err, errors.TypeNotFound):
		return http.StatusNotFound
	default:
		return http.StatusBadGateway
	}
}
