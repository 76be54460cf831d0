package middleware

//go:generate go tool mockery

import (
	"cmp"
	"time"

	"github.com/labstack/echo/v4"

	"pharmaconnect/internal/metrics"
)

const MetricRequestDuration = "http_request_duration"

type Recorder interface {
	Record(name string, value float64, unit string, tags ...metrics.Tag)
}

// Timing records the duration of every request under its route template.
func Timing(recorder Recorder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			duration := time.Since(start)
			status := c.Response().Status
			if he, ok := err.(*echo.HTTPError); ok {
				status = he.Code
			} else if err != nil && !c.Response().Committed {
				status = 500
			}

			recorder.Record(MetricRequestDuration, float64(duration.Microseconds())/1000.0, metrics.UnitMilliseconds,
				metrics.String("method", c.Request().Method),
				metrics.String("route", cmp.Or(c.Path(), "/")),
				metrics.Int("status", int64(status)),
				metrics.String("client_ip", c.RealIP()),
			)

			return err
		}
	}
}
