package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"net/http/pprof"

	"github.com/labstack/echo/v4"

	"pharmaconnect/internal/config"
)

const (
	pprofPrefix     = "/debug/pprof"
	pprofAuthHeader = "X-Pprof-Secret"
)

var errPprofUnauthorized = map[string]string{"error": "unauthorized"}

// PprofAuth requires the shared secret in X-Pprof-Secret. An empty secret
// leaves the group open.
func PprofAuth(secret string) echo.MiddlewareFunc {
	secretBytes := []byte(secret)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if secret == "" {
				return next(c)
			}
			provided := c.Request().Header.Get(pprofAuthHeader)
			if subtle.ConstantTimeCompare([]byte(provided), secretBytes) != 1 {
				return c.JSON(http.StatusUnauthorized, errPprofUnauthorized)
			}
			return next(c)
		}
	}
}

var pprofProfiles = []string{"allocs", "block", "goroutine", "heap", "mutex", "threadcreate"}

// RegisterPprof mounts the runtime profiles under /debug/pprof when enabled
// and reports whether it did.
func RegisterPprof(e *echo.Echo, cfg *config.PprofConfig, logger *slog.Logger) bool {
	if !cfg.Enabled {
		return false
	}
	if cfg.Secret == "" {
		logger.Warn("pprof enabled without a secret")
	}

	g := e.Group(pprofPrefix, PprofAuth(cfg.Secret))
	g.GET("/", echo.WrapHandler(http.HandlerFunc(pprof.Index)))
	g.GET("/cmdline", echo.WrapHandler(http.HandlerFunc(pprof.Cmdline)))
	g.GET("/profile", echo.WrapHandler(http.HandlerFunc(pprof.Profile)))
	g.GET("/symbol", echo.WrapHandler(http.HandlerFunc(pprof.Symbol)))
	g.POST("/symbol", echo.WrapHandler(http.HandlerFunc(pprof.Symbol)))
	g.GET("/trace", echo.WrapHandler(http.HandlerFunc(pprof.Trace)))
	for _, name := range pprofProfiles {
		g.GET("/"+name, echo.WrapHandler(pprof.Handler(name)))
	}

	logger.Info("pprof endpoints enabled", slog.String("path", pprofPrefix+"/*"))
	return true
}
