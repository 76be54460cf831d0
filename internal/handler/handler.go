package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"

	"pharmaconnect/internal/domain"
	"pharmaconnect/internal/metrics"
	"pharmaconnect/internal/query"
	"pharmaconnect/internal/service"
	"pharmaconnect/internal/session"
	"pharmaconnect/internal/validation"
)

const maxSourceLength = 64

var (
	errInvalidBody      = map[string]string{"error": "invalid request body"}
	errInvalidCode      = map[string]string{"error": "invalid session code"}
	errSessionNotFound  = map[string]string{"error": "session not found"}
	errCreateFailed     = map[string]string{"error": "failed to create session"}
	errIngestFailed     = map[string]string{"error": "failed to ingest beacon"}
	errFlushFailed      = map[string]string{"error": "failed to flush metrics"}
	errInvalidID        = map[string]string{"error": "invalid company id"}
	errCompanyNotFound  = map[string]string{"error": "company not found"}
	errInvalidSource    = map[string]string{"error": "invalid alert source"}
	errQueryFailed      = map[string]string{"error": "failed to load data"}
	errQueryAborted     = map[string]string{"error": "request aborted"}
	errTooManyEntries   = map[string]string{"error": "too many performance entries"}
	errTooManyResources = map[string]string{"error": "too many resource entries"}
	errTooManySamples   = map[string]string{"error": "too many custom samples"}
	errInvalidPage      = map[string]string{"error": "invalid page"}
	errUnsafePage       = map[string]string{"error": "page protocol not allowed"}
	errInvalidTiming    = map[string]string{"error": "invalid navigation timing"}
	respHealthOK        = map[string]string{"status": "ok"}
)

type Handler struct {
	tracker   SessionTracker
	validator BeaconValidator
	telemetry Telemetry
	dashboard DashboardService
	logger    *slog.Logger
}

func New(
	tracker SessionTracker,
	validator BeaconValidator,
	telemetry Telemetry,
	dashboard DashboardService,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		tracker:   tracker,
		validator: validator,
		telemetry: telemetry,
		dashboard: dashboard,
		logger:    logger,
	}
}

func (h *Handler) Register(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.GET("/health", h.Health)

	perf := api.Group("/perf")
	perf.POST("/sessions", h.CreateSession)
	perf.POST("/sessions/:code/beacon", h.IngestBeacon)
	perf.GET("/sessions/:code/vitals", h.SessionVitals)
	perf.DELETE("/sessions/:code", h.EndSession)
	perf.GET("/metrics", h.Metrics)
	perf.POST("/flush", h.Flush)

	api.GET("/companies", h.Companies)
	api.GET("/companies/:id", h.Company)
	api.POST("/companies/:id/invalidate", h.InvalidateCompany)
	api.GET("/alerts", h.Alerts)
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, respHealthOK)
}

func (h *Handler) CreateSession(c echo.Context) error {
	code, createdAt, err := h.tracker.Create(c.Request().Context())
	if err != nil {
		h.logger.Error("failed to create session", slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errCreateFailed)
	}
	return c.JSON(http.StatusCreated, domain.CreateSessionResponse{Code: code, CreatedAt: createdAt})
}

func (h *Handler) IngestBeacon(c echo.Context) error {
	code := c.Param("code")
	if err := h.validator.ValidateCode(code); err != nil {
		return c.JSON(http.StatusBadRequest, errInvalidCode)
	}

	var beacon domain.Beacon
	if err := c.Bind(&beacon); err != nil {
		h.logger.Error("failed to bind beacon", slog.String("error", err.Error()))
		return c.JSON(http.StatusBadRequest, errInvalidBody)
	}
	if beacon.Page == "" {
		beacon.Page = refererPage(c.Request().Referer())
	}

	if err := h.validator.ValidateBeacon(&beacon); err != nil {
		return h.handleValidationError(c, err)
	}

	accepted, err := h.tracker.Ingest(c.Request().Context(), code, beacon)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return c.JSON(http.StatusNotFound, errSessionNotFound)
		}
		h.logger.Error("failed to ingest beacon", slog.String("session", code), slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errIngestFailed)
	}

	return c.JSON(http.StatusAccepted, domain.BeaconResponse{Accepted: accepted})
}

func (h *Handler) SessionVitals(c echo.Context) error {
	code := c.Param("code")
	if err := h.validator.ValidateCode(code); err != nil {
		return c.JSON(http.StatusBadRequest, errInvalidCode)
	}

	v, err := h.tracker.Vitals(code)
	if err != nil {
		return c.JSON(http.StatusNotFound, errSessionNotFound)
	}
	nav, err := h.tracker.Navigation(code)
	if err != nil {
		return c.JSON(http.StatusNotFound, errSessionNotFound)
	}

	return c.JSON(http.StatusOK, domain.SessionVitalsResponse{Code: code, Vitals: v, Navigation: nav})
}

func (h *Handler) EndSession(c echo.Context) error {
	code := c.Param("code")
	if err := h.validator.ValidateCode(code); err != nil {
		return c.JSON(http.StatusBadRequest, errInvalidCode)
	}
	if err := h.tracker.End(code); err != nil {
		return c.JSON(http.StatusNotFound, errSessionNotFound)
	}
	return c.NoContent(http.StatusNoContent)
}

// Metrics returns the recorder's recent samples, newest last.
func (h *Handler) Metrics(c echo.Context) error {
	name := c.QueryParam("name")

	samples := h.telemetry.History()
	if name != "" {
		filtered := samples[:0:0]
		for _, s := range samples {
			if s.Name == name {
				filtered = append(filtered, s)
			}
		}
		samples = filtered
	}
	if samples == nil {
		samples = []metrics.Sample{}
	}

	return c.JSON(http.StatusOK, map[string]any{
		"samples": samples,
		"pending": h.telemetry.Pending(),
	})
}

func (h *Handler) Flush(c echo.Context) error {
	flushed, err := h.telemetry.Flush(c.Request().Context())
	if err != nil {
		h.logger.Error("manual flush failed", slog.String("error", err.Error()))
		return c.JSON(http.StatusBadGateway, errFlushFailed)
	}
	return c.JSON(http.StatusOK, map[string]int{"flushed": flushed})
}

func (h *Handler) Companies(c echo.Context) error {
	resp, err := h.dashboard.Companies(c.Request().Context())
	if err != nil {
		return h.handleQueryError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) Company(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, errInvalidID)
	}

	resp, err := h.dashboard.Company(c.Request().Context(), id)
	if err != nil {
		return h.handleQueryError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) InvalidateCompany(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, errInvalidID)
	}
	return c.JSON(http.StatusOK, map[string]int{"invalidated": h.dashboard.InvalidateCompany(id)})
}

func (h *Handler) Alerts(c echo.Context) error {
	source := c.QueryParam("source")
	if len(source) > maxSourceLength {
		return c.JSON(http.StatusBadRequest, errInvalidSource)
	}

	resp, err := h.dashboard.Alerts(c.Request().Context(), source)
	if err != nil {
		return h.handleQueryError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) handleQueryError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrCompanyNotFound):
		return c.JSON(http.StatusNotFound, errCompanyNotFound)
	case errors.Is(err, query.ErrAborted):
		return c.JSON(http.StatusServiceUnavailable, errQueryAborted)
	default:
		h.logger.Error("query failed", slog.String("path", c.Path()), slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errQueryFailed)
	}
}

func (h *Handler) handleValidationError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, validation.ErrTooManyEntries):
		return c.JSON(http.StatusRequestEntityTooLarge, errTooManyEntries)
	case errors.Is(err, validation.ErrTooManyResources):
		return c.JSON(http.StatusRequestEntityTooLarge, errTooManyResources)
	case errors.Is(err, validation.ErrTooManySamples):
		return c.JSON(http.StatusRequestEntityTooLarge, errTooManySamples)
	case errors.Is(err, validation.ErrInvalidPage):
		return c.JSON(http.StatusBadRequest, errInvalidPage)
	case errors.Is(err, validation.ErrUnsafeProtocol):
		return c.JSON(http.StatusBadRequest, errUnsafePage)
	case errors.Is(err, validation.ErrInvalidTiming):
		return c.JSON(http.StatusBadRequest, errInvalidTiming)
	default:
		var beaconErr *validation.BeaconValidationError
		if errors.As(err, &beaconErr) {
			return c.JSON(http.StatusBadRequest, formatBeaconErrors(beaconErr))
		}
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "validation failed"})
	}
}

func formatBeaconErrors(err *validation.BeaconValidationError) map[string]any {
	errs := make([]map[string]any, len(err.Errors))
	for i, e := range err.Errors {
		errs[i] = map[string]any{
			"field": e.Field,
			"index": e.Index,
			"error": e.Err.Error(),
		}
	}
	return map[string]any{"errors": errs}
}

// refererPage is the path of the page that sent the beacon, or empty when
// the referer is missing or not an absolute http(s) URL.
func refererPage(referer string) string {
	if referer == "" {
		return ""
	}
	parsed, err := url.Parse(referer)
	if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return ""
	}
	if parsed.Path == "" {
		return "/"
	}
	return parsed.Path
}
