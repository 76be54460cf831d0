package validation

import (
	"math"
	"net/url"
	"regexp"
	"strings"

	"pharmaconnect/internal/config"
	"pharmaconnect/internal/domain"
	"pharmaconnect/internal/metrics"
	"pharmaconnect/internal/vitals"
)

const maxPageLength = 2048

var blockedProtocols = map[string]bool{
	"javascript": true,
	"data":       true,
	"file":       true,
	"vbscript":   true,
	"about":      true,
	"blob":       true,
}

var allowedProtocols = map[string]bool{
	"http":  true,
	"https": true,
}

var knownEntryTypes = map[string]bool{
	vitals.EntryPaint:                  true,
	vitals.EntryLargestContentfulPaint: true,
	vitals.EntryLayoutShift:            true,
}

var knownUnits = map[string]bool{
	metrics.UnitMilliseconds: true,
	metrics.UnitMegabytes:    true,
	metrics.UnitBytes:        true,
	metrics.UnitScore:        true,
	metrics.UnitCount:        true,
}

var metricName = regexp.MustCompile(`^[a-z][a-z0-9_]{0,63}$`)

type CodeDecoder interface {
	Decode(code string) (uint64, bool)
}

type BeaconValidator struct {
	maxEntries   int
	maxResources int
	maxSamples   int
	codes        CodeDecoder
}

func NewBeaconValidator(cfg config.ValidationConfig, codes CodeDecoder) *BeaconValidator {
	return &BeaconValidator{
		maxEntries:   cfg.MaxEntries,
		maxResources: cfg.MaxResources,
		maxSamples:   cfg.MaxSamples,
		codes:        codes,
	}
}

func (v *BeaconValidator) ValidateCode(code string) error {
	if _, ok := v.codes.Decode(code); !ok {
		return ErrInvalidCode
	}
	return nil
}

// ValidateBeacon checks limits first, then each item. Item errors are
// collected into a BeaconValidationError.
func (v *BeaconValidator) ValidateBeacon(b *domain.Beacon) error {
	if len(b.Entries) > v.maxEntries {
		return ErrTooManyEntries
	}
	if len(b.Resources) > v.maxResources {
		return ErrTooManyResources
	}
	if len(b.Samples) > v.maxSamples {
		return ErrTooManySamples
	}

	if b.Page != "" {
		if err := ValidatePage(b.Page); err != nil {
			return err
		}
	}
	if b.Navigation != nil && !validNavigation(b.Navigation) {
		return ErrInvalidTiming
	}

	var errs []IndexedError
	for i, e := range b.Entries {
		switch {
		case !knownEntryTypes[e.EntryType]:
			errs = append(errs, IndexedError{Field: "entries", Index: i, Err: ErrUnknownEntryType})
		case !validNumber(e.StartTime) || !validNumber(e.Duration) || !validNumber(e.Value):
			errs = append(errs, IndexedError{Field: "entries", Index: i, Err: ErrInvalidValue})
		}
	}
	for i, r := range b.Resources {
		if !validNumber(r.Duration) || !validNumber(r.StartTime) || r.TransferSize < 0 {
			errs = append(errs, IndexedError{Field: "resources", Index: i, Err: ErrInvalidValue})
		}
	}
	for i, s := range b.Samples {
		switch {
		case !metricName.MatchString(s.Name):
			errs = append(errs, IndexedError{Field: "samples", Index: i, Err: ErrInvalidMetricName})
		case !knownUnits[s.Unit]:
			errs = append(errs, IndexedError{Field: "samples", Index: i, Err: ErrInvalidUnit})
		case !validNumber(s.Value):
			errs = append(errs, IndexedError{Field: "samples", Index: i, Err: ErrInvalidValue})
		}
	}

	if len(errs) > 0 {
		return &BeaconValidationError{Errors: errs}
	}
	return nil
}

// ValidatePage accepts an absolute path or an http(s) URL.
func ValidatePage(page string) error {
	if len(page) > maxPageLength || strings.TrimSpace(page) != page {
		return ErrInvalidPage
	}

	parsed, err := url.Parse(page)
	if err != nil {
		return ErrInvalidPage
	}

	scheme := strings.ToLower(parsed.Scheme)
	if blockedProtocols[scheme] {
		return ErrUnsafeProtocol
	}
	if scheme == "" {
		if !strings.HasPrefix(page, "/") || strings.HasPrefix(page, "//") {
			return ErrInvalidPage
		}
		return nil
	}
	if !allowedProtocols[scheme] || parsed.Host == "" {
		return ErrInvalidPage
	}
	return nil
}

func validNavigation(n *domain.NavigationEntry) bool {
	for _, f := range []float64{
		n.StartTime, n.DomainLookupStart, n.DomainLookupEnd, n.ConnectStart, n.ConnectEnd,
		n.RequestStart, n.ResponseStart, n.ResponseEnd, n.DOMContentLoadedEventEnd, n.LoadEventEnd,
	} {
		if !validNumber(f) {
			return false
		}
	}
	return true
}

func validNumber(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0) && f >= 0
}
