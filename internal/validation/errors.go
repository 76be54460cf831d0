package validation

import "errors"

var (
	ErrTooManyEntries    = errors.New("too many performance entries")
	ErrTooManyResources  = errors.New("too many resource entries")
	ErrTooManySamples    = errors.New("too many custom samples")
	ErrInvalidPage       = errors.New("invalid page")
	ErrUnsafeProtocol    = errors.New("page protocol not allowed")
	ErrInvalidTiming     = errors.New("invalid navigation timing")
	ErrUnknownEntryType  = errors.New("unknown entry type")
	ErrInvalidValue      = errors.New("value must be a finite non-negative number")
	ErrInvalidMetricName = errors.New("invalid metric name")
	ErrInvalidUnit       = errors.New("unsupported metric unit")
	ErrInvalidCode       = errors.New("invalid session code")
)

// BeaconValidationError lists every rejected item of a beacon.
type BeaconValidationError struct {
	Errors []IndexedError
}

type IndexedError struct {
	Field string
	Index int
	Err   error
}

func (e *BeaconValidationError) Error() string {
	return "beacon validation failed"
}
