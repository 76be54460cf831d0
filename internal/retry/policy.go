package retry

import (
	"errors"
	"net"
	"strings"
	"time"
)

// ErrNetwork marks an error as a transient network failure regardless of
// its message.
var ErrNetwork = errors.New("network error")

// Policy decides how many attempts a failing fetch gets and how long to wait
// between them. It is immutable after construction.
type Policy struct {
	Initial            time.Duration // delay before the first retry
	Max                time.Duration // cap for exponential growth
	NetworkMaxAttempts int           // total attempts for network-class errors
	OtherMaxAttempts   int           // total attempts for everything else
}

// DefaultPolicy returns the dashboard query policy: 1s doubling to a 30s cap,
// three attempts for network failures and one for anything else.
func DefaultPolicy() Policy {
	return Policy{
		Initial:            time.Second,
		Max:                30 * time.Second,
		NetworkMaxAttempts: 3,
		OtherMaxAttempts:   1,
	}
}

// ShouldRetry reports whether another attempt is allowed after failures
// attempts have failed, the last one with err.
func (p Policy) ShouldRetry(failures int, err error) bool {
	if err == nil {
		return false
	}
	limit := p.OtherMaxAttempts
	if IsNetwork(err) {
		limit = p.NetworkMaxAttempts
	}
	return failures < limit
}

// Delay returns the wait before retry number attempt (0-based):
// min(Initial * 2^attempt, Max).
func (p Policy) Delay(attempt int) time.Duration {
	if attempt < 0 {
		return 0
	}
	d := p.Initial
	for range attempt {
		d *= 2
		if d >= p.Max {
			return p.Max
		}
	}
	return min(d, p.Max)
}

// IsNetwork classifies err as a network-class failure. Structured signals
// are checked first; the message heuristic covers fetch functions that only
// report text.
func IsNetwork(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrNetwork) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "network")
}
