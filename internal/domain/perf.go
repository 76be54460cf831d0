package domain

import (
	"math"
	"time"

	"pharmaconnect/internal/vitals"
)

// NavigationTiming holds the page-load phases in whole milliseconds. It is
// captured once per session.
type NavigationTiming struct {
	DNS      int64 `json:"dns"`
	Connect  int64 `json:"connect"`
	Request  int64 `json:"request"`
	Response int64 `json:"response"`
	DOMLoad  int64 `json:"dom_load"`
	PageLoad int64 `json:"page_load"`
}

// NavigationEntry is the browser's navigation timing entry. Offsets are
// milliseconds relative to StartTime.
type NavigationEntry struct {
	StartTime                float64 `json:"start_time"`
	DomainLookupStart        float64 `json:"domain_lookup_start"`
	DomainLookupEnd          float64 `json:"domain_lookup_end"`
	ConnectStart             float64 `json:"connect_start"`
	ConnectEnd               float64 `json:"connect_end"`
	RequestStart             float64 `json:"request_start"`
	ResponseStart            float64 `json:"response_start"`
	ResponseEnd              float64 `json:"response_end"`
	DOMContentLoadedEventEnd float64 `json:"dom_content_loaded_event_end"`
	LoadEventEnd             float64 `json:"load_event_end"`
}

// Loaded reports whether the load event has completed.
func (n NavigationEntry) Loaded() bool {
	return n.LoadEventEnd > 0
}

func (n NavigationEntry) Timing() NavigationTiming {
	return NavigationTiming{
		DNS:      span(n.DomainLookupStart, n.DomainLookupEnd),
		Connect:  span(n.ConnectStart, n.ConnectEnd),
		Request:  span(n.RequestStart, n.ResponseStart),
		Response: span(n.ResponseStart, n.ResponseEnd),
		DOMLoad:  span(n.StartTime, n.DOMContentLoadedEventEnd),
		PageLoad: span(n.StartTime, n.LoadEventEnd),
	}
}

func span(from, to float64) int64 {
	return max(0, int64(math.Round(to-from)))
}

type ResourceEntry struct {
	Name          string  `json:"name"`
	InitiatorType string  `json:"initiator_type"`
	StartTime     float64 `json:"start_time"`
	Duration      float64 `json:"duration"`
	TransferSize  int64   `json:"transfer_size"`
}

type CustomSample struct {
	Name  string            `json:"name"`
	Value float64           `json:"value"`
	Unit  string            `json:"unit"`
	Tags  map[string]string `json:"tags,omitempty"`
}

// Beacon is one batch of performance data sent by a page.
type Beacon struct {
	Page              string           `json:"page"`
	ObserverSupported bool             `json:"observer_supported"`
	Navigation        *NavigationEntry `json:"navigation,omitempty"`
	Resources         []ResourceEntry  `json:"resources,omitempty"`
	Entries           []vitals.Entry   `json:"entries,omitempty"`
	Samples           []CustomSample   `json:"samples,omitempty"`
}

type CreateSessionResponse struct {
	Code      string    `json:"code"`
	CreatedAt time.Time `json:"created_at"`
}

type SessionVitalsResponse struct {
	Code       string            `json:"code"`
	Vitals     vitals.Vitals     `json:"vitals"`
	Navigation *NavigationTiming `json:"navigation"`
}

type BeaconResponse struct {
	Accepted int `json:"accepted"`
}
