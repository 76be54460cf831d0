package vitals

import (
	"errors"
	"log/slog"
	"sync"

	"pharmaconnect/internal/metrics"
)

const firstContentfulPaint = "first-contentful-paint"

const (
	MetricFCP = "web_vitals_fcp"
	MetricLCP = "web_vitals_lcp"
	MetricCLS = "web_vitals_cls"
)

type Recorder interface {
	Record(name string, value float64, unit string, tags ...metrics.Tag)
}

type Vitals struct {
	FCP *float64 `json:"fcp"`
	LCP *float64 `json:"lcp"`
	CLS *float64 `json:"cls"`
}

// Observer derives FCP, LCP and CLS from a Source and forwards each value
// to the recorder.
type Observer struct {
	recorder Recorder
	logger   *slog.Logger
	tags     []metrics.Tag

	mu      sync.Mutex
	vitals  Vitals
	cls     float64
	fcpSeen bool
	stops   []func()
}

func NewObserver(recorder Recorder, logger *slog.Logger, tags ...metrics.Tag) *Observer {
	return &Observer{recorder: recorder, logger: logger, tags: tags}
}

// Start subscribes to the paint, LCP and layout-shift streams. If the source
// cannot provide any of them the observer stays inert.
func (o *Observer) Start(src Source) {
	streams := []struct {
		entryType string
		handle    func([]Entry)
	}{
		{EntryPaint, o.onPaint},
		{EntryLargestContentfulPaint, o.onLCP},
		{EntryLayoutShift, o.onLayoutShift},
	}

	stops := make([]func(), 0, len(streams))
	for _, s := range streams {
		stop, err := src.Observe(s.entryType, s.handle)
		if err != nil {
			for _, stop := range stops {
				stop()
			}
			if !errors.Is(err, ErrUnsupported) {
				o.logger.Debug("performance observer unavailable",
					slog.String("entry_type", s.entryType),
					slog.String("error", err.Error()))
			}
			return
		}
		stops = append(stops, stop)
	}

	o.mu.Lock()
	o.stops = append(o.stops, stops...)
	o.mu.Unlock()
}

func (o *Observer) Stop() {
	o.mu.Lock()
	stops := o.stops
	o.stops = nil
	o.mu.Unlock()

	for _, stop := range stops {
		stop()
	}
}

func (o *Observer) Snapshot() Vitals {
	o.mu.Lock()
	defer o.mu.Unlock()
	return Vitals{
		FCP: copyValue(o.vitals.FCP),
		LCP: copyValue(o.vitals.LCP),
		CLS: copyValue(o.vitals.CLS),
	}
}

func (o *Observer) onPaint(entries []Entry) {
	o.mu.Lock()
	if o.fcpSeen {
		o.mu.Unlock()
		return
	}
	var (
		value float64
		found bool
	)
	for _, e := range entries {
		if e.Name == firstContentfulPaint {
			value, found = e.StartTime, true
			break
		}
	}
	if found {
		o.fcpSeen = true
		o.vitals.FCP = &value
	}
	o.mu.Unlock()

	if found {
		o.recorder.Record(MetricFCP, value, metrics.UnitMilliseconds, o.tags...)
	}
}

// onLCP keeps only the last candidate of each batch; later candidates
// supersede earlier ones.
func (o *Observer) onLCP(entries []Entry) {
	if len(entries) == 0 {
		return
	}
	value := entries[len(entries)-1].StartTime

	o.mu.Lock()
	o.vitals.LCP = &value
	o.mu.Unlock()

	o.recorder.Record(MetricLCP, value, metrics.UnitMilliseconds, o.tags...)
}

// onLayoutShift adds shifts not caused by recent input to the running total
// and records the total.
func (o *Observer) onLayoutShift(entries []Entry) {
	o.mu.Lock()
	for _, e := range entries {
		if !e.HadRecentInput {
			o.cls += e.Value
		}
	}
	total := o.cls
	o.vitals.CLS = &total
	o.mu.Unlock()

	o.recorder.Record(MetricCLS, total, metrics.UnitScore, o.tags...)
}

func copyValue(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
