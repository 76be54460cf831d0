package metrics

import (
	prom "github.com/prometheus/client_golang/prometheus"
)

// Stats exposes the recorder's own delivery counters to Prometheus.
type Stats struct {
	samples *prom.CounterVec
	flushes *prom.CounterVec
	batched prom.Counter
}

func NewStats(reg prom.Registerer) *Stats {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	s := &Stats{
		samples: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "pharmaconnect",
			Subsystem: "telemetry",
			Name:      "samples_total",
			Help:      "Samples handled by the recorder by outcome",
		}, []string{"result"}),
		flushes: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "pharmaconnect",
			Subsystem: "telemetry",
			Name:      "flushes_total",
			Help:      "Batch flushes by outcome",
		}, []string{"result"}),
		batched: prom.NewCounter(prom.CounterOpts{
			Namespace: "pharmaconnect",
			Subsystem: "telemetry",
			Name:      "flushed_samples_total",
			Help:      "Samples persisted through batch flushes",
		}),
	}
	reg.MustRegister(s.samples, s.flushes, s.batched)
	return s
}

func (s *Stats) incSample(result string) {
	if s == nil {
		return
	}
	s.samples.WithLabelValues(result).Inc()
}

func (s *Stats) flushOK(n int) {
	if s == nil {
		return
	}
	s.flushes.WithLabelValues("success").Inc()
	s.batched.Add(float64(n))
}

func (s *Stats) flushFailed() {
	if s == nil {
		return
	}
	s.flushes.WithLabelValues("failed").Inc()
}
