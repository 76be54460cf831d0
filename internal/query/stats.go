package query

import (
	prom "github.com/prometheus/client_golang/prometheus"
)

type Stats struct {
	fetches  *prom.CounterVec
	retries  prom.Counter
	lookups  *prom.CounterVec
	preloads *prom.CounterVec
}

func NewStats(reg prom.Registerer) *Stats {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	s := &Stats{
		fetches: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "pharmaconnect",
			Subsystem: "query",
			Name:      "fetches_total",
			Help:      "Query fetches by outcome",
		}, []string{"result"}),
		retries: prom.NewCounter(prom.CounterOpts{
			Namespace: "pharmaconnect",
			Subsystem: "query",
			Name:      "retries_total",
			Help:      "Query fetch retries after a failed attempt",
		}),
		lookups: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "pharmaconnect",
			Subsystem: "query",
			Name:      "cache_lookups_total",
			Help:      "Cache lookups by freshness",
		}, []string{"result"}),
		preloads: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "pharmaconnect",
			Subsystem: "query",
			Name:      "preloads_total",
			Help:      "Related-entry preloads by outcome",
		}, []string{"result"}),
	}
	reg.MustRegister(s.fetches, s.retries, s.lookups, s.preloads)
	return s
}

func (s *Stats) fetch(result string) {
	if s == nil {
		return
	}
	s.fetches.WithLabelValues(result).Inc()
}

func (s *Stats) retry() {
	if s == nil {
		return
	}
	s.retries.Inc()
}

func (s *Stats) lookup(result string) {
	if s == nil {
		return
	}
	s.lookups.WithLabelValues(result).Inc()
}

func (s *Stats) preload(result string) {
	if s == nil {
		return
	}
	s.preloads.WithLabelValues(result).Inc()
}
