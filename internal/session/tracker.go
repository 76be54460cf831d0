package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"pharmaconnect/internal/config"
	"pharmaconnect/internal/domain"
	"pharmaconnect/internal/metrics"
	"pharmaconnect/internal/scheduler"
	"pharmaconnect/internal/vitals"
)

var ErrNotFound = errors.New("session not found")

const (
	MetricDNSLookup    = "dns_lookup_time"
	MetricTCPConnect   = "tcp_connect_time"
	MetricRequest      = "request_time"
	MetricResponse     = "response_time"
	MetricDOMLoad      = "dom_load_time"
	MetricPageLoad     = "page_load_time"
	MetricResourceLoad = "resource_load_time"
)

type Sequence interface {
	NextSessionID(ctx context.Context) (uint64, error)
}

type Encoder interface {
	Encode(id uint64) (string, error)
}

type Recorder interface {
	Record(name string, value float64, unit string, tags ...metrics.Tag)
}

type session struct {
	mu         sync.Mutex
	code       string
	createdAt  time.Time
	lastSeen   time.Time
	bus        *vitals.Bus
	observer   *vitals.Observer
	navigation *domain.NavigationTiming
}

type Option func(*Tracker)

func WithClock(clock clockwork.Clock) Option {
	return func(t *Tracker) { t.clock = clock }
}

// Tracker keeps one vitals observer per page-load session and turns beacons
// into recorder samples.
type Tracker struct {
	seq      Sequence
	encoder  Encoder
	recorder Recorder
	cfg      config.SessionConfig
	logger   *slog.Logger
	clock    clockwork.Clock

	mu       sync.Mutex
	sessions map[string]*session

	sched *scheduler.Scheduler
}

func NewTracker(seq Sequence, encoder Encoder, recorder Recorder, cfg config.SessionConfig, logger *slog.Logger, opts ...Option) *Tracker {
	t := &Tracker{
		seq:      seq,
		encoder:  encoder,
		recorder: recorder,
		cfg:      cfg,
		logger:   logger,
		clock:    clockwork.NewRealClock(),
		sessions: make(map[string]*session),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Tracker) Create(ctx context.Context) (string, time.Time, error) {
	id, err := t.seq.NextSessionID(ctx)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to allocate session id: %w", err)
	}
	code, err := t.encoder.Encode(id)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to encode session id: %w", err)
	}

	now := t.clock.Now()
	t.mu.Lock()
	t.sessions[code] = &session{code: code, createdAt: now, lastSeen: now}
	t.mu.Unlock()

	t.logger.Debug("session created", slog.String("session", code))
	return code, now, nil
}

// Ingest applies one beacon to the session and returns how many samples and
// entries it accepted.
func (t *Tracker) Ingest(_ context.Context, code string, b domain.Beacon) (int, error) {
	s, err := t.get(code)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = t.clock.Now()

	tags := []metrics.Tag{metrics.String("session", code)}
	if b.Page != "" {
		tags = append(tags, metrics.String("page", b.Page))
	}

	if s.observer == nil {
		t.activate(s, b.ObserverSupported, tags)
	}

	accepted := 0
	if s.navigation == nil && b.Navigation != nil && b.Navigation.Loaded() {
		timing := b.Navigation.Timing()
		s.navigation = &timing
		t.recordNavigation(timing, tags)
		accepted++
	}

	for _, r := range b.Resources {
		t.recorder.Record(MetricResourceLoad, r.Duration, metrics.UnitMilliseconds, slices.Concat(tags, []metrics.Tag{
			metrics.String("resource", r.Name),
			metrics.String("initiator_type", r.InitiatorType),
			metrics.Int("transfer_size", r.TransferSize),
		})...)
		accepted++
	}

	if s.bus != nil {
		for _, batch := range groupByType(b.Entries) {
			s.bus.Publish(batch[0].EntryType, batch)
			accepted += len(batch)
		}
	}

	for _, cs := range b.Samples {
		t.recorder.Record(cs.Name, cs.Value, cs.Unit, sampleTags(cs.Tags, tags)...)
		accepted++
	}
	return accepted, nil
}

// reservedTags are set by the tracker and never taken from a beacon.
var reservedTags = []string{"session", "page"}

// sampleTags puts client tags first, in key order, then the tracker's own.
func sampleTags(client map[string]string, own []metrics.Tag) []metrics.Tag {
	out := make([]metrics.Tag, 0, len(client)+len(own))
	for _, k := range slices.Sorted(maps.Keys(client)) {
		if slices.Contains(reservedTags, k) {
			continue
		}
		out = append(out, metrics.String(k, client[k]))
	}
	return append(out, own...)
}

func (t *Tracker) Vitals(code string) (vitals.Vitals, error) {
	s, err := t.get(code)
	if err != nil {
		return vitals.Vitals{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.observer == nil {
		return vitals.Vitals{}, nil
	}
	return s.observer.Snapshot(), nil
}

func (t *Tracker) Navigation(code string) (*domain.NavigationTiming, error) {
	s, err := t.get(code)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.navigation == nil {
		return nil, nil
	}
	nav := *s.navigation
	return &nav, nil
}

// End stops the session's observer and forgets it.
func (t *Tracker) End(code string) error {
	t.mu.Lock()
	s, ok := t.sessions[code]
	delete(t.sessions, code)
	t.mu.Unlock()
	if !ok {
		return ErrNotFound
	}

	t.stop(s)
	t.logger.Debug("session ended", slog.String("session", code))
	return nil
}

// Sweep ends sessions that have not sent a beacon within the idle TTL.
func (t *Tracker) Sweep() int {
	now := t.clock.Now()

	t.mu.Lock()
	var idle []*session
	for code, s := range t.sessions {
		s.mu.Lock()
		expired := now.Sub(s.lastSeen) >= t.cfg.IdleTTL
		s.mu.Unlock()
		if expired {
			idle = append(idle, s)
			delete(t.sessions, code)
		}
	}
	t.mu.Unlock()

	for _, s := range idle {
		t.stop(s)
	}
	if len(idle) > 0 {
		t.logger.Info("swept idle sessions", slog.Int("count", len(idle)))
	}
	return len(idle)
}

func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.sessions)
}

// Start schedules the idle sweep.
func (t *Tracker) Start() error {
	sched, err := scheduler.New(t.clock, t.logger)
	if err != nil {
		return err
	}
	if err := sched.Every("session-sweep", t.cfg.SweepInterval, func() { t.Sweep() }); err != nil {
		return err
	}
	sched.Start()
	t.sched = sched
	return nil
}

// Close stops the sweep and every remaining observer.
func (t *Tracker) Close() {
	if t.sched != nil {
		if err := t.sched.Stop(); err != nil {
			t.logger.Error("failed to stop session sweep", slog.String("error", err.Error()))
		}
	}

	t.mu.Lock()
	sessions := t.sessions
	t.sessions = make(map[string]*session)
	t.mu.Unlock()

	for _, s := range sessions {
		t.stop(s)
	}
}

func (t *Tracker) get(code string) (*session, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	s, ok := t.sessions[code]
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

// activate starts the session's vitals observer. Pages without
// PerformanceObserver get an inert one.
func (t *Tracker) activate(s *session, supported bool, tags []metrics.Tag) {
	var src vitals.Source = vitals.Unsupported{}
	if supported {
		s.bus = vitals.NewBus()
		src = s.bus
	}
	s.observer = vitals.NewObserver(t.recorder, t.logger, tags...)
	s.observer.Start(src)
}

func (t *Tracker) stop(s *session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.observer != nil {
		s.observer.Stop()
	}
}

func (t *Tracker) recordNavigation(n domain.NavigationTiming, tags []metrics.Tag) {
	for _, m := range []struct {
		name  string
		value int64
	}{
		{MetricDNSLookup, n.DNS},
		{MetricTCPConnect, n.Connect},
		{MetricRequest, n.Request},
		{MetricResponse, n.Response},
		{MetricDOMLoad, n.DOMLoad},
		{MetricPageLoad, n.PageLoad},
	} {
		t.recorder.Record(m.name, float64(m.value), metrics.UnitMilliseconds, tags...)
	}
}

// groupByType splits entries into per-type batches, keeping first-seen order.
func groupByType(entries []vitals.Entry) [][]vitals.Entry {
	var (
		order   []string
		batches = make(map[string][]vitals.Entry)
	)
	for _, e := range entries {
		if _, ok := batches[e.EntryType]; !ok {
			order = append(order, e.EntryType)
		}
		batches[e.EntryType] = append(batches[e.EntryType], e)
	}
	out := make([][]vitals.Entry, 0, len(order))
	for _, typ := range order {
		out = append(out, batches[typ])
	}
	return out
}
