package metrics

//go:generate go tool mockery

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"slices"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"pharmaconnect/internal/config"
	"pharmaconnect/internal/scheduler"
)

const defaultWriteTimeout = 5 * time.Second

type Sink interface {
	Insert(ctx context.Context, s Sample) error
	InsertBatch(ctx context.Context, batch []Sample) error
}

type Option func(*Recorder)

func WithClock(clock clockwork.Clock) Option {
	return func(r *Recorder) { r.clock = clock }
}

func WithStats(stats *Stats) Option {
	return func(r *Recorder) { r.stats = stats }
}

func WithMemoryReader(read func() (MemoryStats, bool)) Option {
	return func(r *Recorder) { r.readMemory = read }
}

// Recorder buffers samples in memory, writes each one through a bounded
// queue and periodically flushes the pending buffer as one batch.
type Recorder struct {
	sink       Sink
	logger     *slog.Logger
	cfg        *config.MetricsConfig
	clock      clockwork.Clock
	stats      *Stats
	readMemory func() (MemoryStats, bool)

	mu      sync.Mutex
	pending []Sample
	history []Sample
	last    time.Time
	closed  bool

	writeCh   chan Sample
	sched     *scheduler.Scheduler
	wg        sync.WaitGroup
	startOnce sync.Once
	closeOnce sync.Once
	done      chan struct{}
}

func NewRecorder(sink Sink, cfg *config.MetricsConfig, logger *slog.Logger, opts ...Option) *Recorder {
	r := &Recorder{
		sink:       sink,
		logger:     logger,
		cfg:        cfg,
		clock:      clockwork.NewRealClock(),
		readMemory: readRuntimeMemory,
		writeCh:    make(chan Sample, max(1, cfg.QueueSize)),
		done:       make(chan struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Record appends a sample to the pending buffer and queues its single-row
// write. It never fails: a full queue drops the write, not the sample.
func (r *Recorder) Record(name string, value float64, unit string, tags ...Tag) {
	if !r.cfg.Enabled {
		return
	}

	r.mu.Lock()
	now := r.clock.Now()
	if now.Before(r.last) {
		now = r.last
	}
	r.last = now

	s := Sample{Name: name, Value: value, Unit: unit, Time: now, Tags: slices.Clone(tags)}
	r.pending = append(r.pending, s)
	r.history = append(r.history, s)
	if limit := r.cfg.HistoryLimit; limit > 0 && len(r.history) > limit {
		r.history = append(r.history[:0:0], r.history[len(r.history)-limit:]...)
	}
	dropped := r.closed
	if !dropped {
		select {
		case r.writeCh <- s:
		default:
			dropped = true
		}
	}
	r.mu.Unlock()

	r.stats.incSample("recorded")
	if dropped {
		r.stats.incSample("dropped")
		r.logger.Warn("metrics write queue unavailable, dropping write", slog.String("metric", name))
	}
}

func (r *Recorder) MeasureOperation(ctx context.Context, name string, op func(context.Context) error, tags ...Tag) error {
	start := r.clock.Now()
	err := op(ctx)
	elapsed := r.clock.Since(start)

	status := "success"
	if err != nil {
		status = "error"
	}
	all := make(Tags, 0, len(tags)+1)
	all = append(all, tags...)
	all = append(all, String("status", status))

	r.Record("operation_"+name, float64(elapsed.Microseconds())/1000.0, UnitMilliseconds, all...)
	return err
}

// Flush writes every pending sample in one batch and returns how many were
// persisted. The buffer is swapped out before the write, so samples recorded
// meanwhile go to the next batch and a failed batch is not retried.
func (r *Recorder) Flush(ctx context.Context) (int, error) {
	r.mu.Lock()
	if len(r.pending) == 0 {
		r.mu.Unlock()
		return 0, nil
	}
	batch := r.pending
	r.pending = nil
	r.mu.Unlock()

	if err := r.sink.InsertBatch(ctx, batch); err != nil {
		r.stats.flushFailed()
		r.logger.Error("failed to flush metrics batch",
			slog.Int("samples", len(batch)),
			slog.String("error", err.Error()))
		return 0, fmt.Errorf("failed to flush %d samples: %w", len(batch), err)
	}
	r.stats.flushOK(len(batch))
	return len(batch), nil
}

func (r *Recorder) Pending() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pending)
}

// History returns the samples recorded this process lifetime, oldest first,
// up to the configured limit.
func (r *Recorder) History() []Sample {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Sample, len(r.history))
	copy(out, r.history)
	return out
}

func (r *Recorder) SampleMemory() {
	stats, ok := r.readMemory()
	if !ok {
		return
	}
	r.Record("memory_usage", toMB(stats.HeapAlloc), UnitMegabytes,
		Float("heap_inuse_mb", toMB(stats.HeapInuse)),
		Float("heap_sys_mb", toMB(stats.HeapSys)),
	)
}

func (r *Recorder) Start(ctx context.Context) error {
	if !r.cfg.Enabled {
		r.logger.Info("metrics recording disabled")
		return nil
	}

	var err error
	r.startOnce.Do(func() {
		r.sched, err = scheduler.New(r.clock, r.logger)
		if err != nil {
			return
		}
		if err = r.sched.Every("metrics-flush", r.cfg.FlushInterval, r.flushWithTimeout); err != nil {
			return
		}
		if err = r.sched.Every("metrics-memory", r.cfg.MemoryInterval, r.SampleMemory); err != nil {
			return
		}

		r.wg.Add(1)
		go r.runWriter()
		r.sched.Start()

		go func() {
			select {
			case <-ctx.Done():
				r.Close()
			case <-r.done:
			}
		}()

		r.logger.Info("metrics recorder started",
			slog.Int("queue_size", cap(r.writeCh)),
			slog.Duration("flush_interval", r.cfg.FlushInterval),
			slog.Duration("memory_interval", r.cfg.MemoryInterval))
	})
	return err
}

// Close stops the periodic jobs, flushes what is pending and waits for the
// write queue to drain.
func (r *Recorder) Close() {
	r.closeOnce.Do(func() {
		if r.sched != nil {
			if err := r.sched.Stop(); err != nil {
				r.logger.Warn("failed to stop metrics scheduler", slog.String("error", err.Error()))
			}
		}

		r.flushWithTimeout()

		r.mu.Lock()
		r.closed = true
		close(r.writeCh)
		r.mu.Unlock()

		r.wg.Wait()
		close(r.done)
	})
}

func (r *Recorder) runWriter() {
	defer r.wg.Done()
	for s := range r.writeCh {
		ctx, cancel := context.WithTimeout(context.Background(), r.writeTimeout())
		err := r.sink.Insert(ctx, s)
		cancel()
		if err != nil {
			r.stats.incSample("write_failed")
			r.logger.Error("failed to write metric",
				slog.String("metric", s.Name),
				slog.String("error", err.Error()))
			continue
		}
		r.stats.incSample("written")
	}
}

func (r *Recorder) flushWithTimeout() {
	ctx, cancel := context.WithTimeout(context.Background(), r.writeTimeout())
	defer cancel()
	_, _ = r.Flush(ctx)
}

func (r *Recorder) writeTimeout() time.Duration {
	return cmp.Or(r.cfg.WriteTimeout, defaultWriteTimeout)
}

func readRuntimeMemory() (MemoryStats, bool) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return MemoryStats{HeapAlloc: m.HeapAlloc, HeapInuse: m.HeapInuse, HeapSys: m.HeapSys}, true
}

func toMB(b uint64) float64 {
	return float64(b) / 1024 / 1024
}
