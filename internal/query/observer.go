package query

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"pharmaconnect/internal/metrics"
)

// Options configures one observed query. Zero durations take the client's
// defaults; a negative StaleTime makes every cached value stale.
type Options[T any] struct {
	Key Key
	Fn  func(ctx context.Context) (T, error)

	StaleTime time.Duration
	GCTime    time.Duration

	// Disabled gates fetching; the observer still reads the cache.
	Disabled             bool
	RefetchOnWindowFocus bool
	// BackgroundRefetch refetches on the client's background interval
	// regardless of staleness.
	BackgroundRefetch bool
	// Optimistic writes each result into the cache as soon as it resolves,
	// without checking whether a newer fetch has started.
	Optimistic bool
	// Preload warms entries for the first items of a slice result.
	Preload bool
}

type Result[T any] struct {
	Data       T
	Err        error
	Status     Status
	UpdatedAt  time.Time
	IsLoading  bool
	IsFetching bool
	IsStale    bool
}

// Observer is one consumer of a query key. It owns the abort handle of the
// fetch it started last.
type Observer[T any] struct {
	client *Client
	opts   Options[T]
	hash   string

	mu     sync.Mutex
	cancel context.CancelFunc
	closed bool

	stopBackground context.CancelFunc
	backgroundDone chan struct{}
}

func Observe[T any](c *Client, opts Options[T]) *Observer[T] {
	if opts.StaleTime == 0 {
		opts.StaleTime = c.cfg.StaleTime
	}
	if opts.StaleTime < 0 {
		opts.StaleTime = 0
	}
	if opts.GCTime <= 0 {
		opts.GCTime = c.cfg.GCTime
	}

	o := &Observer[T]{client: c, opts: opts, hash: hashKey(opts.Key)}
	c.retain(o.hash, opts.GCTime)

	if opts.BackgroundRefetch && !opts.Disabled && c.cfg.BackgroundInterval > 0 {
		ctx, cancel := context.WithCancel(context.Background())
		o.stopBackground = cancel
		o.backgroundDone = make(chan struct{})
		go o.refetchInBackground(ctx)
	}
	return o
}

// Fetch serves the cached value while it is fresh and fetches otherwise.
func (o *Observer[T]) Fetch(ctx context.Context) Result[T] {
	if o.opts.Disabled {
		return o.Result()
	}
	if e, ok := o.client.load(o.opts.Key); ok && e.status == StatusSuccess && !o.stale(e) {
		o.client.stats.lookup("fresh")
		return o.Result()
	} else if ok {
		o.client.stats.lookup("stale")
	} else {
		o.client.stats.lookup("miss")
	}
	return o.Refetch(ctx)
}

// Refetch always fetches. It cancels this observer's previous fetch; fetches
// started by other observers of the key keep running, but only the newest one
// writes the cache.
func (o *Observer[T]) Refetch(ctx context.Context) Result[T] {
	if o.opts.Disabled {
		return o.Result()
	}

	o.mu.Lock()
	if o.closed {
		o.mu.Unlock()
		return o.Result()
	}
	if o.cancel != nil {
		o.cancel()
	}
	fetchCtx, cancel := context.WithCancel(ctx)
	o.cancel = cancel
	o.mu.Unlock()
	defer cancel()

	c := o.client
	id := c.begin(o.hash)
	defer c.end(o.hash, id)

	data, err := o.run(fetchCtx, id)
	switch {
	case errors.Is(err, ErrAborted):
		c.stats.fetch("aborted")
		return o.withErr(ErrAborted)
	case err != nil:
		c.stats.fetch("error")
		c.commitError(o.opts.Key, o.hash, id, err)
		return o.withErr(err)
	}

	if !o.opts.Optimistic {
		e := entry{data: data, status: StatusSuccess, updatedAt: c.clock.Now()}
		if !c.commit(o.opts.Key, o.hash, id, e, false) {
			c.stats.fetch("superseded")
			return o.superseded(data, e.updatedAt)
		}
	}
	c.stats.fetch("success")

	if o.opts.Preload {
		c.preload(o.opts.Key, data)
	}
	return o.Result()
}

// WindowFocused refetches a stale entry when RefetchOnWindowFocus is set.
func (o *Observer[T]) WindowFocused(ctx context.Context) Result[T] {
	if !o.opts.RefetchOnWindowFocus {
		return o.Result()
	}
	if e, ok := o.client.load(o.opts.Key); ok && e.status == StatusSuccess && !o.stale(e) {
		return o.Result()
	}
	return o.Refetch(ctx)
}

func (o *Observer[T]) Result() Result[T] {
	res := Result[T]{Status: StatusIdle, IsFetching: o.client.isFetching(o.hash)}

	e, ok := o.client.load(o.opts.Key)
	if !ok {
		res.IsLoading = res.IsFetching
		res.IsStale = true
		return res
	}
	if v, ok := e.data.(T); ok {
		res.Data = v
	}
	res.Err = e.err
	res.Status = e.status
	res.UpdatedAt = e.updatedAt
	res.IsStale = o.stale(e)
	res.IsLoading = res.IsFetching && e.updatedAt.IsZero()
	return res
}

// CancelQuery aborts the fetch this observer started, if it is still running.
func (o *Observer[T]) CancelQuery() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.cancel != nil {
		o.cancel()
	}
}

// InvalidateRelated drops every entry that shares this key's parent,
// including this key itself.
func (o *Observer[T]) InvalidateRelated() int {
	n := o.client.Invalidate(o.opts.Key.Parent())
	o.client.logger.Debug("invalidated related queries",
		slog.String("key", o.opts.Key.String()),
		slog.Int("entries", n))
	return n
}

// Close cancels the in-flight fetch, stops background refetching and lets
// the entry start counting down its GC time.
func (o *Observer[T]) Close() {
	o.mu.Lock()
	if o.closed {
		o.mu.Unlock()
		return
	}
	o.closed = true
	if o.cancel != nil {
		o.cancel()
	}
	o.mu.Unlock()

	if o.stopBackground != nil {
		o.stopBackground()
		<-o.backgroundDone
	}
	o.client.release(o.opts.Key, o.hash)
}

func (o *Observer[T]) run(ctx context.Context, id uint64) (T, error) {
	var zero T
	c := o.client
	for failures := 0; ; {
		data, err := o.attempt(ctx, id)
		if err == nil {
			return data, nil
		}
		if ctx.Err() != nil || errors.Is(err, ErrAborted) {
			return zero, ErrAborted
		}

		failures++
		if !c.policy.ShouldRetry(failures, err) {
			return zero, err
		}
		c.stats.retry()
		c.logger.Debug("retrying query",
			slog.String("key", o.opts.Key.String()),
			slog.Int("failures", failures),
			slog.String("error", err.Error()))

		select {
		case <-ctx.Done():
			return zero, ErrAborted
		case <-c.clock.After(c.policy.Delay(failures - 1)):
		}
	}
}

// attempt runs the fetch function once under the recorder. A fetch whose
// context ended while it ran is reported as aborted before it can count as
// a success or touch the cache.
func (o *Observer[T]) attempt(ctx context.Context, id uint64) (T, error) {
	c := o.client
	return metrics.Measure(ctx, c.measurer, "query_"+o.opts.Key.Joined(), func(ctx context.Context) (T, error) {
		var zero T
		if ctx.Err() != nil {
			return zero, ErrAborted
		}
		data, err := o.opts.Fn(ctx)
		if ctx.Err() != nil {
			return zero, ErrAborted
		}
		if err != nil {
			return zero, err
		}
		if o.opts.Optimistic {
			c.commit(o.opts.Key, o.hash, id, entry{data: data, status: StatusSuccess, updatedAt: c.clock.Now()}, true)
		}
		return data, nil
	},
		metrics.Bool("cache_enabled", o.opts.StaleTime > 0),
		metrics.Bool("background_refetch", o.opts.BackgroundRefetch),
	)
}

func (o *Observer[T]) refetchInBackground(ctx context.Context) {
	defer close(o.backgroundDone)

	ticker := o.client.clock.NewTicker(o.client.cfg.BackgroundInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			o.Refetch(ctx)
		}
	}
}

func (o *Observer[T]) stale(e entry) bool {
	return o.client.clock.Since(e.updatedAt) >= o.opts.StaleTime
}

// superseded is the result of a fetch that completed after a newer fetch of
// the key started. The caller gets its own data; the cache keeps the newer
// fetch's.
func (o *Observer[T]) superseded(data T, at time.Time) Result[T] {
	res := o.Result()
	res.Data = data
	res.Err = nil
	res.Status = StatusSuccess
	res.UpdatedAt = at
	res.IsStale = o.stale(entry{updatedAt: at})
	res.IsLoading = false
	return res
}

func (o *Observer[T]) withErr(err error) Result[T] {
	res := o.Result()
	res.Err = err
	if errors.Is(err, ErrAborted) {
		return res
	}
	res.Status = StatusError
	return res
}
