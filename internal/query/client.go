package query

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"pharmaconnect/internal/cache"
	"pharmaconnect/internal/config"
	"pharmaconnect/internal/metrics"
	"pharmaconnect/internal/retry"
)

// ErrAborted is returned by a fetch that was cancelled or superseded by a
// newer fetch of the same key.
var ErrAborted = errors.New("query aborted")

type Status string

const (
	StatusIdle    Status = "idle"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

type Store interface {
	Get(key []string) (any, bool)
	Set(key []string, value any, ttl time.Duration) bool
	InvalidatePrefix(prefix []string) int
	GC() int
}

// Preloader fills a related entry after a list fetch.
type Preloader func(ctx context.Context, key Key) (any, error)

type entry struct {
	data      any
	err       error
	status    Status
	updatedAt time.Time
}


type ClientOption func(*Client)

func WithClock(clock clockwork.Clock) ClientOption {
	return func(c *Client) { c.clock = clock }
}

func WithRetryPolicy(p retry.Policy) ClientOption {
	return func(c *Client) { c.policy = p }
}

func WithPreloader(p Preloader) ClientOption {
	return func(c *Client) { c.preloader = p }
}

func WithStats(s *Stats) ClientOption {
	return func(c *Client) { c.stats = s }
}

// Client owns the shared query cache and tracks which fetch is current for
// each key. Observers created with Observe read and write through it.
type Client struct {
	store     Store
	measurer  metrics.Measurer
	logger    *slog.Logger
	cfg       config.QueryConfig
	clock     clockwork.Clock
	policy    retry.Policy
	preloader Preloader
	stats     *Stats

	mu        sync.Mutex
	seq       uint64
	inflight  map[string]uint64
	observers map[string]int
	gcTimes   map[string]time.Duration

	wg sync.WaitGroup
}

func NewClient(store Store, measurer metrics.Measurer, cfg config.QueryConfig, logger *slog.Logger, opts ...ClientOption) *Client {
	c := &Client{
		store:     store,
		measurer:  measurer,
		logger:    logger,
		cfg:       cfg,
		clock:     clockwork.NewRealClock(),
		policy:    retry.DefaultPolicy(),
		preloader: placeholderPreloader,
		inflight:  make(map[string]uint64),
		observers: make(map[string]int),
		gcTimes:   make(map[string]time.Duration),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Collect drops cache bookkeeping for entries whose GC time has passed.
func (c *Client) Collect() int {
	return c.store.GC()
}

// Invalidate removes every entry under prefix.
func (c *Client) Invalidate(prefix Key) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store.InvalidatePrefix(prefix)
}

// Close waits for background preloads to finish.
func (c *Client) Close() {
	c.wg.Wait()
}

func (c *Client) load(key Key) (entry, bool) {
	v, ok := c.store.Get(key)
	if !ok {
		return entry{}, false
	}
	e, ok := v.(entry)
	return e, ok
}

func (c *Client) isFetching(h string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.inflight[h]
	return ok
}

// begin makes a new fetch current for h. Older fetches of the same key keep
// running for their own callers but can no longer commit.
func (c *Client) begin(h string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.seq++
	c.inflight[h] = c.seq
	return c.seq
}

func (c *Client) end(h string, id uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if cur, ok := c.inflight[h]; ok && cur == id {
		delete(c.inflight, h)
	}
}

// commit writes e for key if fetch id is still current. force skips that
// check for optimistic writes.
func (c *Client) commit(key Key, h string, id uint64, e entry, force bool) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !force {
		if cur, ok := c.inflight[h]; !ok || cur != id {
			return false
		}
	}
	return c.store.Set(key, e, c.ttlLocked(h))
}

// commitError records err on the entry, keeping the last good data.
func (c *Client) commitError(key Key, h string, id uint64, err error) {
	prev, _ := c.load(key)
	c.commit(key, h, id, entry{
		data:      prev.data,
		err:       err,
		status:    StatusError,
		updatedAt: prev.updatedAt,
	}, false)
}

// ttlLocked is zero while the key is observed, so only unobserved entries
// count down their GC time.
func (c *Client) ttlLocked(h string) time.Duration {
	if c.observers[h] > 0 {
		return 0
	}
	if gc, ok := c.gcTimes[h]; ok {
		return gc
	}
	return c.cfg.GCTime
}

func (c *Client) retain(h string, gcTime time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.observers[h]++
	c.gcTimes[h] = gcTime
}

func (c *Client) release(key Key, h string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.observers[h]--
	if c.observers[h] > 0 {
		return
	}
	delete(c.observers, h)
	if v, ok := c.store.Get(key); ok {
		c.store.Set(key, v, c.ttlLocked(h))
	}
	delete(c.gcTimes, h)
}

func hashKey(k Key) string {
	return cache.Hash(k)
}

func placeholderPreloader(context.Context, Key) (any, error) {
	return nil, nil
}
