package query_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pharmaconnect/internal/cache"
	"pharmaconnect/internal/config"
	"pharmaconnect/internal/metrics"
	"pharmaconnect/internal/query"
	"pharmaconnect/internal/retry"
)

type measured struct {
	name string
	err  error
	tags metrics.Tags
}

type captureMeasurer struct {
	mu   sync.Mutex
	runs []measured
}

func (m *captureMeasurer) MeasureOperation(ctx context.Context, name string, op func(context.Context) error, tags ...metrics.Tag) error {
	err := op(ctx)
	m.mu.Lock()
	m.runs = append(m.runs, measured{name: name, err: err, tags: tags})
	m.mu.Unlock()
	return err
}

func (m *captureMeasurer) all() []measured {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]measured(nil), m.runs...)
}

func tag(tags metrics.Tags, key string) string {
	v, ok := tags.Get(key)
	if !ok {
		return ""
	}
	return v.String()
}

func fastPolicy() retry.Policy {
	return retry.Policy{Initial: time.Millisecond, Max: time.Millisecond, NetworkMaxAttempts: 3, OtherMaxAttempts: 1}
}

func newClient(t *testing.T, opts ...query.ClientOption) (*query.Client, *captureMeasurer) {
	t.Helper()

	store, err := cache.New(10)
	require.NoError(t, err)
	t.Cleanup(store.Close)

	m := &captureMeasurer{}
	cfg := config.QueryConfig{
		StaleTime:        5 * time.Minute,
		GCTime:           10 * time.Minute,
		PreloadStaleTime: 10 * time.Minute,
		PreloadLimit:     5,
	}
	opts = append([]query.ClientOption{query.WithRetryPolicy(fastPolicy())}, opts...)
	c := query.NewClient(store, m, cfg, slog.New(slog.NewTextHandler(io.Discard, nil)), opts...)
	t.Cleanup(c.Close)
	return c, m
}

func TestFetch_CachesFreshResult(t *testing.T) {
	c, m := newClient(t)

	var calls atomic.Int32
	obs := query.Observe(c, query.Options[string]{
		Key: query.NewKey("companies"),
		Fn: func(context.Context) (string, error) {
			calls.Add(1)
			return "list", nil
		},
	})
	defer obs.Close()

	res := obs.Fetch(context.Background())
	require.NoError(t, res.Err)
	assert.Equal(t, "list", res.Data)
	assert.Equal(t, query.StatusSuccess, res.Status)
	assert.False(t, res.IsStale)
	assert.False(t, res.IsFetching)

	res = obs.Fetch(context.Background())
	assert.Equal(t, "list", res.Data)
	assert.Equal(t, int32(1), calls.Load())

	runs := m.all()
	require.Len(t, runs, 1)
	assert.Equal(t, "query_companies", runs[0].name)
	assert.Equal(t, "true", tag(runs[0].tags, "cache_enabled"))
	assert.Equal(t, "false", tag(runs[0].tags, "background_refetch"))
}

func TestFetch_RefetchesWhenStale(t *testing.T) {
	clock := clockwork.NewFakeClock()
	c, _ := newClient(t, query.WithClock(clock))

	var calls atomic.Int32
	obs := query.Observe(c, query.Options[int32]{
		Key:       query.NewKey("alerts"),
		StaleTime: time.Minute,
		Fn: func(context.Context) (int32, error) {
			return calls.Add(1), nil
		},
	})
	defer obs.Close()

	assert.Equal(t, int32(1), obs.Fetch(context.Background()).Data)
	assert.Equal(t, int32(1), obs.Fetch(context.Background()).Data)

	clock.Advance(2 * time.Minute)
	assert.True(t, obs.Result().IsStale)

	res := obs.Fetch(context.Background())
	assert.Equal(t, int32(2), res.Data)
	assert.False(t, res.IsStale)
}

func TestFetch_NegativeStaleTimeAlwaysRefetches(t *testing.T) {
	c, m := newClient(t)

	var calls atomic.Int32
	obs := query.Observe(c, query.Options[int32]{
		Key:       query.NewKey("alerts", "live"),
		StaleTime: -1,
		Fn: func(context.Context) (int32, error) {
			return calls.Add(1), nil
		},
	})
	defer obs.Close()

	obs.Fetch(context.Background())
	obs.Fetch(context.Background())
	assert.Equal(t, int32(2), calls.Load())
	assert.Equal(t, "false", tag(m.all()[0].tags, "cache_enabled"))
}

func TestRefetch_LastRequestWins(t *testing.T) {
	c, _ := newClient(t)
	key := query.NewKey("companies", "search", "acme")

	release := make(chan struct{})
	started := make(chan struct{})
	slow := query.Observe(c, query.Options[string]{
		Key: key,
		Fn: func(context.Context) (string, error) {
			close(started)
			<-release
			return "first", nil
		},
	})
	defer slow.Close()
	fast := query.Observe(c, query.Options[string]{
		Key: key,
		Fn: func(context.Context) (string, error) {
			return "second", nil
		},
	})
	defer fast.Close()

	slowRes := make(chan query.Result[string], 1)
	go func() { slowRes <- slow.Refetch(context.Background()) }()
	<-started

	res := fast.Refetch(context.Background())
	require.NoError(t, res.Err)
	assert.Equal(t, "second", res.Data)

	close(release)
	late := <-slowRes
	require.NoError(t, late.Err)
	assert.Equal(t, query.StatusSuccess, late.Status)
	assert.Equal(t, "first", late.Data)

	assert.Equal(t, "second", fast.Result().Data)
	assert.Equal(t, "second", slow.Result().Data)
}

func TestRefetch_OwnPreviousFetchIsCancelled(t *testing.T) {
	c, _ := newClient(t)

	started := make(chan struct{}, 2)
	var calls atomic.Int32
	obs := query.Observe(c, query.Options[int32]{
		Key: query.NewKey("companies"),
		Fn: func(ctx context.Context) (int32, error) {
			n := calls.Add(1)
			started <- struct{}{}
			if n == 1 {
				<-ctx.Done()
				return 0, ctx.Err()
			}
			return n, nil
		},
	})
	defer obs.Close()

	first := make(chan query.Result[int32], 1)
	go func() { first <- obs.Refetch(context.Background()) }()
	<-started

	res := obs.Refetch(context.Background())
	require.NoError(t, res.Err)
	assert.Equal(t, int32(2), res.Data)

	assert.ErrorIs(t, (<-first).Err, query.ErrAborted)
	assert.Equal(t, int32(2), obs.Result().Data)
}

func TestRefetch_RetriesNetworkErrors(t *testing.T) {
	c, m := newClient(t)

	var calls atomic.Int32
	obs := query.Observe(c, query.Options[string]{
		Key: query.NewKey("alerts"),
		Fn: func(context.Context) (string, error) {
			calls.Add(1)
			return "", errors.New("network timeout")
		},
	})
	defer obs.Close()

	res := obs.Refetch(context.Background())
	assert.EqualError(t, res.Err, "network timeout")
	assert.Equal(t, query.StatusError, res.Status)
	assert.Equal(t, int32(3), calls.Load())

	runs := m.all()
	require.Len(t, runs, 3)
	for _, r := range runs {
		assert.Error(t, r.err)
	}
}

func TestRefetch_DoesNotRetryOtherErrors(t *testing.T) {
	c, _ := newClient(t)

	var calls atomic.Int32
	obs := query.Observe(c, query.Options[string]{
		Key: query.NewKey("companies"),
		Fn: func(context.Context) (string, error) {
			calls.Add(1)
			return "", errors.New("validation failed")
		},
	})
	defer obs.Close()

	res := obs.Refetch(context.Background())
	assert.EqualError(t, res.Err, "validation failed")
	assert.Equal(t, query.StatusError, obs.Result().Status)
	assert.Equal(t, int32(1), calls.Load())
}

func TestRefetch_SucceedsAfterTransientFailure(t *testing.T) {
	c, _ := newClient(t)

	var calls atomic.Int32
	obs := query.Observe(c, query.Options[string]{
		Key: query.NewKey("companies"),
		Fn: func(context.Context) (string, error) {
			if calls.Add(1) == 1 {
				return "", retry.ErrNetwork
			}
			return "ok", nil
		},
	})
	defer obs.Close()

	res := obs.Refetch(context.Background())
	require.NoError(t, res.Err)
	assert.Equal(t, "ok", res.Data)
	assert.Equal(t, int32(2), calls.Load())
}

func TestCancelQuery_AbortsWithoutCaching(t *testing.T) {
	c, m := newClient(t)

	started := make(chan struct{})
	obs := query.Observe(c, query.Options[string]{
		Key: query.NewKey("companies"),
		Fn: func(ctx context.Context) (string, error) {
			close(started)
			<-ctx.Done()
			return "", ctx.Err()
		},
	})
	defer obs.Close()

	done := make(chan query.Result[string], 1)
	go func() { done <- obs.Refetch(context.Background()) }()
	<-started
	assert.True(t, obs.Result().IsFetching)

	obs.CancelQuery()
	res := <-done
	assert.ErrorIs(t, res.Err, query.ErrAborted)
	assert.Equal(t, query.StatusIdle, res.Status)
	assert.Empty(t, res.Data)
	assert.False(t, obs.Result().IsFetching)

	runs := m.all()
	require.Len(t, runs, 1)
	assert.ErrorIs(t, runs[0].err, query.ErrAborted)
}

func TestDisabled_NeverFetches(t *testing.T) {
	c, m := newClient(t)

	obs := query.Observe(c, query.Options[string]{
		Key:      query.NewKey("companies"),
		Disabled: true,
		Fn: func(context.Context) (string, error) {
			t.Fatal("disabled query fetched")
			return "", nil
		},
	})
	defer obs.Close()

	res := obs.Fetch(context.Background())
	assert.Equal(t, query.StatusIdle, res.Status)
	assert.False(t, res.IsLoading)
	assert.Empty(t, m.all())
}

func TestOptimistic_WritesOnResolve(t *testing.T) {
	c, _ := newClient(t)
	key := query.NewKey("companies", "42")

	obs := query.Observe(c, query.Options[string]{
		Key:        key,
		Optimistic: true,
		Fn: func(context.Context) (string, error) {
			return "pfizer", nil
		},
	})
	defer obs.Close()

	res := obs.Refetch(context.Background())
	require.NoError(t, res.Err)
	assert.Equal(t, "pfizer", res.Data)

	reader := query.Observe(c, query.Options[string]{Key: key, Disabled: true})
	defer reader.Close()
	assert.Equal(t, "pfizer", reader.Result().Data)
}

func TestInvalidateRelated_DropsSiblings(t *testing.T) {
	c, _ := newClient(t)

	fetch := func(key query.Key) *query.Observer[string] {
		obs := query.Observe(c, query.Options[string]{
			Key: key,
			Fn: func(context.Context) (string, error) {
				return key.String(), nil
			},
		})
		require.NoError(t, obs.Fetch(context.Background()).Err)
		return obs
	}

	one := fetch(query.NewKey("companies", 1))
	defer one.Close()
	two := fetch(query.NewKey("companies", 2))
	defer two.Close()
	alerts := fetch(query.NewKey("alerts"))
	defer alerts.Close()

	assert.Equal(t, 2, one.InvalidateRelated())
	assert.Equal(t, query.StatusIdle, one.Result().Status)
	assert.Equal(t, query.StatusIdle, two.Result().Status)
	assert.Equal(t, "[alerts]", alerts.Result().Data)
}

func TestWindowFocused(t *testing.T) {
	clock := clockwork.NewFakeClock()
	c, _ := newClient(t, query.WithClock(clock))

	var calls atomic.Int32
	opts := query.Options[int32]{
		Key:       query.NewKey("alerts"),
		StaleTime: time.Minute,
		Fn: func(context.Context) (int32, error) {
			return calls.Add(1), nil
		},
	}

	ignoring := query.Observe(c, opts)
	defer ignoring.Close()
	ignoring.Fetch(context.Background())

	opts.RefetchOnWindowFocus = true
	focused := query.Observe(c, opts)
	defer focused.Close()

	focused.WindowFocused(context.Background())
	assert.Equal(t, int32(1), calls.Load())

	clock.Advance(2 * time.Minute)
	ignoring.WindowFocused(context.Background())
	assert.Equal(t, int32(1), calls.Load())

	assert.Equal(t, int32(2), focused.WindowFocused(context.Background()).Data)
}

func TestBackgroundRefetch(t *testing.T) {
	clock := clockwork.NewFakeClock()
	store, err := cache.New(10)
	require.NoError(t, err)
	defer store.Close()

	cfg := config.QueryConfig{StaleTime: time.Hour, GCTime: time.Hour, BackgroundInterval: 30 * time.Second}
	c := query.NewClient(store, &captureMeasurer{}, cfg, slog.New(slog.NewTextHandler(io.Discard, nil)), query.WithClock(clock))

	var calls atomic.Int32
	obs := query.Observe(c, query.Options[int32]{
		Key:               query.NewKey("alerts"),
		BackgroundRefetch: true,
		Fn: func(context.Context) (int32, error) {
			return calls.Add(1), nil
		},
	})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, clock.BlockUntilContext(ctx, 1))

	clock.Advance(30 * time.Second)
	assert.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)

	obs.Close()
	clock.Advance(30 * time.Second)
	assert.Equal(t, int32(1), calls.Load())
}

type company struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func newStoreClient(t *testing.T) (*query.Client, *cache.Store) {
	t.Helper()

	store, err := cache.New(10)
	require.NoError(t, err)
	t.Cleanup(store.Close)

	cfg := config.QueryConfig{StaleTime: time.Hour, GCTime: time.Hour}
	c := query.NewClient(store, &captureMeasurer{}, cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	t.Cleanup(c.Close)
	return c, store
}

func TestGCTime_KeepsObservedEntries(t *testing.T) {
	c, store := newStoreClient(t)
	key := query.NewKey("company", 7)
	opts := query.Options[string]{
		Key:    key,
		GCTime: 50 * time.Millisecond,
		Fn:     func(context.Context) (string, error) { return "Acme Pharma", nil },
	}

	first := query.Observe(c, opts)
	second := query.Observe(c, opts)
	require.NoError(t, first.Fetch(context.Background()).Err)

	time.Sleep(150 * time.Millisecond)
	_, ok := store.Get(key)
	require.True(t, ok)
	assert.Equal(t, "Acme Pharma", first.Result().Data)

	first.Close()
	time.Sleep(150 * time.Millisecond)
	_, ok = store.Get(key)
	require.True(t, ok)
	assert.Equal(t, "Acme Pharma", second.Result().Data)

	second.Close()
}

func TestGCTime_ExpiresAfterLastClose(t *testing.T) {
	c, store := newStoreClient(t)
	key := query.NewKey("company", 8)

	obs := query.Observe(c, query.Options[string]{
		Key:    key,
		GCTime: 50 * time.Millisecond,
		Fn:     func(context.Context) (string, error) { return "Beta Labs", nil },
	})
	require.NoError(t, obs.Fetch(context.Background()).Err)
	assert.Equal(t, 1, store.Len())

	obs.Close()
	_, ok := store.Get(key)
	require.True(t, ok)

	assert.Eventually(t, func() bool {
		_, ok := store.Get(key)
		return !ok
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, 1, c.Collect())
	assert.Equal(t, 0, store.Len())
}

func TestPreload_WarmsFirstFive(t *testing.T) {
	var (
		mu   sync.Mutex
		keys []string
	)
	preloader := func(_ context.Context, key query.Key) (any, error) {
		mu.Lock()
		keys = append(keys, key.String())
		mu.Unlock()
		return "detail " + key[len(key)-1], nil
	}
	c, _ := newClient(t, query.WithPreloader(preloader))

	list := make([]company, 7)
	for i := range list {
		list[i] = company{ID: i + 1, Name: "c"}
	}
	obs := query.Observe(c, query.Options[[]company]{
		Key:     query.NewKey("companies"),
		Preload: true,
		Fn: func(context.Context) ([]company, error) {
			return list, nil
		},
	})
	defer obs.Close()

	require.NoError(t, obs.Refetch(context.Background()).Err)
	c.Close()

	mu.Lock()
	assert.Equal(t, []string{
		"[companies, 1]", "[companies, 2]", "[companies, 3]", "[companies, 4]", "[companies, 5]",
	}, keys)
	mu.Unlock()

	detail := query.Observe(c, query.Options[any]{Key: query.NewKey("companies", 3), Disabled: true})
	defer detail.Close()
	assert.Equal(t, "detail 3", detail.Result().Data)
	assert.False(t, detail.Result().IsStale)

	// Fresh entries are not preloaded again.
	require.NoError(t, obs.Refetch(context.Background()).Err)
	c.Close()
	mu.Lock()
	assert.Len(t, keys, 5)
	mu.Unlock()
}

func TestPreload_SwallowsErrorsAndPanics(t *testing.T) {
	var calls atomic.Int32
	preloader := func(_ context.Context, key query.Key) (any, error) {
		if calls.Add(1) == 1 {
			return nil, errors.New("boom")
		}
		panic("preloader panic")
	}
	c, _ := newClient(t, query.WithPreloader(preloader))

	obs := query.Observe(c, query.Options[[]map[string]any]{
		Key:     query.NewKey("companies"),
		Preload: true,
		Fn: func(context.Context) ([]map[string]any, error) {
			return []map[string]any{{"id": 1}, {"id": 2}}, nil
		},
	})
	defer obs.Close()

	res := obs.Refetch(context.Background())
	c.Close()
	require.NoError(t, res.Err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestRelatedIDs(t *testing.T) {
	type user struct {
		ID     string `json:"id,omitempty"`
		UserID string `json:"user_id"`
	}

	tests := []struct {
		name string
		data any
		want []string
	}{
		{"not a slice", map[string]any{"id": 1}, nil},
		{"nil", nil, nil},
		{"maps", []map[string]any{{"id": "a"}, {"user_id": 7}, {"name": "x"}}, []string{"a", "7"}},
		{"zero id falls back", []map[string]any{{"id": 0, "user_id": "u1"}}, []string{"u1"}},
		{"structs", []user{{ID: "x"}, {UserID: "y"}, {}}, []string{"x", "y"}},
		{"pointers", []*company{{ID: 9}, nil}, []string{"9"}},
		{"limit", []company{{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}, {ID: 5}, {ID: 6}}, []string{"1", "2", "3", "4", "5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := query.RelatedIDs(tt.data, 5)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKey(t *testing.T) {
	k := query.NewKey("companies", 42, true)
	assert.Equal(t, query.Key{"companies", "42", "true"}, k)
	assert.Equal(t, "companies_42_true", k.Joined())
	assert.Equal(t, query.Key{"companies", "42"}, k.Parent())
	assert.Empty(t, query.NewKey("companies").Parent())

	child := k.Parent().With("7")
	assert.Equal(t, query.Key{"companies", "42", "7"}, child)
	assert.Equal(t, query.Key{"companies", "42", "true"}, k)
}
