package metrics_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pharmaconnect/internal/config"
	"pharmaconnect/internal/metrics"
	"pharmaconnect/internal/metrics/mocks"
)

func newTestConfig() *config.MetricsConfig {
	return &config.MetricsConfig{
		Enabled:        true,
		QueueSize:      16,
		HistoryLimit:   100,
		FlushInterval:  30 * time.Second,
		MemoryInterval: 60 * time.Second,
		WriteTimeout:   time.Second,
	}
}

func newTestRecorder(t *testing.T, cfg *config.MetricsConfig, opts ...metrics.Option) (*metrics.Recorder, *mocks.MockSink) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	sink := mocks.NewMockSink(t)
	return metrics.NewRecorder(sink, cfg, logger, opts...), sink
}

func TestRecord_AppendsEvenWhenWritesFail(t *testing.T) {
	rec, sink := newTestRecorder(t, newTestConfig())

	sink.EXPECT().Insert(mock.Anything, mock.Anything).Return(errors.New("connection refused")).Times(3)
	sink.EXPECT().InsertBatch(mock.Anything, mock.MatchedBy(func(b []metrics.Sample) bool {
		return len(b) == 3
	})).Return(nil).Once()

	require.NoError(t, rec.Start(context.Background()))

	for i := range 3 {
		rec.Record("page_load_time", float64(100*i), metrics.UnitMilliseconds)
		assert.Equal(t, i+1, rec.Pending())
	}
	assert.Len(t, rec.History(), 3)

	rec.Close()
	assert.Equal(t, 0, rec.Pending())
}

func TestRecord_QueueOverflowKeepsSamples(t *testing.T) {
	cfg := newTestConfig()
	cfg.QueueSize = 1
	rec, _ := newTestRecorder(t, cfg)

	for range 5 {
		rec.Record("resource_load_time", 12, metrics.UnitMilliseconds)
	}

	assert.Equal(t, 5, rec.Pending())
	assert.Len(t, rec.History(), 5)
}

func TestRecord_TimestampsNonDecreasing(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))
	rec, _ := newTestRecorder(t, newTestConfig(), metrics.WithClock(clock))

	rec.Record("a", 1, metrics.UnitCount)
	clock.Advance(time.Second)
	rec.Record("b", 2, metrics.UnitCount)
	rec.Record("c", 3, metrics.UnitCount)

	history := rec.History()
	require.Len(t, history, 3)
	for i := 1; i < len(history); i++ {
		assert.False(t, history[i].Time.Before(history[i-1].Time))
	}
	assert.Equal(t, clock.Now(), history[2].Time)
}

func TestRecord_HistoryLimit(t *testing.T) {
	cfg := newTestConfig()
	cfg.HistoryLimit = 2
	rec, _ := newTestRecorder(t, cfg)

	rec.Record("first", 1, metrics.UnitCount)
	rec.Record("second", 2, metrics.UnitCount)
	rec.Record("third", 3, metrics.UnitCount)

	history := rec.History()
	require.Len(t, history, 2)
	assert.Equal(t, "second", history[0].Name)
	assert.Equal(t, "third", history[1].Name)
	assert.Equal(t, 3, rec.Pending())
}

func TestRecord_Disabled(t *testing.T) {
	cfg := newTestConfig()
	cfg.Enabled = false
	rec, _ := newTestRecorder(t, cfg)

	rec.Record("ignored", 1, metrics.UnitCount)

	assert.Equal(t, 0, rec.Pending())
	assert.Empty(t, rec.History())
	require.NoError(t, rec.Start(context.Background()))
	rec.Close()
}

func TestFlush_EmptyBufferIsNoop(t *testing.T) {
	rec, _ := newTestRecorder(t, newTestConfig())

	for range 2 {
		n, err := rec.Flush(context.Background())
		require.NoError(t, err)
		assert.Zero(t, n)
	}

	assert.Equal(t, 0, rec.Pending())
}

func TestFlush_DrainsBufferInOneBatch(t *testing.T) {
	rec, sink := newTestRecorder(t, newTestConfig())

	var flushed []metrics.Sample
	sink.EXPECT().InsertBatch(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, batch []metrics.Sample) {
			flushed = batch
		}).Return(nil).Once()

	rec.Record("dns_lookup_time", 4, metrics.UnitMilliseconds)
	rec.Record("tcp_connect_time", 9, metrics.UnitMilliseconds)
	n, err := rec.Flush(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	require.Len(t, flushed, 2)
	assert.Equal(t, "dns_lookup_time", flushed[0].Name)
	assert.Equal(t, "tcp_connect_time", flushed[1].Name)
	assert.Equal(t, 0, rec.Pending())
	assert.Len(t, rec.History(), 2)
}

func TestFlush_FailedBatchIsNotRetried(t *testing.T) {
	rec, sink := newTestRecorder(t, newTestConfig())

	var sizes []int
	sink.EXPECT().InsertBatch(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, batch []metrics.Sample) {
			sizes = append(sizes, len(batch))
		}).Return(errors.New("insert failed")).Once()
	sink.EXPECT().InsertBatch(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, batch []metrics.Sample) {
			sizes = append(sizes, len(batch))
		}).Return(nil).Once()

	rec.Record("a", 1, metrics.UnitCount)
	rec.Record("b", 2, metrics.UnitCount)
	n, err := rec.Flush(context.Background())
	require.Error(t, err)
	assert.Zero(t, n)
	assert.Equal(t, 0, rec.Pending())

	rec.Record("c", 3, metrics.UnitCount)
	n, err = rec.Flush(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	assert.Equal(t, []int{2, 1}, sizes)
}

func TestClose_FlushesPending(t *testing.T) {
	rec, sink := newTestRecorder(t, newTestConfig())

	sink.EXPECT().InsertBatch(mock.Anything, mock.MatchedBy(func(b []metrics.Sample) bool {
		return len(b) == 2
	})).Return(nil).Once()

	rec.Record("a", 1, metrics.UnitCount)
	rec.Record("b", 2, metrics.UnitCount)

	rec.Close()
	rec.Close()

	assert.Equal(t, 0, rec.Pending())
}

func TestStart_FlushesOnInterval(t *testing.T) {
	clock := clockwork.NewFakeClock()
	cfg := newTestConfig()
	cfg.MemoryInterval = 24 * time.Hour
	rec, sink := newTestRecorder(t, cfg, metrics.WithClock(clock))

	var flushed atomic.Int32
	sink.EXPECT().Insert(mock.Anything, mock.Anything).Return(nil).Maybe()
	sink.EXPECT().InsertBatch(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, batch []metrics.Sample) {
			flushed.Add(int32(len(batch)))
		}).Return(nil).Maybe()

	require.NoError(t, rec.Start(context.Background()))
	t.Cleanup(rec.Close)

	rec.Record("first_contentful_paint", 812, metrics.UnitMilliseconds)
	rec.Record("largest_contentful_paint", 1430, metrics.UnitMilliseconds)

	assert.Eventually(t, func() bool {
		clock.Advance(cfg.FlushInterval)
		return flushed.Load() == 2
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, 0, rec.Pending())
}

func TestStart_SamplesMemoryOnInterval(t *testing.T) {
	clock := clockwork.NewFakeClock()
	cfg := newTestConfig()
	cfg.FlushInterval = time.Hour
	rec, sink := newTestRecorder(t, cfg,
		metrics.WithClock(clock),
		metrics.WithMemoryReader(func() (metrics.MemoryStats, bool) {
			return metrics.MemoryStats{HeapAlloc: 16 << 20, HeapInuse: 8 << 20, HeapSys: 32 << 20}, true
		}))

	sink.EXPECT().Insert(mock.Anything, mock.Anything).Return(nil).Maybe()
	sink.EXPECT().InsertBatch(mock.Anything, mock.Anything).Return(nil).Maybe()

	require.NoError(t, rec.Start(context.Background()))
	t.Cleanup(rec.Close)

	assert.Eventually(t, func() bool {
		clock.Advance(cfg.MemoryInterval)
		for _, s := range rec.History() {
			if s.Name == "memory_usage" {
				return s.Value == 16
			}
		}
		return false
	}, 2*time.Second, 10*time.Millisecond)
}

func TestMeasureOperation_Success(t *testing.T) {
	clock := clockwork.NewFakeClock()
	rec, _ := newTestRecorder(t, newTestConfig(), metrics.WithClock(clock))

	err := rec.MeasureOperation(context.Background(), "load_companies", func(ctx context.Context) error {
		clock.Advance(250 * time.Millisecond)
		return nil
	}, metrics.String("source", "dashboard"))
	require.NoError(t, err)

	history := rec.History()
	require.Len(t, history, 1)
	assert.Equal(t, "operation_load_companies", history[0].Name)
	assert.InDelta(t, 250.0, history[0].Value, 0.001)
	assert.Equal(t, metrics.UnitMilliseconds, history[0].Unit)

	status, ok := history[0].Tags.Get("status")
	require.True(t, ok)
	assert.Equal(t, "success", status.String())
	source, ok := history[0].Tags.Get("source")
	require.True(t, ok)
	assert.Equal(t, "dashboard", source.String())
}

func TestMeasureOperation_ErrorIsRecordedAndReturned(t *testing.T) {
	rec, _ := newTestRecorder(t, newTestConfig())
	expectedErr := errors.New("anvisa feed unavailable")

	err := rec.MeasureOperation(context.Background(), "sync_alerts", func(ctx context.Context) error {
		return expectedErr
	})

	require.Error(t, err)
	assert.Same(t, expectedErr, err)
	assert.EqualError(t, err, "anvisa feed unavailable")

	history := rec.History()
	require.Len(t, history, 1)
	assert.Equal(t, "operation_sync_alerts", history[0].Name)
	status, ok := history[0].Tags.Get("status")
	require.True(t, ok)
	assert.Equal(t, "error", status.String())
}

func TestMeasure_ReturnsValue(t *testing.T) {
	rec, _ := newTestRecorder(t, newTestConfig())

	got, err := metrics.Measure(context.Background(), rec, "count", func(ctx context.Context) (int, error) {
		return 42, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 42, got)
	assert.Equal(t, 1, rec.Pending())
}

func TestSampleMemory(t *testing.T) {
	rec, _ := newTestRecorder(t, newTestConfig(), metrics.WithMemoryReader(func() (metrics.MemoryStats, bool) {
		return metrics.MemoryStats{HeapAlloc: 64 << 20, HeapInuse: 32 << 20, HeapSys: 128 << 20}, true
	}))

	rec.SampleMemory()

	history := rec.History()
	require.Len(t, history, 1)
	assert.Equal(t, "memory_usage", history[0].Name)
	assert.InDelta(t, 64.0, history[0].Value, 0.001)
	assert.Equal(t, metrics.UnitMegabytes, history[0].Unit)
	sys, ok := history[0].Tags.Get("heap_sys_mb")
	require.True(t, ok)
	assert.Equal(t, "128", sys.String())
}

func TestSampleMemory_Unavailable(t *testing.T) {
	rec, _ := newTestRecorder(t, newTestConfig(), metrics.WithMemoryReader(func() (metrics.MemoryStats, bool) {
		return metrics.MemoryStats{}, false
	}))

	rec.SampleMemory()

	assert.Equal(t, 0, rec.Pending())
}

func TestSample_MarshalJSON(t *testing.T) {
	s := metrics.Sample{
		Name:  "web_vitals_cls",
		Value: 0.05,
		Unit:  metrics.UnitScore,
		Time:  time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Tags: metrics.Tags{
			metrics.String("session", "bMZn4Y"),
			metrics.Bool("final", false),
			metrics.Int("entries", 3),
		},
	}

	raw, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"metric_name": "web_vitals_cls",
		"metric_value": 0.05,
		"metric_unit": "score",
		"tags": {"session": "bMZn4Y", "final": false, "entries": 3},
		"measured_at": "2026-03-01T12:00:00Z"
	}`, string(raw))
}
