package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pharmaconnect/internal/metrics"
)

func TestSampleRow(t *testing.T) {
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	row, err := sampleRow(metrics.Sample{
		Name:  "page_load_time",
		Value: 1200,
		Unit:  metrics.UnitMilliseconds,
		Time:  at,
		Tags:  metrics.Tags{metrics.String("session", "UkLWZg"), metrics.Int("status", 200)},
	})
	require.NoError(t, err)
	require.Len(t, row, len(metricColumns))

	assert.Equal(t, "page_load_time", row[0])
	assert.Equal(t, 1200.0, row[1])
	assert.Equal(t, "ms", row[2])
	assert.JSONEq(t, `{"session":"UkLWZg","status":200}`, string(row[3].([]byte)))
	assert.Equal(t, at, row[4])
}

func TestSampleRow_NoTags(t *testing.T) {
	row, err := sampleRow(metrics.Sample{Name: "memory_usage", Unit: metrics.UnitMegabytes})
	require.NoError(t, err)
	assert.Equal(t, "{}", string(row[3].([]byte)))
}
