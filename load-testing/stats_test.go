package main

import (
	"bytes"
	"math/rand"
	"os"
	"testing"
	"time"

	api "BattleFS/internal/platform/api/zmq"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBenchmarkStats(t *testing.T) {
	stats := &BenchmarkStats{StartTime: time.Unix(0, 0), EndTime: time.Unix(2, 0)}
	for i := 1; i <= 10; i++ {
		stats.AddResult(RequestResult{Action: api.READ, Duration: time.Duration(i) * time.Millisecond, Success: i <= 8})
	}
	stats.AddResult(RequestResult{Action: api.LIST, Duration: time.Second, TimedOut: true})

	assert.Equal(t, int64(11), stats.TotalRequests)
	assert.Equal(t, int64(8), stats.SuccessfulRequests)
	assert.Equal(t, int64(2), stats.ErrorRequests)
	assert.Equal(t, int64(1), stats.TimeoutRequests)
	assert.Equal(t, int64(10), stats.ByAction[api.READ])
	assert.InDelta(t, 5.5, stats.GetRPS(), 0.001)
	assert.Equal(t, time.Second, stats.Percentile(1))
	assert.Equal(t, 6*time.Millisecond, stats.Percentile(0.5))

	var out bytes.Buffer
	stats.WriteReport(&out)
	assert.Contains(t, out.String(), "Total Requests: 11")
	assert.Contains(t, out.String(), "READ: 10")
}

func TestBenchmarkStats_Empty(t *testing.T) {
	stats := &BenchmarkStats{}
	assert.Zero(t, stats.GetSuccessRate())
	assert.Zero(t, stats.GetRPS())
	assert.Zero(t, stats.Percentile(0.99))
}

func TestSeedFiles(t *testing.T) {
	paths, err := seedFiles(t.TempDir(), 5)
	require.NoError(t, err)
	require.Len(t, paths, 5)
	for _, path := range paths {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}
}

func TestPickAction(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		seen[pickAction(r)] = true
	}
	assert.Equal(t, map[string]bool{api.READ: true, api.LIST: true, api.DELETE: true, api.CREATE: true}, seen)
}
