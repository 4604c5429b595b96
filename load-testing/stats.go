package main

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"
)

type RequestResult struct {
	Action   string
	Duration time.Duration
	Success  bool
	TimedOut bool
}

type BenchmarkStats struct {
	TotalRequests      int64
	SuccessfulRequests int64
	TimeoutRequests    int64
	ErrorRequests      int64
	ByAction           map[string]int64
	ResponseTimes      []time.Duration
	StartTime          time.Time
	EndTime            time.Time
	mu                 sync.Mutex
}

func (b *BenchmarkStats) AddResult(result RequestResult) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.TotalRequests++
	switch {
	case result.TimedOut:
		b.TimeoutRequests++
	case result.Success:
		b.SuccessfulRequests++
	default:
		b.ErrorRequests++
	}
	if b.ByAction == nil {
		b.ByAction = map[string]int64{}
	}
	b.ByAction[result.Action]++
	b.ResponseTimes = append(b.ResponseTimes, result.Duration)
}

// Percentile returns the response time below which p (0..1) of the requests
// fall.
func (b *BenchmarkStats) Percentile(p float64) time.Duration {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.ResponseTimes) == 0 {
		return 0
	}
	sort.Slice(b.ResponseTimes, func(i, j int) bool {
		return b.ResponseTimes[i] < b.ResponseTimes[j]
	})
	i := int(float64(len(b.ResponseTimes)) * p)
	if i >= len(b.ResponseTimes) {
		i = len(b.ResponseTimes) - 1
	}
	return b.ResponseTimes[i]
}

func (b *BenchmarkStats) GetRPS() float64 {
	duration := b.EndTime.Sub(b.StartTime).Seconds()
	if duration == 0 {
		return 0
	}
	return float64(b.TotalRequests) / duration
}

// Los DELETE/CREATE sobre ficheros ya borrados o ya presentes cuentan como fallos
func (b *BenchmarkStats) GetSuccessRate() float64 {
	if b.TotalRequests == 0 {
		return 0
	}
	return float64(b.SuccessfulRequests) / float64(b.TotalRequests) * 100
}

func (b *BenchmarkStats) WriteReport(w io.Writer) {
	fmt.Fprintln(w, "\n"+strings.Repeat("=", 60))
	fmt.Fprintln(w, "BENCHMARK RESULTS")
	fmt.Fprintln(w, strings.Repeat("=", 60))
	fmt.Fprintf(w, "Duration: %v\n", b.EndTime.Sub(b.StartTime))
	fmt.Fprintf(w, "Total Requests: %d\n", b.TotalRequests)
	fmt.Fprintf(w, "Successful Requests: %d\n", b.SuccessfulRequests)
	fmt.Fprintf(w, "Failed Requests: %d\n", b.ErrorRequests)
	fmt.Fprintf(w, "Timeout Requests: %d\n", b.TimeoutRequests)
	fmt.Fprintf(w, "Success Rate: %.2f%%\n", b.GetSuccessRate())
	fmt.Fprintf(w, "RPS (Requests Per Second): %.2f\n", b.GetRPS())

	actions := make([]string, 0, len(b.ByAction))
	for action := range b.ByAction {
		actions = append(actions, action)
	}
	sort.Strings(actions)
	fmt.Fprintln(w, "\nREQUESTS BY ACTION:")
	for _, action := range actions {
		fmt.Fprintf(w, "%s: %d\n", action, b.ByAction[action])
	}

	fmt.Fprintln(w, "\nRESPONSE TIME PERCENTILES:")
	for _, p := range []struct {
		name  string
		value float64
	}{{"p50", 0.50}, {"p90", 0.90}, {"p99", 0.99}} {
		fmt.Fprintf(w, "%s: %v\n", p.name, b.Percentile(p.value))
	}
	fmt.Fprintln(w, strings.Repeat("=", 60))
}
