// Package metrics records request latencies in an HDR histogram.
package metrics

import (
	"sort"
	"sync"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

// Histogram bounds in microseconds: 1µs to 10 minutes, 3 significant figures.
const (
	histogramMin     = 1
	histogramMax     = 600_000_000
	histogramSigFigs = 3
)

// Recorder aggregates latencies and outcome counts. It is safe for
// concurrent use.
type Recorder struct {
	mu        sync.Mutex
	hist      *hdrhistogram.Histogram
	successes int64
	failures  map[string]int64
	started   time.Time
	now       func() time.Time
}

// NewRecorder creates an empty recorder. Elapsed time is measured from now.
func NewRecorder() *Recorder {
	return &Recorder{
		hist:     hdrhistogram.New(histogramMin, histogramMax, histogramSigFigs),
		failures: make(map[string]int64),
		started:  time.Now(),
		now:      time.Now,
	}
}

// Record adds one request. Failed requests are counted under category and
// their latency is recorded like any other.
func (r *Recorder) Record(d time.Duration, success bool, category string) {
	micros := d.Microseconds()
	if micros < histogramMin {
		micros = histogramMin
	}
	if micros > histogramMax {
		micros = histogramMax
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// RecordValue only fails for out-of-range values, which are clamped above.
	_ = r.hist.RecordValue(micros)
	if success {
		r.successes++
		return
	}
	if category == "" {
		category = "unknown"
	}
	r.failures[category]++
}

// Failure is a count of failed requests for one category.
type Failure struct {
	Category string
	Count    int64
}

// Summary is a snapshot of a Recorder.
type Summary struct {
	Requests  int64
	Successes int64
	Failures  []Failure
	Elapsed   time.Duration

	Min  time.Duration
	Mean time.Duration
	P50  time.Duration
	P90  time.Duration
	P95  time.Duration
	P99  time.Duration
	Max  time.Duration
}

// ErrorRate returns the fraction of failed requests.
func (s Summary) ErrorRate() float64 {
	if s.Requests == 0 {
		return 0
	}
	return float64(s.Requests-s.Successes) / float64(s.Requests)
}

// Summary returns the current aggregates. Failures are sorted by category.
func (r *Recorder) Summary() Summary {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := Summary{
		Requests:  r.hist.TotalCount(),
		Successes: r.successes,
		Elapsed:   r.now().Sub(r.started),
	}
	for category, count := range r.failures {
		s.Failures = append(s.Failures, Failure{Category: category, Count: count})
	}
	sort.Slice(s.Failures, func(i, j int) bool {
		return s.Failures[i].Category < s.Failures[j].Category
	})

	if s.Requests == 0 {
		return s
	}

	micros := func(v int64) time.Duration { return time.Duration(v) * time.Microsecond }
	s.Min = micros(r.hist.Min())
	s.Mean = micros(int64(r.hist.Mean()))
	s.P50 = micros(r.hist.ValueAtQuantile(50))
	s.P90 = micros(r.hist.ValueAtQuantile(90))
	s.P95 = micros(r.hist.ValueAtQuantile(95))
	s.P99 = micros(r.hist.ValueAtQuantile(99))
	s.Max = micros(r.hist.Max())
	return s
}
