package metrics

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_Empty(t *testing.T) {
	s := NewRecorder().Summary()
	assert.Zero(t, s.Requests)
	assert.Zero(t, s.P99)
	assert.Zero(t, s.ErrorRate())
}

func TestRecorder_Percentiles(t *testing.T) {
	r := NewRecorder()
	for i := 1; i <= 100; i++ {
		r.Record(time.Duration(i)*time.Millisecond, true, "")
	}

	s := r.Summary()
	assert.Equal(t, int64(100), s.Requests)
	assert.Equal(t, int64(100), s.Successes)
	assert.InDelta(t, float64(time.Millisecond), float64(s.Min), float64(10*time.Microsecond))
	assert.InDelta(t, float64(50*time.Millisecond), float64(s.P50), float64(time.Millisecond))
	assert.InDelta(t, float64(90*time.Millisecond), float64(s.P90), float64(time.Millisecond))
	assert.InDelta(t, float64(99*time.Millisecond), float64(s.P99), float64(time.Millisecond))
	assert.InDelta(t, float64(100*time.Millisecond), float64(s.Max), float64(time.Millisecond))
	assert.True(t, s.P50 <= s.P90 && s.P90 <= s.P95 && s.P95 <= s.P99 && s.P99 <= s.Max)
}

func TestRecorder_Failures(t *testing.T) {
	r := NewRecorder()
	r.Record(time.Millisecond, true, "")
	r.Record(time.Millisecond, false, "transport")
	r.Record(time.Millisecond, false, "api")
	r.Record(time.Millisecond, false, "api")
	r.Record(time.Millisecond, false, "")

	s := r.Summary()
	require.Len(t, s.Failures, 3)
	assert.Equal(t, []Failure{{"api", 2}, {"transport", 1}, {"unknown", 1}}, s.Failures)
	assert.InDelta(t, 0.8, s.ErrorRate(), 1e-9)
}

func TestRecorder_ClampsOutOfRange(t *testing.T) {
	r := NewRecorder()
	r.Record(0, true, "")
	r.Record(time.Hour, true, "")

	s := r.Summary()
	assert.Equal(t, int64(2), s.Requests)
	assert.Equal(t, time.Microsecond, s.Min)
}

func TestRecorder_Concurrent(t *testing.T) {
	r := NewRecorder()
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				r.Record(time.Millisecond, j%10 != 0, "format")
			}
		}()
	}
	wg.Wait()

	s := r.Summary()
	assert.Equal(t, int64(1000), s.Requests)
	assert.Equal(t, int64(900), s.Successes)
}

func TestRecorder_Elapsed(t *testing.T) {
	r := NewRecorder()
	base := r.started
	r.now = func() time.Time { return base.Add(3 * time.Second) }
	assert.Equal(t, 3*time.Second, r.Summary().Elapsed)
}
