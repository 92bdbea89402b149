package telemetry

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// TimingCollector records operation durations in start order.
type TimingCollector struct {
	mu      sync.Mutex
	records []*timingRecord
}

type timingRecord struct {
	name  string
	start time.Time
	end   time.Time
}

// NewTimingCollector creates a new timing collector.
func NewTimingCollector() *TimingCollector {
	return &TimingCollector{}
}

// Start begins timing an operation.
func (c *TimingCollector) Start(name string) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()

	rec := &timingRecord{
		name:  name,
		start: time.Now(),
	}
	c.records = append(c.records, rec)

	return &timingTimer{collector: c, record: rec}
}

// Report writes one line per completed timing, in start order.
func (c *TimingCollector) Report(w io.Writer) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, rec := range c.records {
		end := rec.end
		if end.IsZero() {
			// Timer never ended; report elapsed so far.
			end = time.Now()
		}
		_, _ = fmt.Fprintf(w, "%-32s %s\n", rec.name, formatDuration(end.Sub(rec.start)))
	}
}

type timingTimer struct {
	collector *TimingCollector
	record    *timingRecord
}

func (t *timingTimer) End() {
	t.collector.mu.Lock()
	defer t.collector.mu.Unlock()

	t.record.end = time.Now()
}

// formatDuration renders durations with millisecond granularity above a
// millisecond and microsecond granularity below.
func formatDuration(d time.Duration) string {
	if d >= time.Millisecond {
		return fmt.Sprintf("%.1fms", float64(d.Microseconds())/1000.0)
	}
	return fmt.Sprintf("%dµs", d.Microseconds())
}
