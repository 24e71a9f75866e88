package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	calls           int
	errors          int
	lastCallLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about the run.
// It is intentionally simple so it can be swapped for a real backend later.
type Recorder struct {
	mu        sync.Mutex
	providers map[string]*providerStats
	captures  int
	outcomes  map[string]int
	otel      *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		providers: make(map[string]*providerStats),
		outcomes:  make(map[string]int),
		otel:      otel,
	}
}

// RecordProviderAttempt increments counters for a provider call and stores the last observed latency.
func (r *Recorder) RecordProviderAttempt(op string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.providers[op]
	if !ok {
		stats = &providerStats{}
		r.providers[op] = stats
	}
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordProviderAttempt(op, duration, err)
	}
}

// RecordCapture counts one captured receipt image.
func (r *Recorder) RecordCapture() {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.captures++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordCapture()
	}
}

// RecordPublishOutcome counts one posting-loop outcome by result name.
func (r *Recorder) RecordPublishOutcome(result string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.outcomes[result]++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordPublishOutcome(result)
	}
}

// ProviderCalls returns the total attempts recorded for an op.
func (r *Recorder) ProviderCalls(op string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if stats, ok := r.providers[op]; ok {
		return stats.calls
	}
	return 0
}

// ProviderErrors returns the total failed attempts recorded for an op.
func (r *Recorder) ProviderErrors(op string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if stats, ok := r.providers[op]; ok {
		return stats.errors
	}
	return 0
}

// Captures returns the number of captured receipts.
func (r *Recorder) Captures() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.captures
}

// PublishOutcomes returns the count recorded for a result name.
func (r *Recorder) PublishOutcomes(result string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.outcomes[result]
}
