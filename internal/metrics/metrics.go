package metrics

import (
	"sync"
	"time"
)

type datasetStats struct {
	loads           int
	errors          int
	lastRows        int
	lastLoadLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about dataset loads and
// engine queries. It is intentionally simple so it can be swapped for a real
// backend later.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*datasetStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*datasetStats),
		otel:  otel,
	}
}

// RecordDatasetLoad increments counters for one dataset load attempt and
// stores the last observed row count and latency.
func (r *Recorder) RecordDatasetLoad(dataset string, rows int, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStatsLocked(dataset)
	stats.loads++
	stats.lastLoadLatency = duration
	if err != nil {
		stats.errors++
	} else {
		stats.lastRows = rows
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordDatasetLoad(dataset, rows, duration, err)
	}
}

// RecordQuery tracks one engine query with its result size.
func (r *Recorder) RecordQuery(operation string, results int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordQuery(operation, results, duration)
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// DatasetLoads returns the total load attempts recorded for a dataset.
func (r *Recorder) DatasetLoads(dataset string) int {
	return r.Snapshot(dataset).Loads
}

// DatasetErrors returns the total failed loads recorded for a dataset.
func (r *Recorder) DatasetErrors(dataset string) int {
	return r.Snapshot(dataset).Errors
}

// LastRows returns the row count of the last successful load of a dataset.
func (r *Recorder) LastRows(dataset string) int {
	return r.Snapshot(dataset).LastRows
}

// LastLoadLatency returns the last recorded latency for a dataset load.
func (r *Recorder) LastLoadLatency(dataset string) time.Duration {
	return r.Snapshot(dataset).LastLoadLatency
}

// Snapshot is a copy of the current stats for one dataset.
type Snapshot struct {
	Loads           int
	Errors          int
	LastRows        int
	LastLoadLatency time.Duration
}

func (r *Recorder) Snapshot(dataset string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	stats := r.snapshot(dataset)
	return Snapshot{
		Loads:           stats.loads,
		Errors:          stats.errors,
		LastRows:        stats.lastRows,
		LastLoadLatency: stats.lastLoadLatency,
	}
}

func (r *Recorder) ensureStatsLocked(dataset string) *datasetStats {
	stats, ok := r.stats[dataset]
	if !ok {
		stats = &datasetStats{}
		r.stats[dataset] = stats
	}
	return stats
}

func (r *Recorder) snapshot(dataset string) datasetStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	if stats, ok := r.stats[dataset]; ok && stats != nil {
		return *stats
	}
	return datasetStats{}
}
