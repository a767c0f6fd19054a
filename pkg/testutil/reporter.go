package testutil

import "sync"

// RecordingReporter implements types.Reporter and records every
// notification as "verb path" in call order.
type RecordingReporter struct {
	mu    sync.Mutex
	Calls []string
}

// NewRecordingReporter creates an empty RecordingReporter.
func NewRecordingReporter() *RecordingReporter {
	return &RecordingReporter{}
}

func (r *RecordingReporter) record(verb, path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Calls = append(r.Calls, verb+" "+path)
}

func (r *RecordingReporter) Added(path string)           { r.record("added", path) }
func (r *RecordingReporter) Overwritten(path string)     { r.record("overwritten", path) }
func (r *RecordingReporter) SkippedExisting(path string) { r.record("skipped", path) }
func (r *RecordingReporter) Injected(path string)        { r.record("injected", path) }
