// Package telemetry provides optional, observability-only timing hooks for
// the layout pipeline. A Recorder never affects output bytes: it exists so
// that MERMAN_FLOWCHART_LAYOUT_TIMING=1 can make the per-phase cost of a
// layout call ("expand self-loops", "build graph", "extract clusters",
// "place graph", "build output") visible on
// standard error without hard-wiring any specific metrics backend into the
// layout engines.
//
// The registry follows the no-op-default hooks pattern: libraries call
// [Active] and get a working Recorder whether or not anyone registered one,
// and applications opt in once at startup via [SetRecorder].
package telemetry

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// Recorder records the elapsed duration of named phases within a layout
// call. Phase returns a function that, when called, stops the timer and
// records the measurement; callers are expected to defer it:
//
//	stop := rec.Phase("extract clusters")
//	defer stop()
type Recorder interface {
	Phase(name string) func()
}

// noopRecorder discards every measurement. It is the default so that
// layout code can call [Active] unconditionally with zero overhead when no
// one is listening.
type noopRecorder struct{}

func (noopRecorder) Phase(string) func() { return func() {} }

// WriterRecorder writes "phase: duration" lines to W as each phase
// completes. This is what the CLI installs when
// MERMAN_FLOWCHART_LAYOUT_TIMING=1 is set, grounded on the CLI's own
// elapsed-time progress logging.
type WriterRecorder struct {
	W      io.Writer
	Prefix string

	mu sync.Mutex
}

// Phase starts a timer for name and returns a function that writes the
// elapsed duration to W when called.
func (r *WriterRecorder) Phase(name string) func() {
	start := time.Now()
	return func() {
		d := time.Since(start)
		r.mu.Lock()
		defer r.mu.Unlock()
		fmt.Fprintf(r.W, "%s%s: %s\n", r.Prefix, name, d)
	}
}

var (
	active   Recorder = noopRecorder{}
	activeMu sync.RWMutex
)

// SetRecorder installs the process-wide Recorder used by [Active]. Passing
// nil restores the no-op default. Call once at startup, before any layout
// call that should be measured.
func SetRecorder(r Recorder) {
	activeMu.Lock()
	defer activeMu.Unlock()
	if r == nil {
		r = noopRecorder{}
	}
	active = r
}

// Active returns the currently installed Recorder.
func Active() Recorder {
	activeMu.RLock()
	defer activeMu.RUnlock()
	return active
}

// Reset restores the no-op default. Primarily useful in tests.
func Reset() {
	activeMu.Lock()
	defer activeMu.Unlock()
	active = noopRecorder{}
}
