// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package bench

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/rowbench/pkg/util/syncutil"
	"github.com/cockroachdb/rowbench/pkg/util/timeutil"
	"github.com/codahale/hdrhistogram"
)

const (
	sigFigs    = 3
	minLatency = time.Microsecond
)

// NamedHistogram is a latency histogram for a single operation. It is
// threadsafe, though the harness records into it from one goroutine.
type NamedHistogram struct {
	name string
	mu   struct {
		syncutil.Mutex
		current *hdrhistogram.Histogram
	}
}

func newNamedHistogram(reg *Registry, name string) *NamedHistogram {
	w := &NamedHistogram{name: name}
	w.mu.current = reg.newHistogram()
	return w
}

// Record saves a new datapoint and should be called once per timed run.
func (w *NamedHistogram) Record(elapsed time.Duration) {
	maxLatency := time.Duration(w.mu.current.HighestTrackableValue())
	if elapsed < minLatency {
		elapsed = minLatency
	} else if elapsed > maxLatency {
		elapsed = maxLatency
	}

	w.mu.Lock()
	err := w.mu.current.RecordValue(elapsed.Nanoseconds())
	w.mu.Unlock()

	if err != nil {
		// A histogram only drops recorded values that are out of range, and
		// the value was clamped to the trackable range above.
		panic(errors.AssertionFailedf("%s: recording value: %v", w.name, err))
	}
}

// Snapshot returns a copy of the histogram's current state. Recording may
// continue afterwards without affecting the copy.
func (w *NamedHistogram) Snapshot() *hdrhistogram.Histogram {
	w.mu.Lock()
	defer w.mu.Unlock()
	return Copy(w.mu.current)
}

// Registry is a thread-safe enclosure for the histograms of a benchmark
// run, keyed by operation name.
type Registry struct {
	start  time.Time
	maxLat time.Duration

	mu struct {
		syncutil.RWMutex
		registered map[string]*NamedHistogram
	}
}

// NewRegistry returns an initialized Registry. maxLat is the maximum time a
// single timed run is expected to take; longer runs are clamped to it when
// recorded.
func NewRegistry(maxLat time.Duration) *Registry {
	r := &Registry{
		start:  timeutil.Now(),
		maxLat: maxLat,
	}
	r.mu.registered = make(map[string]*NamedHistogram)
	return r
}

func (w *Registry) newHistogram() *hdrhistogram.Histogram {
	return hdrhistogram.New(minLatency.Nanoseconds(), w.maxLat.Nanoseconds(), sigFigs)
}

// Get returns the NamedHistogram with the given name, creating and
// registering it if necessary. The result is cached, so callers need not
// hold on to it.
func (w *Registry) Get(name string) *NamedHistogram {
	// Fast path for existing histograms, which is the common case by far.
	w.mu.RLock()
	hist, ok := w.mu.registered[name]
	w.mu.RUnlock()
	if ok {
		return hist
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	hist, ok = w.mu.registered[name]
	if !ok {
		hist = newNamedHistogram(w, name)
		w.mu.registered[name] = hist
	}
	return hist
}

// Elapsed returns the time since the registry was created.
func (w *Registry) Elapsed() time.Duration {
	return timeutil.Since(w.start)
}

// Copy makes a new histogram which is a copy of h.
func Copy(h *hdrhistogram.Histogram) *hdrhistogram.Histogram {
	dup := hdrhistogram.New(h.LowestTrackableValue(), h.HighestTrackableValue(),
		int(h.SignificantFigures()))
	dup.Merge(h)
	return dup
}
