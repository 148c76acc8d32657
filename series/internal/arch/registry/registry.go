// Package registry holds the 4-lane arithmetic backends used by the series
// vector kernel.
//
// Backends register themselves from init(); the series package resolves one
// per evaluation from the features reported by internal/cpu.
package registry

import (
	"cmp"
	"slices"
	"sync"

	"github.com/berquist/simd-examples/internal/cpu"
	"github.com/berquist/simd-examples/lanes"
)

// QuadFn returns x (op) y computed lane by lane.
type QuadFn func(x, y lanes.Quad) lanes.Quad

// OpEntry is one registered 4-lane backend.
type OpEntry struct {
	// Name is a human-readable identifier ("generic", "avx").
	Name string

	// SIMDLevel is the instruction set the backend's functions require.
	SIMDLevel cpu.SIMDLevel

	// Priority orders compatible backends; higher wins.
	//   - generic: 0
	//   - avx: 15
	Priority int

	// Add returns x + y.
	Add QuadFn

	// Mul returns x * y.
	Mul QuadFn
}

// OpRegistry stores available backends.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool
}

// Global is the default backend registry.
var Global = &OpRegistry{}

// Register adds a backend entry.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority backend supported by features, or nil.
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.ensureSorted()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if cpu.Supports(features, entry.SIMDLevel) {
			return entry
		}
	}

	return nil
}

// Find returns the backend registered under name, or nil.
//
// Pointers returned by Find and Lookup stay valid until the next Register.
func (r *OpRegistry) Find(name string) *OpEntry {
	r.ensureSorted()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		if r.entries[i].Name == name {
			return &r.entries[i]
		}
	}

	return nil
}

func (r *OpRegistry) ensureSorted() {
	r.mu.RLock()
	sorted := r.sorted
	r.mu.RUnlock()

	if sorted {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sorted {
		return
	}

	slices.SortStableFunc(r.entries, func(a, b OpEntry) int {
		return cmp.Compare(b.Priority, a.Priority)
	})

	r.sorted = true
}

// ListEntries returns a copy of entries sorted by priority, for tests/debugging.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.ensureSorted()

	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)

	return entries
}

// Reset clears all entries. Intended for tests.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}
