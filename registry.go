package adt

import (
	"sort"
	"sync"
)

// Registry is a named lookup table for derived instances, shared across a
// process. Registration is an idempotent last-writer-wins overwrite; entries
// persist for the registry's lifetime. All operations are safe for concurrent
// use.
type Registry struct {
	mu sync.RWMutex
	m  map[string]any
}

// NewRegistry returns an empty registry. Most callers want DefaultRegistry.
func NewRegistry() *Registry {
	return &Registry{m: map[string]any{}}
}

// Register stores v under key, replacing any previous entry.
func (r *Registry) Register(key string, v any) {
	r.mu.Lock()
	if r.m == nil {
		r.m = map[string]any{}
	}
	r.m[key] = v
	r.mu.Unlock()
}

// Lookup retrieves the entry stored under key.
func (r *Registry) Lookup(key string) (any, bool) {
	r.mu.RLock()
	v, ok := r.m[key]
	r.mu.RUnlock()
	return v, ok
}

// Keys lists the registered keys, sorted.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	keys := make([]string, 0, len(r.m))
	for k := range r.m {
		keys = append(keys, k)
	}
	r.mu.RUnlock()
	sort.Strings(keys)
	return keys
}

// Reset drops every entry. Intended for test isolation.
func (r *Registry) Reset() {
	r.mu.Lock()
	r.m = map[string]any{}
	r.mu.Unlock()
}

var defaultRegistry = NewRegistry()

// DefaultRegistry returns the process-wide registry used when a builder is
// not given an explicit one.
func DefaultRegistry() *Registry { return defaultRegistry }
