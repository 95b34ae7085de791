// SPDX-License-Identifier: MIT

package srg

import (
	"sort"
	"sync"
)

// Entry is one registry value: the recipe and the family that produced it.
type Entry struct {
	Recipe Recipe
	Family Family
}

// Registry maps Params to Entry with insert-if-absent semantics. Entries are
// never replaced or deleted. Safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries map[Params]Entry
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[Params]Entry)}
}

// Insert stores e under p unless p is already present; reports whether it
// stored.
func (r *Registry) Insert(p Params, e Entry) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[p]; ok {
		return false
	}
	r.entries[p] = e
	return true
}

// Get returns the entry for p.
func (r *Registry) Get(p Params) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[p]
	return e, ok
}

// Has reports whether p is a key.
func (r *Registry) Has(p Params) bool {
	_, ok := r.Get(p)
	return ok
}

// Len returns the number of entries.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Keys returns all keys sorted by Params.Less.
func (r *Registry) Keys() []Params {
	r.mu.RLock()
	keys := make([]Params, 0, len(r.entries))
	for p := range r.entries {
		keys = append(keys, p)
	}
	r.mu.RUnlock()
	sortParams(keys)
	return keys
}

// Snapshot returns a copy of the current contents.
func (r *Registry) Snapshot() map[Params]Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[Params]Entry, len(r.entries))
	for p, e := range r.entries {
		out[p] = e
	}
	return out
}

// CountByFamily tallies entries per family.
func (r *Registry) CountByFamily() map[Family]int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[Family]int)
	for _, e := range r.entries {
		out[e.Family]++
	}
	return out
}

func sortParams(ps []Params) {
	sort.Slice(ps, func(i, j int) bool { return ps[i].Less(ps[j]) })
}
