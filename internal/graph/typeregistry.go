package graph

import "sort"

// typeEntryRegistry is one live type's current_maximum/top_set pair.
type typeEntryRegistry struct {
	name           string
	currentMaximum int
	topSet         *OrderedSet
}

// TypeRegistry maps relation-type name to (current_maximum, top_set), kept
// sorted by type name so in_order() yields ascending lexicographic order
// directly — required for deterministic report emission.
//
// A sorted linked list would be acceptable given the small type counts
// this is expected to see; this implementation uses a sorted slice
// instead, which gives the same O(types) insertion cost with better cache
// locality for the linear scans recompute and Report both perform, and is
// trivial to keep sorted via binary-search insertion.
type TypeRegistry struct {
	entries []*typeEntryRegistry
}

// NewTypeRegistry returns an empty registry sized for capacity distinct
// types. A zero or negative capacity falls back to Go's default slice
// growth.
func NewTypeRegistry(capacity int) *TypeRegistry {
	if capacity <= 0 {
		return &TypeRegistry{}
	}
	return &TypeRegistry{entries: make([]*typeEntryRegistry, 0, capacity)}
}

func (r *TypeRegistry) find(name string) (int, bool) {
	i := sort.Search(len(r.entries), func(i int) bool {
		return r.entries[i].name >= name
	})
	if i < len(r.entries) && r.entries[i].name == name {
		return i, true
	}
	return i, false
}

// Ensure returns the entry for name, creating one (current_maximum = 0,
// empty top_set) at the correct sorted position if absent.
func (r *TypeRegistry) Ensure(name string) *typeEntryRegistry {
	i, ok := r.find(name)
	if ok {
		return r.entries[i]
	}
	e := &typeEntryRegistry{name: name, topSet: NewOrderedSet()}
	r.entries = append(r.entries, nil)
	copy(r.entries[i+1:], r.entries[i:])
	r.entries[i] = e
	return e
}

// Lookup returns the entry for name, or nil if the type has no registry
// entry.
func (r *TypeRegistry) Lookup(name string) *typeEntryRegistry {
	if i, ok := r.find(name); ok {
		return r.entries[i]
	}
	return nil
}

// Drop removes the entry for name. Called once current_maximum falls to
// zero.
func (r *TypeRegistry) Drop(name string) {
	i, ok := r.find(name)
	if !ok {
		return
	}
	r.entries = append(r.entries[:i], r.entries[i+1:]...)
}

// Each visits every entry in ascending type-name order.
func (r *TypeRegistry) Each(fn func(e *typeEntryRegistry)) {
	for _, e := range r.entries {
		fn(e)
	}
}

// Len reports the number of live types.
func (r *TypeRegistry) Len() int {
	return len(r.entries)
}
