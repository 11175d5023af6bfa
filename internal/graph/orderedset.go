package graph

import "github.com/google/btree"

// btreeDegree matches the degree erigon-lib uses for its generic commitment
// tree; nothing about this program's workload calls for a different value.
const btreeDegree = 32

func entityLess(a, b *Entity) bool {
	return a.ID < b.ID
}

// OrderedSet is an ordered set of entity handles, keyed by lexicographic
// byte order of the entity identifier (Go string comparison is already
// byte-lexicographic, which is exactly the ordering reports need). It
// backs both the per-(destination, type) incoming-source set and a type's
// top_set.
//
// insert and delete are O(log n) worst case via the underlying B-tree;
// in_order (Ascend/Each) visits all n elements in O(n) total.
type OrderedSet struct {
	tree *btree.BTreeG[*Entity]
}

// NewOrderedSet returns an empty ordered set.
func NewOrderedSet() *OrderedSet {
	return &OrderedSet{tree: btree.NewG(btreeDegree, entityLess)}
}

// Insert adds h to the set. A no-op if h is already present.
func (s *OrderedSet) Insert(h *Entity) {
	s.tree.ReplaceOrInsert(h)
}

// Delete removes h from the set. A no-op if h is absent.
func (s *OrderedSet) Delete(h *Entity) {
	s.tree.Delete(h)
}

// Contains reports whether h is a member of the set.
func (s *OrderedSet) Contains(h *Entity) bool {
	return s.tree.Has(h)
}

// Size returns the number of distinct members.
func (s *OrderedSet) Size() int {
	return s.tree.Len()
}

// Clear empties the set.
func (s *OrderedSet) Clear() {
	s.tree.Clear(false)
}

// Each visits every member in ascending identifier order, stopping early
// if fn returns false. This is the set's in_order() traversal.
func (s *OrderedSet) Each(fn func(h *Entity) bool) {
	s.tree.Ascend(func(h *Entity) bool {
		return fn(h)
	})
}

// Slice returns every member in ascending identifier order. Used by the
// report emitter, where the whole ordered sequence is needed at once.
func (s *OrderedSet) Slice() []*Entity {
	out := make([]*Entity, 0, s.tree.Len())
	s.Each(func(h *Entity) bool {
		out = append(out, h)
		return true
	})
	return out
}
