package graph

// Stats counts dispatcher activity for the optional metrics path
// (internal/metrics). Tracking these costs nothing beyond an increment at
// each existing call site — there is no extra traversal or allocation.
type Stats struct {
	Commands  map[string]int64
	Noops     int64
	Recomputes int64
}

// Graph is the command dispatcher: it owns an EntityRegistry and a
// TypeRegistry and exposes the five command operations, each total
// (ill-formed preconditions are silent no-ops). A *Graph is meant to be
// driven by one sequential command loop; nothing here is safe for
// concurrent use, and nothing needs to be.
type Graph struct {
	entities *EntityRegistry
	types    *TypeRegistry
	Stats    Stats
}

// Config bundles the capacity hints internal/config loads. None of these
// affect behavior, only preallocation.
type Config struct {
	InitialEntityCapacity int
	InitialTypeCapacity   int
}

// New returns an empty Graph, sized per cfg.
func New(cfg Config) *Graph {
	return &Graph{
		entities: NewEntityRegistry(cfg.InitialEntityCapacity),
		types:    NewTypeRegistry(cfg.InitialTypeCapacity),
		Stats:    Stats{Commands: make(map[string]int64)},
	}
}

func (g *Graph) count(cmd string) {
	g.Stats.Commands[cmd]++
}

// AddEntity implements addent: registers id if absent, a silent no-op if
// id is already bound.
func (g *Graph) AddEntity(id string) {
	g.count("addent")
	g.entities.Register(id)
}

// DelEntity implements delent: destroys entity id, scrubbing every
// reference to it from every other entity's incoming sets and from every
// type's top_set before freeing its storage, then recomputing each type
// that entity participated in as a destination or that lost a source.
// A silent no-op if id is unknown.
func (g *Graph) DelEntity(id string) {
	g.count("delent")
	e := g.entities.Lookup(id)
	if e == nil {
		g.Stats.Noops++
		return
	}

	// Collect the set of types to recompute: every type this entity had
	// an incoming-set entry under (it was a destination), plus every type
	// some other entity's incoming set might have referenced it in
	// (it was a source). The protocol recomputes each exactly once.
	touched := make(map[string]struct{})
	for _, te := range e.incoming {
		touched[te.typ] = struct{}{}
	}

	g.types.Each(func(entry *typeEntryRegistry) {
		typ := entry.name
		sawReference := false
		g.entities.Each(func(u *Entity) {
			if u == e {
				return
			}
			if s := u.incomingSet(typ); s != nil && s.Contains(e) {
				s.Delete(e)
				sawReference = true
				if s.Size() == 0 {
					u.dropIncoming(typ)
				}
			}
		})
		if sawReference {
			touched[typ] = struct{}{}
		}
	})

	// e's own incoming sets (relations * -> e) are destroyed outright: no
	// other entity needs scrubbing for them, since e itself is being
	// freed, but the types they belonged to still need recompute because
	// e may have been sitting in their top_set.
	for _, te := range e.incoming {
		entry := g.types.Lookup(te.typ)
		if entry != nil {
			entry.topSet.Delete(e)
		}
	}
	e.incoming = nil

	for typ := range touched {
		g.recompute(typ)
	}

	g.entities.Unregister(id)
}

// AddRel implements addrel. Silent no-op if either entity is unknown or
// the relation already exists.
func (g *Graph) AddRel(from, to, typ string) {
	g.count("addrel")
	fromE := g.entities.Lookup(from)
	toE := g.entities.Lookup(to)
	if fromE == nil || toE == nil {
		g.Stats.Noops++
		return
	}

	s := toE.getOrCreateIncoming(typ)
	if s.Contains(fromE) {
		g.Stats.Noops++
		return
	}

	entry := g.types.Ensure(typ)
	s.Insert(fromE)
	n := s.Size()

	switch {
	case n == entry.currentMaximum:
		entry.topSet.Insert(toE)
	case n > entry.currentMaximum:
		entry.topSet.Clear()
		entry.topSet.Insert(toE)
		entry.currentMaximum = n
	}
}

// DelRel implements delrel. Silent no-op if either entity is unknown, the
// type has no registry entry, to has no incoming set under typ, or from is
// not in that set.
func (g *Graph) DelRel(from, to, typ string) {
	g.count("delrel")
	fromE := g.entities.Lookup(from)
	toE := g.entities.Lookup(to)
	if fromE == nil || toE == nil {
		g.Stats.Noops++
		return
	}

	entry := g.types.Lookup(typ)
	if entry == nil {
		g.Stats.Noops++
		return
	}

	s := toE.incomingSet(typ)
	if s == nil || !s.Contains(fromE) {
		g.Stats.Noops++
		return
	}

	nBefore := s.Size()
	s.Delete(fromE)
	if s.Size() == 0 {
		toE.dropIncoming(typ)
	}

	if nBefore == entry.currentMaximum {
		if entry.topSet.Size() > 1 {
			entry.topSet.Delete(toE)
			return
		}
		g.recompute(typ)
	}
}

// recompute rebuilds current_maximum and top_set for typ from scratch by
// scanning every live entity's incoming set under typ. O(E log E) in the
// number of live entities; invoked only when incremental maintenance has
// lost the information needed to keep the top-set correct (the sole top
// destination dropped below the maximum, or delent's bulk scrub).
func (g *Graph) recompute(typ string) {
	g.Stats.Recomputes++
	entry := g.types.Lookup(typ)
	if entry == nil {
		entry = g.types.Ensure(typ)
	}
	entry.currentMaximum = 0
	entry.topSet.Clear()

	g.entities.Each(func(x *Entity) {
		s := x.incomingSet(typ)
		if s == nil || s.Size() == 0 {
			return
		}
		m := s.Size()
		switch {
		case m == entry.currentMaximum:
			entry.topSet.Insert(x)
		case m > entry.currentMaximum:
			entry.topSet.Clear()
			entry.currentMaximum = m
			entry.topSet.Insert(x)
		}
	})

	if entry.currentMaximum == 0 {
		g.types.Drop(typ)
	}
}

// EntityCount returns the number of live entities.
func (g *Graph) EntityCount() int { return g.entities.Len() }

// TypeCount returns the number of types with a live registry entry.
func (g *Graph) TypeCount() int { return g.types.Len() }
