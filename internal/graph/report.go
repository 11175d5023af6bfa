package graph

// Fragment is one type's contribution to a report: its name, its top_set
// destinations in ascending identifier order, and the current maximum they
// share. internal/emitter turns a slice of these into the wire format; this
// package never writes bytes directly.
type Fragment struct {
	Type         string
	Destinations []string
	Maximum      int
}

// Report walks the global type registry in ascending type-name order and
// returns one Fragment per live entry. An empty slice means the caller
// should emit the literal "none" token (internal/emitter's job, not this
// package's).
func (g *Graph) Report() []Fragment {
	if g.types.Len() == 0 {
		return nil
	}
	fragments := make([]Fragment, 0, g.types.Len())
	g.types.Each(func(e *typeEntryRegistry) {
		dests := e.topSet.Slice()
		ids := make([]string, len(dests))
		for i, d := range dests {
			ids[i] = d.ID
		}
		fragments = append(fragments, Fragment{
			Type:         e.name,
			Destinations: ids,
			Maximum:      e.currentMaximum,
		})
	})
	return fragments
}
