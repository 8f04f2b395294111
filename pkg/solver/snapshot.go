package solver

import "sort"

// Class is one equivalence class in a snapshot: a distinct node identity
// together with every variable currently resolving to it and the tokens of
// its solution. Variables are unordered; Tokens are in ascending id order
// (first-sighting order).
type Class[T comparable, V comparable] struct {
	ID        int // stable slot id of the surviving node
	Variables []V
	Tokens    []T
}

// ClassEdge is a subset edge between two distinct classes, identified by
// their slot ids.
type ClassEdge struct {
	From int
	To   int
}

// Snapshot is a read-only export of the reduced constraint graph at a point
// in time. Classes are ordered by ascending slot id and edges are
// deduplicated; self edges (subsets within one class) are omitted.
type Snapshot[T comparable, V comparable] struct {
	Classes []Class[T, V]
	Edges   []ClassEdge
}

// Snapshot exports the current reduced constraint graph. It has no
// observable effect on the solver (representative lookups may compress
// internal union-find paths), and the returned copy does not change as
// further constraints arrive.
func (s *Solver[T, V]) Snapshot() Snapshot[T, V] {
	classes := make(map[int32]*Class[T, V])
	for v, slot := range s.vars {
		rep := s.find(slot)
		c, ok := classes[rep]
		if !ok {
			ids := s.nodes[rep].sol.ids()
			tokens := make([]T, len(ids))
			for i, id := range ids {
				tokens[i] = s.tokens.token(id)
			}
			c = &Class[T, V]{ID: int(rep), Tokens: tokens}
			classes[rep] = c
		}
		c.Variables = append(c.Variables, v)
	}

	var snap Snapshot[T, V]
	seen := make(map[ClassEdge]bool)
	for rep, c := range classes {
		snap.Classes = append(snap.Classes, *c)
		for v := range s.nodes[rep].succ {
			to := s.find(s.vars[v])
			if to == rep {
				continue
			}
			e := ClassEdge{From: int(rep), To: int(to)}
			if !seen[e] {
				seen[e] = true
				snap.Edges = append(snap.Edges, e)
			}
		}
	}

	sort.Slice(snap.Classes, func(i, j int) bool { return snap.Classes[i].ID < snap.Classes[j].ID })
	sort.Slice(snap.Edges, func(i, j int) bool {
		if snap.Edges[i].From != snap.Edges[j].From {
			return snap.Edges[i].From < snap.Edges[j].From
		}
		return snap.Edges[i].To < snap.Edges[j].To
	})
	return snap
}
