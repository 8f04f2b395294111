package solver

// node is the solver's internal unit of identity. Multiple variables may
// resolve to the same node after cycle collapsing.
type node[V comparable] struct {
	// succ holds the variables this node has a subset edge toward. The set
	// is keyed by variable rather than node so that edges stay valid across
	// collapses without rewriting.
	succ map[V]struct{}

	// sol is the set of token ids proven to belong to this node.
	sol bitset

	// cond maps a token id to the subset edges to impose the moment that
	// token arrives here.
	cond map[int][]pending[V]
}

// pending is a recorded "y ⊆ z" obligation waiting on a guard token.
type pending[V comparable] struct {
	from, to V
}

func newNode[V comparable]() *node[V] {
	return &node[V]{
		succ: make(map[V]struct{}),
		cond: make(map[int][]pending[V]),
	}
}

// slotFor returns the representative slot for v, creating a fresh node if v
// has never been referenced. It never fails.
func (s *Solver[T, V]) slotFor(v V) int32 {
	if slot, ok := s.vars[v]; ok {
		return s.find(slot)
	}
	slot := int32(len(s.nodes))
	s.vars[v] = slot
	s.nodes = append(s.nodes, newNode[V]())
	s.parent = append(s.parent, slot)
	s.live++
	return slot
}

// find resolves a slot to its current representative with path compression.
func (s *Solver[T, V]) find(slot int32) int32 {
	root := slot
	for s.parent[root] != root {
		root = s.parent[root]
	}
	for s.parent[slot] != root {
		s.parent[slot], slot = root, s.parent[slot]
	}
	return root
}

// pathBack collects the representative slots lying on some successor path
// from one slot back to another. The target slot is included when a path
// exists; an empty result means no path. Branches into already-visited slots
// are treated as dead ends, which only prunes the search: the reduced graph
// is acyclic apart from the single cycle the newest edge introduced, so the
// traversal always terminates.
func (s *Solver[T, V]) pathBack(from, to int32) []int32 {
	visited := make(map[int32]bool)
	var walk func(cur int32) []int32
	walk = func(cur int32) []int32 {
		if visited[cur] {
			return nil
		}
		visited[cur] = true
		if cur == to {
			return []int32{cur}
		}
		var hit []int32
		for v := range s.nodes[cur].succ {
			if part := walk(s.find(s.vars[v])); len(part) > 0 {
				hit = append(hit, part...)
			}
		}
		if len(hit) > 0 {
			hit = append(hit, cur)
		}
		return hit
	}
	return walk(from)
}

// collapse merges every slot in cycle into a single surviving node and
// returns the representative slot. Successor sets, solutions, and
// conditional tables are unioned, so no information is lost; variables bound
// to absorbed slots re-resolve to the representative through find.
func (s *Solver[T, V]) collapse(cycle []int32) int32 {
	rep := cycle[0]
	for _, slot := range cycle[1:] {
		if slot < rep {
			rep = slot
		}
	}
	target := s.nodes[rep]
	for _, slot := range cycle {
		if slot == rep {
			continue
		}
		src := s.nodes[slot]
		for v := range src.succ {
			target.succ[v] = struct{}{}
		}
		target.sol.unionWith(src.sol)
		for id, pairs := range src.cond {
			target.cond[id] = append(target.cond[id], pairs...)
		}
		s.parent[slot] = rep
		s.nodes[slot] = nil
		s.live--
	}
	s.collapses++
	return rep
}
