package solver

import (
	"fmt"

	"github.com/tkarstens/cubist/pkg/observability"
)

// Solver computes the least solution of a growing system of inclusion
// constraints over tokens of type T and variables of type V. Both type
// parameters only need equality; the solver imposes nothing else on their
// representation.
//
// All insertion operations are total: no constraint shape, order, or
// repetition produces an invalid state, and every call runs to completion
// (including any triggered collapsing and propagation) before returning.
type Solver[T comparable, V comparable] struct {
	tokens *registry[T]
	vars   map[V]int32 // variable -> slot, set once at first sighting
	nodes  []*node[V]  // arena; nil for absorbed slots
	parent []int32     // union-find forest over slots

	live        int // distinct node identities after collapsing
	collapses   int
	constraints int
}

// New creates an empty solver.
func New[T comparable, V comparable]() *Solver[T, V] {
	return &Solver[T, V]{
		tokens: newRegistry[T](),
		vars:   make(map[V]int32),
	}
}

// Stats summarizes the solver's current shape.
type Stats struct {
	Variables   int // variables ever referenced
	Nodes       int // distinct nodes after collapsing
	Tokens      int // distinct tokens ever seen
	Constraints int // insertion operations accepted
	Collapses   int // cycle collapses performed
}

// Stats returns counters describing the solver's current state.
func (s *Solver[T, V]) Stats() Stats {
	return Stats{
		Variables:   len(s.vars),
		Nodes:       s.live,
		Tokens:      s.tokens.size(),
		Constraints: s.constraints,
		Collapses:   s.collapses,
	}
}

// AddToken asserts t ∈ x. Asserting the same token twice has no additional
// effect.
func (s *Solver[T, V]) AddToken(t T, x V) {
	s.constraints++
	observability.Solver().OnConstraint("token", fmt.Sprintf("%v in %v", t, x))
	var nb bitset
	nb.set(s.tokens.id(t))
	s.propagate(nb, s.slotFor(x))
}

// AddSubset asserts x ⊆ y. The new edge may close a cycle, in which case all
// nodes on it are collapsed before x's solution is propagated into y.
// Self-subsets are legal no-ops.
func (s *Solver[T, V]) AddSubset(x, y V) {
	s.constraints++
	observability.Solver().OnConstraint("subset", fmt.Sprintf("%v subset of %v", x, y))
	s.addSubset(x, y)
}

// AddConditional asserts t ∈ x ⇒ y ⊆ z. If t already belongs to x the
// subset edge is imposed immediately; otherwise the pair is recorded and
// fired the moment t arrives at x's node.
func (s *Solver[T, V]) AddConditional(t T, x, y, z V) {
	s.constraints++
	observability.Solver().OnConstraint("conditional", fmt.Sprintf("%v in %v implies %v subset of %v", t, x, y, z))
	id := s.tokens.id(t)
	n := s.nodes[s.slotFor(x)]
	if n.sol.has(id) {
		s.addSubset(y, z)
		return
	}
	p := pending[V]{from: y, to: z}
	for _, q := range n.cond[id] {
		if q == p {
			return
		}
	}
	n.cond[id] = append(n.cond[id], p)
}

// SolutionOf returns the set of tokens currently proven to belong to x.
// A variable never referenced by any insertion has the empty solution.
// The result reflects all constraints inserted so far and is a snapshot:
// mutating it does not affect the solver.
func (s *Solver[T, V]) SolutionOf(x V) map[T]struct{} {
	slot, ok := s.vars[x]
	if !ok {
		return map[T]struct{}{}
	}
	n := s.nodes[s.find(slot)]
	out := make(map[T]struct{}, n.sol.count())
	for _, id := range n.sol.ids() {
		out[s.tokens.token(id)] = struct{}{}
	}
	return out
}

// AllSolutions returns the current solution of every variable ever
// referenced.
func (s *Solver[T, V]) AllSolutions() map[V]map[T]struct{} {
	out := make(map[V]map[T]struct{}, len(s.vars))
	for v := range s.vars {
		out[v] = s.SolutionOf(v)
	}
	return out
}

// addSubset installs the edge x→y, collapses any cycle it closes, and
// propagates x's (possibly just-merged) solution into y.
func (s *Solver[T, V]) addSubset(x, y V) {
	sx := s.slotFor(x)
	s.nodes[sx].succ[y] = struct{}{}
	sy := s.slotFor(y)
	if sx != sy {
		if cycle := s.pathBack(sy, sx); len(cycle) > 1 {
			rep := s.collapse(cycle)
			observability.Solver().OnCollapse(len(cycle),
				fmt.Sprintf("cycle of %d nodes closed by %v subset of %v", len(cycle), x, y))
			s.resettle(rep)
			sx, sy = s.find(rep), s.find(sy)
		}
	}
	s.propagate(s.nodes[sx].sol, sy)
}

// resettle restores the fixpoint at a collapse survivor. Members of a cycle
// may have held unequal solutions before the merge, so the union can contain
// tokens some member never saw: conditionals guarded by any token now
// present must fire, and the merged solution must flow along every
// successor edge the members brought in. Both steps are idempotent for
// tokens that were already everywhere, so no delta tracking is needed.
func (s *Solver[T, V]) resettle(slot int32) {
	slot = s.find(slot)
	for _, id := range s.nodes[slot].sol.ids() {
		// Fired insertions may collapse this node again; re-resolve.
		slot = s.find(slot)
		n := s.nodes[slot]
		pairs := n.cond[id]
		if len(pairs) == 0 {
			continue
		}
		delete(n.cond, id)
		for _, p := range pairs {
			s.addSubset(p.from, p.to)
		}
	}

	slot = s.find(slot)
	for v := range s.nodes[slot].succ {
		cur := s.find(slot)
		s.propagate(s.nodes[cur].sol, s.slotFor(v))
	}
}

// propagate merges the candidate bits into the target node and drives the
// consequences to a fixpoint: newly arrived tokens fire pending
// conditionals, and the updated solution is pushed along every successor
// edge. The empty-difference base case and the acyclicity of the reduced
// graph together guarantee termination.
func (s *Solver[T, V]) propagate(nb bitset, slot int32) {
	slot = s.find(slot)
	n := s.nodes[slot]
	delta := nb.diff(n.sol)
	if delta.empty() {
		return
	}
	n.sol.unionWith(delta)
	observability.Solver().OnPropagate(delta.count())

	for _, id := range delta.ids() {
		// A fired conditional runs a full subset insertion, which may
		// collapse this very node; re-resolve before each lookup.
		slot = s.find(slot)
		n = s.nodes[slot]
		pairs := n.cond[id]
		if len(pairs) == 0 {
			continue
		}
		delete(n.cond, id)
		for _, p := range pairs {
			s.addSubset(p.from, p.to)
		}
	}

	slot = s.find(slot)
	n = s.nodes[slot]
	for v := range n.succ {
		cur := s.find(slot)
		s.propagate(s.nodes[cur].sol, s.slotFor(v))
	}
}
