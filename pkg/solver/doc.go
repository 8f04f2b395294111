// Package solver implements an incremental inclusion-based set-constraint
// solver, the engine behind Andersen-style points-to and flow analyses.
//
// The solver maintains, for every variable, the least set of tokens that
// necessarily belongs to it under the constraints asserted so far. Three
// constraint shapes are supported:
//
//   - AddToken(t, x): token t belongs to variable x
//   - AddSubset(x, y): every token of x also belongs to y
//   - AddConditional(t, x, y, z): once t appears in x, y becomes a subset of z
//
// Constraints may arrive in any order and at any time; each insertion is
// absorbed incrementally, never requiring a restart. Solutions only ever
// grow, and querying a variable that was never mentioned yields the empty
// set.
//
// # Constraint graph and collapsing
//
// Internally every variable resolves to a node in a directed constraint
// graph whose edges are subset relations. Whenever a new edge closes a
// cycle, all nodes on the cycle are provably equivalent and are collapsed
// into a single node via a union-find indirection. This keeps the reduced
// graph acyclic at all times and bounds the total propagation work, which is
// what gives the algorithm its near-cubic complexity instead of repeated
// re-propagation around strongly connected components.
//
// # Usage
//
//	s := solver.New[string, string]()
//	s.AddToken("alloc1", "p")
//	s.AddSubset("p", "q")
//	s.SolutionOf("q") // {"alloc1"}
//
// A Solver is not safe for concurrent use: a single logical caller must
// drive it, with each insertion running to completion before the next.
package solver
