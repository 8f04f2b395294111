package solver_test

import (
	"fmt"
	"sort"

	"github.com/tkarstens/cubist/pkg/solver"
)

func sorted(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for t := range set {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

func Example() {
	// Model a tiny points-to problem: p and q alias through a cycle,
	// and r picks up whatever p holds.
	s := solver.New[string, string]()
	s.AddToken("alloc1", "p")
	s.AddSubset("p", "q")
	s.AddSubset("q", "p")
	s.AddSubset("p", "r")
	s.AddToken("alloc2", "q")

	fmt.Println("p:", sorted(s.SolutionOf("p")))
	fmt.Println("q:", sorted(s.SolutionOf("q")))
	fmt.Println("r:", sorted(s.SolutionOf("r")))
	// Output:
	// p: [alloc1 alloc2]
	// q: [alloc1 alloc2]
	// r: [alloc1 alloc2]
}

func ExampleSolver_AddConditional() {
	// A conditional models a field store: only if "obj" flows into x does
	// the assignment src ⊆ dst take effect.
	s := solver.New[string, string]()
	s.AddToken("val", "src")
	s.AddConditional("obj", "x", "src", "dst")

	fmt.Println("before:", sorted(s.SolutionOf("dst")))
	s.AddToken("obj", "x")
	fmt.Println("after:", sorted(s.SolutionOf("dst")))
	// Output:
	// before: []
	// after: [val]
}

func ExampleSolver_Stats() {
	s := solver.New[string, string]()
	s.AddSubset("a", "b")
	s.AddSubset("b", "c")
	s.AddSubset("c", "a")
	s.AddToken("t", "a")

	st := s.Stats()
	fmt.Println("variables:", st.Variables)
	fmt.Println("nodes:", st.Nodes)
	fmt.Println("collapses:", st.Collapses)
	// Output:
	// variables: 3
	// nodes: 1
	// collapses: 1
}
