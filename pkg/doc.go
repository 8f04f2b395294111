// Package pkg provides the core libraries for cubist constraint solving.
//
// # Overview
//
// Cubist computes the least solution of a system of inclusion-based set
// constraints: for every variable, the smallest set of tokens satisfying
// all membership, subset, and conditional constraints. The pkg directory
// is organized into five main areas:
//
//  1. [solver] - The incremental inclusion solver (union-find, bit vectors, cycle collapsing)
//  2. [constraint] - Declarative constraint systems and their JSON/TOML codecs
//  3. [run] - Orchestration (load → solve → report) with solution caching
//  4. [render] - DOT and SVG rendering of the reduced constraint graph
//  5. [cache], [errors], [observability], [buildinfo] - Shared infrastructure
//
// # Architecture
//
// The typical data flow through cubist:
//
//	Constraint file (JSON/TOML)
//	         ↓
//	    [constraint] package (decode + validate)
//	         ↓
//	    [solver] package (incremental least-fixpoint solving)
//	         ↓
//	    [run] package (solutions, stats, snapshot, caching)
//	         ↓
//	    Table/JSON/DOT/SVG output
//
// # Quick Start
//
// Solve a small system directly against the solver:
//
//	import "github.com/tkarstens/cubist/pkg/solver"
//
//	s := solver.New[string, string]()
//	s.AddToken("alloc", "p")
//	s.AddSubset("p", "q")
//	fmt.Println(s.SolutionOf("q")) // map[alloc:{}]
//
// Or run the full pipeline from a constraint file:
//
//	import "github.com/tkarstens/cubist/pkg/run"
//
//	runner := run.NewRunner(nil, nil, logger)
//	result, err := runner.Execute(ctx, run.Options{Path: "constraints.json"})
package pkg
