package constraint

import (
	"bytes"
	"encoding/json"
	"io"
	"sort"

	"github.com/tkarstens/cubist/pkg/errors"
	"github.com/tkarstens/cubist/pkg/solver"
)

// Apply replays every constraint of a validated system into the solver,
// in file order.
func Apply(sys System, s *solver.Solver[string, string]) {
	for _, c := range sys.Constraints {
		switch c.Kind {
		case KindToken:
			s.AddToken(c.Token, c.Var)
		case KindSubset:
			s.AddSubset(c.From, c.To)
		case KindConditional:
			s.AddConditional(c.Token, c.Var, c.From, c.To)
		}
	}
}

// Solve validates sys, feeds it into a fresh solver, and returns the solver
// for querying.
func Solve(sys System) (*solver.Solver[string, string], error) {
	if err := sys.Validate(); err != nil {
		return nil, err
	}
	s := solver.New[string, string]()
	Apply(sys, s)
	return s, nil
}

// =============================================================================
// Solutions - Deterministic Result Serialization
// =============================================================================

// VariableSolution is the computed token set of one variable.
type VariableSolution struct {
	Var    string   `json:"var"`
	Tokens []string `json:"tokens"`
}

// Solutions is the canonical serialization of a solver's full solution map.
// Variables and tokens are sorted for deterministic output, which makes the
// format suitable for caching and golden-file comparison.
type Solutions struct {
	Variables []VariableSolution `json:"variables"`
}

// SolutionsOf extracts every variable's current solution in sorted order.
func SolutionsOf(s *solver.Solver[string, string]) Solutions {
	all := s.AllSolutions()

	out := Solutions{Variables: make([]VariableSolution, 0, len(all))}
	for v, set := range all {
		tokens := make([]string, 0, len(set))
		for t := range set {
			tokens = append(tokens, t)
		}
		sort.Strings(tokens)
		out.Variables = append(out.Variables, VariableSolution{Var: v, Tokens: tokens})
	}
	sort.Slice(out.Variables, func(i, j int) bool {
		return out.Variables[i].Var < out.Variables[j].Var
	})
	return out
}

// MarshalSolutions converts Solutions to indented JSON bytes.
func MarshalSolutions(sol Solutions) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteSolutions(sol, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteSolutions writes Solutions as JSON to an io.Writer.
func WriteSolutions(sol Solutions, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(sol); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode solutions")
	}
	return nil
}

// UnmarshalSolutions deserializes JSON bytes to Solutions.
func UnmarshalSolutions(data []byte) (Solutions, error) {
	var sol Solutions
	if err := json.Unmarshal(data, &sol); err != nil {
		return Solutions{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode solutions")
	}
	return sol, nil
}
