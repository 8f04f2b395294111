// Package constraint defines the file format for inclusion constraint
// systems and their computed solutions.
//
// A constraint file is an ordered list of assertions in one of three
// shapes, mirroring the solver's insertion API:
//
//   - token:       Token ∈ Var
//   - subset:      From ⊆ To
//   - conditional: Token ∈ Var ⇒ From ⊆ To
//
// Files can be JSON or TOML; see ReadSystemFile. The format is
// human-readable and designed for round-trip fidelity.
package constraint

import (
	"github.com/tkarstens/cubist/pkg/errors"
)

// =============================================================================
// Constants - Single Source of Truth
// =============================================================================

// Constraint kinds.
const (
	KindToken       = "token"
	KindSubset      = "subset"
	KindConditional = "conditional"
)

// ValidKinds is the set of supported constraint kinds.
var ValidKinds = map[string]bool{
	KindToken:       true,
	KindSubset:      true,
	KindConditional: true,
}

// =============================================================================
// Constraint - One Assertion
// =============================================================================

// Constraint is a single assertion in a constraint system.
// Which fields are required depends on Kind:
//
//	token:       Token, Var
//	subset:      From, To
//	conditional: Token, Var, From, To
type Constraint struct {
	Kind  string `json:"kind" toml:"kind"`
	Token string `json:"token,omitempty" toml:"token,omitempty"`
	Var   string `json:"var,omitempty" toml:"var,omitempty"`
	From  string `json:"from,omitempty" toml:"from,omitempty"`
	To    string `json:"to,omitempty" toml:"to,omitempty"`
}

// Validate checks that the constraint is well-formed for its kind.
func (c Constraint) Validate() error {
	if !ValidKinds[c.Kind] {
		return errors.New(errors.ErrCodeInvalidConstraint,
			"unknown kind: %q (must be one of: token, subset, conditional)", c.Kind)
	}

	needToken := c.Kind == KindToken || c.Kind == KindConditional
	needEdge := c.Kind == KindSubset || c.Kind == KindConditional

	if needToken {
		if err := errors.ValidateToken(c.Token); err != nil {
			return err
		}
		if err := errors.ValidateVariable(c.Var); err != nil {
			return err
		}
	}
	if needEdge {
		if err := errors.ValidateVariable(c.From); err != nil {
			return err
		}
		if err := errors.ValidateVariable(c.To); err != nil {
			return err
		}
	}

	// Reject stray fields so typos don't silently change meaning.
	if c.Kind == KindToken && (c.From != "" || c.To != "") {
		return errors.New(errors.ErrCodeInvalidConstraint,
			"token constraint must not set from/to")
	}
	if c.Kind == KindSubset && (c.Token != "" || c.Var != "") {
		return errors.New(errors.ErrCodeInvalidConstraint,
			"subset constraint must not set token/var")
	}

	return nil
}

// =============================================================================
// System - Ordered Constraint List
// =============================================================================

// System is an ordered list of constraints. Order only affects intermediate
// solver states, never the final solutions.
type System struct {
	Constraints []Constraint `json:"constraints" toml:"constraint"`
}

// Validate checks every constraint, annotating failures with their index.
func (s System) Validate() error {
	for i, c := range s.Constraints {
		if err := c.Validate(); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConstraint, err, "constraint %d", i)
		}
	}
	return nil
}
