// Package run provides the load → solve → report flow for cubist.
//
// This package implements the complete pipeline that takes a constraint
// file to printed solutions or a rendered graph. Centralizing it here keeps
// the CLI thin and gives embedders the same caching behavior.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: read and validate the constraint file (JSON or TOML)
//  2. Solve: feed the system into a fresh solver
//  3. Report: extract deterministic solutions and a graph snapshot
//
// Solving is deterministic, so serialized solutions are cached keyed by a
// content hash of the input file.
//
// # Usage
//
//	runner := run.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, run.Options{Path: "constraints.json"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Solutions)
package run

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tkarstens/cubist/pkg/constraint"
	"github.com/tkarstens/cubist/pkg/errors"
	"github.com/tkarstens/cubist/pkg/solver"
)

// =============================================================================
// Default Values - Single Source of Truth
// =============================================================================

const (
	// DefaultTTL is how long cached solutions stay valid. Solving is
	// deterministic, so the TTL exists only to bound cache growth.
	DefaultTTL = 30 * 24 * time.Hour
)

// Output format constants.
const (
	FormatJSON  = "json"
	FormatTable = "table"
	FormatDOT   = "dot"
	FormatSVG   = "svg"
)

// DefaultFormat is the default output format.
const DefaultFormat = FormatTable

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatJSON:  true,
	FormatTable: true,
	FormatDOT:   true,
	FormatSVG:   true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for a solve run.
type Options struct {
	// Path is the constraint file to load (.json or .toml).
	Path string `json:"path"`

	// Format selects the output representation.
	Format string `json:"format,omitempty"`

	// Refresh bypasses the cache for reading (results are still stored).
	Refresh bool `json:"refresh,omitempty"`

	// TTL overrides the cached-solutions lifetime.
	TTL time.Duration `json:"ttl,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidInput,
			"invalid format: %q (must be one of: json, table, dot, svg)", format)
	}
	return nil
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent - calling it multiple times has the same effect
// as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := errors.ValidateOutputPath(o.Path); err != nil {
		return err
	}
	if o.Format == "" {
		o.Format = DefaultFormat
	}
	if err := ValidateFormat(o.Format); err != nil {
		return err
	}
	if o.TTL == 0 {
		o.TTL = DefaultTTL
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// NeedsSnapshot reports whether the chosen format requires the reduced
// constraint graph rather than just solutions. Snapshot formats cannot be
// served from the solutions cache.
func (o *Options) NeedsSnapshot() bool {
	return o.Format == FormatDOT || o.Format == FormatSVG
}

// =============================================================================
// Result - Run Outputs
// =============================================================================

// Result contains the outputs of a run.
type Result struct {
	// System is the loaded constraint system.
	System constraint.System

	// SystemHash is the content hash of the input file.
	SystemHash string

	// Solutions holds every variable's computed token set, sorted.
	Solutions constraint.Solutions

	// Snapshot is the reduced constraint graph. Only populated when the
	// solver actually ran (it cannot be reconstructed from cached
	// solutions).
	Snapshot solver.Snapshot[string, string]

	// SolverStats is populated when the solver ran.
	SolverStats solver.Stats

	// Stats contains timing information.
	Stats Stats

	// CacheInfo tracks whether solving was served from cache.
	CacheInfo CacheInfo
}

// Stats contains run timing statistics.
type Stats struct {
	ConstraintCount int
	LoadTime        time.Duration
	SolveTime       time.Duration
}

// CacheInfo tracks cache hits.
type CacheInfo struct {
	SolveHit bool // Whether solutions came from cache
}
