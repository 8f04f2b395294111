package run

import (
	"bytes"
	"context"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tkarstens/cubist/pkg/cache"
	"github.com/tkarstens/cubist/pkg/constraint"
	"github.com/tkarstens/cubist/pkg/errors"
)

// Runner encapsulates run execution with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store run results. A single Runner can serve many runs with different
// options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete load → solve → report flow with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid options")
	}

	result := &Result{}

	// Stage 1: Load
	loadStart := time.Now()
	sys, hash, err := r.Load(opts.Path)
	if err != nil {
		return nil, err
	}
	result.System = sys
	result.SystemHash = hash
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.ConstraintCount = len(sys.Constraints)

	r.Logger.Info("loaded constraint system",
		"constraints", len(sys.Constraints),
		"duration", result.Stats.LoadTime)

	// Stage 2: Solve, consulting the cache when the output form allows it.
	cacheKey := r.Keyer.SolutionsKey(hash)
	if !opts.Refresh && !opts.NeedsSnapshot() {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			if sol, err := constraint.UnmarshalSolutions(data); err == nil {
				result.Solutions = sol
				result.CacheInfo.SolveHit = true
				r.Logger.Debug("solutions cache hit", "key", cacheKey)
				return result, nil
			}
		}
	}

	solveStart := time.Now()
	s, err := constraint.Solve(sys)
	if err != nil {
		return nil, err
	}
	result.Solutions = constraint.SolutionsOf(s)
	result.Snapshot = s.Snapshot()
	result.SolverStats = s.Stats()
	result.Stats.SolveTime = time.Since(solveStart)

	r.Logger.Info("solved constraints",
		"variables", result.SolverStats.Variables,
		"nodes", result.SolverStats.Nodes,
		"tokens", result.SolverStats.Tokens,
		"collapses", result.SolverStats.Collapses,
		"duration", result.Stats.SolveTime)

	if data, err := constraint.MarshalSolutions(result.Solutions); err == nil {
		if err := r.Cache.Set(ctx, cacheKey, data, opts.TTL); err != nil {
			r.Logger.Debug("solutions cache write failed", "err", err)
		}
	}

	return result, nil
}

// Load reads and validates a constraint file, returning the system and the
// content hash of the raw file bytes.
func (r *Runner) Load(path string) (constraint.System, string, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return constraint.System{}, "", errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", path)
	}
	if err != nil {
		return constraint.System{}, "", errors.Wrap(errors.ErrCodeInvalidPath, err, "read %s", path)
	}

	format, err := constraint.FormatForPath(path)
	if err != nil {
		return constraint.System{}, "", err
	}
	sys, err := constraint.ReadSystem(bytes.NewReader(data), format)
	if err != nil {
		return constraint.System{}, "", err
	}
	return sys, cache.Hash(data), nil
}
