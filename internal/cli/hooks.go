package cli

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/tkarstens/cubist/pkg/observability"
)

// logSolverHooks traces solver events to a logger at debug level. The
// events are high-volume on large systems, so they only surface with
// --verbose.
type logSolverHooks struct {
	logger *log.Logger
}

func (h logSolverHooks) OnConstraint(kind, desc string) {
	h.logger.Debug("constraint accepted", "kind", kind, "constraint", desc)
}

func (h logSolverHooks) OnCollapse(members int, desc string) {
	h.logger.Debug("cycle collapsed", "members", members, "cycle", desc)
}

func (h logSolverHooks) OnPropagate(added int) {
	h.logger.Debug("tokens propagated", "added", added)
}

// logCacheHooks traces cache activity to a logger at debug level.
type logCacheHooks struct {
	logger *log.Logger
}

func (h logCacheHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h logCacheHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h logCacheHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}

// registerLogHooks routes solver and cache trace events into the given
// logger. Called once per invocation before any command runs.
func registerLogHooks(logger *log.Logger) {
	observability.SetSolverHooks(logSolverHooks{logger: logger})
	observability.SetCacheHooks(logCacheHooks{logger: logger})
}
