package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/tkarstens/cubist/pkg/observability"
	"github.com/tkarstens/cubist/pkg/solver"
)

func TestRegisterLogHooks(t *testing.T) {
	t.Cleanup(observability.Reset)

	var buf bytes.Buffer
	registerLogHooks(newLogger(&buf, log.DebugLevel))

	t.Run("SolverEventsLogged", func(t *testing.T) {
		buf.Reset()
		s := solver.New[string, string]()
		s.AddToken("a", "x")
		s.AddSubset("x", "y")

		out := buf.String()
		for _, want := range []string{"constraint accepted", "kind=token", "kind=subset", "tokens propagated"} {
			if !strings.Contains(out, want) {
				t.Errorf("log output missing %q:\n%s", want, out)
			}
		}
	})

	t.Run("CollapseLogged", func(t *testing.T) {
		buf.Reset()
		s := solver.New[string, string]()
		s.AddSubset("x", "y")
		s.AddSubset("y", "x")

		if out := buf.String(); !strings.Contains(out, "cycle collapsed") || !strings.Contains(out, "members=2") {
			t.Errorf("log output missing collapse event:\n%s", out)
		}
	})

	t.Run("CacheEventsLogged", func(t *testing.T) {
		buf.Reset()
		ctx := context.Background()
		hooks := observability.Cache()
		hooks.OnCacheMiss(ctx, "solutions")
		hooks.OnCacheHit(ctx, "solutions")
		hooks.OnCacheSet(ctx, "solutions", 128)

		out := buf.String()
		for _, want := range []string{"cache miss", "cache hit", "cache set", "bytes=128"} {
			if !strings.Contains(out, want) {
				t.Errorf("log output missing %q:\n%s", want, out)
			}
		}
	})

	t.Run("InfoLevelSuppressesEvents", func(t *testing.T) {
		t.Cleanup(observability.Reset)
		var quiet bytes.Buffer
		registerLogHooks(newLogger(&quiet, log.InfoLevel))

		s := solver.New[string, string]()
		s.AddToken("a", "x")

		if quiet.Len() != 0 {
			t.Errorf("expected no output at info level, got:\n%s", quiet.String())
		}
	})
}
