package prompt

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/precmd/precmd/internal/config"
	"github.com/precmd/precmd/internal/identity"
)

// VCS is the read-only view of a repository the status line needs. It is
// satisfied by *git.Repo; tests use fakes.
type VCS interface {
	// Branch returns the branch shorthand, "master" for an unborn branch, or
	// "" when there is no usable branch info.
	Branch(ctx context.Context) string
	// Dirty reports uncommitted or untracked (non-ignored) changes.
	Dirty(ctx context.Context) bool
	// Divergence reports whether HEAD is ahead of and/or behind its upstream.
	Divergence(ctx context.Context) (ahead, behind bool)
}

// Status is the aggregate rendered into the pre-command line. It is built
// once per invocation and never mutated.
type Status struct {
	Path     string
	Branch   string
	Dirty    bool
	Behind   bool
	Ahead    bool
	Identity *identity.Identity
}

// Symbols holds the marker glyphs appended to the branch segment.
type Symbols struct {
	Dirty  string
	Behind string
	Ahead  string
}

// DefaultSymbols returns the built-in glyph set.
func DefaultSymbols() Symbols {
	return Symbols{Dirty: "*", Behind: "⭭", Ahead: "⭫"}
}

// SymbolsFromConfig converts the configured glyphs.
func SymbolsFromConfig(cfg config.SymbolsConfig) Symbols {
	return Symbols{Dirty: cfg.Dirty, Behind: cfg.Behind, Ahead: cfg.Ahead}
}

// Compose builds the Status for one invocation. A nil vcs (no repository
// found) leaves the VCS fields at their zero values.
//
// The three repository probes have no data dependencies on each other, so
// they run concurrently; each one resolves its own failures to a default and
// never returns an error.
func Compose(ctx context.Context, path string, vcs VCS, id *identity.Identity) Status {
	s := Status{Path: path, Identity: id}
	if vcs == nil {
		return s
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.Branch = vcs.Branch(ctx)
		return nil
	})
	g.Go(func() error {
		s.Dirty = vcs.Dirty(ctx)
		return nil
	})
	g.Go(func() error {
		s.Ahead, s.Behind = vcs.Divergence(ctx)
		return nil
	})
	_ = g.Wait()

	return s
}

// Render produces the plain status line:
//
//	<path>[ <branch>[dirty][behind][ahead]][ <user>@<host>]
//
// The path is always emitted. An empty branch suppresses the whole VCS
// segment including its markers. The behind marker precedes the ahead marker
// when the branch has diverged both ways.
func (s Status) Render(sym Symbols) string {
	var b strings.Builder
	b.WriteString(s.Path)

	if s.Branch != "" {
		b.WriteString(" ")
		b.WriteString(s.Branch)
		if s.Dirty {
			b.WriteString(sym.Dirty)
		}
		if s.Behind {
			b.WriteString(sym.Behind)
		}
		if s.Ahead {
			b.WriteString(sym.Ahead)
		}
	}

	if s.Identity != nil {
		b.WriteString(" ")
		b.WriteString(s.Identity.User)
		b.WriteString("@")
		b.WriteString(s.Identity.Host)
	}

	return b.String()
}
