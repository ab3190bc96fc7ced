package git

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// ErrGitNotFound indicates git is not installed or not in PATH
var ErrGitNotFound = fmt.Errorf("git not found: please install git (https://git-scm.com)")

// CheckGit verifies that git is available in PATH
func CheckGit() error {
	_, err := exec.LookPath("git")
	if err != nil {
		return ErrGitNotFound
	}
	return nil
}

// Repo is a handle to a discovered repository. It is read-only and valid for
// a single invocation; every probe re-reads the on-disk state.
type Repo struct {
	root string
}

// Root returns the absolute path of the repository's top-level directory.
func (r *Repo) Root() string {
	return r.root
}

// Discover searches dir and its ancestors for a git repository.
// Not being inside a repository is a normal condition, not an error, so the
// second return value reports success instead.
func Discover(ctx context.Context, dir string) (*Repo, bool) {
	out, err := outputGit(ctx, dir, "rev-parse", "--show-toplevel")
	if err != nil {
		return nil, false
	}
	root := strings.TrimSpace(string(out))
	if root == "" {
		return nil, false
	}
	return &Repo{root: root}, true
}

// Branch returns the shorthand name of the branch HEAD points at.
//
// A freshly initialized repository has a branch ref with no commits behind
// it; for compatibility with existing prompt setups that case reports the
// historical default name "master" regardless of the configured init branch.
// Detached HEAD and every other resolution failure return "" so the caller
// suppresses the branch segment.
func (r *Repo) Branch(ctx context.Context) string {
	out, err := outputGit(ctx, r.root, "symbolic-ref", "--quiet", "--short", "HEAD")
	if err != nil {
		return ""
	}
	name := strings.TrimSpace(string(out))
	if name == "" {
		return ""
	}

	// HEAD names a branch but resolves to no commit: unborn branch.
	if err := runGit(ctx, r.root, "rev-parse", "--verify", "--quiet", "HEAD"); err != nil {
		return "master"
	}
	return name
}

// Dirty returns true if the working tree has uncommitted changes or
// untracked files. Ignored files never count. Probe errors resolve to a
// clean tree so a broken repository cannot break the prompt.
func (r *Repo) Dirty(ctx context.Context) bool {
	out, err := outputGit(ctx, r.root, "status", "--porcelain")
	if err != nil {
		return false
	}
	return strings.TrimSpace(string(out)) != ""
}

// Divergence reports whether HEAD is ahead of and/or behind its configured
// upstream. Without an upstream (including detached HEAD and unborn
// branches) both are false.
func (r *Repo) Divergence(ctx context.Context) (ahead, behind bool) {
	out, err := outputGit(ctx, r.root, "rev-list", "--left-right", "--count", "@{upstream}...HEAD")
	if err != nil {
		return false, false
	}

	// Output is "<behind>\t<ahead>": left side counts commits only reachable
	// from the upstream, right side commits only reachable from HEAD.
	fields := strings.Fields(strings.TrimSpace(string(out)))
	if len(fields) != 2 {
		return false, false
	}
	behindCount, err := strconv.Atoi(fields[0])
	if err != nil {
		return false, false
	}
	aheadCount, err := strconv.Atoi(fields[1])
	if err != nil {
		return false, false
	}
	return aheadCount > 0, behindCount > 0
}
