//go:build integration

package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/precmd/precmd/internal/log"
	"github.com/precmd/precmd/internal/output"
)

// testContext returns a context wired like Execute() does, with the printer
// writing into the returned buffer so tests can inspect stdout output.
func testContext(t *testing.T) (context.Context, *bytes.Buffer) {
	t.Helper()

	buf := &bytes.Buffer{}
	ctx := log.WithLogger(context.Background(), log.New(io.Discard, false, true))
	ctx = output.WithPrinter(ctx, buf)
	return ctx, buf
}

// executeCommand runs a command with the given args, silencing cobra's own
// output streams.
func executeCommand(ctx context.Context, cmd *cobra.Command, args ...string) error {
	cmd.SetArgs(args)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	return cmd.ExecuteContext(ctx)
}

func runGit(t *testing.T, dir string, args ...string) {
	t.Helper()

	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("git %v failed: %v\n%s", args, err, out)
	}
}

// resolveTempDir returns a temp dir with symlinks resolved. Needed on macOS
// where /var is a symlink to /private/var.
func resolveTempDir(t *testing.T) string {
	t.Helper()

	dir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("failed to resolve temp dir: %v", err)
	}
	return dir
}

// setupRepo creates a git repo with one commit on the given branch.
func setupRepo(t *testing.T, branch string) string {
	t.Helper()

	dir := resolveTempDir(t)
	runGit(t, dir, "init", "-b", branch)
	runGit(t, dir, "config", "user.email", "test@test.com")
	runGit(t, dir, "config", "user.name", "Test User")
	runGit(t, dir, "config", "commit.gpgsign", "false")

	readme := filepath.Join(dir, "README.md")
	if err := os.WriteFile(readme, []byte("# test\n"), 0644); err != nil {
		t.Fatalf("failed to write README: %v", err)
	}
	runGit(t, dir, "add", "README.md")
	runGit(t, dir, "commit", "-m", "Initial commit")

	return dir
}
