// Package git interrogates the state of a git repository for the status
// line: repository discovery, the current branch, working tree dirtiness and
// ahead/behind divergence against the upstream.
//
// All probes shell out to the git CLI (see the cmd package for why) and are
// strictly read-only. Every failure collapses to a typed default — no
// repository, empty branch, clean tree, no divergence — because a prompt
// helper must degrade to a quieter line instead of failing the shell's
// prompt cycle.
package git
