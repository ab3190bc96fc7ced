// Package cmd provides helpers for executing external commands with proper
// error handling.
//
// The helpers wrap [os/exec.Cmd] to capture stderr and surface it in error
// messages, and to trace every invocation through the context logger when
// verbose mode is enabled.
//
// # Design Notes
//
// precmd shells out to the git CLI rather than using a Go git library. A
// prompt helper has to see exactly what the user's git sees: their status
// semantics, their ignore rules, their upstream configuration. Going through
// the real binary is the simplest way to guarantee that, and a single
// porcelain status call is also faster than a structured status walk through
// bindings on large trees.
package cmd
