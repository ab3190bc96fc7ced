// Package config loads the precmd configuration from
// ~/.config/precmd/config.toml.
//
// A missing file is not an error: the tool runs every prompt cycle and has
// to work out of the box, so Load falls back to Default(). An invalid file
// is reported once (the CLI prints a warning to stderr) and the defaults are
// used for that invocation.
package config
