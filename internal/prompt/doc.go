// Package prompt aggregates the working directory, repository state and
// remote-session identity into the immutable Status record and renders it to
// the single pre-command line.
//
// Rendering is a pure function of Status: the same record always produces
// the same bytes. The styled variant only wraps segments in colors and never
// changes ordering or spacing, so disabling color yields exactly the plain
// form.
package prompt
