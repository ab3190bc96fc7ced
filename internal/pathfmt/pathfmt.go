// Package pathfmt turns the working directory into its display form for the
// status line: the home directory collapses to "~" and, when shortening is
// requested, every path element but the last is compressed to its first
// character.
package pathfmt

import "strings"

// Display formats cwd for the prompt. The home prefix becomes "~"; with
// shorten enabled the leading elements are compressed, so
// "~/dev/tools/precmd" renders as "~/d/t/precmd".
func Display(cwd, home string, shorten bool) string {
	path := collapseHome(cwd, home)
	if shorten {
		return shortenPath(path)
	}
	return path
}

// collapseHome replaces the home-directory prefix of cwd with "~".
func collapseHome(cwd, home string) string {
	if home == "" || home == "/" {
		return cwd
	}
	home = strings.TrimSuffix(home, "/")
	if cwd == home {
		return "~"
	}
	if strings.HasPrefix(cwd, home+"/") {
		return "~" + cwd[len(home):]
	}
	return cwd
}

// shortenPath compresses each element except the last to its first
// character. Hidden directories keep the dot plus one character so ".config"
// stays distinguishable as ".c". A leading "~" or "/" is preserved as is.
func shortenPath(path string) string {
	if path == "" {
		return path
	}

	parts := strings.Split(path, "/")
	for i, part := range parts[:len(parts)-1] {
		if part == "" || part == "~" {
			continue
		}
		runes := []rune(part)
		if runes[0] == '.' && len(runes) > 1 {
			parts[i] = string(runes[:2])
		} else {
			parts[i] = string(runes[:1])
		}
	}
	return strings.Join(parts, "/")
}
