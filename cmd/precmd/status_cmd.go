package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/colorprofile"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/precmd/precmd/internal/git"
	"github.com/precmd/precmd/internal/identity"
	"github.com/precmd/precmd/internal/output"
	"github.com/precmd/precmd/internal/pathfmt"
	"github.com/precmd/precmd/internal/prompt"
)

func newStatusCmd() *cobra.Command {
	var (
		shorten   bool
		colorMode string
	)

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Print the pre-command status line",
		Args:  cobra.NoArgs,
		Long: `Print the status line for the current prompt cycle.

The line contains the working directory, the git branch with dirty and
ahead/behind markers when inside a repository, and user@host when inside an
SSH session. Anything that cannot be determined is left out; the command
always succeeds so the shell prompt never breaks.`,
		Example: `  precmd status                # Full working directory
  precmd status --shorten      # ~/d/t/precmd instead of ~/dev/tools/precmd
  precmd status --color=never  # Plain text, e.g. for dumb terminals`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			// Flags win over the config file.
			if !cmd.Flags().Changed("shorten") {
				shorten = cfg.Shorten
			}
			if !cmd.Flags().Changed("color") {
				colorMode = cfg.Color
			}

			st := buildStatus(ctx, statusOptions{
				shorten: shorten,
				env:     identity.SystemEnv(),
			})

			out := output.FromContext(ctx)
			sym := prompt.SymbolsFromConfig(cfg.Symbols)

			if useColor(colorMode) {
				theme := prompt.ResolveTheme(cfg.Theme)
				w := colorprofile.NewWriter(out.Writer(), os.Environ())
				if colorMode == "always" && w.Profile == colorprofile.NoTTY {
					w.Profile = colorprofile.TrueColor
				}
				fmt.Fprintln(w, st.RenderStyled(sym, theme))
				return nil
			}

			out.Println(st.Render(sym))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&shorten, "shorten", "s", false, "Shorten the directory path")
	cmd.Flags().StringVar(&colorMode, "color", "auto", "Color output: auto, always, never")

	return cmd
}

// statusOptions carries the environment of one status invocation. Tests fill
// dir/home explicitly; the command leaves them empty to use the process
// environment.
type statusOptions struct {
	dir     string
	home    string
	shorten bool
	env     identity.Env
}

// buildStatus assembles the Status record for one invocation. Every probe
// fails open: no repository, no identity and even a missing git binary only
// shrink the line down to the bare path.
func buildStatus(ctx context.Context, opts statusOptions) prompt.Status {
	dir := opts.dir
	if dir == "" {
		if wd, err := os.Getwd(); err == nil {
			dir = wd
		}
	}
	home := opts.home
	if home == "" {
		home, _ = os.UserHomeDir()
	}

	path := pathfmt.Display(dir, home, opts.shorten)

	var vcs prompt.VCS
	if git.CheckGit() == nil {
		if repo, ok := git.Discover(ctx, dir); ok {
			vcs = repo
		}
	}

	var id *identity.Identity
	if opts.env != nil {
		id = identity.Detect(opts.env)
	}

	return prompt.Compose(ctx, path, vcs, id)
}

func useColor(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}
}
