package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/precmd/precmd/internal/output"
	"github.com/precmd/precmd/internal/ui"
)

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "init [shell]",
		Short:     "Output the shell hook",
		ValidArgs: []string{"bash", "zsh", "fish"},
		Args:      cobra.MaximumNArgs(1),
		Long: `Output the shell hook that runs 'precmd status' before every prompt.

Without an argument on an interactive terminal, an interactive selector
asks for the shell.`,
		Example: `  eval "$(precmd init bash)"        # add to ~/.bashrc
  eval "$(precmd init zsh)"         # add to ~/.zshrc
  precmd init fish | source         # add to ~/.config/fish/config.fish`,
		RunE: func(cmd *cobra.Command, args []string) error {
			shell := ""
			if len(args) == 1 {
				shell = args[0]
			} else {
				if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
					return fmt.Errorf("no shell given (supported: bash, zsh, fish)")
				}
				res, err := ui.Select("Select your shell", []string{"bash", "zsh", "fish"})
				if err != nil {
					return fmt.Errorf("selecting shell: %w", err)
				}
				if res.Cancelled {
					return nil
				}
				shell = res.Value
			}

			out := output.FromContext(cmd.Context())
			switch shell {
			case "fish":
				out.Print(fishHook)
			case "bash":
				out.Print(bashHook)
			case "zsh":
				out.Print(zshHook)
			default:
				return fmt.Errorf("unsupported shell: %s (supported: bash, zsh, fish)", shell)
			}
			return nil
		},
	}

	return cmd
}

const bashHook = `# precmd shell hook
# Install: eval "$(precmd init bash)"

__precmd_status() {
    command precmd status
}

case "$PROMPT_COMMAND" in
*__precmd_status*) ;;
*) PROMPT_COMMAND="__precmd_status${PROMPT_COMMAND:+; $PROMPT_COMMAND}" ;;
esac
`

const zshHook = `# precmd shell hook
# Install: eval "$(precmd init zsh)"

__precmd_status() {
    command precmd status
}

autoload -Uz add-zsh-hook
add-zsh-hook precmd __precmd_status
`

const fishHook = `# precmd shell hook
# Install: precmd init fish | source
# Or add to config.fish: precmd init fish | source

function __precmd_status --on-event fish_prompt --description 'Prompt status line'
    command precmd status
end
`
