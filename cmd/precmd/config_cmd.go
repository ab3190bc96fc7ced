package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/precmd/precmd/internal/config"
	"github.com/precmd/precmd/internal/output"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage configuration",
		Aliases: []string{"cfg"},
		Long: `Manage precmd configuration.

Config location: ~/.config/precmd/config.toml`,
		Example: `  precmd config init   # Create default config
  precmd config show   # Show effective config
  precmd config path   # Print config file location`,
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigPathCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var (
		force  bool
		stdout bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create default config file",
		Args:  cobra.NoArgs,
		Example: `  precmd config init      # Create config at ~/.config/precmd/config.toml
  precmd config init -f   # Overwrite existing config
  precmd config init -s   # Print config to stdout`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())

			if stdout {
				out.Print(defaultConfigFile)
				return nil
			}

			configPath, err := config.Path()
			if err != nil {
				return err
			}

			if !force {
				if _, err := os.Stat(configPath); err == nil {
					return fmt.Errorf("config file already exists: %s (use -f to overwrite)", configPath)
				}
			}

			if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
				return err
			}
			if err := os.WriteFile(configPath, []byte(defaultConfigFile), 0644); err != nil {
				return err
			}

			out.Printf("Created config file: %s\n", configPath)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config")
	cmd.Flags().BoolVarP(&stdout, "stdout", "s", false, "Print config to stdout")

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		Args:  cobra.NoArgs,
		Long: `Show effective configuration.

Prints the merged result of the config file and built-in defaults as TOML.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())
			return toml.NewEncoder(out.Writer()).Encode(cfg)
		},
	}
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print config file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, err := config.Path()
			if err != nil {
				return err
			}
			output.FromContext(cmd.Context()).Println(configPath)
			return nil
		},
	}
}

const defaultConfigFile = `# precmd configuration
# Config location: ~/.config/precmd/config.toml

# Shorten the directory path (~/d/t/precmd instead of ~/dev/tools/precmd).
shorten = false

# Color output: "auto" (color when stdout is a terminal), "always", "never".
color = "auto"

# Marker glyphs appended to the branch segment.
[symbols]
dirty = "*"
behind = "⭭"
ahead = "⭫"

# Color theme. Names: default, dracula, nord, gruvbox, none.
# Mode picks the light or dark variant: auto, light, dark.
[theme]
name = "default"
mode = "auto"

# Per-segment color overrides (ANSI number or hex), e.g.:
# path = "4"
# branch = "#6272a4"
# arrows = "244"
# identity = "6"
# root = "#ff5555"
`
