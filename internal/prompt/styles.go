package prompt

import (
	"image/color"
	"os"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/precmd/precmd/internal/config"
)

// Theme defines the color palette of the status line.
type Theme struct {
	Path     color.Color // working directory
	Branch   color.Color // branch name and dirty marker
	Arrows   color.Color // behind/ahead markers
	Identity color.Color // user@host
	Root     color.Color // user part when the session is root
}

// themeFamily groups light and dark variants of a theme.
type themeFamily struct {
	Light *Theme // nil if no light variant
	Dark  *Theme
}

// Preset themes. The default palette follows the classic prompt look: blue
// path, dim VCS segment, cyan divergence arrows, and a bright user name to
// make root sessions stand out.
var (
	DefaultTheme = Theme{
		Path:     lipgloss.Color("4"),   // blue
		Branch:   lipgloss.Color("242"), // gray
		Arrows:   lipgloss.Color("6"),   // cyan
		Identity: lipgloss.Color("242"), // gray
		Root:     lipgloss.Color("15"),  // bright white
	}

	DraculaTheme = Theme{
		Path:     lipgloss.Color("#bd93f9"), // purple
		Branch:   lipgloss.Color("#6272a4"), // comment
		Arrows:   lipgloss.Color("#8be9fd"), // cyan
		Identity: lipgloss.Color("#6272a4"), // comment
		Root:     lipgloss.Color("#f8f8f2"), // foreground
	}

	NordTheme = Theme{
		Path:     lipgloss.Color("#81a1c1"), // nord9 (frost blue)
		Branch:   lipgloss.Color("#4c566a"), // nord3 (polar night)
		Arrows:   lipgloss.Color("#88c0d0"), // nord8 (frost cyan)
		Identity: lipgloss.Color("#4c566a"), // nord3
		Root:     lipgloss.Color("#eceff4"), // nord6 (snow storm)
	}

	NordLightTheme = Theme{
		Path:     lipgloss.Color("#5e81ac"), // nord10 (frost blue, darker)
		Branch:   lipgloss.Color("#9a9a9a"), // gray
		Arrows:   lipgloss.Color("#88c0d0"), // nord8
		Identity: lipgloss.Color("#9a9a9a"), // gray
		Root:     lipgloss.Color("#2e3440"), // nord0 (polar night)
	}

	GruvboxTheme = Theme{
		Path:     lipgloss.Color("#83a598"), // blue
		Branch:   lipgloss.Color("#928374"), // gray
		Arrows:   lipgloss.Color("#8ec07c"), // aqua
		Identity: lipgloss.Color("#928374"), // gray
		Root:     lipgloss.Color("#ebdbb2"), // foreground
	}

	GruvboxLightTheme = Theme{
		Path:     lipgloss.Color("#076678"), // blue (dark for contrast)
		Branch:   lipgloss.Color("#928374"), // gray
		Arrows:   lipgloss.Color("#427b58"), // aqua (dark)
		Identity: lipgloss.Color("#928374"), // gray
		Root:     lipgloss.Color("#3c3836"), // foreground (dark)
	}

	// NoneTheme renders without any colors (uses terminal defaults).
	NoneTheme = Theme{
		Path:     lipgloss.NoColor{},
		Branch:   lipgloss.NoColor{},
		Arrows:   lipgloss.NoColor{},
		Identity: lipgloss.NoColor{},
		Root:     lipgloss.NoColor{},
	}
)

var themeFamilies = map[string]themeFamily{
	"none":    {Light: &NoneTheme, Dark: &NoneTheme},
	"default": {Dark: &DefaultTheme},
	"dracula": {Dark: &DraculaTheme},
	"nord":    {Light: &NordLightTheme, Dark: &NordTheme},
	"gruvbox": {Light: &GruvboxLightTheme, Dark: &GruvboxTheme},
}

// ResolveTheme picks the theme for the given config, consulting the terminal
// background when mode is "auto". Unknown names fall back to the default
// family; callers validate names at config load time.
func ResolveTheme(cfg config.ThemeConfig) Theme {
	family, ok := themeFamilies[cfg.Name]
	if !ok {
		family = themeFamilies["default"]
	}

	var theme *Theme
	switch cfg.Mode {
	case "light":
		theme = family.Light
	case "dark":
		theme = family.Dark
	default: // auto
		if lipgloss.HasDarkBackground(os.Stdin, os.Stderr) {
			theme = family.Dark
		} else {
			theme = family.Light
		}
	}
	if theme == nil {
		if family.Dark != nil {
			theme = family.Dark
		} else {
			theme = family.Light
		}
	}

	t := *theme
	applyOverrides(&t, cfg)
	return t
}

func applyOverrides(t *Theme, cfg config.ThemeConfig) {
	if cfg.Path != "" {
		t.Path = lipgloss.Color(cfg.Path)
	}
	if cfg.Branch != "" {
		t.Branch = lipgloss.Color(cfg.Branch)
	}
	if cfg.Arrows != "" {
		t.Arrows = lipgloss.Color(cfg.Arrows)
	}
	if cfg.Identity != "" {
		t.Identity = lipgloss.Color(cfg.Identity)
	}
	if cfg.Root != "" {
		t.Root = lipgloss.Color(cfg.Root)
	}
}

// RenderStyled produces the same line as Render with lipgloss colors
// applied. The segment ordering contract is identical; only presentation
// differs.
func (s Status) RenderStyled(sym Symbols, theme Theme) string {
	pathStyle := lipgloss.NewStyle().Foreground(theme.Path)
	branchStyle := lipgloss.NewStyle().Foreground(theme.Branch)
	arrowStyle := lipgloss.NewStyle().Foreground(theme.Arrows)
	identStyle := lipgloss.NewStyle().Foreground(theme.Identity)
	rootStyle := lipgloss.NewStyle().Foreground(theme.Root)

	var b strings.Builder
	b.WriteString(pathStyle.Render(s.Path))

	if s.Branch != "" {
		branch := s.Branch
		if s.Dirty {
			branch += sym.Dirty
		}
		b.WriteString(" ")
		b.WriteString(branchStyle.Render(branch))

		var arrows string
		if s.Behind {
			arrows += sym.Behind
		}
		if s.Ahead {
			arrows += sym.Ahead
		}
		if arrows != "" {
			b.WriteString(arrowStyle.Render(arrows))
		}
	}

	if s.Identity != nil {
		b.WriteString(" ")
		if s.Identity.IsRoot {
			b.WriteString(rootStyle.Render(s.Identity.User))
			b.WriteString(identStyle.Render("@" + s.Identity.Host))
		} else {
			b.WriteString(identStyle.Render(s.Identity.User + "@" + s.Identity.Host))
		}
	}

	return b.String()
}
