package ui

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Theme is a named colour palette. Values are copied into the model and
// never mutated; switching themes swaps the whole value.
type Theme struct {
	Name       string
	Background lipgloss.Color
	Surface    lipgloss.Color
	Panel      lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	AccentAlt  lipgloss.Color
	Border     lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Info       lipgloss.Color
}

const defaultTheme = "gembooth"

var palettes = map[string]Theme{
	"gembooth": {
		Background: lipgloss.Color("#1a1a2e"),
		Surface:    lipgloss.Color("#16213e"),
		Panel:      lipgloss.Color("#1e2749"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#a8b2d1"),
		Accent:     lipgloss.Color("#e94560"),
		AccentAlt:  lipgloss.Color("#ff5577"),
		Border:     lipgloss.Color("#0f3460"),
		Success:    lipgloss.Color("#00d4aa"),
		Warning:    lipgloss.Color("#ffd700"),
		Info:       lipgloss.Color("#00bfff"),
	},
	"catppuccin": {
		Background: lipgloss.Color("#1e1e2e"),
		Surface:    lipgloss.Color("#313244"),
		Panel:      lipgloss.Color("#45475a"),
		Text:       lipgloss.Color("#cdd6f4"),
		Muted:      lipgloss.Color("#a6adc8"),
		Accent:     lipgloss.Color("#cba6f7"),
		AccentAlt:  lipgloss.Color("#f38ba8"),
		Border:     lipgloss.Color("#585b70"),
		Success:    lipgloss.Color("#94e2d5"),
		Warning:    lipgloss.Color("#f9e2af"),
		Info:       lipgloss.Color("#89b4fa"),
	},
	"dracula": {
		Background: lipgloss.Color("#282a36"),
		Surface:    lipgloss.Color("#343746"),
		Panel:      lipgloss.Color("#3c4053"),
		Text:       lipgloss.Color("#f8f8f2"),
		Muted:      lipgloss.Color("#6272a4"),
		Accent:     lipgloss.Color("#ff79c6"),
		AccentAlt:  lipgloss.Color("#bd93f9"),
		Border:     lipgloss.Color("#44475a"),
		Success:    lipgloss.Color("#50fa7b"),
		Warning:    lipgloss.Color("#f1fa8c"),
		Info:       lipgloss.Color("#8be9fd"),
	},
	"gruvbox": {
		Background: lipgloss.Color("#282828"),
		Surface:    lipgloss.Color("#3c3836"),
		Panel:      lipgloss.Color("#504945"),
		Text:       lipgloss.Color("#ebdbb2"),
		Muted:      lipgloss.Color("#a89984"),
		Accent:     lipgloss.Color("#fabd2f"),
		AccentAlt:  lipgloss.Color("#d3869b"),
		Border:     lipgloss.Color("#665c54"),
		Success:    lipgloss.Color("#b8bb26"),
		Warning:    lipgloss.Color("#fe8019"),
		Info:       lipgloss.Color("#83a598"),
	},
	"solarized_dark": {
		Background: lipgloss.Color("#002b36"),
		Surface:    lipgloss.Color("#073642"),
		Panel:      lipgloss.Color("#0a3a45"),
		Text:       lipgloss.Color("#fdf6e3"),
		Muted:      lipgloss.Color("#93a1a1"),
		Accent:     lipgloss.Color("#b58900"),
		AccentAlt:  lipgloss.Color("#268bd2"),
		Border:     lipgloss.Color("#586e75"),
		Success:    lipgloss.Color("#859900"),
		Warning:    lipgloss.Color("#cb4b16"),
		Info:       lipgloss.Color("#2aa198"),
	},
}

// ThemeFor returns the named theme, falling back to the GemBooth palette.
func ThemeFor(name string) Theme {
	p, ok := palettes[name]
	if !ok {
		name = defaultTheme
		p = palettes[name]
	}
	p.Name = name
	return p
}

// ThemeNames lists the available themes sorted by name.
func ThemeNames() []string {
	names := make([]string, 0, len(palettes))
	for k := range palettes {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// NextThemeName steps through ThemeNames, wrapping in both directions.
func NextThemeName(current string, step int) string {
	names := ThemeNames()
	if len(names) == 0 {
		return current
	}
	idx := 0
	for i, name := range names {
		if name == current {
			idx = i
			break
		}
	}
	idx = (idx + step) % len(names)
	if idx < 0 {
		idx += len(names)
	}
	return names[idx]
}

type styles struct {
	title         lipgloss.Style
	menu          lipgloss.Style
	menuKey       lipgloss.Style
	quit          lipgloss.Style
	sidebar       lipgloss.Style
	sidebarItem   lipgloss.Style
	sidebarActive lipgloss.Style
	content       lipgloss.Style
	status        lipgloss.Style
	warning       lipgloss.Style
	success       lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		title:         lipgloss.NewStyle().Bold(true).Foreground(t.Accent),
		menu:          lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(t.Border).Background(t.Background).Padding(1, 2).Width(56),
		menuKey:       lipgloss.NewStyle().Bold(true).Foreground(t.Info),
		quit:          lipgloss.NewStyle().Foreground(t.Accent),
		sidebar:       lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, true, false, false).BorderForeground(t.Border).Background(t.Surface).Padding(0, 1),
		sidebarItem:   lipgloss.NewStyle().Foreground(t.Muted),
		sidebarActive: lipgloss.NewStyle().Bold(true).Foreground(t.Text).Background(t.AccentAlt),
		content:       lipgloss.NewStyle().Padding(0, 1),
		status:        lipgloss.NewStyle().Foreground(t.Muted).Background(t.Panel),
		warning:       lipgloss.NewStyle().Foreground(t.Warning),
		success:       lipgloss.NewStyle().Foreground(t.Success),
	}
}
