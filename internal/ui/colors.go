package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/td0m/tickit/pkg/prefs"
)

// Palette is the set of colors a theme paints with
type Palette struct {
	Background lipgloss.Color

	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Faded     lipgloss.Color
	Highlight lipgloss.Color

	Blue   lipgloss.Color
	Green  lipgloss.Color
	Red    lipgloss.Color
	Yellow lipgloss.Color
	Orange lipgloss.Color
}

var (
	Dark = Palette{
		Background: lipgloss.Color("#000"),
		Primary:    lipgloss.Color("#fff"),
		Secondary:  lipgloss.Color("#888"),
		Faded:      lipgloss.Color("#555"),
		Highlight:  lipgloss.Color("#262626"),
		Blue:       lipgloss.Color("#4db7ff"),
		Green:      lipgloss.Color("#00a352"),
		Red:        lipgloss.Color("#c42912"),
		Yellow:     lipgloss.Color("#c4b810"),
		Orange:     lipgloss.Color("#c27510"),
	}

	Light = Palette{
		Background: lipgloss.Color("#fff"),
		Primary:    lipgloss.Color("#111"),
		Secondary:  lipgloss.Color("#555"),
		Faded:      lipgloss.Color("#999"),
		Highlight:  lipgloss.Color("#e4e4e4"),
		Blue:       lipgloss.Color("#0069b4"),
		Green:      lipgloss.Color("#007a3d"),
		Red:        lipgloss.Color("#b3200e"),
		Yellow:     lipgloss.Color("#8c8200"),
		Orange:     lipgloss.Color("#a35c00"),
	}
)

func PaletteFor(t prefs.Theme) Palette {
	if t.IsDark() {
		return Dark
	}
	return Light
}

// Styles are the lipgloss styles of one theme
type Styles struct {
	Palette Palette

	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Text      lipgloss.Style
	Muted     lipgloss.Style
	Error     lipgloss.Style
	Key       lipgloss.Style
	Label     lipgloss.Style
	Input     lipgloss.Style
	Focused   lipgloss.Style
	StatusBar lipgloss.Style

	ActiveTab   lipgloss.Style
	InactiveTab lipgloss.Style
	TabDivider  lipgloss.Style

	TaskIcon     lipgloss.Style
	TaskTitle    lipgloss.Style
	TaskDesc     lipgloss.Style
	TaskSelected lipgloss.Style
	Divider      string

	Pending   lipgloss.Style
	Completed lipgloss.Style
}

func NewStyles(t prefs.Theme) Styles {
	p := PaletteFor(t)
	return Styles{
		Palette: p,

		Title:     lipgloss.NewStyle().Foreground(p.Primary).Bold(true),
		Subtitle:  lipgloss.NewStyle().Foreground(p.Secondary),
		Text:      lipgloss.NewStyle().Foreground(p.Primary),
		Muted:     lipgloss.NewStyle().Foreground(p.Faded),
		Error:     lipgloss.NewStyle().Foreground(p.Red),
		Key:       lipgloss.NewStyle().Foreground(p.Blue).Bold(true),
		Label:     lipgloss.NewStyle().Foreground(p.Secondary),
		Input:     lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(p.Faded).Padding(0, 1),
		Focused:   lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(p.Blue).Padding(0, 1),
		StatusBar: lipgloss.NewStyle().Foreground(p.Red).Padding(0, 1),

		ActiveTab:   lipgloss.NewStyle().Foreground(p.Primary).Bold(true),
		InactiveTab: lipgloss.NewStyle().Foreground(p.Secondary),
		TabDivider:  lipgloss.NewStyle().Foreground(p.Faded),

		TaskIcon:     lipgloss.NewStyle().Bold(true).Padding(0, 1),
		TaskTitle:    lipgloss.NewStyle().Foreground(p.Primary).Bold(true),
		TaskDesc:     lipgloss.NewStyle().Foreground(p.Secondary),
		TaskSelected: lipgloss.NewStyle().Background(p.Highlight),
		Divider:      lipgloss.NewStyle().Foreground(p.Faded).Padding(0, 1).Render("∙"),

		Pending:   lipgloss.NewStyle().Foreground(p.Orange),
		Completed: lipgloss.NewStyle().Foreground(p.Green),
	}
}
