package tui

import "github.com/charmbracelet/lipgloss"

// Palette taken from the scene so the terminal view matches rendered frames.
var (
	Accent     = lipgloss.Color("#DCFF00")
	Foreground = lipgloss.Color("#f2f2f2")
	Muted      = lipgloss.Color("#6b6b78")
	Floor      = lipgloss.Color("#222228")
	Border     = lipgloss.Color("#3a3a44")
	Warning    = lipgloss.Color("#FFC107")
)

// Styles holds the styled components of the control panel.
type Styles struct {
	Header   lipgloss.Style
	Footer   lipgloss.Style
	Box      lipgloss.Style
	Section  lipgloss.Style
	Label    lipgloss.Style
	Hint     lipgloss.Style
	Selected lipgloss.Style
	Option   lipgloss.Style
	Disabled lipgloss.Style
	Status   lipgloss.Style

	// Plan cells
	Ground    lipgloss.Style
	ZoneFill  lipgloss.Style
	ZoneEdge  lipgloss.Style
	Device    lipgloss.Style
	Subject   lipgloss.Style
	Annot     lipgloss.Style
	AnnotFade lipgloss.Style
}

// NewStyles builds the default dark styling.
func NewStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true),
		Footer: lipgloss.NewStyle().
			Foreground(Muted),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border),
		Section: lipgloss.NewStyle().
			Foreground(Foreground).
			Bold(true).
			MarginTop(1),
		Label: lipgloss.NewStyle().
			Foreground(Foreground).
			Width(10),
		Hint:     lipgloss.NewStyle().Foreground(Muted),
		Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("#000000")).Background(Accent).Padding(0, 1),
		Option:   lipgloss.NewStyle().Foreground(Foreground).Padding(0, 1),
		Disabled: lipgloss.NewStyle().Foreground(Muted).Strikethrough(true).Padding(0, 1),
		Status:   lipgloss.NewStyle().Foreground(Warning),

		Ground:    lipgloss.NewStyle().Foreground(Border),
		ZoneFill:  lipgloss.NewStyle().Foreground(Accent).Faint(true),
		ZoneEdge:  lipgloss.NewStyle().Foreground(Accent),
		Device:    lipgloss.NewStyle().Foreground(Foreground).Bold(true),
		Subject:   lipgloss.NewStyle().Foreground(Foreground),
		Annot:     lipgloss.NewStyle().Foreground(Accent).Bold(true),
		AnnotFade: lipgloss.NewStyle().Foreground(Accent).Faint(true),
	}
}
