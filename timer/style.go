package timer

import "github.com/charmbracelet/lipgloss"

const (
	padding  = 2
	maxWidth = 60

	minBallWidth = 10
	maxBallWidth = 15
)

// style holds the styles used to render an exercise.
type style struct {
	base      lipgloss.Style
	title     lipgloss.Style
	secondary lipgloss.Style
	hint      lipgloss.Style
	main      lipgloss.Style
	ball      lipgloss.Style
}

func newStyle(color string, darkTheme bool) style {
	fg := lipgloss.Color("#111827")
	hint := lipgloss.Color("#6B7280")

	if darkTheme {
		fg = lipgloss.Color("#F9FAFB")
		hint = lipgloss.Color("#9CA3AF")
	}

	accent := lipgloss.Color(color)

	return style{
		base:      lipgloss.NewStyle().Padding(1, padding),
		title:     lipgloss.NewStyle().Bold(true).Foreground(accent),
		secondary: lipgloss.NewStyle().Foreground(fg),
		hint:      lipgloss.NewStyle().Foreground(hint),
		main:      lipgloss.NewStyle().Bold(true).Foreground(fg),
		ball:      lipgloss.NewStyle().Background(accent),
	}
}
