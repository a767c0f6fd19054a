// Package styles defines the visual styling for scaffgen's terminal
// output. All styles use semantic names and adaptive colors that adjust to
// light and dark terminal themes.
package styles

import "github.com/charmbracelet/lipgloss"

var registry = map[string]lipgloss.Style{
	"Success": lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "42"}),
	"Warning": lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "130", Dark: "214"}),
	"Error": lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "196"}),
	"Muted": lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "243", Dark: "245"}),
	"Path": lipgloss.NewStyle().Bold(true),
}

// GetStyle returns the style registered under the semantic name, or a
// zero style when the name is unknown so callers can render unstyled.
func GetStyle(name string) lipgloss.Style {
	if style, ok := registry[name]; ok {
		return style
	}
	return lipgloss.NewStyle()
}
