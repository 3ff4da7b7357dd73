package styles

import "github.com/charmbracelet/lipgloss"

// ApplyAccent re-tints the accent-colored styles from configuration. An
// empty value keeps the defaults.
func ApplyAccent(color string) {
	if color == "" {
		return
	}
	c := lipgloss.Color(color)
	Title = Title.Foreground(c)
	FieldLabel = FieldLabel.Foreground(c)
	TableHeader = TableHeader.Foreground(c)
}
