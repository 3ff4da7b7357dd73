package styles

import "github.com/charmbracelet/lipgloss"

// Color constants
const (
	ColorAccent     = "205" // Magenta - titles, headers, emphasis
	ColorSuccess    = "171" // Purple - success messages
	ColorFaint      = "238" // Gray - borders, separators, help text
	ColorHighlight  = "62"  // Dark Cyan - focused field backgrounds
	ColorSelected   = "230" // Light Yellow - focused field foreground
	ColorCellNormal = "252" // Light Gray - normal cell text
)

// Common reusable styles
var (
	// Title style - used for headings and vendor names
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent))

	// Success style - used for the "Connection successful!" status line
	Success = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSuccess)).
		Bold(true)

	// Error style - used for concatenated diagnostic lines
	Error = lipgloss.NewStyle().
		Foreground(lipgloss.Color("196")). // Red
		Bold(true)

	// Faint style - used for help text, footers, disabled fields
	Faint = lipgloss.NewStyle().
		Faint(true)

	Separator = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorFaint))
)

// Form field styles
var (
	FieldLabel = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorAccent)).
			Bold(true)

	FieldFocused = lipgloss.NewStyle().
			Background(lipgloss.Color(ColorHighlight)).
			Foreground(lipgloss.Color(ColorSelected)).
			Bold(true)

	FieldDisabled = lipgloss.NewStyle().
			Faint(true).
			Strikethrough(true)
)

// Result table styles
var (
	TableHeader = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorAccent)).
			Bold(true)

	TableCell = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorCellNormal))

	TableBorder = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorFaint))
)
