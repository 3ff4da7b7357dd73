package form

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sqlping/sqlping/internal/dsn"
)

// Run launches the form, optionally pre-filled from a saved profile, and
// blocks until the user quits.
func Run(initial dsn.Params, rowLimit int) error {
	p := tea.NewProgram(New(initial, rowLimit))
	_, err := p.Run()
	return err
}
