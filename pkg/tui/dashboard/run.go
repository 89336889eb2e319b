package dashboard

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

// Run shows the dashboard full screen until the user quits or the options
// context ends.
func Run(o Options, in io.Reader, out io.Writer) error {
	m := New(o)
	p := tea.NewProgram(m,
		tea.WithContext(m.ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
