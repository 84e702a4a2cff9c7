package panel

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
)

// Model renders a framed panel with a title and body lines.
type Model struct {
	title      string
	lines      []string
	frameStyle lipgloss.Style
	titleStyle lipgloss.Style
}

// New returns a panel whose border and title use the given styles'
// foreground.
func New(border, title lipgloss.Style) Model {
	return Model{
		frameStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border.GetForeground()).
			Padding(0, 1),
		titleStyle: title,
	}
}

// SetContent updates the panel title and body lines.
func (m *Model) SetContent(title string, lines ...string) {
	m.title = title
	m.lines = lines
}

// View returns the rendered panel string and its total height in lines.
func (m Model) View() (string, int) {
	var content []string
	if m.title != "" {
		content = append(content, m.titleStyle.Render(m.title))
	}
	content = append(content, m.lines...)
	view := m.frameStyle.Render(strings.Join(content, "\n"))
	height := strings.Count(view, "\n") + 1
	return view, height
}
