package panel

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss/v2"
)

func TestViewFramesContent(t *testing.T) {
	m := New(lipgloss.NewStyle(), lipgloss.NewStyle())
	m.SetContent("Last 7 days", "Mo Tu", "█ ▄")

	view, height := m.View()
	for _, want := range []string{"Last 7 days", "Mo Tu", "█ ▄", "╭", "╯"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
	// Border top and bottom plus title and two lines.
	if height != 5 {
		t.Errorf("height = %d, want 5", height)
	}
}
