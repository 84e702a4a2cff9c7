// Package calendar renders the seven day strip shown under today's
// progress.
package calendar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
)

// Day describes a single day rendered in the strip.
type Day struct {
	Weekday  string
	Glasses  float64
	Recorded bool
	IsToday  bool
}

// Options controls strip styling.
type Options struct {
	Goal       int
	LabelStyle lipgloss.Style
	EmptyStyle lipgloss.Style
	ShortStyle lipgloss.Style
	MetStyle   lipgloss.Style
	TodayStyle lipgloss.Style
}

var levels = []rune("▁▂▃▄▅▆▇█")

// Render produces two lines: weekday labels and one bar per day scaled to
// the goal.
func Render(days []Day, opts Options) string {
	if len(days) == 0 {
		return ""
	}

	labels := make([]string, 0, len(days))
	bars := make([]string, 0, len(days))
	for _, d := range days {
		label := opts.LabelStyle
		if d.IsToday {
			label = label.Inherit(opts.TodayStyle)
		}
		labels = append(labels, label.Render(fmt.Sprintf("%-2s", d.Weekday)))
		bars = append(bars, renderDay(d, opts))
	}
	return strings.Join(labels, " ") + "\n" + strings.Join(bars, " ")
}

func renderDay(d Day, opts Options) string {
	if !d.Recorded {
		return opts.EmptyStyle.Render("· ")
	}
	style := opts.ShortStyle
	if opts.Goal > 0 && d.Glasses >= float64(opts.Goal) {
		style = opts.MetStyle
	}
	return style.Render(string(Level(d.Glasses, opts.Goal)) + " ")
}

// Level picks the block character for glasses out of goal.
func Level(glasses float64, goal int) rune {
	if goal <= 0 || glasses <= 0 {
		return levels[0]
	}
	i := int(glasses / float64(goal) * float64(len(levels)-1))
	if i >= len(levels) {
		i = len(levels) - 1
	}
	return levels[i]
}
