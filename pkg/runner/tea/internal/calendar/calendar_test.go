package calendar

import (
	"strings"
	"testing"
)

func TestLevel(t *testing.T) {
	tests := map[string]struct {
		glasses float64
		goal    int
		want    rune
	}{
		"empty":      {0, 8, '▁'},
		"half":       {4, 8, '▄'},
		"met":        {8, 8, '█'},
		"over":       {12, 8, '█'},
		"no goal":    {3, 0, '▁'},
		"negative":   {-1, 8, '▁'},
		"almost met": {7.5, 8, '▇'},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := Level(tc.glasses, tc.goal); got != tc.want {
				t.Errorf("Level(%v, %d) = %q, want %q", tc.glasses, tc.goal, got, tc.want)
			}
		})
	}
}

func TestRender(t *testing.T) {
	out := Render([]Day{
		{Weekday: "Mo", Glasses: 8, Recorded: true},
		{Weekday: "Tu"},
		{Weekday: "We", Glasses: 4, Recorded: true, IsToday: true},
	}, Options{Goal: 8})

	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), out)
	}
	if !strings.Contains(lines[0], "Mo") || !strings.Contains(lines[0], "We") {
		t.Errorf("labels missing: %q", lines[0])
	}
	if !strings.Contains(lines[1], "█") || !strings.Contains(lines[1], "·") || !strings.Contains(lines[1], "▄") {
		t.Errorf("bars missing: %q", lines[1])
	}
}

func TestRenderEmpty(t *testing.T) {
	if got := Render(nil, Options{}); got != "" {
		t.Errorf("expected empty render, got %q", got)
	}
}
