package timeutil

import (
	"testing"
	"time"
)

func TestTodayUsesLocalDate(t *testing.T) {
	c := NewFixedClock(time.Date(2026, time.January, 19, 23, 30, 0, 0, time.Local))
	if got := Today(c); got != "2026-01-19" {
		t.Fatalf("expected 2026-01-19, got %s", got)
	}
	c.AddDays(1)
	if got := Today(c); got != "2026-01-20" {
		t.Fatalf("expected 2026-01-20, got %s", got)
	}
}

func TestFormatDisplay(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "2026-01-19", want: "Jan 19, 2026"},
		{in: "2025-12-01", want: "Dec 1, 2025"},
		{in: "garbage", want: "garbage"},
	}
	for _, tt := range tests {
		if got := FormatDisplay(tt.in); got != tt.want {
			t.Errorf("FormatDisplay(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseDayRejectsBadInput(t *testing.T) {
	if _, err := ParseDay("01/19/2026"); err == nil {
		t.Fatalf("expected error for non ISO date")
	}
}
