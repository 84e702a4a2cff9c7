package printers

import (
	"fmt"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/sip/pkg/timeutil"
	"tableflip.dev/sip/pkg/tracker"
)

// Week prints the seven days before today as a strip of weekday initials
// with the glasses recorded for each. Days without a history entry are
// faint.
func (pp *PrettyPrint) Week(today string, entries []tracker.HistoryEntry, goal int) {
	end, err := timeutil.ParseDay(today)
	if err != nil {
		return
	}

	byDay := make(map[string]float64, len(entries))
	for _, e := range entries {
		byDay[e.Date] = e.Glasses
	}

	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiWhite)
	l3 := color.New(color.Bold, color.FgHiGreen)

	days := WeekBefore(end)
	for _, d := range days {
		_, _ = l1.Fprintf(pp.out(), "%3s ", d.Weekday().String()[0:2])
	}
	_, _ = fmt.Fprint(pp.out(), "\n")

	for _, d := range days {
		v, ok := byDay[d.Format(timeutil.LayoutDay)]
		switch {
		case !ok:
			_, _ = l1.Fprintf(pp.out(), "%3s ", "·")
		case v >= float64(goal):
			_, _ = l3.Fprintf(pp.out(), "%3s ", Glasses(v))
		default:
			_, _ = l2.Fprintf(pp.out(), "%3s ", Glasses(v))
		}
	}
	_, _ = fmt.Fprint(pp.out(), "\n\n")
}

// WeekBefore returns the seven calendar days preceding end, oldest first.
func WeekBefore(end time.Time) []time.Time {
	days := make([]time.Time, 0, tracker.HistoryLimit)
	for i := tracker.HistoryLimit; i >= 1; i-- {
		days = append(days, end.AddDate(0, 0, -i))
	}
	return days
}
