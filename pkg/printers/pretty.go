package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/sip/pkg/timeutil"
	"tableflip.dev/sip/pkg/tracker"
)

// PrettyPrint renders tracker state for the terminal.
type PrettyPrint struct {
	// Out defaults to color.Output.
	Out io.Writer
}

const barWidth = 24

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

// Status prints today's progress bar and totals.
func (pp *PrettyPrint) Status(s tracker.Snapshot) {
	pp.Title(timeutil.FormatDisplay(s.Date))

	fill := color.New(color.FgHiCyan)
	if s.GoalMet() {
		fill = color.New(color.FgHiGreen)
	}
	track := color.New(color.Faint)

	filled := int(s.Percent() / 100 * barWidth)
	_, _ = fill.Fprint(pp.out(), strings.Repeat("█", filled))
	_, _ = track.Fprint(pp.out(), strings.Repeat("░", barWidth-filled))
	_, _ = fmt.Fprintf(pp.out(), " %3.0f%%\n", s.Percent())

	_, _ = fmt.Fprintf(pp.out(), "%s of %d glasses (%d ml)\n", Glasses(s.Intake), s.Goal, s.Milliliters())

	f := color.New(color.Faint, color.Italic)
	if s.GoalMet() {
		_, _ = color.New(color.FgHiGreen, color.Bold).Fprintln(pp.out(), "Daily goal reached!")
	} else {
		_, _ = f.Fprintf(pp.out(), "%s to go\n", Glasses(s.Remaining()))
	}
	pp.NewLine()
}

// Outcome prints a one line message for a counter action.
func (pp *PrettyPrint) Outcome(r tracker.Result) {
	msg := OutcomeMessage(r)
	switch {
	case r.Outcome == tracker.OutcomeGoalCompleted:
		_, _ = color.New(color.FgHiGreen, color.Bold).Fprintln(pp.out(), msg)
	case r.Outcome.Rejected():
		_, _ = color.New(color.FgYellow).Fprintln(pp.out(), msg)
	default:
		_, _ = fmt.Fprintln(pp.out(), msg)
	}
}

// OutcomeMessage is the user-facing text for r.
func OutcomeMessage(r tracker.Result) string {
	s := r.Snapshot
	switch r.Outcome {
	case tracker.OutcomeAdded:
		return fmt.Sprintf("Logged. %s of %d glasses.", Glasses(s.Intake), s.Goal)
	case tracker.OutcomeGoalCompleted:
		return fmt.Sprintf("Goal complete! %d of %d glasses.", s.Goal, s.Goal)
	case tracker.OutcomeGoalReached:
		return "You've already reached today's goal."
	case tracker.OutcomeRemoved:
		return fmt.Sprintf("Removed. %s of %d glasses.", Glasses(s.Intake), s.Goal)
	case tracker.OutcomeEmpty:
		return "Nothing to remove yet today."
	case tracker.OutcomeInvalidAmount:
		return "Amount must be a positive number of glasses."
	case tracker.OutcomeUndone:
		return fmt.Sprintf("Undone. %s of %d glasses.", Glasses(s.Intake), s.Goal)
	case tracker.OutcomeNothingToUndo:
		return "Nothing to undo."
	case tracker.OutcomeGoalChanged:
		return fmt.Sprintf("Daily goal set to %d glasses.", s.Goal)
	case tracker.OutcomeInvalidGoal:
		return "Goal must be one of 6, 8, 10 or 12."
	}
	return r.Outcome.String()
}

// History prints the log as a table followed by its summary.
func (pp *PrettyPrint) History(entries []tracker.HistoryEntry, goal int) {
	pp.Title("History")
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), " no days recorded yet\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, e := range entries {
		mark := ""
		if e.Glasses >= float64(goal) {
			mark = "✓"
		}
		tbl.AddRow(timeutil.FormatDisplay(e.Date), Glasses(e.Glasses), fmt.Sprintf("%d ml", int(e.Glasses*tracker.MillilitersPerGlass)), mark)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()

	sum := tracker.Summarize(entries, goal)
	f := color.New(color.Faint)
	_, _ = f.Fprintf(pp.out(), "average %s · best %s · goal met %d of %d days\n\n",
		Glasses(sum.Average), Glasses(sum.Best), sum.GoalDays, sum.Days)
}

// Glasses formats a glass count, dropping a trailing .0.
func Glasses(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.1f", v)
}
