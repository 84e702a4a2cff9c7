// Package tracker holds the daily water-intake model: typed persistence over
// a key-value store, the day rollover check, and the session counter with its
// undo stack.
package tracker

import "slices"

// Keys of the persisted records.
const (
	KeyIntake   = "intake"
	KeyGoal     = "goal"
	KeyLastDate = "last-date"
	KeyHistory  = "history"
)

// StoredKeys lists every key the tracker writes.
var StoredKeys = []string{KeyIntake, KeyGoal, KeyLastDate, KeyHistory}

const (
	// DefaultGoal is used when no goal was stored.
	DefaultGoal = 8
	// HistoryLimit caps the history log.
	HistoryLimit = 7
	// UndoDepth caps the session undo stack.
	UndoDepth = 5
	// MillilitersPerGlass converts glasses for display.
	MillilitersPerGlass = 250
)

// GoalOptions are the daily goals a user can pick.
var GoalOptions = []int{6, 8, 10, 12}

// ValidGoal reports whether g is one of GoalOptions.
func ValidGoal(g int) bool {
	return slices.Contains(GoalOptions, g)
}

// NextGoal returns the option after g, wrapping around. Unknown goals start
// over at the first option.
func NextGoal(g int) int {
	i := slices.Index(GoalOptions, g)
	return GoalOptions[(i+1)%len(GoalOptions)]
}

// HistoryEntry is one archived day.
type HistoryEntry struct {
	Date    string  `json:"date"`
	Glasses float64 `json:"glasses"`
}
