package tracker

// Outcome is the caller-visible result of a counter action. Rejections are
// outcomes, not errors.
type Outcome int

const (
	// OutcomeAdded means intake grew and the goal is not met yet.
	OutcomeAdded Outcome = iota
	// OutcomeGoalCompleted means this add moved intake onto the goal.
	OutcomeGoalCompleted
	// OutcomeGoalReached rejects an add made with the goal already met.
	OutcomeGoalReached
	// OutcomeRemoved means intake shrank.
	OutcomeRemoved
	// OutcomeEmpty rejects a remove made at zero intake.
	OutcomeEmpty
	// OutcomeInvalidAmount rejects a zero, negative or non-finite amount.
	OutcomeInvalidAmount
	// OutcomeUndone means the previous value was restored.
	OutcomeUndone
	// OutcomeNothingToUndo means the undo stack was empty.
	OutcomeNothingToUndo
	// OutcomeGoalChanged means a new daily goal was set.
	OutcomeGoalChanged
	// OutcomeInvalidGoal rejects a goal outside GoalOptions.
	OutcomeInvalidGoal
)

var outcomeNames = map[Outcome]string{
	OutcomeAdded:         "added",
	OutcomeGoalCompleted: "goal completed",
	OutcomeGoalReached:   "goal already reached",
	OutcomeRemoved:       "removed",
	OutcomeEmpty:         "nothing to remove",
	OutcomeInvalidAmount: "invalid amount",
	OutcomeUndone:        "undone",
	OutcomeNothingToUndo: "nothing to undo",
	OutcomeGoalChanged:   "goal changed",
	OutcomeInvalidGoal:   "invalid goal",
}

func (o Outcome) String() string {
	if s, ok := outcomeNames[o]; ok {
		return s
	}
	return "unknown"
}

// Rejected reports whether the action left the state untouched.
func (o Outcome) Rejected() bool {
	switch o {
	case OutcomeGoalReached, OutcomeEmpty, OutcomeInvalidAmount, OutcomeNothingToUndo, OutcomeInvalidGoal:
		return true
	}
	return false
}

// Notifier is told about outcomes worth surfacing to the user: a completed
// goal and rejected actions. Haptics and toasts live behind it.
type Notifier interface {
	Notify(o Outcome, s Snapshot)
}

// NotifierFunc adapts a func to Notifier.
type NotifierFunc func(o Outcome, s Snapshot)

// Notify implements Notifier.
func (f NotifierFunc) Notify(o Outcome, s Snapshot) { f(o, s) }

func notable(o Outcome) bool {
	return o == OutcomeGoalCompleted || o.Rejected()
}
