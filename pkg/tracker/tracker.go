package tracker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sync"
)

// ErrInvalidGoal is returned by SetGoal for goals outside GoalOptions.
var ErrInvalidGoal = errors.New("tracker: goal must be one of 6, 8, 10 or 12")

// Snapshot is a point-in-time view of the counter.
type Snapshot struct {
	Date    string  `json:"date"`
	Intake  float64 `json:"intake"`
	Goal    int     `json:"goal"`
	CanUndo bool    `json:"canUndo"`
}

// Percent of the goal reached, 0 to 100.
func (s Snapshot) Percent() float64 {
	if s.Goal <= 0 {
		return 0
	}
	return math.Min(100, s.Intake/float64(s.Goal)*100)
}

// Remaining glasses until the goal.
func (s Snapshot) Remaining() float64 {
	return math.Max(0, float64(s.Goal)-s.Intake)
}

// Milliliters is the intake converted with MillilitersPerGlass.
func (s Snapshot) Milliliters() int {
	return int(math.Round(s.Intake * MillilitersPerGlass))
}

// GoalMet reports whether intake is at the goal.
func (s Snapshot) GoalMet() bool {
	return s.Intake >= float64(s.Goal)
}

// Result describes one counter action. Saved is closed once the resulting
// write reached the store; rejected actions return an already closed Saved.
type Result struct {
	Outcome  Outcome
	Snapshot Snapshot
	Saved    Ack
}

// Tracker is the in-memory counter for one session. The in-memory intake is
// the source of truth; the store is mirrored best effort through a Writer.
// A Tracker is safe for concurrent use.
type Tracker struct {
	p        *Persistence
	w        *Writer
	notifier Notifier
	log      *slog.Logger

	mu     sync.Mutex
	day    string
	intake float64
	goal   int
	undo   *UndoStack
}

// Option configures Open.
type Option func(*Tracker)

// WithNotifier sets the collaborator told about completed goals and
// rejected actions.
func WithNotifier(n Notifier) Option {
	return func(t *Tracker) { t.notifier = n }
}

// WithLogger sets the logger used by the tracker.
func WithLogger(log *slog.Logger) Option {
	return func(t *Tracker) { t.log = log }
}

// Open activates a session: it runs the rollover check against the stored
// intake, then seeds the counter from the stored or reset state.
func Open(ctx context.Context, p *Persistence, opts ...Option) (*Tracker, error) {
	if p == nil {
		return nil, errors.New("tracker: no persistence configured")
	}
	t := &Tracker{
		p:    p,
		log:  p.log,
		undo: NewUndoStack(UndoDepth),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.w = NewWriter(context.WithoutCancel(ctx))
	t.load(ctx)
	return t, nil
}

func (t *Tracker) load(ctx context.Context) bool {
	intake := t.p.LoadIntake(ctx)
	goal := t.p.LoadGoal(ctx)
	reset := t.p.CheckAndResetIfNewDay(ctx, intake)
	if reset {
		intake = 0
	}
	t.day = t.p.Today()
	t.goal = goal
	t.intake = clamp(intake, goal)
	t.undo.Clear()
	return reset
}

// Snapshot returns the current state.
func (t *Tracker) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.snapshot()
}

func (t *Tracker) snapshot() Snapshot {
	return Snapshot{
		Date:    t.day,
		Intake:  t.intake,
		Goal:    t.goal,
		CanUndo: t.undo.Len() > 0,
	}
}

// Add drinks amount glasses. It is rejected once the goal is met.
func (t *Tracker) Add(amount float64) Result {
	t.mu.Lock()
	if !validAmount(amount) {
		return t.reject(OutcomeInvalidAmount)
	}
	prev := t.intake
	goal := float64(t.goal)
	if prev >= goal {
		return t.reject(OutcomeGoalReached)
	}

	t.undo.Push(prev)
	t.intake = math.Min(prev+amount, goal)
	outcome := OutcomeAdded
	if t.intake == goal {
		outcome = OutcomeGoalCompleted
	}
	return t.commit(outcome)
}

// Remove takes back amount glasses, never going below zero.
func (t *Tracker) Remove(amount float64) Result {
	t.mu.Lock()
	if !validAmount(amount) {
		return t.reject(OutcomeInvalidAmount)
	}
	prev := t.intake
	if prev <= 0 {
		return t.reject(OutcomeEmpty)
	}

	t.undo.Push(prev)
	t.intake = math.Max(prev-amount, 0)
	return t.commit(OutcomeRemoved)
}

// Undo restores the value from before the most recent add or remove. Each
// call walks one step further back; there is no redo.
func (t *Tracker) Undo() Result {
	t.mu.Lock()
	prev, ok := t.undo.Pop()
	if !ok {
		return t.reject(OutcomeNothingToUndo)
	}
	// The goal may have been lowered since the value was pushed.
	t.intake = clamp(prev, t.goal)
	return t.commit(OutcomeUndone)
}

// SetGoal changes the daily goal. Intake above the new goal is clamped down
// to it.
func (t *Tracker) SetGoal(goal int) (Result, error) {
	if !ValidGoal(goal) {
		return Result{Outcome: OutcomeInvalidGoal, Snapshot: t.Snapshot(), Saved: doneAck}, fmt.Errorf("%w: got %d", ErrInvalidGoal, goal)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.goal = goal
	clamped := t.intake > float64(goal)
	if clamped {
		t.intake = float64(goal)
	}
	intake, day := t.intake, t.day
	saved := t.w.Submit(func(ctx context.Context) {
		t.p.SaveGoal(ctx, goal)
		if clamped {
			t.p.recordIntake(ctx, intake, day)
		}
	})
	return Result{Outcome: OutcomeGoalChanged, Snapshot: t.snapshot(), Saved: saved}, nil
}

// reject releases t.mu.
func (t *Tracker) reject(o Outcome) Result {
	snap := t.snapshot()
	t.mu.Unlock()
	t.notify(o, snap)
	return Result{Outcome: o, Snapshot: snap, Saved: doneAck}
}

// commit persists the current intake under the session day and releases
// t.mu. The day is the one the counter belongs to; after midnight Refresh
// archives it before a new day starts.
func (t *Tracker) commit(o Outcome) Result {
	intake, day := t.intake, t.day
	saved := t.w.Submit(func(ctx context.Context) {
		t.p.recordIntake(ctx, intake, day)
	})
	snap := t.snapshot()
	t.mu.Unlock()
	t.log.Debug("intake changed", "outcome", o.String(), "intake", snap.Intake, "goal", snap.Goal)
	t.notify(o, snap)
	return Result{Outcome: o, Snapshot: snap, Saved: saved}
}

func (t *Tracker) notify(o Outcome, snap Snapshot) {
	if t.notifier != nil && notable(o) {
		t.notifier.Notify(o, snap)
	}
}

// Refresh runs the rollover check for a long-lived session. Once the local
// date moved on, pending writes are flushed and the session is seeded again
// as by Open; the undo stack is dropped so yesterday's values cannot be
// restored into today. It reports whether a reset happened.
func (t *Tracker) Refresh(ctx context.Context) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.p.Today() == t.day {
		return false
	}
	if err := t.w.Flush(ctx); err != nil {
		return false
	}
	return t.load(ctx)
}

// Reload re-reads the store after a change made by another process. Pending
// writes of this session are flushed first; when the store then still
// matches memory nothing happens. Otherwise the session reloads like a fresh
// Open, dropping the undo stack.
func (t *Tracker) Reload(ctx context.Context) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.w.Flush(ctx); err != nil {
		return false
	}
	intake := t.p.LoadIntake(ctx)
	goal := t.p.LoadGoal(ctx)
	if clamp(intake, goal) == t.intake && goal == t.goal && t.p.LastRecordedDate(ctx) == t.day {
		return false
	}
	t.log.Debug("reloading from store", "intake", intake, "goal", goal)
	t.load(ctx)
	return true
}

// History returns the archived days, most recent first.
func (t *Tracker) History(ctx context.Context) []HistoryEntry {
	return t.p.LoadHistory(ctx)
}

// Flush waits until every write issued so far reached the store.
func (t *Tracker) Flush(ctx context.Context) error {
	return t.w.Flush(ctx)
}

// Close drains pending writes.
func (t *Tracker) Close(ctx context.Context) error {
	return t.w.Close(ctx)
}

func validAmount(amount float64) bool {
	return amount > 0 && !math.IsInf(amount, 0) && !math.IsNaN(amount)
}

func clamp(v float64, goal int) float64 {
	return math.Max(0, math.Min(v, float64(goal)))
}
