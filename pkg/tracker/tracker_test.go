package tracker

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"tableflip.dev/sip/pkg/store"
	"tableflip.dev/sip/pkg/timeutil"
)

func flush(t *testing.T, tr *Tracker) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := tr.Flush(ctx); err != nil {
		t.Fatalf("flush: %v", err)
	}
}

func TestAddFiveGlassesThenRollover(t *testing.T) {
	f := newFixture(t, day(time.March, 3), nil)
	tr := f.open(t)

	for i := 0; i < 5; i++ {
		if res := tr.Add(1); res.Outcome != OutcomeAdded {
			t.Fatalf("add %d: unexpected outcome %v", i, res.Outcome)
		}
	}
	flush(t, tr)
	if got := tr.Snapshot().Intake; got != 5 {
		t.Fatalf("expected intake 5, got %v", got)
	}
	if got := tr.History(context.Background()); len(got) != 0 {
		t.Fatalf("history should be untouched, got %v", got)
	}
	if got := f.value(t, KeyIntake); got != "5" {
		t.Fatalf("expected stored intake 5, got %q", got)
	}

	f.clock.AddDays(1)
	next := f.open(t)
	if got := next.Snapshot().Intake; got != 0 {
		t.Fatalf("expected reset intake, got %v", got)
	}
	want := []HistoryEntry{{Date: "2026-03-03", Glasses: 5}}
	if diff := cmp.Diff(want, next.History(context.Background())); diff != "" {
		t.Fatalf("history mismatch (-want +got):\n%s", diff)
	}
}

func TestAddRejectedAtGoal(t *testing.T) {
	f := newFixture(t, day(time.March, 3), map[string]string{
		KeyIntake:   "8",
		KeyLastDate: "2026-03-03",
	})
	rec := &recorder{}
	tr := f.open(t, WithNotifier(rec))

	res := tr.Add(1)
	if res.Outcome != OutcomeGoalReached {
		t.Fatalf("expected goal reached, got %v", res.Outcome)
	}
	if res.Snapshot.Intake != 8 {
		t.Fatalf("intake changed to %v", res.Snapshot.Intake)
	}
	if res.Snapshot.CanUndo {
		t.Fatalf("rejected add must not push an undo entry")
	}
	if rec.count(OutcomeGoalReached) != 1 {
		t.Fatalf("expected goal reached to be signalled, got %v", rec.outcomes)
	}
	if tr.Undo().Outcome != OutcomeNothingToUndo {
		t.Fatalf("expected nothing to undo")
	}
}

func TestGoalCompletedFiresOnce(t *testing.T) {
	f := newFixture(t, day(time.March, 3), map[string]string{
		KeyIntake:   "7",
		KeyLastDate: "2026-03-03",
	})
	rec := &recorder{}
	tr := f.open(t, WithNotifier(rec))

	if res := tr.Add(1); res.Outcome != OutcomeGoalCompleted || res.Snapshot.Intake != 8 {
		t.Fatalf("expected goal completed at 8, got %v at %v", res.Outcome, res.Snapshot.Intake)
	}
	if res := tr.Add(1); res.Outcome != OutcomeGoalReached {
		t.Fatalf("expected rejection, got %v", res.Outcome)
	}
	if n := rec.count(OutcomeGoalCompleted); n != 1 {
		t.Fatalf("expected exactly one completion, got %d", n)
	}
}

func TestAddClampsToGoal(t *testing.T) {
	f := newFixture(t, day(time.March, 3), map[string]string{
		KeyIntake:   "7.5",
		KeyLastDate: "2026-03-03",
	})
	tr := f.open(t)

	res := tr.Add(2)
	if res.Outcome != OutcomeGoalCompleted {
		t.Fatalf("expected goal completed, got %v", res.Outcome)
	}
	if res.Snapshot.Intake != 8 {
		t.Fatalf("expected clamp to 8, got %v", res.Snapshot.Intake)
	}
}

func TestRemove(t *testing.T) {
	f := newFixture(t, day(time.March, 3), nil)
	rec := &recorder{}
	tr := f.open(t, WithNotifier(rec))

	if res := tr.Remove(1); res.Outcome != OutcomeEmpty || res.Snapshot.CanUndo {
		t.Fatalf("expected empty no-op, got %v (canUndo=%v)", res.Outcome, res.Snapshot.CanUndo)
	}
	if rec.count(OutcomeEmpty) != 1 {
		t.Fatalf("expected rejection to be signalled")
	}

	tr.Add(1)
	res := tr.Remove(2)
	if res.Outcome != OutcomeRemoved || res.Snapshot.Intake != 0 {
		t.Fatalf("expected clamp to 0, got %v at %v", res.Outcome, res.Snapshot.Intake)
	}
	if err := res.Saved.Wait(context.Background()); err != nil {
		t.Fatalf("wait: %v", err)
	}
	if got := f.value(t, KeyIntake); got != "0" {
		t.Fatalf("expected stored 0, got %q", got)
	}
}

func TestRejectsNonPositiveAmounts(t *testing.T) {
	f := newFixture(t, day(time.March, 3), nil)
	tr := f.open(t)
	tr.Add(2)

	for _, amount := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		if res := tr.Add(amount); res.Outcome != OutcomeInvalidAmount {
			t.Errorf("Add(%v): expected invalid amount, got %v", amount, res.Outcome)
		}
		if res := tr.Remove(amount); res.Outcome != OutcomeInvalidAmount {
			t.Errorf("Remove(%v): expected invalid amount, got %v", amount, res.Outcome)
		}
	}
	if got := tr.Snapshot().Intake; got != 2 {
		t.Fatalf("intake changed to %v", got)
	}
}

func TestUndoRoundTrip(t *testing.T) {
	f := newFixture(t, day(time.March, 3), nil)
	tr := f.open(t)

	tr.Add(1)
	tr.Add(0.5)
	tr.Remove(1)
	tr.Add(2)

	for i := 0; i < 4; i++ {
		if res := tr.Undo(); res.Outcome != OutcomeUndone {
			t.Fatalf("undo %d: unexpected outcome %v", i, res.Outcome)
		}
	}
	if got := tr.Snapshot().Intake; got != 0 {
		t.Fatalf("expected intake back at 0, got %v", got)
	}
	if res := tr.Undo(); res.Outcome != OutcomeNothingToUndo {
		t.Fatalf("expected nothing to undo, got %v", res.Outcome)
	}
	flush(t, tr)
	if got := f.value(t, KeyIntake); got != "0" {
		t.Fatalf("undo was not persisted, got %q", got)
	}
}

func TestUndoIsBoundedToFiveSteps(t *testing.T) {
	f := newFixture(t, day(time.March, 3), nil)
	tr := f.open(t)

	for i := 0; i < 7; i++ {
		tr.Add(1)
	}
	undone := 0
	for tr.Undo().Outcome == OutcomeUndone {
		undone++
	}
	if undone != UndoDepth {
		t.Fatalf("expected %d undos, got %d", UndoDepth, undone)
	}
	if got := tr.Snapshot().Intake; got != 2 {
		t.Fatalf("expected earliest states lost, intake 2, got %v", got)
	}
}

func TestUndoDoesNotSurviveReopen(t *testing.T) {
	f := newFixture(t, day(time.March, 3), nil)
	tr := f.open(t)
	tr.Add(1)
	flush(t, tr)

	again := f.open(t)
	if again.Snapshot().CanUndo {
		t.Fatalf("undo stack must not be persisted")
	}
	if got := again.Snapshot().Intake; got != 1 {
		t.Fatalf("expected intake 1, got %v", got)
	}
}

func TestSetGoal(t *testing.T) {
	f := newFixture(t, day(time.March, 3), nil)
	tr := f.open(t)

	if _, err := tr.SetGoal(7); !errors.Is(err, ErrInvalidGoal) {
		t.Fatalf("expected ErrInvalidGoal, got %v", err)
	}

	tr.Add(2)
	tr.Add(2)
	tr.Add(2)
	tr.Add(2)
	if got := tr.Snapshot().Intake; got != 8 {
		t.Fatalf("expected 8, got %v", got)
	}

	res, err := tr.SetGoal(6)
	if err != nil {
		t.Fatalf("set goal: %v", err)
	}
	if res.Snapshot.Intake != 6 || res.Snapshot.Goal != 6 {
		t.Fatalf("expected intake clamped to 6/6, got %+v", res.Snapshot)
	}

	// Undo restores 6 at most, never above the new goal.
	if res := tr.Undo(); res.Snapshot.Intake != 6 {
		t.Fatalf("undo must respect the new goal, got %v", res.Snapshot.Intake)
	}

	flush(t, tr)
	if got := f.value(t, KeyGoal); got != "6" {
		t.Fatalf("expected stored goal 6, got %q", got)
	}
	if got := f.value(t, KeyIntake); got != "6" {
		t.Fatalf("expected stored intake 6, got %q", got)
	}
}

func TestOpenClampsStoredIntakeAboveGoal(t *testing.T) {
	f := newFixture(t, day(time.March, 3), map[string]string{
		KeyIntake:   "11",
		KeyGoal:     "10",
		KeyLastDate: "2026-03-03",
	})
	tr := f.open(t)
	if got := tr.Snapshot().Intake; got != 10 {
		t.Fatalf("expected clamp to 10, got %v", got)
	}
}

func TestWriteFailuresAreNotSurfaced(t *testing.T) {
	f := newFixture(t, day(time.March, 3), nil)
	f.kv.FailWrites(true, KeyIntake)
	tr := f.open(t)

	res := tr.Add(1)
	if res.Outcome != OutcomeAdded || res.Snapshot.Intake != 1 {
		t.Fatalf("in-memory state should still advance, got %v at %v", res.Outcome, res.Snapshot.Intake)
	}
	if err := res.Saved.Wait(context.Background()); err != nil {
		t.Fatalf("wait: %v", err)
	}
	if _, ok := f.kv.Value(KeyIntake); ok {
		t.Fatalf("nothing should have been stored")
	}
}

func TestRefreshAcrossMidnight(t *testing.T) {
	f := newFixture(t, day(time.March, 3), nil)
	tr := f.open(t)
	tr.Add(3)

	if tr.Refresh(context.Background()) {
		t.Fatalf("no reset expected on the same day")
	}

	f.clock.AddDays(1)
	if !tr.Refresh(context.Background()) {
		t.Fatalf("expected reset after midnight")
	}
	snap := tr.Snapshot()
	if snap.Intake != 0 || snap.CanUndo || snap.Date != "2026-03-04" {
		t.Fatalf("unexpected snapshot after rollover: %+v", snap)
	}
	want := []HistoryEntry{{Date: "2026-03-03", Glasses: 3}}
	if diff := cmp.Diff(want, tr.History(context.Background())); diff != "" {
		t.Fatalf("history mismatch (-want +got):\n%s", diff)
	}
}

func TestReloadPicksUpExternalWrites(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, day(time.March, 3), nil)
	tr := f.open(t)
	tr.Add(1)

	if tr.Reload(ctx) {
		t.Fatalf("own writes must not trigger a reload")
	}
	if !tr.Snapshot().CanUndo {
		t.Fatalf("undo stack should survive a no-op reload")
	}

	other := NewPersistence(f.kv, f.clock, quiet)
	other.SaveIntake(ctx, 4)
	other.SaveGoal(ctx, 10)

	if !tr.Reload(ctx) {
		t.Fatalf("expected reload after external write")
	}
	snap := tr.Snapshot()
	if snap.Intake != 4 || snap.Goal != 10 || snap.CanUndo {
		t.Fatalf("unexpected snapshot after reload: %+v", snap)
	}
}

type dirConfig string

func (d dirConfig) BasePath() string { return string(d) }
func (d dirConfig) LogLevel() string { return "" }
func (d dirConfig) LogFile() string  { return "" }

func TestReloadPicksUpWritesFromOtherProcessesOnDisk(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	clock := timeutil.NewFixedClock(day(time.March, 3))

	open := func() *store.Diskv {
		kv, err := store.Load(dirConfig(dir))
		if err != nil {
			t.Fatalf("load store: %v", err)
		}
		return kv
	}

	session := NewPersistence(open(), clock, quiet)
	tr, err := Open(ctx, session)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = tr.Close(ctx) })
	if err := tr.Add(2).Saved.Wait(ctx); err != nil {
		t.Fatalf("wait: %v", err)
	}

	other := NewPersistence(open(), clock, quiet)
	other.SaveIntake(ctx, 6)

	if !tr.Reload(ctx) {
		t.Fatalf("expected reload after another process wrote")
	}
	if got := tr.Snapshot().Intake; got != 6 {
		t.Fatalf("expected intake 6, got %v", got)
	}
	if err := tr.Add(1).Saved.Wait(ctx); err != nil {
		t.Fatalf("wait: %v", err)
	}
	if got := other.LoadIntake(ctx); got != 7 {
		t.Fatalf("expected stored intake 7, got %v", got)
	}
}

func TestIntakeStaysWithinBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	amounts := []float64{0.5, 1, 2}

	for _, goal := range GoalOptions {
		f := newFixture(t, day(time.March, 3), nil)
		tr := f.open(t)
		if _, err := tr.SetGoal(goal); err != nil {
			t.Fatalf("set goal: %v", err)
		}
		for i := 0; i < 300; i++ {
			amount := amounts[rng.Intn(len(amounts))]
			var res Result
			switch rng.Intn(3) {
			case 0, 1:
				res = tr.Add(amount)
			default:
				res = tr.Remove(amount)
			}
			if rng.Intn(5) == 0 {
				res = tr.Undo()
			}
			if v := res.Snapshot.Intake; v < 0 || v > float64(goal) {
				t.Fatalf("goal %d step %d: intake %v out of bounds", goal, i, v)
			}
		}
	}
}

func TestSnapshotDerivedValues(t *testing.T) {
	s := Snapshot{Intake: 2.5, Goal: 10}
	if s.Percent() != 25 {
		t.Errorf("percent: got %v", s.Percent())
	}
	if s.Remaining() != 7.5 {
		t.Errorf("remaining: got %v", s.Remaining())
	}
	if s.Milliliters() != 625 {
		t.Errorf("ml: got %v", s.Milliliters())
	}
	if s.GoalMet() {
		t.Errorf("goal should not be met")
	}
}

func TestSummarize(t *testing.T) {
	entries := []HistoryEntry{
		{Date: "2026-03-03", Glasses: 8},
		{Date: "2026-03-02", Glasses: 4},
		{Date: "2026-03-01", Glasses: 9},
	}
	got := Summarize(entries, 8)
	want := Summary{Days: 3, Total: 21, Average: 7, Best: 9, GoalDays: 2}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("summary mismatch (-want +got):\n%s", diff)
	}
	if empty := Summarize(nil, 8); empty != (Summary{}) {
		t.Fatalf("expected zero summary, got %+v", empty)
	}
}
