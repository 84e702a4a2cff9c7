package tracker

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"tableflip.dev/sip/pkg/store"
	"tableflip.dev/sip/pkg/timeutil"
)

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

func day(month time.Month, d int) time.Time {
	return time.Date(2026, month, d, 9, 30, 0, 0, time.Local)
}

type fixture struct {
	kv    *store.Memory
	clock *timeutil.FixedClock
	p     *Persistence
}

func newFixture(t *testing.T, now time.Time, seed map[string]string) *fixture {
	t.Helper()
	kv := store.NewMemory(seed)
	clock := timeutil.NewFixedClock(now)
	return &fixture{kv: kv, clock: clock, p: NewPersistence(kv, clock, quiet)}
}

func (f *fixture) open(t *testing.T, opts ...Option) *Tracker {
	t.Helper()
	tr, err := Open(context.Background(), f.p, opts...)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() {
		if err := tr.Close(context.Background()); err != nil {
			t.Errorf("close: %v", err)
		}
	})
	return tr
}

func (f *fixture) value(t *testing.T, key string) string {
	t.Helper()
	v, _ := f.kv.Value(key)
	return v
}

type recorder struct {
	outcomes []Outcome
}

func (r *recorder) Notify(o Outcome, _ Snapshot) {
	r.outcomes = append(r.outcomes, o)
}

func (r *recorder) count(o Outcome) int {
	n := 0
	for _, got := range r.outcomes {
		if got == o {
			n++
		}
	}
	return n
}
