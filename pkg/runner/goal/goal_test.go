package goal

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/sip/pkg/store"
	"tableflip.dev/sip/pkg/timeutil"
	"tableflip.dev/sip/pkg/tracker"
)

func TestGoal(t *testing.T) {
	color.NoColor = true
	kv := store.NewMemory(map[string]string{
		tracker.KeyIntake:   "11",
		tracker.KeyGoal:     "12",
		tracker.KeyLastDate: "2026-01-19",
	})
	clock := timeutil.NewFixedClock(time.Date(2026, time.January, 19, 8, 0, 0, 0, time.Local))
	p := tracker.NewPersistence(kv, clock, slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx := context.Background()

	var buf bytes.Buffer
	if err := (&Goal{Persistence: p, Out: &buf}).Do(ctx); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if !strings.Contains(buf.String(), "Daily goal: 12 glasses") {
		t.Errorf("unexpected output %q", buf.String())
	}

	buf.Reset()
	if err := (&Goal{Set: 6, Persistence: p, Out: &buf}).Do(ctx); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if v, _ := kv.Value(tracker.KeyGoal); v != "6" {
		t.Errorf("stored goal = %q, want 6", v)
	}
	if v, _ := kv.Value(tracker.KeyIntake); v != "6" {
		t.Errorf("stored intake = %q, want clamped 6", v)
	}

	err := (&Goal{Set: 7, Persistence: p, Out: &buf}).Do(ctx)
	if !errors.Is(err, tracker.ErrInvalidGoal) {
		t.Fatalf("expected ErrInvalidGoal, got %v", err)
	}
}
