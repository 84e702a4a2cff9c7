package store

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDiskvRoundTrip(t *testing.T) {
	ctx := context.Background()
	s, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load store: %v", err)
	}

	if _, ok, err := s.Get(ctx, "goal"); err != nil || ok {
		t.Fatalf("expected missing key, got ok=%v err=%v", ok, err)
	}

	if err := s.Set(ctx, "goal", "10"); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, ok, err := s.Get(ctx, "goal")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if got != "10" {
		t.Fatalf("expected 10, got %q", got)
	}

	if err := s.Set(ctx, "history", `[]`); err != nil {
		t.Fatalf("set: %v", err)
	}
	if diff := cmp.Diff([]string{"goal", "history"}, s.Keys(ctx)); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}

	if err := s.Remove(ctx, "goal"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := s.Remove(ctx, "goal"); err != nil {
		t.Fatalf("second remove should be a no-op: %v", err)
	}
	if _, ok, _ := s.Get(ctx, "goal"); ok {
		t.Fatalf("expected goal to be removed")
	}
}

func TestDiskvSeesWritesFromOtherStores(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	a, err := Load(testConfig{path: dir})
	if err != nil {
		t.Fatalf("load store a: %v", err)
	}
	b, err := Load(testConfig{path: dir})
	if err != nil {
		t.Fatalf("load store b: %v", err)
	}

	if err := a.Set(ctx, "intake", "2"); err != nil {
		t.Fatalf("set a: %v", err)
	}
	if got, _, _ := a.Get(ctx, "intake"); got != "2" {
		t.Fatalf("expected 2, got %q", got)
	}
	if err := b.Set(ctx, "intake", "6"); err != nil {
		t.Fatalf("set b: %v", err)
	}
	if got, _, _ := a.Get(ctx, "intake"); got != "6" {
		t.Fatalf("expected a to read 6 written by b, got %q", got)
	}

	if err := b.Remove(ctx, "intake"); err != nil {
		t.Fatalf("remove b: %v", err)
	}
	if _, ok, _ := a.Get(ctx, "intake"); ok {
		t.Fatalf("expected a to see the removal by b")
	}
}

func TestDiskvRejectsInvalidKeys(t *testing.T) {
	ctx := context.Background()
	s, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load store: %v", err)
	}
	for _, key := range []string{"", "a/b", `a\b`} {
		if err := s.Set(ctx, key, "x"); err == nil {
			t.Errorf("expected error for key %q", key)
		}
	}
}

func TestDiskvHonorsCancelledContext(t *testing.T) {
	s, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load store: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := s.Set(ctx, "intake", "1"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestMemoryInjectedFailures(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(map[string]string{"intake": "2"})
	m.FailReads(true, "intake")
	if _, _, err := m.Get(ctx, "intake"); !errors.Is(err, ErrInjected) {
		t.Fatalf("expected injected read failure, got %v", err)
	}
	m.FailReads(false, "intake")
	if v, ok, err := m.Get(ctx, "intake"); err != nil || !ok || v != "2" {
		t.Fatalf("expected 2, got %q ok=%v err=%v", v, ok, err)
	}

	m.FailWrites(true, "goal")
	if err := m.Set(ctx, "goal", "6"); !errors.Is(err, ErrInjected) {
		t.Fatalf("expected injected write failure, got %v", err)
	}
	if m.Writes() != 0 {
		t.Fatalf("failed write should not count, got %d", m.Writes())
	}
}
