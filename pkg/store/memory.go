package store

import (
	"context"
	"errors"
	"sort"
	"sync"
)

// ErrInjected is returned by Memory for keys marked with FailReads or
// FailWrites.
var ErrInjected = errors.New("store: injected failure")

// Memory is an in-process KV for tests. It can be told to fail reads or
// writes for chosen keys.
type Memory struct {
	mu         sync.Mutex
	values     map[string]string
	failReads  map[string]bool
	failWrites map[string]bool
	writes     int
}

var _ KV = (*Memory)(nil)

// NewMemory returns a Memory seeded with the given values.
func NewMemory(seed map[string]string) *Memory {
	m := &Memory{
		values:     make(map[string]string, len(seed)),
		failReads:  make(map[string]bool),
		failWrites: make(map[string]bool),
	}
	for k, v := range seed {
		m.values[k] = v
	}
	return m
}

func (m *Memory) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failReads[key] {
		return "", false, ErrInjected
	}
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *Memory) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWrites[key] {
		return ErrInjected
	}
	m.values[key] = value
	m.writes++
	return nil
}

func (m *Memory) Remove(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWrites[key] {
		return ErrInjected
	}
	delete(m.values, key)
	return nil
}

func (m *Memory) Keys(_ context.Context) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := make([]string, 0, len(m.values))
	for k := range m.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Value returns the raw stored value, bypassing injected failures.
func (m *Memory) Value(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok
}

// Writes counts successful Set calls.
func (m *Memory) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}

// FailReads makes Get fail for the given keys until cleared with
// FailReads(false, ...).
func (m *Memory) FailReads(fail bool, keys ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		m.failReads[k] = fail
	}
}

// FailWrites makes Set and Remove fail for the given keys.
func (m *Memory) FailWrites(fail bool, keys ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		m.failWrites[k] = fail
	}
}
