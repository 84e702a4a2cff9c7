package tracker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"sync"

	"tableflip.dev/sip/pkg/store"
	"tableflip.dev/sip/pkg/timeutil"
)

// Persistence is the typed view of the tracker records. Loads never fail:
// they log and fall back to a default. Saves are best effort: they log and
// swallow errors.
type Persistence struct {
	kv    store.KV
	clock timeutil.Clock
	log   *slog.Logger

	// historyMu serializes the read-modify-write in appendHistory.
	historyMu sync.Mutex
}

// NewPersistence wraps kv. A nil clock means the system clock, a nil log
// means slog.Default().
func NewPersistence(kv store.KV, clock timeutil.Clock, log *slog.Logger) *Persistence {
	if clock == nil {
		clock = timeutil.System
	}
	if log == nil {
		log = slog.Default()
	}
	return &Persistence{kv: kv, clock: clock, log: log}
}

// Today is the current local date as YYYY-MM-DD.
func (p *Persistence) Today() string {
	return timeutil.Today(p.clock)
}

// SaveIntake stores v and stamps the last recorded date with today.
func (p *Persistence) SaveIntake(ctx context.Context, v float64) {
	if err := p.saveIntake(ctx, v); err != nil {
		p.log.Error("saving water intake", "value", v, "error", err)
	}
}

func (p *Persistence) saveIntake(ctx context.Context, v float64) error {
	return p.saveIntakeOn(ctx, v, p.Today())
}

// recordIntake is SaveIntake with the date fixed by the caller. Queued
// writes use it so they stamp the day the action happened on.
func (p *Persistence) recordIntake(ctx context.Context, v float64, day string) {
	if err := p.saveIntakeOn(ctx, v, day); err != nil {
		p.log.Error("saving water intake", "value", v, "day", day, "error", err)
	}
}

// saveIntakeOn writes the intake first; the date is only stamped once the
// intake landed, so the date never moves without a saved intake.
func (p *Persistence) saveIntakeOn(ctx context.Context, v float64, day string) error {
	if err := p.kv.Set(ctx, KeyIntake, formatGlasses(v)); err != nil {
		return err
	}
	return p.kv.Set(ctx, KeyLastDate, day)
}

// LoadIntake returns the stored intake, or 0.
func (p *Persistence) LoadIntake(ctx context.Context) float64 {
	raw, ok, err := p.kv.Get(ctx, KeyIntake)
	if err != nil {
		p.log.Warn("loading water intake", "error", err)
		return 0
	}
	if !ok {
		return 0
	}
	v, err := parseGlasses(raw)
	if err != nil {
		p.log.Warn("loading water intake", "raw", raw, "error", err)
		return 0
	}
	return v
}

// SaveGoal stores the daily goal.
func (p *Persistence) SaveGoal(ctx context.Context, goal int) {
	if err := p.kv.Set(ctx, KeyGoal, strconv.Itoa(goal)); err != nil {
		p.log.Error("saving daily goal", "value", goal, "error", err)
	}
}

// LoadGoal returns the stored goal, or DefaultGoal.
func (p *Persistence) LoadGoal(ctx context.Context) int {
	raw, ok, err := p.kv.Get(ctx, KeyGoal)
	if err != nil {
		p.log.Warn("loading daily goal", "error", err)
		return DefaultGoal
	}
	if !ok {
		return DefaultGoal
	}
	goal, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || goal <= 0 {
		p.log.Warn("loading daily goal", "raw", raw, "error", err)
		return DefaultGoal
	}
	return goal
}

// LastRecordedDate returns the date of the last intake save, or today.
func (p *Persistence) LastRecordedDate(ctx context.Context) string {
	day, err := p.lastRecordedDate(ctx)
	if err != nil {
		p.log.Warn("loading last date", "error", err)
		return p.Today()
	}
	return day
}

func (p *Persistence) lastRecordedDate(ctx context.Context) (string, error) {
	raw, ok, err := p.kv.Get(ctx, KeyLastDate)
	if err != nil {
		return "", err
	}
	raw = strings.TrimSpace(raw)
	if !ok || raw == "" {
		return p.Today(), nil
	}
	return raw, nil
}

// SaveHistory stores entries, keeping at most HistoryLimit of them.
func (p *Persistence) SaveHistory(ctx context.Context, entries []HistoryEntry) {
	if err := p.saveHistory(ctx, entries); err != nil {
		p.log.Error("saving history", "error", err)
	}
}

func (p *Persistence) saveHistory(ctx context.Context, entries []HistoryEntry) error {
	if entries == nil {
		entries = []HistoryEntry{}
	}
	if len(entries) > HistoryLimit {
		entries = entries[:HistoryLimit]
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return p.kv.Set(ctx, KeyHistory, string(data))
}

// LoadHistory returns the history log, most recent first, or an empty log.
func (p *Persistence) LoadHistory(ctx context.Context) []HistoryEntry {
	entries, err := p.loadHistory(ctx)
	if err != nil {
		p.log.Warn("loading history", "error", err)
		return []HistoryEntry{}
	}
	return entries
}

func (p *Persistence) loadHistory(ctx context.Context) ([]HistoryEntry, error) {
	raw, ok, err := p.kv.Get(ctx, KeyHistory)
	if err != nil {
		return nil, err
	}
	if !ok || strings.TrimSpace(raw) == "" {
		return []HistoryEntry{}, nil
	}
	var entries []HistoryEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, fmt.Errorf("decode history: %w", err)
	}
	if entries == nil {
		entries = []HistoryEntry{}
	}
	return entries, nil
}

// AppendHistory prepends {date, glasses} to the log and trims it to
// HistoryLimit entries.
func (p *Persistence) AppendHistory(ctx context.Context, date string, glasses float64) {
	if err := p.appendHistory(ctx, date, glasses); err != nil {
		p.log.Error("saving to history", "date", date, "glasses", glasses, "error", err)
	}
}

// appendHistory refuses to write when the current log cannot be read, so an
// unreadable log is never replaced by a single entry.
func (p *Persistence) appendHistory(ctx context.Context, date string, glasses float64) error {
	p.historyMu.Lock()
	defer p.historyMu.Unlock()

	current, err := p.loadHistory(ctx)
	if err != nil {
		return err
	}
	next := make([]HistoryEntry, 0, min(len(current)+1, HistoryLimit))
	next = append(next, HistoryEntry{Date: date, Glasses: glasses})
	next = append(next, current...)
	return p.saveHistory(ctx, next)
}

func formatGlasses(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func parseGlasses(raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, fmt.Errorf("out of range: %v", v)
	}
	return v, nil
}
