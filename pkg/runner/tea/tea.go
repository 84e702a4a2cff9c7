// Package teaui is the interactive session: a Bubble Tea program over one
// open tracker.
package teaui

import (
	"context"
	"errors"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/mattn/go-isatty"

	"tableflip.dev/sip/pkg/store"
	"tableflip.dev/sip/pkg/tracker"
)

// UI runs the session until the user quits.
type UI struct {
	Persistence *tracker.Persistence
	// Watcher, when set, reloads the session on changes from other processes.
	Watcher store.Watcher
	// IsTerminal reports whether fd is a terminal. Defaults to go-isatty.
	IsTerminal func(fd uintptr) bool
}

// ErrNoTerminal is returned when the session is started without a terminal.
var ErrNoTerminal = errors.New("sip ui needs a terminal, use sip status or sip add instead")

func (u *UI) terminal() bool {
	isTerm := u.IsTerminal
	if isTerm == nil {
		isTerm = func(fd uintptr) bool { return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) }
	}
	return isTerm(os.Stdin.Fd()) && isTerm(os.Stdout.Fd())
}

func (u *UI) Do(ctx context.Context) error {
	if u.Persistence == nil {
		return errors.New("can not start ui, no persistence")
	}
	if !u.terminal() {
		return ErrNoTerminal
	}

	t, err := tracker.Open(ctx, u.Persistence)
	if err != nil {
		return err
	}
	defer func() { _ = t.Close(ctx) }()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var opts []Option
	if u.Watcher != nil {
		events, err := u.Watcher.Watch(ctx)
		if err != nil {
			slog.Warn("ui: store watch unavailable", "error", err)
		} else {
			opts = append(opts, WithEvents(events))
		}
	}

	p := tea.NewProgram(New(ctx, t, opts...), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = p.Run()
	return err
}
