package teaui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/help"
	"github.com/charmbracelet/bubbles/v2/key"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/sip/pkg/printers"
	"tableflip.dev/sip/pkg/runner/tea/internal/calendar"
	"tableflip.dev/sip/pkg/runner/tea/internal/panel"
	"tableflip.dev/sip/pkg/runner/tea/internal/theme"
	"tableflip.dev/sip/pkg/store"
	"tableflip.dev/sip/pkg/timeutil"
	"tableflip.dev/sip/pkg/tracker"
)

// DefaultRefreshInterval is how often the session checks for a new day.
const DefaultRefreshInterval = time.Minute

const (
	barWidth     = 32
	framePadding = 2
)

type statusKind int

const (
	statusInfo statusKind = iota
	statusWarn
	statusCelebrate
)

// messages
type tickMsg time.Time
type storeMsg store.Event
type errMsg struct{ err error }

// Model contains UI state
type Model struct {
	ctx     context.Context
	tracker *tracker.Tracker

	events  <-chan store.Event
	refresh time.Duration

	keys KeyMap
	help help.Model

	snap    tracker.Snapshot
	history []tracker.HistoryEntry

	status     string
	statusKind statusKind
	systemDark bool

	termWidth int
}

// Option configures New.
type Option func(*Model)

// WithEvents feeds store changes made by other processes into the session.
func WithEvents(events <-chan store.Event) Option {
	return func(m *Model) { m.events = events }
}

// WithRefreshInterval overrides DefaultRefreshInterval.
func WithRefreshInterval(d time.Duration) Option {
	return func(m *Model) { m.refresh = d }
}

// New creates a UI model over an open tracker.
func New(ctx context.Context, t *tracker.Tracker, opts ...Option) Model {
	m := Model{
		ctx:        ctx,
		tracker:    t,
		refresh:    DefaultRefreshInterval,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		systemDark: true,
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.snap = t.Snapshot()
	m.history = t.History(ctx)
	return m
}

// Init asks the terminal for its background and starts the day check.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.RequestBackgroundColor,
		m.tick(),
		waitForEvent(m.events),
	)
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.refresh, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func waitForEvent(events <-chan store.Event) tea.Cmd {
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return nil
		}
		return storeMsg(ev)
	}
}

// Update handles messages and keybindings
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
	case tea.BackgroundColorMsg:
		m.systemDark = msg.IsDark()
	case errMsg:
		m.setStatus(statusWarn, "ERR: "+msg.err.Error())
	case tickMsg:
		if m.tracker.Refresh(m.ctx) {
			m.history = m.tracker.History(m.ctx)
			m.setStatus(statusInfo, "New day, counter reset.")
		}
		m.snap = m.tracker.Snapshot()
		return m, m.tick()
	case storeMsg:
		m.applyStoreEvent(store.Event(msg))
		return m, waitForEvent(m.events)
	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Drink):
		m.apply(m.tracker.Add(1))
	case key.Matches(msg, m.keys.Sip):
		m.apply(m.tracker.Add(0.5))
	case key.Matches(msg, m.keys.Remove):
		m.apply(m.tracker.Remove(1))
	case key.Matches(msg, m.keys.Undo):
		m.apply(m.tracker.Undo())
	case key.Matches(msg, m.keys.Goal):
		res, err := m.tracker.SetGoal(tracker.NextGoal(m.snap.Goal))
		if err != nil {
			return m, func() tea.Msg { return errMsg{err} }
		}
		m.apply(res)
	}
	return m, nil
}

func (m *Model) apply(res tracker.Result) {
	m.snap = res.Snapshot
	kind := statusInfo
	switch {
	case res.Outcome == tracker.OutcomeGoalCompleted:
		kind = statusCelebrate
	case res.Outcome.Rejected():
		kind = statusWarn
	}
	m.setStatus(kind, printers.OutcomeMessage(res))
}

func (m *Model) applyStoreEvent(ev store.Event) {
	slog.Debug("ui: store changed", "key", ev.Key)
	if m.tracker.Reload(m.ctx) {
		m.history = m.tracker.History(m.ctx)
		m.snap = m.tracker.Snapshot()
		m.setStatus(statusInfo, "Updated from another session.")
	}
}

func (m *Model) setStatus(kind statusKind, s string) {
	m.statusKind = kind
	m.status = s
}

// View renders today's progress, the week strip and help.
func (m Model) View() string {
	th := theme.For(m.systemDark)
	s := m.snap

	var b strings.Builder
	b.WriteString(th.Title.Render("sip"))
	b.WriteString("  ")
	b.WriteString(th.Date.Render(timeutil.FormatDisplay(s.Date)))
	b.WriteString("\n\n")

	fill := th.Fill
	if s.GoalMet() {
		fill = th.FillDone
	}
	filled := int(s.Percent() / 100 * barWidth)
	b.WriteString(fill.Render(strings.Repeat("█", filled)))
	b.WriteString(th.Track.Render(strings.Repeat("░", barWidth-filled)))
	b.WriteString(fmt.Sprintf(" %3.0f%%\n", s.Percent()))

	b.WriteString(th.Count.Render(fmt.Sprintf("%s of %d glasses", printers.Glasses(s.Intake), s.Goal)))
	b.WriteString(th.Date.Render(fmt.Sprintf("  %d ml", s.Milliliters())))
	b.WriteString("\n")
	if s.GoalMet() {
		b.WriteString(th.Celebrate.Render("Daily goal reached!"))
	} else {
		b.WriteString(th.Hint.Render(printers.Glasses(s.Remaining()) + " to go"))
	}
	b.WriteString("\n\n")

	week, _ := m.weekPanel(th).View()
	b.WriteString(week)
	b.WriteString("\n")

	if m.status != "" {
		style := th.Status
		switch m.statusKind {
		case statusWarn:
			style = th.Warn
		case statusCelebrate:
			style = th.Celebrate
		}
		b.WriteString(style.Render(m.wrap(m.status)))
		b.WriteString("\n")
	}
	undo := "undo empty"
	if s.CanUndo {
		undo = "undo ready"
	}
	b.WriteString(th.Status.Render(fmt.Sprintf("[%s] goal %d", undo, s.Goal)))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	frame := lipgloss.NewStyle().Padding(1, framePadding)
	if m.termWidth > 0 {
		frame = frame.MaxWidth(m.termWidth)
	}
	return frame.Render(b.String())
}

// wrap breaks s on word boundaries to fit inside the frame padding.
func (m Model) wrap(s string) string {
	if m.termWidth <= framePadding*2 {
		return s
	}
	return wordwrap.String(s, m.termWidth-framePadding*2)
}

func (m Model) weekPanel(th theme.Theme) panel.Model {
	p := panel.New(th.Track, th.Title)
	lines := []string{m.week(th)}
	if len(m.history) > 0 {
		sum := tracker.Summarize(m.history, m.snap.Goal)
		lines = append(lines, th.Date.Render(fmt.Sprintf("average %s · goal met %d of %d days",
			printers.Glasses(sum.Average), sum.GoalDays, sum.Days)))
	}
	p.SetContent("Last 7 days", lines...)
	return p
}

func (m Model) week(th theme.Theme) string {
	end, err := timeutil.ParseDay(m.snap.Date)
	if err != nil {
		return ""
	}
	byDay := make(map[string]float64, len(m.history))
	for _, e := range m.history {
		byDay[e.Date] = e.Glasses
	}

	days := make([]calendar.Day, 0, tracker.HistoryLimit+1)
	for _, d := range printers.WeekBefore(end) {
		v, ok := byDay[d.Format(timeutil.LayoutDay)]
		days = append(days, calendar.Day{
			Weekday:  d.Weekday().String()[0:2],
			Glasses:  v,
			Recorded: ok,
		})
	}
	days = append(days, calendar.Day{
		Weekday:  end.Weekday().String()[0:2],
		Glasses:  m.snap.Intake,
		Recorded: true,
		IsToday:  true,
	})

	return calendar.Render(days, calendar.Options{
		Goal:       m.snap.Goal,
		LabelStyle: th.Week.Label,
		EmptyStyle: th.Track,
		ShortStyle: th.Week.Short,
		MetStyle:   th.Week.Met,
		TodayStyle: th.Week.Today,
	})
}
