// Package mcp provides the Model Context Protocol server integration for sip.
package mcp

import (
	"context"
	"errors"

	"tableflip.dev/sip/pkg/printers"
	"tableflip.dev/sip/pkg/timeutil"
	"tableflip.dev/sip/pkg/tracker"
)

// Service coordinates the tracker operations shared by the MCP server. One
// Service holds one long-lived session.
type Service struct {
	Tracker *tracker.Tracker
}

// StatusDTO is a transport-friendly projection of a snapshot.
type StatusDTO struct {
	Date        string  `json:"date"`
	Display     string  `json:"display"`
	Intake      float64 `json:"intake"`
	Goal        int     `json:"goal"`
	Percent     float64 `json:"percent"`
	Remaining   float64 `json:"remaining"`
	Milliliters int     `json:"milliliters"`
	GoalMet     bool    `json:"goalMet"`
	CanUndo     bool    `json:"canUndo"`
}

// ActionDTO reports the outcome of a counter action.
type ActionDTO struct {
	Outcome  string    `json:"outcome"`
	Message  string    `json:"message"`
	Rejected bool      `json:"rejected"`
	Status   StatusDTO `json:"status"`
}

// HistoryDTO lists archived days with their summary.
type HistoryDTO struct {
	Entries []tracker.HistoryEntry `json:"entries"`
	Summary tracker.Summary        `json:"summary"`
}

// NewService builds a service over an open tracker.
func NewService(t *tracker.Tracker) *Service {
	return &Service{Tracker: t}
}

// NewStatusDTO projects a snapshot.
func NewStatusDTO(s tracker.Snapshot) StatusDTO {
	return StatusDTO{
		Date:        s.Date,
		Display:     timeutil.FormatDisplay(s.Date),
		Intake:      s.Intake,
		Goal:        s.Goal,
		Percent:     s.Percent(),
		Remaining:   s.Remaining(),
		Milliliters: s.Milliliters(),
		GoalMet:     s.GoalMet(),
		CanUndo:     s.CanUndo,
	}
}

func newActionDTO(res tracker.Result) ActionDTO {
	return ActionDTO{
		Outcome:  res.Outcome.String(),
		Message:  printers.OutcomeMessage(res),
		Rejected: res.Outcome.Rejected(),
		Status:   NewStatusDTO(res.Snapshot),
	}
}

// sync brings the session up to date before serving a request: a new day
// resets the counter and writes by other processes are picked up.
func (s *Service) sync(ctx context.Context) error {
	if s.Tracker == nil {
		return errors.New("tracker is not configured")
	}
	s.Tracker.Refresh(ctx)
	s.Tracker.Reload(ctx)
	return nil
}

// Status returns today's counter.
func (s *Service) Status(ctx context.Context) (StatusDTO, error) {
	if err := s.sync(ctx); err != nil {
		return StatusDTO{}, err
	}
	return NewStatusDTO(s.Tracker.Snapshot()), nil
}

// Add drinks amount glasses.
func (s *Service) Add(ctx context.Context, amount float64) (ActionDTO, error) {
	if err := s.sync(ctx); err != nil {
		return ActionDTO{}, err
	}
	return s.settle(ctx, s.Tracker.Add(amount))
}

// Remove takes back amount glasses.
func (s *Service) Remove(ctx context.Context, amount float64) (ActionDTO, error) {
	if err := s.sync(ctx); err != nil {
		return ActionDTO{}, err
	}
	return s.settle(ctx, s.Tracker.Remove(amount))
}

// Undo restores the value before the last add or remove of this session.
func (s *Service) Undo(ctx context.Context) (ActionDTO, error) {
	if err := s.sync(ctx); err != nil {
		return ActionDTO{}, err
	}
	return s.settle(ctx, s.Tracker.Undo())
}

// SetGoal changes the daily goal.
func (s *Service) SetGoal(ctx context.Context, goal int) (ActionDTO, error) {
	if err := s.sync(ctx); err != nil {
		return ActionDTO{}, err
	}
	res, err := s.Tracker.SetGoal(goal)
	if err != nil {
		return ActionDTO{}, err
	}
	return s.settle(ctx, res)
}

// settle waits for the write so a following read by another client sees it.
func (s *Service) settle(ctx context.Context, res tracker.Result) (ActionDTO, error) {
	if err := res.Saved.Wait(ctx); err != nil {
		return ActionDTO{}, err
	}
	return newActionDTO(res), nil
}

// History returns the archived days, most recent first.
func (s *Service) History(ctx context.Context) (HistoryDTO, error) {
	if err := s.sync(ctx); err != nil {
		return HistoryDTO{}, err
	}
	entries := s.Tracker.History(ctx)
	return HistoryDTO{
		Entries: entries,
		Summary: tracker.Summarize(entries, s.Tracker.Snapshot().Goal),
	}, nil
}
