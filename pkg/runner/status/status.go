// Package status prints today's progress.
package status

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/sip/pkg/printers"
	"tableflip.dev/sip/pkg/tracker"
)

// Status shows today's counter after running the rollover check.
type Status struct {
	JSON        bool
	Persistence *tracker.Persistence
	Out         io.Writer
}

// Report is the JSON form of the status.
type Report struct {
	tracker.Snapshot
	Percent     float64 `json:"percent"`
	Remaining   float64 `json:"remaining"`
	Milliliters int     `json:"milliliters"`
}

// NewReport derives the JSON report from a snapshot.
func NewReport(s tracker.Snapshot) Report {
	return Report{
		Snapshot:    s,
		Percent:     s.Percent(),
		Remaining:   s.Remaining(),
		Milliliters: s.Milliliters(),
	}
}

func (n *Status) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not get status, no persistence")
	}

	t, err := tracker.Open(ctx, n.Persistence)
	if err != nil {
		return err
	}
	defer func() { _ = t.Close(ctx) }()

	snap := t.Snapshot()
	out := n.Out
	if out == nil {
		out = color.Output
	}

	if n.JSON {
		b, err := json.Marshal(NewReport(snap))
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(out, string(b))
		return nil
	}

	pp := printers.PrettyPrint{Out: out}
	pp.Status(snap)
	pp.Week(snap.Date, t.History(ctx), snap.Goal)
	return nil
}
