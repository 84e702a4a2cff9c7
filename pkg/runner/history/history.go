// Package history prints the archived days.
package history

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

// History lists the log, most recent first.
type History struct {
	JSON        bool
	Persistence *tracker.Persistence
	Out         io.Writer
}

func (n *History) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not get history, no persistence")
	}

	// Opening runs the rollover so yesterday is archived before listing.
	t, err := tracker.Open(ctx, n.Persistence)
	if err != nil {
		return err
	}
	defer func() { _ = t.Close(ctx) }()

	entries := t.History(ctx)
	goal := t.Snapshot().Goal
	out := n.Out
	if out == nil {
		out = color.Output
	}

	if n.JSON {
		b, err := json.Marshal(struct {
			Entries []tracker.HistoryEntry `json:"entries"`
			Summary tracker.Summary        `json:"summary"`
		}{entries, tracker.Summarize(entries, goal)})
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(out, string(b))
		return nil
	}

	pp := printers.PrettyPrint{Out: out}
	pp.History(entries, goal)
	return nil
}
