// Package goal shows or changes the daily goal.
package goal

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/sip/pkg/printers"
	"tableflip.dev/sip/pkg/tracker"
)

// Goal prints the goal, or sets it when Set is non-zero.
type Goal struct {
	Set         int
	Persistence *tracker.Persistence
	Out         io.Writer
}

func (n *Goal) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not set goal, no persistence")
	}

	t, err := tracker.Open(ctx, n.Persistence)
	if err != nil {
		return err
	}
	defer func() { _ = t.Close(ctx) }()

	out := n.Out
	if out == nil {
		out = color.Output
	}
	if n.Set == 0 {
		_, _ = fmt.Fprintf(out, "Daily goal: %d glasses (options: 6, 8, 10, 12)\n", t.Snapshot().Goal)
		return nil
	}

	res, err := t.SetGoal(n.Set)
	if err != nil {
		return err
	}
	if err := res.Saved.Wait(ctx); err != nil {
		return err
	}
	pp := printers.PrettyPrint{Out: out}
	pp.Outcome(res)
	return nil
}
