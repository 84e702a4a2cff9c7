// Package add logs glasses of water from the command line.
package add

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/sip/pkg/printers"
	"tableflip.dev/sip/pkg/tracker"
)

// Add drinks Amount glasses.
type Add struct {
	Amount      float64
	Persistence *tracker.Persistence
	Notifier    tracker.Notifier
	Out         io.Writer
}

// Do opens today's counter, adds the amount, waits for the write and prints
// the result.
func (n *Add) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not add, no persistence")
	}

	var opts []tracker.Option
	if n.Notifier != nil {
		opts = append(opts, tracker.WithNotifier(n.Notifier))
	}
	t, err := tracker.Open(ctx, n.Persistence, opts...)
	if err != nil {
		return err
	}
	defer func() { _ = t.Close(ctx) }()

	res := t.Add(n.Amount)
	if err := res.Saved.Wait(ctx); err != nil {
		return err
	}

	pp := printers.PrettyPrint{Out: n.Out}
	pp.Outcome(res)
	pp.NewLine()
	pp.Status(res.Snapshot)
	return nil
}
