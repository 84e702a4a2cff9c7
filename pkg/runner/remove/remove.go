// Package remove takes back glasses logged by mistake.
package remove

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/sip/pkg/printers"
	"tableflip.dev/sip/pkg/tracker"
)

// Remove takes back Amount glasses.
type Remove struct {
	Amount      float64
	Persistence *tracker.Persistence
	Notifier    tracker.Notifier
	Out         io.Writer
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not remove, no persistence")
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

	res := t.Remove(n.Amount)
	if err := res.Saved.Wait(ctx); err != nil {
		return err
	}

	pp := printers.PrettyPrint{Out: n.Out}
	pp.Outcome(res)
	pp.NewLine()
	pp.Status(res.Snapshot)
	return nil
}
