// Package reset clears the tracker records.
package reset

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/fatih/color"

	"tableflip.dev/sip/pkg/store"
	"tableflip.dev/sip/pkg/tracker"
)

// Reset removes the tracker records from the store. Other files under the
// store path are left alone.
type Reset struct {
	KV  store.KV
	Out io.Writer
}

func (n *Reset) Do(ctx context.Context) error {
	if n.KV == nil {
		return errors.New("can not reset, no store")
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}

	present := n.KV.Keys(ctx)
	removed := 0
	var errs []error
	for _, k := range tracker.StoredKeys {
		if !slices.Contains(present, k) {
			continue
		}
		if err := n.KV.Remove(ctx, k); err != nil {
			errs = append(errs, err)
			continue
		}
		removed++
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(out, "Removed %d records.\n", removed)
	return nil
}
