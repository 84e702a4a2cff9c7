// Package info reports where sip keeps its data.
package info

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"tableflip.dev/sip/pkg/store"
)

// Info prints the config lookup, the store path and the stored keys.
type Info struct {
	Config store.Config
	KV     store.KV
	Out    io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}

	if override := os.Getenv("SIP_CONFIG_PATH"); override != "" {
		_, _ = fmt.Fprintln(out, "SIP_CONFIG_PATH found on env, using ", override)
	} else {
		_, _ = fmt.Fprintln(out, "SIP_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	if used := store.ConfigFile(n.Config); used != "" {
		_, _ = fmt.Fprintln(out, "Config file: ", used)
	} else {
		_, _ = fmt.Fprintln(out, "Config file:  none, using defaults")
	}
	_, _ = fmt.Fprintln(out, "Config.path: ", n.Config.BasePath())
	_, _ = fmt.Fprintln(out, "Log level:   ", n.Config.LogLevel())

	if n.KV == nil {
		return fmt.Errorf("failed to open store")
	}

	_, _ = fmt.Fprintf(out, "Records:\n")
	keys := n.KV.Keys(ctx)
	for _, k := range keys {
		_, _ = fmt.Fprintf(out, "  %s\n", k)
	}
	if len(keys) == 0 {
		_, _ = fmt.Fprintf(out, "  %s\n", "no records")
	}

	return nil
}
