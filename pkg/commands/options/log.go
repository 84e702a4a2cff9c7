package options

import (
	"github.com/spf13/cobra"
)

// LogOptions
type LogOptions struct {
	Verbose bool
	Level   string
}

func AddLogArgs(cmd *cobra.Command, o *LogOptions) {
	cmd.PersistentFlags().BoolVarP(&o.Verbose, "verbose", "v", false,
		"Log debug output to stderr.")
	cmd.PersistentFlags().StringVar(&o.Level, "log-level", "",
		"Log level: debug, info, warn or error. Overrides the config file.")
}

// Resolve picks the level to log at: --verbose wins, then --log-level, then
// the configured level.
func (o *LogOptions) Resolve(configured string) string {
	switch {
	case o.Verbose:
		return "debug"
	case o.Level != "":
		return o.Level
	}
	return configured
}
