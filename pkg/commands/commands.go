package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/sip/pkg/commands/options"
	"tableflip.dev/sip/pkg/logging"
	"tableflip.dev/sip/pkg/store"
	"tableflip.dev/sip/pkg/timeutil"
	"tableflip.dev/sip/pkg/tracker"
)

var (
	output = &options.OutputOptions{}
	logo   = &options.LogOptions{}

	// config is loaded once per invocation by the root pre-run.
	config store.Config
)

func New() *cobra.Command {
	var closeLog func() error

	cmd := &cobra.Command{
		Use:   "sip",
		Short: base.Wrap80("Track the water you drink, one glass at a time. The counter resets every day and the last week is kept as history."),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			config = cfg
			output.Out = cmd.OutOrStdout()
			closeLog, err = logging.Init(logging.Options{
				Level:  logo.Resolve(cfg.LogLevel()),
				File:   cfg.LogFile(),
				Stderr: cmd.ErrOrStderr(),
			})
			return err
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if closeLog == nil {
				return nil
			}
			return closeLog()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	options.AddLogArgs(cmd, logo)
	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addAdd(topLevel)
	addRemove(topLevel)
	addStatus(topLevel)
	addHistory(topLevel)
	addGoal(topLevel)
	addUI(topLevel)
	addMCP(topLevel)
	addKey(topLevel)
	addInfo(topLevel)
	addReset(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

// openStore opens the configured diskv store.
func openStore() (*store.Diskv, error) {
	return store.Load(config)
}

// openPersistence opens the store and wraps it for the tracker.
func openPersistence() (*store.Diskv, *tracker.Persistence, error) {
	kv, err := openStore()
	if err != nil {
		return nil, nil, err
	}
	return kv, tracker.NewPersistence(kv, timeutil.System, slog.Default()), nil
}

// logOutcome logs completed goals and rejected actions of one-shot commands.
var logOutcome = tracker.NotifierFunc(func(o tracker.Outcome, snap tracker.Snapshot) {
	slog.Info(o.String(), "intake", snap.Intake, "goal", snap.Goal)
})
