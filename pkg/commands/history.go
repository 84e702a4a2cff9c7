package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/sip/pkg/commands/options"
	"tableflip.dev/sip/pkg/runner/history"
)

func addHistory(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List the last seven recorded days.",
		Example: `
sip history
sip history --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			_, p, err := openPersistence()
			if err != nil {
				return output.HandleError(err)
			}
			s := history.History{
				JSON:        output.JSON,
				Persistence: p,
				Out:         cmd.OutOrStdout(),
			}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
