package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/sip/pkg/commands/options"
	"tableflip.dev/sip/pkg/runner/status"
)

func addStatus(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show today's progress and the week before.",
		Example: `
sip status
sip status --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			_, p, err := openPersistence()
			if err != nil {
				return output.HandleError(err)
			}
			s := status.Status{
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
