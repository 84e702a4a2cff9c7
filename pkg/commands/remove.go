package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/sip/pkg/commands/options"
	"tableflip.dev/sip/pkg/runner/remove"
)

func addRemove(topLevel *cobra.Command) {
	ao := &options.AmountOptions{}

	cmd := &cobra.Command{
		Use:     "remove [glasses]",
		Aliases: []string{"rm"},
		Short:   "Take back glasses logged by mistake.",
		Example: `
sip remove
sip remove --half
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			amount, err := ao.Amount(args)
			if err != nil {
				return output.HandleError(err)
			}
			_, p, err := openPersistence()
			if err != nil {
				return output.HandleError(err)
			}
			s := remove.Remove{
				Amount:      amount,
				Persistence: p,
				Notifier:    logOutcome,
				Out:         cmd.OutOrStdout(),
			}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	options.AddAmountArgs(cmd, ao)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
