package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/sip/pkg/commands/options"
	"tableflip.dev/sip/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	ao := &options.AmountOptions{}

	cmd := &cobra.Command{
		Use:     "add [glasses]",
		Aliases: []string{"drink"},
		Short:   "Log glasses of water, one by default.",
		Example: `
sip add
sip add 2
sip add --half
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
			s := add.Add{
				Amount:      amount,
				Persistence: p,
				Out:         cmd.OutOrStdout(),
				Notifier:    logOutcome,
			}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	options.AddAmountArgs(cmd, ao)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
