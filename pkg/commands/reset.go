package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/sip/pkg/runner/reset"
)

func addReset(topLevel *cobra.Command) {
	yes := false

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete today's count, the goal and the history.",
		Example: `
sip reset --yes
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			if !yes {
				return errors.New("refusing to reset without --yes")
			}
			kv, err := openStore()
			if err != nil {
				return err
			}
			s := reset.Reset{
				KV:  kv,
				Out: cmd.OutOrStdout(),
			}
			return s.Do(cmd.Context())
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm deleting the tracker records.")

	topLevel.AddCommand(cmd)
}
