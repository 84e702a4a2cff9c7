package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"tableflip.dev/sip/pkg/commands/options"
	"tableflip.dev/sip/pkg/runner/goal"
)

func addGoal(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "goal [6|8|10|12]",
		Short: "Show or change the daily goal in glasses.",
		Example: `
sip goal
sip goal 10
`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"6", "8", "10", "12"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			set := 0
			if len(args) == 1 {
				v, err := strconv.Atoi(args[0])
				if err != nil {
					return output.HandleError(fmt.Errorf("invalid goal %q: %w", args[0], err))
				}
				set = v
			}
			_, p, err := openPersistence()
			if err != nil {
				return output.HandleError(err)
			}
			s := goal.Goal{
				Set:         set,
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
