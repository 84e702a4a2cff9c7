package commands

import (
	"github.com/spf13/cobra"

	teaui "tableflip.dev/sip/pkg/runner/tea"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Interactive session with undo and live updates.",
		Long: `Start the interactive session. Keys log, remove and undo glasses;
run "sip key" for the full list. The session follows midnight rollovers and
changes made by other sip commands while it is open.`,
		Example: `
sip ui
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			kv, p, err := openPersistence()
			if err != nil {
				return err
			}
			u := teaui.UI{
				Persistence: p,
				Watcher:     kv,
			}
			return u.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
