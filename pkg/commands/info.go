package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/sip/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about the config and where records are stored.",
		Example: `
sip info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			kv, err := openStore()
			if err != nil {
				return err
			}
			s := info.Info{
				Config: config,
				KV:     kv,
				Out:    cmd.OutOrStdout(),
			}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
