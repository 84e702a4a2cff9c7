package options

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// AmountOptions
type AmountOptions struct {
	Half bool
}

func AddAmountArgs(cmd *cobra.Command, o *AmountOptions) {
	cmd.Flags().BoolVar(&o.Half, "half", false,
		"Half a glass, same as passing 0.5.")
}

// Amount reads the optional glasses argument. No argument means one glass.
func (o *AmountOptions) Amount(args []string) (float64, error) {
	if o.Half {
		if len(args) > 0 {
			return 0, fmt.Errorf("--half can not be combined with an amount")
		}
		return 0.5, nil
	}
	if len(args) == 0 {
		return 1, nil
	}
	v, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", args[0], err)
	}
	return v, nil
}
