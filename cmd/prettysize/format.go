package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"prettysize/pkg/configutil"
	"prettysize/pkg/human"
)

func newFormatCommand() *cobra.Command {
	var digits int

	cmd := &cobra.Command{
		Use:   "format SIZE...",
		Short: "Format byte counts such as 54123 or 54k",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, arg := range args {
				n, err := configutil.ParseByteSize(arg)
				if err != nil {
					return fmt.Errorf("format %s: %w", arg, err)
				}
				formatted, err := human.Format(n, digits)
				if err != nil {
					return fmt.Errorf("format %s: %w", arg, err)
				}
				fmt.Fprintln(out, formatted)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&digits, "digits", "d", human.DefaultSignificantDigits, "Maximum significant digits")
	return cmd
}
