package main

import (
	"github.com/dhamidi/amb/parse"
	"github.com/dhamidi/amb/report"
	"github.com/spf13/cobra"
)

func newValueCmd() *cobra.Command {
	var opts inputOptions

	cmd := &cobra.Command{
		Use:           "value <grammar> [input]",
		Short:         "Print the value of the first complete parse",
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, in, err := opts.load(cmd, args)
			if err != nil {
				return err
			}
			results := g.Parser(in)
			report.LogFinalValue(results, opts.sink(cmd))
			if !parse.HasCompleteParse(results) {
				return errRejected
			}
			return nil
		},
	}

	opts.register(cmd)

	return cmd
}
