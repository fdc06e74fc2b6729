package main

import (
	"github.com/dhamidi/amb/report"
	"github.com/spf13/cobra"
)

func newParsesCmd() *cobra.Command {
	var opts inputOptions
	var quiet bool

	cmd := &cobra.Command{
		Use:           "parses <grammar> [input]",
		Short:         "Print every parse of the input",
		Long:          `Prints all results the grammar produces for the input, complete or not, in the order the combinators enumerate them.`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, in, err := opts.load(cmd, args)
			if err != nil {
				return err
			}
			sink := opts.sink(cmd)
			if quiet {
				report.PrintParses(g.Parser(in), sink)
				return nil
			}
			results := report.LogParses(g.Name, g.Parser, in, sink)
			log.Infof("%s: %d results", g.Name, len(results))
			return nil
		},
	}

	opts.register(cmd)
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "print only the results")

	return cmd
}
