package main

import (
	"errors"

	"github.com/dhamidi/amb/report"
	"github.com/spf13/cobra"
)

var errRejected = errors.New("input rejected")

func newAcceptsCmd() *cobra.Command {
	var opts inputOptions
	var message string

	cmd := &cobra.Command{
		Use:           "accepts <grammar> [input]",
		Short:         "Report whether a grammar accepts the whole input",
		Long:          `Runs the grammar on the input (or standard input) and prints whether some parse consumed all of it. Exits non-zero if none did.`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, in, err := opts.load(cmd, args)
			if err != nil {
				return err
			}
			if message == "" {
				message = g.Name
			}
			if !report.LogAccepts(message, g.Parser, in, opts.sink(cmd)) {
				return errRejected
			}
			return nil
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVarP(&message, "message", "m", "", "message to print before the input (default: grammar name)")

	return cmd
}
