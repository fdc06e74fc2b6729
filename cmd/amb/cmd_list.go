package main

import (
	"strconv"

	"github.com/dhamidi/amb/grammars"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the built-in grammars",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"Name", "Example", "Description"})
			table.SetAutoWrapText(false)
			for _, g := range grammars.All() {
				table.Append([]string{g.Name, strconv.Quote(g.Example), g.Description})
			}
			table.Render()
			return nil
		},
	}

	return cmd
}
