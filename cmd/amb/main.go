package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("amb")

func newRootCmd() *cobra.Command {
	var verbose int

	rootCmd := &cobra.Command{
		Use:   "amb",
		Short: "Run ambiguity-preserving parser combinator grammars",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(verbose, nil)
		},
	}

	rootCmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "log verbosity (repeat for more)")

	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newAcceptsCmd())
	rootCmd.AddCommand(newParsesCmd())
	rootCmd.AddCommand(newValueCmd())
	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newEbnfCmd())

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
