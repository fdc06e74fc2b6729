package main

import (
	"fmt"
	"io"
	"os"
	"reflect"

	"github.com/dhamidi/amb/ebnflex"
	"github.com/spf13/cobra"
	"golang.org/x/exp/ebnf"
)

func newEbnfCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "ebnf",
		Short:         "EBNF token grammar tools",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newEbnfCheckCmd())
	cmd.AddCommand(newEbnfTokensCmd())

	return cmd
}

func newEbnfCheckCmd() *cobra.Command {
	var startProduction string

	cmd := &cobra.Command{
		Use:           "check <file>",
		Short:         "Parse and verify an EBNF grammar file",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]

			f, err := os.Open(filename)
			if err != nil {
				return fmt.Errorf("open file: %w", err)
			}
			defer f.Close()

			grammar, err := ebnf.Parse(filename, f)
			if err != nil {
				printErrors(cmd.ErrOrStderr(), err)
				return fmt.Errorf("parse %s: invalid grammar", filename)
			}

			if startProduction != "" {
				if err := ebnf.Verify(grammar, startProduction); err != nil {
					printErrors(cmd.ErrOrStderr(), err)
					return fmt.Errorf("verify %s from %s: invalid grammar", filename, startProduction)
				}
			}

			log.Infof("%s: %d productions", filename, len(grammar))
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", filename)
			return nil
		},
	}

	cmd.Flags().StringVar(&startProduction, "start", "", "start production for verification (if empty, only checks syntax)")

	return cmd
}

func newEbnfTokensCmd() *cobra.Command {
	var skip []string

	cmd := &cobra.Command{
		Use:           "tokens <file> [input]",
		Short:         "Tokenize input with the token kinds of an EBNF grammar",
		Long:          `Productions starting with an uppercase letter are token kinds. Prints one token per line with its position, kind and literal.`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			grammar, err := ebnflex.LoadGrammar(args[0])
			if err != nil {
				return err
			}

			src, err := readSource(cmd, args)
			if err != nil {
				return err
			}

			lexer := ebnflex.NewLexer(grammar, []byte(src), "")
			lexer.SetSkipKinds(skip...)
			tokens, err := lexer.Tokenize()
			if err != nil {
				return fmt.Errorf("tokenize: %w", err)
			}

			for _, tok := range tokens {
				fmt.Fprintln(cmd.OutOrStdout(), tok.Describe())
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&skip, "skip", nil, "token kinds to drop from the output")

	return cmd
}

// printErrors prints each error of an ebnf error list on its own line.
func printErrors(w io.Writer, err error) {
	v := reflect.ValueOf(err)
	if v.Kind() == reflect.Slice {
		for i := 0; i < v.Len(); i++ {
			fmt.Fprintln(w, v.Index(i).Interface())
		}
	} else {
		fmt.Fprintln(w, err)
	}
}
