package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/amb/grammars"
	"github.com/dhamidi/amb/input"
	"github.com/dhamidi/amb/report"
	"github.com/spf13/cobra"
)

// inputOptions are the flags shared by commands that run a grammar.
type inputOptions struct {
	nfc    bool
	logOut bool
}

func (o *inputOptions) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&o.nfc, "nfc", false, "normalize text input to Unicode NFC before parsing")
	cmd.Flags().BoolVar(&o.logOut, "log", false, "write output through the logger instead of stdout")
}

func (o *inputOptions) sink(cmd *cobra.Command) report.Sink {
	if o.logOut {
		return report.LoggerSink(log)
	}
	return report.WriterSink(cmd.OutOrStdout())
}

func lookupGrammar(name string) (grammars.Grammar, error) {
	g, ok := grammars.Lookup(name)
	if !ok {
		return grammars.Grammar{}, fmt.Errorf("unknown grammar %q (available: %s)", name, strings.Join(grammars.Names(), ", "))
	}
	return g, nil
}

// readSource returns args[1] if present, otherwise all of standard input
// without its trailing newline.
func readSource(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 1 {
		return args[1], nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}

// load resolves the grammar and input named by args.
func (o *inputOptions) load(cmd *cobra.Command, args []string) (grammars.Grammar, input.Sequence, error) {
	g, err := lookupGrammar(args[0])
	if err != nil {
		return g, nil, err
	}
	src, err := readSource(cmd, args)
	if err != nil {
		return g, nil, err
	}
	if o.nfc {
		src = input.NFC(src).String()
	}
	in, err := g.Input(src)
	if err != nil {
		return g, nil, fmt.Errorf("read %s input: %w", g.Name, err)
	}
	log.Debugf("grammar %s: %d input elements", g.Name, in.Len())
	return g, in, nil
}
