package main

import (
	"fmt"
	"os"

	"github.com/dhamidi/amb/input"
	"github.com/dhamidi/amb/parse"
	"github.com/dhamidi/amb/report"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// caseFile is the YAML document read by "amb run".
type caseFile struct {
	Cases []testCase `yaml:"cases"`
}

// testCase runs one grammar on one input. Accept is the expected outcome;
// Value, when set, is the expected rendering of the final value.
type testCase struct {
	Message string  `yaml:"message"`
	Grammar string  `yaml:"grammar"`
	Input   string  `yaml:"input"`
	Accept  bool    `yaml:"accept"`
	Value   *string `yaml:"value,omitempty"`
}

func loadCases(filename string) ([]testCase, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read cases: %w", err)
	}
	var f caseFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode cases %s: %w", filename, err)
	}
	for i, c := range f.Cases {
		if c.Grammar == "" {
			return nil, fmt.Errorf("case %d in %s: missing grammar", i+1, filename)
		}
	}
	return f.Cases, nil
}

func newRunCmd() *cobra.Command {
	var opts inputOptions

	cmd := &cobra.Command{
		Use:           "run <cases.yaml>",
		Short:         "Run acceptance cases from a YAML file",
		Long:          `Each case names a grammar, an input and whether the grammar should accept it. Every case is printed with its outcome; the command fails if any case disagrees with its expectation.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cases, err := loadCases(args[0])
			if err != nil {
				return err
			}

			sink := opts.sink(cmd)
			failed := 0
			for i, c := range cases {
				if err := runCase(c, opts, sink); err != nil {
					log.Errorf("case %d: %s", i+1, err)
					sink(fmt.Sprintf("FAIL %s", err))
					failed++
				}
			}

			log.Infof("%d cases, %d failed", len(cases), failed)
			if failed > 0 {
				return fmt.Errorf("%d of %d cases failed", failed, len(cases))
			}
			return nil
		},
	}

	opts.register(cmd)

	return cmd
}

func runCase(c testCase, opts inputOptions, sink report.Sink) error {
	g, err := lookupGrammar(c.Grammar)
	if err != nil {
		return err
	}
	src := c.Input
	if opts.nfc {
		src = input.NFC(src).String()
	}
	in, err := g.Input(src)
	if err != nil {
		return fmt.Errorf("%s: read input: %w", c.Message, err)
	}

	message := c.Message
	if message == "" {
		message = g.Name
	}
	accepted := report.LogAccepts(message, g.Parser, in, sink)
	if accepted != c.Accept {
		return fmt.Errorf("%s: accepted %t, want %t", message, accepted, c.Accept)
	}
	if c.Value == nil || !accepted {
		return nil
	}

	v, err := parse.FinalValue(g.Parser(in))
	if err != nil {
		return fmt.Errorf("%s: %w", message, err)
	}
	if got := v.String(); got != *c.Value {
		return fmt.Errorf("%s: value %q, want %q", message, got, *c.Value)
	}
	return nil
}
