// Package report prints what parsers make of their input. It only invokes
// parsers and reads their results.
package report

import (
	"fmt"
	"io"
	"os"

	"github.com/dhamidi/amb/input"
	"github.com/dhamidi/amb/parse"
	"github.com/tliron/commonlog"
)

const (
	// ParserFailed is written by LogFinalValue when there are no results.
	ParserFailed = "parser failed"
	// NoFinalValue is written by LogFinalValue when no result consumed the
	// whole input.
	NoFinalValue = "no final value: every parse left input unconsumed"
)

// Sink receives one line of output at a time, without a trailing newline.
// A nil Sink writes to standard output.
type Sink func(line string)

// WriterSink writes each line to w followed by a newline.
func WriterSink(w io.Writer) Sink {
	return func(line string) {
		fmt.Fprintln(w, line)
	}
}

// LoggerSink logs each line at info level.
func LoggerSink(log commonlog.Logger) Sink {
	return func(line string) {
		log.Info(line)
	}
}

func (s Sink) orStdout() Sink {
	if s == nil {
		return WriterSink(os.Stdout)
	}
	return s
}

// LogAccepts writes the message, the input and whether p accepts it, in
// that order, on one line.
func LogAccepts(message string, p parse.Parser, in input.Sequence, sink Sink) bool {
	accepted := parse.Accepts(p, in)
	sink.orStdout()(fmt.Sprintf("%s: %s -> %t", message, in, accepted))
	return accepted
}

// LogParses writes the message and the input, then every result of p.
func LogParses(message string, p parse.Parser, in input.Sequence, sink Sink) []parse.Result {
	sink = sink.orStdout()
	results := p(in)
	sink(fmt.Sprintf("%s: %s", message, in))
	PrintParses(results, sink)
	return results
}

// PrintParses writes one line per result. An empty result set produces a
// single empty line.
func PrintParses(results []parse.Result, sink Sink) {
	sink = sink.orStdout()
	if len(results) == 0 {
		sink("")
		return
	}
	for _, r := range results {
		sink(r.String())
	}
}

// LogFinalValue writes the final value of results, or ParserFailed or
// NoFinalValue when there is none.
func LogFinalValue(results []parse.Result, sink Sink) {
	sink = sink.orStdout()
	if len(results) == 0 {
		sink(ParserFailed)
		return
	}
	v, err := parse.FinalValue(results)
	if err != nil {
		sink(NoFinalValue)
		return
	}
	sink(v.String())
}
