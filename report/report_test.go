package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dhamidi/amb/input"
	"github.com/dhamidi/amb/parse"
	"github.com/google/go-cmp/cmp"
)

type capture struct {
	lines []string
}

func (c *capture) sink(line string) {
	c.lines = append(c.lines, line)
}

func (c *capture) text() string {
	return strings.Join(c.lines, "\n")
}

func fakeParser(complete bool, calls *[]string) parse.Parser {
	return func(in input.Sequence) []parse.Result {
		*calls = append(*calls, in.String())
		if complete {
			return []parse.Result{parse.NewResult(input.Text(""), nil)}
		}
		return []parse.Result{parse.NewResult(input.Text("a"), nil)}
	}
}

func TestLogAccepts(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		in       string
		complete bool
		want     string
	}{
		{"accepted", "my message1", "SOME INPUT", true, "true"},
		{"rejected", "my message2", "SOME MORE INPUT", false, "false"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls []string
			var out capture
			got := LogAccepts(tt.message, fakeParser(tt.complete, &calls), input.Text(tt.in), out.sink)

			if got != tt.complete {
				t.Errorf("LogAccepts() = %v, want %v", got, tt.complete)
			}
			if diff := cmp.Diff([]string{tt.in}, calls); diff != "" {
				t.Errorf("parser calls mismatch (-want +got):\n%s", diff)
			}

			text := out.text()
			msgAt := strings.Index(text, tt.message)
			inAt := strings.Index(text, tt.in)
			resultAt := strings.LastIndex(text, tt.want)
			if msgAt < 0 || inAt < 0 || resultAt < 0 {
				t.Fatalf("output %q is missing message, input or result", text)
			}
			if !(msgAt < inAt && inAt < resultAt) {
				t.Errorf("output %q is not ordered message, input, result", text)
			}
		})
	}
}

func TestPrintParses(t *testing.T) {
	t.Run("failure prints empty line", func(t *testing.T) {
		var buf bytes.Buffer
		PrintParses(nil, WriterSink(&buf))
		if got := buf.String(); got != "\n" {
			t.Errorf("output = %q, want %q", got, "\n")
		}
	})

	t.Run("prints every result", func(t *testing.T) {
		results := []parse.Result{
			parse.NewResult(input.Text("a"), "b"),
			parse.NewResult(input.Text("cd"), "e"),
		}
		var buf bytes.Buffer
		PrintParses(results, WriterSink(&buf))
		want := results[0].String() + "\n" + results[1].String() + "\n"
		if got := buf.String(); got != want {
			t.Errorf("output = %q, want %q", got, want)
		}
	})
}

func TestLogParses(t *testing.T) {
	var out capture
	p := parse.Optional(parse.Symbol("a"))
	results := LogParses("optional a", p, input.Text("a"), out.sink)

	want := []string{
		"optional a: a",
		"{ Remaining:  | Value: a }",
		"{ Remaining: a | Value:  }",
	}
	if diff := cmp.Diff(want, out.lines); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
	if len(results) != 2 {
		t.Errorf("LogParses returned %d results, want 2", len(results))
	}
}

func TestLogFinalValue(t *testing.T) {
	tests := []struct {
		name    string
		results []parse.Result
		want    string
	}{
		{"failure", nil, ParserFailed},
		{"only partial", []parse.Result{
			parse.NewResult(input.Text("a"), "b"),
			parse.NewResult(input.Text("cd"), "e"),
		}, NoFinalValue},
		{"final value", []parse.Result{
			parse.NewResult(input.Text("a"), "b"),
			parse.NewResult(input.Text(""), "mozilla"),
		}, "mozilla"},
		{"list value", []parse.Result{
			parse.NewResult(input.Text(""), []any{"d", "e", "f"}),
		}, "d,e,f"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out capture
			LogFinalValue(tt.results, out.sink)
			if diff := cmp.Diff([]string{tt.want}, out.lines); diff != "" {
				t.Errorf("output mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
