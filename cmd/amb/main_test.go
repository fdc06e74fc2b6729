package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestListCmd(t *testing.T) {
	out, err := execute(t, "", "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, name := range []string{"arith", "assign", "idents", "splits"} {
		if !strings.Contains(out, name) {
			t.Errorf("list output is missing %q:\n%s", name, out)
		}
	}
}

func TestAcceptsCmd(t *testing.T) {
	tests := []struct {
		name    string
		stdin   string
		args    []string
		want    string
		wantErr error
	}{
		{"accepted", "", []string{"accepts", "arith", "1+2"}, "arith: 1+2 -> true\n", nil},
		{"rejected", "", []string{"accepts", "arith", "1+"}, "arith: 1+ -> false\n", errRejected},
		{"message", "", []string{"accepts", "-m", "sum", "arith", "4"}, "sum: 4 -> true\n", nil},
		{"stdin", "3*3\n", []string{"accepts", "arith"}, "arith: 3*3 -> true\n", nil},
		{"nfc", "", []string{"accepts", "--nfc", "splits", "cafe\u0301"}, "splits: caf\u00e9 -> false\n", errRejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.stdin, tt.args...)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
			if out != tt.want {
				t.Errorf("output = %q, want %q", out, tt.want)
			}
		})
	}
}

func TestUnknownGrammar(t *testing.T) {
	_, err := execute(t, "", "accepts", "nope", "x")
	if err == nil || !strings.Contains(err.Error(), `unknown grammar "nope"`) {
		t.Errorf("error = %v, want unknown grammar", err)
	}
}

func TestParsesCmd(t *testing.T) {
	out, err := execute(t, "", "parses", "splits", "abc")
	if err != nil {
		t.Fatalf("parses: %v", err)
	}
	want := []string{
		"splits: abc",
		"{ Remaining:  | Value: ab,c }",
		"{ Remaining:  | Value: a,bc }",
		"{ Remaining: c | Value: a,b }",
	}
	if diff := cmp.Diff(want, strings.Split(strings.TrimSuffix(out, "\n"), "\n")); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}

	out, err = execute(t, "", "parses", "-q", "splits", "a")
	if err != nil {
		t.Fatalf("parses -q: %v", err)
	}
	if out != "\n" {
		t.Errorf("output for failed parse = %q, want a lone newline", out)
	}
}

func TestValueCmd(t *testing.T) {
	out, err := execute(t, "", "value", "arith", "2*(3+4)")
	if err != nil {
		t.Fatalf("value: %v", err)
	}
	if out != "14\n" {
		t.Errorf("output = %q, want %q", out, "14\n")
	}

	out, err = execute(t, "", "value", "idents", "a,,")
	if !errors.Is(err, errRejected) {
		t.Errorf("error = %v, want %v", err, errRejected)
	}
	if !strings.Contains(out, "no final value") {
		t.Errorf("output = %q, want no final value message", out)
	}
}

func TestRunCmd(t *testing.T) {
	out, err := execute(t, "", "run", "testdata/cases.yaml")
	if err != nil {
		t.Fatalf("run: %v\n%s", err, out)
	}
	if strings.Contains(out, "FAIL") {
		t.Errorf("unexpected failure:\n%s", out)
	}
	if got := strings.Count(out, "\n"); got != 4 {
		t.Errorf("got %d output lines, want 4:\n%s", got, out)
	}
}

func TestRunCmdFailures(t *testing.T) {
	out, err := execute(t, "", "run", "testdata/failing.yaml")
	if err == nil || err.Error() != "1 of 2 cases failed" {
		t.Errorf("error = %v, want 1 of 2 cases failed", err)
	}
	if !strings.Contains(out, `FAIL wrong expectation: value "2", want "3"`) {
		t.Errorf("output is missing the failure:\n%s", out)
	}
}

func TestEbnfCheckCmd(t *testing.T) {
	out, err := execute(t, "", "ebnf", "check", "../../grammars/assign.ebnf")
	if err != nil {
		t.Fatalf("check: %v\n%s", err, out)
	}
	if !strings.HasSuffix(out, ": ok\n") {
		t.Errorf("output = %q, want ok", out)
	}

	if _, err := execute(t, "", "ebnf", "check", "testdata/bad.ebnf"); err == nil {
		t.Error("check of a malformed grammar succeeded")
	}
}

func TestEbnfTokensCmd(t *testing.T) {
	out, err := execute(t, "", "ebnf", "tokens", "--skip", "Space", "../../grammars/assign.ebnf", "x = 1;")
	if err != nil {
		t.Fatalf("tokens: %v", err)
	}
	want := []string{
		`1:1 Ident "x"`,
		`1:3 Assign "="`,
		`1:5 Number "1"`,
		`1:6 Semi ";"`,
	}
	if diff := cmp.Diff(want, strings.Split(strings.TrimSuffix(out, "\n"), "\n")); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}
