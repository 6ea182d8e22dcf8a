package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	clerror "github.com/msto63/cpplite/pkg/core/error"
	"github.com/msto63/cpplite/pkg/lite"
	"github.com/msto63/cpplite/pkg/lite/parser"
)

const sumProgram = `int main() {
    int x;
    x = 1 + 2 * 3;
}
`

// writeFile creates name with content in a fresh temp dir and returns its path
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

// run executes the CLI with an isolated config file
func run(t *testing.T, cfg, stdin string, args ...string) (string, string, error) {
	t.Helper()
	if cfg == "" {
		cfg = "[log]\nlevel = \"error\"\n"
	}
	cfgPath := writeFile(t, "cpplite.toml", cfg)

	var stdout, stderr bytes.Buffer
	root := NewRootCommand()
	root.SetArgs(append([]string{"--config", cfgPath}, args...))
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&stdout)
	root.SetErr(&stderr)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestParseCommand_Formats(t *testing.T) {
	src := writeFile(t, "sum.cpp", sumProgram)

	tests := []struct {
		name  string
		args  []string
		wants []string
	}{
		{
			name:  "sexpr",
			args:  []string{"parse", "--format", "sexpr", src},
			wants: []string{"(program (decls (int x)) (block (= x (+ 1 (* 2 3)))))\n"},
		},
		{
			name:  "tree",
			args:  []string{"parse", src},
			wants: []string{"Program (abstract syntax):", "    Declarations = {<x, int>}", "Operator: *"},
		},
		{
			name:  "json",
			args:  []string{"parse", "-f", "json", src},
			wants: []string{`"node": "Program"`, `"target": "x"`, `"op": "+"`},
		},
		{
			name:  "yaml with positions",
			args:  []string{"parse", "-f", "yaml", "--positions", src},
			wants: []string{"node: Program", "target: x", "line: 3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, "", "", tt.args...)
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			for _, want := range tt.wants {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q:\n%s", want, out)
				}
			}
		})
	}
}

func TestParseCommand_ConfigFormat(t *testing.T) {
	src := writeFile(t, "sum.cpp", sumProgram)
	cfg := "[log]\nlevel = \"error\"\n\n[output]\nformat = \"sexpr\"\n"

	out, _, err := run(t, cfg, "", "parse", src)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.HasPrefix(out, "(program ") {
		t.Errorf("output.format not applied, got:\n%s", out)
	}
}

func TestParseCommand_Stdin(t *testing.T) {
	out, _, err := run(t, "", sumProgram, "parse", "-f", "sexpr", "-")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out, "(= x (+ 1 (* 2 3)))") {
		t.Errorf("unexpected output: %s", out)
	}
}

func TestParseCommand_SyntaxError(t *testing.T) {
	_, _, err := run(t, "", "int main() { int x; x = ; }", "parse", "-")
	if err == nil {
		t.Fatal("expected a syntax error")
	}

	var serr *parser.SyntaxError
	if !errors.As(err, &serr) {
		t.Fatalf("error %T does not wrap *parser.SyntaxError", err)
	}
	if serr.Line() != 1 || serr.Column() != 25 {
		t.Errorf("position = %d:%d, want 1:25", serr.Line(), serr.Column())
	}
	if !clerror.HasCode(err, clerror.CodeLiteSyntax) {
		t.Errorf("code = %v, want %v", clerror.GetCode(err), clerror.CodeLiteSyntax)
	}

	var buf bytes.Buffer
	printError(&buf, err)
	want := "<stdin>:1:25: error: Syntax error: expecting: Identifier | Literal | LeftParen | Type; saw: Semicolon(;)"
	if got := strings.TrimSpace(buf.String()); got != want {
		t.Errorf("printError() = %q, want %q", got, want)
	}
}

func TestParseCommand_UnknownFormat(t *testing.T) {
	src := writeFile(t, "sum.cpp", sumProgram)

	_, _, err := run(t, "", "", "parse", "-f", "xml", src)
	if !clerror.HasCode(err, clerror.CodeInvalidInput) {
		t.Errorf("error = %v, want code %v", err, clerror.CodeInvalidInput)
	}
}

func TestParseCommand_MissingFile(t *testing.T) {
	_, _, err := run(t, "", "", "parse", filepath.Join(t.TempDir(), "missing.cpp"))
	if !clerror.HasCode(err, clerror.CodeNotFound) {
		t.Errorf("error = %v, want code %v", err, clerror.CodeNotFound)
	}
}

func TestTokensCommand(t *testing.T) {
	out, _, err := run(t, "", "int main() { }", "tokens", "-")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	want := []string{
		"1:1 Int(int)",
		"1:5 Main(main)",
		"1:9 LeftParen(()",
		"1:10 RightParen())",
		"1:12 LeftBrace({)",
		"1:14 RightBrace(})",
		"1:15 Eof",
	}
	got := strings.Split(strings.TrimSpace(out), "\n")
	if len(got) != len(want) {
		t.Fatalf("got %d lines, want %d:\n%s", len(got), len(want), out)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestTokensCommand_Illegal(t *testing.T) {
	out, _, err := run(t, "", "int @", "tokens", "-")
	if !clerror.HasCode(err, clerror.CodeLiteLexical) {
		t.Errorf("error = %v, want code %v", err, clerror.CodeLiteLexical)
	}
	if !strings.HasPrefix(out, "1:1 Int(int)\n") {
		t.Errorf("tokens before the illegal character should be printed, got:\n%s", out)
	}
}

func TestCheckCommand(t *testing.T) {
	t.Run("valid program", func(t *testing.T) {
		out, _, err := run(t, "", sumProgram, "check", "-")
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		for _, want := range []string{"ok <stdin>", "Declarations", "Operators"} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q:\n%s", want, out)
			}
		}
	})

	t.Run("duplicate declaration", func(t *testing.T) {
		src := "int main() { int x; float x; x = 1; }"
		_, _, err := run(t, "", src, "check", "-")
		if !clerror.HasCode(err, clerror.CodeLiteValidation) {
			t.Fatalf("error = %v, want code %v", err, clerror.CodeLiteValidation)
		}

		var problems lite.ValidationErrors
		if !errors.As(err, &problems) || len(problems) != 1 {
			t.Fatalf("want one validation problem, got %v", err)
		}

		var buf bytes.Buffer
		printError(&buf, err)
		if !strings.Contains(buf.String(), `duplicate declaration of "x"`) {
			t.Errorf("printError() = %q", buf.String())
		}
	})
}

func TestConfigCommand(t *testing.T) {
	cfg := "[log]\nlevel = \"error\"\n\n[parser]\nmax_source_bytes = 4096\n"

	t.Run("toml", func(t *testing.T) {
		out, _, err := run(t, cfg, "", "config")
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		for _, want := range []string{"# source: ", "cpplite.toml", `level = "error"`, "max_source_bytes = 4096", `format = "tree"`} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q:\n%s", want, out)
			}
		}
	})

	t.Run("yaml with flag override", func(t *testing.T) {
		out, _, err := run(t, cfg, "", "--log-level", "info", "config", "--format", "yaml")
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		for _, want := range []string{"level: info", "max_source_bytes: 4096"} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q:\n%s", want, out)
			}
		}
	})

	t.Run("unknown format", func(t *testing.T) {
		_, _, err := run(t, cfg, "", "config", "--format", "ini")
		if !clerror.HasCode(err, clerror.CodeInvalidInput) {
			t.Errorf("error = %v, want code %v", err, clerror.CodeInvalidInput)
		}
	})
}

func TestRootCommand_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  string
	}{
		{"output format", "[output]\nformat = \"xml\"\n"},
		{"log level", "[log]\nlevel = \"loud\"\n"},
		{"negative limit", "[parser]\nmax_source_bytes = -1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, tt.cfg, "", "config")
			if !clerror.HasCode(err, clerror.CodeInvalidConfig) {
				t.Errorf("error = %v, want code %v", err, clerror.CodeInvalidConfig)
			}
		})
	}
}

func TestRootCommand_SizeLimit(t *testing.T) {
	cfg := "[log]\nlevel = \"error\"\n\n[parser]\nmax_source_bytes = 16\n"

	_, _, err := run(t, cfg, sumProgram, "parse", "-")
	if !clerror.HasCode(err, clerror.CodeInvalidLength) {
		t.Errorf("error = %v, want code %v", err, clerror.CodeInvalidLength)
	}
}

func TestRootCommand_VerboseLogging(t *testing.T) {
	_, stderr, err := run(t, "[log]\nformat = \"logfmt\"\n", sumProgram, "-v", "parse", "-")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	for _, want := range []string{"Configuration loaded", `component="parser"`, "parse completed"} {
		if !strings.Contains(stderr, want) {
			t.Errorf("log output missing %q:\n%s", want, stderr)
		}
	}
}

func TestViewCommand_RejectsStdin(t *testing.T) {
	_, _, err := run(t, "", "", "view", "-")
	if !clerror.HasCode(err, clerror.CodeInvalidInput) {
		t.Errorf("error = %v, want code %v", err, clerror.CodeInvalidInput)
	}
}

func TestLoadDocument(t *testing.T) {
	src := writeFile(t, "sum.cpp", sumProgram)
	e, err := lite.New(lite.Options{})
	if err != nil {
		t.Fatalf("lite.New() error = %v", err)
	}

	doc, err := loadDocument(e, src)
	if err != nil {
		t.Fatalf("loadDocument() error = %v", err)
	}
	if doc.Name != src || doc.Program == nil {
		t.Errorf("unexpected document %+v", doc)
	}
	if n := len(doc.Tokens); n == 0 || doc.Tokens[n-1].String() != "Eof" {
		t.Errorf("token stream should end with Eof, got %v", doc.Tokens)
	}
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	root := NewRootCommand()
	root.SetArgs([]string{"version"})
	root.SetOut(&out)

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	for _, want := range []string{"cpplite 0.1.0", "parser:", "Go Version:", "OS/Arch:"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}
