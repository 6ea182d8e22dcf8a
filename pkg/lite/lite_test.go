// File: lite_test.go
// Title: C++Lite Engine Tests
// Description: Tests for source and file parsing, limits, validation and
//              error codes of the engine.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial test suite

package lite

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"

	clerror "github.com/msto63/cpplite/pkg/core/error"
	cllog "github.com/msto63/cpplite/pkg/core/log"
	"github.com/msto63/cpplite/pkg/lite/ast"
	"github.com/msto63/cpplite/pkg/lite/parser"
	"github.com/msto63/cpplite/pkg/lite/token"
)

const sampleSource = `// sum the first ten numbers
int main() {
  int i, sum;
  i = 0;
  sum = 0;
  while (i < 10) {
    sum = sum + i;
    i = i + 1;
  }
}
`

func newEngine(t *testing.T, opts Options) *Engine {
	t.Helper()
	if opts.Logger == nil {
		opts.Logger = cllog.Discard()
	}
	e, err := New(opts)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return e
}

func TestNew(t *testing.T) {
	e := newEngine(t, Options{})
	if e.options.MaxSourceBytes != DefaultMaxSourceBytes {
		t.Errorf("MaxSourceBytes = %d, want default %d", e.options.MaxSourceBytes, DefaultMaxSourceBytes)
	}

	_, err := New(Options{Logger: cllog.Discard(), MaxSourceBytes: -1})
	if !clerror.HasCode(err, clerror.CodeInvalidInput) {
		t.Errorf("New(-1) error = %v, want CodeInvalidInput", err)
	}
}

func TestEngine_ParseSource(t *testing.T) {
	e := newEngine(t, Options{Validate: true})

	res, err := e.ParseSource("sum.cpp", sampleSource)
	if err != nil {
		t.Fatalf("ParseSource() error = %v", err)
	}

	if res.Name != "sum.cpp" {
		t.Errorf("Name = %q, want sum.cpp", res.Name)
	}
	if _, err := uuid.Parse(res.CorrelationID); err != nil {
		t.Errorf("CorrelationID %q is not a UUID: %v", res.CorrelationID, err)
	}
	if got := res.Program.Declarations.Len(); got != 2 {
		t.Errorf("declarations = %d, want 2", got)
	}
	if got := len(res.Program.Body.Statements); got != 3 {
		t.Errorf("statements = %d, want 3", got)
	}

	again, err := e.ParseSource("sum.cpp", sampleSource)
	if err != nil {
		t.Fatalf("second ParseSource() error = %v", err)
	}
	if again.CorrelationID == res.CorrelationID {
		t.Error("each parse should get its own correlation id")
	}
	if again.Program.String() != res.Program.String() {
		t.Error("reparsing the same source produced a different tree")
	}
}

func TestEngine_SyntaxError(t *testing.T) {
	e := newEngine(t, Options{})

	_, err := e.ParseSource("bad.cpp", "int main() {\n  x = 1\n}")
	if err == nil {
		t.Fatal("ParseSource() error = nil, want syntax error")
	}

	if !clerror.HasCode(err, clerror.CodeLiteSyntax) {
		t.Errorf("error code = %v, want %v", clerror.GetCode(err), clerror.CodeLiteSyntax)
	}

	var serr *parser.SyntaxError
	if !errors.As(err, &serr) {
		t.Fatalf("errors.As(*parser.SyntaxError) failed for %v", err)
	}
	if serr.Error() != "Syntax error: expecting: Semicolon; saw: RightBrace(})" {
		t.Errorf("syntax error = %q", serr.Error())
	}

	var coded *clerror.Error
	errors.As(err, &coded)
	if line, _ := coded.Detail("line"); line != 3 {
		t.Errorf("line detail = %v, want 3", line)
	}
	if expected, _ := coded.Detail("expected"); expected != "Semicolon" {
		t.Errorf("expected detail = %v, want Semicolon", expected)
	}
	if coded.Severity() != clerror.SeverityLow {
		t.Errorf("severity = %v, want low", coded.Severity())
	}
}

func TestEngine_Validation(t *testing.T) {
	src := "int main() { int x; float x; char c, c; }"

	lenient := newEngine(t, Options{})
	res, err := lenient.ParseSource("dup.cpp", src)
	if err != nil {
		t.Fatalf("parsing without validation failed: %v", err)
	}

	verr := lenient.Validate(res.Program)
	if !clerror.HasCode(verr, clerror.CodeLiteValidation) {
		t.Errorf("Validate() error = %v, want CodeLiteValidation", verr)
	}

	strict := newEngine(t, Options{Validate: true})
	_, err = strict.ParseSource("dup.cpp", src)
	if !clerror.HasCode(err, clerror.CodeLiteValidation) {
		t.Fatalf("ParseSource() error = %v, want CodeLiteValidation", err)
	}

	var problems ValidationErrors
	if !errors.As(err, &problems) {
		t.Fatalf("errors.As(ValidationErrors) failed for %v", err)
	}
	if len(problems) != 1 {
		t.Errorf("problems = %v, want 1", problems)
	}

	var first *ast.ValidationError
	if !errors.As(err, &first) {
		t.Fatal("errors.As should reach the *ast.ValidationError")
	}
	if !strings.Contains(first.Message, `duplicate declaration of "x"`) {
		t.Errorf("message = %q", first.Message)
	}

	if len(res.Program.Body.Statements) != 0 {
		t.Errorf("statements = %d, want 0", len(res.Program.Body.Statements))
	}
}

func TestEngine_ParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sum.cpp")
	if err := os.WriteFile(path, []byte(sampleSource), 0o644); err != nil {
		t.Fatal(err)
	}

	e := newEngine(t, Options{})

	res, err := e.ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile() error = %v", err)
	}
	if res.Name != path {
		t.Errorf("Name = %q, want %q", res.Name, path)
	}

	tests := []struct {
		name string
		path string
		code clerror.Code
	}{
		{"missing file", filepath.Join(dir, "missing.cpp"), clerror.CodeNotFound},
		{"directory", dir, clerror.CodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.ParseFile(tt.path)
			if !clerror.HasCode(err, tt.code) {
				t.Errorf("ParseFile() error = %v, want code %v", err, tt.code)
			}
		})
	}
}

func TestEngine_SizeLimit(t *testing.T) {
	e := newEngine(t, Options{MaxSourceBytes: 16})

	_, err := e.ParseSource("big.cpp", sampleSource)
	if !clerror.HasCode(err, clerror.CodeInvalidLength) {
		t.Fatalf("ParseSource() error = %v, want CodeInvalidLength", err)
	}

	var coded *clerror.Error
	errors.As(err, &coded)
	if limit, _ := coded.Detail("limit"); limit != 16 {
		t.Errorf("limit detail = %v, want 16", limit)
	}

	path := filepath.Join(t.TempDir(), "big.cpp")
	if err := os.WriteFile(path, []byte(sampleSource), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := e.ParseFile(path); !clerror.HasCode(err, clerror.CodeInvalidLength) {
		t.Errorf("ParseFile() error = %v, want CodeInvalidLength", err)
	}

	if _, err := e.Tokenize(sampleSource); !clerror.HasCode(err, clerror.CodeInvalidLength) {
		t.Errorf("Tokenize() error = %v, want CodeInvalidLength", err)
	}

	if _, err := e.ParseSource("small.cpp", "int main(){}"); err != nil {
		t.Errorf("source under the limit failed: %v", err)
	}
}

func TestEngine_Tokenize(t *testing.T) {
	e := newEngine(t, Options{})

	toks, err := e.Tokenize("int main() { x = 'a'; }")
	if err != nil {
		t.Fatalf("Tokenize() error = %v", err)
	}

	want := []token.Category{
		token.Int, token.Main, token.LeftParen, token.RightParen, token.LeftBrace,
		token.Identifier, token.Assign, token.CharLiteral, token.Semicolon,
		token.RightBrace, token.Eof,
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(want), toks)
	}
	for i, c := range want {
		if toks[i].Category != c {
			t.Errorf("token %d = %s, want %s", i, toks[i].Category, c)
		}
	}

	if _, err := e.Tokenize("x = #;"); !clerror.HasCode(err, clerror.CodeLiteLexical) {
		t.Errorf("Tokenize(illegal) error = %v, want CodeLiteLexical", err)
	}
}

func TestEngine_Logging(t *testing.T) {
	var buf bytes.Buffer
	logger := cllog.NewWithConfig(cllog.Config{Level: cllog.LevelDebug, Format: cllog.FormatLogfmt, Output: &buf})
	e := newEngine(t, Options{Logger: logger})

	res, err := e.ParseSource("sum.cpp", sampleSource)
	if err != nil {
		t.Fatalf("ParseSource() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"correlation_id=" + res.CorrelationID,
		`message="parse completed"`,
		`source="sum.cpp"`,
		`component="parser"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}

	buf.Reset()
	if _, err := e.ParseSource("bad.cpp", "int main() {"); err == nil {
		t.Fatal("expected a syntax error")
	}
	out = buf.String()
	if !strings.Contains(out, `error_code="LITE_SYNTAX"`) {
		t.Errorf("failure log missing error code:\n%s", out)
	}
	if strings.Contains(out, "parse completed") {
		t.Errorf("failed parse should not log completion:\n%s", out)
	}
}
