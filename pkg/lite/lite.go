// File: lite.go
// Title: C++Lite Front End Engine
// Description: High-level interface tying the lexer, parser and AST
//              validation together. Adds source size limits, per-parse
//              correlation ids, timing and coded errors on top of the
//              bare parser.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial engine implementation

// Package lite is the entry point to the C++Lite front end.
package lite

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/google/uuid"

	clerror "github.com/msto63/cpplite/pkg/core/error"
	cllog "github.com/msto63/cpplite/pkg/core/log"
	"github.com/msto63/cpplite/pkg/lite/ast"
	"github.com/msto63/cpplite/pkg/lite/lexer"
	"github.com/msto63/cpplite/pkg/lite/parser"
	"github.com/msto63/cpplite/pkg/lite/token"
)

// DefaultMaxSourceBytes is used when Options.MaxSourceBytes is zero
const DefaultMaxSourceBytes = 1 << 20

// Engine parses C++Lite sources
type Engine struct {
	logger  *cllog.Logger
	options Options
}

// Options configures the engine
type Options struct {
	Logger         *cllog.Logger
	MaxSourceBytes int  // 0 selects DefaultMaxSourceBytes
	Validate       bool // run AST validation after a successful parse
}

// Result is a successfully parsed program
type Result struct {
	Name          string
	Program       *ast.Program
	CorrelationID string
}

// New creates a new engine
func New(opts Options) (*Engine, error) {
	if opts.Logger == nil {
		opts.Logger = cllog.GetDefault()
	}
	if opts.MaxSourceBytes < 0 {
		return nil, clerror.Newf("max source bytes must not be negative: %d", opts.MaxSourceBytes).
			WithCode(clerror.CodeInvalidInput).
			WithOperation("lite.New")
	}
	if opts.MaxSourceBytes == 0 {
		opts.MaxSourceBytes = DefaultMaxSourceBytes
	}

	logger := opts.Logger.WithField("component", "lite-engine")
	logger.Debug("C++Lite engine initialized", cllog.Fields{
		"maxSourceBytes": opts.MaxSourceBytes,
		"validate":       opts.Validate,
	})

	return &Engine{logger: logger, options: opts}, nil
}

// ParseFile reads and parses a source file
func (e *Engine) ParseFile(path string) (*Result, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fileError(err, path)
	}
	if info.IsDir() {
		return nil, clerror.Newf("source path is a directory: %s", path).
			WithCode(clerror.CodeInvalidInput).
			WithOperation("lite.ParseFile").
			WithDetail("file", path)
	}
	if info.Size() > int64(e.options.MaxSourceBytes) {
		return nil, e.tooLarge(path, int(info.Size()))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fileError(err, path)
	}

	return e.ParseSource(path, string(data))
}

// ParseSource parses src; name identifies the source in logs and errors
func (e *Engine) ParseSource(name, src string) (*Result, error) {
	if len(src) > e.options.MaxSourceBytes {
		return nil, e.tooLarge(name, len(src))
	}

	id := uuid.New().String()
	logger := e.logger.WithCorrelationID(id).WithField("source", name)
	timer := logger.StartTimer("parse")

	prog, err := parser.New(lexer.New(src), parser.Options{Logger: logger}).ParseProgram()
	if err != nil {
		cerr := syntaxError(err, name)
		timer.Cancel()
		logger.LogError(cerr)
		return nil, cerr
	}

	if e.options.Validate {
		if problems := ast.ValidateAST(prog); len(problems) > 0 {
			verr := validationError(problems, name)
			timer.Cancel()
			logger.LogError(verr)
			return nil, verr
		}
	}

	timer.Stop()
	return &Result{Name: name, Program: prog, CorrelationID: id}, nil
}

// Tokenize returns the token stream of src up to and including Eof
func (e *Engine) Tokenize(src string) ([]token.Token, error) {
	if len(src) > e.options.MaxSourceBytes {
		return nil, e.tooLarge("", len(src))
	}
	return lexer.Tokenize(src)
}

// Validate runs the structural checks on a tree and reports all problems
func (e *Engine) Validate(prog *ast.Program) error {
	if problems := ast.ValidateAST(prog); len(problems) > 0 {
		return validationError(problems, "")
	}
	return nil
}

func (e *Engine) tooLarge(name string, size int) error {
	return clerror.Newf("source exceeds maximum length: %d > %d", size, e.options.MaxSourceBytes).
		WithCode(clerror.CodeInvalidLength).
		WithOperation("lite.Parse").
		WithDetail("source", name).
		WithDetail("size", size).
		WithDetail("limit", e.options.MaxSourceBytes)
}

func fileError(err error, path string) error {
	code := clerror.CodeInternal
	if errors.Is(err, fs.ErrNotExist) {
		code = clerror.CodeNotFound
	}
	return clerror.Wrap(err, "failed to read source file").
		WithCode(code).
		WithOperation("lite.ParseFile").
		WithDetail("file", path)
}

// syntaxError wraps a parser error; errors.As still reaches the *parser.SyntaxError
func syntaxError(err error, name string) error {
	cerr := clerror.Wrap(err, "failed to parse C++Lite source").
		WithCode(clerror.CodeLiteSyntax).
		WithOperation("lite.ParseSource").
		WithDetail("source", name)

	var serr *parser.SyntaxError
	if errors.As(err, &serr) {
		cerr.WithDetail("line", serr.Line()).
			WithDetail("column", serr.Column()).
			WithDetail("expected", serr.Expected)
	}
	return cerr
}

// ValidationErrors lists every structural problem of a tree
type ValidationErrors []error

func (v ValidationErrors) Error() string {
	if len(v) == 1 {
		return v[0].Error()
	}
	return fmt.Sprintf("%s (and %d more)", v[0].Error(), len(v)-1)
}

// Unwrap exposes the individual problems to errors.Is and errors.As
func (v ValidationErrors) Unwrap() []error {
	return v
}

func validationError(problems []error, name string) error {
	return clerror.Wrap(ValidationErrors(problems), "AST validation failed").
		WithCode(clerror.CodeLiteValidation).
		WithOperation("lite.Validate").
		WithDetail("source", name).
		WithDetail("problems", len(problems))
}
