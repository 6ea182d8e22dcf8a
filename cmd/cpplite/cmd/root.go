package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/cpplite/internal/tui"
	"github.com/msto63/cpplite/pkg/core/config"
	clerror "github.com/msto63/cpplite/pkg/core/error"
	cllog "github.com/msto63/cpplite/pkg/core/log"
	"github.com/msto63/cpplite/pkg/lite"
	"github.com/msto63/cpplite/pkg/lite/parser"
)

// app carries the state shared by all commands of one invocation
type app struct {
	cfgFile   string
	logLevel  string
	logFormat string
	verbose   bool

	cfg      *config.Config
	settings config.Settings
	logger   *cllog.Logger
}

// NewRootCommand builds the cpplite command tree
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "cpplite",
		Short: "C++Lite front end: tokenizer, parser and AST tools",
		Long: `cpplite reads programs written in C++Lite, a small teaching subset of C++,
and turns them into abstract syntax trees.

A C++Lite program is a single function:

  int main ( ) { Declarations Statements }

Commands:
  parse    - print the abstract syntax tree
  tokens   - print the token stream
  check    - parse, validate and summarize a program
  view     - browse the tree in an interactive viewer
  config   - print the effective configuration
  version  - print version information`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default: ./cpplite.toml, ./configs/cpplite.toml, ~/.config/cpplite/cpplite.toml)")
	flags.StringVar(&a.logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	flags.StringVar(&a.logFormat, "log-format", "", "log format (text, json, console, logfmt)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "verbose output (same as --log-level debug)")

	root.AddCommand(
		newParseCommand(a),
		newTokensCommand(a),
		newCheckCommand(a),
		newViewCommand(a),
		newConfigCommand(a),
		newVersionCommand(),
	)

	return root
}

// Execute runs the CLI and prints a styled diagnostic on failure
func Execute() error {
	root := NewRootCommand()
	err := root.Execute()
	if err != nil {
		printError(root.ErrOrStderr(), err)
	}
	return err
}

// setup loads the configuration and configures logging
func (a *app) setup(cmd *cobra.Command, args []string) error {
	var err error
	if a.cfgFile != "" {
		a.cfg, err = config.LoadWithOptions(a.cfgFile, config.LoadOptions{
			Format:    config.FormatAuto,
			EnvPrefix: "CPPLITE",
			Defaults:  config.DefaultValues(),
		})
	} else {
		a.cfg, err = config.Discover(config.DefaultDiscoveryOptions())
	}
	if err != nil {
		return err
	}

	a.settings = a.cfg.Settings()
	if a.logLevel != "" {
		a.settings.Log.Level = a.logLevel
	}
	if a.logFormat != "" {
		a.settings.Log.Format = a.logFormat
	}
	if a.verbose {
		a.settings.Log.Level = "debug"
	}
	if err := a.settings.Validate(); err != nil {
		return err
	}

	level, err := cllog.ParseLevel(a.settings.Log.Level)
	if err != nil {
		return clerror.Wrap(err, "invalid log level").
			WithCode(clerror.CodeInvalidConfig).
			WithDetail("value", a.settings.Log.Level)
	}
	format, err := cllog.ParseFormat(a.settings.Log.Format)
	if err != nil {
		return clerror.Wrap(err, "invalid log format").
			WithCode(clerror.CodeInvalidConfig).
			WithDetail("value", a.settings.Log.Format)
	}

	a.logger = cllog.NewWithConfig(cllog.Config{
		Level:  level,
		Format: format,
		Output: cmd.ErrOrStderr(),
		Name:   "cpplite",
	})
	cllog.SetDefault(a.logger)

	a.logger.Debug("Configuration loaded", cllog.Fields{
		"file":    a.cfg.FilePath(),
		"command": cmd.Name(),
	})
	return nil
}

// engine creates a front end engine from the effective settings
func (a *app) engine(validate bool) (*lite.Engine, error) {
	return lite.New(lite.Options{
		Logger:         a.logger,
		MaxSourceBytes: a.settings.Parser.MaxSourceBytes,
		Validate:       validate || a.settings.Parser.Validate,
	})
}

// parse parses a file argument; "-" reads standard input
func (a *app) parse(cmd *cobra.Command, e *lite.Engine, arg string) (*lite.Result, error) {
	if arg != "-" {
		return e.ParseFile(arg)
	}
	name, src, err := readSource(cmd.InOrStdin(), arg)
	if err != nil {
		return nil, err
	}
	return e.ParseSource(name, src)
}

// readSource returns the display name and text of a file argument
func readSource(stdin io.Reader, arg string) (string, string, error) {
	var (
		data []byte
		err  error
	)
	if arg == "-" {
		data, err = io.ReadAll(stdin)
		arg = "<stdin>"
	} else {
		data, err = os.ReadFile(arg)
	}
	if err != nil {
		code := clerror.CodeInternal
		if errors.Is(err, os.ErrNotExist) {
			code = clerror.CodeNotFound
		}
		return "", "", clerror.Wrap(err, "failed to read source").
			WithCode(code).
			WithDetail("file", arg)
	}
	return arg, string(data), nil
}

// printError writes a diagnostic. Syntax errors are shown as
// file:line:column followed by the parser message.
func printError(w io.Writer, err error) {
	var serr *parser.SyntaxError
	if errors.As(err, &serr) {
		location := fmt.Sprintf("%d:%d", serr.Line(), serr.Column())
		var coded *clerror.Error
		if errors.As(err, &coded) {
			if source, ok := coded.Detail("source"); ok && source != "" {
				location = fmt.Sprintf("%v:%s", source, location)
			}
		}
		fmt.Fprintln(w, tui.RenderError(location, serr.Error()))
		return
	}

	var problems lite.ValidationErrors
	if errors.As(err, &problems) {
		for _, p := range problems {
			fmt.Fprintln(w, tui.RenderError("", p.Error()))
		}
		return
	}

	fmt.Fprintln(w, tui.RenderError("", err.Error()))
}

func joinFormats(formats []string) string {
	return strings.Join(formats, "|")
}
