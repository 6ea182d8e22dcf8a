package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/msto63/cpplite/pkg/core/config"
	clerror "github.com/msto63/cpplite/pkg/core/error"
	"github.com/msto63/cpplite/pkg/lite/ast"
)

func newParseCommand(a *app) *cobra.Command {
	var (
		format    string
		positions bool
		validate  bool
	)

	cmd := &cobra.Command{
		Use:   "parse <file|->",
		Short: "Parse a C++Lite program and print its syntax tree",
		Long: `Parse a C++Lite program and print its abstract syntax tree.

Use "-" to read the program from standard input.

Formats:
  tree   - indented tree (default)
  sexpr  - compact s-expression on one line
  json   - nested JSON objects
  yaml   - nested YAML mappings`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format == "" {
				format = a.settings.Output.Format
			}

			e, err := a.engine(validate)
			if err != nil {
				return err
			}
			res, err := a.parse(cmd, e, args[0])
			if err != nil {
				return err
			}
			return writeTree(cmd.OutOrStdout(), res.Program, format, positions)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "output format ("+joinFormats(config.OutputFormats)+"), default from output.format")
	cmd.Flags().BoolVar(&positions, "positions", false, "include line and column in json and yaml output")
	cmd.Flags().BoolVar(&validate, "validate", false, "validate the tree after parsing")

	return cmd
}

// writeTree renders prog in the requested format
func writeTree(w io.Writer, prog *ast.Program, format string, positions bool) error {
	switch strings.ToLower(format) {
	case "tree":
		_, err := io.WriteString(w, ast.Display(prog))
		return err

	case "sexpr":
		_, err := fmt.Fprintln(w, prog.String())
		return err

	case "json":
		data, err := json.MarshalIndent(ast.ToMap(prog, positions), "", "  ")
		if err != nil {
			return clerror.Wrap(err, "failed to encode tree").WithCode(clerror.CodeInternal)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err

	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(ast.ToMap(prog, positions)); err != nil {
			return clerror.Wrap(err, "failed to encode tree").WithCode(clerror.CodeInternal)
		}
		return enc.Close()

	default:
		return clerror.Newf("unknown output format %q (want one of %s)", format, strings.Join(config.OutputFormats, ", ")).
			WithCode(clerror.CodeInvalidInput).
			WithDetail("format", format)
	}
}
