// ============================================================================
// cpplite - C++Lite Front End
// ============================================================================
//
// Package:     cmd
// Description: View command - interactive AST viewer
// Author:      msto63
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/cpplite/internal/tui/astviewer"
	clerror "github.com/msto63/cpplite/pkg/core/error"
	"github.com/msto63/cpplite/pkg/lite"
)

func newViewCommand(a *app) *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "view <file>",
		Short: "Browse the syntax tree in an interactive viewer",
		Long: `Opens a terminal viewer for a parsed C++Lite program.

Views:
  1 Tree     - indented syntax tree
  2 S-Expr   - compact s-expression
  3 Tokens   - token stream with positions
  4 YAML     - tree as YAML mappings

Shortcuts:
  1-4, Tab   Switch view
  g / G      Jump to top / bottom
  r          Reload the file from disk
  q, Esc     Quit

With --watch the file is reloaded automatically whenever it is saved.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.engine(false)
			if err != nil {
				return err
			}

			path := args[0]
			if path == "-" {
				return clerror.New("the viewer needs a file, standard input is used by the terminal").
					WithCode(clerror.CodeInvalidInput)
			}
			load := func() (astviewer.Document, error) {
				return loadDocument(e, path)
			}

			doc, err := load()
			if err != nil {
				return err
			}

			cfg := astviewer.Config{Document: doc, Reload: load}
			if watch {
				w, err := astviewer.Watch(path)
				if err != nil {
					return err
				}
				defer w.Close()
				cfg.Watcher = w
			}
			return astviewer.Run(cfg)
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "reload when the file changes")
	return cmd
}

// loadDocument parses path and collects its tokens for the viewer
func loadDocument(e *lite.Engine, path string) (astviewer.Document, error) {
	name, src, err := readSource(os.Stdin, path)
	if err != nil {
		return astviewer.Document{}, err
	}
	res, err := e.ParseSource(name, src)
	if err != nil {
		return astviewer.Document{}, err
	}
	toks, err := e.Tokenize(src)
	if err != nil {
		return astviewer.Document{}, err
	}
	return astviewer.Document{Name: res.Name, Program: res.Program, Tokens: toks}, nil
}
