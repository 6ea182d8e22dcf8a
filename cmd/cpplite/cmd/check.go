package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/cpplite/internal/tui"
	"github.com/msto63/cpplite/pkg/lite/ast"
)

func newCheckCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check <file|->",
		Short: "Parse and validate a C++Lite program",
		Long: `Parse a C++Lite program, run the structural checks on the tree
(duplicate declarations, malformed nodes) and print a short summary.

The command fails with the first syntax error, or with every
validation problem found.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.engine(true)
			if err != nil {
				return err
			}
			res, err := a.parse(cmd, e, args[0])
			if err != nil {
				return err
			}

			stats := ast.CollectNodes(res.Program)
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, tui.RenderSuccess(res.Name))
			fmt.Fprintln(out, tui.RenderKeyValue("Declarations", len(stats.Declarations), 14))
			fmt.Fprintln(out, tui.RenderKeyValue("Statements", stats.Statements, 14))
			fmt.Fprintln(out, tui.RenderKeyValue("Assignments", len(stats.Assignments), 14))
			fmt.Fprintln(out, tui.RenderKeyValue("Operators", len(stats.Operators), 14))
			fmt.Fprintln(out, tui.RenderKeyValue("Literals", len(stats.Literals), 14))
			return nil
		},
	}
}
