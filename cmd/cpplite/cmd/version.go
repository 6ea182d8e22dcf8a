package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/msto63/cpplite/pkg/core/version"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		// Version must work without a readable config file
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, version.String())
			for _, c := range []string{"lexer", "parser", "ast", "cli"} {
				fmt.Fprintf(out, "  %-11s %s\n", c+":", version.ComponentVersion(c))
			}
			fmt.Fprintf(out, "  %-11s %s\n", "Go Version:", runtime.Version())
			fmt.Fprintf(out, "  %-11s %s/%s\n", "OS/Arch:", runtime.GOOS, runtime.GOARCH)
		},
	}
}
